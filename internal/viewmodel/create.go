package viewmodel

import (
	"context"
	"errors"
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"auction-client/internal/auctions"
	"auction-client/internal/biddingerrors"
	"auction-client/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/samber/lo"
)

const (
	msgBlankName          = "auction name cannot be empty"
	msgInvalidMinOffer    = "minimum offer must be a valid number greater than zero"
	msgBlankEndDate       = "please select an end date for the auction"
	msgCreateFailed       = "failed to create auction, try again"
	msgAuctionCreatedTmpl = "auction '%s' created"
	descriptionTmpl       = "Auction of %s"
)

var (
	validate   = validator.New()
	namePolicy = bluemonday.StrictPolicy()
)

// CreateForm holds the raw text of the create screen fields
type CreateForm struct {
	Name         string
	MinimumOffer string
	EndDate      string
	ImageURL     string
}

// CreateState is what the create screen renders
type CreateState struct {
	Form    CreateForm
	Created *models.Auction
	Status
}

// newAuctionInput is the parsed form, checked field by field in declaration order
type newAuctionInput struct {
	Name     string  `validate:"required"`
	MinOffer float64 `validate:"gt=0"`
	EndDate  string  `validate:"required"`
	ImageURL string
}

// Create holds the new-auction form
type Create struct {
	*holder[CreateState]
	repo auctions.Repository
}

// NewCreate creates the create-form state holder
func NewCreate(ctx context.Context, repo auctions.Repository, opts Options) *Create {
	return &Create{
		holder: newHolder(ctx, "CreateAuction", CreateState{}, func(s *CreateState) *Status { return &s.Status }, opts),
		repo:   repo,
	}
}

func (c *Create) SetName(name string) {
	c.mutate(c.ctx, func(s *CreateState) { s.Form.Name = name })
}

func (c *Create) SetMinimumOffer(offer string) {
	c.mutate(c.ctx, func(s *CreateState) { s.Form.MinimumOffer = offer })
}

func (c *Create) SetEndDate(date string) {
	c.mutate(c.ctx, func(s *CreateState) { s.Form.EndDate = date })
}

func (c *Create) SetImageURL(url string) {
	c.mutate(c.ctx, func(s *CreateState) { s.Form.ImageURL = url })
}

// Submit validates the form and creates the auction. The form is cleared on success.
func (c *Create) Submit(ctx context.Context) {
	c.run(ctx, "create", func(ctx context.Context) {
		input, err := parseForm(c.State().Form)
		if err != nil {
			c.fail(ctx, formMessage(err))
			return
		}

		created := c.repo.CreateAuction(ctx, models.Auction{
			Name:         input.Name,
			Description:  fmt.Sprintf(descriptionTmpl, input.Name),
			MaxOffer:     input.MinOffer,
			Inscriptions: 0,
			EndDate:      input.EndDate,
			ImageURL:     input.ImageURL,
			MinBid:       lo.ToPtr(input.MinOffer),
			IsActive:     lo.ToPtr(true),
		})
		if created == nil {
			c.fail(ctx, msgCreateFailed)
			return
		}

		c.mutate(ctx, func(s *CreateState) {
			s.Form = CreateForm{}
			s.Created = created
		})
		c.succeed(ctx, fmt.Sprintf(msgAuctionCreatedTmpl, created.Name))
	})
}

// parseForm turns the raw fields into an input, reporting the first invalid field
func parseForm(form CreateForm) (newAuctionInput, error) {
	input := newAuctionInput{
		Name:     html.UnescapeString(namePolicy.Sanitize(strings.TrimSpace(form.Name))),
		MinOffer: math.NaN(),
		EndDate:  strings.TrimSpace(form.EndDate),
		ImageURL: strings.TrimSpace(form.ImageURL),
	}
	input.Name = strings.TrimSpace(input.Name)
	if offer, err := parseAmount(form.MinimumOffer); err == nil {
		input.MinOffer = offer
	}

	if err := validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return input, err
		}
		switch fieldErrs[0].Field() {
		case "Name":
			return input, biddingerrors.ErrBlankName
		case "MinOffer":
			return input, biddingerrors.ErrInvalidAmount
		case "EndDate":
			return input, biddingerrors.ErrBlankEndDate
		}
		return input, err
	}
	return input, nil
}

func formMessage(err error) string {
	switch {
	case errors.Is(err, biddingerrors.ErrBlankName):
		return msgBlankName
	case errors.Is(err, biddingerrors.ErrInvalidAmount):
		return msgInvalidMinOffer
	case errors.Is(err, biddingerrors.ErrBlankEndDate):
		return msgBlankEndDate
	default:
		return err.Error()
	}
}

// parseAmount reads a user-typed money amount. It must be a finite number above zero.
func parseAmount(text string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", text, biddingerrors.ErrInvalidAmount)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, fmt.Errorf("amount %q: %w", text, biddingerrors.ErrInvalidAmount)
	}
	return amount, nil
}
