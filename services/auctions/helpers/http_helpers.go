package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-client/internal/biddingerrors"
	"auction-client/internal/models"
	"auction-client/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, biddingerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, biddingerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, biddingerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction details"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToAuction converts a create request into the stored model
func (r CreateAuctionRequest) ToAuction() models.Auction {
	return models.Auction{
		Name:         r.Name,
		MaxOffer:     r.MaxOffer,
		Inscriptions: r.Inscriptions,
		EndDate:      r.EndDate,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		MinBid:       r.MinBid,
		IsActive:     r.IsActive,
		WinnerID:     r.WinnerID,
		WinningBid:   r.WinningBid,
	}
}

// ToBidRequest converts the validated payload into the service request
func (r PlaceBidRequest) ToBidRequest() models.BidRequest {
	return models.BidRequest{
		Amount:    r.Amount,
		UserID:    r.UserID,
		AuctionID: r.AuctionID,
	}
}
