//go:generate mockgen -package=auctions -destination=mock_repository.go -source=repository.go

// Package auctions is the client-side repository of the auction API. Each method maps
// to exactly one HTTP call. Failures of any kind are logged and collapse to a nil or
// false result; callers never see an error value.
package auctions

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"auction-client/internal/client"
	"auction-client/internal/models"
	"auction-client/utils"
)

// Repository defines the remote operations available to the state holders
type Repository interface {
	GetAuctions(ctx context.Context, search string) []models.Auction
	GetAuction(ctx context.Context, auctionID string) *models.Auction
	CreateAuction(ctx context.Context, auction models.Auction) *models.Auction
	UpdateAuction(ctx context.Context, auctionID string, patch models.AuctionPatch) *models.Auction
	DeleteAuction(ctx context.Context, auctionID string) bool
	PlaceBid(ctx context.Context, req models.BidRequest) bool
	GetBidsForAuction(ctx context.Context, auctionID string) []models.Bid
	UpdateBidAmount(ctx context.Context, bidID string, amount float64) bool
	GetAuctionResult(ctx context.Context, auctionID string) *models.BidResponse
}

// Transport is the subset of *client.Client the repository depends on
type Transport interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// APIRepository implements Repository over the REST endpoints
type APIRepository struct {
	transport Transport
}

// NewRepository wraps an explicitly constructed transport
func NewRepository(transport Transport) *APIRepository {
	return &APIRepository{transport: transport}
}

var _ Repository = (*APIRepository)(nil)

// GetAuctions lists auctions, filtered by search when it is not blank.
// A successful empty answer is returned as an empty, non-nil slice.
func (r *APIRepository) GetAuctions(ctx context.Context, search string) []models.Auction {
	var query url.Values
	if term := strings.TrimSpace(search); term != "" {
		query = url.Values{"search": []string{term}}
	}

	var auctions []models.Auction
	if err := r.transport.Get(ctx, "auctions", query, &auctions); err != nil {
		logFailure("GetAuctions", err, map[string]any{"search": search})
		return nil
	}
	if auctions == nil {
		auctions = []models.Auction{}
	}
	return auctions
}

// GetAuction fetches a single auction
func (r *APIRepository) GetAuction(ctx context.Context, auctionID string) *models.Auction {
	var auction models.Auction
	if err := r.transport.Get(ctx, "auctions/"+auctionID, nil, &auction); err != nil {
		logFailure("GetAuction", err, map[string]any{"auction_id": auctionID})
		return nil
	}
	return &auction
}

// CreateAuction submits a new auction and returns it as stored by the server
func (r *APIRepository) CreateAuction(ctx context.Context, auction models.Auction) *models.Auction {
	var created models.Auction
	if err := r.transport.Post(ctx, "auctions", auction, &created); err != nil {
		logFailure("CreateAuction", err, map[string]any{"name": auction.Name})
		return nil
	}
	return &created
}

// UpdateAuction partially updates an auction and returns the server's copy
func (r *APIRepository) UpdateAuction(ctx context.Context, auctionID string, patch models.AuctionPatch) *models.Auction {
	var updated models.Auction
	if err := r.transport.Patch(ctx, "auctions/"+auctionID, patch, &updated); err != nil {
		logFailure("UpdateAuction", err, map[string]any{"auction_id": auctionID})
		return nil
	}
	return &updated
}

// DeleteAuction removes an auction
func (r *APIRepository) DeleteAuction(ctx context.Context, auctionID string) bool {
	if err := r.transport.Delete(ctx, "auctions/"+auctionID); err != nil {
		logFailure("DeleteAuction", err, map[string]any{"auction_id": auctionID})
		return false
	}
	return true
}

// PlaceBid registers a new bid
func (r *APIRepository) PlaceBid(ctx context.Context, req models.BidRequest) bool {
	if err := r.transport.Post(ctx, "bids", req, nil); err != nil {
		logFailure("PlaceBid", err, map[string]any{
			"auction_id": req.AuctionID,
			"user_id":    req.UserID,
			"amount":     req.Amount,
		})
		return false
	}
	return true
}

// GetBidsForAuction lists the bids of an auction in the order the server returns them
func (r *APIRepository) GetBidsForAuction(ctx context.Context, auctionID string) []models.Bid {
	query := url.Values{"auction_id": []string{auctionID}}

	var bids []models.Bid
	if err := r.transport.Get(ctx, "bids", query, &bids); err != nil {
		logFailure("GetBidsForAuction", err, map[string]any{"auction_id": auctionID})
		return nil
	}
	if bids == nil {
		bids = []models.Bid{}
	}
	return bids
}

// UpdateBidAmount overwrites the amount of an existing bid
func (r *APIRepository) UpdateBidAmount(ctx context.Context, bidID string, amount float64) bool {
	utils.Debug("UpdateBidAmount: sending bid update", map[string]any{"bid_id": bidID, "amount": amount})

	update := models.BidUpdate{Amount: &amount}
	if err := r.transport.Patch(ctx, "bids/"+bidID, update, nil); err != nil {
		logFailure("UpdateBidAmount", err, map[string]any{"bid_id": bidID, "amount": amount})
		return false
	}
	return true
}

// GetAuctionResult fetches the declared outcome of an auction
func (r *APIRepository) GetAuctionResult(ctx context.Context, auctionID string) *models.BidResponse {
	var result models.BidResponse
	if err := r.transport.Get(ctx, "auctions/"+auctionID+"/result", nil, &result); err != nil {
		logFailure("GetAuctionResult", err, map[string]any{"auction_id": auctionID})
		return nil
	}
	return &result
}

// logFailure records why a call collapsed to a nil result
func logFailure(operation string, err error, fields map[string]any) {
	fields["operation"] = operation
	fields["error"] = err.Error()

	var statusErr *client.StatusError
	if errors.As(err, &statusErr) {
		fields["status"] = statusErr.StatusCode
		utils.Warn(operation+": unexpected response", fields)
		return
	}
	utils.Warn(operation+": request failed", fields)
}
