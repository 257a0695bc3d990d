package viewmodel

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"auction-client/internal/auctions"
	bidding "auction-client/internal/biddingService"
	"auction-client/internal/models"
	"auction-client/utils"

	"github.com/samber/lo"
)

const (
	msgLoadAuctionFailed   = "failed to load auction details"
	msgNoAuction           = "no auction loaded"
	msgBlankBidder         = "please enter your name"
	msgBidTooLow           = "bid must be a valid number greater than the current offer"
	msgPlaceBidFailed      = "failed to place bid, try again"
	msgAuctionNotUpdated   = "bid placed, but the auction could not be updated"
	msgBidPlaced           = "bid placed and auction updated"
	msgInvalidAmount       = "amount must be a valid number greater than zero"
	msgReviseBidFailed     = "failed to update bid"
	msgBidRevised          = "bid updated"
	msgFinishFailed        = "failed to finish auction, try again"
	msgDeleteFailed        = "failed to delete auction"
	msgAuctionDeleted      = "auction deleted"
	msgLoadResultFailed    = "failed to load auction result"
	notAvailable           = "N/A"
	msgAuctionFinishedTmpl = "auction finished. winner: %s with $%s"
)

// DetailState is what the auction detail screen renders
type DetailState struct {
	Auction *models.Auction
	// Bids are ordered by amount, highest first
	Bids    []models.Bid
	Result  *models.BidResponse
	Deleted bool
	Status
}

// Detail holds one auction with its bids and runs the bidding flows
type Detail struct {
	*holder[DetailState]
	repo auctions.Repository
}

// NewDetail creates the detail state holder
func NewDetail(ctx context.Context, repo auctions.Repository, opts Options) *Detail {
	return &Detail{
		holder: newHolder(ctx, "AuctionDetail", DetailState{}, func(s *DetailState) *Status { return &s.Status }, opts),
		repo:   repo,
	}
}

// Load fetches an auction and its bids
func (d *Detail) Load(ctx context.Context, auctionID string) {
	d.run(ctx, "load", func(ctx context.Context) {
		auction := d.repo.GetAuction(ctx, auctionID)
		if auction == nil {
			d.fail(ctx, msgLoadAuctionFailed)
			return
		}

		d.mutate(ctx, func(s *DetailState) {
			s.Auction = auction
			s.Result = nil
			s.Deleted = false
		})
		d.refreshBids(ctx, auctionID)
	})
}

// PlaceBid validates the amount against the current max offer, creates the bid and
// mirrors the new maximum onto the auction. Nothing is sent when validation fails.
func (d *Detail) PlaceBid(ctx context.Context, amountText, bidder string) {
	d.run(ctx, "place bid", func(ctx context.Context) {
		auction := d.State().Auction
		if auction == nil || auction.ID == "" {
			d.fail(ctx, msgNoAuction)
			return
		}

		bidder = strings.TrimSpace(bidder)
		if bidder == "" {
			d.fail(ctx, msgBlankBidder)
			return
		}

		amount, err := parseAmount(amountText)
		if err != nil || amount <= auction.MaxOffer {
			d.fail(ctx, msgBidTooLow)
			return
		}

		placed := d.repo.PlaceBid(ctx, models.BidRequest{
			Amount:    amount,
			UserID:    bidder,
			AuctionID: auction.ID,
		})
		if !placed {
			d.fail(ctx, msgPlaceBidFailed)
			return
		}

		newMax := amount
		if bids, ok := d.refreshBids(ctx, auction.ID); ok && len(bids) > 0 {
			newMax = bids[0].Amount
		}

		updated := d.repo.UpdateAuction(ctx, auction.ID, models.AuctionPatch{
			MaxOffer:     &newMax,
			Inscriptions: lo.ToPtr(auction.Inscriptions + 1),
		})
		if updated == nil {
			d.reloadAuction(ctx, auction.ID)
			d.fail(ctx, msgAuctionNotUpdated)
			return
		}

		d.mutate(ctx, func(s *DetailState) {
			s.Auction = updated
		})
		d.succeed(ctx, msgBidPlaced)
	})
}

// ReviseBid overwrites the amount of an existing bid. When the revised list has a new
// maximum above the stored max offer, the auction is updated too.
func (d *Detail) ReviseBid(ctx context.Context, bidID, amountText string) {
	d.run(ctx, "revise bid", func(ctx context.Context) {
		auction := d.State().Auction
		if auction == nil || auction.ID == "" {
			d.fail(ctx, msgNoAuction)
			return
		}

		amount, err := parseAmount(amountText)
		if err != nil {
			d.fail(ctx, msgInvalidAmount)
			return
		}

		if !d.repo.UpdateBidAmount(ctx, bidID, amount) {
			d.fail(ctx, msgReviseBidFailed)
			return
		}

		if bids, ok := d.refreshBids(ctx, auction.ID); ok && len(bids) > 0 && bids[0].Amount > auction.MaxOffer {
			newMax := bids[0].Amount
			if d.repo.UpdateAuction(ctx, auction.ID, models.AuctionPatch{MaxOffer: &newMax}) == nil {
				utils.Warn("AuctionDetail: max offer not mirrored after bid revision", map[string]any{
					"auction_id": auction.ID,
					"bid_id":     bidID,
					"max_offer":  newMax,
				})
			}
		}

		d.reloadAuction(ctx, auction.ID)
		d.succeed(ctx, msgBidRevised)
	})
}

// Finish closes the auction, declaring the highest bid the winner.
// Equal amounts go to the bid submitted first.
func (d *Detail) Finish(ctx context.Context) {
	d.run(ctx, "finish", func(ctx context.Context) {
		auction := d.State().Auction
		if auction == nil || auction.ID == "" {
			d.fail(ctx, msgNoAuction)
			return
		}

		bids := d.repo.GetBidsForAuction(ctx, auction.ID)
		if bids == nil {
			d.fail(ctx, msgFinishFailed)
			return
		}

		patch := models.AuctionPatch{
			MaxOffer:  lo.ToPtr(auction.MaxOffer),
			IsActive:  lo.ToPtr(false),
			SetResult: true,
		}
		winner, found := bidding.HighestBid(bids)
		if found {
			patch.MaxOffer = lo.ToPtr(winner.Amount)
			patch.WinnerID = lo.ToPtr(winner.UserID)
			patch.WinningBid = lo.ToPtr(winner.Amount)
		}

		updated := d.repo.UpdateAuction(ctx, auction.ID, patch)
		if updated == nil {
			d.reloadAuction(ctx, auction.ID)
			d.fail(ctx, msgFinishFailed)
			return
		}

		d.mutate(ctx, func(s *DetailState) {
			s.Auction = updated
			s.Bids = bidding.SortByAmountDesc(bids)
		})

		name, amount := notAvailable, notAvailable
		if found {
			name = winner.UserID
			amount = formatAmount(winner.Amount)
		}
		d.succeed(ctx, fmt.Sprintf(msgAuctionFinishedTmpl, name, amount))
	})
}

// Delete removes the auction on the server
func (d *Detail) Delete(ctx context.Context) {
	d.run(ctx, "delete", func(ctx context.Context) {
		auction := d.State().Auction
		if auction == nil || auction.ID == "" {
			d.fail(ctx, msgNoAuction)
			return
		}

		if !d.repo.DeleteAuction(ctx, auction.ID) {
			d.fail(ctx, msgDeleteFailed)
			return
		}

		d.mutate(ctx, func(s *DetailState) {
			s.Auction = nil
			s.Bids = nil
			s.Result = nil
			s.Deleted = true
		})
		d.succeed(ctx, msgAuctionDeleted)
	})
}

// FetchResult loads the result the server declares for the auction
func (d *Detail) FetchResult(ctx context.Context) {
	d.run(ctx, "fetch result", func(ctx context.Context) {
		auction := d.State().Auction
		if auction == nil || auction.ID == "" {
			d.fail(ctx, msgNoAuction)
			return
		}

		result := d.repo.GetAuctionResult(ctx, auction.ID)
		if result == nil {
			d.fail(ctx, msgLoadResultFailed)
			return
		}

		d.mutate(ctx, func(s *DetailState) {
			s.Result = result
		})
	})
}

// refreshBids re-fetches and sorts the bids. A failed fetch leaves an empty list
// without an error message.
func (d *Detail) refreshBids(ctx context.Context, auctionID string) ([]models.Bid, bool) {
	fetched := d.repo.GetBidsForAuction(ctx, auctionID)
	sorted := bidding.SortByAmountDesc(fetched)

	d.mutate(ctx, func(s *DetailState) {
		s.Bids = sorted
	})
	return sorted, fetched != nil
}

// reloadAuction refreshes the auction quietly, keeping the held copy on failure
func (d *Detail) reloadAuction(ctx context.Context, auctionID string) {
	if auction := d.repo.GetAuction(ctx, auctionID); auction != nil {
		d.mutate(ctx, func(s *DetailState) {
			s.Auction = auction
		})
	}
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
