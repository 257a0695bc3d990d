package bidding

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"auction-client/internal/biddingerrors"
	"auction-client/internal/models"
	"auction-client/internal/repository"
	"auction-client/utils"
)

// BiddingService implements the auction API served by the development backend.
// Like the remote service it stands in for, it does not enforce bid ordering:
// keeping max_offer consistent with the bids is the client's job.
type BiddingService struct {
	repo repository.AuctionDB
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB) *BiddingService {
	return &BiddingService{
		repo: repo,
	}
}

// ListAuctions returns all auctions whose name or end date contains search, ignoring case.
// A blank search returns everything.
func (s *BiddingService) ListAuctions(search string) []models.Auction {
	auctions := s.repo.ListAuctions()

	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return auctions
	}

	matched := make([]models.Auction, 0, len(auctions))
	for _, a := range auctions {
		if strings.Contains(strings.ToLower(a.Name), term) || strings.Contains(strings.ToLower(a.EndDate), term) {
			matched = append(matched, a)
		}
	}
	return matched
}

// GetAuction returns a single auction
func (s *BiddingService) GetAuction(auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", biddingerrors.ErrInvalidAuction)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// CreateAuction stores a new auction under a freshly generated id
func (s *BiddingService) CreateAuction(auction models.Auction) (models.Auction, error) {
	if strings.TrimSpace(auction.Name) == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing name", biddingerrors.ErrInvalidAuction)
	}

	auction.ID = utils.GenerateID()
	if err := s.repo.SaveAuction(auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction %q: %w", auction.Name, err)
	}
	return auction, nil
}

// UpdateAuction merges the fields present in patch into the stored auction
func (s *BiddingService) UpdateAuction(auctionID string, patch models.AuctionPatch) (models.Auction, error) {
	current, err := s.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, err
	}

	updated := patch.Apply(current)
	updated.ID = current.ID
	if err := s.repo.SaveAuction(updated); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to update auction %s: %w", auctionID, err)
	}
	return updated, nil
}

// DeleteAuction removes an auction and its bids
func (s *BiddingService) DeleteAuction(auctionID string) error {
	if err := s.repo.DeleteAuction(auctionID); err != nil {
		return fmt.Errorf("service: failed to delete auction %s: %w", auctionID, err)
	}
	return nil
}

// PlaceBid validates the payload and records a new bid
func (s *BiddingService) PlaceBid(req models.BidRequest) (models.Bid, error) {
	if err := validateBid(req.AuctionID, req.UserID, req.Amount); err != nil {
		return models.Bid{}, err
	}

	bid := models.Bid{
		ID:        utils.GenerateID(),
		Amount:    req.Amount,
		UserID:    req.UserID,
		AuctionID: req.AuctionID,
	}

	if err := s.repo.RecordBidForAuction(bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for auction %s by user %s: %w", req.AuctionID, req.UserID, err)
	}
	return bid, nil
}

// validateBid checks the shape of a bid; it does not compare against other bids
func validateBid(auctionID, userID string, amount float64) error {
	if auctionID == "" || strings.TrimSpace(userID) == "" {
		return fmt.Errorf("service: %w - missing auctionID or userID", biddingerrors.ErrInvalidBid)
	}
	if amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return fmt.Errorf("service: %w - non-positive bid amount", biddingerrors.ErrInvalidBid)
	}
	return nil
}

// GetBidsForAuction returns the bids of an auction in submission order.
// An auction without bids, or an unknown one, yields an empty list.
func (s *BiddingService) GetBidsForAuction(auctionID string) ([]models.Bid, error) {
	bids, err := s.repo.GetBidsByAuction(auctionID)
	if errors.Is(err, biddingerrors.ErrNoBids) {
		return []models.Bid{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// UpdateBidAmount overwrites the amount of an existing bid
func (s *BiddingService) UpdateBidAmount(bidID string, amount float64) (models.Bid, error) {
	if amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", biddingerrors.ErrInvalidBid)
	}

	bid, err := s.repo.GetBid(bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}

	bid.Amount = amount
	if err := s.repo.UpdateBid(bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to update bid %s: %w", bidID, err)
	}
	return bid, nil
}

// GetAuctionResult reports the current winner of an auction
func (s *BiddingService) GetAuctionResult(auctionID string) (models.BidResponse, error) {
	auction, err := s.GetAuction(auctionID)
	if err != nil {
		return models.BidResponse{}, err
	}

	bids, err := s.GetBidsForAuction(auctionID)
	if err != nil {
		return models.BidResponse{}, err
	}

	winner, ok := HighestBid(bids)
	if !ok {
		return models.BidResponse{
			Success:     false,
			Message:     "no bids placed",
			NewMaxOffer: &auction.MaxOffer,
		}, nil
	}

	message := "auction open"
	if !auction.Active() {
		message = "auction finished"
	}
	return models.BidResponse{
		Success:     true,
		Message:     message,
		NewMaxOffer: &winner.Amount,
		WinnerID:    &winner.UserID,
		WinningBid:  &winner.Amount,
	}, nil
}
