//go:generate mockgen -package=repository -destination=mock_repository.go -source=repository.go

package repository

import (
	"fmt"
	"sync"

	"auction-client/internal/biddingerrors"
	"auction-client/internal/models"
)

// AuctionDB defines the auction and bid storage interface of the development backend
type AuctionDB interface {
	ListAuctions() []models.Auction
	GetAuction(auctionID string) (models.Auction, error)
	SaveAuction(auction models.Auction) error
	DeleteAuction(auctionID string) error
	RecordBidForAuction(bid models.Bid) error
	GetBid(bidID string) (models.Bid, error)
	UpdateBid(bid models.Bid) error
	GetBidsByAuction(auctionID string) ([]models.Bid, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[string]models.Auction // key: auctionID -> value: auction
	order    []string                  // auction ids in creation order
	bids     map[string][]models.Bid   // key: auctionID -> value: bids in submission order
	bidIndex map[string]string         // key: bidID -> value: auctionID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions: make(map[string]models.Auction),
		bids:     make(map[string][]models.Bid),
		bidIndex: make(map[string]string),
	}
}

// ListAuctions returns every auction in creation order
func (r *MemoryRepo) ListAuctions() []models.Auction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]models.Auction, 0, len(r.order))
	for _, id := range r.order {
		auctions = append(auctions, r.auctions[id])
	}
	return auctions
}

// GetAuction returns a single auction
func (r *MemoryRepo) GetAuction(auctionID string) (models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return models.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// SaveAuction inserts a new auction or replaces an existing one
func (r *MemoryRepo) SaveAuction(auction models.Auction) error {
	if auction.ID == "" {
		return fmt.Errorf("save auction: %w - missing id", biddingerrors.ErrInvalidAuction)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.auctions[auction.ID]; !exists {
		r.order = append(r.order, auction.ID)
	}
	r.auctions[auction.ID] = auction
	return nil
}

// DeleteAuction removes an auction together with its bids
func (r *MemoryRepo) DeleteAuction(auctionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return fmt.Errorf("delete auction %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}

	delete(r.auctions, auctionID)
	for i, id := range r.order {
		if id == auctionID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	for _, bid := range r.bids[auctionID] {
		delete(r.bidIndex, bid.ID)
	}
	delete(r.bids, auctionID)
	return nil
}

// RecordBidForAuction records a bid on an existing auction
func (r *MemoryRepo) RecordBidForAuction(bid models.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[bid.AuctionID]; !ok {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, biddingerrors.ErrAuctionNotFound)
	}

	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)
	r.bidIndex[bid.ID] = bid.AuctionID
	return nil
}

// GetBid returns a single bid
func (r *MemoryRepo) GetBid(bidID string) (models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctionID, ok := r.bidIndex[bidID]
	if !ok {
		return models.Bid{}, fmt.Errorf("get bid %s: %w", bidID, biddingerrors.ErrBidNotFound)
	}
	for _, bid := range r.bids[auctionID] {
		if bid.ID == bidID {
			return bid, nil
		}
	}
	return models.Bid{}, fmt.Errorf("get bid %s: %w", bidID, biddingerrors.ErrBidNotFound)
}

// UpdateBid overwrites a stored bid in place, keeping its submission position
func (r *MemoryRepo) UpdateBid(bid models.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	auctionID, ok := r.bidIndex[bid.ID]
	if !ok {
		return fmt.Errorf("update bid %s: %w", bid.ID, biddingerrors.ErrBidNotFound)
	}
	bids := r.bids[auctionID]
	for i := range bids {
		if bids[i].ID == bid.ID {
			bid.AuctionID = auctionID
			bids[i] = bid
			return nil
		}
	}
	return fmt.Errorf("update bid %s: %w", bid.ID, biddingerrors.ErrBidNotFound)
}

// GetBidsByAuction returns all bids for an auction in submission order
func (r *MemoryRepo) GetBidsByAuction(auctionID string) ([]models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[auctionID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, biddingerrors.ErrNoBids)
	}
	return append([]models.Bid(nil), bids...), nil
}
