package viewmodel

import (
	"context"
	"slices"

	"auction-client/internal/auctions"
	"auction-client/internal/models"
)

const msgLoadAuctionsFailed = "failed to load auctions, try again"

// ListState is what the auction list screen renders
type ListState struct {
	Auctions []models.Auction
	Query    string
	Status
}

// List holds the auction list and the current search text
type List struct {
	*holder[ListState]
	repo auctions.Repository
}

// NewList creates the list state holder. It does not fetch anything until Load is called.
func NewList(ctx context.Context, repo auctions.Repository, opts Options) *List {
	return &List{
		holder: newHolder(ctx, "AuctionList", ListState{}, func(s *ListState) *Status { return &s.Status }, opts),
		repo:   repo,
	}
}

// SetQuery updates the search text without fetching
func (l *List) SetQuery(query string) {
	l.mutate(l.ctx, func(s *ListState) {
		s.Query = query
	})
}

// Load fetches the auctions matching the current search text and replaces the held list
func (l *List) Load(ctx context.Context) {
	l.run(ctx, "load", func(ctx context.Context) {
		query := l.State().Query

		fetched := l.repo.GetAuctions(ctx, query)
		if fetched == nil {
			l.fail(ctx, msgLoadAuctionsFailed)
			return
		}

		l.mutate(ctx, func(s *ListState) {
			s.Auctions = fetched
		})
	})
}

// Search runs an explicit search with the current text
func (l *List) Search(ctx context.Context) {
	l.Load(ctx)
}

// Retry re-runs the last fetch
func (l *List) Retry(ctx context.Context) {
	l.Load(ctx)
}

// ReplaceAuction swaps in an updated copy of an auction already in the list
func (l *List) ReplaceAuction(updated models.Auction) {
	l.mutate(l.ctx, func(s *ListState) {
		idx := slices.IndexFunc(s.Auctions, func(a models.Auction) bool { return a.ID == updated.ID })
		if idx < 0 {
			return
		}
		next := slices.Clone(s.Auctions)
		next[idx] = updated
		s.Auctions = next
	})
}
