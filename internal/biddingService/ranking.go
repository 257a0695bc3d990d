package bidding

import (
	"cmp"
	"slices"

	"auction-client/internal/models"

	"github.com/samber/lo"
)

// SortByAmountDesc returns a copy of bids ordered by amount, highest first.
// Equal amounts keep the order they were submitted in.
func SortByAmountDesc(bids []models.Bid) []models.Bid {
	sorted := make([]models.Bid, len(bids))
	copy(sorted, bids)
	slices.SortStableFunc(sorted, func(a, b models.Bid) int {
		return cmp.Compare(b.Amount, a.Amount)
	})
	return sorted
}

// HighestBid returns the winning bid of a list in submission order.
// On equal amounts the earliest submitted bid wins.
func HighestBid(bids []models.Bid) (models.Bid, bool) {
	if len(bids) == 0 {
		return models.Bid{}, false
	}
	return lo.MaxBy(bids, func(item, max models.Bid) bool {
		return item.Amount > max.Amount
	}), true
}
