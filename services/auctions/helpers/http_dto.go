package helpers

// Request DTOs
type CreateAuctionRequest struct {
	Name         string   `json:"name" binding:"required"`
	MaxOffer     float64  `json:"max_offer" binding:"gte=0"`
	Inscriptions int      `json:"inscriptions" binding:"gte=0"`
	EndDate      string   `json:"end_date" binding:"required"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url"`
	MinBid       *float64 `json:"min_bid" binding:"omitempty,gte=0"`
	IsActive     *bool    `json:"is_active"`
	WinnerID     *string  `json:"winner_id"`
	WinningBid   *float64 `json:"winning_bid"`
}

type PlaceBidRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	UserID    string  `json:"user_id" binding:"required"`
	AuctionID string  `json:"auction_id" binding:"required"`
}

type UpdateBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type ListAuctionsQuery struct {
	Search string `form:"search"`
}

type ListBidsQuery struct {
	AuctionID string `form:"auction_id"`
}
