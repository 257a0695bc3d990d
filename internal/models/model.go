package models

// Auction represents an auction record as served by the remote API
type Auction struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	MaxOffer     float64  `json:"max_offer"`
	Inscriptions int      `json:"inscriptions"`
	EndDate      string   `json:"end_date"`
	Description  string   `json:"description,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	MinBid       *float64 `json:"min_bid,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
	WinnerID     *string  `json:"winner_id"`
	WinningBid   *float64 `json:"winning_bid"`
}

// Active reports whether the auction is still open. Records without the flag count as open.
func (a Auction) Active() bool {
	return a.IsActive == nil || *a.IsActive
}

// Bid represents a single bid registered on an auction
type Bid struct {
	ID        string  `json:"id"`
	Amount    float64 `json:"amount"`
	UserID    string  `json:"user_id"`
	AuctionID string  `json:"auction_id"`
}

// BidRequest is the body of a bid creation request
type BidRequest struct {
	Amount    float64 `json:"amount"`
	UserID    string  `json:"user_id"`
	AuctionID string  `json:"auction_id"`
}

// BidUpdate is the body of a bid revision request
type BidUpdate struct {
	Amount *float64 `json:"amount"`
}

// BidResponse reports the declared outcome of an auction
type BidResponse struct {
	Success     bool     `json:"success"`
	Message     string   `json:"message"`
	NewMaxOffer *float64 `json:"new_max_offer,omitempty"`
	WinnerID    *string  `json:"winner_id,omitempty"`
	WinningBid  *float64 `json:"winning_bid,omitempty"`
}
