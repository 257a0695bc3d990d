package models

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AuctionPatch is a partial update of an auction. Nil fields are left untouched.
//
// The winner pair is written as a unit: when SetResult is true both winner_id and
// winning_bid are sent, as null when unset, so a finished auction without bids
// clears any previous result.
type AuctionPatch struct {
	Name         *string
	Description  *string
	EndDate      *string
	ImageURL     *string
	MaxOffer     *float64
	Inscriptions *int
	IsActive     *bool

	SetResult  bool
	WinnerID   *string
	WinningBid *float64
}

// Empty reports whether the patch carries no field at all
func (p AuctionPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.EndDate == nil && p.ImageURL == nil &&
		p.MaxOffer == nil && p.Inscriptions == nil && p.IsActive == nil && !p.SetResult
}

// Apply returns a copy of the auction with the patch merged in
func (p AuctionPatch) Apply(a Auction) Auction {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.EndDate != nil {
		a.EndDate = *p.EndDate
	}
	if p.ImageURL != nil {
		a.ImageURL = *p.ImageURL
	}
	if p.MaxOffer != nil {
		a.MaxOffer = *p.MaxOffer
	}
	if p.Inscriptions != nil {
		a.Inscriptions = *p.Inscriptions
	}
	if p.IsActive != nil {
		active := *p.IsActive
		a.IsActive = &active
	}
	if p.SetResult {
		a.WinnerID = p.WinnerID
		a.WinningBid = p.WinningBid
	}
	return a
}

func (p AuctionPatch) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, 9)
	if p.Name != nil {
		body["name"] = *p.Name
	}
	if p.Description != nil {
		body["description"] = *p.Description
	}
	if p.EndDate != nil {
		body["end_date"] = *p.EndDate
	}
	if p.ImageURL != nil {
		body["image_url"] = *p.ImageURL
	}
	if p.MaxOffer != nil {
		body["max_offer"] = *p.MaxOffer
	}
	if p.Inscriptions != nil {
		body["inscriptions"] = *p.Inscriptions
	}
	if p.IsActive != nil {
		body["is_active"] = *p.IsActive
	}
	if p.SetResult {
		body["winner_id"] = p.WinnerID
		body["winning_bid"] = p.WinningBid
	}
	return json.Marshal(body)
}

func (p *AuctionPatch) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name         *string  `json:"name"`
		Description  *string  `json:"description"`
		EndDate      *string  `json:"end_date"`
		ImageURL     *string  `json:"image_url"`
		MaxOffer     *float64 `json:"max_offer"`
		Inscriptions *int     `json:"inscriptions"`
		IsActive     *bool    `json:"is_active"`
		WinnerID     *string  `json:"winner_id"`
		WinningBid   *float64 `json:"winning_bid"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	// presence of the result keys matters even when they are null
	var keys map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	_, hasWinner := keys["winner_id"]
	_, hasWinningBid := keys["winning_bid"]

	*p = AuctionPatch{
		Name:         raw.Name,
		Description:  raw.Description,
		EndDate:      raw.EndDate,
		ImageURL:     raw.ImageURL,
		MaxOffer:     raw.MaxOffer,
		Inscriptions: raw.Inscriptions,
		IsActive:     raw.IsActive,
		SetResult:    hasWinner || hasWinningBid,
		WinnerID:     raw.WinnerID,
		WinningBid:   raw.WinningBid,
	}
	return nil
}
