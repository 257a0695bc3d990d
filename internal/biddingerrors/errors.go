package biddingerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrBidNotFound     = errors.New("bid not found")
	ErrNoBids          = errors.New("no bids found for auction")
)

// Remote call errors
var (
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrTransport        = errors.New("transport failure")
	ErrDecode           = errors.New("malformed response body")
)

// business logic errors
var (
	ErrInvalidBid     = errors.New("invalid bid")
	ErrInvalidAuction = errors.New("invalid auction")
	ErrInvalidAmount  = errors.New("amount must be a valid number greater than zero")
	ErrBidTooLow      = errors.New("bid amount too low")
	ErrBlankBidder    = errors.New("bidder name is blank")
	ErrBlankName      = errors.New("auction name is blank")
	ErrBlankEndDate   = errors.New("auction end date is blank")
	ErrNoAuction      = errors.New("no auction loaded")
)
