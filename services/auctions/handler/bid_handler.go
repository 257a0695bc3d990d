package handler

import (
	"net/http"

	"auction-client/internal/models"
	"auction-client/services/auctions/helpers"
	"auction-client/utils"

	"github.com/gin-gonic/gin"
)

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.ToBidRequest())
	if err != nil {
		respondError(c, "PlaceBidHandler", err, map[string]any{
			"auction_id": req.AuctionID,
			"user_id":    req.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bid)
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.ID,
		"auction_id": bid.AuctionID,
		"user_id":    bid.UserID,
		"amount":     bid.Amount,
	})
}

// ListBidsHandler handles GET /bids?auction_id=
func (h *AuctionHandler) ListBidsHandler(c *gin.Context) {
	var query helpers.ListBidsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		helpers.HandleBindError(c, "ListBidsHandler", err)
		return
	}

	bids, err := h.service.GetBidsForAuction(query.AuctionID)
	if err != nil {
		respondError(c, "ListBidsHandler", err, map[string]any{"auction_id": query.AuctionID})
		return
	}
	if bids == nil {
		bids = []models.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids)
	helpers.LogSuccess("ListBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": query.AuctionID,
		"count":      len(bids),
	})
}

// UpdateBidHandler handles PATCH /bids/:id
func (h *AuctionHandler) UpdateBidHandler(c *gin.Context) {
	bidID := c.Param("id")

	var req helpers.UpdateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateBidHandler", err)
		return
	}

	bid, err := h.service.UpdateBidAmount(bidID, req.Amount)
	if err != nil {
		respondError(c, "UpdateBidHandler", err, map[string]any{"bid_id": bidID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bid)
	helpers.LogSuccess("UpdateBidHandler", "bid updated successfully", map[string]any{
		"bid_id": bid.ID,
		"amount": bid.Amount,
	})
}
