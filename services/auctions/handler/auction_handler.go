//go:generate mockgen -package=handler -destination=mock_service.go -source=auction_handler.go

package handler

import (
	"errors"
	"fmt"
	"net/http"

	"auction-client/internal/models"
	"auction-client/services/auctions/helpers"
	"auction-client/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	ListAuctions(search string) []models.Auction
	GetAuction(auctionID string) (models.Auction, error)
	CreateAuction(auction models.Auction) (models.Auction, error)
	UpdateAuction(auctionID string, patch models.AuctionPatch) (models.Auction, error)
	DeleteAuction(auctionID string) error
	GetAuctionResult(auctionID string) (models.BidResponse, error)
	PlaceBid(req models.BidRequest) (models.Bid, error)
	GetBidsForAuction(auctionID string) ([]models.Bid, error)
	UpdateBidAmount(bidID string, amount float64) (models.Bid, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// respondError maps a service error to a JSON error response and logs it
func respondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// ListAuctionsHandler handles GET /auctions?search=
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	var query helpers.ListAuctionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		helpers.HandleBindError(c, "ListAuctionsHandler", err)
		return
	}

	auctions := h.service.ListAuctions(query.Search)
	if auctions == nil {
		auctions = []models.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions)
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"search": query.Search,
		"count":  len(auctions),
	})
}

// GetAuctionHandler handles GET /auctions/:id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("id")
	auction, err := h.service.GetAuction(auctionID)
	if err != nil {
		respondError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction)
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	auction, err := h.service.CreateAuction(req.ToAuction())
	if err != nil {
		respondError(c, "CreateAuctionHandler", err, map[string]any{"name": req.Name})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction)
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.ID,
		"name":       auction.Name,
		"max_offer":  auction.MaxOffer,
	})
}

// UpdateAuctionHandler handles PATCH /auctions/:id
func (h *AuctionHandler) UpdateAuctionHandler(c *gin.Context) {
	auctionID := c.Param("id")

	var patch models.AuctionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		helpers.HandleBindError(c, "UpdateAuctionHandler", err)
		return
	}
	if patch.Empty() {
		helpers.HandleBindError(c, "UpdateAuctionHandler", errors.New("no fields to update"))
		return
	}

	auction, err := h.service.UpdateAuction(auctionID, patch)
	if err != nil {
		respondError(c, "UpdateAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction)
	helpers.LogSuccess("UpdateAuctionHandler", "auction updated successfully", map[string]any{
		"auction_id":   auction.ID,
		"max_offer":    auction.MaxOffer,
		"inscriptions": auction.Inscriptions,
		"active":       auction.Active(),
	})
}

// DeleteAuctionHandler handles DELETE /auctions/:id
func (h *AuctionHandler) DeleteAuctionHandler(c *gin.Context) {
	auctionID := c.Param("id")
	if err := h.service.DeleteAuction(auctionID); err != nil {
		respondError(c, "DeleteAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{})
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted successfully", map[string]any{"auction_id": auctionID})
}

// GetAuctionResultHandler handles GET /auctions/:id/result
func (h *AuctionHandler) GetAuctionResultHandler(c *gin.Context) {
	auctionID := c.Param("id")
	result, err := h.service.GetAuctionResult(auctionID)
	if err != nil {
		respondError(c, "GetAuctionResultHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, result)
}
