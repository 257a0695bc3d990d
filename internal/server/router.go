package server

import (
	handler "auction-client/services/auctions/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures the REST routes the auction client talks to
func SetupRouter(service handler.AuctionServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(service)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("/:id", auctionHandler.GetAuctionHandler)
		auctions.PATCH("/:id", auctionHandler.UpdateAuctionHandler)
		auctions.DELETE("/:id", auctionHandler.DeleteAuctionHandler)
		auctions.GET("/:id/result", auctionHandler.GetAuctionResultHandler)
	}

	bids := router.Group("/bids")
	{
		bids.GET("", auctionHandler.ListBidsHandler)
		bids.POST("", auctionHandler.PlaceBidHandler)
		bids.PATCH("/:id", auctionHandler.UpdateBidHandler)
	}

	return router
}
