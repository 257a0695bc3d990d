package main

import (
	"fmt"
	"os"
	"strings"

	bidding "auction-client/internal/biddingService"
	"auction-client/internal/models"
	"auction-client/internal/repository"
	"auction-client/internal/server"
	"auction-client/utils"

	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	pflag.String("addr", ":3000", "listen address")
	pflag.Bool("seed", true, "start with sample auctions")
	pflag.String("log-level", "info", "debug, info, warn or error")

	// bind pflag to viper
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("AUCTION_DEVSERVER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if err := utils.SetLevel(viper.GetString("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		os.Exit(2)
	}
	utils.SetOutput(os.Stdout)

	repo := repository.NewMemoryRepo()
	if viper.GetBool("seed") {
		prepopulateAuctions(repo)
	}

	biddingSvc := bidding.NewBiddingService(repo)

	router := server.SetupRouter(biddingSvc)

	addr := viper.GetString("addr")
	utils.Info("Starting auction dev server", map[string]any{"addr": addr, "auctions": len(repo.ListAuctions())})
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateAuctions adds sample auctions to the in-memory repo
func prepopulateAuctions(repo *repository.MemoryRepo) {
	auctions := []models.Auction{
		{ID: "1", Name: "Vintage Lamp", Description: "Auction of Vintage Lamp", MaxOffer: 100, EndDate: "2026-12-31", MinBid: lo.ToPtr(100.0), IsActive: lo.ToPtr(true)},
		{ID: "2", Name: "Oak Desk", Description: "Auction of Oak Desk", MaxOffer: 200, EndDate: "2026-11-30", MinBid: lo.ToPtr(200.0), IsActive: lo.ToPtr(true)},
		{ID: "3", Name: "Film Camera", Description: "Auction of Film Camera", MaxOffer: 150, EndDate: "2027-01-15", MinBid: lo.ToPtr(150.0), IsActive: lo.ToPtr(true)},
	}

	for _, auction := range auctions {
		if err := repo.SaveAuction(auction); err != nil {
			utils.Error("failed to seed auction", map[string]any{"auction_id": auction.ID, "error": err.Error()})
		}
	}
}
