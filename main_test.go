package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	bidding "auction-client/internal/biddingService"
	"auction-client/internal/models"
	"auction-client/internal/repository"
	"auction-client/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

// Helper to start the dev backend with one seeded auction
func newBackend(t *testing.T) (*httptest.Server, *repository.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryRepo()
	require.NoError(t, store.SaveAuction(models.Auction{
		ID:       "a1",
		Name:     "Vintage Lamp",
		MaxOffer: 100,
		EndDate:  "2026-12-31",
		MinBid:   lo.ToPtr(100.0),
		IsActive: lo.ToPtr(true),
	}))

	srv := httptest.NewServer(server.SetupRouter(bidding.NewBiddingService(store)))
	t.Cleanup(srv.Close)
	return srv, store
}

// Helper to run the CLI and capture both streams
func runCLI(t *testing.T, baseURL string, argv ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{"--base-url", baseURL, "--timeout", "2s", "--log-level", "error"}, argv...)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	code := run(ctx, full, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_List(t *testing.T) {
	srv, _ := newBackend(t)

	code, out, _ := runCLI(t, srv.URL, "list")
	require.Equal(t, 0, code)
	require.Contains(t, out, "Vintage Lamp")
	require.Contains(t, out, "$100.00")

	code, out, _ = runCLI(t, srv.URL, "list", "--search", "piano")
	require.Equal(t, 0, code)
	require.Contains(t, out, "no auctions found")
}

func TestRun_BidFlow(t *testing.T) {
	srv, store := newBackend(t)

	// too low: rejected before anything is sent
	code, _, errOut := runCLI(t, srv.URL, "--user", "ana", "bid", "a1", "100")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "bid must be a valid number greater than the current offer")
	_, err := store.GetBidsByAuction("a1")
	require.Error(t, err)

	code, out, _ := runCLI(t, srv.URL, "--user", "ana", "bid", "a1", "150")
	require.Equal(t, 0, code)
	require.Contains(t, out, "bid placed and auction updated")

	auction, err := store.GetAuction("a1")
	require.NoError(t, err)
	require.Equal(t, 150.0, auction.MaxOffer)
	require.Equal(t, 1, auction.Inscriptions)

	code, _, errOut = runCLI(t, srv.URL, "bid", "a1", "200")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "please enter your name")
}

func TestRun_FinishAndResult(t *testing.T) {
	srv, _ := newBackend(t)

	for _, bid := range []struct{ user, amount string }{{"A", "110"}, {"B", "250"}, {"C", "260"}} {
		code, _, _ := runCLI(t, srv.URL, "--user", bid.user, "bid", "a1", bid.amount)
		require.Equal(t, 0, code)
	}

	code, out, _ := runCLI(t, srv.URL, "finish", "a1")
	require.Equal(t, 0, code)
	require.Contains(t, out, "auction finished. winner: C with $260")
	require.Contains(t, out, "finished")

	code, out, _ = runCLI(t, srv.URL, "result", "a1")
	require.Equal(t, 0, code)
	require.Contains(t, out, "Leader:")
	require.Contains(t, out, "C")
}

func TestRun_CreateAndDelete(t *testing.T) {
	srv, store := newBackend(t)

	code, _, errOut := runCLI(t, srv.URL, "create", "--name", "Desk", "--min-offer", "cheap", "--end-date", "2027-01-01")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "minimum offer must be a valid number greater than zero")
	require.Len(t, store.ListAuctions(), 1)

	code, out, _ := runCLI(t, srv.URL, "create", "--name", "Desk", "--min-offer", "40", "--end-date", "2027-01-01")
	require.Equal(t, 0, code)
	require.Contains(t, out, "auction 'Desk' created")
	require.Len(t, store.ListAuctions(), 2)

	created := store.ListAuctions()[1]
	code, out, _ = runCLI(t, srv.URL, "delete", created.ID)
	require.Equal(t, 0, code)
	require.Contains(t, out, "auction deleted")
	require.Len(t, store.ListAuctions(), 1)

	code, _, errOut = runCLI(t, srv.URL, "show", created.ID)
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "failed to load auction details")
}

func TestRun_Revise(t *testing.T) {
	srv, store := newBackend(t)

	code, _, _ := runCLI(t, srv.URL, "--user", "ana", "bid", "a1", "120")
	require.Equal(t, 0, code)
	bids, err := store.GetBidsByAuction("a1")
	require.NoError(t, err)

	code, out, _ := runCLI(t, srv.URL, "revise", "a1", bids[0].ID, "300")
	require.Equal(t, 0, code)
	require.Contains(t, out, "bid updated")

	auction, err := store.GetAuction("a1")
	require.NoError(t, err)
	require.Equal(t, 300.0, auction.MaxOffer)
}

func TestRun_BackendDown(t *testing.T) {
	srv, _ := newBackend(t)
	base := srv.URL
	srv.Close()

	code, _, errOut := runCLI(t, base, "list")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "failed to load auctions, try again")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		argv []string
	}{
		{name: "no_command", argv: nil},
		{name: "unknown_command", argv: []string{"auction"}},
		{name: "missing_param", argv: []string{"show"}},
		{name: "extra_param", argv: []string{"finish", "a1", "a2"}},
		{name: "unknown_flag", argv: []string{"--colour", "list"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			code := run(context.Background(), tc.argv, &out, &errOut)

			require.Equal(t, 2, code)
			require.True(t, strings.Contains(errOut.String(), "usage:"))
			require.Empty(t, out.String())
		})
	}
}

func TestParseArgs_EnvironmentOverride(t *testing.T) {
	t.Setenv("AUCTION_BASE_URL", "http://auctions.internal:9000/")
	t.Setenv("AUCTION_MESSAGE_TTL", "5s")
	t.Setenv("AUCTION_USER", "env-user")

	args, err := ParseArgs([]string{"--user", "flag-user", "bid", "a1", "10"})
	require.NoError(t, err)

	require.Equal(t, "http://auctions.internal:9000/", args.BaseURL)
	require.Equal(t, 5*time.Second, args.MessageTTL)
	require.Equal(t, "flag-user", args.User)
	require.Equal(t, "bid", args.Command)
	require.Equal(t, []string{"a1", "10"}, args.Params)
}

func TestParseArgs_Defaults(t *testing.T) {
	args, err := ParseArgs([]string{"list"})
	require.NoError(t, err)

	require.Equal(t, "http://localhost:3000/", args.BaseURL)
	require.Equal(t, 30*time.Second, args.Timeout)
	require.Equal(t, 3*time.Second, args.MessageTTL)
	require.Equal(t, "warn", args.LogLevel)
}
