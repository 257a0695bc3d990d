package integrationtests

import (
	"net/http/httptest"
	"testing"
	"time"

	"auction-client/internal/auctions"
	bidding "auction-client/internal/biddingService"
	"auction-client/internal/client"
	"auction-client/internal/models"
	"auction-client/internal/repository"
	"auction-client/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// TestEnv is a running dev backend with a client-side repository pointed at it
type TestEnv struct {
	Server *httptest.Server
	Store  *repository.MemoryRepo
	Repo   *auctions.APIRepository
}

// SetupTestEnv starts the dev backend over an in-memory store seeded with auctions
func SetupTestEnv(t *testing.T, seed ...models.Auction) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryRepo()
	for _, auction := range seed {
		require.NoError(t, store.SaveAuction(auction))
	}

	srv := httptest.NewServer(server.SetupRouter(bidding.NewBiddingService(store)))
	t.Cleanup(srv.Close)

	c, err := client.New(client.Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)

	return &TestEnv{
		Server: srv,
		Store:  store,
		Repo:   auctions.NewRepository(c),
	}
}

// SeedBids records bids directly in the store, in order
func (e *TestEnv) SeedBids(t *testing.T, bids ...models.Bid) {
	t.Helper()
	for _, bid := range bids {
		require.NoError(t, e.Store.RecordBidForAuction(bid))
	}
}
