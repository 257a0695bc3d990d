package auctions

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"auction-client/internal/biddingerrors"
	"auction-client/internal/client"
	"auction-client/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

// Helper to build a repository over a real client pointed at handler
func newTestRepository(t *testing.T, handler http.HandlerFunc) *APIRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := client.New(client.Config{BaseURL: srv.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)
	return NewRepository(c)
}

// Helper to build a repository whose server is already gone
func newUnreachableRepository(t *testing.T) *APIRepository {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := client.New(client.Config{BaseURL: base, Timeout: time.Second})
	require.NoError(t, err)
	return NewRepository(c)
}

func failWith(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, `{"error":"failure"}`)
	}
}

func TestAPIRepository_GetAuctions(t *testing.T) {
	t.Run("search_param_sent_when_not_blank", func(t *testing.T) {
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/auctions", r.URL.Path)
			require.Equal(t, "lamp", r.URL.Query().Get("search"))
			_, _ = io.WriteString(w, `[{"id":"a1","name":"Lamp","max_offer":10,"inscriptions":0,"end_date":"2026-12-31"}]`)
		})

		auctions := repo.GetAuctions(context.Background(), " lamp ")
		require.Len(t, auctions, 1)
		require.Equal(t, "Lamp", auctions[0].Name)
	})

	t.Run("blank_search_omits_param", func(t *testing.T) {
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			_, present := r.URL.Query()["search"]
			require.False(t, present)
			_, _ = io.WriteString(w, `[]`)
		})

		auctions := repo.GetAuctions(context.Background(), "  ")
		require.NotNil(t, auctions)
		require.Empty(t, auctions)
	})

	t.Run("null_body_is_empty_list", func(t *testing.T) {
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `null`)
		})

		auctions := repo.GetAuctions(context.Background(), "")
		require.NotNil(t, auctions)
		require.Empty(t, auctions)
	})

	t.Run("server_error", func(t *testing.T) {
		repo := newTestRepository(t, failWith(http.StatusInternalServerError))
		require.Nil(t, repo.GetAuctions(context.Background(), ""))
	})

	t.Run("unreachable", func(t *testing.T) {
		require.Nil(t, newUnreachableRepository(t).GetAuctions(context.Background(), ""))
	})
}

func TestAPIRepository_SingleAuction(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/auctions/a1", r.URL.Path)
			_, _ = io.WriteString(w, `{"id":"a1","name":"Lamp","max_offer":10,"inscriptions":2,"end_date":"2026-12-31","winner_id":null,"winning_bid":null}`)
		})

		auction := repo.GetAuction(context.Background(), "a1")
		require.NotNil(t, auction)
		require.Equal(t, 2, auction.Inscriptions)
		require.True(t, auction.Active())
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo := newTestRepository(t, failWith(http.StatusNotFound))
		require.Nil(t, repo.GetAuction(context.Background(), "missing"))
	})

	t.Run("create", func(t *testing.T) {
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/auctions", r.URL.Path)
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.JSONEq(t, `{"name":"Lamp","max_offer":5,"inscriptions":0,"end_date":"2026-12-31","is_active":true,"winner_id":null,"winning_bid":null}`, string(body))

			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"id":"new","name":"Lamp","max_offer":5,"inscriptions":0,"end_date":"2026-12-31","is_active":true}`)
		})

		created := repo.CreateAuction(context.Background(), models.Auction{
			Name:     "Lamp",
			MaxOffer: 5,
			EndDate:  "2026-12-31",
			IsActive: lo.ToPtr(true),
		})
		require.NotNil(t, created)
		require.Equal(t, "new", created.ID)
	})

	t.Run("create_rejected", func(t *testing.T) {
		repo := newTestRepository(t, failWith(http.StatusBadRequest))
		require.Nil(t, repo.CreateAuction(context.Background(), models.Auction{Name: "Lamp"}))
	})

	t.Run("update_sends_patch", func(t *testing.T) {
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPatch, r.Method)
			require.Equal(t, "/auctions/a1", r.URL.Path)
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.JSONEq(t, `{"is_active":false,"max_offer":75,"winner_id":null,"winning_bid":null}`, string(body))
			_, _ = io.WriteString(w, `{"id":"a1","name":"Lamp","max_offer":75,"inscriptions":0,"end_date":"2026-12-31","is_active":false}`)
		})

		updated := repo.UpdateAuction(context.Background(), "a1", models.AuctionPatch{
			MaxOffer:  lo.ToPtr(75.0),
			IsActive:  lo.ToPtr(false),
			SetResult: true,
		})
		require.NotNil(t, updated)
		require.False(t, updated.Active())
	})

	t.Run("update_failure", func(t *testing.T) {
		repo := newTestRepository(t, failWith(http.StatusConflict))
		require.Nil(t, repo.UpdateAuction(context.Background(), "a1", models.AuctionPatch{MaxOffer: lo.ToPtr(1.0)}))
	})

	t.Run("delete", func(t *testing.T) {
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			require.Equal(t, "/auctions/a1", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})
		require.True(t, repo.DeleteAuction(context.Background(), "a1"))
	})

	t.Run("delete_failure", func(t *testing.T) {
		repo := newTestRepository(t, failWith(http.StatusNotFound))
		require.False(t, repo.DeleteAuction(context.Background(), "a1"))
	})

	t.Run("result", func(t *testing.T) {
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/auctions/a1/result", r.URL.Path)
			_, _ = io.WriteString(w, `{"success":true,"message":"auction closed","winner_id":"B","winning_bid":250}`)
		})

		result := repo.GetAuctionResult(context.Background(), "a1")
		require.NotNil(t, result)
		require.Equal(t, "B", *result.WinnerID)
		require.Equal(t, 250.0, *result.WinningBid)
	})

	t.Run("result_unreachable", func(t *testing.T) {
		require.Nil(t, newUnreachableRepository(t).GetAuctionResult(context.Background(), "a1"))
	})
}

func TestAPIRepository_Bids(t *testing.T) {
	t.Run("place", func(t *testing.T) {
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/bids", r.URL.Path)
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.JSONEq(t, `{"amount":150,"user_id":"ana","auction_id":"a1"}`, string(body))
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"id":"b1"}`)
		})

		require.True(t, repo.PlaceBid(context.Background(), models.BidRequest{Amount: 150, UserID: "ana", AuctionID: "a1"}))
	})

	t.Run("place_failure", func(t *testing.T) {
		repo := newTestRepository(t, failWith(http.StatusInternalServerError))
		require.False(t, repo.PlaceBid(context.Background(), models.BidRequest{Amount: 1, UserID: "ana", AuctionID: "a1"}))
	})

	t.Run("list_filters_by_auction", func(t *testing.T) {
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/bids", r.URL.Path)
			require.Equal(t, "a1", r.URL.Query().Get("auction_id"))
			_, _ = io.WriteString(w, `[{"id":"b1","amount":100,"user_id":"A","auction_id":"a1"},{"id":"b2","amount":250,"user_id":"B","auction_id":"a1"}]`)
		})

		bids := repo.GetBidsForAuction(context.Background(), "a1")
		require.Len(t, bids, 2)
		require.Equal(t, "b1", bids[0].ID)
	})

	t.Run("list_empty", func(t *testing.T) {
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `[]`)
		})

		bids := repo.GetBidsForAuction(context.Background(), "a1")
		require.NotNil(t, bids)
		require.Empty(t, bids)
	})

	t.Run("list_failure", func(t *testing.T) {
		require.Nil(t, newUnreachableRepository(t).GetBidsForAuction(context.Background(), "a1"))
	})

	t.Run("update_amount", func(t *testing.T) {
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPatch, r.Method)
			require.Equal(t, "/bids/b1", r.URL.Path)
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.JSONEq(t, `{"amount":300}`, string(body))
			_, _ = io.WriteString(w, `{"id":"b1","amount":300}`)
		})

		require.True(t, repo.UpdateBidAmount(context.Background(), "b1", 300))
	})

	t.Run("update_amount_failure", func(t *testing.T) {
		repo := newTestRepository(t, failWith(http.StatusNotFound))
		require.False(t, repo.UpdateBidAmount(context.Background(), "b1", 300))
	})
}

func TestAPIRepository_CollapsesTransportErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	transport := NewMockTransport(ctrl)
	repo := NewRepository(transport)

	failure := errors.Join(biddingerrors.ErrTransport, errors.New("connection reset"))
	transport.EXPECT().Get(gomock.Any(), "bids", url.Values{"auction_id": []string{"a1"}}, gomock.Any()).Return(failure)
	transport.EXPECT().Post(gomock.Any(), "bids", gomock.Any(), nil).Return(&client.StatusError{StatusCode: http.StatusBadGateway})
	transport.EXPECT().Delete(gomock.Any(), "auctions/a1").Return(failure)
	transport.EXPECT().Patch(gomock.Any(), "bids/b1", gomock.Any(), nil).Return(failure)

	require.Nil(t, repo.GetBidsForAuction(context.Background(), "a1"))
	require.False(t, repo.PlaceBid(context.Background(), models.BidRequest{AuctionID: "a1"}))
	require.False(t, repo.DeleteAuction(context.Background(), "a1"))
	require.False(t, repo.UpdateBidAmount(context.Background(), "b1", 5))
}
