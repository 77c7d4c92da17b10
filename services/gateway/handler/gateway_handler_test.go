package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"auction-client/internal/biddingerrors"
	"auction-client/services/gateway/helpers"
	"auction-client/services/gateway/store"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var (
	seller   = store.User{ID: 1, Name: "Seller", Email: "seller@example.com"}
	buyer    = store.User{ID: 2, Name: "Buyer", Email: "buyer@example.com"}
	closedAt = time.Date(2026, 10, 20, 11, 30, 0, 0, time.UTC)
	pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter mounts every handler behind a stub that signs in as viewer
func newTestRouter(t *testing.T, viewer *store.User) (*gin.Engine, *MockGatewayStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStore := NewMockGatewayStore(ctrl)

	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	h := NewGatewayHandler(mockStore, jakarta, "/api/auctions")

	router := gin.New()
	router.POST("/auth/register", h.RegisterHandler)
	router.POST("/auth/login", h.LoginHandler)

	authed := router.Group("", func(c *gin.Context) {
		if viewer != nil {
			c.Set(helpers.UserKey, *viewer)
		}
		c.Next()
	})
	authed.GET("/auth/me", h.MeHandler)
	authed.GET("/auctions", h.ListAuctionsHandler)
	authed.POST("/auctions", h.CreateAuctionHandler)
	authed.GET("/auctions/:id", h.GetAuctionHandler)
	authed.PUT("/auctions/:id", h.UpdateAuctionHandler)
	authed.DELETE("/auctions/:id", h.DeleteAuctionHandler)
	authed.POST("/auctions/:id/cover", h.ChangeCoverHandler)
	authed.GET("/auctions/:id/cover", h.CoverImageHandler)
	authed.POST("/auctions/:id/bids", h.AddBidHandler)
	authed.DELETE("/auctions/:id/bids", h.DeleteBidHandler)

	return router, mockStore
}

func serve(router *gin.Engine, method, target string, body []byte, contentType string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func serveForm(router *gin.Engine, method, target string, form url.Values) (*httptest.ResponseRecorder, map[string]any) {
	return serve(router, method, target, []byte(form.Encode()), "application/x-www-form-urlencoded")
}

func multipartAuction(t *testing.T, fields map[string]string, cover []byte) ([]byte, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if cover != nil {
		part, err := w.CreateFormFile("cover", "watch.png")
		require.NoError(t, err)
		_, err = part.Write(cover)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes(), w.FormDataContentType()
}

// Test AddBidHandler
func TestAddBidHandler(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		form           url.Values
		mockSetup      func(m *MockGatewayStore)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success_valid_bid",
			path: "/auctions/10/bids",
			form: url.Values{"bid": {"200001"}},
			mockSetup: func(m *MockGatewayStore) {
				m.EXPECT().AddBid(buyer.ID, int64(10), int64(200001)).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid recorded successfully",
		},
		{
			name:           "missing_bid",
			path:           "/auctions/10/bids",
			form:           url.Values{},
			mockSetup:      func(m *MockGatewayStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "negative_bid",
			path:           "/auctions/10/bids",
			form:           url.Values{"bid": {"-5"}},
			mockSetup:      func(m *MockGatewayStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "bad_auction_id",
			path:           "/auctions/abc/bids",
			form:           url.Values{"bid": {"10"}},
			mockSetup:      func(m *MockGatewayStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "bid_too_low",
			path: "/auctions/10/bids",
			form: url.Values{"bid": {"150000"}},
			mockSetup: func(m *MockGatewayStore) {
				m.EXPECT().AddBid(buyer.ID, int64(10), int64(150000)).Return(fmt.Errorf("store: %w - bid must be above 200000", biddingerrors.ErrBidTooLow))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid amount too low",
		},
		{
			name: "auction_closed",
			path: "/auctions/10/bids",
			form: url.Values{"bid": {"300000"}},
			mockSetup: func(m *MockGatewayStore) {
				m.EXPECT().AddBid(buyer.ID, int64(10), int64(300000)).Return(biddingerrors.ErrAuctionClosed)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "auction is closed",
		},
		{
			name: "owner_cannot_bid",
			path: "/auctions/10/bids",
			form: url.Values{"bid": {"300000"}},
			mockSetup: func(m *MockGatewayStore) {
				m.EXPECT().AddBid(buyer.ID, int64(10), int64(300000)).Return(biddingerrors.ErrOwnerCannotBid)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "own auction",
		},
		{
			name: "auction_not_found",
			path: "/auctions/99/bids",
			form: url.Values{"bid": {"300000"}},
			mockSetup: func(m *MockGatewayStore) {
				m.EXPECT().AddBid(buyer.ID, int64(99), int64(300000)).Return(biddingerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
		{
			name: "store_generic_error",
			path: "/auctions/10/bids",
			form: url.Values{"bid": {"300000"}},
			mockSetup: func(m *MockGatewayStore) {
				m.EXPECT().AddBid(buyer.ID, int64(10), int64(300000)).Return(errors.New("disk on fire"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, mockStore := newTestRouter(t, &buyer)
			tc.mockSetup(mockStore)

			w, resp := serveForm(router, http.MethodPost, tc.path, tc.form)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
			require.Equal(t, w.Code < 300, resp["success"])
		})
	}
}

// Test LoginHandler and RegisterHandler
func TestAuthHandlers(t *testing.T) {
	t.Run("login_success", func(t *testing.T) {
		router, mockStore := newTestRouter(t, nil)
		mockStore.EXPECT().Login("seller@example.com", "secret").Return(seller, "tok-1", nil)

		w, resp := serveForm(router, http.MethodPost, "/auth/login", url.Values{
			"email": {"seller@example.com"}, "password": {"secret"},
		})
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, "tok-1", data["token"])
		user := data["user"].(map[string]any)
		require.Equal(t, 1.0, user["id"])
		require.Equal(t, "Seller", user["name"])
	})

	t.Run("login_wrong_password", func(t *testing.T) {
		router, mockStore := newTestRouter(t, nil)
		mockStore.EXPECT().Login("seller@example.com", "nope").Return(store.User{}, "", biddingerrors.ErrInvalidCredentials)

		w, resp := serveForm(router, http.MethodPost, "/auth/login", url.Values{
			"email": {"seller@example.com"}, "password": {"nope"},
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "invalid email or password", resp["message"])
		require.Equal(t, false, resp["success"])
	})

	t.Run("register_success", func(t *testing.T) {
		router, mockStore := newTestRouter(t, nil)
		mockStore.EXPECT().Register("Ana", "ana@example.com", "secret1").Return(store.User{ID: 3}, nil)

		w, resp := serveForm(router, http.MethodPost, "/auth/register", url.Values{
			"name": {"Ana"}, "email": {"ana@example.com"}, "password": {"secret1"},
		})
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, true, resp["success"])
	})

	t.Run("register_invalid_email", func(t *testing.T) {
		router, _ := newTestRouter(t, nil)

		w, _ := serveForm(router, http.MethodPost, "/auth/register", url.Values{
			"name": {"Ana"}, "email": {"not-an-email"}, "password": {"secret1"},
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("register_email_taken", func(t *testing.T) {
		router, mockStore := newTestRouter(t, nil)
		mockStore.EXPECT().Register("Ana", "ana@example.com", "secret1").Return(store.User{}, biddingerrors.ErrEmailTaken)

		w, resp := serveForm(router, http.MethodPost, "/auth/register", url.Values{
			"name": {"Ana"}, "email": {"ana@example.com"}, "password": {"secret1"},
		})
		require.Equal(t, http.StatusConflict, w.Code)
		require.Equal(t, "email already registered", resp["message"])
	})

	t.Run("me", func(t *testing.T) {
		router, _ := newTestRouter(t, &buyer)

		w, resp := serve(router, http.MethodGet, "/auth/me", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		user := resp["data"].(map[string]any)["user"].(map[string]any)
		require.Equal(t, 2.0, user["id"])
	})

	t.Run("me_without_user", func(t *testing.T) {
		router, _ := newTestRouter(t, nil)

		w, _ := serve(router, http.MethodGet, "/auth/me", nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// Test GetAuctionHandler
func TestGetAuctionHandler(t *testing.T) {
	router, mockStore := newTestRouter(t, &buyer)

	auction := store.Auction{
		ID:          10,
		Title:       "Vintage watch",
		Description: "Runs well",
		StartBid:    200000,
		ClosedAt:    closedAt,
		UserID:      seller.ID,
		HasCover:    true,
		Bids: []store.Bid{
			{ID: 1, UserID: 3, Amount: 210000, CreatedAt: closedAt.Add(-2 * time.Hour)},
			{ID: 2, UserID: buyer.ID, Amount: 250000, CreatedAt: closedAt.Add(-time.Hour)},
		},
	}
	mockStore.EXPECT().GetAuction(int64(10)).Return(auction, nil)
	mockStore.EXPECT().User(seller.ID).Return(seller, nil)

	w, resp := serve(router, http.MethodGet, "/auctions/10", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)["auction"].(map[string]any)
	require.Equal(t, 10.0, data["id"])
	require.Equal(t, 200000.0, data["start_bid"])
	// written in the gateway zone, UTC+7
	require.Equal(t, "2026-10-20 18:30:00", data["closed_at"])
	require.Equal(t, "/api/auctions/10/cover", data["cover"])
	require.Equal(t, 1.0, data["user_id"])
	require.Equal(t, "Seller", data["author"].(map[string]any)["name"])
	require.Len(t, data["bids"], 2)

	myBid := data["my_bid"].(map[string]any)
	require.Equal(t, 250000.0, myBid["bid"])
	require.Equal(t, "2026-10-20 17:30:00", myBid["created_at"])
}

func TestGetAuctionHandler_Errors(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		router, mockStore := newTestRouter(t, &buyer)
		mockStore.EXPECT().GetAuction(int64(99)).Return(store.Auction{}, biddingerrors.ErrAuctionNotFound)

		w, resp := serve(router, http.MethodGet, "/auctions/99", nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, "auction not found", resp["message"])
	})

	t.Run("missing_author_is_a_server_error", func(t *testing.T) {
		router, mockStore := newTestRouter(t, &buyer)
		mockStore.EXPECT().GetAuction(int64(10)).Return(store.Auction{ID: 10, UserID: 42, ClosedAt: closedAt}, nil)
		mockStore.EXPECT().User(int64(42)).Return(store.User{}, biddingerrors.ErrUnknownToken)

		w, _ := serve(router, http.MethodGet, "/auctions/10", nil, "")
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

// Test ListAuctionsHandler
func TestListAuctionsHandler(t *testing.T) {
	zero := 0

	tests := []struct {
		name           string
		query          string
		mockSetup      func(m *MockGatewayStore)
		expectedStatus int
		expectedCount  int
	}{
		{
			name:  "all",
			query: "",
			mockSetup: func(m *MockGatewayStore) {
				m.EXPECT().ListAuctions(buyer.ID, store.ListQuery{}).Return([]store.Auction{
					{ID: 1, UserID: seller.ID, ClosedAt: closedAt},
					{ID: 2, UserID: seller.ID, ClosedAt: closedAt},
				})
				m.EXPECT().User(seller.ID).Return(seller, nil).Times(2)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:  "mine_and_closed_flag",
			query: "?is_me=1&is_closed=0",
			mockSetup: func(m *MockGatewayStore) {
				m.EXPECT().ListAuctions(buyer.ID, store.ListQuery{Mine: true, IsClosed: &zero}).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "invalid_flag",
			query:          "?is_closed=2",
			mockSetup:      func(m *MockGatewayStore) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, mockStore := newTestRouter(t, &buyer)
			tc.mockSetup(mockStore)

			w, resp := serve(router, http.MethodGet, "/auctions"+tc.query, nil, "")
			require.Equal(t, tc.expectedStatus, w.Code)

			if w.Code == http.StatusOK {
				auctions := resp["data"].(map[string]any)["auctions"].([]any)
				require.Len(t, auctions, tc.expectedCount)
			}
		})
	}
}

// Test CreateAuctionHandler
func TestCreateAuctionHandler(t *testing.T) {
	fields := map[string]string{
		"title":       "Vintage watch",
		"description": "Runs well",
		"start_bid":   "200000",
		"closed_at":   "2026-10-20 18:30:00",
	}

	t.Run("success", func(t *testing.T) {
		router, mockStore := newTestRouter(t, &seller)
		mockStore.EXPECT().CreateAuction(seller.ID, gomock.Any(), gomock.Any()).DoAndReturn(func(_ int64, in store.AuctionInput, cover store.Cover) (int64, error) {
			require.Equal(t, "Vintage watch", in.Title)
			require.Equal(t, int64(200000), in.StartBid)
			require.True(t, in.ClosedAt.Equal(closedAt))
			require.Equal(t, "watch.png", cover.Filename)
			require.Equal(t, "image/png", cover.ContentType)
			return 10, nil
		})

		body, contentType := multipartAuction(t, fields, pngBytes)
		w, resp := serve(router, http.MethodPost, "/auctions", body, contentType)
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, 10.0, resp["data"].(map[string]any)["auction_id"])
	})

	t.Run("missing_cover", func(t *testing.T) {
		router, _ := newTestRouter(t, &seller)

		body, contentType := multipartAuction(t, fields, nil)
		w, resp := serve(router, http.MethodPost, "/auctions", body, contentType)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "cover is required", resp["message"])
	})

	t.Run("cover_not_an_image", func(t *testing.T) {
		router, _ := newTestRouter(t, &seller)

		body, contentType := multipartAuction(t, fields, []byte("plain text"))
		w, resp := serve(router, http.MethodPost, "/auctions", body, contentType)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "cover must be an image", resp["message"])
	})

	t.Run("bad_closing_time", func(t *testing.T) {
		router, _ := newTestRouter(t, &seller)

		bad := map[string]string{}
		for k, v := range fields {
			bad[k] = v
		}
		bad["closed_at"] = "next tuesday"

		body, contentType := multipartAuction(t, bad, pngBytes)
		w, resp := serve(router, http.MethodPost, "/auctions", body, contentType)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.True(t, strings.HasPrefix(resp["message"].(string), "closed_at"))
	})
}

// Test owner-only handlers
func TestOwnerHandlers(t *testing.T) {
	form := url.Values{
		"title":       {"Vintage watch"},
		"description": {"Serviced"},
		"start_bid":   {"220000"},
		"closed_at":   {"2026-10-20 18:30"},
	}

	t.Run("update", func(t *testing.T) {
		router, mockStore := newTestRouter(t, &seller)
		mockStore.EXPECT().UpdateAuction(seller.ID, int64(10), gomock.Any()).Return(nil)

		w, _ := serveForm(router, http.MethodPut, "/auctions/10", form)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("update_not_owner", func(t *testing.T) {
		router, mockStore := newTestRouter(t, &buyer)
		mockStore.EXPECT().UpdateAuction(buyer.ID, int64(10), gomock.Any()).Return(biddingerrors.ErrNotOwner)

		w, _ := serveForm(router, http.MethodPut, "/auctions/10", form)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("change_cover", func(t *testing.T) {
		router, mockStore := newTestRouter(t, &seller)
		mockStore.EXPECT().SetCover(seller.ID, int64(10), gomock.Any()).Return(nil)

		body, contentType := multipartAuction(t, nil, pngBytes)
		w, _ := serve(router, http.MethodPost, "/auctions/10/cover", body, contentType)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("cover_image", func(t *testing.T) {
		router, mockStore := newTestRouter(t, &buyer)
		mockStore.EXPECT().Cover(int64(10)).Return(store.Cover{ContentType: "image/png", Content: pngBytes}, nil)

		w, _ := serve(router, http.MethodGet, "/auctions/10/cover", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "image/png", w.Header().Get("Content-Type"))
		require.Equal(t, pngBytes, w.Body.Bytes())
	})

	t.Run("delete", func(t *testing.T) {
		router, mockStore := newTestRouter(t, &seller)
		mockStore.EXPECT().DeleteAuction(seller.ID, int64(10)).Return(nil)

		w, _ := serve(router, http.MethodDelete, "/auctions/10", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("withdraw_without_bid", func(t *testing.T) {
		router, mockStore := newTestRouter(t, &buyer)
		mockStore.EXPECT().DeleteBid(buyer.ID, int64(10)).Return(biddingerrors.ErrNoBidToWithdraw)

		w, resp := serve(router, http.MethodDelete, "/auctions/10/bids", nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, "no bid to withdraw", resp["message"])
	})
}
