package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	bidding "auction-marketplace/internal/biddingService"
	"auction-marketplace/internal/biddingerrors"
	model "auction-marketplace/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestCreateProductHandler(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	valid := map[string]any{
		"title":          "Camera",
		"starting_price": "100",
		"currency":       "USD",
		"bid_increment":  10,
		"buy_now_price":  "400",
		"start_date":     start.Format(time.RFC3339),
		"end_date":       start.Add(48 * time.Hour).Format(time.RFC3339),
	}

	tests := []struct {
		name           string
		body           map[string]any
		mockSetup      func(m *MockBiddingServiceInterface)
		expectedStatus int
	}{
		{
			name: "created",
			body: valid,
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().CreateProduct(gomock.Any(), "seller", gomock.Any()).DoAndReturn(
					func(_ any, _ string, in bidding.ProductInput) (model.Product, error) {
						require.Equal(t, "Camera", in.Title)
						require.True(t, in.BuyNowPrice.Valid)
						require.False(t, in.ReservePrice.Valid)
						require.Equal(t, start, in.StartDate.UTC())
						return model.Product{ProductID: "p1", Title: in.Title}, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing_dates",
			body:           map[string]any{"title": "Camera", "currency": "USD"},
			mockSetup:      func(m *MockBiddingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service_rejects",
			body: valid,
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().CreateProduct(gomock.Any(), "seller", gomock.Any()).
					Return(model.Product{}, biddingerrors.Detail(biddingerrors.ErrInvalidProduct, "End date must be after start date"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockService := NewMockBiddingServiceInterface(ctrl)
			tc.mockSetup(mockService)

			router := newTestRouter(model.User{UserID: "seller", Role: model.RoleSeller})
			router.POST("/products", NewBiddingHandler(mockService).CreateProductHandler)

			req := httptest.NewRequest(http.MethodPost, "/products", jsonBody(t, tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestVerifyProductHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockService := NewMockBiddingServiceInterface(ctrl)
	router := newTestRouter(model.User{UserID: "admin", Role: model.RoleAdmin})
	router.PATCH("/admin/products/:product_id/verify", NewBiddingHandler(mockService).VerifyProductHandler)

	mockService.EXPECT().VerifyProduct(gomock.Any(), "p1", true, dec("5")).
		Return(model.Product{ProductID: "p1", Verified: true, CommissionRate: dec("5")}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/admin/products/p1/verify", jsonBody(t, map[string]any{"verified": true, "commission_rate": 5}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Product verified for bidding", decodeBody(t, w)["message"])

	// verified is required
	req = httptest.NewRequest(http.MethodPatch, "/admin/products/p1/verify", jsonBody(t, map[string]any{"commission_rate": 5}))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWonAndSoldHandlers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		caller         model.User
		path           string
		mockSetup      func(m *MockBiddingServiceInterface)
		expectedStatus int
	}{
		{
			name:   "own_won_list",
			caller: model.User{UserID: "alice", Role: model.RoleBuyer},
			path:   "/users/alice/won",
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().GetProductsWonByUser(gomock.Any(), "alice").Return([]model.Product{{ProductID: "p1"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "someone_elses_won_list",
			caller:         model.User{UserID: "bob", Role: model.RoleBuyer},
			path:           "/users/alice/won",
			mockSetup:      func(m *MockBiddingServiceInterface) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "admin_reads_sold_list",
			caller: model.User{UserID: "root", Role: model.RoleAdmin},
			path:   "/users/seller/sold",
			mockSetup: func(m *MockBiddingServiceInterface) {
				m.EXPECT().GetProductsSoldByUser(gomock.Any(), "seller").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockService := NewMockBiddingServiceInterface(ctrl)
			tc.mockSetup(mockService)

			h := NewBiddingHandler(mockService)
			router := newTestRouter(tc.caller)
			router.GET("/users/:user_id/won", h.GetWonProductsHandler)
			router.GET("/users/:user_id/sold", h.GetSoldProductsHandler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}
