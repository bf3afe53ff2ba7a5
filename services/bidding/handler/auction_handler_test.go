package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	bidding "auction-marketplace/internal/biddingService"
	"auction-marketplace/internal/biddingerrors"
	model "auction-marketplace/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCheckAuctionsHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockService := NewMockBiddingServiceInterface(ctrl)
	router := newTestRouter(model.User{UserID: "admin", Role: model.RoleAdmin})
	router.GET("/admin/check-auctions", NewBiddingHandler(mockService).CheckAuctionsHandler)

	mockService.EXPECT().SweepEndedAuctions(gomock.Any()).Return(bidding.SweepReport{
		Processed: 2,
		Results: []bidding.SettlementResult{
			{ProductID: "p1", Status: bidding.StatusEnded, Outcome: bidding.OutcomeSold, WinnerID: "alice", Price: decimal.NewNullDecimal(dec("500"))},
			{ProductID: "p2", Status: bidding.StatusEnded, Outcome: bidding.OutcomeUnsold},
		},
	}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/check-auctions", nil))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	require.Equal(t, "Auction check completed", resp["message"])
	data := resp["data"].(map[string]any)
	require.EqualValues(t, 2, data["processed"])
	results := data["results"].([]any)
	require.Equal(t, "sold", results[0].(map[string]any)["outcome"])
	require.Equal(t, "500", results[0].(map[string]any)["price"])
	require.Nil(t, results[1].(map[string]any)["price"])
}

func TestCheckEndingSoonHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockService := NewMockBiddingServiceInterface(ctrl)
	router := newTestRouter(model.User{UserID: "admin", Role: model.RoleAdmin})
	router.GET("/admin/check-ending-soon", NewBiddingHandler(mockService).CheckEndingSoonHandler)

	mockService.EXPECT().NotifyEndingSoon(gomock.Any()).Return(bidding.ReminderReport{Count: 3, Products: []string{"a", "b", "c"}}, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/check-ending-soon", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 3, decodeBody(t, w)["data"].(map[string]any)["count"])

	mockService.EXPECT().NotifyEndingSoon(gomock.Any()).Return(bidding.ReminderReport{}, errors.New("db down"))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/check-ending-soon", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSellProductHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		summary        bidding.SaleSummary
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "sold",
			summary:        bidding.SaleSummary{ProductID: "p1", WinnerID: "alice", Price: dec("200"), Payout: dec("180"), Commission: dec("20")},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Product has been successfully sold!",
		},
		{
			name:           "not_owner",
			err:            biddingerrors.Detail(biddingerrors.ErrForbidden, "You do not have permission to sell this product"),
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "You do not have permission to sell this product",
		},
		{
			name:           "no_bids",
			err:            biddingerrors.ErrNoBids,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "No winning bid found for the product",
		},
		{
			name:           "closed",
			err:            biddingerrors.ErrAuctionClosed,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Bidding is closed",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockService := NewMockBiddingServiceInterface(ctrl)
			mockService.EXPECT().SellToHighestBidder(gomock.Any(), "p1", "seller").Return(tc.summary, tc.err)

			router := newTestRouter(model.User{UserID: "seller", Role: model.RoleSeller})
			router.POST("/products/:product_id/sell", NewBiddingHandler(mockService).SellProductHandler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/products/p1/sell", nil))

			require.Equal(t, tc.expectedStatus, w.Code)
			resp := decodeBody(t, w)
			require.Equal(t, tc.expectedMsg, resp["message"])
			if tc.err == nil {
				data := resp["data"].(map[string]any)
				require.Equal(t, "20", data["commission"])
				require.Equal(t, "180", data["payout"])
			}
		})
	}
}
