package bidding

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"auction-marketplace/internal/biddingerrors"
	"auction-marketplace/internal/effects"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// recorder collects emitted effects.
type recorder struct {
	mu      sync.Mutex
	effects []effects.Effect
}

func (r *recorder) Emit(_ context.Context, e ...effects.Effect) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.effects = append(r.effects, e...)
}

func (r *recorder) all() []effects.Effect {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]effects.Effect(nil), r.effects...)
}

func activeProduct(id string) model.Product {
	return model.Product{
		ProductID:      id,
		SellerID:       "seller",
		Title:          "Vintage Camera",
		Condition:      model.ConditionUsed,
		StartingPrice:  dec("100"),
		Currency:       "USD",
		BidIncrement:   dec("10"),
		StartDate:      now.Add(-24 * time.Hour),
		EndDate:        now.Add(24 * time.Hour),
		Verified:       true,
		CommissionRate: dec("10"),
	}
}

// newMemoryService seeds a memory store with a seller, an admin, three
// buyers and the given products.
func newMemoryService(t *testing.T, products []model.Product, opts ...Option) (*BiddingService, *repository.MemoryRepo, *recorder) {
	t.Helper()
	repo := repository.NewMemoryRepo()
	repo.AddUser(model.User{UserID: "seller", Username: "seller", Role: model.RoleSeller, Email: "seller@example.com"})
	repo.AddUser(model.User{UserID: "admin", Username: "admin", Role: model.RoleAdmin})
	for _, id := range []string{"alice", "bob", "carol"} {
		repo.AddUser(model.User{UserID: id, Username: id, Role: model.RoleBuyer, Email: id + "@example.com", Balance: dec("1000")})
	}
	repo.AddUser(model.User{UserID: "mallory", Username: "mallory", Role: model.RoleSuspended})
	for _, p := range products {
		require.NoError(t, repo.CreateProduct(context.Background(), p))
	}

	rec := &recorder{}
	opts = append([]Option{WithClock(fixedClock), WithEmitter(rec)}, opts...)
	return NewBiddingService(repo, opts...), repo, rec
}

func balance(t *testing.T, repo *repository.MemoryRepo, userID string) decimal.Decimal {
	t.Helper()
	u, err := repo.GetUser(context.Background(), userID)
	require.NoError(t, err)
	return u.Balance
}

// Tests PlaceBid input validation and repository failures against a mock store
func TestBiddingService_PlaceBid_Mocked(t *testing.T) {
	t.Parallel()

	buyer := model.User{UserID: "user1", Role: model.RoleBuyer}
	product := activeProduct("p1")

	tests := []struct {
		name          string
		productID     string
		userID        string
		amount        string
		mockSetup     func(m *repository.MockAuctionDB)
		expectedError error
	}{
		{
			name:          "empty_productID",
			productID:     "",
			userID:        "user1",
			amount:        "120",
			mockSetup:     func(m *repository.MockAuctionDB) {},
			expectedError: biddingerrors.ErrInvalidBid,
		},
		{
			name:          "empty_userID",
			productID:     "p1",
			userID:        "  ",
			amount:        "120",
			mockSetup:     func(m *repository.MockAuctionDB) {},
			expectedError: biddingerrors.ErrInvalidBid,
		},
		{
			name:          "zero_amount",
			productID:     "p1",
			userID:        "user1",
			amount:        "0",
			mockSetup:     func(m *repository.MockAuctionDB) {},
			expectedError: biddingerrors.ErrInvalidBid,
		},
		{
			name:          "negative_amount",
			productID:     "p1",
			userID:        "user1",
			amount:        "-5",
			mockSetup:     func(m *repository.MockAuctionDB) {},
			expectedError: biddingerrors.ErrInvalidBid,
		},
		{
			name:      "unknown_bidder",
			productID: "p1",
			userID:    "ghost",
			amount:    "120",
			mockSetup: func(m *repository.MockAuctionDB) {
				m.EXPECT().GetUser(gomock.Any(), "ghost").Return(model.User{}, biddingerrors.ErrUserNotFound)
			},
			expectedError: biddingerrors.ErrUserNotFound,
		},
		{
			name:      "suspended_bidder",
			productID: "p1",
			userID:    "user1",
			amount:    "120",
			mockSetup: func(m *repository.MockAuctionDB) {
				m.EXPECT().GetUser(gomock.Any(), "user1").Return(model.User{UserID: "user1", Role: model.RoleSuspended}, nil)
			},
			expectedError: biddingerrors.ErrForbidden,
		},
		{
			name:      "product_not_found",
			productID: "p1",
			userID:    "user1",
			amount:    "120",
			mockSetup: func(m *repository.MockAuctionDB) {
				m.EXPECT().GetUser(gomock.Any(), "user1").Return(buyer, nil)
				m.EXPECT().GetProduct(gomock.Any(), "p1").Return(model.Product{}, biddingerrors.ErrProductNotFound)
			},
			expectedError: biddingerrors.ErrProductNotFound,
		},
		{
			name:      "winning_bid_lookup_fails",
			productID: "p1",
			userID:    "user1",
			amount:    "120",
			mockSetup: func(m *repository.MockAuctionDB) {
				m.EXPECT().GetUser(gomock.Any(), "user1").Return(buyer, nil)
				m.EXPECT().GetProduct(gomock.Any(), "p1").Return(product, nil)
				m.EXPECT().GetWinningBid(gomock.Any(), "p1").Return(model.Bid{}, errors.New("connection reset"))
			},
			expectedError: nil,
		},
		{
			name:      "repo_write_fails",
			productID: "p1",
			userID:    "user1",
			amount:    "120",
			mockSetup: func(m *repository.MockAuctionDB) {
				m.EXPECT().GetUser(gomock.Any(), "user1").Return(buyer, nil)
				m.EXPECT().GetProduct(gomock.Any(), "p1").Return(product, nil)
				m.EXPECT().GetWinningBid(gomock.Any(), "p1").Return(model.Bid{}, biddingerrors.ErrNoBids)
				m.EXPECT().GetUserBid(gomock.Any(), "p1", "user1").Return(model.Bid{}, biddingerrors.ErrNoBids)
				m.EXPECT().RecordBid(gomock.Any(), gomock.Any()).Return(errors.New("repo write failed"))
			},
			expectedError: nil, // wrapped repo error, no sentinel to match
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockRepo := repository.NewMockAuctionDB(ctrl)
			tc.mockSetup(mockRepo)
			service := NewBiddingService(mockRepo, WithClock(fixedClock))

			_, err := service.PlaceBid(context.Background(), tc.productID, tc.userID, dec(tc.amount), "")
			require.Error(t, err)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
			}
		})
	}
}

func TestBiddingService_PlaceBid_Valid(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewBiddingService(mockRepo, WithClock(fixedClock))

	mockRepo.EXPECT().GetUser(gomock.Any(), "user1").Return(model.User{UserID: "user1", Role: model.RoleBuyer}, nil)
	mockRepo.EXPECT().GetProduct(gomock.Any(), "p1").Return(activeProduct("p1"), nil)
	mockRepo.EXPECT().GetWinningBid(gomock.Any(), "p1").Return(model.Bid{}, biddingerrors.ErrNoBids)
	mockRepo.EXPECT().GetUserBid(gomock.Any(), "p1", "user1").Return(model.Bid{}, biddingerrors.ErrNoBids)
	mockRepo.EXPECT().RecordBid(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := service.PlaceBid(context.Background(), "p1", "user1", dec("110"), "USD")
	require.NoError(t, err)
	require.True(t, outcome.Created)
	require.Nil(t, outcome.Purchase)

	_, parseErr := uuid.Parse(outcome.Bid.BidID)
	require.NoError(t, parseErr, "BidID should be a valid UUID")
	require.Equal(t, "p1", outcome.Bid.ProductID)
	require.Equal(t, "user1", outcome.Bid.UserID)
	require.Equal(t, "USD", outcome.Bid.Currency)
	require.True(t, outcome.Bid.Amount.Equal(dec("110")))
	require.Equal(t, now, outcome.Bid.CreatedAt)
}

func TestBiddingService_PlaceBid_Preconditions(t *testing.T) {
	t.Parallel()

	unverified := activeProduct("unverified")
	unverified.Verified = false
	sold := activeProduct("sold")
	sold.Sold = true
	sold.WinnerID = "bob"
	unsold := activeProduct("unsold")
	unsold.Unsold = true
	future := activeProduct("future")
	future.StartDate = now.Add(time.Hour)
	future.EndDate = now.Add(2 * time.Hour)

	tests := []struct {
		name      string
		productID string
		userID    string
		amount    string
		currency  string
		wantErr   error
		wantMsg   string
	}{
		{name: "unverified", productID: "unverified", userID: "alice", amount: "200", wantErr: biddingerrors.ErrProductNotVerified},
		{name: "sold", productID: "sold", userID: "alice", amount: "200", wantErr: biddingerrors.ErrAuctionClosed},
		{name: "unsold", productID: "unsold", userID: "alice", amount: "200", wantErr: biddingerrors.ErrAuctionClosed},
		{name: "own_product", productID: "open", userID: "seller", amount: "200", wantErr: biddingerrors.ErrOwnProduct},
		{name: "currency_mismatch", productID: "open", userID: "alice", amount: "200", currency: "EUR", wantErr: biddingerrors.ErrCurrencyMismatch, wantMsg: "Bid must be in product currency: USD"},
		{name: "currency_case_differs", productID: "open", userID: "alice", amount: "200", currency: "usd", wantErr: biddingerrors.ErrCurrencyMismatch, wantMsg: "Bid must be in product currency: USD"},
		{name: "not_started", productID: "future", userID: "alice", amount: "200", wantErr: biddingerrors.ErrAuctionNotStarted},
		{name: "below_minimum", productID: "open", userID: "alice", amount: "105", wantErr: biddingerrors.ErrBidTooLow, wantMsg: "Your bid must be at least 10 higher than the current bid"},
		{name: "suspended", productID: "open", userID: "mallory", amount: "200", wantErr: biddingerrors.ErrForbidden},
	}

	service, _, _ := newMemoryService(t, []model.Product{unverified, sold, unsold, future, activeProduct("open")})

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := service.PlaceBid(context.Background(), tc.productID, tc.userID, dec(tc.amount), tc.currency)
			require.ErrorIs(t, err, tc.wantErr)
			if tc.wantMsg != "" {
				var detailed *biddingerrors.Detailed
				require.True(t, errors.As(err, &detailed))
				require.Equal(t, tc.wantMsg, detailed.Message)
			}
		})
	}
}

// starting price 100, increment 10: 105 rejected, 110 accepted, 115 from
// another user rejected (minimum 120), 120 accepted, 130 from the first
// user updates in place.
func TestBiddingService_PlaceBid_StandingBids(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	service, repo, _ := newMemoryService(t, []model.Product{activeProduct("p1")})

	_, err := service.PlaceBid(ctx, "p1", "alice", dec("105"), "")
	require.ErrorIs(t, err, biddingerrors.ErrBidTooLow)

	first, err := service.PlaceBid(ctx, "p1", "alice", dec("110"), "USD")
	require.NoError(t, err)
	require.True(t, first.Created)

	// Minimum is now 110 + 10.
	_, err = service.PlaceBid(ctx, "p1", "bob", dec("115"), "")
	require.ErrorIs(t, err, biddingerrors.ErrBidTooLow)

	second, err := service.PlaceBid(ctx, "p1", "bob", dec("120"), "")
	require.NoError(t, err)
	require.True(t, second.Created)

	update, err := service.PlaceBid(ctx, "p1", "alice", dec("130"), "")
	require.NoError(t, err)
	require.False(t, update.Created)
	require.Equal(t, first.Bid.BidID, update.Bid.BidID)
	require.True(t, update.Bid.Amount.Equal(dec("130")))

	bids, err := repo.GetBidsByProduct(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, bids, 2)

	winning, err := service.GetWinningBid(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "alice", winning.UserID)
}

func TestBiddingService_PlaceBid_FirstBidsWithoutCompetition(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// The floor follows the highest standing bid once one exists.
	product := activeProduct("p1")
	product.BidIncrement = dec("5")
	service, _, _ := newMemoryService(t, []model.Product{product})

	_, err := service.PlaceBid(ctx, "p1", "alice", dec("110"), "")
	require.NoError(t, err)
	out, err := service.PlaceBid(ctx, "p1", "bob", dec("115"), "")
	require.NoError(t, err)
	require.True(t, out.Created)

	_, err = service.PlaceBid(ctx, "p1", "alice", dec("110"), "")
	require.ErrorIs(t, err, biddingerrors.ErrBidTooLow)
}

func TestBiddingService_PlaceBid_BuyNow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	product := activeProduct("p1")
	product.BuyNowPrice = decimal.NewNullDecimal(dec("400"))
	service, repo, rec := newMemoryService(t, []model.Product{product})

	_, err := service.PlaceBid(ctx, "p1", "bob", dec("395"), "")
	require.NoError(t, err)

	// 400 is below the 405 minimum but meets buy-now, which skips increments.
	out, err := service.PlaceBid(ctx, "p1", "alice", dec("400"), "")
	require.NoError(t, err)
	require.NotNil(t, out.Purchase)
	require.True(t, out.Purchase.Price.Equal(dec("400")))
	require.Equal(t, "alice", out.Purchase.BuyerID)

	require.True(t, balance(t, repo, "alice").Equal(dec("600")))
	require.True(t, balance(t, repo, "seller").Equal(dec("400")))
	require.True(t, balance(t, repo, "bob").Equal(dec("1000")))

	p, err := repo.GetProduct(ctx, "p1")
	require.NoError(t, err)
	require.True(t, p.Sold)
	require.Equal(t, "alice", p.WinnerID)

	entries, err := repo.ListLedger(ctx, "alice", 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, model.LedgerBuyNowDebit, entries[0].Kind)

	require.NotEmpty(t, rec.all())

	_, err = service.PlaceBid(ctx, "p1", "carol", dec("500"), "")
	require.ErrorIs(t, err, biddingerrors.ErrAuctionClosed)
}

func TestBiddingService_PlaceBid_AfterEndSettlesInline(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	product := activeProduct("p1")
	product.EndDate = now.Add(-time.Minute)
	service, repo, _ := newMemoryService(t, []model.Product{product})
	require.NoError(t, repo.RecordBid(ctx, model.Bid{
		BidID: "b1", ProductID: "p1", UserID: "bob", Amount: dec("300"), Currency: "USD",
		CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour),
	}))

	_, err := service.PlaceBid(ctx, "p1", "alice", dec("500"), "")
	require.ErrorIs(t, err, biddingerrors.ErrAuctionEnded)

	p, err := repo.GetProduct(ctx, "p1")
	require.NoError(t, err)
	require.True(t, p.Sold)
	require.Equal(t, "bob", p.WinnerID)
	require.True(t, balance(t, repo, "bob").Equal(dec("700")))
}

func TestBiddingService_PlaceBid_Concurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	service, repo, _ := newMemoryService(t, []model.Product{activeProduct("p1")})

	const bidders = 20
	for i := 0; i < bidders; i++ {
		repo.AddUser(model.User{UserID: fmt.Sprintf("u%d", i), Role: model.RoleBuyer})
	}

	var wg sync.WaitGroup
	for i := 0; i < bidders; i++ {
		for j := 0; j < 3; j++ {
			wg.Add(1)
			go func(i, j int) {
				defer wg.Done()
				amount := decimal.NewFromInt(int64(110 + i*10 + j*200))
				_, _ = service.PlaceBid(ctx, "p1", fmt.Sprintf("u%d", i), amount, "")
			}(i, j)
		}
	}
	wg.Wait()

	bids, err := repo.GetBidsByProduct(ctx, "p1")
	require.NoError(t, err)
	seen := make(map[string]bool)
	for _, b := range bids {
		require.False(t, seen[b.UserID], "user %s holds two bids", b.UserID)
		seen[b.UserID] = true
	}
}

func TestBiddingService_Reads(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	service, _, _ := newMemoryService(t, []model.Product{activeProduct("p1")})

	_, err := service.GetBidsForProduct(ctx, "")
	require.ErrorIs(t, err, biddingerrors.ErrInvalidBid)
	_, err = service.GetBidsForProduct(ctx, "p1")
	require.ErrorIs(t, err, biddingerrors.ErrNoBids)
	_, err = service.GetWinningBid(ctx, "p1")
	require.ErrorIs(t, err, biddingerrors.ErrNoBids)
	_, err = service.GetProductsByUser(ctx, "alice")
	require.ErrorIs(t, err, biddingerrors.ErrUserNoBids)

	_, err = service.PlaceBid(ctx, "p1", "alice", dec("110"), "")
	require.NoError(t, err)

	bids, err := service.GetBidsForProduct(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, bids, 1)

	products, err := service.GetProductsByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "p1", products[0].ProductID)
}
