package bidding

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"auction-marketplace/internal/biddingerrors"
	"auction-marketplace/internal/effects"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func endedProduct(id string) model.Product {
	p := activeProduct(id)
	p.EndDate = now.Add(-time.Minute)
	return p
}

func seedBid(t *testing.T, repo *repository.MemoryRepo, productID, userID, amount string, at time.Time) {
	t.Helper()
	require.NoError(t, repo.RecordBid(context.Background(), model.Bid{
		BidID:     productID + "-" + userID,
		ProductID: productID,
		UserID:    userID,
		Amount:    dec(amount),
		Currency:  "USD",
		CreatedAt: at,
		UpdatedAt: at,
	}))
}

// one bid of 500 marks sold and debits the buyer; zero bids marks unsold.
func TestBiddingService_SweepEndedAuctions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	service, repo, rec := newMemoryService(t, []model.Product{
		endedProduct("with-bid"),
		endedProduct("no-bids"),
		activeProduct("still-open"),
	})
	seedBid(t, repo, "with-bid", "alice", "500", now.Add(-time.Hour))
	seedBid(t, repo, "still-open", "bob", "200", now.Add(-time.Hour))

	report, err := service.SweepEndedAuctions(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, report.Processed)

	results := make(map[string]SettlementResult)
	for _, r := range report.Results {
		results[r.ProductID] = r
	}
	require.Equal(t, OutcomeSold, results["with-bid"].Outcome)
	require.Equal(t, "alice", results["with-bid"].WinnerID)
	require.True(t, results["with-bid"].Price.Decimal.Equal(dec("500")))
	require.Equal(t, OutcomeUnsold, results["no-bids"].Outcome)
	require.Empty(t, results["no-bids"].WinnerID)

	require.True(t, balance(t, repo, "alice").Equal(dec("500")))
	require.True(t, balance(t, repo, "seller").Equal(dec("500")), "default sweep charges no fee")
	require.True(t, balance(t, repo, "bob").Equal(dec("1000")))

	noBids, err := repo.GetProduct(ctx, "no-bids")
	require.NoError(t, err)
	require.True(t, noBids.Unsold)
	require.Empty(t, noBids.WinnerID)

	open, err := repo.GetProduct(ctx, "still-open")
	require.NoError(t, err)
	require.False(t, open.Terminal())

	var won, email bool
	for _, e := range rec.all() {
		if e.Type == model.NotificationAuctionWon && e.RecipientID == "alice" {
			won = true
		}
		if e.Kind == effects.KindEmail && e.Email == "alice@example.com" {
			email = true
		}
	}
	require.True(t, won)
	require.True(t, email)

	// A second sweep finds nothing left to do.
	before := len(rec.all())
	report, err = service.SweepEndedAuctions(ctx)
	require.NoError(t, err)
	require.Zero(t, report.Processed)
	require.Len(t, rec.all(), before)
}

func TestBiddingService_Settle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	service, repo, rec := newMemoryService(t, []model.Product{endedProduct("p1"), activeProduct("open")})
	seedBid(t, repo, "p1", "alice", "250", now.Add(-2*time.Hour))
	seedBid(t, repo, "p1", "bob", "250", now.Add(-time.Hour))

	result, err := service.Settle(ctx, "open")
	require.NoError(t, err)
	require.Equal(t, StatusActive, result.Status)
	require.Equal(t, OutcomeNone, result.Outcome)

	result, err = service.Settle(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, StatusEnded, result.Status)
	require.Equal(t, "alice", result.WinnerID, "ties go to the earlier bid")

	effectsAfterFirst := len(rec.all())
	again, err := service.Settle(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, result, again)
	require.Len(t, rec.all(), effectsAfterFirst)
	require.True(t, balance(t, repo, "alice").Equal(dec("750")))

	_, err = service.Settle(ctx, "missing")
	require.ErrorIs(t, err, biddingerrors.ErrProductNotFound)
	_, err = service.Settle(ctx, "")
	require.ErrorIs(t, err, biddingerrors.ErrInvalidProduct)
}

func TestBiddingService_Settle_ConcurrentOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	service, repo, _ := newMemoryService(t, []model.Product{endedProduct("p1")})
	seedBid(t, repo, "p1", "alice", "500", now.Add(-time.Hour))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := service.Settle(ctx, "p1"); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	require.True(t, balance(t, repo, "alice").Equal(dec("500")))
	entries, err := repo.ListLedger(ctx, "alice", 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestBiddingService_Settle_CommissionPolicy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p := endedProduct("p1")
	p.CommissionRate = dec("7.5")
	service, repo, _ := newMemoryService(t, []model.Product{p}, WithSweepFeePolicy(CommissionFee{}))
	seedBid(t, repo, "p1", "alice", "333.33", now.Add(-time.Hour))

	_, err := service.Settle(ctx, "p1")
	require.NoError(t, err)

	admin, err := repo.GetUser(ctx, "admin")
	require.NoError(t, err)
	seller := balance(t, repo, "seller")
	require.True(t, admin.CommissionBalance.Equal(dec("25")))
	require.True(t, seller.Equal(dec("308.33")))
	require.True(t, seller.Add(admin.CommissionBalance).Equal(dec("333.33")))
}

func TestBiddingService_Settle_Reserve(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p := endedProduct("p1")
	p.ReservePrice = decimal.NewNullDecimal(dec("600"))

	t.Run("enforced", func(t *testing.T) {
		t.Parallel()
		service, repo, _ := newMemoryService(t, []model.Product{p}, WithReserveEnforcement(true))
		seedBid(t, repo, "p1", "alice", "500", now.Add(-time.Hour))

		result, err := service.Settle(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, OutcomeUnsold, result.Outcome)
		require.True(t, balance(t, repo, "alice").Equal(dec("1000")))
	})

	t.Run("not_enforced_by_default", func(t *testing.T) {
		t.Parallel()
		service, repo, _ := newMemoryService(t, []model.Product{p})
		seedBid(t, repo, "p1", "alice", "500", now.Add(-time.Hour))

		result, err := service.Settle(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, OutcomeSold, result.Outcome)
	})
}

func TestBiddingService_SweepEndedAuctions_RecordsFailures(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewBiddingService(mockRepo, WithClock(fixedClock))

	broken, healthy := endedProduct("broken"), endedProduct("healthy")
	mockRepo.EXPECT().ListEndedActive(gomock.Any(), now).Return([]model.Product{broken, healthy}, nil)

	mockRepo.EXPECT().GetProduct(gomock.Any(), "broken").Return(broken, nil)
	mockRepo.EXPECT().GetWinningBid(gomock.Any(), "broken").Return(model.Bid{}, errors.New("timeout"))

	mockRepo.EXPECT().GetProduct(gomock.Any(), "healthy").Return(healthy, nil)
	mockRepo.EXPECT().GetWinningBid(gomock.Any(), "healthy").Return(model.Bid{}, biddingerrors.ErrNoBids)
	closed := healthy
	closed.Unsold = true
	mockRepo.EXPECT().ApplySettlement(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s model.Settlement) (model.Product, error) {
			require.Equal(t, model.OutcomeUnsold, s.Outcome)
			require.Empty(t, s.Movements)
			return closed, nil
		})

	report, err := service.SweepEndedAuctions(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, report.Processed)
	require.Contains(t, report.Results[0].Error, "timeout")
	require.Equal(t, OutcomeUnsold, report.Results[1].Outcome)
}

func TestBiddingService_SellToHighestBidder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("commission_split_is_exact", func(t *testing.T) {
		t.Parallel()
		p := activeProduct("p1")
		p.CommissionRate = dec("12.5")
		service, repo, rec := newMemoryService(t, []model.Product{p})
		seedBid(t, repo, "p1", "alice", "199.99", now.Add(-time.Hour))
		seedBid(t, repo, "p1", "bob", "150", now.Add(-time.Hour))

		summary, err := service.SellToHighestBidder(ctx, "p1", "seller")
		require.NoError(t, err)
		require.Equal(t, "alice", summary.WinnerID)
		require.True(t, summary.Commission.Equal(dec("25")))
		require.True(t, summary.Payout.Equal(dec("174.99")))
		require.True(t, summary.Payout.Add(summary.Commission).Equal(summary.Price))

		admin, _ := repo.GetUser(ctx, "admin")
		require.True(t, admin.CommissionBalance.Equal(dec("25")))
		require.True(t, admin.Balance.IsZero())
		require.True(t, balance(t, repo, "seller").Equal(dec("174.99")))
		require.True(t, balance(t, repo, "alice").Equal(dec("800.01")))
		require.NotEmpty(t, rec.all())

		_, err = service.SellToHighestBidder(ctx, "p1", "seller")
		require.ErrorIs(t, err, biddingerrors.ErrAuctionClosed)
	})

	t.Run("preconditions", func(t *testing.T) {
		t.Parallel()
		service, repo, _ := newMemoryService(t, []model.Product{activeProduct("p1"), activeProduct("empty")})
		seedBid(t, repo, "p1", "alice", "200", now.Add(-time.Hour))

		_, err := service.SellToHighestBidder(ctx, "missing", "seller")
		require.ErrorIs(t, err, biddingerrors.ErrProductNotFound)

		_, err = service.SellToHighestBidder(ctx, "p1", "alice")
		require.ErrorIs(t, err, biddingerrors.ErrForbidden)

		_, err = service.SellToHighestBidder(ctx, "empty", "seller")
		require.ErrorIs(t, err, biddingerrors.ErrNoBids)
	})

	t.Run("configured_admin_missing", func(t *testing.T) {
		t.Parallel()
		service, repo, _ := newMemoryService(t, []model.Product{activeProduct("p1")}, WithAdminUserID("nobody"))
		seedBid(t, repo, "p1", "alice", "200", now.Add(-time.Hour))

		_, err := service.SellToHighestBidder(ctx, "p1", "seller")
		require.ErrorIs(t, err, biddingerrors.ErrUserNotFound)

		p, _ := repo.GetProduct(ctx, "p1")
		require.False(t, p.Terminal())
	})
}
