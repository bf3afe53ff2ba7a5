package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"auction-marketplace/internal/biddingerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPostgresConfig_ConnString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  PostgresConfig
		want string
	}{
		{
			name: "dsn_wins",
			cfg:  PostgresConfig{DSN: "postgres://x@y/z", Host: "ignored"},
			want: "postgres://x@y/z",
		},
		{
			name: "defaults",
			cfg:  PostgresConfig{Host: "db", Database: "auction", User: "app", Password: "pw"},
			want: "postgres://app:pw@db:5432/auction?sslmode=disable",
		},
		{
			name: "explicit_port_and_ssl",
			cfg:  PostgresConfig{Host: "db", Port: 6432, Database: "auction", User: "app", SSLMode: "require"},
			want: "postgres://app:@db:6432/auction?sslmode=require",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.cfg.ConnString())
		})
	}
}

// newPostgresRepo connects to AUCTION_TEST_POSTGRES_DSN and migrates it.
func newPostgresRepo(t *testing.T) *PostgresRepo {
	t.Helper()
	dsn := os.Getenv("AUCTION_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("AUCTION_TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	pool, err := NewPostgresPool(ctx, PostgresConfig{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, RunMigrations(ctx, pool))
	return NewPostgresRepo(pool)
}

func TestPostgresRepo_BidAndSettle(t *testing.T) {
	repo := newPostgresRepo(t)
	ctx := context.Background()

	seller, buyer, admin := utils.GenerateID(), utils.GenerateID(), utils.GenerateID()
	require.NoError(t, repo.UpsertUser(ctx, model.User{UserID: seller, Username: "seller", Role: model.RoleSeller}))
	require.NoError(t, repo.UpsertUser(ctx, model.User{UserID: buyer, Username: "buyer", Role: model.RoleBuyer, Balance: dec("1000")}))
	require.NoError(t, repo.UpsertUser(ctx, model.User{UserID: admin, Username: "admin", Role: model.RoleAdmin}))

	end := time.Now().UTC().Add(-time.Minute).Truncate(time.Microsecond)
	product := newProduct(utils.GenerateID(), seller, end)
	product.BuyNowPrice = decimal.NewNullDecimal(dec("900"))
	require.NoError(t, repo.CreateProduct(ctx, product))

	got, err := repo.GetProduct(ctx, product.ProductID)
	require.NoError(t, err)
	require.True(t, got.StartingPrice.Equal(dec("100")))
	require.True(t, got.BuyNowPrice.Valid)
	require.False(t, got.ReservePrice.Valid)

	bid := newBid(utils.GenerateID(), product.ProductID, buyer, "110.50", end.Add(-time.Hour))
	require.NoError(t, repo.RecordBid(ctx, bid))
	require.ErrorIs(t, repo.RecordBid(ctx, newBid(utils.GenerateID(), product.ProductID, buyer, "120", end)), biddingerrors.ErrDuplicateBid)

	updated, err := repo.UpdateBidAmount(ctx, bid.BidID, dec("500"), end.Add(-30*time.Minute))
	require.NoError(t, err)
	require.True(t, updated.Amount.Equal(dec("500")))

	winning, err := repo.GetWinningBid(ctx, product.ProductID)
	require.NoError(t, err)
	require.Equal(t, bid.BidID, winning.BidID)

	settlement := model.Settlement{
		ProductID: product.ProductID,
		Outcome:   model.OutcomeSold,
		WinnerID:  buyer,
		Price:     dec("500"),
		SettledAt: time.Now().UTC(),
		Movements: []model.BalanceMovement{
			{UserID: buyer, Account: model.AccountBalance, Kind: model.LedgerAuctionDebit, Amount: dec("-500")},
			{UserID: seller, Account: model.AccountBalance, Kind: model.LedgerSalePayout, Amount: dec("450")},
			{UserID: admin, Account: model.AccountCommission, Kind: model.LedgerCommissionCredit, Amount: dec("50")},
		},
	}
	settled, err := repo.ApplySettlement(ctx, settlement)
	require.NoError(t, err)
	require.True(t, settled.Sold)

	_, err = repo.ApplySettlement(ctx, settlement)
	require.ErrorIs(t, err, biddingerrors.ErrAlreadySettled)

	u, err := repo.GetUser(ctx, buyer)
	require.NoError(t, err)
	require.True(t, u.Balance.Equal(dec("500")), u.Balance.String())

	a, err := repo.GetUser(ctx, admin)
	require.NoError(t, err)
	require.True(t, a.CommissionBalance.Equal(dec("50")))

	entries, err := repo.ListLedger(ctx, seller, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, model.LedgerSalePayout, entries[0].Kind)

	won, err := repo.ListProductsWonBy(ctx, buyer)
	require.NoError(t, err)
	require.Len(t, won, 1)

	_, err = repo.ApplySettlement(ctx, model.Settlement{ProductID: utils.GenerateID(), Outcome: model.OutcomeUnsold})
	require.ErrorIs(t, err, biddingerrors.ErrProductNotFound)
}

func TestPostgresRepo_BalanceRequestsAndNotifications(t *testing.T) {
	repo := newPostgresRepo(t)
	ctx := context.Background()

	user := utils.GenerateID()
	require.NoError(t, repo.UpsertUser(ctx, model.User{UserID: user, Username: "u", Role: model.RoleBuyer}))

	req := model.BalanceRequest{
		RequestID:     utils.GenerateID(),
		UserID:        user,
		Amount:        dec("75.25"),
		PaymentMethod: model.PaymentBankTransfer,
		Status:        model.RequestPending,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	require.NoError(t, repo.CreateBalanceRequest(ctx, req))

	resolved, err := repo.ResolveBalanceRequest(ctx, model.BalanceRequestReview{
		RequestID:  req.RequestID,
		Status:     model.RequestApproved,
		ReviewedBy: "admin",
		ReviewedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.Equal(t, model.RequestApproved, resolved.Status)

	_, err = repo.ResolveBalanceRequest(ctx, model.BalanceRequestReview{RequestID: req.RequestID, Status: model.RequestRejected})
	require.ErrorIs(t, err, biddingerrors.ErrRequestProcessed)

	u, err := repo.GetUser(ctx, user)
	require.NoError(t, err)
	require.True(t, u.Balance.Equal(dec("75.25")))

	n := model.Notification{
		NotificationID: utils.GenerateID(),
		UserID:         user,
		Type:           model.NotificationBalanceUpdate,
		Title:          "Balance Request Approved",
		Message:        "approved",
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, repo.CreateNotification(ctx, n))

	count, err := repo.CountUnread(ctx, user)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	marked, err := repo.MarkAllNotificationsRead(ctx, user)
	require.NoError(t, err)
	require.Equal(t, 1, marked)
	require.ErrorIs(t, repo.MarkNotificationRead(ctx, utils.GenerateID()), biddingerrors.ErrNotificationNotFound)
}
