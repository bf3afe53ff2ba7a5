package perftests

import (
	"context"
	"fmt"
	"time"

	bidding "auction-marketplace/internal/biddingService"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"

	"github.com/shopspring/decimal"
)

var benchCtx = context.Background()

// newBenchService seeds numProducts live verified products and numUsers
// funded buyers. Products start at 50 with an increment of 1.
func newBenchService(numProducts, numUsers int) (*repository.MemoryRepo, *bidding.BiddingService) {
	repo := repository.NewMemoryRepo()
	now := time.Now().UTC()

	repo.AddUser(model.User{UserID: "admin", Username: "admin", Role: model.RoleAdmin})
	repo.AddUser(model.User{UserID: "seller", Username: "seller", Role: model.RoleSeller})
	for i := 0; i < numUsers; i++ {
		repo.AddUser(model.User{
			UserID:   userID(i),
			Username: userID(i),
			Role:     model.RoleBuyer,
			Balance:  decimal.NewFromInt(1_000_000),
		})
	}
	for i := 0; i < numProducts; i++ {
		_ = repo.CreateProduct(benchCtx, model.Product{
			ProductID:      productID(i),
			SellerID:       "seller",
			Title:          fmt.Sprintf("Benchmark product %d", i),
			Condition:      model.ConditionNew,
			StartingPrice:  decimal.NewFromInt(50),
			Currency:       "USD",
			BidIncrement:   decimal.NewFromInt(1),
			StartDate:      now.Add(-time.Hour),
			EndDate:        now.Add(24 * time.Hour),
			Verified:       true,
			CommissionRate: decimal.NewFromInt(5),
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	return repo, bidding.NewBiddingService(repo)
}

func userID(i int) string    { return fmt.Sprintf("user_%d", i) }
func productID(i int) string { return fmt.Sprintf("product_%d", i) }
