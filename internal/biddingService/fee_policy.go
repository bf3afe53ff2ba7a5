package bidding

import (
	"fmt"
	"strings"

	"auction-marketplace/internal/models"

	"github.com/shopspring/decimal"
)

// FeePolicy splits a sale price between the seller and the platform.
// Implementations must return payout + commission == price exactly.
type FeePolicy interface {
	Name() string
	Split(price decimal.Decimal, product models.Product) (payout, commission decimal.Decimal)
}

// NoFee pays the whole price to the seller.
type NoFee struct{}

func (NoFee) Name() string { return "none" }

func (NoFee) Split(price decimal.Decimal, _ models.Product) (decimal.Decimal, decimal.Decimal) {
	return price, decimal.Zero
}

// CommissionFee keeps the product's commission rate (a percentage) for the
// platform. Commission is rounded to cents and the seller gets the rest.
type CommissionFee struct{}

func (CommissionFee) Name() string { return "commission" }

func (CommissionFee) Split(price decimal.Decimal, product models.Product) (decimal.Decimal, decimal.Decimal) {
	commission := price.Mul(product.CommissionRate).Div(decimal.NewFromInt(100)).Round(2)
	if commission.IsNegative() {
		commission = decimal.Zero
	}
	if commission.GreaterThan(price) {
		commission = price
	}
	return price.Sub(commission), commission
}

// ParseFeePolicy maps a configuration value to a policy.
func ParseFeePolicy(name string) (FeePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return NoFee{}, nil
	case "commission":
		return CommissionFee{}, nil
	default:
		return nil, fmt.Errorf("unknown fee policy %q", name)
	}
}
