package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleBuyer     Role = "buyer"
	RoleSeller    Role = "seller"
	RoleAdmin     Role = "admin"
	RoleSuspended Role = "suspended"
)

type User struct {
	UserID            string          `json:"user_id"`
	Username          string          `json:"username"`
	Email             string          `json:"email"`
	Role              Role            `json:"role"`
	Balance           decimal.Decimal `json:"balance"`
	CommissionBalance decimal.Decimal `json:"commission_balance"`
}

type Condition string

const (
	ConditionNew         Condition = "new"
	ConditionUsed        Condition = "used"
	ConditionRefurbished Condition = "refurbished"
)

// SupportedCurrencies lists the listing currencies a product may use.
var SupportedCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "JPY": true, "CAD": true,
	"AUD": true, "INR": true, "CNY": true, "SGD": true, "CHF": true,
}

// Product is an auction listing. Sold and Unsold are terminal.
type Product struct {
	ProductID          string              `json:"product_id"`
	SellerID           string              `json:"seller_id"`
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	Category           string              `json:"category"`
	Condition          Condition           `json:"condition"`
	StartingPrice      decimal.Decimal     `json:"starting_price"`
	Currency           string              `json:"currency"`
	BidIncrement       decimal.Decimal     `json:"bid_increment"`
	BuyNowPrice        decimal.NullDecimal `json:"buy_now_price"`
	ReservePrice       decimal.NullDecimal `json:"reserve_price"`
	StartDate          time.Time           `json:"start_date"`
	EndDate            time.Time           `json:"end_date"`
	Verified           bool                `json:"verified"`
	Sold               bool                `json:"sold"`
	Unsold             bool                `json:"unsold"`
	WinnerID           string              `json:"winner_id,omitempty"`
	SoldPrice          decimal.NullDecimal `json:"sold_price"`
	CommissionRate     decimal.Decimal     `json:"commission_rate"`
	EndingSoonNotified bool                `json:"ending_soon_notified"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// Terminal reports whether the auction has been closed either way.
func (p Product) Terminal() bool {
	return p.Sold || p.Unsold
}

// Bid is a user's standing bid on a product. UpdatedAt is when Amount was reached.
type Bid struct {
	BidID     string          `json:"bid_id"`
	ProductID string          `json:"product_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Outranks reports whether b beats other for the lead: higher amount first,
// then whoever reached the amount earlier.
func (b Bid) Outranks(other Bid) bool {
	if cmp := b.Amount.Cmp(other.Amount); cmp != 0 {
		return cmp > 0
	}
	return b.UpdatedAt.Before(other.UpdatedAt)
}
