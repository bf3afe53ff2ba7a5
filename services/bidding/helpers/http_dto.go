package helpers

import (
	"time"

	model "auction-marketplace/internal/models"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs. Money fields accept JSON numbers or strings and are
// rendered as strings; their ranges are checked by the services.

type PlaceBidRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
}

type BidResponse struct {
	BidID     string          `json:"bid_id"`
	ProductID string          `json:"product_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		ProductID: bid.ProductID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		Currency:  bid.Currency,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: bid.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

type CreateProductRequest struct {
	Title         string              `json:"title" binding:"required"`
	Description   string              `json:"description"`
	Category      string              `json:"category"`
	Condition     string              `json:"condition"`
	StartingPrice decimal.Decimal     `json:"starting_price"`
	Currency      string              `json:"currency" binding:"required"`
	BidIncrement  decimal.Decimal     `json:"bid_increment"`
	BuyNowPrice   decimal.NullDecimal `json:"buy_now_price"`
	ReservePrice  decimal.NullDecimal `json:"reserve_price"`
	StartDate     time.Time           `json:"start_date" binding:"required"`
	EndDate       time.Time           `json:"end_date" binding:"required"`
}

type VerifyProductRequest struct {
	Verified       *bool           `json:"verified" binding:"required"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

type BalanceRequestCreate struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	TransactionID string          `json:"transaction_id"`
	Notes         string          `json:"notes"`
}

type BalanceRequestReview struct {
	Status     string `json:"status" binding:"required,oneof=approved rejected"`
	AdminNotes string `json:"admin_notes"`
}
