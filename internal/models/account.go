package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "credit_card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentPaypal       PaymentMethod = "paypal"
	PaymentOther        PaymentMethod = "other"
)

// Valid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCreditCard, PaymentBankTransfer, PaymentPaypal, PaymentOther:
		return true
	}
	return false
}

type BalanceRequest struct {
	RequestID     string          `json:"request_id"`
	UserID        string          `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Status        RequestStatus   `json:"status"`
	AdminNotes    string          `json:"admin_notes,omitempty"`
	ReviewedBy    string          `json:"reviewed_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BalanceRequestFilter narrows a balance request listing. Empty fields match all.
type BalanceRequestFilter struct {
	UserID string
	Status RequestStatus
	Limit  int
	Offset int
}

// BalanceRequestReview moves a pending request to approved or rejected.
type BalanceRequestReview struct {
	RequestID  string
	Status     RequestStatus
	AdminNotes string
	ReviewedBy string
	ReviewedAt time.Time
}

type NotificationType string

const (
	NotificationAuctionWon     NotificationType = "AUCTION_WON"
	NotificationAuctionEnding  NotificationType = "AUCTION_ENDING"
	NotificationAuctionEnd     NotificationType = "AUCTION_END"
	NotificationBalanceRequest NotificationType = "BALANCE_REQUEST"
	NotificationBalanceUpdate  NotificationType = "BALANCE_UPDATE"
	NotificationGeneral        NotificationType = "GENERAL"
)

type Notification struct {
	NotificationID string           `json:"notification_id"`
	UserID         string           `json:"user_id"`
	SenderID       string           `json:"sender_id,omitempty"`
	ProductID      string           `json:"product_id,omitempty"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	Link           string           `json:"link,omitempty"`
	IsRead         bool             `json:"is_read"`
	CreatedAt      time.Time        `json:"created_at"`
}
