package repository

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

import (
	"context"
	"time"

	model "auction-marketplace/internal/models"

	"github.com/shopspring/decimal"
)

// ProductStore persists auction listings.
type ProductStore interface {
	CreateProduct(ctx context.Context, product model.Product) error
	GetProduct(ctx context.Context, productID string) (model.Product, error)
	SetProductVerification(ctx context.Context, productID string, verified bool, commissionRate decimal.Decimal) (model.Product, error)
	// ListEndedActive returns products whose end date is before now and
	// which are neither sold nor unsold.
	ListEndedActive(ctx context.Context, now time.Time) ([]model.Product, error)
	// ListEndingSoon returns non-terminal products ending in (from, to] that
	// have not had their reminder sent.
	ListEndingSoon(ctx context.Context, from, to time.Time) ([]model.Product, error)
	MarkEndingSoonNotified(ctx context.Context, productID string) error
	ListProductsWonBy(ctx context.Context, userID string) ([]model.Product, error)
	ListProductsSoldBy(ctx context.Context, sellerID string) ([]model.Product, error)
}

// BidStore persists standing bids, one per (user, product).
type BidStore interface {
	RecordBid(ctx context.Context, bid model.Bid) error
	UpdateBidAmount(ctx context.Context, bidID string, amount decimal.Decimal, at time.Time) (model.Bid, error)
	GetUserBid(ctx context.Context, productID, userID string) (model.Bid, error)
	GetBidsByProduct(ctx context.Context, productID string) ([]model.Bid, error)
	GetWinningBid(ctx context.Context, productID string) (model.Bid, error)
	GetBidderIDs(ctx context.Context, productID string) ([]string, error)
	GetProductsByBidder(ctx context.Context, userID string) ([]model.Product, error)
}

// UserStore reads users and their ledger. Users are created elsewhere.
type UserStore interface {
	GetUser(ctx context.Context, userID string) (model.User, error)
	ListUsersByRole(ctx context.Context, role model.Role) ([]model.User, error)
	ListLedger(ctx context.Context, userID string, limit int) ([]model.LedgerEntry, error)
}

// SettlementStore applies a settlement as one unit of work: the product
// leaves the active state and every movement is applied with its ledger
// entry, or nothing changes. A product that is already terminal yields
// ErrAlreadySettled.
type SettlementStore interface {
	ApplySettlement(ctx context.Context, settlement model.Settlement) (model.Product, error)
}

// BalanceRequestStore persists top-up requests.
type BalanceRequestStore interface {
	CreateBalanceRequest(ctx context.Context, request model.BalanceRequest) error
	GetBalanceRequest(ctx context.Context, requestID string) (model.BalanceRequest, error)
	ListBalanceRequests(ctx context.Context, filter model.BalanceRequestFilter) ([]model.BalanceRequest, error)
	// ResolveBalanceRequest moves a pending request to the review status and,
	// on approval, credits the balance with a TOP_UP ledger entry. A request
	// that is no longer pending is returned unchanged with ErrRequestProcessed.
	ResolveBalanceRequest(ctx context.Context, review model.BalanceRequestReview) (model.BalanceRequest, error)
}

// NotificationStore persists in-app notifications.
type NotificationStore interface {
	CreateNotification(ctx context.Context, notification model.Notification) error
	GetNotification(ctx context.Context, notificationID string) (model.Notification, error)
	ListNotifications(ctx context.Context, userID string, limit int) ([]model.Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkNotificationRead(ctx context.Context, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context, userID string) (int, error)
}

// AuctionDB is the full storage surface of the marketplace.
type AuctionDB interface {
	ProductStore
	BidStore
	UserStore
	SettlementStore
	BalanceRequestStore
	NotificationStore
}
