// Package account covers the money and inbox side of a user: balances, the
// ledger, top-up requests reviewed by an admin, and in-app notifications.
package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"auction-marketplace/internal/biddingerrors"
	"auction-marketplace/internal/effects"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"

	"github.com/shopspring/decimal"
)

const (
	defaultLedgerLimit       = 50
	defaultNotificationLimit = 10
	defaultRequestLimit      = 50
)

var minTopUp = decimal.NewFromInt(1)

type AccountService struct {
	repo    repository.AuctionDB
	emitter effects.Emitter
	now     func() time.Time
}

type Option func(*AccountService)

func WithEmitter(e effects.Emitter) Option {
	return func(s *AccountService) { s.emitter = e }
}

func WithClock(now func() time.Time) Option {
	return func(s *AccountService) { s.now = now }
}

func NewAccountService(repo repository.AuctionDB, opts ...Option) *AccountService {
	s := &AccountService{
		repo:    repo,
		emitter: effects.Nop{},
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Balance is what a user sees of their account.
type Balance struct {
	UserID            string          `json:"user_id"`
	Balance           decimal.Decimal `json:"balance"`
	CommissionBalance decimal.Decimal `json:"commission_balance"`
}

func (s *AccountService) GetUser(ctx context.Context, userID string) (models.User, error) {
	userID = utils.NormalizeID(userID)
	if userID == "" {
		return models.User{}, fmt.Errorf("service: %w - empty user ID", biddingerrors.ErrUnauthorized)
	}
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to load user %s: %w", userID, err)
	}
	return user, nil
}

func (s *AccountService) GetBalance(ctx context.Context, userID string) (Balance, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return Balance{}, err
	}
	return Balance{UserID: user.UserID, Balance: user.Balance, CommissionBalance: user.CommissionBalance}, nil
}

// GetLedger returns the newest entries first. A non-positive limit uses the default.
func (s *AccountService) GetLedger(ctx context.Context, userID string, limit int) ([]models.LedgerEntry, error) {
	if limit <= 0 {
		limit = defaultLedgerLimit
	}
	entries, err := s.repo.ListLedger(ctx, utils.NormalizeID(userID), limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list ledger for %s: %w", userID, err)
	}
	return entries, nil
}

// BalanceRequestInput is a user's top-up request.
type BalanceRequestInput struct {
	Amount        decimal.Decimal
	PaymentMethod models.PaymentMethod
	TransactionID string
	Notes         string
}

// CreateBalanceRequest files a pending top-up and tells every admin about it.
func (s *AccountService) CreateBalanceRequest(ctx context.Context, userID string, in BalanceRequestInput) (models.BalanceRequest, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return models.BalanceRequest{}, err
	}
	if in.Amount.LessThan(minTopUp) {
		return models.BalanceRequest{}, fmt.Errorf("service: %w", biddingerrors.Detail(biddingerrors.ErrInvalidRequest,
			"Amount must be at least %s", minTopUp.String()))
	}
	if !in.PaymentMethod.Valid() {
		return models.BalanceRequest{}, fmt.Errorf("service: %w", biddingerrors.Detail(biddingerrors.ErrInvalidRequest,
			"Invalid payment method: %s", in.PaymentMethod))
	}

	now := s.now()
	req := models.BalanceRequest{
		RequestID:     utils.GenerateID(),
		UserID:        user.UserID,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		TransactionID: strings.TrimSpace(in.TransactionID),
		Notes:         in.Notes,
		Status:        models.RequestPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.CreateBalanceRequest(ctx, req); err != nil {
		return models.BalanceRequest{}, fmt.Errorf("service: failed to create balance request: %w", err)
	}

	admins, err := s.repo.ListUsersByRole(ctx, models.RoleAdmin)
	if err != nil {
		// The request is stored; admins will still see it in the listing.
		utils.Warn("Could not notify admins of balance request", map[string]any{
			"request_id": req.RequestID,
			"error":      err.Error(),
		})
		return req, nil
	}
	out := make([]effects.Effect, 0, len(admins))
	for _, admin := range admins {
		out = append(out, effects.Effect{
			Kind:        effects.KindNotification,
			RecipientID: admin.UserID,
			SenderID:    user.UserID,
			Type:        models.NotificationBalanceRequest,
			Title:       "New Balance Request",
			Message:     fmt.Sprintf("%s requested a balance top-up of %s.", displayName(user), in.Amount.StringFixed(2)),
			Link:        "/admin/balance-requests",
		})
	}
	s.emitter.Emit(ctx, out...)

	utils.Info("Balance request created", map[string]any{
		"request_id": req.RequestID,
		"user_id":    user.UserID,
		"amount":     in.Amount.String(),
	})
	return req, nil
}

func displayName(u models.User) string {
	if u.Username != "" {
		return u.Username
	}
	return u.UserID
}

// ListBalanceRequests lists requests matching filter, newest first.
func (s *AccountService) ListBalanceRequests(ctx context.Context, filter models.BalanceRequestFilter) ([]models.BalanceRequest, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultRequestLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	switch filter.Status {
	case "", models.RequestPending, models.RequestApproved, models.RequestRejected:
	default:
		return nil, fmt.Errorf("service: %w", biddingerrors.Detail(biddingerrors.ErrInvalidRequest,
			"Invalid status: %s", filter.Status))
	}

	requests, err := s.repo.ListBalanceRequests(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list balance requests: %w", err)
	}
	return requests, nil
}

// ReviewBalanceRequest approves or rejects a pending request. Approval
// credits the balance in the same unit of work as the status change.
func (s *AccountService) ReviewBalanceRequest(ctx context.Context, requestID, adminID string, status models.RequestStatus, adminNotes string) (models.BalanceRequest, error) {
	requestID = utils.NormalizeID(requestID)
	if requestID == "" {
		return models.BalanceRequest{}, fmt.Errorf("service: %w - empty request ID", biddingerrors.ErrInvalidRequest)
	}
	if status != models.RequestApproved && status != models.RequestRejected {
		return models.BalanceRequest{}, fmt.Errorf("service: %w", biddingerrors.Detail(biddingerrors.ErrInvalidRequest,
			"Status must be approved or rejected"))
	}

	resolved, err := s.repo.ResolveBalanceRequest(ctx, models.BalanceRequestReview{
		RequestID:  requestID,
		Status:     status,
		AdminNotes: adminNotes,
		ReviewedBy: adminID,
		ReviewedAt: s.now(),
	})
	if err != nil {
		if errors.Is(err, biddingerrors.ErrRequestProcessed) {
			return models.BalanceRequest{}, fmt.Errorf("service: %w", biddingerrors.Detail(biddingerrors.ErrRequestProcessed,
				"This request has already been %s", resolved.Status))
		}
		return models.BalanceRequest{}, fmt.Errorf("service: failed to review balance request %s: %w", requestID, err)
	}

	title, message := "Balance Request Rejected",
		fmt.Sprintf("Your balance request for %s was rejected.", resolved.Amount.StringFixed(2))
	if status == models.RequestApproved {
		title, message = "Balance Request Approved",
			fmt.Sprintf("Your balance request for %s was approved and added to your balance.", resolved.Amount.StringFixed(2))
	}
	if adminNotes != "" {
		message += " Note: " + adminNotes
	}
	s.emitter.Emit(ctx, effects.Effect{
		Kind:        effects.KindNotification,
		RecipientID: resolved.UserID,
		SenderID:    adminID,
		Type:        models.NotificationBalanceUpdate,
		Title:       title,
		Message:     message,
		Link:        "/account/balance",
	})

	utils.Info("Balance request reviewed", map[string]any{
		"request_id": requestID,
		"status":     string(status),
		"admin_id":   adminID,
	})
	return resolved, nil
}
