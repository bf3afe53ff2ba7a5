package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"auction-marketplace/internal/biddingerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/utils"

	"github.com/shopspring/decimal"
)

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
// Every multi-step write runs under the single write lock, which makes
// settlements and balance movements atomic.
type MemoryRepo struct {
	mu            sync.RWMutex
	products      map[string]model.Product
	bids          map[string][]model.Bid // key: productID -> value: standing bids
	bidProducts   map[string]string      // key: bidID -> value: productID
	userProducts  map[string][]string    // key: userID -> value: productIDs the user has bid on
	users         map[string]model.User
	ledger        map[string][]model.LedgerEntry // key: userID
	requests      map[string]model.BalanceRequest
	notifications map[string]model.Notification
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		products:      make(map[string]model.Product),
		bids:          make(map[string][]model.Bid),
		bidProducts:   make(map[string]string),
		userProducts:  make(map[string][]string),
		users:         make(map[string]model.User),
		ledger:        make(map[string][]model.LedgerEntry),
		requests:      make(map[string]model.BalanceRequest),
		notifications: make(map[string]model.Notification),
	}
}

// AddUser stores a user as-is. Users are owned by the user service, so this
// is only used for seeding and tests.
func (r *MemoryRepo) AddUser(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.UserID] = user
}

// ---- products ----

func (r *MemoryRepo) CreateProduct(_ context.Context, product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ProductID == "" {
		return fmt.Errorf("create product: %w - empty product ID", biddingerrors.ErrInvalidProduct)
	}
	if _, exists := r.products[product.ProductID]; exists {
		return fmt.Errorf("create product %s: %w - duplicate product ID", product.ProductID, biddingerrors.ErrInvalidProduct)
	}
	r.products[product.ProductID] = product
	return nil
}

func (r *MemoryRepo) GetProduct(_ context.Context, productID string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, biddingerrors.ErrProductNotFound)
	}
	return p, nil
}

func (r *MemoryRepo) SetProductVerification(_ context.Context, productID string, verified bool, commissionRate decimal.Decimal) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("verify product %s: %w", productID, biddingerrors.ErrProductNotFound)
	}
	p.Verified = verified
	p.CommissionRate = commissionRate
	p.UpdatedAt = time.Now().UTC()
	r.products[productID] = p
	return p, nil
}

func (r *MemoryRepo) ListEndedActive(_ context.Context, now time.Time) ([]model.Product, error) {
	return r.filterProducts(func(p model.Product) bool {
		return !p.Terminal() && p.EndDate.Before(now)
	}), nil
}

func (r *MemoryRepo) ListEndingSoon(_ context.Context, from, to time.Time) ([]model.Product, error) {
	return r.filterProducts(func(p model.Product) bool {
		return !p.Terminal() && !p.EndingSoonNotified && p.EndDate.After(from) && !p.EndDate.After(to)
	}), nil
}

func (r *MemoryRepo) MarkEndingSoonNotified(_ context.Context, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return fmt.Errorf("mark ending soon %s: %w", productID, biddingerrors.ErrProductNotFound)
	}
	p.EndingSoonNotified = true
	r.products[productID] = p
	return nil
}

func (r *MemoryRepo) ListProductsWonBy(_ context.Context, userID string) ([]model.Product, error) {
	return r.filterProducts(func(p model.Product) bool {
		return p.Sold && p.WinnerID == userID
	}), nil
}

func (r *MemoryRepo) ListProductsSoldBy(_ context.Context, sellerID string) ([]model.Product, error) {
	return r.filterProducts(func(p model.Product) bool {
		return p.Sold && p.SellerID == sellerID
	}), nil
}

// filterProducts returns matching products ordered by end date.
func (r *MemoryRepo) filterProducts(match func(model.Product) bool) []model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Product, 0)
	for _, p := range r.products {
		if match(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EndDate.Equal(out[j].EndDate) {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].EndDate.Before(out[j].EndDate)
	})
	return out
}

// ---- bids ----

// RecordBid stores a new standing bid.
func (r *MemoryRepo) RecordBid(_ context.Context, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[bid.ProductID]; !ok {
		return fmt.Errorf("record bid for product %s: %w", bid.ProductID, biddingerrors.ErrProductNotFound)
	}
	for _, b := range r.bids[bid.ProductID] {
		if b.UserID == bid.UserID {
			return fmt.Errorf("record bid for product %s: %w", bid.ProductID, biddingerrors.ErrDuplicateBid)
		}
	}

	r.bids[bid.ProductID] = append(r.bids[bid.ProductID], bid)
	r.bidProducts[bid.BidID] = bid.ProductID
	r.userProducts[bid.UserID] = append(r.userProducts[bid.UserID], bid.ProductID)
	return nil
}

func (r *MemoryRepo) UpdateBidAmount(_ context.Context, bidID string, amount decimal.Decimal, at time.Time) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	productID, ok := r.bidProducts[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("update bid %s: %w", bidID, biddingerrors.ErrNoBids)
	}
	bids := r.bids[productID]
	for i := range bids {
		if bids[i].BidID == bidID {
			bids[i].Amount = amount
			bids[i].UpdatedAt = at
			return bids[i], nil
		}
	}
	return model.Bid{}, fmt.Errorf("update bid %s: %w", bidID, biddingerrors.ErrNoBids)
}

func (r *MemoryRepo) GetUserBid(_ context.Context, productID, userID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bids[productID] {
		if b.UserID == userID {
			return b, nil
		}
	}
	return model.Bid{}, fmt.Errorf("get bid of user %s for product %s: %w", userID, productID, biddingerrors.ErrNoBids)
}

// GetBidsByProduct returns all standing bids for a product in creation order
func (r *MemoryRepo) GetBidsByProduct(_ context.Context, productID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[productID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for product %s: %w", productID, biddingerrors.ErrNoBids)
	}
	return append([]model.Bid(nil), bids...), nil
}

// GetWinningBid returns the leading bid: highest amount, earliest to reach it.
func (r *MemoryRepo) GetWinningBid(_ context.Context, productID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[productID]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get winning bid for product %s: %w", productID, biddingerrors.ErrNoBids)
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Outranks(winning) {
			winning = b
		}
	}
	return winning, nil
}

func (r *MemoryRepo) GetBidderIDs(_ context.Context, productID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.bids[productID]))
	for _, b := range r.bids[productID] {
		ids = append(ids, b.UserID)
	}
	sort.Strings(ids)
	return ids, nil
}

// GetProductsByBidder returns all products a user has bid on
func (r *MemoryRepo) GetProductsByBidder(_ context.Context, userID string) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productIDs, ok := r.userProducts[userID]
	if !ok || len(productIDs) == 0 {
		return nil, fmt.Errorf("get products for user %s: %w", userID, biddingerrors.ErrUserNoBids)
	}

	products := make([]model.Product, 0, len(productIDs))
	for _, id := range productIDs {
		if p, exists := r.products[id]; exists {
			products = append(products, p)
		}
	}
	return products, nil
}

// ---- users and ledger ----

func (r *MemoryRepo) GetUser(_ context.Context, userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, biddingerrors.ErrUserNotFound)
	}
	return u, nil
}

func (r *MemoryRepo) ListUsersByRole(_ context.Context, role model.Role) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.User, 0)
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

// ListLedger returns a user's entries newest first.
func (r *MemoryRepo) ListLedger(_ context.Context, userID string, limit int) ([]model.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.ledger[userID]
	out := make([]model.LedgerEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// applyMovements checks every account exists before touching any of them.
// Caller holds the write lock.
func (r *MemoryRepo) applyMovements(movements []model.BalanceMovement, productID, requestID string, at time.Time) error {
	for _, m := range movements {
		if _, ok := r.users[m.UserID]; !ok {
			return fmt.Errorf("apply %s movement: %w - user %s", m.Kind, biddingerrors.ErrUserNotFound, m.UserID)
		}
	}

	for _, m := range movements {
		u := r.users[m.UserID]
		var after decimal.Decimal
		switch m.Account {
		case model.AccountCommission:
			u.CommissionBalance = u.CommissionBalance.Add(m.Amount)
			after = u.CommissionBalance
		default:
			u.Balance = u.Balance.Add(m.Amount)
			after = u.Balance
		}
		r.users[m.UserID] = u

		r.ledger[m.UserID] = append(r.ledger[m.UserID], model.LedgerEntry{
			EntryID:      utils.GenerateID(),
			UserID:       m.UserID,
			ProductID:    productID,
			RequestID:    requestID,
			Account:      accountOrDefault(m.Account),
			Kind:         m.Kind,
			Amount:       m.Amount,
			BalanceAfter: after,
			CreatedAt:    at,
		})
	}
	return nil
}

func accountOrDefault(a model.Account) model.Account {
	if a == "" {
		return model.AccountBalance
	}
	return a
}

// ---- settlement ----

func (r *MemoryRepo) ApplySettlement(_ context.Context, s model.Settlement) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[s.ProductID]
	if !ok {
		return model.Product{}, fmt.Errorf("settle product %s: %w", s.ProductID, biddingerrors.ErrProductNotFound)
	}
	if p.Terminal() {
		return p, fmt.Errorf("settle product %s: %w", s.ProductID, biddingerrors.ErrAlreadySettled)
	}

	if err := r.applyMovements(s.Movements, s.ProductID, "", s.SettledAt); err != nil {
		return model.Product{}, fmt.Errorf("settle product %s: %w", s.ProductID, err)
	}

	switch s.Outcome {
	case model.OutcomeSold:
		p.Sold = true
		p.WinnerID = s.WinnerID
		p.SoldPrice = decimal.NewNullDecimal(s.Price)
	default:
		p.Unsold = true
	}
	p.UpdatedAt = s.SettledAt
	r.products[s.ProductID] = p
	return p, nil
}

// ---- balance requests ----

func (r *MemoryRepo) CreateBalanceRequest(_ context.Context, request model.BalanceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[request.UserID]; !ok {
		return fmt.Errorf("create balance request: %w - user %s", biddingerrors.ErrUserNotFound, request.UserID)
	}
	r.requests[request.RequestID] = request
	return nil
}

func (r *MemoryRepo) GetBalanceRequest(_ context.Context, requestID string) (model.BalanceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[requestID]
	if !ok {
		return model.BalanceRequest{}, fmt.Errorf("get balance request %s: %w", requestID, biddingerrors.ErrRequestNotFound)
	}
	return req, nil
}

// ListBalanceRequests returns matching requests newest first.
func (r *MemoryRepo) ListBalanceRequests(_ context.Context, f model.BalanceRequestFilter) ([]model.BalanceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.BalanceRequest, 0)
	for _, req := range r.requests {
		if f.UserID != "" && req.UserID != f.UserID {
			continue
		}
		if f.Status != "" && req.Status != f.Status {
			continue
		}
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].RequestID > out[j].RequestID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return []model.BalanceRequest{}, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *MemoryRepo) ResolveBalanceRequest(_ context.Context, review model.BalanceRequestReview) (model.BalanceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[review.RequestID]
	if !ok {
		return model.BalanceRequest{}, fmt.Errorf("resolve balance request %s: %w", review.RequestID, biddingerrors.ErrRequestNotFound)
	}
	if req.Status != model.RequestPending {
		return req, fmt.Errorf("resolve balance request %s: %w", review.RequestID, biddingerrors.ErrRequestProcessed)
	}

	if review.Status == model.RequestApproved {
		credit := []model.BalanceMovement{{
			UserID:  req.UserID,
			Account: model.AccountBalance,
			Kind:    model.LedgerTopUp,
			Amount:  req.Amount,
		}}
		if err := r.applyMovements(credit, "", req.RequestID, review.ReviewedAt); err != nil {
			return model.BalanceRequest{}, fmt.Errorf("resolve balance request %s: %w", review.RequestID, err)
		}
	}

	req.Status = review.Status
	req.AdminNotes = review.AdminNotes
	req.ReviewedBy = review.ReviewedBy
	req.UpdatedAt = review.ReviewedAt
	r.requests[req.RequestID] = req
	return req, nil
}

// ---- notifications ----

func (r *MemoryRepo) CreateNotification(_ context.Context, n model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications[n.NotificationID] = n
	return nil
}

func (r *MemoryRepo) GetNotification(_ context.Context, notificationID string) (model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.notifications[notificationID]
	if !ok {
		return model.Notification{}, fmt.Errorf("get notification %s: %w", notificationID, biddingerrors.ErrNotificationNotFound)
	}
	return n, nil
}

// ListNotifications returns a user's notifications newest first.
func (r *MemoryRepo) ListNotifications(_ context.Context, userID string, limit int) ([]model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Notification, 0)
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].NotificationID > out[j].NotificationID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) CountUnread(_ context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *MemoryRepo) MarkNotificationRead(_ context.Context, notificationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[notificationID]
	if !ok {
		return fmt.Errorf("mark notification %s read: %w", notificationID, biddingerrors.ErrNotificationNotFound)
	}
	n.IsRead = true
	r.notifications[notificationID] = n
	return nil
}

func (r *MemoryRepo) MarkAllNotificationsRead(_ context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := 0
	for id, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			r.notifications[id] = n
			updated++
		}
	}
	return updated, nil
}

var _ AuctionDB = (*MemoryRepo)(nil)
