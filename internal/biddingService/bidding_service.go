package bidding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-marketplace/internal/biddingerrors"
	"auction-marketplace/internal/effects"
	"auction-marketplace/internal/locking"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"

	"github.com/shopspring/decimal"
)

const defaultEndingSoonWindow = time.Hour

// BiddingService defines the business logic for auction bidding and settlement
type BiddingService struct {
	repo             repository.AuctionDB
	locker           locking.Locker
	emitter          effects.Emitter
	now              func() time.Time
	sweepFee         FeePolicy
	adminUserID      string
	endingSoonWindow time.Duration
	enforceReserve   bool
}

type Option func(*BiddingService)

// WithLocker replaces the in-process keyed mutex, e.g. with a Redis lock
// shared by several instances.
func WithLocker(l locking.Locker) Option {
	return func(s *BiddingService) { s.locker = l }
}

func WithEmitter(e effects.Emitter) Option {
	return func(s *BiddingService) { s.emitter = e }
}

func WithClock(now func() time.Time) Option {
	return func(s *BiddingService) { s.now = now }
}

// WithSweepFeePolicy sets the policy used by automatic settlement and buy-now.
// Manual sell always charges commission.
func WithSweepFeePolicy(p FeePolicy) Option {
	return func(s *BiddingService) { s.sweepFee = p }
}

// WithAdminUserID names the account credited with commission. Without it the
// first admin user is used.
func WithAdminUserID(id string) Option {
	return func(s *BiddingService) { s.adminUserID = id }
}

func WithEndingSoonWindow(d time.Duration) Option {
	return func(s *BiddingService) { s.endingSoonWindow = d }
}

// WithReserveEnforcement closes auctions whose highest bid is below the
// reserve price as unsold.
func WithReserveEnforcement(enabled bool) Option {
	return func(s *BiddingService) { s.enforceReserve = enabled }
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB, opts ...Option) *BiddingService {
	s := &BiddingService{
		repo:             repo,
		locker:           locking.NewKeyedMutex(),
		emitter:          effects.Nop{},
		now:              func() time.Time { return time.Now().UTC() },
		sweepFee:         NoFee{},
		endingSoonWindow: defaultEndingSoonWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Purchase is the result of a bid that met the buy-now price.
type Purchase struct {
	ProductID  string          `json:"product_id"`
	BuyerID    string          `json:"buyer_id"`
	Price      decimal.Decimal `json:"price"`
	Payout     decimal.Decimal `json:"payout"`
	Commission decimal.Decimal `json:"commission"`
}

// BidOutcome holds either a standing bid (Created tells insert from update)
// or a buy-now purchase.
type BidOutcome struct {
	Bid      models.Bid
	Created  bool
	Purchase *Purchase
}

// withProductLock runs fn while holding the product's lock.
func (s *BiddingService) withProductLock(ctx context.Context, productID string, fn func() error) error {
	unlock, err := s.locker.Lock(ctx, locking.ProductKey(productID))
	if err != nil {
		return fmt.Errorf("service: lock product %s: %w", productID, err)
	}
	defer unlock()
	return fn()
}

// PlaceBid validates and records a user's bid for a product
func (s *BiddingService) PlaceBid(ctx context.Context, productID, userID string, amount decimal.Decimal, currency string) (BidOutcome, error) {
	productID = utils.NormalizeID(productID)
	userID = utils.NormalizeID(userID)
	if productID == "" || userID == "" {
		return BidOutcome{}, fmt.Errorf("service: %w - missing productID or userID", biddingerrors.ErrInvalidBid)
	}
	if !amount.IsPositive() {
		return BidOutcome{}, fmt.Errorf("service: %w - non-positive bid amount", biddingerrors.ErrInvalidBid)
	}

	bidder, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return BidOutcome{}, fmt.Errorf("service: failed to load bidder %s: %w", userID, err)
	}
	if bidder.Role == models.RoleSuspended {
		return BidOutcome{}, fmt.Errorf("service: %w - bidder %s is suspended", biddingerrors.ErrForbidden, userID)
	}

	var outcome BidOutcome
	err = s.withProductLock(ctx, productID, func() error {
		var err error
		outcome, err = s.placeBidLocked(ctx, productID, userID, amount, currency)
		return err
	})
	return outcome, err
}

func (s *BiddingService) placeBidLocked(ctx context.Context, productID, userID string, amount decimal.Decimal, currency string) (BidOutcome, error) {
	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return BidOutcome{}, fmt.Errorf("service: failed to load product %s: %w", productID, err)
	}
	if !product.Verified {
		return BidOutcome{}, fmt.Errorf("service: %w", biddingerrors.ErrProductNotVerified)
	}
	if product.Terminal() {
		return BidOutcome{}, fmt.Errorf("service: %w", biddingerrors.ErrAuctionClosed)
	}
	if product.SellerID == userID {
		return BidOutcome{}, fmt.Errorf("service: %w", biddingerrors.ErrOwnProduct)
	}
	if currency != "" && currency != product.Currency {
		return BidOutcome{}, fmt.Errorf("service: %w", biddingerrors.Detail(biddingerrors.ErrCurrencyMismatch,
			"Bid must be in product currency: %s", product.Currency))
	}

	now := s.now()
	if now.Before(product.StartDate) {
		return BidOutcome{}, fmt.Errorf("service: %w", biddingerrors.ErrAuctionNotStarted)
	}
	if now.After(product.EndDate) {
		if _, err := s.settleLocked(ctx, product); err != nil {
			utils.Error("Inline settlement failed", map[string]any{
				"product_id": productID,
				"error":      err.Error(),
			})
		}
		return BidOutcome{}, fmt.Errorf("service: %w", biddingerrors.ErrAuctionEnded)
	}

	if product.BuyNowPrice.Valid && amount.GreaterThanOrEqual(product.BuyNowPrice.Decimal) {
		return s.buyNowLocked(ctx, product, userID)
	}

	highest, err := s.repo.GetWinningBid(ctx, productID)
	hasBids := err == nil
	if err != nil && !errors.Is(err, biddingerrors.ErrNoBids) {
		return BidOutcome{}, fmt.Errorf("service: failed to check winning bid: %w", err)
	}

	floor := product.StartingPrice
	if hasBids && highest.Amount.GreaterThan(floor) {
		floor = highest.Amount
	}
	minimum := floor.Add(product.BidIncrement)
	if amount.LessThan(minimum) {
		return BidOutcome{}, fmt.Errorf("service: %w - minimum is %s", biddingerrors.Detail(biddingerrors.ErrBidTooLow,
			"Your bid must be at least %s higher than the current bid", product.BidIncrement.String()), minimum.String())
	}
	if amount.LessThan(product.StartingPrice) {
		return BidOutcome{}, fmt.Errorf("service: %w", biddingerrors.ErrBelowStartingPrice)
	}

	existing, err := s.repo.GetUserBid(ctx, productID, userID)
	switch {
	case err == nil:
		if !amount.GreaterThan(existing.Amount) {
			return BidOutcome{}, fmt.Errorf("service: %w - previous bid is %s", biddingerrors.ErrBidNotAboveOwn, existing.Amount.StringFixed(2))
		}
		updated, err := s.repo.UpdateBidAmount(ctx, existing.BidID, amount, now)
		if err != nil {
			return BidOutcome{}, fmt.Errorf("service: failed to update bid %s: %w", existing.BidID, err)
		}
		return BidOutcome{Bid: updated}, nil
	case !errors.Is(err, biddingerrors.ErrNoBids):
		return BidOutcome{}, fmt.Errorf("service: failed to load bid of user %s: %w", userID, err)
	}

	if hasBids && !amount.GreaterThan(highest.Amount) {
		return BidOutcome{}, fmt.Errorf("service: %w - current highest bid is %s", biddingerrors.ErrBidNotAboveHighest, highest.Amount.StringFixed(2))
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		ProductID: productID,
		UserID:    userID,
		Amount:    amount,
		Currency:  product.Currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.RecordBid(ctx, bid); err != nil {
		return BidOutcome{}, fmt.Errorf("service: failed to record bid for product %s by user %s: %w", productID, userID, err)
	}
	return BidOutcome{Bid: bid, Created: true}, nil
}

func (s *BiddingService) buyNowLocked(ctx context.Context, product models.Product, buyerID string) (BidOutcome, error) {
	price := product.BuyNowPrice.Decimal
	result, err := s.settle(ctx, product, &award{
		bidderID:  buyerID,
		amount:    price,
		debitKind: models.LedgerBuyNowDebit,
	}, s.sweepFee)
	if err != nil {
		return BidOutcome{}, fmt.Errorf("service: buy-now for product %s: %w", product.ProductID, err)
	}
	if result.alreadySettled {
		return BidOutcome{}, fmt.Errorf("service: %w", biddingerrors.ErrAuctionClosed)
	}

	utils.Info("Product purchased at buy-now price", map[string]any{
		"product_id": product.ProductID,
		"buyer_id":   buyerID,
		"price":      price.String(),
	})
	return BidOutcome{Purchase: &Purchase{
		ProductID:  product.ProductID,
		BuyerID:    buyerID,
		Price:      price,
		Payout:     result.payout,
		Commission: result.commission,
	}}, nil
}

// GetBidsForProduct returns all standing bids for a specific product
func (s *BiddingService) GetBidsForProduct(ctx context.Context, productID string) ([]models.Bid, error) {
	productID = utils.NormalizeID(productID)
	if productID == "" {
		return nil, fmt.Errorf("service: %w - empty product ID", biddingerrors.ErrInvalidBid)
	}

	bids, err := s.repo.GetBidsByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for product %s: %w", productID, err)
	}
	return bids, nil
}

// GetWinningBid returns the leading bid for a specific product
func (s *BiddingService) GetWinningBid(ctx context.Context, productID string) (models.Bid, error) {
	productID = utils.NormalizeID(productID)
	if productID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty product ID", biddingerrors.ErrInvalidBid)
	}

	winningBid, err := s.repo.GetWinningBid(ctx, productID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for product %s: %w", productID, err)
	}
	return winningBid, nil
}

// GetProductsByUser returns all products a user has placed bids on
func (s *BiddingService) GetProductsByUser(ctx context.Context, userID string) ([]models.Product, error) {
	userID = utils.NormalizeID(userID)
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", biddingerrors.ErrInvalidBid)
	}

	products, err := s.repo.GetProductsByBidder(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get products for user %s: %w", userID, err)
	}
	return products, nil
}
