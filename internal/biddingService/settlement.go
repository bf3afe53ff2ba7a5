package bidding

import (
	"context"
	"errors"
	"fmt"

	"auction-marketplace/internal/biddingerrors"
	"auction-marketplace/internal/effects"
	"auction-marketplace/internal/models"
	"auction-marketplace/utils"

	"github.com/shopspring/decimal"
)

type AuctionStatus string

const (
	StatusActive AuctionStatus = "active"
	StatusEnded  AuctionStatus = "ended"
)

type Outcome string

const (
	OutcomeSold   Outcome = "sold"
	OutcomeUnsold Outcome = "unsold"
	OutcomeNone   Outcome = "none"
)

// SettlementResult reports what Settle did, or found, for one product.
type SettlementResult struct {
	ProductID string              `json:"product_id"`
	Status    AuctionStatus       `json:"status"`
	Outcome   Outcome             `json:"outcome"`
	WinnerID  string              `json:"winner_id,omitempty"`
	Price     decimal.NullDecimal `json:"price"`
	Error     string              `json:"error,omitempty"`
}

type SweepReport struct {
	Processed int                `json:"processed"`
	Results   []SettlementResult `json:"results"`
}

// SaleSummary is returned by a manual sell.
type SaleSummary struct {
	ProductID  string          `json:"product_id"`
	WinnerID   string          `json:"winner_id"`
	Currency   string          `json:"currency"`
	Price      decimal.Decimal `json:"price"`
	Payout     decimal.Decimal `json:"payout"`
	Commission decimal.Decimal `json:"commission"`
}

// award is the winning side of a settlement. A nil award closes unsold.
type award struct {
	bidderID  string
	amount    decimal.Decimal
	debitKind models.LedgerKind
}

type settled struct {
	product        models.Product
	payout         decimal.Decimal
	commission     decimal.Decimal
	alreadySettled bool
}

// Settle closes a product whose end date has passed. Repeated calls are no-ops.
func (s *BiddingService) Settle(ctx context.Context, productID string) (SettlementResult, error) {
	productID = utils.NormalizeID(productID)
	if productID == "" {
		return SettlementResult{}, fmt.Errorf("service: %w - empty product ID", biddingerrors.ErrInvalidProduct)
	}

	var result SettlementResult
	err := s.withProductLock(ctx, productID, func() error {
		product, err := s.repo.GetProduct(ctx, productID)
		if err != nil {
			return fmt.Errorf("service: failed to load product %s: %w", productID, err)
		}
		result, err = s.settleLocked(ctx, product)
		return err
	})
	return result, err
}

// settleLocked runs with the product lock held.
func (s *BiddingService) settleLocked(ctx context.Context, product models.Product) (SettlementResult, error) {
	if product.Terminal() {
		return terminalResult(product), nil
	}
	if !s.now().After(product.EndDate) {
		return SettlementResult{ProductID: product.ProductID, Status: StatusActive, Outcome: OutcomeNone}, nil
	}

	var win *award
	winning, err := s.repo.GetWinningBid(ctx, product.ProductID)
	switch {
	case err == nil:
		win = &award{bidderID: winning.UserID, amount: winning.Amount, debitKind: models.LedgerAuctionDebit}
	case !errors.Is(err, biddingerrors.ErrNoBids):
		return SettlementResult{}, fmt.Errorf("service: failed to get winning bid for product %s: %w", product.ProductID, err)
	}

	if win != nil && s.enforceReserve && product.ReservePrice.Valid && win.amount.LessThan(product.ReservePrice.Decimal) {
		utils.Info("Highest bid below reserve, closing unsold", map[string]any{
			"product_id": product.ProductID,
			"highest":    win.amount.String(),
			"reserve":    product.ReservePrice.Decimal.String(),
		})
		win = nil
	}

	out, err := s.settle(ctx, product, win, s.sweepFee)
	if err != nil {
		return SettlementResult{}, err
	}
	return terminalResult(out.product), nil
}

func terminalResult(p models.Product) SettlementResult {
	r := SettlementResult{ProductID: p.ProductID, Status: StatusEnded, Outcome: OutcomeUnsold}
	if p.Sold {
		r.Outcome = OutcomeSold
		r.WinnerID = p.WinnerID
		r.Price = p.SoldPrice
	}
	return r
}

// settle is the single money-moving close used by the sweep, buy-now and
// manual sell. The caller holds the product lock. Effects are emitted only
// when this call performed the transition.
func (s *BiddingService) settle(ctx context.Context, product models.Product, win *award, fee FeePolicy) (settled, error) {
	now := s.now()
	settlement := models.Settlement{
		ProductID: product.ProductID,
		Outcome:   models.OutcomeUnsold,
		SettledAt: now,
	}

	var payout, commission decimal.Decimal
	if win != nil {
		payout, commission = fee.Split(win.amount, product)
		settlement.Outcome = models.OutcomeSold
		settlement.WinnerID = win.bidderID
		settlement.Price = win.amount
		settlement.Movements = append(settlement.Movements, models.BalanceMovement{
			UserID:  win.bidderID,
			Account: models.AccountBalance,
			Kind:    win.debitKind,
			Amount:  win.amount.Neg(),
		})
		if payout.IsPositive() {
			settlement.Movements = append(settlement.Movements, models.BalanceMovement{
				UserID:  product.SellerID,
				Account: models.AccountBalance,
				Kind:    models.LedgerSalePayout,
				Amount:  payout,
			})
		}
		if commission.IsPositive() {
			admin, err := s.commissionAccount(ctx)
			if err != nil {
				return settled{}, err
			}
			settlement.Movements = append(settlement.Movements, models.BalanceMovement{
				UserID:  admin.UserID,
				Account: models.AccountCommission,
				Kind:    models.LedgerCommissionCredit,
				Amount:  commission,
			})
		}
	}

	updated, err := s.repo.ApplySettlement(ctx, settlement)
	if errors.Is(err, biddingerrors.ErrAlreadySettled) {
		// Another instance got there first; report what it recorded.
		if current, getErr := s.repo.GetProduct(ctx, product.ProductID); getErr == nil {
			updated = current
		}
		return settled{product: updated, alreadySettled: true}, nil
	}
	if err != nil {
		return settled{}, fmt.Errorf("service: failed to settle product %s: %w", product.ProductID, err)
	}

	fields := map[string]any{
		"product_id": product.ProductID,
		"outcome":    string(settlement.Outcome),
		"fee_policy": fee.Name(),
	}
	if win != nil {
		fields["winner_id"] = win.bidderID
		fields["price"] = win.amount.String()
		fields["commission"] = commission.String()
		s.emitWinnerEffects(ctx, updated, win.bidderID)
	}
	utils.Info("Auction settled", fields)

	return settled{product: updated, payout: payout, commission: commission}, nil
}

// commissionAccount resolves the admin user credited with commission.
func (s *BiddingService) commissionAccount(ctx context.Context) (models.User, error) {
	if s.adminUserID != "" {
		admin, err := s.repo.GetUser(ctx, s.adminUserID)
		if err != nil {
			return models.User{}, fmt.Errorf("service: failed to load commission account %s: %w", s.adminUserID, err)
		}
		return admin, nil
	}

	admins, err := s.repo.ListUsersByRole(ctx, models.RoleAdmin)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to list admins: %w", err)
	}
	if len(admins) == 0 {
		return models.User{}, fmt.Errorf("service: %w - no admin account for commission", biddingerrors.ErrUserNotFound)
	}
	return admins[0], nil
}

func (s *BiddingService) emitWinnerEffects(ctx context.Context, product models.Product, winnerID string) {
	link := "/details/" + product.ProductID
	out := []effects.Effect{
		{
			Kind:        effects.KindNotification,
			RecipientID: winnerID,
			SenderID:    product.SellerID,
			ProductID:   product.ProductID,
			Type:        models.NotificationAuctionWon,
			Title:       "Auction Won",
			Message:     fmt.Sprintf("Congratulations! You won the auction for %q.", product.Title),
			Link:        link,
		},
		{
			Kind:        effects.KindNotification,
			RecipientID: product.SellerID,
			SenderID:    winnerID,
			ProductID:   product.ProductID,
			Type:        models.NotificationAuctionEnd,
			Title:       "Auction Ended",
			Message:     fmt.Sprintf("Your auction for %q has ended and the product was sold.", product.Title),
			Link:        link,
		},
	}

	// Email is best-effort: without an address on file only the in-app
	// notification goes out.
	if winner, err := s.repo.GetUser(ctx, winnerID); err == nil && winner.Email != "" {
		out = append(out, effects.Effect{
			Kind:        effects.KindEmail,
			RecipientID: winnerID,
			Email:       winner.Email,
			ProductID:   product.ProductID,
			Title:       "Congratulations! You won the auction!",
			Message: fmt.Sprintf("Hello %s, you won the auction for %q with a final price of %s %s.",
				winner.Username, product.Title, product.SoldPrice.Decimal.StringFixed(2), product.Currency),
			Link: link,
		})
	}
	s.emitter.Emit(ctx, out...)
}

// SweepEndedAuctions settles every product past its end date. A failure on
// one product is logged and recorded in its result.
func (s *BiddingService) SweepEndedAuctions(ctx context.Context) (SweepReport, error) {
	ended, err := s.repo.ListEndedActive(ctx, s.now())
	if err != nil {
		return SweepReport{}, fmt.Errorf("service: failed to list ended auctions: %w", err)
	}

	report := SweepReport{Results: make([]SettlementResult, 0, len(ended))}
	for _, p := range ended {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		result, err := s.Settle(ctx, p.ProductID)
		if err != nil {
			utils.Error("Failed to settle auction", map[string]any{
				"product_id": p.ProductID,
				"error":      err.Error(),
			})
			result = SettlementResult{ProductID: p.ProductID, Status: StatusEnded, Outcome: OutcomeNone, Error: err.Error()}
		}
		report.Results = append(report.Results, result)
		report.Processed++
	}

	utils.Info("Auction sweep finished", map[string]any{"processed": report.Processed})
	return report, nil
}

// SellToHighestBidder lets a seller close their auction early to the
// current leader. Commission is always charged.
func (s *BiddingService) SellToHighestBidder(ctx context.Context, productID, sellerID string) (SaleSummary, error) {
	productID = utils.NormalizeID(productID)
	sellerID = utils.NormalizeID(sellerID)
	if productID == "" || sellerID == "" {
		return SaleSummary{}, fmt.Errorf("service: %w - missing productID or sellerID", biddingerrors.ErrInvalidProduct)
	}

	var summary SaleSummary
	err := s.withProductLock(ctx, productID, func() error {
		product, err := s.repo.GetProduct(ctx, productID)
		if err != nil {
			return fmt.Errorf("service: failed to load product %s: %w", productID, err)
		}
		if product.SellerID != sellerID {
			return fmt.Errorf("service: %w", biddingerrors.Detail(biddingerrors.ErrForbidden,
				"You do not have permission to sell this product"))
		}
		if product.Terminal() {
			return fmt.Errorf("service: %w", biddingerrors.ErrAuctionClosed)
		}

		winning, err := s.repo.GetWinningBid(ctx, productID)
		if err != nil {
			return fmt.Errorf("service: failed to get winning bid for product %s: %w", productID, err)
		}
		if _, err := s.repo.GetUser(ctx, sellerID); err != nil {
			return fmt.Errorf("service: failed to load seller %s: %w", sellerID, err)
		}
		if _, err := s.commissionAccount(ctx); err != nil {
			return err
		}

		out, err := s.settle(ctx, product, &award{
			bidderID:  winning.UserID,
			amount:    winning.Amount,
			debitKind: models.LedgerAuctionDebit,
		}, CommissionFee{})
		if err != nil {
			return err
		}
		if out.alreadySettled {
			return fmt.Errorf("service: %w", biddingerrors.ErrAuctionClosed)
		}

		summary = SaleSummary{
			ProductID:  productID,
			WinnerID:   winning.UserID,
			Currency:   product.Currency,
			Price:      winning.Amount,
			Payout:     out.payout,
			Commission: out.commission,
		}
		return nil
	})
	return summary, err
}
