package bidding

import (
	"context"
	"fmt"

	"auction-marketplace/internal/effects"
	"auction-marketplace/internal/models"
	"auction-marketplace/utils"
)

// ReminderReport counts notifications sent, one per bidder, and lists the
// products they were about.
type ReminderReport struct {
	Count    int      `json:"count"`
	Products []string `json:"products"`
}

// NotifyEndingSoon reminds every bidder on auctions closing within the
// window. Each product is reminded once; products without bidders stay
// eligible so later bidders still hear about it.
func (s *BiddingService) NotifyEndingSoon(ctx context.Context) (ReminderReport, error) {
	now := s.now()
	products, err := s.repo.ListEndingSoon(ctx, now, now.Add(s.endingSoonWindow))
	if err != nil {
		return ReminderReport{}, fmt.Errorf("service: failed to list auctions ending soon: %w", err)
	}

	report := ReminderReport{Products: make([]string, 0, len(products))}
	for _, p := range products {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		notified, err := s.remindBidders(ctx, p.ProductID)
		if err != nil {
			utils.Error("Failed to send ending-soon reminders", map[string]any{
				"product_id": p.ProductID,
				"error":      err.Error(),
			})
			continue
		}
		if notified > 0 {
			report.Count += notified
			report.Products = append(report.Products, p.ProductID)
		}
	}

	utils.Info("Ending-soon pass finished", map[string]any{"count": report.Count})
	return report, nil
}

// remindBidders returns the number of notifications emitted for productID.
func (s *BiddingService) remindBidders(ctx context.Context, productID string) (int, error) {
	notified := 0
	err := s.withProductLock(ctx, productID, func() error {
		product, err := s.repo.GetProduct(ctx, productID)
		if err != nil {
			return fmt.Errorf("service: failed to load product %s: %w", productID, err)
		}
		// Re-check under the lock: a sweep or a parallel pass may have won.
		if product.Terminal() || product.EndingSoonNotified || !s.now().Before(product.EndDate) {
			return nil
		}

		bidders, err := s.repo.GetBidderIDs(ctx, productID)
		if err != nil {
			return fmt.Errorf("service: failed to list bidders for product %s: %w", productID, err)
		}
		if len(bidders) == 0 {
			return nil
		}

		// Flag before emitting: at most one reminder round per product.
		if err := s.repo.MarkEndingSoonNotified(ctx, productID); err != nil {
			return fmt.Errorf("service: failed to flag product %s: %w", productID, err)
		}

		out := make([]effects.Effect, 0, len(bidders))
		for _, bidderID := range bidders {
			out = append(out, effects.Effect{
				Kind:        effects.KindNotification,
				RecipientID: bidderID,
				SenderID:    product.SellerID,
				ProductID:   productID,
				Type:        models.NotificationAuctionEnding,
				Title:       "Auction Ending Soon",
				Message:     fmt.Sprintf("The auction for %q will end in less than 1 hour!", product.Title),
				Link:        "/details/" + productID,
			})
		}
		s.emitter.Emit(ctx, out...)
		notified = len(out)
		return nil
	})
	return notified, err
}
