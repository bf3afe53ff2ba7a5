package bidding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"auction-marketplace/internal/biddingerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/utils"

	"github.com/shopspring/decimal"
)

// ProductInput is what a seller supplies when listing a product.
type ProductInput struct {
	Title         string
	Description   string
	Category      string
	Condition     models.Condition
	StartingPrice decimal.Decimal
	Currency      string
	BidIncrement  decimal.Decimal
	BuyNowPrice   decimal.NullDecimal
	ReservePrice  decimal.NullDecimal
	StartDate     time.Time
	EndDate       time.Time
}

var maxCommissionRate = decimal.NewFromInt(100)

// CreateProduct lists a new, unverified product for a seller.
func (s *BiddingService) CreateProduct(ctx context.Context, sellerID string, in ProductInput) (models.Product, error) {
	sellerID = utils.NormalizeID(sellerID)
	if sellerID == "" {
		return models.Product{}, fmt.Errorf("service: %w - empty seller ID", biddingerrors.ErrInvalidProduct)
	}
	seller, err := s.repo.GetUser(ctx, sellerID)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: failed to load seller %s: %w", sellerID, err)
	}
	if seller.Role != models.RoleSeller && seller.Role != models.RoleAdmin {
		return models.Product{}, fmt.Errorf("service: %w - only sellers can list products", biddingerrors.ErrForbidden)
	}

	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if in.Condition == "" {
		in.Condition = models.ConditionNew
	}
	if err := validateProductInput(in); err != nil {
		return models.Product{}, err
	}

	now := s.now()
	product := models.Product{
		ProductID:     utils.GenerateID(),
		SellerID:      sellerID,
		Title:         strings.TrimSpace(in.Title),
		Description:   in.Description,
		Category:      in.Category,
		Condition:     in.Condition,
		StartingPrice: in.StartingPrice,
		Currency:      in.Currency,
		BidIncrement:  in.BidIncrement,
		BuyNowPrice:   in.BuyNowPrice,
		ReservePrice:  in.ReservePrice,
		StartDate:     in.StartDate.UTC(),
		EndDate:       in.EndDate.UTC(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return models.Product{}, fmt.Errorf("service: failed to create product: %w", err)
	}

	utils.Info("Product listed", map[string]any{
		"product_id": product.ProductID,
		"seller_id":  sellerID,
	})
	return product, nil
}

func validateProductInput(in ProductInput) error {
	invalid := func(reason string) error {
		return fmt.Errorf("service: %w", biddingerrors.Detail(biddingerrors.ErrInvalidProduct, "%s", reason))
	}

	switch {
	case strings.TrimSpace(in.Title) == "":
		return invalid("Title is required")
	case !in.StartingPrice.IsPositive():
		return invalid("Starting price must be greater than zero")
	case !in.BidIncrement.IsPositive():
		return invalid("Bid increment must be greater than zero")
	case !models.SupportedCurrencies[in.Currency]:
		return invalid(fmt.Sprintf("Unsupported currency: %s", in.Currency))
	case in.StartDate.IsZero() || in.EndDate.IsZero():
		return invalid("Start and end dates are required")
	case !in.StartDate.Before(in.EndDate):
		return invalid("End date must be after start date")
	case in.BuyNowPrice.Valid && !in.BuyNowPrice.Decimal.GreaterThan(in.StartingPrice):
		return invalid("Buy now price must be greater than the starting price")
	case in.ReservePrice.Valid && !in.ReservePrice.Decimal.GreaterThan(in.StartingPrice):
		return invalid("Reserve price must be greater than the starting price")
	}

	switch in.Condition {
	case models.ConditionNew, models.ConditionUsed, models.ConditionRefurbished:
	default:
		return invalid(fmt.Sprintf("Unsupported condition: %s", in.Condition))
	}
	return nil
}

// VerifyProduct opens (or closes) a product for bidding and sets the
// commission rate charged on a manual sell.
func (s *BiddingService) VerifyProduct(ctx context.Context, productID string, verified bool, commissionRate decimal.Decimal) (models.Product, error) {
	productID = utils.NormalizeID(productID)
	if productID == "" {
		return models.Product{}, fmt.Errorf("service: %w - empty product ID", biddingerrors.ErrInvalidProduct)
	}
	if commissionRate.IsNegative() || commissionRate.GreaterThan(maxCommissionRate) {
		return models.Product{}, fmt.Errorf("service: %w", biddingerrors.Detail(biddingerrors.ErrInvalidProduct,
			"Commission rate must be between 0 and 100"))
	}

	product, err := s.repo.SetProductVerification(ctx, productID, verified, commissionRate)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: failed to verify product %s: %w", productID, err)
	}
	return product, nil
}

func (s *BiddingService) GetProduct(ctx context.Context, productID string) (models.Product, error) {
	productID = utils.NormalizeID(productID)
	if productID == "" {
		return models.Product{}, fmt.Errorf("service: %w - empty product ID", biddingerrors.ErrInvalidProduct)
	}
	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: failed to get product %s: %w", productID, err)
	}
	return product, nil
}

// GetProductsWonByUser returns sold products the user won.
func (s *BiddingService) GetProductsWonByUser(ctx context.Context, userID string) ([]models.Product, error) {
	userID = utils.NormalizeID(userID)
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", biddingerrors.ErrInvalidBid)
	}
	products, err := s.repo.ListProductsWonBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get products won by %s: %w", userID, err)
	}
	return products, nil
}

// GetProductsSoldByUser returns the seller's products that sold.
func (s *BiddingService) GetProductsSoldByUser(ctx context.Context, userID string) ([]models.Product, error) {
	userID = utils.NormalizeID(userID)
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", biddingerrors.ErrInvalidBid)
	}
	products, err := s.repo.ListProductsSoldBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get products sold by %s: %w", userID, err)
	}
	return products, nil
}
