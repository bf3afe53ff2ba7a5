package handler

import (
	"context"
	"errors"
	"net/http"

	bidding "auction-marketplace/internal/biddingService"
	"auction-marketplace/internal/biddingerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/bidding/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=bidding_handler.go -destination=mock_bidding_handler.go -package=handler

type BiddingServiceInterface interface {
	PlaceBid(ctx context.Context, productID, userID string, amount decimal.Decimal, currency string) (bidding.BidOutcome, error)
	GetBidsForProduct(ctx context.Context, productID string) ([]model.Bid, error)
	GetWinningBid(ctx context.Context, productID string) (model.Bid, error)
	GetProductsByUser(ctx context.Context, userID string) ([]model.Product, error)

	SweepEndedAuctions(ctx context.Context) (bidding.SweepReport, error)
	NotifyEndingSoon(ctx context.Context) (bidding.ReminderReport, error)
	SellToHighestBidder(ctx context.Context, productID, sellerID string) (bidding.SaleSummary, error)

	CreateProduct(ctx context.Context, sellerID string, in bidding.ProductInput) (model.Product, error)
	VerifyProduct(ctx context.Context, productID string, verified bool, commissionRate decimal.Decimal) (model.Product, error)
	GetProduct(ctx context.Context, productID string) (model.Product, error)
	GetProductsWonByUser(ctx context.Context, userID string) ([]model.Product, error)
	GetProductsSoldByUser(ctx context.Context, userID string) ([]model.Product, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// RecordBidHandler handles POST /bids
func (h *BiddingHandler) RecordBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}
	user, _ := helpers.CurrentUser(c)

	outcome, err := h.service.PlaceBid(c.Request.Context(), req.ProductID, user.UserID, req.Amount, req.Currency)
	if err != nil {
		helpers.RespondError(c, "RecordBidHandler", err, map[string]any{
			"product_id": req.ProductID,
			"user_id":    user.UserID,
			"amount":     req.Amount.String(),
		})
		return
	}

	if outcome.Purchase != nil {
		utils.JSONResponse(c, http.StatusOK, outcome.Purchase, "Product purchased at Buy Now price")
		helpers.LogSuccess("RecordBidHandler", "product purchased at buy-now price", map[string]any{
			"product_id": req.ProductID,
			"user_id":    user.UserID,
			"price":      outcome.Purchase.Price.String(),
		})
		return
	}

	status, message := http.StatusOK, "bid updated successfully"
	if outcome.Created {
		status, message = http.StatusCreated, "bid recorded successfully"
	}
	utils.JSONResponse(c, status, helpers.NewBidResponse(outcome.Bid), message)
	helpers.LogSuccess("RecordBidHandler", message, map[string]any{
		"bid_id":     outcome.Bid.BidID,
		"product_id": outcome.Bid.ProductID,
		"user_id":    user.UserID,
		"amount":     outcome.Bid.Amount.String(),
	})
}

// GetBidsByProductHandler handles GET /products/:product_id/bids
func (h *BiddingHandler) GetBidsByProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	bids, err := h.service.GetBidsForProduct(c.Request.Context(), productID)
	if err != nil && !errors.Is(err, biddingerrors.ErrNoBids) {
		helpers.RespondError(c, "GetBidsByProductHandler", err, map[string]any{"product_id": productID})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, helpers.NewBidResponse(b))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByProductHandler", "bids retrieved successfully", map[string]any{
		"product_id": productID,
		"count":      len(resp),
	})
}

// GetWinningBidHandler handles GET /products/:product_id/winning
func (h *BiddingHandler) GetWinningBidHandler(c *gin.Context) {
	productID := c.Param("product_id")
	bid, err := h.service.GetWinningBid(c.Request.Context(), productID)
	if err != nil {
		// For a read, a product without bids has no winning bid -> 404
		if errors.Is(err, biddingerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"product_id": productID})
			return
		}
		helpers.RespondError(c, "GetWinningBidHandler", err, map[string]any{"product_id": productID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":     bid.BidID,
		"product_id": bid.ProductID,
		"user_id":    bid.UserID,
		"amount":     bid.Amount.String(),
	})
}

// GetProductsByUserHandler handles GET /users/:user_id/products
func (h *BiddingHandler) GetProductsByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	products, err := h.service.GetProductsByUser(c.Request.Context(), userID)
	if err != nil && !errors.Is(err, biddingerrors.ErrUserNoBids) {
		helpers.RespondError(c, "GetProductsByUserHandler", err, map[string]any{"user_id": userID})
		return
	}
	if products == nil {
		products = []model.Product{}
	}

	utils.JSONResponse(c, http.StatusOK, products, "products retrieved successfully")
	helpers.LogSuccess("GetProductsByUserHandler", "products retrieved successfully", map[string]any{
		"user_id":        userID,
		"products_count": len(products),
	})
}
