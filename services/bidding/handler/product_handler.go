package handler

import (
	"context"
	"fmt"
	"net/http"

	bidding "auction-marketplace/internal/biddingService"
	"auction-marketplace/internal/biddingerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/bidding/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// CreateProductHandler handles POST /products
func (h *BiddingHandler) CreateProductHandler(c *gin.Context) {
	var req helpers.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateProductHandler", err)
		return
	}
	user, _ := helpers.CurrentUser(c)

	product, err := h.service.CreateProduct(c.Request.Context(), user.UserID, bidding.ProductInput{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Condition:     model.Condition(req.Condition),
		StartingPrice: req.StartingPrice,
		Currency:      req.Currency,
		BidIncrement:  req.BidIncrement,
		BuyNowPrice:   req.BuyNowPrice,
		ReservePrice:  req.ReservePrice,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	})
	if err != nil {
		helpers.RespondError(c, "CreateProductHandler", err, map[string]any{"seller_id": user.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, product, "product created successfully")
	helpers.LogSuccess("CreateProductHandler", "product created successfully", map[string]any{
		"product_id": product.ProductID,
		"seller_id":  user.UserID,
	})
}

// GetProductHandler handles GET /products/:product_id
func (h *BiddingHandler) GetProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	product, err := h.service.GetProduct(c.Request.Context(), productID)
	if err != nil {
		helpers.RespondError(c, "GetProductHandler", err, map[string]any{"product_id": productID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, product, "product retrieved successfully")
}

// VerifyProductHandler handles PATCH /admin/products/:product_id/verify
func (h *BiddingHandler) VerifyProductHandler(c *gin.Context) {
	var req helpers.VerifyProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "VerifyProductHandler", err)
		return
	}
	productID := c.Param("product_id")

	product, err := h.service.VerifyProduct(c.Request.Context(), productID, *req.Verified, req.CommissionRate)
	if err != nil {
		helpers.RespondError(c, "VerifyProductHandler", err, map[string]any{"product_id": productID})
		return
	}

	message := "Product verified for bidding"
	if !product.Verified {
		message = "Product verification removed"
	}
	utils.JSONResponse(c, http.StatusOK, product, message)
	helpers.LogSuccess("VerifyProductHandler", message, map[string]any{
		"product_id":      productID,
		"commission_rate": product.CommissionRate.String(),
	})
}

// GetWonProductsHandler handles GET /users/:user_id/won
func (h *BiddingHandler) GetWonProductsHandler(c *gin.Context) {
	h.listOwnProducts(c, "GetWonProductsHandler", h.service.GetProductsWonByUser)
}

// GetSoldProductsHandler handles GET /users/:user_id/sold
func (h *BiddingHandler) GetSoldProductsHandler(c *gin.Context) {
	h.listOwnProducts(c, "GetSoldProductsHandler", h.service.GetProductsSoldByUser)
}

// listOwnProducts serves per-user product listings, visible to that user and admins.
func (h *BiddingHandler) listOwnProducts(c *gin.Context, handlerName string, list func(ctx context.Context, userID string) ([]model.Product, error)) {
	userID := c.Param("user_id")
	caller, _ := helpers.CurrentUser(c)
	if caller.UserID != userID && !helpers.IsAdmin(c) {
		helpers.RespondError(c, handlerName, fmt.Errorf("%w - listing of user %s", biddingerrors.ErrForbidden, userID),
			map[string]any{"caller_id": caller.UserID})
		return
	}

	products, err := list(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"user_id": userID})
		return
	}
	if products == nil {
		products = []model.Product{}
	}

	utils.JSONResponse(c, http.StatusOK, products, "products retrieved successfully")
	helpers.LogSuccess(handlerName, "products retrieved successfully", map[string]any{
		"user_id":        userID,
		"products_count": len(products),
	})
}
