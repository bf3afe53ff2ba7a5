package handler

import (
	"net/http"

	"auction-marketplace/services/bidding/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// CheckAuctionsHandler handles GET /admin/check-auctions
func (h *BiddingHandler) CheckAuctionsHandler(c *gin.Context) {
	report, err := h.service.SweepEndedAuctions(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "CheckAuctionsHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, report, "Auction check completed")
	helpers.LogSuccess("CheckAuctionsHandler", "auction check completed", map[string]any{
		"processed": report.Processed,
	})
}

// CheckEndingSoonHandler handles GET /admin/check-ending-soon
func (h *BiddingHandler) CheckEndingSoonHandler(c *gin.Context) {
	report, err := h.service.NotifyEndingSoon(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "CheckEndingSoonHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, report, "Ending soon notifications sent")
	helpers.LogSuccess("CheckEndingSoonHandler", "ending soon notifications sent", map[string]any{
		"count": report.Count,
	})
}

// SellProductHandler handles POST /products/:product_id/sell
func (h *BiddingHandler) SellProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	user, _ := helpers.CurrentUser(c)

	summary, err := h.service.SellToHighestBidder(c.Request.Context(), productID, user.UserID)
	if err != nil {
		helpers.RespondError(c, "SellProductHandler", err, map[string]any{
			"product_id": productID,
			"seller_id":  user.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, summary, "Product has been successfully sold!")
	helpers.LogSuccess("SellProductHandler", "product sold to highest bidder", map[string]any{
		"product_id": productID,
		"winner_id":  summary.WinnerID,
		"price":      summary.Price.String(),
		"commission": summary.Commission.String(),
	})
}
