package server

import (
	"net/http"

	handler "auction-marketplace/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	Bidding  handler.BiddingServiceInterface
	Accounts handler.AccountServiceInterface
	Users    UserLookup
	CronKey  string
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	biddingHandler := handler.NewBiddingHandler(cfg.Bidding)
	accountHandler := handler.NewAccountHandler(cfg.Accounts)

	api := router.Group("", Authenticate(cfg.Users, cfg.CronKey))

	bids := api.Group("/bids")
	{
		bids.POST("", biddingHandler.RecordBidHandler)
	}

	products := api.Group("/products")
	{
		products.POST("", biddingHandler.CreateProductHandler)
		products.GET("/:product_id", biddingHandler.GetProductHandler)
		products.GET("/:product_id/bids", biddingHandler.GetBidsByProductHandler)
		products.GET("/:product_id/winning", biddingHandler.GetWinningBidHandler)
		products.POST("/:product_id/sell", biddingHandler.SellProductHandler)
	}

	users := api.Group("/users")
	{
		users.GET("/:user_id/products", biddingHandler.GetProductsByUserHandler)
		users.GET("/:user_id/won", biddingHandler.GetWonProductsHandler)
		users.GET("/:user_id/sold", biddingHandler.GetSoldProductsHandler)
	}

	accounts := api.Group("/account")
	{
		accounts.GET("/balance", accountHandler.GetBalanceHandler)
		accounts.GET("/ledger", accountHandler.GetLedgerHandler)
		accounts.POST("/balance-requests", accountHandler.CreateBalanceRequestHandler)
		accounts.GET("/balance-requests", accountHandler.ListMyBalanceRequestsHandler)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("", accountHandler.ListNotificationsHandler)
		notifications.GET("/unread-count", accountHandler.UnreadCountHandler)
		notifications.PATCH("/read-all", accountHandler.MarkAllReadHandler)
		notifications.PATCH("/:notification_id/read", accountHandler.MarkReadHandler)
	}

	admin := api.Group("/admin", RequireAdmin)
	{
		admin.GET("/check-auctions", biddingHandler.CheckAuctionsHandler)
		admin.GET("/check-ending-soon", biddingHandler.CheckEndingSoonHandler)
		admin.PATCH("/products/:product_id/verify", biddingHandler.VerifyProductHandler)
		admin.GET("/balance-requests", accountHandler.ListBalanceRequestsHandler)
		admin.PATCH("/balance-requests/:request_id", accountHandler.ReviewBalanceRequestHandler)
	}

	return router
}
