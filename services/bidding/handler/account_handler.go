package handler

import (
	"context"
	"net/http"
	"strconv"

	account "auction-marketplace/internal/accountService"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/bidding/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=account_handler.go -destination=mock_account_handler.go -package=handler

type AccountServiceInterface interface {
	GetBalance(ctx context.Context, userID string) (account.Balance, error)
	GetLedger(ctx context.Context, userID string, limit int) ([]model.LedgerEntry, error)
	CreateBalanceRequest(ctx context.Context, userID string, in account.BalanceRequestInput) (model.BalanceRequest, error)
	ListBalanceRequests(ctx context.Context, filter model.BalanceRequestFilter) ([]model.BalanceRequest, error)
	ReviewBalanceRequest(ctx context.Context, requestID, adminID string, status model.RequestStatus, adminNotes string) (model.BalanceRequest, error)

	ListNotifications(ctx context.Context, userID string, limit int) ([]model.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, notificationID, userID string) error
	MarkAllRead(ctx context.Context, userID string) (int, error)
}

type AccountHandler struct {
	service AccountServiceInterface
}

func NewAccountHandler(service AccountServiceInterface) *AccountHandler {
	return &AccountHandler{service: service}
}

// queryInt reads a non-negative integer query parameter, falling back to def.
func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 0 {
		return def
	}
	return v
}

// GetBalanceHandler handles GET /account/balance
func (h *AccountHandler) GetBalanceHandler(c *gin.Context) {
	user, _ := helpers.CurrentUser(c)
	balance, err := h.service.GetBalance(c.Request.Context(), user.UserID)
	if err != nil {
		helpers.RespondError(c, "GetBalanceHandler", err, map[string]any{"user_id": user.UserID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, balance, "balance retrieved successfully")
}

// GetLedgerHandler handles GET /account/ledger
func (h *AccountHandler) GetLedgerHandler(c *gin.Context) {
	user, _ := helpers.CurrentUser(c)
	entries, err := h.service.GetLedger(c.Request.Context(), user.UserID, queryInt(c, "limit", 0))
	if err != nil {
		helpers.RespondError(c, "GetLedgerHandler", err, map[string]any{"user_id": user.UserID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, entries, "ledger retrieved successfully")
}

// CreateBalanceRequestHandler handles POST /account/balance-requests
func (h *AccountHandler) CreateBalanceRequestHandler(c *gin.Context) {
	var req helpers.BalanceRequestCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateBalanceRequestHandler", err)
		return
	}
	user, _ := helpers.CurrentUser(c)

	created, err := h.service.CreateBalanceRequest(c.Request.Context(), user.UserID, account.BalanceRequestInput{
		Amount:        req.Amount,
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
		TransactionID: req.TransactionID,
		Notes:         req.Notes,
	})
	if err != nil {
		helpers.RespondError(c, "CreateBalanceRequestHandler", err, map[string]any{"user_id": user.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "Balance request submitted successfully")
	helpers.LogSuccess("CreateBalanceRequestHandler", "balance request submitted", map[string]any{
		"request_id": created.RequestID,
		"user_id":    user.UserID,
		"amount":     created.Amount.String(),
	})
}

// ListMyBalanceRequestsHandler handles GET /account/balance-requests
func (h *AccountHandler) ListMyBalanceRequestsHandler(c *gin.Context) {
	user, _ := helpers.CurrentUser(c)
	h.listBalanceRequests(c, "ListMyBalanceRequestsHandler", model.BalanceRequestFilter{
		UserID: user.UserID,
		Status: model.RequestStatus(c.Query("status")),
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
	})
}

// ListBalanceRequestsHandler handles GET /admin/balance-requests
func (h *AccountHandler) ListBalanceRequestsHandler(c *gin.Context) {
	h.listBalanceRequests(c, "ListBalanceRequestsHandler", model.BalanceRequestFilter{
		UserID: c.Query("user_id"),
		Status: model.RequestStatus(c.Query("status")),
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
	})
}

func (h *AccountHandler) listBalanceRequests(c *gin.Context, handlerName string, filter model.BalanceRequestFilter) {
	requests, err := h.service.ListBalanceRequests(c.Request.Context(), filter)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"user_id": filter.UserID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, requests, "balance requests retrieved successfully")
}

// ReviewBalanceRequestHandler handles PATCH /admin/balance-requests/:request_id
func (h *AccountHandler) ReviewBalanceRequestHandler(c *gin.Context) {
	var req helpers.BalanceRequestReview
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ReviewBalanceRequestHandler", err)
		return
	}
	requestID := c.Param("request_id")
	admin, _ := helpers.CurrentUser(c)

	reviewed, err := h.service.ReviewBalanceRequest(c.Request.Context(), requestID, admin.UserID,
		model.RequestStatus(req.Status), req.AdminNotes)
	if err != nil {
		helpers.RespondError(c, "ReviewBalanceRequestHandler", err, map[string]any{"request_id": requestID})
		return
	}

	message := "Balance request " + string(reviewed.Status)
	utils.JSONResponse(c, http.StatusOK, reviewed, message)
	helpers.LogSuccess("ReviewBalanceRequestHandler", message, map[string]any{
		"request_id": requestID,
		"admin_id":   admin.UserID,
	})
}

// ListNotificationsHandler handles GET /notifications
func (h *AccountHandler) ListNotificationsHandler(c *gin.Context) {
	user, _ := helpers.CurrentUser(c)
	list, err := h.service.ListNotifications(c.Request.Context(), user.UserID, queryInt(c, "limit", 0))
	if err != nil {
		helpers.RespondError(c, "ListNotificationsHandler", err, map[string]any{"user_id": user.UserID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, list, "notifications retrieved successfully")
}

// UnreadCountHandler handles GET /notifications/unread-count
func (h *AccountHandler) UnreadCountHandler(c *gin.Context) {
	user, _ := helpers.CurrentUser(c)
	count, err := h.service.UnreadCount(c.Request.Context(), user.UserID)
	if err != nil {
		helpers.RespondError(c, "UnreadCountHandler", err, map[string]any{"user_id": user.UserID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"count": count}, "unread count retrieved successfully")
}

// MarkReadHandler handles PATCH /notifications/:notification_id/read
func (h *AccountHandler) MarkReadHandler(c *gin.Context) {
	user, _ := helpers.CurrentUser(c)
	notificationID := c.Param("notification_id")
	if err := h.service.MarkRead(c.Request.Context(), notificationID, user.UserID); err != nil {
		helpers.RespondError(c, "MarkReadHandler", err, map[string]any{
			"notification_id": notificationID,
			"user_id":         user.UserID,
		})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"notification_id": notificationID}, "notification marked as read")
}

// MarkAllReadHandler handles PATCH /notifications/read-all
func (h *AccountHandler) MarkAllReadHandler(c *gin.Context) {
	user, _ := helpers.CurrentUser(c)
	updated, err := h.service.MarkAllRead(c.Request.Context(), user.UserID)
	if err != nil {
		helpers.RespondError(c, "MarkAllReadHandler", err, map[string]any{"user_id": user.UserID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"updated": updated}, "all notifications marked as read")
}
