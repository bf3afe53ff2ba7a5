package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-marketplace/internal/biddingerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/bidding/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

const (
	headerUserID  = "X-User-ID"
	headerCronKey = "X-Cron-Key"
)

// cronUser is the identity given to internal triggers holding the cron key.
var cronUser = model.User{UserID: "system", Username: "scheduler", Role: model.RoleAdmin}

// UserLookup resolves the caller named by the gateway.
type UserLookup interface {
	GetUser(ctx context.Context, userID string) (model.User, error)
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	}
	if user, ok := helpers.CurrentUser(c); ok {
		fields["user_id"] = user.UserID
	}
	utils.Info("HTTP Request", fields)
}

// Authenticate trusts the X-User-ID header set by the gateway and loads that
// user. A request carrying the configured cron key acts as admin instead.
func Authenticate(users UserLookup, cronKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.GetHeader(headerCronKey); key != "" && cronKey != "" {
			if subtle.ConstantTimeCompare([]byte(key), []byte(cronKey)) == 1 {
				helpers.SetCurrentUser(c, cronUser)
				c.Next()
				return
			}
			utils.Warn("Authenticate: invalid cron key", map[string]any{"path": c.Request.URL.Path})
			utils.AbortWithError(c, http.StatusUnauthorized, biddingerrors.ErrUnauthorized, "invalid cron key")
			return
		}

		userID := utils.NormalizeID(c.GetHeader(headerUserID))
		if userID == "" {
			utils.AbortWithError(c, http.StatusUnauthorized, biddingerrors.ErrUnauthorized, "authentication required")
			return
		}

		user, err := users.GetUser(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, biddingerrors.ErrUserNotFound) {
				utils.AbortWithError(c, http.StatusUnauthorized, fmt.Errorf("%w: %w", biddingerrors.ErrUnauthorized, err), "unknown user")
				return
			}
			utils.Error("Authenticate: user lookup failed", map[string]any{"user_id": userID, "error": err.Error()})
			utils.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
			return
		}
		if user.Role == model.RoleSuspended {
			utils.AbortWithError(c, http.StatusForbidden, biddingerrors.ErrForbidden, "account suspended")
			return
		}

		helpers.SetCurrentUser(c, user)
		c.Next()
	}
}

// RequireAdmin rejects callers without the admin role.
func RequireAdmin(c *gin.Context) {
	if !helpers.IsAdmin(c) {
		user, _ := helpers.CurrentUser(c)
		utils.Warn("RequireAdmin: forbidden", map[string]any{"user_id": user.UserID, "path": c.Request.URL.Path})
		utils.AbortWithError(c, http.StatusForbidden, biddingerrors.ErrForbidden, "admin access required")
		return
	}
	c.Next()
}
