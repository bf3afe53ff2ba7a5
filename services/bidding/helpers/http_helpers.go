package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-marketplace/internal/biddingerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

type errorStatus struct {
	err    error
	status int
}

// Checked in order; the first match decides the status.
var errorStatuses = []errorStatus{
	{biddingerrors.ErrUnauthorized, http.StatusUnauthorized},
	{biddingerrors.ErrForbidden, http.StatusForbidden},

	{biddingerrors.ErrProductNotFound, http.StatusNotFound},
	{biddingerrors.ErrUserNotFound, http.StatusNotFound},
	{biddingerrors.ErrRequestNotFound, http.StatusNotFound},
	{biddingerrors.ErrNotificationNotFound, http.StatusNotFound},

	{biddingerrors.ErrLockHeld, http.StatusConflict},
	{biddingerrors.ErrAlreadySettled, http.StatusConflict},
	{biddingerrors.ErrDuplicateBid, http.StatusConflict},

	{biddingerrors.ErrInvalidBid, http.StatusBadRequest},
	{biddingerrors.ErrInvalidProduct, http.StatusBadRequest},
	{biddingerrors.ErrInvalidRequest, http.StatusBadRequest},
	{biddingerrors.ErrProductNotVerified, http.StatusBadRequest},
	{biddingerrors.ErrAuctionClosed, http.StatusBadRequest},
	{biddingerrors.ErrOwnProduct, http.StatusBadRequest},
	{biddingerrors.ErrCurrencyMismatch, http.StatusBadRequest},
	{biddingerrors.ErrAuctionNotStarted, http.StatusBadRequest},
	{biddingerrors.ErrAuctionEnded, http.StatusBadRequest},
	{biddingerrors.ErrBidTooLow, http.StatusBadRequest},
	{biddingerrors.ErrBelowStartingPrice, http.StatusBadRequest},
	{biddingerrors.ErrBidNotAboveOwn, http.StatusBadRequest},
	{biddingerrors.ErrBidNotAboveHighest, http.StatusBadRequest},
	{biddingerrors.ErrRequestProcessed, http.StatusBadRequest},
	{biddingerrors.ErrNoBids, http.StatusBadRequest},
	{biddingerrors.ErrUserNoBids, http.StatusOK},
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// The message is the sentinel's text, or the detailed text when one was attached.
func MapErrorToHTTP(err error) (int, string) {
	for _, es := range errorStatuses {
		if !errors.Is(err, es.err) {
			continue
		}
		var detailed *biddingerrors.Detailed
		if errors.As(err, &detailed) {
			return es.status, detailed.Message
		}
		return es.status, es.err.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}

// RespondError writes the mapped error response and logs it, at error level
// for server faults and warn level otherwise.
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	logFields := map[string]any{"handler": handlerName, "status": status, "error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", logFields)
		return
	}
	utils.Warn(handlerName+": request rejected", logFields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

const currentUserKey = "auth.user"

// SetCurrentUser stores the authenticated caller on the request context.
func SetCurrentUser(c *gin.Context, user model.User) {
	c.Set(currentUserKey, user)
}

// CurrentUser returns the caller set by the authentication middleware.
func CurrentUser(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}

// IsAdmin reports whether the caller has the admin role.
func IsAdmin(c *gin.Context) bool {
	user, ok := CurrentUser(c)
	return ok && user.Role == model.RoleAdmin
}
