package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"auction-marketplace/internal/biddingerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/bidding/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeUsers map[string]model.User

func (f fakeUsers) GetUser(_ context.Context, userID string) (model.User, error) {
	if userID == "broken" {
		return model.User{}, errors.New("db down")
	}
	u, ok := f[userID]
	if !ok {
		return model.User{}, biddingerrors.ErrUserNotFound
	}
	return u, nil
}

var testUsers = fakeUsers{
	"alice":   {UserID: "alice", Role: model.RoleBuyer},
	"root":    {UserID: "root", Role: model.RoleAdmin},
	"mallory": {UserID: "mallory", Role: model.RoleSuspended},
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantUser   string
	}{
		{name: "known_user", headers: map[string]string{headerUserID: "alice"}, wantStatus: http.StatusOK, wantUser: "alice"},
		{name: "trimmed_header", headers: map[string]string{headerUserID: "  alice "}, wantStatus: http.StatusOK, wantUser: "alice"},
		{name: "missing_header", headers: nil, wantStatus: http.StatusUnauthorized},
		{name: "unknown_user", headers: map[string]string{headerUserID: "ghost"}, wantStatus: http.StatusUnauthorized},
		{name: "suspended_user", headers: map[string]string{headerUserID: "mallory"}, wantStatus: http.StatusForbidden},
		{name: "lookup_failure", headers: map[string]string{headerUserID: "broken"}, wantStatus: http.StatusInternalServerError},
		{name: "cron_key", headers: map[string]string{headerCronKey: "s3cret"}, wantStatus: http.StatusOK, wantUser: "system"},
		{name: "wrong_cron_key", headers: map[string]string{headerCronKey: "guess", headerUserID: "alice"}, wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.GET("/whoami", Authenticate(testUsers, "s3cret"), func(c *gin.Context) {
				user, _ := helpers.CurrentUser(c)
				c.JSON(http.StatusOK, gin.H{"user_id": user.UserID})
			})

			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.wantStatus, w.Code)
			if tc.wantUser != "" {
				require.Contains(t, w.Body.String(), `"user_id":"`+tc.wantUser+`"`)
			}
		})
	}
}

func TestAuthenticate_CronKeyDisabled(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/x", Authenticate(testUsers, ""), func(c *gin.Context) { c.Status(http.StatusOK) })

	// with no configured key the header is ignored and identity is required
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(headerCronKey, "anything")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", Authenticate(testUsers, "s3cret"), RequireAdmin, func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for user, want := range map[string]int{"alice": http.StatusForbidden, "root": http.StatusNoContent} {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set(headerUserID, user)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, want, w.Code, user)
	}
}
