package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	account "auction-marketplace/internal/accountService"
	bidding "auction-marketplace/internal/biddingService"
	"auction-marketplace/internal/effects"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const cronKey = "integration-cron-key"

// testClock is shared by both services so tests can move past end dates.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	router *gin.Engine
	repo   *repository.MemoryRepo
	clock  *testClock
}

// SetupTestEnv wires the full router over an in-memory repository seeded
// with an admin, a seller and three funded buyers. Effects are delivered
// synchronously so notifications are visible as soon as a request returns.
func SetupTestEnv(t *testing.T, opts ...bidding.Option) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, u := range []model.User{
		{UserID: "admin", Username: "admin", Role: model.RoleAdmin},
		{UserID: "seller", Username: "seller", Email: "seller@example.com", Role: model.RoleSeller},
		{UserID: "alice", Username: "alice", Email: "alice@example.com", Role: model.RoleBuyer, Balance: decimal.NewFromInt(1000)},
		{UserID: "bob", Username: "bob", Role: model.RoleBuyer, Balance: decimal.NewFromInt(1000)},
		{UserID: "carol", Username: "carol", Role: model.RoleBuyer, Balance: decimal.NewFromInt(1000)},
		{UserID: "mallory", Username: "mallory", Role: model.RoleSuspended},
	} {
		repo.AddUser(u)
	}

	clock := &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	emitter := effects.Synchronous{Deliverer: effects.NewDispatcher(repo, effects.LogMailer{}, nil)}

	serviceOpts := append([]bidding.Option{
		bidding.WithClock(clock.Now),
		bidding.WithEmitter(emitter),
	}, opts...)
	biddingSvc := bidding.NewBiddingService(repo, serviceOpts...)
	accountSvc := account.NewAccountService(repo, account.WithClock(clock.Now), account.WithEmitter(emitter))

	router := server.SetupRouter(server.RouterConfig{
		Bidding:  biddingSvc,
		Accounts: accountSvc,
		Users:    repo,
		CronKey:  cronKey,
	})
	return &testEnv{router: router, repo: repo, clock: clock}
}

// ExecuteRequest executes an HTTP request as userID ("" for anonymous,
// "cron" for the internal trigger) and returns the recorder and parsed body.
func (e *testEnv) ExecuteRequest(t *testing.T, method, url, userID string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	switch userID {
	case "":
	case "cron":
		req.Header.Set("X-Cron-Key", cronKey)
	default:
		req.Header.Set("X-User-ID", userID)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}

// CreateVerifiedProduct lists a product as the seller and has the admin
// verify it. Bidding opens at the current clock and runs for two hours.
func (e *testEnv) CreateVerifiedProduct(t *testing.T, extra map[string]any) string {
	t.Helper()

	now := e.clock.Now()
	body := map[string]any{
		"title":          "Camera",
		"starting_price": "100",
		"currency":       "USD",
		"bid_increment":  "10",
		"start_date":     now.Format(time.RFC3339),
		"end_date":       now.Add(2 * time.Hour).Format(time.RFC3339),
	}
	for k, v := range extra {
		body[k] = v
	}

	resp, w := e.ExecuteRequest(t, "POST", "/products", "seller", body)
	require.Equal(t, 201, w.Code, w.Body.String())
	productID := data(t, resp)["product_id"].(string)

	_, w = e.ExecuteRequest(t, "PATCH", "/admin/products/"+productID+"/verify", "admin",
		map[string]any{"verified": true, "commission_rate": "10"})
	require.Equal(t, 200, w.Code, w.Body.String())
	return productID
}

func (e *testEnv) Balance(t *testing.T, userID string) decimal.Decimal {
	t.Helper()
	resp, w := e.ExecuteRequest(t, "GET", "/account/balance", userID, nil)
	require.Equal(t, 200, w.Code, w.Body.String())
	return decimal.RequireFromString(data(t, resp)["balance"].(string))
}

func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", resp)
	return d
}
