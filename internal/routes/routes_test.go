package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"fraudeye/internal/config"
	"fraudeye/internal/models"
	"fraudeye/internal/repositories"
	"fraudeye/internal/services/alerting"
	"fraudeye/internal/services/risk"
	"fraudeye/internal/services/simulator"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	alerts []string
}

func (r *recordingSink) Name() string { return "recording" }

func (r *recordingSink) Publish(ctx context.Context, alert *models.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, alert.ID)
	return nil
}

type testEnv struct {
	app   *fiber.App
	store *repositories.MemoryStore
	sink  *recordingSink
}

func newTestEnv(t *testing.T, rateLimit int) *testEnv {
	t.Helper()
	cfg := &config.Config{
		FailPolicy:         config.FailOpen,
		JWTSecret:          "test-secret",
		SessionTokenTTL:    time.Hour,
		RateLimitPerMinute: rateLimit,
	}
	store := repositories.NewMemoryStore()
	sink := &recordingSink{}

	app := fiber.New()
	SetupRoutes(app, Dependencies{
		Config:     cfg,
		Store:      store,
		Classifier: risk.NewHeuristicClassifier(0),
		Publisher:  alerting.NewMultiPublisher(sink),
		Generator:  simulator.New(1, nil),
	})
	return &testEnv{app: app, store: store, sink: sink}
}

func (e *testEnv) do(t *testing.T, method, path, body string, headers ...string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decode(t *testing.T, data []byte, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(data, out), string(data))
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, 0)

	resp, body := env.do(t, http.MethodGet, "/api/health", "")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
	}
	decode(t, body, &out)
	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, risk.StrategyHeuristic, out.Services["classifier"])
	assert.Equal(t, config.StoreMemory, out.Services["store"])
}

func TestFraudCheck_DoesNotRecord(t *testing.T) {
	env := newTestEnv(t, 0)

	resp, body := env.do(t, http.MethodPost, "/api/fraud-check", `{"amount":7500,"merchant":"Apple Store"}`)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var pred models.RiskPrediction
	decode(t, body, &pred)
	assert.True(t, pred.IsFraud)
	assert.Equal(t, models.RiskCritical, pred.RiskLevel)
	assert.Equal(t, 0.92, pred.Confidence)

	list, _ := env.store.List(context.Background())
	assert.Empty(t, list)
}

func TestFraudCheck_EmptyObject(t *testing.T) {
	env := newTestEnv(t, 0)

	resp, body := env.do(t, http.MethodPost, "/api/fraud-check", `{}`)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var pred models.RiskPrediction
	decode(t, body, &pred)
	assert.False(t, pred.IsFraud)
	assert.Len(t, pred.Explanation, 2)
}

func TestSandbox_InvalidJSON(t *testing.T) {
	env := newTestEnv(t, 0)

	resp, body := env.do(t, http.MethodPost, "/api/sandbox/transactions", `{"amount": 12,`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Invalid JSON format in request body"}`, string(body))
}

func TestSandbox_MistypedFieldIsNamed(t *testing.T) {
	env := newTestEnv(t, 0)

	resp, body := env.do(t, http.MethodPost, "/api/sandbox/transactions", `{"amount":"7500","merchant":"X"}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Validation failed","details":[{"field":"amount","message":"must be a number"}]}`, string(body))

	resp, body = env.do(t, http.MethodPost, "/api/fraud-check", `{"amount":"7500"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), `"field":"amount"`)
}

func TestSandbox_FlowThroughLedgerAndAlerts(t *testing.T) {
	env := newTestEnv(t, 0)

	resp, body := env.do(t, http.MethodPost, "/api/sandbox/transactions",
		`{"transaction_id":"txn_123456789","amount":7500,"merchant":"Apple Store","category":"Electronics","location":"Lagos, NG","timestamp":"2026-10-14T10:00:00Z"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var sandbox models.SandboxResponse
	decode(t, body, &sandbox)
	assert.Equal(t, "DECLINED", sandbox.Status)
	assert.Equal(t, "BLOCK_TRANSACTION", sandbox.ActionTaken)
	assert.Equal(t, "0.9200", sandbox.RiskScore)
	assert.True(t, strings.HasPrefix(sandbox.ProcessingID, "req_"))
	assert.Equal(t, "https://api.mybank.com/v1/fraud-callback", sandbox.CallbackSentTo)

	resp, body = env.do(t, http.MethodGet, "/api/transactions/txn_123456789", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var txn models.Transaction
	decode(t, body, &txn)
	assert.Equal(t, models.StatusBlocked, txn.Status)
	assert.Equal(t, 7500.0, txn.Amount)

	resp, _ = env.do(t, http.MethodGet, "/api/transactions/txn_missing", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var alerts struct {
		Alerts []models.Alert `json:"alerts"`
		Unread int            `json:"unread"`
	}
	_, body = env.do(t, http.MethodGet, "/api/alerts", "")
	decode(t, body, &alerts)
	require.Len(t, alerts.Alerts, 1)
	assert.Equal(t, "alert_txn_123456789", alerts.Alerts[0].ID)
	assert.Equal(t, "High risk transaction detected via API: Apple Store ($7500)", alerts.Alerts[0].Message)
	assert.Equal(t, 1, alerts.Unread)
	assert.Equal(t, []string{"alert_txn_123456789"}, env.sink.alerts)

	resp, body = env.do(t, http.MethodPatch, "/api/alerts/alert_txn_123456789/read", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var marked models.Alert
	decode(t, body, &marked)
	assert.True(t, marked.Read)

	_, body = env.do(t, http.MethodGet, "/api/alerts?unread=true", "")
	decode(t, body, &alerts)
	assert.Empty(t, alerts.Alerts)
	assert.Zero(t, alerts.Unread)

	resp, body = env.do(t, http.MethodPatch, "/api/alerts/alert_txn_123456789/read", `{"read":false}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, body, &marked)
	assert.False(t, marked.Read)

	resp, _ = env.do(t, http.MethodPatch, "/api/alerts/alert_nope/read", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestTransactions_FilterAndExport(t *testing.T) {
	env := newTestEnv(t, 0)
	ctx := context.Background()
	require.NoError(t, env.store.Append(ctx, models.Transaction{ID: "txn_1", Merchant: "Starbucks", Category: "Dining", Timestamp: "2026-10-13T09:00:00.000Z", Amount: 5, RiskScore: 0.02, Status: models.StatusApproved}))
	require.NoError(t, env.store.Append(ctx, models.Transaction{ID: "txn_2", Merchant: "Unknown Overseas Vendor", Category: "Electronics", Timestamp: "2026-10-14T09:00:00.000Z", Amount: 4200, RiskScore: 0.95, IsFraud: true, Status: models.StatusBlocked}))

	var list struct {
		Transactions []models.Transaction `json:"transactions"`
		Total        int                  `json:"total"`
	}
	_, body := env.do(t, http.MethodGet, "/api/transactions", "")
	decode(t, body, &list)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "txn_2", list.Transactions[0].ID)

	_, body = env.do(t, http.MethodGet, "/api/transactions?page=2&limit=1", "")
	decode(t, body, &list)
	assert.Equal(t, 2, list.Total)
	require.Len(t, list.Transactions, 1)
	assert.Equal(t, "txn_1", list.Transactions[0].ID)

	resp, body := env.do(t, http.MethodGet, "/api/transactions?page=4611686018427387905&limit=2", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, body, &list)
	assert.Equal(t, 2, list.Total)
	assert.Empty(t, list.Transactions)

	_, body = env.do(t, http.MethodGet, "/api/transactions?status=FRAUD", "")
	decode(t, body, &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "txn_2", list.Transactions[0].ID)

	_, body = env.do(t, http.MethodGet, "/api/transactions?q=STAR&status=LEGIT", "")
	decode(t, body, &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "txn_1", list.Transactions[0].ID)

	resp, body = env.do(t, http.MethodGet, "/api/transactions/export?status=FRAUD", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "transactions_")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Equal(t,
		"Transaction ID,Merchant,Category,Date,Amount,Status,Risk Score,Fraud Detected\n"+
			`txn_2,"Unknown Overseas Vendor",Electronics,2026-10-14T09:00:00.000Z,4200.00,BLOCKED,0.95,Yes`,
		string(body))
}

func TestSimulate(t *testing.T) {
	env := newTestEnv(t, 0)

	resp, body := env.do(t, http.MethodPost, "/api/transactions/simulate", `{"count":3}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var out struct {
		Count int `json:"count"`
	}
	decode(t, body, &out)
	assert.Equal(t, 3, out.Count)

	resp, _ = env.do(t, http.MethodPost, "/api/transactions/simulate", "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	list, _ := env.store.List(context.Background())
	assert.Len(t, list, 4)

	resp, _ = env.do(t, http.MethodPost, "/api/transactions/simulate", `{"count":21}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginAndSession(t *testing.T) {
	env := newTestEnv(t, 0)

	resp, body := env.do(t, http.MethodPost, "/api/login", `{"email":"admin@bank.com","password":"anything"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var session struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	decode(t, body, &session)
	assert.Equal(t, models.RoleAdmin, session.User.Role)
	require.NotEmpty(t, session.Token)

	resp, body = env.do(t, http.MethodGet, "/api/session", "", "Authorization", "Bearer "+session.Token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var restored struct {
		User models.User `json:"user"`
	}
	decode(t, body, &restored)
	assert.Equal(t, session.User, restored.User)

	resp, _ = env.do(t, http.MethodGet, "/api/session", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = env.do(t, http.MethodPost, "/api/login", `{"password":"x"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, body = env.do(t, http.MethodPost, "/api/register", `{"email":"not-an-email"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "must be a valid email address")

	_, body = env.do(t, http.MethodGet, "/api/admin/system", "", "Authorization", "Bearer "+session.Token)
	var sys struct {
		Viewer models.User `json:"viewer"`
	}
	decode(t, body, &sys)
	assert.Equal(t, "admin@bank.com", sys.Viewer.Email)

	resp, body = env.do(t, http.MethodPost, "/api/register", `{"name":"Ada","email":"ada@bank.com"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	decode(t, body, &session)
	assert.Equal(t, models.RoleUser, session.User.Role)
	assert.Equal(t, "Ada", session.User.Name)
}

func TestIntegrationConfig(t *testing.T) {
	env := newTestEnv(t, 0)

	var out struct {
		Data models.IntegrationConfig `json:"data"`
	}
	_, body := env.do(t, http.MethodGet, "/api/integrations/config", "")
	decode(t, body, &out)
	assert.Equal(t, "sk_live_...", out.Data.APIKey)

	resp, _ := env.do(t, http.MethodPut, "/api/integrations/config", `{"callback_url":"ftp://nope"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, body = env.do(t, http.MethodPut, "/api/integrations/config", `{"callback_url":"https://hooks.example.com/fraud"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, body, &out)
	assert.Equal(t, "https://hooks.example.com/fraud", out.Data.CallbackURL)

	_, body = env.do(t, http.MethodPost, "/api/sandbox/transactions", `{"amount":10}`)
	var sandbox models.SandboxResponse
	decode(t, body, &sandbox)
	assert.Equal(t, "APPROVED", sandbox.Status)
	assert.Equal(t, "https://hooks.example.com/fraud", sandbox.CallbackSentTo)
}

func TestDashboardAndAdmin(t *testing.T) {
	env := newTestEnv(t, 0)
	env.do(t, http.MethodPost, "/api/sandbox/transactions", `{"amount":6000}`)
	env.do(t, http.MethodPost, "/api/sandbox/transactions", `{"amount":40}`)

	resp, body := env.do(t, http.MethodGet, "/api/dashboard/stats", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var stats struct {
		Data models.DashboardStats `json:"data"`
	}
	decode(t, body, &stats)
	assert.Equal(t, 2, stats.Data.TotalTransactions)
	assert.Equal(t, 1, stats.Data.FraudCount)
	assert.Equal(t, 1, stats.Data.UnreadAlerts)
	assert.InDelta(t, 3020, stats.Data.AverageTransactionAmount, 1e-9)
	assert.Len(t, stats.Data.Daily, 7)

	resp, body = env.do(t, http.MethodGet, "/api/admin/system", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var sys struct {
		System struct {
			Classifier string   `json:"classifier"`
			FailPolicy string   `json:"fail_policy"`
			AlertSinks []string `json:"alert_sinks"`
		} `json:"system"`
	}
	decode(t, body, &sys)
	assert.Equal(t, risk.StrategyHeuristic, sys.System.Classifier)
	assert.Equal(t, config.FailOpen, sys.System.FailPolicy)
	assert.Equal(t, []string{"recording"}, sys.System.AlertSinks)
}

func TestClassificationRateLimit(t *testing.T) {
	env := newTestEnv(t, 2)

	for i := 0; i < 2; i++ {
		resp, _ := env.do(t, http.MethodPost, "/api/fraud-check", `{"amount":1}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	resp, _ := env.do(t, http.MethodPost, "/api/fraud-check", `{"amount":1}`)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	// Other endpoints are not limited.
	resp, _ = env.do(t, http.MethodGet, "/api/health", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
