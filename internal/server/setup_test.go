package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"expensetracker/internal/logger"
	"expensetracker/internal/services"
	"expensetracker/internal/testutil"
)

// testApp holds the full application stack for flow tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

// gormPinger pings the connection pool behind a gorm handle.
type gormPinger struct {
	db *gorm.DB
}

func (p gormPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	router := NewRouter(Deps{
		ExpenseService: services.NewExpenseService(db, 5*time.Second),
		DB:             gormPinger{db: db},
	})

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createExpense posts body and returns the stored expense object.
func (app *testApp) createExpense(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	rec := app.request("POST", "/api/v1/expenses", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["expense"].(map[string]interface{})
}

// listExpenses returns the expense array from GET /api/v1/expenses.
func (app *testApp) listExpenses(t *testing.T) []interface{} {
	t.Helper()
	rec := app.request("GET", "/api/v1/expenses", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d %s", rec.Code, rec.Body.String())
	}
	list, ok := parseJSON(t, rec)["expenses"].([]interface{})
	if !ok {
		t.Fatalf("expected expenses array, got %s", rec.Body.String())
	}
	return list
}
