package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"Gin_postgres_library_management/app"
	"Gin_postgres_library_management/db"
	"Gin_postgres_library_management/models"
	"Gin_postgres_library_management/routes"
)

// End-to-end flow over the real router and a real Postgres; gated on
// TEST_DATABASE_URL like the engine tests.

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping API tests")
	}
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	wipe := func() {
		conn.Exec("DELETE FROM " + models.TransactionTable)
		conn.Exec("DELETE FROM " + models.BookTable)
		conn.Exec("DELETE FROM " + models.MemberTable)
	}
	wipe()
	t.Cleanup(wipe)

	log := logrus.New()
	log.SetOutput(io.Discard)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	a := &app.App{
		Router: r,
		DB:     conn,
		Log:    log,
		Config: app.Config{FrappeCacheTTL: time.Minute},
	}
	routes.RegisterRoutes(r, a)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestIssueReturnFlow(t *testing.T) {
	r := setupRouter(t)

	// Create a book and a member.
	w, body := doJSON(t, r, http.MethodPost, "/api/books", map[string]any{
		"title": "Dune", "author": "Frank Herbert", "isbn": "9780441013593", "stock": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	bookID := uint(body["book"].(map[string]any)["id"].(float64))

	w, body = doJSON(t, r, http.MethodPost, "/api/members", map[string]any{
		"name": "Paul", "email": "paul@arrakis.example",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	memberID := uint(body["member"].(map[string]any)["id"].(float64))

	// Issue the only copy.
	w, body = doJSON(t, r, http.MethodPost, "/api/transactions/issue", map[string]any{
		"book_id": bookID, "member_id": memberID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	txnID := uint(body["transaction"].(map[string]any)["id"].(float64))

	// A second issue fails: no stock left.
	w, _ = doJSON(t, r, http.MethodPost, "/api/transactions/issue", map[string]any{
		"book_id": bookID, "member_id": memberID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The book cannot be deleted while borrowed.
	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/books/%d", bookID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// It shows up in the active listing with the join fields.
	req := httptest.NewRequest(http.MethodGet, "/api/transactions/active", nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	require.Equal(t, http.StatusOK, w2.Code)
	var active []map[string]any
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &active))
	require.Len(t, active, 1)
	assert.Equal(t, "Dune", active[0]["book"].(map[string]any)["title"])
	assert.Equal(t, "Paul", active[0]["member"].(map[string]any)["name"])

	// Same-day return is free.
	w, body = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/transactions/return/%d", txnID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0.0, body["rent_fee"])
	assert.Equal(t, 0.0, body["total_debt"])

	// Returning twice is rejected.
	w, _ = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/transactions/return/%d", txnID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Now the book can go.
	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/books/%d", bookID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/books/%d", bookID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidationFailures(t *testing.T) {
	r := setupRouter(t)

	// Malformed ISBN.
	w, _ := doJSON(t, r, http.MethodPost, "/api/books", map[string]any{
		"title": "Bad", "author": "Author", "isbn": "123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing required fields.
	w, _ = doJSON(t, r, http.MethodPost, "/api/members", map[string]any{"name": "No Email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Duplicate email is a 400, not a 500.
	w, _ = doJSON(t, r, http.MethodPost, "/api/members", map[string]any{
		"name": "One", "email": "dup@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = doJSON(t, r, http.MethodPost, "/api/members", map[string]any{
		"name": "Two", "email": "dup@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Issuing against nothing is a 404.
	w, _ = doJSON(t, r, http.MethodPost, "/api/transactions/issue", map[string]any{
		"book_id": 424242, "member_id": 424242,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBodyImportEndpoint(t *testing.T) {
	r := setupRouter(t)

	records := []map[string]any{
		{"title": "Imported One", "authors": "A. Author", "isbn": "9780000000111", "publisher": "Pub"},
		{"title": "Imported Two", "authors": "B. Author", "isbn": "9780000000222", "publisher": "Pub"},
	}
	w, body := doJSON(t, r, http.MethodPost, "/api/books/import", records)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 2.0, body["imported"])
	assert.Equal(t, 0.0, body["skipped"])

	// Re-importing the same records skips them all.
	w, body = doJSON(t, r, http.MethodPost, "/api/books/import", records)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0.0, body["imported"])
	assert.Equal(t, 2.0, body["skipped"])
}
