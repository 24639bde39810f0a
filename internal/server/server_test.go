package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fine-reconciliation/internal/domain"
	"fine-reconciliation/internal/gateway"
	"fine-reconciliation/internal/session"
	"fine-reconciliation/internal/usecase"
)

const testJWTSecret = "test-secret"

// fakeUpstream imitates the library REST API the gateway talks to.
func fakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/fines/all", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"id":"f1","userId":"u1","bookTitle":"Dune","dueDate":"2024-05-01T00:00:00Z","fineAmount":5,"status":"Pending"},
			{"id":"f2","userId":"u2","bookTitle":"Emma","dueDate":"2024-05-02T00:00:00Z","fineAmount":3,"paidAmount":3,"status":"Paid"}
		]}`))
	})
	mux.HandleFunc("/fines/by-user/u1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"f1","userId":"u1","bookTitle":"Dune","dueDate":"2024-05-01T00:00:00Z","fineAmount":5,"status":"Pending"}]}`))
	})
	mux.HandleFunc("/fine/waive", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/payment/pay/f1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"p1","fineId":"f1","amount":"5","paymentMethod":"Cash","status":"Completed"}}`))
	})
	mux.HandleFunc("/payment/receipt/p1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("%PDF-1.4"))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	upstream := fakeUpstream(t)

	client := gateway.NewClient(upstream.URL, "")
	normalizer := usecase.NewNormalizer(client, decimal.NewFromInt(1))
	loader := usecase.NewLoader(client, normalizer)
	lifecycle := usecase.NewLifecycle(client, loader)

	server := httptest.NewServer(New(loader, lifecycle, testJWTSecret).Handler())
	t.Cleanup(server.Close)
	return server
}

func tokenFor(t *testing.T, userID, role string) string {
	t.Helper()
	token, err := session.Generate(testJWTSecret, userID, "Test User", "test@example.com", role, time.Hour)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, method, url, token string, body string) *http.Response {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestReportEndpoint(t *testing.T) {
	server := setupTestServer(t)

	t.Run("requires a token", func(t *testing.T) {
		resp := doRequest(t, http.MethodGet, server.URL+"/api/fines/report", "", "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("members may not read the full report", func(t *testing.T) {
		resp := doRequest(t, http.MethodGet, server.URL+"/api/fines/report", tokenFor(t, "u1", session.RoleMember), "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("librarian gets the reconciled report", func(t *testing.T) {
		resp := doRequest(t, http.MethodGet, server.URL+"/api/fines/report?bucket=pending", tokenFor(t, "staff1", session.RoleLibrarian), "")
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var report domain.FineReport
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.Equal(t, 2, report.Summary.TotalRecords)
		assert.Equal(t, 1, report.Summary.PendingCount)
		assert.Equal(t, 1, report.Summary.PaidCount)
		assert.Len(t, report.Fines, 1)
		assert.Equal(t, "f1", report.Fines[0].ID)
	})
}

func TestMyFinesEndpoint(t *testing.T) {
	server := setupTestServer(t)

	resp := doRequest(t, http.MethodGet, server.URL+"/api/fines/me", tokenFor(t, "u1", session.RoleMember), "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Fines []domain.Fine `json:"fines"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Len(t, payload.Fines, 1)
	assert.Equal(t, "u1", payload.Fines[0].UserID)
}

func TestWaiveEndpoint(t *testing.T) {
	server := setupTestServer(t)

	t.Run("librarian may not waive", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, server.URL+"/api/fines/f1/waive",
			tokenFor(t, "staff1", session.RoleLibrarian),
			`{"bookIssueId":"issue-1","reason":"book lost"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("empty reason is a validation failure", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, server.URL+"/api/fines/f1/waive",
			tokenFor(t, "admin1", session.RoleAdmin),
			`{"bookIssueId":"issue-1","reason":""}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("admin waives and receives the refreshed collection", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, server.URL+"/api/fines/f1/waive",
			tokenFor(t, "admin1", session.RoleAdmin),
			`{"bookIssueId":"issue-1","reason":"book lost"}`)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var payload struct {
			Fines []domain.Fine `json:"fines"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Len(t, payload.Fines, 2)
	})
}

func TestPayEndpoint(t *testing.T) {
	server := setupTestServer(t)

	resp := doRequest(t, http.MethodPost, server.URL+"/api/fines/f1/pay",
		tokenFor(t, "staff1", session.RoleLibrarian),
		`{"amount":"5","paymentMethod":"Cash"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var payload struct {
		Payment domain.Payment `json:"payment"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "p1", payload.Payment.ID)
}

func TestReceiptEndpoint(t *testing.T) {
	server := setupTestServer(t)

	resp := doRequest(t, http.MethodGet, server.URL+"/api/payments/p1/receipt",
		tokenFor(t, "staff1", session.RoleLibrarian), "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}
