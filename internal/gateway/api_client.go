package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fine-reconciliation/internal/domain"
)

// defaultTimeout bounds every upstream call. A hung request fails instead of
// leaving the caller in a loading state indefinitely.
const defaultTimeout = 15 * time.Second

// Client implements the usecase.FineAPI interface against the library REST
// API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a client for the API at baseURL, authenticating every
// request with the given bearer token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// dataEnvelope is the `{"data": ...}` wrapper every collection endpoint uses.
type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// FetchAllFines bulk-fetches every fine record.
func (c *Client) FetchAllFines(ctx context.Context) ([]domain.RawRecord, error) {
	return c.fetchRecords(ctx, http.MethodPost, "/fines/all")
}

// FetchOverdueFines fetches only the currently overdue fines. Used as the
// fallback when the bulk fetch fails.
func (c *Client) FetchOverdueFines(ctx context.Context) ([]domain.RawRecord, error) {
	return c.fetchRecords(ctx, http.MethodPost, "/fines/overdue")
}

// FetchFinesByUser fetches one member's fines.
func (c *Client) FetchFinesByUser(ctx context.Context, userID string) ([]domain.RawRecord, error) {
	return c.fetchRecords(ctx, http.MethodGet, "/fines/by-user/"+userID)
}

// FetchBookIssue fetches a single book-issue record, used to resolve a
// missing book title.
func (c *Client) FetchBookIssue(ctx context.Context, issueID string) (domain.RawRecord, error) {
	body, err := c.do(ctx, http.MethodGet, "/book-issue/"+issueID, nil)
	if err != nil {
		return nil, err
	}

	var envelope dataEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("could not decode book-issue response: %w", err)
	}
	payload := envelope.Data
	if len(payload) == 0 {
		payload = body
	}

	var record domain.RawRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("could not decode book-issue record: %w", err)
	}
	return record, nil
}

// WaiveFine marks the fine on the given book issue as waived.
func (c *Client) WaiveFine(ctx context.Context, bookIssueID, reason, notes string) error {
	payload := map[string]string{
		"bookIssueId":  bookIssueID,
		"waiverReason": reason,
		"notes":        notes,
	}
	_, err := c.do(ctx, http.MethodPost, "/fine/waive", payload)
	return err
}

// AdjustFine changes a fine's nominal amount server-side.
func (c *Client) AdjustFine(ctx context.Context, fineID string, newAmount decimal.Decimal, reason string) error {
	payload := map[string]any{
		"newAmount": newAmount,
		"reason":    reason,
	}
	_, err := c.do(ctx, http.MethodPost, "/fine/adjust/"+fineID, payload)
	return err
}

// PayFine records a payment against a fine and returns the created payment.
func (c *Client) PayFine(ctx context.Context, fineID string, req domain.PaymentRequest) (domain.Payment, error) {
	body, err := c.do(ctx, http.MethodPost, "/payment/pay/"+fineID, req)
	if err != nil {
		return domain.Payment{}, err
	}

	var envelope struct {
		Data domain.Payment `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return domain.Payment{}, fmt.Errorf("could not decode payment response: %w", err)
	}
	return envelope.Data, nil
}

// FetchReceipt downloads the receipt blob for a payment.
func (c *Client) FetchReceipt(ctx context.Context, paymentID string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/payment/receipt/"+paymentID, nil)
}

func (c *Client) fetchRecords(ctx context.Context, method, path string) ([]domain.RawRecord, error) {
	body, err := c.do(ctx, method, path, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data []domain.RawRecord `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("could not decode fine collection from %s: %w", path, err)
	}
	return envelope.Data, nil
}

// do performs one request and returns the raw response body. Non-2xx
// responses become a domain.RemoteError carrying the server's message when
// the body has one.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("could not encode request for %s: %w", path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("could not build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.RemoteError{Op: method + " " + path, Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.RemoteError{Op: method + " " + path, StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.RemoteError{
			Op:         method + " " + path,
			StatusCode: resp.StatusCode,
			Message:    serverMessage(body),
		}
	}
	return body, nil
}

// serverMessage extracts the error message from a failure body, falling back
// to a generic string so callers always have something to show.
func serverMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return "request failed"
}
