package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fine-reconciliation/internal/domain"
)

// Lifecycle is the write path: the only component with side effects beyond
// fetching. Every operation validates locally before touching the network,
// propagates remote failures to the caller, and on success reloads the fine
// collection through the same loader the read path uses. There is no
// optimistic local patching.
type Lifecycle struct {
	api    FineAPI
	loader *Loader
}

// NewLifecycle creates the lifecycle operations over the given boundary.
func NewLifecycle(api FineAPI, loader *Loader) *Lifecycle {
	return &Lifecycle{api: api, loader: loader}
}

// Waive forgives a fine's pending amount. The reason is mandatory and
// checked before any network call. Returns the refreshed collection.
func (lc *Lifecycle) Waive(ctx context.Context, bookIssueID, reason, notes string) ([]domain.Fine, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domain.NewValidationError("reason", "waiver reason must not be empty")
	}
	if strings.TrimSpace(bookIssueID) == "" {
		return nil, domain.NewValidationError("bookIssueId", "book issue id is required")
	}
	if err := lc.api.WaiveFine(ctx, bookIssueID, reason, notes); err != nil {
		return nil, err
	}
	return lc.loader.LoadAll(ctx), nil
}

// Adjust changes a fine's nominal amount. Returns the refreshed collection.
func (lc *Lifecycle) Adjust(ctx context.Context, fineID string, newAmount decimal.Decimal, reason string) ([]domain.Fine, error) {
	if strings.TrimSpace(fineID) == "" {
		return nil, domain.NewValidationError("fineId", "fine id is required")
	}
	if newAmount.IsNegative() {
		return nil, domain.NewValidationError("newAmount", "adjusted amount must not be negative")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, domain.NewValidationError("reason", "adjustment reason must not be empty")
	}
	if err := lc.api.AdjustFine(ctx, fineID, newAmount, reason); err != nil {
		return nil, err
	}
	return lc.loader.LoadAll(ctx), nil
}

// Pay records a payment against a fine through the real payment endpoint.
// The legacy path that disguised payments as waivers is gone: MethodWaived
// is rejected here. Returns the created payment and the refreshed
// collection.
func (lc *Lifecycle) Pay(ctx context.Context, fineID string, req domain.PaymentRequest) (domain.Payment, []domain.Fine, error) {
	if strings.TrimSpace(fineID) == "" {
		return domain.Payment{}, nil, domain.NewValidationError("fineId", "fine id is required")
	}
	if !req.Amount.IsPositive() {
		return domain.Payment{}, nil, domain.NewValidationError("amount", "payment amount must be positive")
	}
	if !req.Method.Settleable() {
		return domain.Payment{}, nil, domain.NewValidationError("paymentMethod", "method must be one of Cash, Card, Online, BankTransfer")
	}
	if req.ClientReference == "" {
		req.ClientReference = uuid.NewString()
	}

	payment, err := lc.api.PayFine(ctx, fineID, req)
	if err != nil {
		return domain.Payment{}, nil, err
	}
	return payment, lc.loader.LoadAll(ctx), nil
}

// Receipt downloads the receipt blob for a payment.
func (lc *Lifecycle) Receipt(ctx context.Context, paymentID string) ([]byte, error) {
	if strings.TrimSpace(paymentID) == "" {
		return nil, domain.NewValidationError("paymentId", "payment id is required")
	}
	return lc.api.FetchReceipt(ctx, paymentID)
}
