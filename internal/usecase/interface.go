package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"fine-reconciliation/internal/domain"
)

// IssueLookup resolves a single book-issue record. It is the narrow
// dependency of the normalizer's title-enrichment fallback.
type IssueLookup interface {
	FetchBookIssue(ctx context.Context, issueID string) (domain.RawRecord, error)
}

// FineAPI defines the remote REST boundary the usecase layer depends on.
// The layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_api.go -source=interface.go FineAPI
type FineAPI interface {
	IssueLookup

	FetchAllFines(ctx context.Context) ([]domain.RawRecord, error)
	FetchOverdueFines(ctx context.Context) ([]domain.RawRecord, error)
	FetchFinesByUser(ctx context.Context, userID string) ([]domain.RawRecord, error)

	WaiveFine(ctx context.Context, bookIssueID, reason, notes string) error
	AdjustFine(ctx context.Context, fineID string, newAmount decimal.Decimal, reason string) error
	PayFine(ctx context.Context, fineID string, req domain.PaymentRequest) (domain.Payment, error)
	FetchReceipt(ctx context.Context, paymentID string) ([]byte, error)
}
