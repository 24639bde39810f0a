package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary provides high-level statistics of one reconciliation pass.
type Summary struct {
	GeneratedAt  string `json:"generated_at"`
	Bucket       Bucket `json:"bucket"`
	TotalRecords int    `json:"total_records"`
	PendingCount int    `json:"pending_count"`
	PaidCount    int    `json:"paid_count"`
	WaivedCount  int    `json:"waived_count"`
}

// FineReport is the top-level structure handed to the dashboards and
// printed by the CLI.
type FineReport struct {
	Summary      Summary         `json:"summary"`
	TotalPending decimal.Decimal `json:"total_pending"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	TotalWaived  decimal.Decimal `json:"total_waived"`
	Fines        []Fine          `json:"fines"`
}

// NewSummary stamps a summary with the given generation time.
func NewSummary(bucket Bucket, now time.Time) Summary {
	return Summary{
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Bucket:      bucket,
	}
}
