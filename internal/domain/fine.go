package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FineStatus is the single canonical status vocabulary. Raw API payloads use
// two overlapping vocabularies ({Active,Pending,Paid,Waived,Cancelled} and
// {pending,partial,paid}); StatusFromRaw folds both into this one.
type FineStatus string

const (
	StatusPending   FineStatus = "Pending"
	StatusPartial   FineStatus = "Partial"
	StatusPaid      FineStatus = "Paid"
	StatusWaived    FineStatus = "Waived"
	StatusCancelled FineStatus = "Cancelled"
)

// Terminal reports whether no further lifecycle transitions are allowed.
func (s FineStatus) Terminal() bool {
	return s == StatusPaid || s == StatusWaived || s == StatusCancelled
}

// StatusFromRaw maps a raw status string to the canonical enum. It is total:
// unknown or empty strings fall through to the amount-based derivation used
// for "Active", so normalization can never fail on a status value.
func StatusFromRaw(raw string, paid, fine decimal.Decimal) FineStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "paid":
		return StatusPaid
	case "waived":
		return StatusWaived
	case "cancelled", "canceled":
		return StatusCancelled
	case "partial":
		return StatusPartial
	default:
		// Active, Pending, unknown: derive from the amounts.
		if fine.IsPositive() && paid.GreaterThanOrEqual(fine) {
			return StatusPaid
		}
		if paid.IsPositive() {
			return StatusPartial
		}
		return StatusPending
	}
}

// UnknownBookTitle is the sentinel used when no title probe resolves and the
// fallback issue lookup fails. Normalization never surfaces that failure.
const UnknownBookTitle = "Unknown Book"

// RawRecord is one fine payload as received from the API, before
// normalization. Field names and nesting vary by endpoint.
type RawRecord map[string]any

// Fine is the canonical, fully populated fine record. Instances are only
// ever produced by normalizing server responses; local code never
// constructs them from scratch outside of tests.
type Fine struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	UserName    string `json:"userName"`
	UserEmail   string `json:"userEmail"`
	BookID      string `json:"bookId"`
	BookTitle   string `json:"bookTitle"`
	BookAuthor  string `json:"bookAuthor"`
	BookIssueID string `json:"bookIssueId"`

	IssueDate  time.Time  `json:"issueDate"`
	DueDate    time.Time  `json:"dueDate"`
	ReturnDate *time.Time `json:"returnDate,omitempty"` // nil: book still out

	DaysOverdue   int             `json:"daysOverdue"`
	FineAmount    decimal.Decimal `json:"fineAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`

	Status       FineStatus `json:"status"`
	WaiverReason string     `json:"waiverReason,omitempty"`
	Notes        string     `json:"notes,omitempty"`

	// Payments against this fine, in chronological (insertion) order.
	Payments []Payment `json:"payments,omitempty"`
}

// Outstanding reports whether any amount is still owed.
func (f Fine) Outstanding() bool {
	return (f.Status == StatusPending || f.Status == StatusPartial) && f.PendingAmount.IsPositive()
}

// Bucket is the display partition used by the dashboards. Unlike the source
// system the partition is mutually exclusive: a waived fine is never also
// counted as paid.
type Bucket string

const (
	BucketAll     Bucket = "all"
	BucketPending Bucket = "pending"
	BucketPaid    Bucket = "paid"
	BucketWaived  Bucket = "waived"
)

// ParseBucket maps a query-string value to a Bucket, defaulting to all.
func ParseBucket(s string) Bucket {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "partial":
		return BucketPending
	case "paid":
		return BucketPaid
	case "waived":
		return BucketWaived
	default:
		return BucketAll
	}
}
