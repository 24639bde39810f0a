package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"fine-reconciliation/internal/domain"
)

// TotalPending sums the outstanding amount across fines that still owe
// money (pending or partially paid).
func TotalPending(fines []domain.Fine) decimal.Decimal {
	total := decimal.Zero
	for _, f := range fines {
		if f.Status == domain.StatusPending || f.Status == domain.StatusPartial {
			total = total.Add(f.PendingAmount)
		}
	}
	return total
}

// TotalPaid sums the settled amount across fully paid fines.
func TotalPaid(fines []domain.Fine) decimal.Decimal {
	total := decimal.Zero
	for _, f := range fines {
		if f.Status == domain.StatusPaid {
			total = total.Add(f.PaidAmount)
		}
	}
	return total
}

// TotalWaived sums the forgiven amount across waived fines.
func TotalWaived(fines []domain.Fine) decimal.Decimal {
	total := decimal.Zero
	for _, f := range fines {
		if f.Status == domain.StatusWaived {
			total = total.Add(f.FineAmount)
		}
	}
	return total
}

// FilterByBucket returns the order-preserving subsequence of fines matching
// the requested bucket.
func FilterByBucket(fines []domain.Fine, bucket domain.Bucket) []domain.Fine {
	filtered := make([]domain.Fine, 0, len(fines))
	for _, f := range fines {
		if MatchesBucket(f, bucket) {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// BuildReport assembles the full report for a collection of normalized
// fines. Totals are computed over the whole collection; the record list is
// filtered to the requested bucket.
func BuildReport(fines []domain.Fine, bucket domain.Bucket, now time.Time) domain.FineReport {
	report := domain.FineReport{
		Summary:      domain.NewSummary(bucket, now),
		TotalPending: TotalPending(fines),
		TotalPaid:    TotalPaid(fines),
		TotalWaived:  TotalWaived(fines),
		Fines:        FilterByBucket(fines, bucket),
	}

	report.Summary.TotalRecords = len(fines)
	for _, f := range fines {
		switch Classify(f) {
		case domain.BucketPending:
			report.Summary.PendingCount++
		case domain.BucketPaid:
			report.Summary.PaidCount++
		case domain.BucketWaived:
			report.Summary.WaivedCount++
		}
	}
	return report
}
