package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"fine-reconciliation/internal/domain"
)

func pendingFine(id string, amount int64) domain.Fine {
	return domain.Fine{
		ID:            id,
		Status:        domain.StatusPending,
		FineAmount:    decimal.NewFromInt(amount),
		PendingAmount: decimal.NewFromInt(amount),
	}
}

func paidFine(id string, amount int64) domain.Fine {
	return domain.Fine{
		ID:         id,
		Status:     domain.StatusPaid,
		FineAmount: decimal.NewFromInt(amount),
		PaidAmount: decimal.NewFromInt(amount),
	}
}

func TestTotals_EmptyInput(t *testing.T) {
	assert.True(t, TotalPending(nil).IsZero())
	assert.True(t, TotalPaid(nil).IsZero())
	assert.True(t, TotalWaived(nil).IsZero())
	assert.Empty(t, FilterByBucket(nil, domain.BucketPending))
}

func TestTotalPending(t *testing.T) {
	fines := []domain.Fine{
		pendingFine("f1", 5),
		{ID: "f2", Status: domain.StatusPartial, FineAmount: decimal.NewFromInt(10), PaidAmount: decimal.NewFromInt(4), PendingAmount: decimal.NewFromInt(6)},
		paidFine("f3", 20),
		{ID: "f4", Status: domain.StatusWaived, FineAmount: decimal.NewFromInt(7)},
	}

	total := TotalPending(fines)
	assert.True(t, total.Equal(decimal.NewFromInt(11)), "got %s", total)
}

func TestTotalPaid(t *testing.T) {
	fines := []domain.Fine{
		paidFine("f1", 20),
		paidFine("f2", 5),
		{ID: "f3", Status: domain.StatusPartial, PaidAmount: decimal.NewFromInt(4), PendingAmount: decimal.NewFromInt(6)},
	}

	// Partial payments do not count toward the paid total.
	total := TotalPaid(fines)
	assert.True(t, total.Equal(decimal.NewFromInt(25)), "got %s", total)
}

func TestTotalPending_AdditiveAndOrderIndependent(t *testing.T) {
	setA := []domain.Fine{pendingFine("a1", 3), pendingFine("a2", 7)}
	setB := []domain.Fine{pendingFine("b1", 11), paidFine("b2", 2)}

	combined := append(append([]domain.Fine{}, setA...), setB...)
	reversed := append(append([]domain.Fine{}, setB...), setA...)

	sum := TotalPending(setA).Add(TotalPending(setB))
	assert.True(t, TotalPending(combined).Equal(sum))
	assert.True(t, TotalPending(reversed).Equal(sum))
}

func TestFilterByBucket_PreservesOrder(t *testing.T) {
	fines := []domain.Fine{
		pendingFine("f1", 1),
		paidFine("f2", 2),
		pendingFine("f3", 3),
		{ID: "f4", Status: domain.StatusWaived},
		pendingFine("f5", 5),
	}

	filtered := FilterByBucket(fines, domain.BucketPending)
	ids := make([]string, 0, len(filtered))
	for _, f := range filtered {
		ids = append(ids, f.ID)
	}
	assert.Equal(t, []string{"f1", "f3", "f5"}, ids)

	assert.Len(t, FilterByBucket(fines, domain.BucketAll), 5)
}

func TestBuildReport(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	fines := []domain.Fine{
		pendingFine("f1", 5),
		paidFine("f2", 10),
		{ID: "f3", Status: domain.StatusWaived, FineAmount: decimal.NewFromInt(8)},
		{ID: "f4", Status: domain.StatusCancelled},
	}

	report := BuildReport(fines, domain.BucketPending, now)

	assert.Equal(t, "2024-06-01T10:00:00Z", report.Summary.GeneratedAt)
	assert.Equal(t, domain.BucketPending, report.Summary.Bucket)
	assert.Equal(t, 4, report.Summary.TotalRecords)
	assert.Equal(t, 1, report.Summary.PendingCount)
	assert.Equal(t, 1, report.Summary.PaidCount)
	assert.Equal(t, 1, report.Summary.WaivedCount)

	assert.True(t, report.TotalPending.Equal(decimal.NewFromInt(5)))
	assert.True(t, report.TotalPaid.Equal(decimal.NewFromInt(10)))
	assert.True(t, report.TotalWaived.Equal(decimal.NewFromInt(8)))

	// Totals cover the whole collection, the record list only the bucket.
	assert.Len(t, report.Fines, 1)
	assert.Equal(t, "f1", report.Fines[0].ID)
}
