package usecase

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultDailyRate is the fine accrued per overdue day when no rate is
// configured.
var DefaultDailyRate = decimal.NewFromInt(1)

// returnFineCap limits the fine assessed when a return is processed. The cap
// is a return-processing policy, not a calculator invariant: the general
// calculator below is uncapped.
var returnFineCap = decimal.NewFromInt(50)

// DaysOverdue computes whole overdue days for a loan. The reference instant
// is the return date when the book came back, otherwise now. Partial days
// count as a full day; on-time returns yield zero. All arithmetic is on UTC
// instants so the result cannot depend on client locale.
func DaysOverdue(dueDate time.Time, returnDate *time.Time, now time.Time) int {
	ref := now
	if returnDate != nil {
		ref = *returnDate
	}
	diff := ref.UTC().Sub(dueDate.UTC())
	if diff <= 0 {
		return 0
	}
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// FineForDays computes the fine for the given overdue days at the given
// daily rate. Total and pure: negative inputs clamp to zero.
func FineForDays(days int, rate decimal.Decimal) decimal.Decimal {
	if days <= 0 {
		return decimal.Zero
	}
	amount := rate.Mul(decimal.NewFromInt(int64(days)))
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// PreviewReturnFine is the return-processing call site: the fine that would
// be assessed if the book were returned at the given instant, capped at
// returnFineCap.
func PreviewReturnFine(dueDate, returnedAt time.Time, rate decimal.Decimal) decimal.Decimal {
	fine := FineForDays(DaysOverdue(dueDate, &returnedAt, returnedAt), rate)
	if fine.GreaterThan(returnFineCap) {
		return returnFineCap
	}
	return fine
}
