package usecase

import "fine-reconciliation/internal/domain"

// Classify maps a normalized fine into its display bucket. The partition is
// mutually exclusive: waiver takes precedence over paid (the normalizer has
// already folded the legacy waived-payment-method signal into the status),
// and partial payments sit in the pending bucket alongside untouched fines.
// Cancelled fines belong to no named bucket and only show under "all".
func Classify(f domain.Fine) domain.Bucket {
	switch f.Status {
	case domain.StatusWaived:
		return domain.BucketWaived
	case domain.StatusPaid:
		return domain.BucketPaid
	case domain.StatusPending, domain.StatusPartial:
		return domain.BucketPending
	default:
		return domain.BucketAll
	}
}

// MatchesBucket reports whether a fine belongs to the requested bucket.
func MatchesBucket(f domain.Fine, bucket domain.Bucket) bool {
	if bucket == domain.BucketAll {
		return true
	}
	return Classify(f) == bucket
}
