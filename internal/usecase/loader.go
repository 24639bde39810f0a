package usecase

import (
	"context"
	"log"

	"fine-reconciliation/internal/domain"
)

// Loader is the read path: fetch raw fines and normalize them. Reads fail
// soft — on any failure the caller gets an empty, renderable collection and
// the error goes to the log, never to the dashboard.
type Loader struct {
	api  FineAPI
	norm *Normalizer
}

// NewLoader creates a loader over the given API boundary.
func NewLoader(api FineAPI, norm *Normalizer) *Loader {
	return &Loader{api: api, norm: norm}
}

// LoadAll fetches and normalizes the full fine collection. When the bulk
// endpoint fails it falls back to the overdue endpoint before giving up.
func (l *Loader) LoadAll(ctx context.Context) []domain.Fine {
	raws, err := l.api.FetchAllFines(ctx)
	if err != nil {
		log.Printf("bulk fine fetch failed, falling back to overdue fetch: %v", err)
		raws, err = l.api.FetchOverdueFines(ctx)
		if err != nil {
			log.Printf("overdue fine fetch failed: %v", err)
			return []domain.Fine{}
		}
	}
	return l.norm.NormalizeAll(ctx, raws)
}

// LoadForUser fetches and normalizes one member's fines with the same
// fail-soft contract.
func (l *Loader) LoadForUser(ctx context.Context, userID string) []domain.Fine {
	raws, err := l.api.FetchFinesByUser(ctx, userID)
	if err != nil {
		log.Printf("fine fetch for user %s failed: %v", userID, err)
		return []domain.Fine{}
	}
	return l.norm.NormalizeAll(ctx, raws)
}
