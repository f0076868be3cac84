package memory

import (
	"context"
	"sync"

	"internscout/internal/domain/listing"
	"internscout/internal/repository"
)

// ListingRepository serves the static internship catalog. Seeded once at
// bootstrap; reads return copies so the catalog stays immutable to callers.
type ListingRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]listing.Listing
}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{byID: make(map[string]listing.Listing)}
}

func (r *ListingRepository) Seed(items []listing.Listing) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range items {
		if l.ID == "" {
			continue
		}
		if _, ok := r.byID[l.ID]; !ok {
			r.order = append(r.order, l.ID)
		}
		r.byID[l.ID] = cloneListing(l)
	}
}

func (r *ListingRepository) List(_ context.Context) ([]listing.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]listing.Listing, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneListing(r.byID[id]))
	}
	return out, nil
}

func (r *ListingRepository) GetByID(_ context.Context, id string) (listing.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	if !ok {
		return listing.Listing{}, repository.ErrListingNotFound
	}
	return cloneListing(l), nil
}

func cloneListing(l listing.Listing) listing.Listing {
	out := l
	out.RequiredSkills = append([]string(nil), l.RequiredSkills...)
	return out
}
