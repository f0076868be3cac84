package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"internscout/internal/domain/outreach"
	"internscout/internal/repository"
)

// DraftRepository keeps outreach drafts per profile, at most one per
// (profile, listing) pair. Regenerating a draft for the same listing
// replaces the previous one in place.
type DraftRepository struct {
	mu        sync.RWMutex
	byProfile map[uuid.UUID][]outreach.Draft
}

func NewDraftRepository() *DraftRepository {
	return &DraftRepository{byProfile: make(map[uuid.UUID][]outreach.Draft)}
}

func (r *DraftRepository) Upsert(_ context.Context, d outreach.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	drafts := r.byProfile[d.ProfileID]
	for i, existing := range drafts {
		if existing.ListingID == d.ListingID {
			drafts[i] = d
			return nil
		}
	}
	r.byProfile[d.ProfileID] = append(drafts, d)
	return nil
}

func (r *DraftRepository) GetByID(_ context.Context, profileID, draftID uuid.UUID) (outreach.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.byProfile[profileID] {
		if d.ID == draftID {
			return d, nil
		}
	}
	return outreach.Draft{}, repository.ErrDraftNotFound
}

func (r *DraftRepository) GetByListing(_ context.Context, profileID uuid.UUID, listingID string) (outreach.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.byProfile[profileID] {
		if d.ListingID == listingID {
			return d, nil
		}
	}
	return outreach.Draft{}, repository.ErrDraftNotFound
}

func (r *DraftRepository) ListByProfile(_ context.Context, profileID uuid.UUID) ([]outreach.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	drafts := r.byProfile[profileID]
	out := make([]outreach.Draft, len(drafts))
	copy(out, drafts)
	return out, nil
}

func (r *DraftRepository) Update(_ context.Context, d outreach.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	drafts := r.byProfile[d.ProfileID]
	for i, existing := range drafts {
		if existing.ID == d.ID {
			drafts[i] = d
			return nil
		}
	}
	return repository.ErrDraftNotFound
}
