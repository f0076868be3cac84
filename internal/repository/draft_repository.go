package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"internscout/internal/domain/outreach"
)

var ErrDraftNotFound = errors.New("draft not found")

type DraftRepository interface {
	// Upsert stores the draft, replacing any prior draft for the same
	// (profile, listing) pair.
	Upsert(ctx context.Context, d outreach.Draft) error
	GetByID(ctx context.Context, profileID, draftID uuid.UUID) (outreach.Draft, error)
	GetByListing(ctx context.Context, profileID uuid.UUID, listingID string) (outreach.Draft, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]outreach.Draft, error)
	Update(ctx context.Context, d outreach.Draft) error
}
