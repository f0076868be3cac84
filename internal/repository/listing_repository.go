package repository

import (
	"context"
	"errors"

	"internscout/internal/domain/listing"
)

var ErrListingNotFound = errors.New("listing not found")

type ListingRepository interface {
	List(ctx context.Context) ([]listing.Listing, error)
	GetByID(ctx context.Context, id string) (listing.Listing, error)
}
