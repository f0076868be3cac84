package usecase

import (
	"context"
	"errors"

	"internscout/internal/domain/listing"
	"internscout/internal/repository"
)

type ListingUsecase interface {
	List(ctx context.Context) ([]listing.Listing, error)
	Get(ctx context.Context, id string) (listing.Listing, error)
}

type Listings struct {
	listings repository.ListingRepository
}

func NewListingUsecase(listings repository.ListingRepository) *Listings {
	return &Listings{listings: listings}
}

func (u *Listings) List(ctx context.Context) ([]listing.Listing, error) {
	items, err := u.listings.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Listings) Get(ctx context.Context, id string) (listing.Listing, error) {
	l, err := u.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return listing.Listing{}, ErrListingNotFound
		}
		return listing.Listing{}, ErrInternal
	}
	return l, nil
}
