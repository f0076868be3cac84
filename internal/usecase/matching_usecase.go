package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"internscout/internal/domain/matching"
	"internscout/internal/repository"
)

var ErrProfileSkillsEmpty = errors.New("profile has no skills")

type MatchingUsecase interface {
	RankMatches(ctx context.Context, userID uuid.UUID, limit int) ([]matching.MatchResult, error)
	MatchDetails(ctx context.Context, userID uuid.UUID, listingID string) (matching.MatchResult, error)
}

type Matching struct {
	profiles repository.ProfileRepository
	listings repository.ListingRepository
	cache    MatchCache
}

func NewMatchingUsecase(profiles repository.ProfileRepository, listings repository.ListingRepository, cache MatchCache) *Matching {
	return &Matching{profiles: profiles, listings: listings, cache: cache}
}

func (u *Matching) RankMatches(ctx context.Context, userID uuid.UUID, limit int) ([]matching.MatchResult, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if limit <= 0 {
		limit = matching.DefaultLimit
	}

	p, err := u.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternal
	}
	if len(p.Skills) == 0 {
		return nil, ErrProfileSkillsEmpty
	}

	key := MatchesCacheKey(p, limit)
	if u.cache != nil {
		var cached []matching.MatchResult
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	catalog, err := u.listings.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	results := matching.Rank(p, catalog, limit)

	if u.cache != nil {
		// Best effort: a failed cache write never fails the request.
		_ = u.cache.SetJSON(ctx, key, results, 0)
	}
	return results, nil
}

func (u *Matching) MatchDetails(ctx context.Context, userID uuid.UUID, listingID string) (matching.MatchResult, error) {
	if userID == uuid.Nil {
		return matching.MatchResult{}, ErrUnauthorized
	}

	p, err := u.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return matching.MatchResult{}, ErrProfileNotFound
		}
		return matching.MatchResult{}, ErrInternal
	}

	l, err := u.listings.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return matching.MatchResult{}, ErrListingNotFound
		}
		return matching.MatchResult{}, ErrInternal
	}

	score, reasons := matching.Score(p, l)
	return matching.MatchResult{Listing: l, Score: score, Reasons: reasons}, nil
}
