package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"internscout/internal/domain/matching"
	"internscout/internal/repository/memory"
	"internscout/internal/seeder"
)

type recordingCache struct {
	store map[string][]byte
	gets  int
	sets  int
	hits  int
}

func newRecordingCache() *recordingCache {
	return &recordingCache{store: map[string][]byte{}}
}

func (c *recordingCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.gets++
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(b, out)
}

func (c *recordingCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.sets++
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func seedMatchingFixtures(t *testing.T) (*memory.ProfileRepository, *memory.ListingRepository, uuid.UUID) {
	t.Helper()

	profiles := memory.NewProfileRepository()
	listings := memory.NewListingRepository()
	seeder.SeedListings(listings)
	if err := seeder.SeedDemoProfile(context.Background(), profiles); err != nil {
		t.Fatalf("seed demo profile: %v", err)
	}

	p, err := profiles.GetByEmail(context.Background(), "demo@student.edu")
	if err != nil {
		t.Fatalf("demo profile: %v", err)
	}
	return profiles, listings, p.ID
}

func TestMatching_RankMatches(t *testing.T) {
	profiles, listings, userID := seedMatchingFixtures(t)
	uc := NewMatchingUsecase(profiles, listings, nil)

	results, err := uc.RankMatches(context.Background(), userID, 0)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(results) != matching.DefaultLimit {
		t.Fatalf("expected %d results, got %d", matching.DefaultLimit, len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("results not sorted at %d", i)
		}
	}
	// The demo profile's best catalog match is the fullstack listing: 3/5
	// skills (30) + exact role (20) + partial role (10) + type (15).
	if results[0].Listing.ID != "int-004" || results[0].Score != 75 {
		t.Fatalf("expected int-004 at 75, got %s at %d", results[0].Listing.ID, results[0].Score)
	}
}

func TestMatching_RankMatchesEmptySkills(t *testing.T) {
	profiles, listings, userID := seedMatchingFixtures(t)
	p, _ := profiles.GetByID(context.Background(), userID)
	p.Skills = nil
	if _, err := profiles.Update(context.Background(), p); err != nil {
		t.Fatalf("update: %v", err)
	}

	uc := NewMatchingUsecase(profiles, listings, nil)
	_, err := uc.RankMatches(context.Background(), userID, 0)
	if !errors.Is(err, ErrProfileSkillsEmpty) {
		t.Fatalf("expected ErrProfileSkillsEmpty, got %v", err)
	}
}

func TestMatching_RankMatchesUnknownProfile(t *testing.T) {
	profiles, listings, _ := seedMatchingFixtures(t)
	uc := NewMatchingUsecase(profiles, listings, nil)
	_, err := uc.RankMatches(context.Background(), uuid.New(), 0)
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestMatching_CacheRoundTrip(t *testing.T) {
	profiles, listings, userID := seedMatchingFixtures(t)
	cache := newRecordingCache()
	uc := NewMatchingUsecase(profiles, listings, cache)

	first, err := uc.RankMatches(context.Background(), userID, 5)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if cache.sets != 1 || cache.hits != 0 {
		t.Fatalf("expected one miss then set, got gets=%d hits=%d sets=%d", cache.gets, cache.hits, cache.sets)
	}

	second, err := uc.RankMatches(context.Background(), userID, 5)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if cache.hits != 1 || cache.sets != 1 {
		t.Fatalf("expected cache hit on repeat, got hits=%d sets=%d", cache.hits, cache.sets)
	}
	if len(second) != len(first) {
		t.Fatalf("cached results differ: %d vs %d", len(second), len(first))
	}
	for i := range first {
		if second[i].Listing.ID != first[i].Listing.ID || second[i].Score != first[i].Score {
			t.Fatalf("cached result %d differs", i)
		}
	}
}

func TestMatching_CacheKeyChangesWithProfile(t *testing.T) {
	profiles, _, userID := seedMatchingFixtures(t)
	p, _ := profiles.GetByID(context.Background(), userID)

	before := MatchesCacheKey(p, 10)
	p.Skills = append(p.Skills, "Go")
	after := MatchesCacheKey(p, 10)
	if before == after {
		t.Fatalf("expected key to change when skills change")
	}
	if MatchesCacheKey(p, 10) != after {
		t.Fatalf("expected key to be deterministic")
	}
	if MatchesCacheKey(p, 5) == after {
		t.Fatalf("expected key to change with limit")
	}
}

func TestMatching_MatchDetails(t *testing.T) {
	profiles, listings, userID := seedMatchingFixtures(t)
	uc := NewMatchingUsecase(profiles, listings, nil)

	detail, err := uc.MatchDetails(context.Background(), userID, "int-001")
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if detail.Score != 70 {
		t.Fatalf("expected score 70, got %d", detail.Score)
	}

	_, err = uc.MatchDetails(context.Background(), userID, "int-999")
	if !errors.Is(err, ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
}
