package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"internscout/internal/domain/profile"
)

// MatchCache is satisfied by the Redis cache; a nil cache disables caching.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type matchCacheKeyInput struct {
	Skills    []string `json:"skills"`
	Roles     []string `json:"roles"`
	Locations []string `json:"locations"`
	Types     []string `json:"types"`
	Limit     int      `json:"limit"`
}

// MatchesCacheKey derives a cache key from the inputs the scoring engine
// actually reads, so editing a profile naturally misses the stale entry.
func MatchesCacheKey(p profile.Profile, limit int) string {
	in := matchCacheKeyInput{
		Skills:    foldSorted(p.Skills),
		Roles:     foldSorted(p.Preferences.Roles),
		Locations: foldSorted(p.Preferences.Locations),
		Types:     foldSorted(p.Preferences.Types),
		Limit:     limit,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "matches:" + hex.EncodeToString(sum[:])
}

func foldSorted(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
