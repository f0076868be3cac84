package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"internscout/internal/domain/listing"
	"internscout/internal/domain/profile"
)

const (
	weightSkills   = 50
	weightRole     = 20
	weightLocation = 15
	weightType     = 15

	partialCredit = 0.5

	roleFullstack  = "fullstack"
	locationRemote = "remote"

	DefaultLimit = 10
)

type MatchResult struct {
	Listing listing.Listing `json:"internship"`
	Score   int             `json:"score"`
	Reasons []string        `json:"match_reasons"`
}

// A rule scores one factor of a (profile, listing) pair in isolation.
// Rules never see each other's output; Score sums their contributions.
type rule func(p profile.Profile, l listing.Listing) (int, string)

var rules = []rule{
	skillOverlapRule,
	roleExactRule,
	rolePartialRule,
	locationRule,
	typeRule,
}

// Score computes a 0-100 match score and the reasons behind it. Pure and
// deterministic: the same inputs always produce the same result.
func Score(p profile.Profile, l listing.Listing) (int, []string) {
	score := 0
	reasons := make([]string, 0, len(rules))

	for _, r := range rules {
		pts, reason := r(p, l)
		score += pts
		if reason != "" {
			reasons = append(reasons, reason)
		}
	}

	// The partial role credit stacks with an exact fullstack match, so the
	// raw sum can exceed 100.
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score, reasons
}

// Rank scores every listing for the profile and returns the best matches
// first. Ties keep their input order. limit <= 0 falls back to DefaultLimit.
func Rank(p profile.Profile, listings []listing.Listing, limit int) []MatchResult {
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := make([]MatchResult, 0, len(listings))
	for _, l := range listings {
		score, reasons := Score(p, l)
		results = append(results, MatchResult{Listing: l, Score: score, Reasons: reasons})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func skillOverlapRule(p profile.Profile, l listing.Listing) (int, string) {
	required := profile.FoldSet(l.RequiredSkills)
	if len(required) == 0 {
		return 0, ""
	}

	// Walk the profile's skills in their stored order so the reason shows
	// the student's own casing and ordering.
	seen := make(map[string]struct{}, len(p.Skills))
	matched := make([]string, 0, len(required))
	for _, s := range p.Skills {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if _, ok := required[key]; ok {
			matched = append(matched, strings.TrimSpace(s))
		}
	}

	if len(matched) == 0 {
		return 0, ""
	}

	ratio := float64(len(matched)) / float64(len(required))
	pts := int(math.Round(ratio * weightSkills))

	display := matched
	ellipsis := ""
	if len(display) > 3 {
		display = display[:3]
		ellipsis = "..."
	}
	reason := fmt.Sprintf("%d matching skills: %s%s", len(matched), strings.Join(display, ", "), ellipsis)
	return pts, reason
}

func roleExactRule(p profile.Profile, l listing.Listing) (int, string) {
	roles := profile.FoldSet(p.Preferences.Roles)
	if _, ok := roles[strings.ToLower(l.Role)]; !ok {
		return 0, ""
	}
	return weightRole, fmt.Sprintf("Matches your preferred role: %s", l.Role)
}

// rolePartialRule gives half credit when a fullstack listing covers a
// preferred frontend or backend role. It fires independently of the exact
// rule, so preferring both "fullstack" and one of its halves credits 30
// on a fullstack listing.
func rolePartialRule(p profile.Profile, l listing.Listing) (int, string) {
	if strings.ToLower(l.Role) != roleFullstack {
		return 0, ""
	}
	roles := profile.FoldSet(p.Preferences.Roles)
	_, frontend := roles["frontend"]
	_, backend := roles["backend"]
	if !frontend && !backend {
		return 0, ""
	}
	return int(math.Round(weightRole * partialCredit)), "Fullstack role includes your preferred area"
}

func locationRule(p profile.Profile, l listing.Listing) (int, string) {
	locations := profile.FoldSet(p.Preferences.Locations)
	loc := strings.ToLower(strings.TrimSpace(l.Location))

	if _, ok := locations[loc]; ok {
		return weightLocation, fmt.Sprintf("Location match: %s", l.Location)
	}

	// Remote listings still get half credit when the student never asked
	// for remote work.
	if loc == locationRemote {
		return int(math.Round(weightLocation * partialCredit)), "Remote option available"
	}
	return 0, ""
}

func typeRule(p profile.Profile, l listing.Listing) (int, string) {
	types := profile.FoldSet(p.Preferences.Types)
	if _, ok := types[strings.ToLower(l.Type)]; !ok {
		return 0, ""
	}
	return weightType, fmt.Sprintf("%s internship matches your preference", l.Type)
}
