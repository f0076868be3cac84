package matching

import (
	"testing"

	"internscout/internal/domain/listing"
	"internscout/internal/domain/profile"
)

func demoProfile() profile.Profile {
	return profile.Profile{
		Skills: []string{"JavaScript", "React", "Python", "Node.js"},
		Preferences: profile.Preferences{
			Roles:     []string{"frontend", "fullstack"},
			Locations: []string{"remote", "bangalore"},
			Types:     []string{"summer"},
		},
	}
}

func frontendListing() listing.Listing {
	return listing.Listing{
		ID:             "int-001",
		Title:          "Frontend Developer Intern",
		Location:       "Bangalore",
		RequiredSkills: []string{"React", "JavaScript", "CSS", "HTML", "TypeScript"},
		Role:           "frontend",
		Type:           "summer",
	}
}

func TestScore_AllFactors(t *testing.T) {
	// 2/5 skills (20) + exact role (20) + location (15) + type (15) = 70
	score, reasons := Score(demoProfile(), frontendListing())
	if score != 70 {
		t.Fatalf("expected score 70, got %d", score)
	}
	expected := []string{
		"2 matching skills: JavaScript, React",
		"Matches your preferred role: frontend",
		"Location match: Bangalore",
		"summer internship matches your preference",
	}
	if len(reasons) != len(expected) {
		t.Fatalf("expected %d reasons, got %d: %v", len(expected), len(reasons), reasons)
	}
	for i, want := range expected {
		if reasons[i] != want {
			t.Fatalf("reason %d: expected %q, got %q", i, want, reasons[i])
		}
	}
}

func TestScore_PerfectMatch(t *testing.T) {
	p := demoProfile()
	p.Skills = []string{"React", "JavaScript", "CSS", "HTML", "TypeScript"}
	score, _ := Score(p, frontendListing())
	if score != 100 {
		t.Fatalf("expected score 100, got %d", score)
	}
}

func TestScore_NoOverlap(t *testing.T) {
	p := profile.Profile{
		Skills: []string{"Figma"},
		Preferences: profile.Preferences{
			Roles:     []string{"design"},
			Locations: []string{"delhi"},
			Types:     []string{"winter"},
		},
	}
	score, reasons := Score(p, frontendListing())
	if score != 0 {
		t.Fatalf("expected score 0, got %d", score)
	}
	if len(reasons) != 0 {
		t.Fatalf("expected no reasons, got %v", reasons)
	}
}

func TestScore_SkillMatchingIsCaseInsensitive(t *testing.T) {
	p := demoProfile()
	p.Skills = []string{"REACT", "javascript"}
	score, reasons := Score(p, frontendListing())
	// 2/5 skills (20) + role (20) + location (15) + type (15)
	if score != 70 {
		t.Fatalf("expected score 70, got %d", score)
	}
	if reasons[0] != "2 matching skills: REACT, javascript" {
		t.Fatalf("unexpected skill reason: %q", reasons[0])
	}
}

func TestScore_DuplicateSkillsCountOnce(t *testing.T) {
	p := demoProfile()
	p.Skills = []string{"React", "react", "REACT"}
	score, reasons := Score(p, frontendListing())
	// 1/5 skills (10) + role + location + type
	if score != 60 {
		t.Fatalf("expected score 60, got %d", score)
	}
	if reasons[0] != "1 matching skills: React" {
		t.Fatalf("unexpected skill reason: %q", reasons[0])
	}
}

func TestScore_SkillReasonTruncatesAfterThree(t *testing.T) {
	p := demoProfile()
	p.Skills = []string{"React", "JavaScript", "CSS", "HTML"}
	_, reasons := Score(p, frontendListing())
	if reasons[0] != "4 matching skills: React, JavaScript, CSS..." {
		t.Fatalf("unexpected skill reason: %q", reasons[0])
	}
}

func TestScore_FullstackPartialRoleCredit(t *testing.T) {
	p := profile.Profile{
		Skills:      []string{"Figma"},
		Preferences: profile.Preferences{Roles: []string{"backend"}},
	}
	l := listing.Listing{
		ID:             "int-004",
		Location:       "Hyderabad",
		RequiredSkills: []string{"Go"},
		Role:           "fullstack",
		Type:           "summer",
	}
	score, reasons := Score(p, l)
	if score != 10 {
		t.Fatalf("expected score 10, got %d", score)
	}
	if len(reasons) != 1 || reasons[0] != "Fullstack role includes your preferred area" {
		t.Fatalf("unexpected reasons: %v", reasons)
	}
}

func TestScore_RemotePreferred(t *testing.T) {
	p := profile.Profile{
		Preferences: profile.Preferences{Locations: []string{"Remote"}},
	}
	l := listing.Listing{Location: "Remote", RequiredSkills: []string{"Go"}}
	score, reasons := Score(p, l)
	if score != 15 {
		t.Fatalf("expected score 15, got %d", score)
	}
	if len(reasons) != 1 || reasons[0] != "Location match: Remote" {
		t.Fatalf("unexpected reasons: %v", reasons)
	}
}

func TestScore_FullstackStacksWithExactRole(t *testing.T) {
	// Preferring both "fullstack" and "frontend" earns the exact credit
	// and the partial credit on a fullstack listing.
	p := profile.Profile{
		Preferences: profile.Preferences{Roles: []string{"fullstack", "frontend"}},
	}
	l := listing.Listing{RequiredSkills: []string{"Go"}, Role: "fullstack"}
	score, reasons := Score(p, l)
	if score != 30 {
		t.Fatalf("expected score 30, got %d", score)
	}
	expected := []string{
		"Matches your preferred role: fullstack",
		"Fullstack role includes your preferred area",
	}
	if len(reasons) != len(expected) {
		t.Fatalf("expected %d reasons, got %v", len(expected), reasons)
	}
	for i, want := range expected {
		if reasons[i] != want {
			t.Fatalf("reason %d: expected %q, got %q", i, want, reasons[i])
		}
	}
}

func TestScore_RemoteHalfCreditWithoutPreference(t *testing.T) {
	p := profile.Profile{
		Preferences: profile.Preferences{Locations: []string{"mumbai"}},
	}
	l := listing.Listing{Location: "Remote", RequiredSkills: []string{"Go"}}
	score, reasons := Score(p, l)
	if score != 8 {
		t.Fatalf("expected score 8, got %d", score)
	}
	if len(reasons) != 1 || reasons[0] != "Remote option available" {
		t.Fatalf("unexpected reasons: %v", reasons)
	}
}

func TestScore_Deterministic(t *testing.T) {
	p := demoProfile()
	l := frontendListing()
	first, _ := Score(p, l)
	for i := 0; i < 10; i++ {
		got, _ := Score(p, l)
		if got != first {
			t.Fatalf("score changed between runs: %d then %d", first, got)
		}
	}
}

func TestRank_OrdersByScoreDescending(t *testing.T) {
	p := demoProfile()
	listings := []listing.Listing{
		{ID: "low", Location: "Delhi", RequiredSkills: []string{"Rust"}, Role: "backend", Type: "winter"},
		frontendListing(),
		{ID: "mid", Location: "Remote", RequiredSkills: []string{"Python", "Rust", "Kafka", "Terraform", "AWS"}, Role: "backend", Type: "summer"},
	}

	results := Rank(p, listings, 10)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("results not sorted descending at %d: %d > %d", i, results[i].Score, results[i-1].Score)
		}
	}
	if results[0].Listing.ID != "int-001" {
		t.Fatalf("expected int-001 first, got %s", results[0].Listing.ID)
	}
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	p := profile.Profile{
		Skills: []string{"Go"},
	}
	listings := []listing.Listing{
		{ID: "a", RequiredSkills: []string{"Go"}},
		{ID: "b", RequiredSkills: []string{"Go"}},
		{ID: "c", RequiredSkills: []string{"Go"}},
	}
	results := Rank(p, listings, 10)
	for i, want := range []string{"a", "b", "c"} {
		if results[i].Listing.ID != want {
			t.Fatalf("tie order broken at %d: expected %s, got %s", i, want, results[i].Listing.ID)
		}
	}
}

func TestRank_TruncatesToLimit(t *testing.T) {
	p := demoProfile()
	var listings []listing.Listing
	for i := 0; i < 25; i++ {
		listings = append(listings, frontendListing())
	}

	results := Rank(p, listings, 5)
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}

	results = Rank(p, listings, 0)
	if len(results) != DefaultLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultLimit, len(results))
	}
}

func TestScore_BoundsOverCatalogShapes(t *testing.T) {
	profiles := []profile.Profile{
		{},
		demoProfile(),
		{Skills: []string{"React", "JavaScript", "CSS", "HTML", "TypeScript"},
			Preferences: profile.Preferences{
				Roles:     []string{"frontend"},
				Locations: []string{"bangalore"},
				Types:     []string{"summer"},
			}},
	}
	listings := []listing.Listing{
		{},
		frontendListing(),
		{Location: "Remote", Role: "fullstack", Type: "summer", RequiredSkills: []string{"React"}},
	}
	for _, p := range profiles {
		for _, l := range listings {
			score, _ := Score(p, l)
			if score < 0 || score > 100 {
				t.Fatalf("score out of bounds for %v / %v: %d", p.Skills, l.ID, score)
			}
		}
	}
}
