package dto

import "internscout/internal/domain/listing"

type MatchResponse struct {
	Internship   listing.Listing `json:"internship"`
	Score        int             `json:"score"`
	MatchReasons []string        `json:"match_reasons"`
}

type MatchListResponse struct {
	Matches      []MatchResponse `json:"matches"`
	TotalMatches int             `json:"total_matches"`
}
