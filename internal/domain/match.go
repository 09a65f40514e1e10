package domain

// MatchFactor is one scored dimension of a volunteer/opportunity comparison.
// Score is pre-normalized to 0-10; Details explains the value for display.
type MatchFactor struct {
	Factor  string  `json:"factor"`
	Score   float64 `json:"score"`
	Details string  `json:"details"`
}

// MatchResult is one ranked candidate produced by the match scorer. Advisory
// only: nothing here writes state.
type MatchResult struct {
	Volunteer       *Volunteer    `json:"volunteer"`
	MatchScore      float64       `json:"match_score"`
	MatchPercentage string        `json:"match_percentage"`
	MatchFactors    []MatchFactor `json:"match_factors"`
	Rank            int           `json:"rank"`
	Recommendation  string        `json:"recommendation,omitempty"`
}

// MatchSummary accompanies a ranked list.
type MatchSummary struct {
	TotalEvaluated int `json:"total_evaluated"`
	TotalFound     int `json:"total_found"`
}
