// Package matching ranks volunteers against an opportunity's requirements.
// Scoring is a pure function of the two profiles: no I/O, no state, same
// inputs always produce the same ranked list.
package matching

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"volunteerhub-backend/internal/domain"
)

// Factor weights. Skill overlap dominates; the remaining factors share the
// rest evenly. Each factor is scored 0-10 and the weighted average is
// rescaled to 0-100.
const (
	WeightSkills       = 4.0
	WeightLocation     = 2.0
	WeightInterests    = 2.0
	WeightAvailability = 2.0
)

// Recommendation thresholds on the final 0-100 score.
const (
	ThresholdExcellent = 70.0
	ThresholdGood      = 50.0
	ThresholdFair      = 30.0
)

const (
	FactorSkills       = "skills"
	FactorLocation     = "location"
	FactorInterests    = "interests"
	FactorAvailability = "availability"
)

// Score computes the 0-100 match score and the per-factor breakdown for one
// volunteer against one opportunity.
func Score(v *domain.Volunteer, opp *domain.Opportunity) (float64, []domain.MatchFactor) {
	factors := []domain.MatchFactor{
		skillFactor(v, opp),
		locationFactor(v, opp),
		interestFactor(v, opp),
		availabilityFactor(v, opp),
	}

	totalWeight := WeightSkills + WeightLocation + WeightInterests + WeightAvailability
	weighted := factors[0].Score*WeightSkills +
		factors[1].Score*WeightLocation +
		factors[2].Score*WeightInterests +
		factors[3].Score*WeightAvailability

	score := weighted / totalWeight * 10
	return score, factors
}

// Rank scores the candidate pool and returns results at or above minScore,
// ordered by score descending. Ties break on total hours volunteered
// descending, then volunteer ID ascending so the order is stable across
// calls.
func Rank(pool []domain.Volunteer, opp *domain.Opportunity, minScore float64, limit int) ([]domain.MatchResult, domain.MatchSummary) {
	results := make([]domain.MatchResult, 0, len(pool))
	for i := range pool {
		v := &pool[i]
		score, factors := Score(v, opp)
		if score < minScore {
			continue
		}
		results = append(results, domain.MatchResult{
			Volunteer:       v,
			MatchScore:      score,
			MatchPercentage: fmt.Sprintf("%.0f%%", score),
			MatchFactors:    factors,
			Recommendation:  Recommendation(score),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].MatchScore != results[j].MatchScore {
			return results[i].MatchScore > results[j].MatchScore
		}
		if results[i].Volunteer.TotalHoursVolunteered != results[j].Volunteer.TotalHoursVolunteered {
			return results[i].Volunteer.TotalHoursVolunteered > results[j].Volunteer.TotalHoursVolunteered
		}
		return results[i].Volunteer.ID < results[j].Volunteer.ID
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	for i := range results {
		results[i].Rank = i + 1
	}

	return results, domain.MatchSummary{TotalEvaluated: len(pool), TotalFound: len(results)}
}

// Recommendation maps a final score onto a display label. Scores below the
// fair threshold get no label.
func Recommendation(score float64) string {
	switch {
	case score >= ThresholdExcellent:
		return "Excellent Match"
	case score >= ThresholdGood:
		return "Good Match"
	case score >= ThresholdFair:
		return "Fair Match"
	default:
		return ""
	}
}

// skillFactor scores the overlap between the opportunity's required skills
// and the volunteer's skills. Unspecified requirements are not penalized: an
// empty requirement list gives full credit.
func skillFactor(v *domain.Volunteer, opp *domain.Opportunity) domain.MatchFactor {
	required := normalizeSet(opp.RequiredSkills)
	if len(required) == 0 {
		return domain.MatchFactor{Factor: FactorSkills, Score: 10, Details: "no specific skills required"}
	}

	have := normalizeSet(v.Skills)
	matched := 0
	for skill := range required {
		if _, ok := have[skill]; ok {
			matched++
		}
	}

	score := float64(matched) / float64(len(required)) * 10
	return domain.MatchFactor{
		Factor:  FactorSkills,
		Score:   score,
		Details: fmt.Sprintf("%d of %d required skills", matched, len(required)),
	}
}

// locationFactor scores geographic fit. Virtual opportunities bypass
// location scoring entirely.
func locationFactor(v *domain.Volunteer, opp *domain.Opportunity) domain.MatchFactor {
	if opp.LocationType == domain.LocationTypeVirtual {
		return domain.MatchFactor{Factor: FactorLocation, Score: 10, Details: "virtual opportunity"}
	}

	sameState := strings.EqualFold(v.State, opp.State) && opp.State != ""
	sameCity := sameState && strings.EqualFold(v.City, opp.City) && opp.City != ""

	switch {
	case sameCity:
		return domain.MatchFactor{Factor: FactorLocation, Score: 10, Details: "same city"}
	case sameState:
		return domain.MatchFactor{Factor: FactorLocation, Score: 6, Details: "same state"}
	default:
		return domain.MatchFactor{Factor: FactorLocation, Score: 2, Details: "different region"}
	}
}

// interestFactor scores alignment between the volunteer's interests and the
// opportunity's category.
func interestFactor(v *domain.Volunteer, opp *domain.Opportunity) domain.MatchFactor {
	if opp.Category == "" {
		return domain.MatchFactor{Factor: FactorInterests, Score: 10, Details: "no category set"}
	}
	for _, interest := range v.Interests {
		if strings.EqualFold(strings.TrimSpace(interest), opp.Category) {
			return domain.MatchFactor{Factor: FactorInterests, Score: 10, Details: "interest matches category"}
		}
	}
	return domain.MatchFactor{Factor: FactorInterests, Score: 2, Details: "no interest overlap"}
}

// availabilityFactor does a coarse window check against the opportunity's
// start date: weekend dates want a weekend window, weekday dates a weekday
// window. A volunteer with no declared availability gets partial credit
// rather than a penalty for missing data.
func availabilityFactor(v *domain.Volunteer, opp *domain.Opportunity) domain.MatchFactor {
	if len(v.Availability) == 0 {
		return domain.MatchFactor{Factor: FactorAvailability, Score: 5, Details: "availability not declared"}
	}

	window := windowFor(opp.StartDate)
	for _, a := range v.Availability {
		if strings.EqualFold(strings.TrimSpace(a), window) {
			return domain.MatchFactor{Factor: FactorAvailability, Score: 10, Details: "declared window covers start date"}
		}
	}
	return domain.MatchFactor{Factor: FactorAvailability, Score: 3, Details: "declared windows do not cover start date"}
}

func windowFor(t time.Time) string {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return domain.AvailabilityWeekends
	default:
		return domain.AvailabilityWeekdays
	}
}

// normalizeSet lowercases and trims entries, dropping blanks. A nil or
// malformed slice simply yields an empty set.
func normalizeSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			set[item] = struct{}{}
		}
	}
	return set
}
