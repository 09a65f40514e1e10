package matching_test

import (
	"testing"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/matching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mondayStart falls on a weekday so the availability window is WEEKDAYS.
var mondayStart = time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)

func tutoringOpportunity() *domain.Opportunity {
	return &domain.Opportunity{
		ID:             100,
		Title:          "Community Tutoring",
		Category:       "Education",
		RequiredSkills: []string{"Teaching", "Spanish"},
		LocationType:   domain.LocationTypeInPerson,
		City:           "Austin",
		State:          "TX",
		StartDate:      mondayStart,
		EndDate:        mondayStart.Add(8 * time.Hour),
	}
}

func TestScore(t *testing.T) {
	t.Run("PerfectMatchScoresHundred", func(t *testing.T) {
		v := &domain.Volunteer{
			ID:           1,
			Skills:       []string{"teaching", "spanish"},
			Interests:    []string{"education"},
			Availability: []string{domain.AvailabilityWeekdays},
			City:         "austin",
			State:        "tx",
		}
		score, factors := matching.Score(v, tutoringOpportunity())
		assert.Equal(t, 100.0, score)
		require.Len(t, factors, 4)
		for _, f := range factors {
			assert.Equal(t, 10.0, f.Score, "factor %s", f.Factor)
		}
	})

	t.Run("PartialSkillOverlapScalesLinearly", func(t *testing.T) {
		full := &domain.Volunteer{Skills: []string{"teaching", "spanish"}}
		half := &domain.Volunteer{Skills: []string{"teaching"}}
		none := &domain.Volunteer{Skills: []string{"plumbing"}}
		opp := tutoringOpportunity()

		fullScore, _ := matching.Score(full, opp)
		halfScore, _ := matching.Score(half, opp)
		noneScore, _ := matching.Score(none, opp)

		assert.Greater(t, fullScore, halfScore)
		assert.Greater(t, halfScore, noneScore)
		// Skills carry weight 4 of 10, so half the skills costs 20 points.
		assert.InDelta(t, 20.0, fullScore-noneScore, 0.001)
		assert.InDelta(t, 10.0, fullScore-halfScore, 0.001)
	})

	t.Run("NoRequiredSkillsGivesFullCredit", func(t *testing.T) {
		opp := tutoringOpportunity()
		opp.RequiredSkills = nil
		v := &domain.Volunteer{Skills: nil}

		_, factors := matching.Score(v, opp)
		assert.Equal(t, 10.0, factors[0].Score)
	})

	t.Run("VirtualOpportunityBypassesLocation", func(t *testing.T) {
		opp := tutoringOpportunity()
		opp.LocationType = domain.LocationTypeVirtual
		v := &domain.Volunteer{City: "Portland", State: "OR"}

		_, factors := matching.Score(v, opp)
		assert.Equal(t, 10.0, factors[1].Score)
	})

	t.Run("LocationTiers", func(t *testing.T) {
		opp := tutoringOpportunity()
		cases := []struct {
			city, state string
			want        float64
		}{
			{"Austin", "TX", 10},
			{"Dallas", "TX", 6},
			{"Portland", "OR", 2},
		}
		for _, tc := range cases {
			v := &domain.Volunteer{City: tc.city, State: tc.state}
			_, factors := matching.Score(v, opp)
			assert.Equal(t, tc.want, factors[1].Score, "%s, %s", tc.city, tc.state)
		}
	})

	t.Run("UndeclaredAvailabilityGetsPartialCredit", func(t *testing.T) {
		opp := tutoringOpportunity()
		_, declared := matching.Score(&domain.Volunteer{Availability: []string{domain.AvailabilityWeekends}}, opp)
		_, undeclared := matching.Score(&domain.Volunteer{}, opp)

		assert.Equal(t, 3.0, declared[3].Score)
		assert.Equal(t, 5.0, undeclared[3].Score)
	})

	t.Run("SkillMatchingIgnoresCaseAndWhitespace", func(t *testing.T) {
		v := &domain.Volunteer{Skills: []string{"  TEACHING ", "Spanish"}}
		_, factors := matching.Score(v, tutoringOpportunity())
		assert.Equal(t, 10.0, factors[0].Score)
	})
}

func TestRecommendation(t *testing.T) {
	assert.Equal(t, "Excellent Match", matching.Recommendation(70))
	assert.Equal(t, "Good Match", matching.Recommendation(69.9))
	assert.Equal(t, "Good Match", matching.Recommendation(50))
	assert.Equal(t, "Fair Match", matching.Recommendation(49))
	assert.Equal(t, "Fair Match", matching.Recommendation(30))
	assert.Equal(t, "", matching.Recommendation(29.9))
}

func TestRank(t *testing.T) {
	// A virtual no-requirements opportunity isolates availability as the only
	// differentiating factor.
	openOpp := func() *domain.Opportunity {
		return &domain.Opportunity{
			ID:           200,
			LocationType: domain.LocationTypeVirtual,
			StartDate:    mondayStart,
		}
	}

	t.Run("OrdersByScoreThenHoursThenID", func(t *testing.T) {
		pool := []domain.Volunteer{
			{ID: 1},
			{ID: 2, Availability: []string{domain.AvailabilityWeekdays}},
			{ID: 3, Availability: []string{domain.AvailabilityWeekdays}, TotalHoursVolunteered: 40},
			{ID: 4, Availability: []string{domain.AvailabilityWeekdays}, TotalHoursVolunteered: 40},
		}

		results, summary := matching.Rank(pool, openOpp(), 0, 0)
		require.Len(t, results, 4)
		assert.Equal(t, 4, summary.TotalEvaluated)
		assert.Equal(t, 4, summary.TotalFound)

		ids := []int32{results[0].Volunteer.ID, results[1].Volunteer.ID, results[2].Volunteer.ID, results[3].Volunteer.ID}
		assert.Equal(t, []int32{3, 4, 2, 1}, ids)
		assert.Equal(t, []int{1, 2, 3, 4}, []int{results[0].Rank, results[1].Rank, results[2].Rank, results[3].Rank})
	})

	t.Run("MinScoreFiltersPool", func(t *testing.T) {
		pool := []domain.Volunteer{
			{ID: 1},
			{ID: 2, Availability: []string{domain.AvailabilityWeekdays}},
		}

		results, summary := matching.Rank(pool, openOpp(), 95, 0)
		require.Len(t, results, 1)
		assert.Equal(t, int32(2), results[0].Volunteer.ID)
		assert.Equal(t, 2, summary.TotalEvaluated)
		assert.Equal(t, 1, summary.TotalFound)
	})

	t.Run("LimitTruncatesAfterSorting", func(t *testing.T) {
		pool := []domain.Volunteer{
			{ID: 1},
			{ID: 2, Availability: []string{domain.AvailabilityWeekdays}},
			{ID: 3, Availability: []string{domain.AvailabilityWeekdays}, TotalHoursVolunteered: 10},
		}

		results, _ := matching.Rank(pool, openOpp(), 0, 2)
		require.Len(t, results, 2)
		assert.Equal(t, int32(3), results[0].Volunteer.ID)
		assert.Equal(t, int32(2), results[1].Volunteer.ID)
	})

	t.Run("DeterministicAcrossCalls", func(t *testing.T) {
		pool := []domain.Volunteer{
			{ID: 5, Availability: []string{domain.AvailabilityWeekdays}},
			{ID: 4, Availability: []string{domain.AvailabilityWeekdays}},
			{ID: 6, Availability: []string{domain.AvailabilityWeekdays}},
		}

		first, _ := matching.Rank(pool, openOpp(), 0, 0)
		second, _ := matching.Rank(pool, openOpp(), 0, 0)
		require.Len(t, first, 3)
		for i := range first {
			assert.Equal(t, first[i].Volunteer.ID, second[i].Volunteer.ID)
		}
		assert.Equal(t, int32(4), first[0].Volunteer.ID)
	})

	t.Run("PercentageAndRecommendationPopulated", func(t *testing.T) {
		pool := []domain.Volunteer{{ID: 1, Availability: []string{domain.AvailabilityWeekdays}}}

		results, _ := matching.Rank(pool, openOpp(), 0, 0)
		require.Len(t, results, 1)
		assert.Equal(t, "100%", results[0].MatchPercentage)
		assert.Equal(t, "Excellent Match", results[0].Recommendation)
	})
}
