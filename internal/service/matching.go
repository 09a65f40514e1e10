package service

import (
	"context"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/matching"
	"volunteerhub-backend/internal/repository"
)

type matchingService struct {
	oppRepo     repository.OpportunityRepository
	volRepo     repository.VolunteerRepository
	appRepo     repository.ApplicationRepository
	charityRepo repository.CharityRepository
	defaults    MatchOptions
}

// NewMatchingService wires the match search. The defaults apply when a caller
// leaves MinScore or Limit unset.
func NewMatchingService(
	oppRepo repository.OpportunityRepository,
	volRepo repository.VolunteerRepository,
	appRepo repository.ApplicationRepository,
	charityRepo repository.CharityRepository,
	defaults MatchOptions,
) MatchingService {
	return &matchingService{
		oppRepo:     oppRepo,
		volRepo:     volRepo,
		appRepo:     appRepo,
		charityRepo: charityRepo,
		defaults:    defaults,
	}
}

// FindMatches ranks the approved volunteer pool against the opportunity.
// Volunteers who already hold an open application are excluded so the charity
// only sees candidates it could still invite.
func (s *matchingService) FindMatches(ctx context.Context, actor Actor, opportunityID int32, opts MatchOptions) ([]domain.MatchResult, domain.MatchSummary, error) {
	if opts.MinScore == 0 {
		opts.MinScore = s.defaults.MinScore
	}
	if opts.Limit == 0 {
		opts.Limit = s.defaults.Limit
	}
	opp, err := s.oppRepo.GetByID(ctx, opportunityID)
	if err != nil {
		return nil, domain.MatchSummary{}, err
	}
	if !actor.IsModerator() {
		charity, err := s.charityRepo.GetByUserID(ctx, actor.UserID)
		if err != nil || charity.ID != opp.CharityID {
			return nil, domain.MatchSummary{}, domain.ErrForbidden
		}
	}

	pool, err := s.volRepo.ListApprovedActive(ctx)
	if err != nil {
		return nil, domain.MatchSummary{}, err
	}

	applied, err := s.appRepo.ListVolunteerIDsWithOpenApplication(ctx, opportunityID)
	if err != nil {
		return nil, domain.MatchSummary{}, err
	}
	if len(applied) > 0 {
		exclude := make(map[int32]struct{}, len(applied))
		for _, id := range applied {
			exclude[id] = struct{}{}
		}
		filtered := pool[:0]
		for _, v := range pool {
			if _, ok := exclude[v.ID]; !ok {
				filtered = append(filtered, v)
			}
		}
		pool = filtered
	}

	results, summary := matching.Rank(pool, opp, opts.MinScore, opts.Limit)
	logger.DebugContext(ctx, "Match search completed",
		"opportunity_id", opportunityID,
		"evaluated", summary.TotalEvaluated,
		"found", summary.TotalFound)
	return results, summary, nil
}
