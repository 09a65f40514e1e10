package service

import (
	"context"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/repository"
)

type charityService struct {
	charityRepo repository.CharityRepository
}

func NewCharityService(charityRepo repository.CharityRepository) CharityService {
	return &charityService{charityRepo: charityRepo}
}

// CreateProfile creates the organization profile for the acting user. New
// charities start pending verification and cannot publish until approved.
func (s *charityService) CreateProfile(ctx context.Context, actor Actor, charity *domain.Charity) error {
	if actor.Role != domain.UserRoleCharity {
		return domain.ErrForbidden
	}
	if charity.Name == "" {
		return domain.NewValidationError("name", "organization name is required")
	}

	charity.UserID = actor.UserID
	charity.VerificationStatus = domain.VerificationStatusPending
	charity.IsActive = true
	if err := s.charityRepo.Create(ctx, charity); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Charity profile created", "charity_id", charity.ID, "user_id", charity.UserID)
	return nil
}

func (s *charityService) GetProfile(ctx context.Context, charityID int32) (*domain.Charity, error) {
	return s.charityRepo.GetByID(ctx, charityID)
}

func (s *charityService) GetOwnProfile(ctx context.Context, actor Actor) (*domain.Charity, error) {
	return s.charityRepo.GetByUserID(ctx, actor.UserID)
}

// UpdateProfile replaces the self-editable fields. Verification status is
// owned by moderation and never changes here.
func (s *charityService) UpdateProfile(ctx context.Context, actor Actor, charity *domain.Charity) error {
	current, err := s.charityRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if charity.Name == "" {
		return domain.NewValidationError("name", "organization name is required")
	}

	current.Name = charity.Name
	current.Description = charity.Description
	current.City = charity.City
	current.State = charity.State
	if err := s.charityRepo.Update(ctx, current); err != nil {
		return err
	}
	*charity = *current
	return nil
}
