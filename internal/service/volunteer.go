package service

import (
	"context"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/repository"
)

type volunteerService struct {
	volRepo repository.VolunteerRepository
}

func NewVolunteerService(volRepo repository.VolunteerRepository) VolunteerService {
	return &volunteerService{volRepo: volRepo}
}

// CreateProfile creates the volunteer profile for the acting user. New
// profiles start pending approval; a moderator promotes them.
func (s *volunteerService) CreateProfile(ctx context.Context, actor Actor, vol *domain.Volunteer) error {
	if actor.Role != domain.UserRoleVolunteer {
		return domain.ErrForbidden
	}
	if err := validateAvailability(vol.Availability); err != nil {
		return err
	}

	vol.UserID = actor.UserID
	vol.ApprovalStatus = domain.VerificationStatusPending
	vol.BackgroundCheckStatus = domain.BackgroundCheckNotRequested
	vol.TotalHoursVolunteered = 0
	vol.IsActive = true
	if err := s.volRepo.Create(ctx, vol); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Volunteer profile created", "volunteer_id", vol.ID, "user_id", vol.UserID)
	return nil
}

func (s *volunteerService) GetProfile(ctx context.Context, volunteerID int32) (*domain.Volunteer, error) {
	return s.volRepo.GetByID(ctx, volunteerID)
}

func (s *volunteerService) GetOwnProfile(ctx context.Context, actor Actor) (*domain.Volunteer, error) {
	return s.volRepo.GetByUserID(ctx, actor.UserID)
}

// UpdateProfile replaces the self-editable fields. Approval status, background
// check status and the hours total are owned by other flows and never change
// here.
func (s *volunteerService) UpdateProfile(ctx context.Context, actor Actor, vol *domain.Volunteer) error {
	current, err := s.volRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if err := validateAvailability(vol.Availability); err != nil {
		return err
	}

	current.Skills = vol.Skills
	current.Interests = vol.Interests
	current.Availability = vol.Availability
	current.City = vol.City
	current.State = vol.State
	if err := s.volRepo.Update(ctx, current); err != nil {
		return err
	}
	*vol = *current
	return nil
}

func validateAvailability(windows []string) error {
	for _, w := range windows {
		switch w {
		case domain.AvailabilityWeekdays, domain.AvailabilityWeekends, domain.AvailabilityEvenings:
		default:
			return domain.NewValidationError("availability", "unknown availability window: "+w)
		}
	}
	return nil
}
