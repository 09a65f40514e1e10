package service

import (
	"context"
	"fmt"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/repository"
)

type attendanceService struct {
	attRepo     repository.AttendanceRepository
	appRepo     repository.ApplicationRepository
	oppRepo     repository.OpportunityRepository
	volRepo     repository.VolunteerRepository
	charityRepo repository.CharityRepository
	noteRepo    repository.NotificationRepository
}

func NewAttendanceService(
	attRepo repository.AttendanceRepository,
	appRepo repository.ApplicationRepository,
	oppRepo repository.OpportunityRepository,
	volRepo repository.VolunteerRepository,
	charityRepo repository.CharityRepository,
	noteRepo repository.NotificationRepository,
) AttendanceService {
	return &attendanceService{
		attRepo:     attRepo,
		appRepo:     appRepo,
		oppRepo:     oppRepo,
		volRepo:     volRepo,
		charityRepo: charityRepo,
		noteRepo:    noteRepo,
	}
}

// Record captures whether a confirmed volunteer showed up. Only the charity
// that owns the opportunity can record, only for volunteers with a confirmed
// application, and only once per (opportunity, volunteer) pair. Present and
// late attendance add the worked hours to the volunteer's lifetime total.
func (s *attendanceService) Record(ctx context.Context, actor Actor, opportunityID, volunteerID int32, status domain.AttendanceStatus, hoursWorked int32) (*domain.Attendance, error) {
	opp, err := s.ownedOpportunity(ctx, actor, opportunityID)
	if err != nil {
		return nil, err
	}

	switch status {
	case domain.AttendanceStatusPresent, domain.AttendanceStatusAbsent,
		domain.AttendanceStatusLate, domain.AttendanceStatusExcused:
	default:
		return nil, domain.NewValidationError("status", "unknown attendance status")
	}
	if hoursWorked < 0 {
		return nil, domain.NewValidationError("hours_worked", "must not be negative")
	}

	app, err := s.appRepo.GetByPair(ctx, opportunityID, volunteerID)
	if err != nil {
		return nil, err
	}
	if app.Status != domain.ApplicationStatusConfirmed {
		return nil, domain.NewStateError("application", app.Status, domain.ApplicationStatusConfirmed)
	}

	att := &domain.Attendance{
		OpportunityID: opportunityID,
		VolunteerID:   volunteerID,
		Status:        status,
		HoursWorked:   hoursWorked,
		RecordedBy:    &actor.UserID,
	}
	if err := s.attRepo.Create(ctx, att); err != nil {
		return nil, err
	}

	worked := status == domain.AttendanceStatusPresent || status == domain.AttendanceStatusLate
	if worked && hoursWorked > 0 {
		if err := s.volRepo.AddHours(ctx, volunteerID, hoursWorked); err != nil {
			logger.Warn("Failed to credit volunteer hours", "volunteer_id", volunteerID, "error", err)
		}
	}

	vol, err := s.volRepo.GetByID(ctx, volunteerID)
	if err == nil {
		_ = s.noteRepo.Create(ctx, &domain.Notification{
			UserID:   vol.UserID,
			Type:     domain.NotifyAttendanceRecorded,
			Title:    "Attendance Recorded",
			Message:  fmt.Sprintf("Your attendance for %s was recorded as %s", opp.Title, status),
			Priority: domain.PriorityLow,
			Attributes: map[string]string{
				"opportunity_id": fmt.Sprintf("%d", opp.ID),
				"attendance_id":  fmt.Sprintf("%d", att.ID),
			},
		})
	}
	return att, nil
}

// RateVolunteer lets the charity rate the volunteer's work, 1 to 5.
func (s *attendanceService) RateVolunteer(ctx context.Context, actor Actor, attendanceID int32, rating int32) (*domain.Attendance, error) {
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	att, err := s.attRepo.GetByID(ctx, attendanceID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedOpportunity(ctx, actor, att.OpportunityID); err != nil {
		return nil, err
	}

	att.VolunteerRating = &rating
	if err := s.attRepo.Update(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

// RateCharity lets the volunteer rate the experience, 1 to 5.
func (s *attendanceService) RateCharity(ctx context.Context, actor Actor, attendanceID int32, rating int32) (*domain.Attendance, error) {
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	att, err := s.attRepo.GetByID(ctx, attendanceID)
	if err != nil {
		return nil, err
	}
	vol, err := s.volRepo.GetByUserID(ctx, actor.UserID)
	if err != nil || vol.ID != att.VolunteerID {
		return nil, domain.ErrForbidden
	}

	att.CharityRating = &rating
	if err := s.attRepo.Update(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

func (s *attendanceService) ListByOpportunity(ctx context.Context, actor Actor, opportunityID int32) ([]domain.Attendance, error) {
	if !actor.IsModerator() {
		if _, err := s.ownedOpportunity(ctx, actor, opportunityID); err != nil {
			return nil, err
		}
	}
	return s.attRepo.ListByOpportunity(ctx, opportunityID)
}

func (s *attendanceService) ListByVolunteer(ctx context.Context, actor Actor, page, pageSize int32) ([]domain.Attendance, int32, error) {
	vol, err := s.volRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, 0, err
	}
	return s.attRepo.ListByVolunteer(ctx, vol.ID, page, pageSize)
}

func (s *attendanceService) ownedOpportunity(ctx context.Context, actor Actor, opportunityID int32) (*domain.Opportunity, error) {
	opp, err := s.oppRepo.GetByID(ctx, opportunityID)
	if err != nil {
		return nil, err
	}
	charity, err := s.charityRepo.GetByUserID(ctx, actor.UserID)
	if err != nil || charity.ID != opp.CharityID {
		return nil, domain.ErrForbidden
	}
	return opp, nil
}

func validateRating(rating int32) error {
	if rating < 1 || rating > 5 {
		return domain.NewValidationError("rating", "must be between 1 and 5")
	}
	return nil
}
