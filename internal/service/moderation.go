package service

import (
	"context"
	"fmt"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/repository"
)

type moderationService struct {
	charityRepo repository.CharityRepository
	volRepo     repository.VolunteerRepository
	userRepo    repository.UserRepository
	reportRepo  repository.ReportRepository
	emailSvc    EmailService
	noteRepo    repository.NotificationRepository
}

func NewModerationService(
	charityRepo repository.CharityRepository,
	volRepo repository.VolunteerRepository,
	userRepo repository.UserRepository,
	reportRepo repository.ReportRepository,
	emailSvc EmailService,
	noteRepo repository.NotificationRepository,
) ModerationService {
	return &moderationService{
		charityRepo: charityRepo,
		volRepo:     volRepo,
		userRepo:    userRepo,
		reportRepo:  reportRepo,
		emailSvc:    emailSvc,
		noteRepo:    noteRepo,
	}
}

// ReviewCharity records the verification verdict for a charity profile and
// tells the organization.
func (s *moderationService) ReviewCharity(ctx context.Context, actor Actor, charityID int32, decision domain.VerificationStatus, notes string) (*domain.Charity, error) {
	if !actor.IsModerator() {
		return nil, domain.ErrForbidden
	}
	if decision != domain.VerificationStatusApproved && decision != domain.VerificationStatusRejected {
		return nil, domain.NewValidationError("decision", "must be APPROVED or REJECTED")
	}

	charity, err := s.charityRepo.GetByID(ctx, charityID)
	if err != nil {
		return nil, err
	}
	charity.VerificationStatus = decision
	charity.VerificationNotes = notes
	if err := s.charityRepo.Update(ctx, charity); err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "Charity reviewed", "charity_id", charityID, "decision", decision, "moderator_id", actor.UserID)

	s.notifyAccountStatus(ctx, charity.UserID, string(decision), notes)
	return charity, nil
}

// ReviewVolunteer records the approval verdict for a volunteer profile.
func (s *moderationService) ReviewVolunteer(ctx context.Context, actor Actor, volunteerID int32, decision domain.VerificationStatus) (*domain.Volunteer, error) {
	if !actor.IsModerator() {
		return nil, domain.ErrForbidden
	}
	if decision != domain.VerificationStatusApproved && decision != domain.VerificationStatusRejected {
		return nil, domain.NewValidationError("decision", "must be APPROVED or REJECTED")
	}

	vol, err := s.volRepo.GetByID(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	vol.ApprovalStatus = decision
	if err := s.volRepo.Update(ctx, vol); err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "Volunteer reviewed", "volunteer_id", volunteerID, "decision", decision, "moderator_id", actor.UserID)

	s.notifyAccountStatus(ctx, vol.UserID, string(decision), "")
	return vol, nil
}

func (s *moderationService) ListPendingCharities(ctx context.Context, actor Actor, page, pageSize int32) ([]domain.Charity, int32, error) {
	if !actor.IsModerator() {
		return nil, 0, domain.ErrForbidden
	}
	return s.charityRepo.ListByVerificationStatus(ctx, domain.VerificationStatusPending, page, pageSize)
}

// CreateReport files a report against a user, charity, opportunity or
// comment. Any authenticated user can report.
func (s *moderationService) CreateReport(ctx context.Context, actor Actor, report *domain.Report) error {
	switch report.ReportedEntityType {
	case domain.ReportedEntityUser, domain.ReportedEntityCharity,
		domain.ReportedEntityOpportunity, domain.ReportedEntityComment:
	default:
		return domain.NewValidationError("reported_entity_type", "unknown entity type")
	}
	switch report.Reason {
	case domain.ReportReasonSpam, domain.ReportReasonInappropriate,
		domain.ReportReasonFraud, domain.ReportReasonHarassment, domain.ReportReasonOther:
	default:
		return domain.NewValidationError("reason", "unknown report reason")
	}
	if report.ReportedEntityID == 0 {
		return domain.NewValidationError("reported_entity_id", "is required")
	}

	report.ReporterID = actor.UserID
	report.Status = domain.ReportStatusPending
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return err
	}

	_ = s.noteRepo.Create(ctx, &domain.Notification{
		UserID:   actor.UserID,
		Type:     domain.NotifyReportReceived,
		Title:    "Report Received",
		Message:  "Your report was received and will be reviewed by a moderator",
		Priority: domain.PriorityNormal,
		Attributes: map[string]string{
			"report_id": fmt.Sprintf("%d", report.ID),
		},
	})
	return nil
}

func (s *moderationService) GetReport(ctx context.Context, actor Actor, id int32) (*domain.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsModerator() && report.ReporterID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	return report, nil
}

func (s *moderationService) StartReview(ctx context.Context, actor Actor, id int32) (*domain.Report, error) {
	if !actor.IsModerator() {
		return nil, domain.ErrForbidden
	}
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report.Status != domain.ReportStatusPending {
		return nil, domain.NewStateError("report", report.Status, domain.ReportStatusUnderReview)
	}

	report.Status = domain.ReportStatusUnderReview
	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// Resolve closes a report with the action the moderator took.
func (s *moderationService) Resolve(ctx context.Context, actor Actor, id int32, resolution, actionTaken string) (*domain.Report, error) {
	return s.close(ctx, actor, id, domain.ReportStatusResolved, resolution, actionTaken)
}

// Dismiss closes a report without action.
func (s *moderationService) Dismiss(ctx context.Context, actor Actor, id int32, resolution string) (*domain.Report, error) {
	return s.close(ctx, actor, id, domain.ReportStatusDismissed, resolution, "")
}

func (s *moderationService) close(ctx context.Context, actor Actor, id int32, target domain.ReportStatus, resolution, actionTaken string) (*domain.Report, error) {
	if !actor.IsModerator() {
		return nil, domain.ErrForbidden
	}
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report.Status.IsTerminal() {
		return nil, domain.NewStateError("report", report.Status, target)
	}

	now := time.Now()
	report.Status = target
	report.Resolution = resolution
	report.ActionTaken = actionTaken
	report.ResolvedBy = &actor.UserID
	report.ResolvedOn = &now
	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}

	_ = s.noteRepo.Create(ctx, &domain.Notification{
		UserID:   report.ReporterID,
		Type:     domain.NotifyReportResolved,
		Title:    "Report " + string(target),
		Message:  fmt.Sprintf("Your report was %s: %s", target, resolution),
		Priority: domain.PriorityNormal,
		Attributes: map[string]string{
			"report_id": fmt.Sprintf("%d", report.ID),
		},
	})
	return report, nil
}

func (s *moderationService) ListReports(ctx context.Context, actor Actor, status string, page, pageSize int32) ([]domain.Report, int32, error) {
	if !actor.IsModerator() {
		return nil, 0, domain.ErrForbidden
	}
	return s.reportRepo.List(ctx, status, page, pageSize)
}

func (s *moderationService) notifyAccountStatus(ctx context.Context, userID int32, status, notes string) {
	_ = s.noteRepo.Create(ctx, &domain.Notification{
		UserID:   userID,
		Type:     domain.NotifyAccountStatusChanged,
		Title:    "Account Status Updated",
		Message:  fmt.Sprintf("Your account verification is now %s", status),
		Priority: domain.PriorityHigh,
	})

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return
	}
	if err := s.emailSvc.SendAccountStatusEmail(ctx, user.Email, user.Name, status, notes); err != nil {
		logger.Warn("Failed to send account status email", "user_id", userID, "error", err)
	}
}
