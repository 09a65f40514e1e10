package service

import (
	"context"
	"fmt"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/matching"
	"volunteerhub-backend/internal/repository"

	"github.com/google/uuid"
)

type applicationService struct {
	appRepo     repository.ApplicationRepository
	oppRepo     repository.OpportunityRepository
	volRepo     repository.VolunteerRepository
	charityRepo repository.CharityRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
	noteRepo    repository.NotificationRepository
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	oppRepo repository.OpportunityRepository,
	volRepo repository.VolunteerRepository,
	charityRepo repository.CharityRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	noteRepo repository.NotificationRepository,
) ApplicationService {
	return &applicationService{
		appRepo:     appRepo,
		oppRepo:     oppRepo,
		volRepo:     volRepo,
		charityRepo: charityRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		noteRepo:    noteRepo,
	}
}

func (s *applicationService) Submit(ctx context.Context, actor Actor, opportunityID int32, coverMessage string, hoursCommitted int32) (*domain.Application, error) {
	vol, err := s.actingVolunteer(ctx, actor)
	if err != nil {
		return nil, err
	}

	opp, err := s.oppRepo.GetByID(ctx, opportunityID)
	if err != nil {
		return nil, err
	}
	if !opp.Open() {
		return nil, &domain.StateError{Entity: "opportunity", Current: string(opp.Status), Attempted: "accept application"}
	}
	if opp.Full() {
		return nil, domain.ErrCapacityFull
	}
	if hoursCommitted < 0 {
		return nil, domain.NewValidationError("hours_committed", "must not be negative")
	}

	score, _ := matching.Score(vol, opp)

	app := &domain.Application{
		OpportunityID:         opportunityID,
		VolunteerID:           vol.ID,
		Status:                domain.ApplicationStatusPending,
		CoverMessage:          coverMessage,
		MatchScore:            &score,
		HoursCommitted:        hoursCommitted,
		ModeratorReviewStatus: domain.ModeratorReviewNone,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.notifyCharity(ctx, opp, domain.NotifyApplicationSubmitted, "New Application",
		fmt.Sprintf("A volunteer applied to %s", opp.Title), domain.PriorityNormal, app.ID)
	return app, nil
}

func (s *applicationService) Get(ctx context.Context, actor Actor, id int32) (*domain.Application, error) {
	app, _, _, err := s.loadForActor(ctx, actor, id)
	return app, err
}

func (s *applicationService) RequestInfo(ctx context.Context, actor Actor, id int32, fields []string, message string) (*domain.Application, error) {
	app, opp, err := s.loadForCharity(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if app.Status != domain.ApplicationStatusPending && app.Status != domain.ApplicationStatusUnderReview {
		return nil, domain.NewStateError("application", app.Status, domain.ApplicationStatusInfoRequested)
	}
	if len(fields) == 0 {
		return nil, domain.NewValidationError("fields", "at least one field is required")
	}

	app.Status = domain.ApplicationStatusInfoRequested
	app.InfoRequested = &domain.InfoRequest{
		ID:          uuid.New().String(),
		Fields:      fields,
		Message:     message,
		RequestedBy: actor.UserID,
		RequestedOn: time.Now(),
	}
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	s.notifyVolunteer(ctx, app, opp, domain.NotifyApplicationInfoRequested, "More Information Requested",
		fmt.Sprintf("The charity needs more information for your application to %s", opp.Title), domain.PriorityNormal)
	s.emailVolunteerInfoRequest(ctx, app, opp, message)
	return app, nil
}

func (s *applicationService) ProvideInfo(ctx context.Context, actor Actor, id int32, answers map[string]string) (*domain.Application, error) {
	app, err := s.loadForVolunteer(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if app.Status != domain.ApplicationStatusInfoRequested {
		return nil, domain.NewStateError("application", app.Status, domain.ApplicationStatusUnderReview)
	}
	if len(answers) == 0 {
		return nil, domain.NewValidationError("answers", "at least one answer is required")
	}

	requestID := ""
	if app.InfoRequested != nil {
		requestID = app.InfoRequested.ID
	}
	app.Status = domain.ApplicationStatusUnderReview
	app.InfoProvided = &domain.InfoResponse{
		RequestID:  requestID,
		Answers:    answers,
		ProvidedOn: time.Now(),
	}
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	opp, err := s.oppRepo.GetByID(ctx, app.OpportunityID)
	if err == nil {
		s.notifyCharity(ctx, opp, domain.NotifyApplicationInfoProvided, "Information Provided",
			fmt.Sprintf("A volunteer answered your information request for %s", opp.Title), domain.PriorityNormal, app.ID)
	}
	return app, nil
}

func (s *applicationService) Approve(ctx context.Context, actor Actor, id int32, notes string) (*domain.Application, error) {
	return s.review(ctx, actor, id, domain.ApplicationStatusApproved, notes)
}

func (s *applicationService) Reject(ctx context.Context, actor Actor, id int32, notes string) (*domain.Application, error) {
	return s.review(ctx, actor, id, domain.ApplicationStatusRejected, notes)
}

func (s *applicationService) review(ctx context.Context, actor Actor, id int32, target domain.ApplicationStatus, notes string) (*domain.Application, error) {
	app, opp, err := s.loadForCharity(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if app.Status != domain.ApplicationStatusPending && app.Status != domain.ApplicationStatusUnderReview {
		return nil, domain.NewStateError("application", app.Status, target)
	}

	now := time.Now()
	app.Status = target
	app.ReviewedBy = &actor.UserID
	app.ReviewedOn = &now
	app.ReviewNotes = notes
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	noteType := domain.NotifyApplicationApproved
	title := "Application Approved"
	if target == domain.ApplicationStatusRejected {
		noteType = domain.NotifyApplicationRejected
		title = "Application Rejected"
	}
	s.notifyVolunteer(ctx, app, opp, noteType, title,
		fmt.Sprintf("Your application to %s was %s", opp.Title, statusWord(target)), domain.PriorityHigh)
	s.emailVolunteerStatus(ctx, app, opp, statusWord(target), notes)
	return app, nil
}

// Confirm moves an approved application to confirmed. The slot reservation is
// a single conditional update on the opportunity, so two volunteers racing
// for the last slot cannot both get through.
func (s *applicationService) Confirm(ctx context.Context, actor Actor, id int32, committedHours int32) (*domain.Application, error) {
	app, err := s.loadForVolunteer(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if app.Status != domain.ApplicationStatusApproved {
		return nil, domain.NewStateError("application", app.Status, domain.ApplicationStatusConfirmed)
	}
	if committedHours <= 0 {
		return nil, domain.NewValidationError("committed_hours", "must be positive")
	}

	if err := s.oppRepo.ConfirmVolunteer(ctx, app.OpportunityID); err != nil {
		return nil, err
	}

	now := time.Now()
	app.Status = domain.ApplicationStatusConfirmed
	app.ConfirmedOn = &now
	app.HoursCommitted = committedHours
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	opp, err := s.oppRepo.GetByID(ctx, app.OpportunityID)
	if err == nil {
		s.notifyCharity(ctx, opp, domain.NotifyApplicationConfirmed, "Volunteer Confirmed",
			fmt.Sprintf("A volunteer confirmed their slot for %s", opp.Title), domain.PriorityNormal, app.ID)
	}
	return app, nil
}

func (s *applicationService) Withdraw(ctx context.Context, actor Actor, id int32, reason string) (*domain.Application, error) {
	app, err := s.loadForVolunteer(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	switch app.Status {
	case domain.ApplicationStatusPending, domain.ApplicationStatusUnderReview, domain.ApplicationStatusInfoRequested:
	default:
		return nil, domain.NewStateError("application", app.Status, domain.ApplicationStatusWithdrawn)
	}

	now := time.Now()
	app.Status = domain.ApplicationStatusWithdrawn
	app.WithdrawnOn = &now
	app.WithdrawnReason = reason
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	opp, err := s.oppRepo.GetByID(ctx, app.OpportunityID)
	if err == nil {
		s.notifyCharity(ctx, opp, domain.NotifyApplicationWithdrawn, "Application Withdrawn",
			fmt.Sprintf("A volunteer withdrew their application to %s", opp.Title), domain.PriorityLow, app.ID)
	}
	return app, nil
}

func (s *applicationService) RequireBackgroundCheck(ctx context.Context, actor Actor, id int32) (*domain.Application, error) {
	app, opp, err := s.loadForCharity(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if app.Status != domain.ApplicationStatusPending && app.Status != domain.ApplicationStatusUnderReview {
		return nil, domain.NewStateError("application", app.Status, domain.ApplicationStatusBackgroundRequired)
	}

	app.Status = domain.ApplicationStatusBackgroundRequired
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	s.notifyVolunteer(ctx, app, opp, domain.NotifyBackgroundCheckRequired, "Background Check Required",
		fmt.Sprintf("A background check is required for your application to %s", opp.Title), domain.PriorityHigh)
	return app, nil
}

func (s *applicationService) FlagForModeration(ctx context.Context, actor Actor, id int32) (*domain.Application, error) {
	if !actor.IsModerator() {
		return nil, domain.ErrForbidden
	}
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status.IsTerminal() {
		return nil, domain.NewStateError("application", app.Status, domain.ApplicationStatusModeratorReview)
	}

	app.Status = domain.ApplicationStatusModeratorReview
	app.FlaggedForModeration = true
	app.ModeratorReviewStatus = domain.ModeratorReviewPending
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	opp, err := s.oppRepo.GetByID(ctx, app.OpportunityID)
	if err == nil {
		s.notifyVolunteer(ctx, app, opp, domain.NotifyApplicationFlagged, "Application Under Moderator Review",
			fmt.Sprintf("Your application to %s is being reviewed by a moderator", opp.Title), domain.PriorityHigh)
	}
	return app, nil
}

// ResolveModeratorReview closes the escalation track. An approved resolution
// returns the application to the charity's review queue; a rejected one ends
// the primary lifecycle too.
func (s *applicationService) ResolveModeratorReview(ctx context.Context, actor Actor, id int32, decision domain.ModeratorReviewStatus) (*domain.Application, error) {
	if !actor.IsModerator() {
		return nil, domain.ErrForbidden
	}
	if decision != domain.ModeratorReviewApproved && decision != domain.ModeratorReviewRejected {
		return nil, domain.NewValidationError("decision", "must be APPROVED or REJECTED")
	}
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.ModeratorReviewStatus != domain.ModeratorReviewPending {
		return nil, &domain.StateError{Entity: "application moderator review", Current: string(app.ModeratorReviewStatus), Attempted: string(decision)}
	}

	app.ModeratorReviewStatus = decision
	if app.Status == domain.ApplicationStatusModeratorReview {
		if decision == domain.ModeratorReviewApproved {
			app.Status = domain.ApplicationStatusUnderReview
		} else {
			now := time.Now()
			app.Status = domain.ApplicationStatusRejected
			app.ReviewedBy = &actor.UserID
			app.ReviewedOn = &now
		}
	}
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *applicationService) ListByOpportunity(ctx context.Context, actor Actor, opportunityID int32, status string, page, pageSize int32) ([]domain.Application, int32, error) {
	if !actor.IsModerator() {
		opp, err := s.oppRepo.GetByID(ctx, opportunityID)
		if err != nil {
			return nil, 0, err
		}
		charity, err := s.charityRepo.GetByUserID(ctx, actor.UserID)
		if err != nil || charity.ID != opp.CharityID {
			return nil, 0, domain.ErrForbidden
		}
	}
	return s.appRepo.ListByOpportunity(ctx, opportunityID, status, page, pageSize)
}

func (s *applicationService) ListByVolunteer(ctx context.Context, actor Actor, status string, page, pageSize int32) ([]domain.Application, int32, error) {
	vol, err := s.volRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, 0, err
	}
	return s.appRepo.ListByVolunteer(ctx, vol.ID, status, page, pageSize)
}

// actingVolunteer resolves the actor to an approved, active volunteer profile.
func (s *applicationService) actingVolunteer(ctx context.Context, actor Actor) (*domain.Volunteer, error) {
	if actor.Role != domain.UserRoleVolunteer {
		return nil, domain.ErrForbidden
	}
	vol, err := s.volRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if !vol.CanAct() {
		return nil, domain.ErrActorNotApproved
	}
	return vol, nil
}

// loadForVolunteer loads the application and verifies the actor owns it.
func (s *applicationService) loadForVolunteer(ctx context.Context, actor Actor, id int32) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	vol, err := s.volRepo.GetByUserID(ctx, actor.UserID)
	if err != nil || vol.ID != app.VolunteerID {
		return nil, domain.ErrForbidden
	}
	return app, nil
}

// loadForCharity loads the application and verifies the actor's charity owns
// the opportunity it belongs to.
func (s *applicationService) loadForCharity(ctx context.Context, actor Actor, id int32) (*domain.Application, *domain.Opportunity, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	opp, err := s.oppRepo.GetByID(ctx, app.OpportunityID)
	if err != nil {
		return nil, nil, err
	}
	charity, err := s.charityRepo.GetByUserID(ctx, actor.UserID)
	if err != nil || charity.ID != opp.CharityID {
		return nil, nil, domain.ErrForbidden
	}
	return app, opp, nil
}

func (s *applicationService) loadForActor(ctx context.Context, actor Actor, id int32) (*domain.Application, *domain.Opportunity, *domain.Volunteer, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	if actor.IsModerator() {
		return app, nil, nil, nil
	}
	if vol, err := s.volRepo.GetByUserID(ctx, actor.UserID); err == nil && vol.ID == app.VolunteerID {
		return app, nil, vol, nil
	}
	opp, err := s.oppRepo.GetByID(ctx, app.OpportunityID)
	if err != nil {
		return nil, nil, nil, err
	}
	if charity, err := s.charityRepo.GetByUserID(ctx, actor.UserID); err == nil && charity.ID == opp.CharityID {
		return app, opp, nil, nil
	}
	return nil, nil, nil, domain.ErrForbidden
}

func (s *applicationService) notifyCharity(ctx context.Context, opp *domain.Opportunity, noteType domain.NotificationType, title, message string, priority domain.NotificationPriority, applicationID int32) {
	charity, err := s.charityRepo.GetByID(ctx, opp.CharityID)
	if err != nil {
		logger.Warn("Failed to load charity for notification", "charity_id", opp.CharityID, "error", err)
		return
	}
	_ = s.noteRepo.Create(ctx, &domain.Notification{
		UserID:   charity.UserID,
		Type:     noteType,
		Title:    title,
		Message:  message,
		Priority: priority,
		Attributes: map[string]string{
			"opportunity_id": fmt.Sprintf("%d", opp.ID),
			"application_id": fmt.Sprintf("%d", applicationID),
		},
	})
}

func (s *applicationService) notifyVolunteer(ctx context.Context, app *domain.Application, opp *domain.Opportunity, noteType domain.NotificationType, title, message string, priority domain.NotificationPriority) {
	vol, err := s.volRepo.GetByID(ctx, app.VolunteerID)
	if err != nil {
		logger.Warn("Failed to load volunteer for notification", "volunteer_id", app.VolunteerID, "error", err)
		return
	}
	_ = s.noteRepo.Create(ctx, &domain.Notification{
		UserID:   vol.UserID,
		Type:     noteType,
		Title:    title,
		Message:  message,
		Priority: priority,
		Attributes: map[string]string{
			"opportunity_id": fmt.Sprintf("%d", opp.ID),
			"application_id": fmt.Sprintf("%d", app.ID),
		},
	})
}

func (s *applicationService) emailVolunteerStatus(ctx context.Context, app *domain.Application, opp *domain.Opportunity, status, notes string) {
	vol, err := s.volRepo.GetByID(ctx, app.VolunteerID)
	if err != nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, vol.UserID)
	if err != nil {
		return
	}
	if err := s.emailSvc.SendApplicationStatusEmail(ctx, user.Email, user.Name, opp.Title, status, notes); err != nil {
		logger.Warn("Failed to send application status email", "application_id", app.ID, "error", err)
	}
}

func (s *applicationService) emailVolunteerInfoRequest(ctx context.Context, app *domain.Application, opp *domain.Opportunity, message string) {
	vol, err := s.volRepo.GetByID(ctx, app.VolunteerID)
	if err != nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, vol.UserID)
	if err != nil {
		return
	}
	if err := s.emailSvc.SendInfoRequestEmail(ctx, user.Email, user.Name, opp.Title, message); err != nil {
		logger.Warn("Failed to send info request email", "application_id", app.ID, "error", err)
	}
}

func statusWord(s domain.ApplicationStatus) string {
	switch s {
	case domain.ApplicationStatusApproved:
		return "approved"
	case domain.ApplicationStatusRejected:
		return "rejected"
	default:
		return string(s)
	}
}
