package service

import (
	"context"
	"fmt"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/repository"
)

type opportunityService struct {
	oppRepo     repository.OpportunityRepository
	appRepo     repository.ApplicationRepository
	charityRepo repository.CharityRepository
	volRepo     repository.VolunteerRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
	noteRepo    repository.NotificationRepository
}

func NewOpportunityService(
	oppRepo repository.OpportunityRepository,
	appRepo repository.ApplicationRepository,
	charityRepo repository.CharityRepository,
	volRepo repository.VolunteerRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	noteRepo repository.NotificationRepository,
) OpportunityService {
	return &opportunityService{
		oppRepo:     oppRepo,
		appRepo:     appRepo,
		charityRepo: charityRepo,
		volRepo:     volRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		noteRepo:    noteRepo,
	}
}

func (s *opportunityService) Create(ctx context.Context, actor Actor, opp *domain.Opportunity) error {
	charity, err := s.actingCharity(ctx, actor)
	if err != nil {
		return err
	}
	if err := validateOpportunity(opp); err != nil {
		return err
	}

	opp.CharityID = charity.ID
	opp.Status = domain.OpportunityStatusDraft
	opp.ModerationStatus = domain.VerificationStatusPending
	opp.VolunteersConfirmed = 0
	if opp.Visibility == "" {
		opp.Visibility = domain.VisibilityPublic
	}
	if opp.LocationType == "" {
		opp.LocationType = domain.LocationTypeInPerson
	}
	return s.oppRepo.Create(ctx, opp)
}

func (s *opportunityService) Get(ctx context.Context, id int32) (*domain.Opportunity, error) {
	return s.oppRepo.GetByID(ctx, id)
}

// Update replaces the editable fields. Only drafts and published listings can
// be edited; editing never touches the lifecycle or moderation columns.
func (s *opportunityService) Update(ctx context.Context, actor Actor, opp *domain.Opportunity) error {
	current, err := s.loadOwned(ctx, actor, opp.ID)
	if err != nil {
		return err
	}
	if current.Status != domain.OpportunityStatusDraft && current.Status != domain.OpportunityStatusPublished {
		return &domain.StateError{Entity: "opportunity", Current: string(current.Status), Attempted: "update"}
	}
	if err := validateOpportunity(opp); err != nil {
		return err
	}

	current.Title = opp.Title
	current.Description = opp.Description
	current.Category = opp.Category
	current.RequiredSkills = opp.RequiredSkills
	current.NumberOfVolunteers = opp.NumberOfVolunteers
	current.LocationType = opp.LocationType
	current.City = opp.City
	current.State = opp.State
	current.StartDate = opp.StartDate
	current.EndDate = opp.EndDate
	current.Visibility = opp.Visibility

	if err := s.oppRepo.Update(ctx, current); err != nil {
		return err
	}
	*opp = *current
	return nil
}

func (s *opportunityService) Publish(ctx context.Context, actor Actor, id int32) (*domain.Opportunity, error) {
	opp, err := s.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if opp.Status != domain.OpportunityStatusDraft {
		return nil, domain.NewStateError("opportunity", opp.Status, domain.OpportunityStatusPublished)
	}

	opp.Status = domain.OpportunityStatusPublished
	if err := s.oppRepo.Update(ctx, opp); err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "Opportunity published", "opportunity_id", opp.ID, "charity_id", opp.CharityID)
	return opp, nil
}

// Suspend pulls a live opportunity out of circulation and remembers where it
// was, so a later resume can put it back. Moderator only.
func (s *opportunityService) Suspend(ctx context.Context, actor Actor, id int32, reason string) (*domain.Opportunity, error) {
	if !actor.IsModerator() {
		return nil, domain.ErrForbidden
	}
	if reason == "" {
		return nil, domain.NewValidationError("reason", "suspension reason is required")
	}
	opp, err := s.oppRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if opp.Status == domain.OpportunityStatusSuspended || opp.Status.IsTerminal() {
		return nil, domain.NewStateError("opportunity", opp.Status, domain.OpportunityStatusSuspended)
	}

	now := time.Now()
	prev := opp.Status
	opp.PreviousStatus = &prev
	opp.Status = domain.OpportunityStatusSuspended
	opp.SuspendedOn = &now
	opp.SuspendedBy = &actor.UserID
	opp.SuspendedReason = reason
	if err := s.oppRepo.Update(ctx, opp); err != nil {
		return nil, err
	}

	s.notifyCharityStatus(ctx, opp, domain.NotifyOpportunitySuspended, "Opportunity Suspended",
		fmt.Sprintf("%s was suspended by a moderator: %s", opp.Title, reason), domain.PriorityHigh, reason)
	return opp, nil
}

// Resume restores a suspended opportunity to the status it held before the
// suspension. Rows suspended before the previous status was tracked fall back
// to published.
func (s *opportunityService) Resume(ctx context.Context, actor Actor, id int32) (*domain.Opportunity, error) {
	if !actor.IsModerator() {
		return nil, domain.ErrForbidden
	}
	opp, err := s.oppRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if opp.Status != domain.OpportunityStatusSuspended {
		return nil, &domain.StateError{Entity: "opportunity", Current: string(opp.Status), Attempted: "resume"}
	}

	restored := domain.OpportunityStatusPublished
	if opp.PreviousStatus != nil {
		restored = *opp.PreviousStatus
	}

	now := time.Now()
	opp.Status = restored
	opp.PreviousStatus = nil
	opp.ResumedOn = &now
	opp.ResumedBy = &actor.UserID
	if err := s.oppRepo.Update(ctx, opp); err != nil {
		return nil, err
	}

	s.notifyCharityStatus(ctx, opp, domain.NotifyOpportunityResumed, "Opportunity Resumed",
		fmt.Sprintf("%s was resumed and is %s again", opp.Title, opp.Status), domain.PriorityNormal, "")
	return opp, nil
}

// Close ends the lifecycle. Completion is reserved for opportunities that got
// off the ground; cancellation works from any non-terminal state. Confirmed
// volunteers are told either way.
func (s *opportunityService) Close(ctx context.Context, actor Actor, id int32, target domain.OpportunityStatus, notes string) (*domain.Opportunity, error) {
	if target != domain.OpportunityStatusCompleted && target != domain.OpportunityStatusCancelled {
		return nil, domain.NewValidationError("status", "close target must be COMPLETED or CANCELLED")
	}
	opp, err := s.loadOwnedOrModerator(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if opp.Status.IsTerminal() {
		return nil, domain.NewStateError("opportunity", opp.Status, target)
	}
	if target == domain.OpportunityStatusCompleted {
		switch opp.Status {
		case domain.OpportunityStatusPublished, domain.OpportunityStatusActive, domain.OpportunityStatusInProgress:
		default:
			return nil, domain.NewStateError("opportunity", opp.Status, target)
		}
	}

	now := time.Now()
	opp.Status = target
	opp.ClosedOn = &now
	opp.ClosureNotes = notes
	if err := s.oppRepo.Update(ctx, opp); err != nil {
		return nil, err
	}

	title := "Opportunity Completed"
	if target == domain.OpportunityStatusCancelled {
		title = "Opportunity Cancelled"
	}
	s.fanOutToConfirmed(ctx, opp, domain.NotifyOpportunityClosed, title,
		fmt.Sprintf("%s is now %s", opp.Title, opp.Status), notes)
	return opp, nil
}

// Delete removes a listing permanently. This is the moderator's hard delete,
// distinct from cancellation: the record is destroyed, not archived. The
// reason goes to the audit log since nothing else survives.
func (s *opportunityService) Delete(ctx context.Context, actor Actor, id int32, reason string) error {
	if !actor.IsModerator() {
		return domain.ErrForbidden
	}
	if reason == "" {
		return domain.NewValidationError("reason", "deletion reason is required")
	}
	opp, err := s.oppRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "Hard-deleting opportunity",
		"opportunity_id", id, "charity_id", opp.CharityID, "status", opp.Status,
		"moderator_id", actor.UserID, "reason", reason)
	return s.oppRepo.Delete(ctx, id)
}

// Moderate records the moderator's verdict on the listing content. The
// verdict gates visibility but is independent of the lifecycle status.
func (s *opportunityService) Moderate(ctx context.Context, actor Actor, id int32, decision domain.VerificationStatus, notes string) (*domain.Opportunity, error) {
	if !actor.IsModerator() {
		return nil, domain.ErrForbidden
	}
	if decision != domain.VerificationStatusApproved && decision != domain.VerificationStatusRejected {
		return nil, domain.NewValidationError("decision", "must be APPROVED or REJECTED")
	}
	opp, err := s.oppRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	opp.ModerationStatus = decision
	if err := s.oppRepo.Update(ctx, opp); err != nil {
		return nil, err
	}

	title := "Opportunity Approved"
	if decision == domain.VerificationStatusRejected {
		title = "Opportunity Rejected"
	}
	s.notifyCharityStatus(ctx, opp, domain.NotifyOpportunityModerated, title,
		fmt.Sprintf("%s was %s by a moderator", opp.Title, decision), domain.PriorityHigh, notes)
	return opp, nil
}

func (s *opportunityService) ListByCharity(ctx context.Context, charityID int32, status string, page, pageSize int32) ([]domain.Opportunity, int32, error) {
	return s.oppRepo.ListByCharity(ctx, charityID, status, page, pageSize)
}

func (s *opportunityService) Search(ctx context.Context, query, city, state, category, status string, page, pageSize int32) ([]domain.Opportunity, int32, error) {
	return s.oppRepo.Search(ctx, query, city, state, category, status, page, pageSize)
}

func (s *opportunityService) actingCharity(ctx context.Context, actor Actor) (*domain.Charity, error) {
	if actor.Role != domain.UserRoleCharity {
		return nil, domain.ErrForbidden
	}
	charity, err := s.charityRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if !charity.CanAct() {
		return nil, domain.ErrActorNotApproved
	}
	return charity, nil
}

func (s *opportunityService) loadOwned(ctx context.Context, actor Actor, id int32) (*domain.Opportunity, error) {
	opp, err := s.oppRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	charity, err := s.charityRepo.GetByUserID(ctx, actor.UserID)
	if err != nil || charity.ID != opp.CharityID {
		return nil, domain.ErrForbidden
	}
	return opp, nil
}

func (s *opportunityService) loadOwnedOrModerator(ctx context.Context, actor Actor, id int32) (*domain.Opportunity, error) {
	if actor.IsModerator() {
		return s.oppRepo.GetByID(ctx, id)
	}
	return s.loadOwned(ctx, actor, id)
}

func (s *opportunityService) notifyCharityStatus(ctx context.Context, opp *domain.Opportunity, noteType domain.NotificationType, title, message string, priority domain.NotificationPriority, reason string) {
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
		},
	})

	user, err := s.userRepo.GetByID(ctx, charity.UserID)
	if err != nil {
		return
	}
	if err := s.emailSvc.SendOpportunityStatusEmail(ctx, user.Email, user.Name, opp.Title, string(opp.Status), reason); err != nil {
		logger.Warn("Failed to send opportunity status email", "opportunity_id", opp.ID, "error", err)
	}
}

// fanOutToConfirmed notifies and emails every confirmed volunteer on the
// opportunity. Failures are logged per recipient, never propagated.
func (s *opportunityService) fanOutToConfirmed(ctx context.Context, opp *domain.Opportunity, noteType domain.NotificationType, title, message, reason string) {
	apps, err := s.appRepo.ListConfirmedByOpportunity(ctx, opp.ID)
	if err != nil {
		logger.Warn("Failed to list confirmed applications for fan-out", "opportunity_id", opp.ID, "error", err)
		return
	}
	for _, app := range apps {
		vol, err := s.volRepo.GetByID(ctx, app.VolunteerID)
		if err != nil {
			logger.Warn("Failed to load volunteer for fan-out", "volunteer_id", app.VolunteerID, "error", err)
			continue
		}
		_ = s.noteRepo.Create(ctx, &domain.Notification{
			UserID:   vol.UserID,
			Type:     noteType,
			Title:    title,
			Message:  message,
			Priority: domain.PriorityHigh,
			Attributes: map[string]string{
				"opportunity_id": fmt.Sprintf("%d", opp.ID),
			},
		})
		user, err := s.userRepo.GetByID(ctx, vol.UserID)
		if err != nil {
			continue
		}
		if err := s.emailSvc.SendOpportunityStatusEmail(ctx, user.Email, user.Name, opp.Title, string(opp.Status), reason); err != nil {
			logger.Warn("Failed to send opportunity status email", "opportunity_id", opp.ID, "user_id", user.ID, "error", err)
		}
	}
}

func validateOpportunity(opp *domain.Opportunity) error {
	if opp.Title == "" {
		return domain.NewValidationError("title", "title is required")
	}
	if opp.NumberOfVolunteers <= 0 {
		return domain.NewValidationError("number_of_volunteers", "must be positive")
	}
	if opp.StartDate.IsZero() || opp.EndDate.IsZero() {
		return domain.NewValidationError("dates", "start and end dates are required")
	}
	if opp.EndDate.Before(opp.StartDate) {
		return domain.NewValidationError("end_date", "must not be before start date")
	}
	switch opp.LocationType {
	case "", domain.LocationTypeVirtual:
	case domain.LocationTypeInPerson, domain.LocationTypeHybrid:
		if opp.City == "" || opp.State == "" {
			return domain.NewValidationError("location", "city and state are required for in-person opportunities")
		}
	default:
		return domain.NewValidationError("location_type", "unknown location type")
	}
	return nil
}
