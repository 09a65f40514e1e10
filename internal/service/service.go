package service

import (
	"context"

	"volunteerhub-backend/internal/domain"
)

// Actor identifies the authenticated caller of every operation. The identity
// layer supplies it; services perform the role and ownership checks.
type Actor struct {
	UserID int32
	Role   domain.UserRole
}

func (a Actor) IsModerator() bool { return a.Role == domain.UserRoleModerator }

type AuthService interface {
	Signup(ctx context.Context, name, email, password string, role domain.UserRole) (*domain.User, string, string, error)
	Login(ctx context.Context, email, password string) (string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type VolunteerService interface {
	CreateProfile(ctx context.Context, actor Actor, vol *domain.Volunteer) error
	GetProfile(ctx context.Context, volunteerID int32) (*domain.Volunteer, error)
	GetOwnProfile(ctx context.Context, actor Actor) (*domain.Volunteer, error)
	UpdateProfile(ctx context.Context, actor Actor, vol *domain.Volunteer) error
}

type CharityService interface {
	CreateProfile(ctx context.Context, actor Actor, charity *domain.Charity) error
	GetProfile(ctx context.Context, charityID int32) (*domain.Charity, error)
	GetOwnProfile(ctx context.Context, actor Actor) (*domain.Charity, error)
	UpdateProfile(ctx context.Context, actor Actor, charity *domain.Charity) error
}

type OpportunityService interface {
	Create(ctx context.Context, actor Actor, opp *domain.Opportunity) error
	Get(ctx context.Context, id int32) (*domain.Opportunity, error)
	Update(ctx context.Context, actor Actor, opp *domain.Opportunity) error
	Publish(ctx context.Context, actor Actor, id int32) (*domain.Opportunity, error)
	Suspend(ctx context.Context, actor Actor, id int32, reason string) (*domain.Opportunity, error)
	Resume(ctx context.Context, actor Actor, id int32) (*domain.Opportunity, error)
	Close(ctx context.Context, actor Actor, id int32, target domain.OpportunityStatus, notes string) (*domain.Opportunity, error)
	Delete(ctx context.Context, actor Actor, id int32, reason string) error
	Moderate(ctx context.Context, actor Actor, id int32, decision domain.VerificationStatus, notes string) (*domain.Opportunity, error)
	ListByCharity(ctx context.Context, charityID int32, status string, page, pageSize int32) ([]domain.Opportunity, int32, error)
	Search(ctx context.Context, query, city, state, category, status string, page, pageSize int32) ([]domain.Opportunity, int32, error)
}

type ApplicationService interface {
	Submit(ctx context.Context, actor Actor, opportunityID int32, coverMessage string, hoursCommitted int32) (*domain.Application, error)
	Get(ctx context.Context, actor Actor, id int32) (*domain.Application, error)
	RequestInfo(ctx context.Context, actor Actor, id int32, fields []string, message string) (*domain.Application, error)
	ProvideInfo(ctx context.Context, actor Actor, id int32, answers map[string]string) (*domain.Application, error)
	Approve(ctx context.Context, actor Actor, id int32, notes string) (*domain.Application, error)
	Reject(ctx context.Context, actor Actor, id int32, notes string) (*domain.Application, error)
	Confirm(ctx context.Context, actor Actor, id int32, committedHours int32) (*domain.Application, error)
	Withdraw(ctx context.Context, actor Actor, id int32, reason string) (*domain.Application, error)
	RequireBackgroundCheck(ctx context.Context, actor Actor, id int32) (*domain.Application, error)
	FlagForModeration(ctx context.Context, actor Actor, id int32) (*domain.Application, error)
	ResolveModeratorReview(ctx context.Context, actor Actor, id int32, decision domain.ModeratorReviewStatus) (*domain.Application, error)
	ListByOpportunity(ctx context.Context, actor Actor, opportunityID int32, status string, page, pageSize int32) ([]domain.Application, int32, error)
	ListByVolunteer(ctx context.Context, actor Actor, status string, page, pageSize int32) ([]domain.Application, int32, error)
}

// MatchOptions filters the ranked candidate list.
type MatchOptions struct {
	MinScore float64
	Limit    int
}

type MatchingService interface {
	FindMatches(ctx context.Context, actor Actor, opportunityID int32, opts MatchOptions) ([]domain.MatchResult, domain.MatchSummary, error)
}

type AttendanceService interface {
	Record(ctx context.Context, actor Actor, opportunityID, volunteerID int32, status domain.AttendanceStatus, hoursWorked int32) (*domain.Attendance, error)
	RateVolunteer(ctx context.Context, actor Actor, attendanceID int32, rating int32) (*domain.Attendance, error)
	RateCharity(ctx context.Context, actor Actor, attendanceID int32, rating int32) (*domain.Attendance, error)
	ListByOpportunity(ctx context.Context, actor Actor, opportunityID int32) ([]domain.Attendance, error)
	ListByVolunteer(ctx context.Context, actor Actor, page, pageSize int32) ([]domain.Attendance, int32, error)
}

type ModerationService interface {
	ReviewCharity(ctx context.Context, actor Actor, charityID int32, decision domain.VerificationStatus, notes string) (*domain.Charity, error)
	ReviewVolunteer(ctx context.Context, actor Actor, volunteerID int32, decision domain.VerificationStatus) (*domain.Volunteer, error)
	ListPendingCharities(ctx context.Context, actor Actor, page, pageSize int32) ([]domain.Charity, int32, error)

	CreateReport(ctx context.Context, actor Actor, report *domain.Report) error
	GetReport(ctx context.Context, actor Actor, id int32) (*domain.Report, error)
	StartReview(ctx context.Context, actor Actor, id int32) (*domain.Report, error)
	Resolve(ctx context.Context, actor Actor, id int32, resolution, actionTaken string) (*domain.Report, error)
	Dismiss(ctx context.Context, actor Actor, id int32, resolution string) (*domain.Report, error)
	ListReports(ctx context.Context, actor Actor, status string, page, pageSize int32) ([]domain.Report, int32, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
	UnreadCount(ctx context.Context, userID int32) (int32, error)
}

type EmailService interface {
	SendApplicationStatusEmail(ctx context.Context, email, name, opportunityTitle, status, notes string) error
	SendInfoRequestEmail(ctx context.Context, email, name, opportunityTitle, message string) error
	SendOpportunityStatusEmail(ctx context.Context, email, name, opportunityTitle, status, reason string) error
	SendOpportunityReminderEmail(ctx context.Context, email, name, opportunityTitle string, startDate string) error
	SendAccountStatusEmail(ctx context.Context, email, name, status, notes string) error
}
