package repository

import (
	"context"

	"volunteerhub-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type CharityRepository interface {
	Create(ctx context.Context, charity *domain.Charity) error
	GetByID(ctx context.Context, id int32) (*domain.Charity, error)
	GetByUserID(ctx context.Context, userID int32) (*domain.Charity, error)
	Update(ctx context.Context, charity *domain.Charity) error
	ListByVerificationStatus(ctx context.Context, status domain.VerificationStatus, page, pageSize int32) ([]domain.Charity, int32, error)
}

type VolunteerRepository interface {
	Create(ctx context.Context, vol *domain.Volunteer) error
	GetByID(ctx context.Context, id int32) (*domain.Volunteer, error)
	GetByUserID(ctx context.Context, userID int32) (*domain.Volunteer, error)
	Update(ctx context.Context, vol *domain.Volunteer) error
	// ListApprovedActive returns the candidate pool for the match scorer.
	ListApprovedActive(ctx context.Context) ([]domain.Volunteer, error)
	AddHours(ctx context.Context, id int32, hours int32) error
}

type OpportunityRepository interface {
	Create(ctx context.Context, opp *domain.Opportunity) error
	GetByID(ctx context.Context, id int32) (*domain.Opportunity, error)
	Update(ctx context.Context, opp *domain.Opportunity) error
	Delete(ctx context.Context, id int32) error
	ListByCharity(ctx context.Context, charityID int32, status string, page, pageSize int32) ([]domain.Opportunity, int32, error)
	Search(ctx context.Context, query, city, state, category, status string, page, pageSize int32) ([]domain.Opportunity, int32, error)

	// ConfirmVolunteer atomically increments volunteers_confirmed iff below
	// capacity. Returns domain.ErrCapacityFull when no slot is left.
	ConfirmVolunteer(ctx context.Context, id int32) error

	// Lifecycle sweeps used by the scheduled jobs.
	StartDue(ctx context.Context) ([]domain.Opportunity, error)
	CompleteExpired(ctx context.Context) ([]domain.Opportunity, error)
	ListStartingWithin(ctx context.Context, hours int32) ([]domain.Opportunity, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id int32) (*domain.Application, error)
	GetByPair(ctx context.Context, opportunityID, volunteerID int32) (*domain.Application, error)
	Update(ctx context.Context, app *domain.Application) error
	ListByOpportunity(ctx context.Context, opportunityID int32, status string, page, pageSize int32) ([]domain.Application, int32, error)
	ListByVolunteer(ctx context.Context, volunteerID int32, status string, page, pageSize int32) ([]domain.Application, int32, error)
	// ListVolunteerIDsWithOpenApplication returns volunteers holding a
	// non-withdrawn, non-rejected application for the opportunity. The match
	// scorer excludes them from the candidate pool.
	ListVolunteerIDsWithOpenApplication(ctx context.Context, opportunityID int32) ([]int32, error)
	ListConfirmedByOpportunity(ctx context.Context, opportunityID int32) ([]domain.Application, error)
}

type AttendanceRepository interface {
	Create(ctx context.Context, att *domain.Attendance) error
	GetByID(ctx context.Context, id int32) (*domain.Attendance, error)
	GetByPair(ctx context.Context, opportunityID, volunteerID int32) (*domain.Attendance, error)
	Update(ctx context.Context, att *domain.Attendance) error
	ListByOpportunity(ctx context.Context, opportunityID int32) ([]domain.Attendance, error)
	ListByVolunteer(ctx context.Context, volunteerID int32, page, pageSize int32) ([]domain.Attendance, int32, error)
}

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, id int32) (*domain.Report, error)
	Update(ctx context.Context, report *domain.Report) error
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Report, int32, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
	CountUnread(ctx context.Context, userID int32) (int32, error)
}
