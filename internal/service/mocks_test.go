package service_test

import (
	"context"

	"volunteerhub-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockCharityRepo struct{ mock.Mock }

func (m *MockCharityRepo) Create(ctx context.Context, charity *domain.Charity) error {
	return m.Called(ctx, charity).Error(0)
}

func (m *MockCharityRepo) GetByID(ctx context.Context, id int32) (*domain.Charity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charity), args.Error(1)
}

func (m *MockCharityRepo) GetByUserID(ctx context.Context, userID int32) (*domain.Charity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charity), args.Error(1)
}

func (m *MockCharityRepo) Update(ctx context.Context, charity *domain.Charity) error {
	return m.Called(ctx, charity).Error(0)
}

func (m *MockCharityRepo) ListByVerificationStatus(ctx context.Context, status domain.VerificationStatus, page, pageSize int32) ([]domain.Charity, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Charity), args.Get(1).(int32), args.Error(2)
}

type MockVolunteerRepo struct{ mock.Mock }

func (m *MockVolunteerRepo) Create(ctx context.Context, vol *domain.Volunteer) error {
	return m.Called(ctx, vol).Error(0)
}

func (m *MockVolunteerRepo) GetByID(ctx context.Context, id int32) (*domain.Volunteer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepo) GetByUserID(ctx context.Context, userID int32) (*domain.Volunteer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepo) Update(ctx context.Context, vol *domain.Volunteer) error {
	return m.Called(ctx, vol).Error(0)
}

func (m *MockVolunteerRepo) ListApprovedActive(ctx context.Context) ([]domain.Volunteer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepo) AddHours(ctx context.Context, id int32, hours int32) error {
	return m.Called(ctx, id, hours).Error(0)
}

type MockOpportunityRepo struct{ mock.Mock }

func (m *MockOpportunityRepo) Create(ctx context.Context, opp *domain.Opportunity) error {
	return m.Called(ctx, opp).Error(0)
}

func (m *MockOpportunityRepo) GetByID(ctx context.Context, id int32) (*domain.Opportunity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Opportunity), args.Error(1)
}

func (m *MockOpportunityRepo) Update(ctx context.Context, opp *domain.Opportunity) error {
	return m.Called(ctx, opp).Error(0)
}

func (m *MockOpportunityRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOpportunityRepo) ListByCharity(ctx context.Context, charityID int32, status string, page, pageSize int32) ([]domain.Opportunity, int32, error) {
	args := m.Called(ctx, charityID, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Opportunity), args.Get(1).(int32), args.Error(2)
}

func (m *MockOpportunityRepo) Search(ctx context.Context, query, city, state, category, status string, page, pageSize int32) ([]domain.Opportunity, int32, error) {
	args := m.Called(ctx, query, city, state, category, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Opportunity), args.Get(1).(int32), args.Error(2)
}

func (m *MockOpportunityRepo) ConfirmVolunteer(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOpportunityRepo) StartDue(ctx context.Context) ([]domain.Opportunity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Opportunity), args.Error(1)
}

func (m *MockOpportunityRepo) CompleteExpired(ctx context.Context) ([]domain.Opportunity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Opportunity), args.Error(1)
}

func (m *MockOpportunityRepo) ListStartingWithin(ctx context.Context, hours int32) ([]domain.Opportunity, error) {
	args := m.Called(ctx, hours)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Opportunity), args.Error(1)
}

type MockApplicationRepo struct{ mock.Mock }

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id int32) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetByPair(ctx context.Context, opportunityID, volunteerID int32) (*domain.Application, error) {
	args := m.Called(ctx, opportunityID, volunteerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) Update(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) ListByOpportunity(ctx context.Context, opportunityID int32, status string, page, pageSize int32) ([]domain.Application, int32, error) {
	args := m.Called(ctx, opportunityID, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Application), args.Get(1).(int32), args.Error(2)
}

func (m *MockApplicationRepo) ListByVolunteer(ctx context.Context, volunteerID int32, status string, page, pageSize int32) ([]domain.Application, int32, error) {
	args := m.Called(ctx, volunteerID, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Application), args.Get(1).(int32), args.Error(2)
}

func (m *MockApplicationRepo) ListVolunteerIDsWithOpenApplication(ctx context.Context, opportunityID int32) ([]int32, error) {
	args := m.Called(ctx, opportunityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int32), args.Error(1)
}

func (m *MockApplicationRepo) ListConfirmedByOpportunity(ctx context.Context, opportunityID int32) ([]domain.Application, error) {
	args := m.Called(ctx, opportunityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

type MockAttendanceRepo struct{ mock.Mock }

func (m *MockAttendanceRepo) Create(ctx context.Context, att *domain.Attendance) error {
	return m.Called(ctx, att).Error(0)
}

func (m *MockAttendanceRepo) GetByID(ctx context.Context, id int32) (*domain.Attendance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attendance), args.Error(1)
}

func (m *MockAttendanceRepo) GetByPair(ctx context.Context, opportunityID, volunteerID int32) (*domain.Attendance, error) {
	args := m.Called(ctx, opportunityID, volunteerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attendance), args.Error(1)
}

func (m *MockAttendanceRepo) Update(ctx context.Context, att *domain.Attendance) error {
	return m.Called(ctx, att).Error(0)
}

func (m *MockAttendanceRepo) ListByOpportunity(ctx context.Context, opportunityID int32) ([]domain.Attendance, error) {
	args := m.Called(ctx, opportunityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attendance), args.Error(1)
}

func (m *MockAttendanceRepo) ListByVolunteer(ctx context.Context, volunteerID int32, page, pageSize int32) ([]domain.Attendance, int32, error) {
	args := m.Called(ctx, volunteerID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Attendance), args.Get(1).(int32), args.Error(2)
}

type MockReportRepo struct{ mock.Mock }

func (m *MockReportRepo) Create(ctx context.Context, report *domain.Report) error {
	return m.Called(ctx, report).Error(0)
}

func (m *MockReportRepo) GetByID(ctx context.Context, id int32) (*domain.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportRepo) Update(ctx context.Context, report *domain.Report) error {
	return m.Called(ctx, report).Error(0)
}

func (m *MockReportRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Report, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Report), args.Get(1).(int32), args.Error(2)
}

type MockNotificationRepo struct{ mock.Mock }

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	return m.Called(ctx, note).Error(0)
}

func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}

func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *MockNotificationRepo) CountUnread(ctx context.Context, userID int32) (int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int32), args.Error(1)
}

type MockEmailService struct{ mock.Mock }

func (m *MockEmailService) SendApplicationStatusEmail(ctx context.Context, email, name, opportunityTitle, status, notes string) error {
	return m.Called(ctx, email, name, opportunityTitle, status, notes).Error(0)
}

func (m *MockEmailService) SendInfoRequestEmail(ctx context.Context, email, name, opportunityTitle, message string) error {
	return m.Called(ctx, email, name, opportunityTitle, message).Error(0)
}

func (m *MockEmailService) SendOpportunityStatusEmail(ctx context.Context, email, name, opportunityTitle, status, reason string) error {
	return m.Called(ctx, email, name, opportunityTitle, status, reason).Error(0)
}

func (m *MockEmailService) SendOpportunityReminderEmail(ctx context.Context, email, name, opportunityTitle string, startDate string) error {
	return m.Called(ctx, email, name, opportunityTitle, startDate).Error(0)
}

func (m *MockEmailService) SendAccountStatusEmail(ctx context.Context, email, name, status, notes string) error {
	return m.Called(ctx, email, name, status, notes).Error(0)
}
