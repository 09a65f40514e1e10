package service_test

import (
	"context"
	"testing"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type oppServiceMocks struct {
	oppRepo     *MockOpportunityRepo
	appRepo     *MockApplicationRepo
	charityRepo *MockCharityRepo
	volRepo     *MockVolunteerRepo
	userRepo    *MockUserRepo
	emailSvc    *MockEmailService
	noteRepo    *MockNotificationRepo
}

func newOpportunityService() (service.OpportunityService, *oppServiceMocks) {
	m := &oppServiceMocks{
		oppRepo:     new(MockOpportunityRepo),
		appRepo:     new(MockApplicationRepo),
		charityRepo: new(MockCharityRepo),
		volRepo:     new(MockVolunteerRepo),
		userRepo:    new(MockUserRepo),
		emailSvc:    new(MockEmailService),
		noteRepo:    new(MockNotificationRepo),
	}
	svc := service.NewOpportunityService(m.oppRepo, m.appRepo, m.charityRepo, m.volRepo, m.userRepo, m.emailSvc, m.noteRepo)
	return svc, m
}

func (m *oppServiceMocks) expectCharityNotice(ctx context.Context) {
	m.charityRepo.On("GetByID", ctx, int32(5)).Return(&domain.Charity{ID: 5, UserID: 50}, nil)
	m.noteRepo.On("Create", ctx, mock.Anything).Return(nil)
	m.userRepo.On("GetByID", ctx, int32(50)).Return(&domain.User{ID: 50, Email: "org@test.com", Name: "Org"}, nil)
	m.emailSvc.On("SendOpportunityStatusEmail", ctx, "org@test.com", "Org", mock.Anything, mock.Anything, mock.Anything).Return(nil)
}

func TestOpportunityService_Create(t *testing.T) {
	ctx := context.Background()
	charityActor := service.Actor{UserID: 50, Role: domain.UserRoleCharity}

	t.Run("StartsAsDraftPendingModeration", func(t *testing.T) {
		svc, m := newOpportunityService()
		m.charityRepo.On("GetByUserID", ctx, int32(50)).Return(&domain.Charity{
			ID: 5, UserID: 50, IsActive: true, VerificationStatus: domain.VerificationStatusApproved,
		}, nil)
		m.oppRepo.On("Create", ctx, mock.MatchedBy(func(o *domain.Opportunity) bool {
			return o.Status == domain.OpportunityStatusDraft &&
				o.ModerationStatus == domain.VerificationStatusPending &&
				o.CharityID == 5
		})).Return(nil)

		opp := openOpportunity(0, 0)
		opp.Status = ""
		opp.ModerationStatus = ""
		err := svc.Create(ctx, charityActor, opp)
		require.NoError(t, err)
	})

	t.Run("RejectsUnverifiedCharity", func(t *testing.T) {
		svc, m := newOpportunityService()
		m.charityRepo.On("GetByUserID", ctx, int32(50)).Return(&domain.Charity{
			ID: 5, UserID: 50, IsActive: true, VerificationStatus: domain.VerificationStatusPending,
		}, nil)

		err := svc.Create(ctx, charityActor, openOpportunity(0, 0))
		assert.ErrorIs(t, err, domain.ErrActorNotApproved)
	})

	t.Run("RejectsInvertedDates", func(t *testing.T) {
		svc, m := newOpportunityService()
		m.charityRepo.On("GetByUserID", ctx, int32(50)).Return(&domain.Charity{
			ID: 5, UserID: 50, IsActive: true, VerificationStatus: domain.VerificationStatusApproved,
		}, nil)

		opp := openOpportunity(0, 0)
		opp.StartDate = time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
		opp.EndDate = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		err := svc.Create(ctx, charityActor, opp)
		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})
}

func TestOpportunityService_SuspendResume(t *testing.T) {
	ctx := context.Background()
	moderator := service.Actor{UserID: 99, Role: domain.UserRoleModerator}

	t.Run("SuspendRemembersPreviousStatus", func(t *testing.T) {
		svc, m := newOpportunityService()
		opp := openOpportunity(100, 5)
		opp.Status = domain.OpportunityStatusInProgress
		m.oppRepo.On("GetByID", ctx, int32(100)).Return(opp, nil)
		m.oppRepo.On("Update", ctx, mock.MatchedBy(func(o *domain.Opportunity) bool {
			return o.Status == domain.OpportunityStatusSuspended &&
				o.PreviousStatus != nil && *o.PreviousStatus == domain.OpportunityStatusInProgress &&
				o.SuspendedBy != nil && *o.SuspendedBy == 99 &&
				o.SuspendedReason == "reported content"
		})).Return(nil)
		m.expectCharityNotice(ctx)

		updated, err := svc.Suspend(ctx, moderator, 100, "reported content")
		require.NoError(t, err)
		assert.Equal(t, domain.OpportunityStatusSuspended, updated.Status)
	})

	t.Run("SuspendRequiresModerator", func(t *testing.T) {
		svc, _ := newOpportunityService()
		_, err := svc.Suspend(ctx, service.Actor{UserID: 50, Role: domain.UserRoleCharity}, 100, "nope")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("SuspendRequiresReason", func(t *testing.T) {
		svc, _ := newOpportunityService()
		_, err := svc.Suspend(ctx, moderator, 100, "")
		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("ResumeRestoresPreviousStatus", func(t *testing.T) {
		svc, m := newOpportunityService()
		prev := domain.OpportunityStatusInProgress
		opp := openOpportunity(100, 5)
		opp.Status = domain.OpportunityStatusSuspended
		opp.PreviousStatus = &prev
		m.oppRepo.On("GetByID", ctx, int32(100)).Return(opp, nil)
		m.oppRepo.On("Update", ctx, mock.MatchedBy(func(o *domain.Opportunity) bool {
			return o.Status == domain.OpportunityStatusInProgress &&
				o.PreviousStatus == nil &&
				o.ResumedBy != nil && *o.ResumedBy == 99
		})).Return(nil)
		m.expectCharityNotice(ctx)

		updated, err := svc.Resume(ctx, moderator, 100)
		require.NoError(t, err)
		assert.Equal(t, domain.OpportunityStatusInProgress, updated.Status)
	})

	t.Run("ResumeFallsBackToPublished", func(t *testing.T) {
		svc, m := newOpportunityService()
		opp := openOpportunity(100, 5)
		opp.Status = domain.OpportunityStatusSuspended
		opp.PreviousStatus = nil
		m.oppRepo.On("GetByID", ctx, int32(100)).Return(opp, nil)
		m.oppRepo.On("Update", ctx, mock.MatchedBy(func(o *domain.Opportunity) bool {
			return o.Status == domain.OpportunityStatusPublished
		})).Return(nil)
		m.expectCharityNotice(ctx)

		updated, err := svc.Resume(ctx, moderator, 100)
		require.NoError(t, err)
		assert.Equal(t, domain.OpportunityStatusPublished, updated.Status)
	})

	t.Run("ResumeRequiresSuspended", func(t *testing.T) {
		svc, m := newOpportunityService()
		m.oppRepo.On("GetByID", ctx, int32(100)).Return(openOpportunity(100, 5), nil)

		_, err := svc.Resume(ctx, moderator, 100)
		var stateErr *domain.StateError
		assert.ErrorAs(t, err, &stateErr)
	})
}

func TestOpportunityService_Close(t *testing.T) {
	ctx := context.Background()
	charityActor := service.Actor{UserID: 50, Role: domain.UserRoleCharity}

	t.Run("CancelNotifiesConfirmedVolunteers", func(t *testing.T) {
		svc, m := newOpportunityService()
		opp := openOpportunity(100, 5)
		m.oppRepo.On("GetByID", ctx, int32(100)).Return(opp, nil)
		m.charityRepo.On("GetByUserID", ctx, int32(50)).Return(&domain.Charity{ID: 5, UserID: 50}, nil)
		m.oppRepo.On("Update", ctx, mock.MatchedBy(func(o *domain.Opportunity) bool {
			return o.Status == domain.OpportunityStatusCancelled &&
				o.ClosedOn != nil &&
				o.ClosureNotes == "venue unavailable"
		})).Return(nil)
		m.appRepo.On("ListConfirmedByOpportunity", ctx, int32(100)).Return([]domain.Application{
			{ID: 7, OpportunityID: 100, VolunteerID: 1, Status: domain.ApplicationStatusConfirmed},
		}, nil)
		m.volRepo.On("GetByID", ctx, int32(1)).Return(approvedVolunteer(1, 10), nil)
		m.noteRepo.On("Create", ctx, mock.Anything).Return(nil)
		m.userRepo.On("GetByID", ctx, int32(10)).Return(&domain.User{ID: 10, Email: "v@test.com", Name: "Val"}, nil)
		m.emailSvc.On("SendOpportunityStatusEmail", ctx, "v@test.com", "Val", "Community Tutoring", "CANCELLED", "venue unavailable").Return(nil)

		updated, err := svc.Close(ctx, charityActor, 100, domain.OpportunityStatusCancelled, "venue unavailable")
		require.NoError(t, err)
		assert.Equal(t, domain.OpportunityStatusCancelled, updated.Status)
		m.emailSvc.AssertExpectations(t)
	})

	t.Run("CompleteRequiresLiveState", func(t *testing.T) {
		svc, m := newOpportunityService()
		opp := openOpportunity(100, 5)
		opp.Status = domain.OpportunityStatusDraft
		m.oppRepo.On("GetByID", ctx, int32(100)).Return(opp, nil)
		m.charityRepo.On("GetByUserID", ctx, int32(50)).Return(&domain.Charity{ID: 5, UserID: 50}, nil)

		_, err := svc.Close(ctx, charityActor, 100, domain.OpportunityStatusCompleted, "")
		var stateErr *domain.StateError
		assert.ErrorAs(t, err, &stateErr)
	})

	t.Run("TerminalStatesAbsorb", func(t *testing.T) {
		for _, status := range []domain.OpportunityStatus{domain.OpportunityStatusCompleted, domain.OpportunityStatusCancelled} {
			svc, m := newOpportunityService()
			opp := openOpportunity(100, 5)
			opp.Status = status
			m.oppRepo.On("GetByID", ctx, int32(100)).Return(opp, nil)
			m.charityRepo.On("GetByUserID", ctx, int32(50)).Return(&domain.Charity{ID: 5, UserID: 50}, nil)

			_, err := svc.Close(ctx, charityActor, 100, domain.OpportunityStatusCancelled, "")
			var stateErr *domain.StateError
			assert.ErrorAs(t, err, &stateErr, "status %s should absorb close", status)
		}
	})

	t.Run("RejectsOtherTargets", func(t *testing.T) {
		svc, _ := newOpportunityService()
		_, err := svc.Close(ctx, charityActor, 100, domain.OpportunityStatusSuspended, "")
		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})
}

func TestOpportunityService_PublishAndDelete(t *testing.T) {
	ctx := context.Background()
	charityActor := service.Actor{UserID: 50, Role: domain.UserRoleCharity}

	t.Run("PublishFromDraft", func(t *testing.T) {
		svc, m := newOpportunityService()
		opp := openOpportunity(100, 5)
		opp.Status = domain.OpportunityStatusDraft
		m.oppRepo.On("GetByID", ctx, int32(100)).Return(opp, nil)
		m.charityRepo.On("GetByUserID", ctx, int32(50)).Return(&domain.Charity{ID: 5, UserID: 50}, nil)
		m.oppRepo.On("Update", ctx, mock.MatchedBy(func(o *domain.Opportunity) bool {
			return o.Status == domain.OpportunityStatusPublished
		})).Return(nil)

		updated, err := svc.Publish(ctx, charityActor, 100)
		require.NoError(t, err)
		assert.Equal(t, domain.OpportunityStatusPublished, updated.Status)
	})

	t.Run("PublishOnlyFromDraft", func(t *testing.T) {
		svc, m := newOpportunityService()
		m.oppRepo.On("GetByID", ctx, int32(100)).Return(openOpportunity(100, 5), nil)
		m.charityRepo.On("GetByUserID", ctx, int32(50)).Return(&domain.Charity{ID: 5, UserID: 50}, nil)

		_, err := svc.Publish(ctx, charityActor, 100)
		var stateErr *domain.StateError
		assert.ErrorAs(t, err, &stateErr)
	})

	t.Run("DeleteIsModeratorOnly", func(t *testing.T) {
		svc, m := newOpportunityService()

		err := svc.Delete(ctx, charityActor, 100, "spam listing")
		assert.ErrorIs(t, err, domain.ErrForbidden)
		m.oppRepo.AssertNotCalled(t, "Delete", ctx, int32(100))
	})

	t.Run("DeleteRequiresReason", func(t *testing.T) {
		svc, _ := newOpportunityService()

		err := svc.Delete(ctx, service.Actor{UserID: 99, Role: domain.UserRoleModerator}, 100, "")
		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("DeleteRemovesRecord", func(t *testing.T) {
		svc, m := newOpportunityService()
		m.oppRepo.On("GetByID", ctx, int32(100)).Return(openOpportunity(100, 5), nil)
		m.oppRepo.On("Delete", ctx, int32(100)).Return(nil)

		err := svc.Delete(ctx, service.Actor{UserID: 99, Role: domain.UserRoleModerator}, 100, "spam listing")
		assert.NoError(t, err)
		m.oppRepo.AssertExpectations(t)
	})

	t.Run("OwnershipEnforced", func(t *testing.T) {
		svc, m := newOpportunityService()
		m.oppRepo.On("GetByID", ctx, int32(100)).Return(openOpportunity(100, 5), nil)
		m.charityRepo.On("GetByUserID", ctx, int32(51)).Return(&domain.Charity{ID: 6, UserID: 51}, nil)

		_, err := svc.Publish(ctx, service.Actor{UserID: 51, Role: domain.UserRoleCharity}, 100)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
