package postgres_test

import (
	"context"
	"testing"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func opportunityRow(id int32, status domain.OpportunityStatus, previousStatus any) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "charity_id", "title", "description", "category", "required_skills", "number_of_volunteers", "volunteers_confirmed",
		"location_type", "city", "state", "start_date", "end_date", "status", "moderation_status", "visibility",
		"previous_status", "suspended_on", "suspended_by", "suspended_reason", "resumed_on", "resumed_by",
		"closed_on", "closure_notes", "created_on", "updated_on",
	}).AddRow(id, 5, "Community Tutoring", "Help kids read", "Education", "{teaching}", 5, 2,
		"IN_PERSON", "Austin", "TX", now, now.Add(8*time.Hour), string(status), "APPROVED", "PUBLIC",
		previousStatus, nil, nil, nil, nil, nil,
		nil, nil, now, now)
}

func TestOpportunityRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewOpportunityRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM opportunities WHERE id = \\$1").
			WithArgs(int32(100)).
			WillReturnRows(opportunityRow(100, domain.OpportunityStatusPublished, nil))

		opp, err := repo.GetByID(ctx, 100)
		assert.NoError(t, err)
		assert.NotNil(t, opp)
		assert.Equal(t, int32(100), opp.ID)
		assert.Equal(t, domain.OpportunityStatusPublished, opp.Status)
		assert.Nil(t, opp.PreviousStatus)
		assert.Equal(t, []string{"teaching"}, opp.RequiredSkills)
	})

	t.Run("SuspendedRowCarriesPreviousStatus", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM opportunities WHERE id = \\$1").
			WithArgs(int32(101)).
			WillReturnRows(opportunityRow(101, domain.OpportunityStatusSuspended, "IN_PROGRESS"))

		opp, err := repo.GetByID(ctx, 101)
		assert.NoError(t, err)
		if assert.NotNil(t, opp.PreviousStatus) {
			assert.Equal(t, domain.OpportunityStatusInProgress, *opp.PreviousStatus)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM opportunities WHERE id = \\$1").
			WithArgs(int32(999)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestOpportunityRepository_ConfirmVolunteer(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewOpportunityRepository(db)
	ctx := context.Background()

	t.Run("ReservesSlot", func(t *testing.T) {
		mock.ExpectExec("UPDATE opportunities SET volunteers_confirmed = volunteers_confirmed \\+ 1").
			WithArgs(sqlmock.AnyArg(), int32(100)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.ConfirmVolunteer(ctx, 100)
		assert.NoError(t, err)
	})

	t.Run("NoRowsMeansCapacityFull", func(t *testing.T) {
		mock.ExpectExec("UPDATE opportunities SET volunteers_confirmed = volunteers_confirmed \\+ 1").
			WithArgs(sqlmock.AnyArg(), int32(100)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.ConfirmVolunteer(ctx, 100)
		assert.ErrorIs(t, err, domain.ErrCapacityFull)
	})
}

func TestOpportunityRepository_Sweeps(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewOpportunityRepository(db)
	ctx := context.Background()

	t.Run("StartDue", func(t *testing.T) {
		mock.ExpectQuery("UPDATE opportunities SET status = \\$1, updated_on = NOW\\(\\)").
			WithArgs(domain.OpportunityStatusInProgress, domain.OpportunityStatusPublished, domain.VerificationStatusApproved).
			WillReturnRows(opportunityRow(100, domain.OpportunityStatusInProgress, nil))

		opps, err := repo.StartDue(ctx)
		assert.NoError(t, err)
		assert.Len(t, opps, 1)
		assert.Equal(t, domain.OpportunityStatusInProgress, opps[0].Status)
	})

	t.Run("CompleteExpired", func(t *testing.T) {
		mock.ExpectQuery("UPDATE opportunities SET status = \\$1, closed_on = NOW\\(\\)").
			WithArgs(domain.OpportunityStatusCompleted, domain.OpportunityStatusInProgress).
			WillReturnRows(opportunityRow(100, domain.OpportunityStatusCompleted, nil))

		opps, err := repo.CompleteExpired(ctx)
		assert.NoError(t, err)
		assert.Len(t, opps, 1)
		assert.Equal(t, domain.OpportunityStatusCompleted, opps[0].Status)
	})

	t.Run("ListStartingWithin", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM opportunities").
			WithArgs(domain.OpportunityStatusPublished, int32(48)).
			WillReturnRows(opportunityRow(100, domain.OpportunityStatusPublished, nil))

		opps, err := repo.ListStartingWithin(ctx, 48)
		assert.NoError(t, err)
		assert.Len(t, opps, 1)
	})
}
