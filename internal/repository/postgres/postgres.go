package postgres

import (
	"database/sql"
	"errors"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.CharityRepository
	repository.VolunteerRepository
	repository.OpportunityRepository
	repository.ApplicationRepository
	repository.AttendanceRepository
	repository.ReportRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		CharityRepository:      NewCharityRepository(db),
		VolunteerRepository:    NewVolunteerRepository(db),
		OpportunityRepository:  NewOpportunityRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		AttendanceRepository:   NewAttendanceRepository(db),
		ReportRepository:       NewReportRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}

const pqUniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation, used to map duplicate (opportunity, volunteer) pairs onto the
// domain conflict errors.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// mapNotFound translates sql.ErrNoRows into the domain sentinel.
func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
