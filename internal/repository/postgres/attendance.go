package postgres

import (
	"context"
	"database/sql"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type attendanceRepository struct {
	db *sql.DB
}

func NewAttendanceRepository(db *sql.DB) repository.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, opportunity_id, volunteer_id, status, hours_worked, charity_rating, volunteer_rating, recorded_by, created_on, updated_on`

func (r *attendanceRepository) scan(row interface{ Scan(...any) error }) (*domain.Attendance, error) {
	a := &domain.Attendance{}
	err := row.Scan(&a.ID, &a.OpportunityID, &a.VolunteerID, &a.Status, &a.HoursWorked,
		&a.CharityRating, &a.VolunteerRating, &a.RecordedBy, &a.CreatedOn, &a.UpdatedOn)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return a, nil
}

func (r *attendanceRepository) Create(ctx context.Context, a *domain.Attendance) error {
	query := `INSERT INTO attendance (opportunity_id, volunteer_id, status, hours_worked, charity_rating, volunteer_rating, recorded_by, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	a.CreatedOn = now
	a.UpdatedOn = now
	err := r.db.QueryRowContext(ctx, query, a.OpportunityID, a.VolunteerID, a.Status, a.HoursWorked,
		a.CharityRating, a.VolunteerRating, a.RecordedBy, now, now).Scan(&a.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateAttendance
	}
	return err
}

func (r *attendanceRepository) GetByID(ctx context.Context, id int32) (*domain.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE id = $1`
	return r.scan(r.db.QueryRowContext(ctx, query, id))
}

func (r *attendanceRepository) GetByPair(ctx context.Context, opportunityID, volunteerID int32) (*domain.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE opportunity_id = $1 AND volunteer_id = $2`
	return r.scan(r.db.QueryRowContext(ctx, query, opportunityID, volunteerID))
}

func (r *attendanceRepository) Update(ctx context.Context, a *domain.Attendance) error {
	query := `UPDATE attendance SET status=$1, hours_worked=$2, charity_rating=$3, volunteer_rating=$4, recorded_by=$5, updated_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, a.Status, a.HoursWorked, a.CharityRating, a.VolunteerRating, a.RecordedBy, time.Now(), a.ID)
	return err
}

func (r *attendanceRepository) ListByOpportunity(ctx context.Context, opportunityID int32) ([]domain.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE opportunity_id = $1 ORDER BY volunteer_id`
	rows, err := r.db.QueryContext(ctx, query, opportunityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Attendance
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *a)
	}
	return records, rows.Err()
}

func (r *attendanceRepository) ListByVolunteer(ctx context.Context, volunteerID int32, page, pageSize int32) ([]domain.Attendance, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM attendance WHERE volunteer_id = $1`, volunteerID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE volunteer_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, volunteerID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []domain.Attendance
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, *a)
	}
	return records, count, rows.Err()
}
