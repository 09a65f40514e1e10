package postgres

import (
	"context"
	"database/sql"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"

	"github.com/lib/pq"
)

type volunteerRepository struct {
	db *sql.DB
}

func NewVolunteerRepository(db *sql.DB) repository.VolunteerRepository {
	return &volunteerRepository{db: db}
}

const volunteerColumns = `id, user_id, skills, interests, availability, city, state, approval_status, background_check_status, total_hours_volunteered, is_active, created_on, updated_on`

func (r *volunteerRepository) scan(row interface{ Scan(...any) error }) (*domain.Volunteer, error) {
	v := &domain.Volunteer{}
	err := row.Scan(&v.ID, &v.UserID, pq.Array(&v.Skills), pq.Array(&v.Interests), pq.Array(&v.Availability),
		&v.City, &v.State, &v.ApprovalStatus, &v.BackgroundCheckStatus, &v.TotalHoursVolunteered, &v.IsActive, &v.CreatedOn, &v.UpdatedOn)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return v, nil
}

func (r *volunteerRepository) Create(ctx context.Context, v *domain.Volunteer) error {
	query := `INSERT INTO volunteers (user_id, skills, interests, availability, city, state, approval_status, background_check_status, total_hours_volunteered, is_active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	now := time.Now()
	v.CreatedOn = now
	v.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, v.UserID, pq.Array(v.Skills), pq.Array(v.Interests), pq.Array(v.Availability),
		v.City, v.State, v.ApprovalStatus, v.BackgroundCheckStatus, v.TotalHoursVolunteered, v.IsActive, now, now).Scan(&v.ID)
}

func (r *volunteerRepository) GetByID(ctx context.Context, id int32) (*domain.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteers WHERE id = $1`
	return r.scan(r.db.QueryRowContext(ctx, query, id))
}

func (r *volunteerRepository) GetByUserID(ctx context.Context, userID int32) (*domain.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteers WHERE user_id = $1`
	return r.scan(r.db.QueryRowContext(ctx, query, userID))
}

func (r *volunteerRepository) Update(ctx context.Context, v *domain.Volunteer) error {
	query := `UPDATE volunteers SET skills=$1, interests=$2, availability=$3, city=$4, state=$5, approval_status=$6, background_check_status=$7, is_active=$8, updated_on=$9 WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query, pq.Array(v.Skills), pq.Array(v.Interests), pq.Array(v.Availability),
		v.City, v.State, v.ApprovalStatus, v.BackgroundCheckStatus, v.IsActive, time.Now(), v.ID)
	return err
}

func (r *volunteerRepository) ListApprovedActive(ctx context.Context) ([]domain.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteers WHERE is_active = TRUE AND approval_status = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, domain.VerificationStatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vols []domain.Volunteer
	for rows.Next() {
		v, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		vols = append(vols, *v)
	}
	return vols, rows.Err()
}

func (r *volunteerRepository) AddHours(ctx context.Context, id int32, hours int32) error {
	query := `UPDATE volunteers SET total_hours_volunteered = total_hours_volunteered + $1, updated_on = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, hours, time.Now(), id)
	return err
}
