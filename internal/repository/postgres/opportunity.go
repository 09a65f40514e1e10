package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"

	"github.com/lib/pq"
)

type opportunityRepository struct {
	db *sql.DB
}

func NewOpportunityRepository(db *sql.DB) repository.OpportunityRepository {
	return &opportunityRepository{db: db}
}

const opportunityColumns = `id, charity_id, title, description, category, required_skills, number_of_volunteers, volunteers_confirmed,
	location_type, city, state, start_date, end_date, status, moderation_status, visibility,
	previous_status, suspended_on, suspended_by, suspended_reason, resumed_on, resumed_by,
	closed_on, closure_notes, created_on, updated_on`

func (r *opportunityRepository) scan(row interface{ Scan(...any) error }) (*domain.Opportunity, error) {
	o := &domain.Opportunity{}
	var prevStatus sql.NullString
	var suspendedReason, closureNotes sql.NullString
	err := row.Scan(&o.ID, &o.CharityID, &o.Title, &o.Description, &o.Category, pq.Array(&o.RequiredSkills),
		&o.NumberOfVolunteers, &o.VolunteersConfirmed, &o.LocationType, &o.City, &o.State,
		&o.StartDate, &o.EndDate, &o.Status, &o.ModerationStatus, &o.Visibility,
		&prevStatus, &o.SuspendedOn, &o.SuspendedBy, &suspendedReason, &o.ResumedOn, &o.ResumedBy,
		&o.ClosedOn, &closureNotes, &o.CreatedOn, &o.UpdatedOn)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if prevStatus.Valid {
		ps := domain.OpportunityStatus(prevStatus.String)
		o.PreviousStatus = &ps
	}
	o.SuspendedReason = suspendedReason.String
	o.ClosureNotes = closureNotes.String
	return o, nil
}

func (r *opportunityRepository) Create(ctx context.Context, o *domain.Opportunity) error {
	query := `INSERT INTO opportunities (charity_id, title, description, category, required_skills, number_of_volunteers, volunteers_confirmed,
	          location_type, city, state, start_date, end_date, status, moderation_status, visibility, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17) RETURNING id`
	now := time.Now()
	o.CreatedOn = now
	o.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, o.CharityID, o.Title, o.Description, o.Category, pq.Array(o.RequiredSkills),
		o.NumberOfVolunteers, o.VolunteersConfirmed, o.LocationType, o.City, o.State,
		o.StartDate, o.EndDate, o.Status, o.ModerationStatus, o.Visibility, now, now).Scan(&o.ID)
}

func (r *opportunityRepository) GetByID(ctx context.Context, id int32) (*domain.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM opportunities WHERE id = $1`
	return r.scan(r.db.QueryRowContext(ctx, query, id))
}

func (r *opportunityRepository) Update(ctx context.Context, o *domain.Opportunity) error {
	var prevStatus any
	if o.PreviousStatus != nil {
		prevStatus = string(*o.PreviousStatus)
	}
	query := `UPDATE opportunities SET title=$1, description=$2, category=$3, required_skills=$4, number_of_volunteers=$5,
	          location_type=$6, city=$7, state=$8, start_date=$9, end_date=$10, status=$11, moderation_status=$12, visibility=$13,
	          previous_status=$14, suspended_on=$15, suspended_by=$16, suspended_reason=$17, resumed_on=$18, resumed_by=$19,
	          closed_on=$20, closure_notes=$21, updated_on=$22 WHERE id=$23`
	_, err := r.db.ExecContext(ctx, query, o.Title, o.Description, o.Category, pq.Array(o.RequiredSkills), o.NumberOfVolunteers,
		o.LocationType, o.City, o.State, o.StartDate, o.EndDate, o.Status, o.ModerationStatus, o.Visibility,
		prevStatus, o.SuspendedOn, o.SuspendedBy, o.SuspendedReason, o.ResumedOn, o.ResumedBy,
		o.ClosedOn, o.ClosureNotes, time.Now(), o.ID)
	return err
}

func (r *opportunityRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM opportunities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ConfirmVolunteer performs the atomic capacity check: the increment and the
// comparison happen in one conditional update, so two concurrent confirms on
// the last slot cannot both succeed.
func (r *opportunityRepository) ConfirmVolunteer(ctx context.Context, id int32) error {
	query := `UPDATE opportunities SET volunteers_confirmed = volunteers_confirmed + 1, updated_on = $1
	          WHERE id = $2 AND volunteers_confirmed < number_of_volunteers`
	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCapacityFull
	}
	return nil
}

func (r *opportunityRepository) ListByCharity(ctx context.Context, charityID int32, status string, page, pageSize int32) ([]domain.Opportunity, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + opportunityColumns + ` FROM opportunities WHERE charity_id = $1`
	args := []any{charityID}
	argIdx := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)
	return r.list(ctx, query, count, args...)
}

func (r *opportunityRepository) Search(ctx context.Context, query, city, state, category, status string, page, pageSize int32) ([]domain.Opportunity, int32, error) {
	offset := (page - 1) * pageSize
	sqlQuery := `SELECT ` + opportunityColumns + ` FROM opportunities WHERE visibility = 'PUBLIC'`
	var args []any
	argIdx := 1
	addFilter := func(clause string, value any) {
		sqlQuery += fmt.Sprintf(clause, argIdx)
		args = append(args, value)
		argIdx++
	}
	if query != "" {
		addFilter(" AND (title ILIKE $%d OR description ILIKE $%[1]d)", "%"+query+"%")
	}
	if city != "" {
		addFilter(" AND city ILIKE $%d", city)
	}
	if state != "" {
		addFilter(" AND state ILIKE $%d", state)
	}
	if category != "" {
		addFilter(" AND category = $%d", category)
	}
	if status != "" {
		addFilter(" AND status = $%d", status)
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + sqlQuery + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	sqlQuery += fmt.Sprintf(" ORDER BY start_date ASC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)
	return r.list(ctx, sqlQuery, count, args...)
}

// StartDue moves published, moderation-approved opportunities whose start
// date has arrived into IN_PROGRESS and returns the affected rows.
func (r *opportunityRepository) StartDue(ctx context.Context) ([]domain.Opportunity, error) {
	query := `UPDATE opportunities SET status = $1, updated_on = NOW()
	          WHERE status = $2 AND moderation_status = $3 AND start_date <= NOW()
	          RETURNING ` + opportunityColumns
	return r.sweep(ctx, query, domain.OpportunityStatusInProgress, domain.OpportunityStatusPublished, domain.VerificationStatusApproved)
}

// CompleteExpired moves in-progress opportunities past their end date into
// COMPLETED and returns the affected rows.
func (r *opportunityRepository) CompleteExpired(ctx context.Context) ([]domain.Opportunity, error) {
	query := `UPDATE opportunities SET status = $1, closed_on = NOW(), updated_on = NOW()
	          WHERE status = $2 AND end_date < NOW()
	          RETURNING ` + opportunityColumns
	return r.sweep(ctx, query, domain.OpportunityStatusCompleted, domain.OpportunityStatusInProgress)
}

func (r *opportunityRepository) ListStartingWithin(ctx context.Context, hours int32) ([]domain.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM opportunities
	          WHERE status = $1 AND start_date > NOW() AND start_date <= NOW() + ($2 || ' hours')::interval`
	return r.sweep(ctx, query, domain.OpportunityStatusPublished, hours)
}

func (r *opportunityRepository) sweep(ctx context.Context, query string, args ...any) ([]domain.Opportunity, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opps []domain.Opportunity
	for rows.Next() {
		o, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		opps = append(opps, *o)
	}
	return opps, rows.Err()
}

func (r *opportunityRepository) list(ctx context.Context, query string, count int32, args ...any) ([]domain.Opportunity, int32, error) {
	opps, err := r.sweep(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return opps, count, nil
}
