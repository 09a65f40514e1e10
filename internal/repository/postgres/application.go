package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationColumns = `id, opportunity_id, volunteer_id, status, cover_message, match_score, hours_committed, hours_worked,
	info_requested, info_provided, reviewed_by, reviewed_on, review_notes, confirmed_on, withdrawn_on, withdrawn_reason,
	flagged_for_moderation, moderator_review_status, created_on, updated_on`

func (r *applicationRepository) scan(row interface{ Scan(...any) error }) (*domain.Application, error) {
	a := &domain.Application{}
	var coverMessage, reviewNotes, withdrawnReason sql.NullString
	var infoRequested, infoProvided []byte
	err := row.Scan(&a.ID, &a.OpportunityID, &a.VolunteerID, &a.Status, &coverMessage, &a.MatchScore,
		&a.HoursCommitted, &a.HoursWorked, &infoRequested, &infoProvided,
		&a.ReviewedBy, &a.ReviewedOn, &reviewNotes, &a.ConfirmedOn, &a.WithdrawnOn, &withdrawnReason,
		&a.FlaggedForModeration, &a.ModeratorReviewStatus, &a.CreatedOn, &a.UpdatedOn)
	if err != nil {
		return nil, mapNotFound(err)
	}
	a.Status = domain.NormalizeApplicationStatus(a.Status)
	a.CoverMessage = coverMessage.String
	a.ReviewNotes = reviewNotes.String
	a.WithdrawnReason = withdrawnReason.String
	if len(infoRequested) > 0 {
		if err := json.Unmarshal(infoRequested, &a.InfoRequested); err != nil {
			return nil, err
		}
	}
	if len(infoProvided) > 0 {
		if err := json.Unmarshal(infoProvided, &a.InfoProvided); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (r *applicationRepository) Create(ctx context.Context, a *domain.Application) error {
	query := `INSERT INTO applications (opportunity_id, volunteer_id, status, cover_message, match_score, hours_committed, hours_worked,
	          flagged_for_moderation, moderator_review_status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now()
	a.CreatedOn = now
	a.UpdatedOn = now
	err := r.db.QueryRowContext(ctx, query, a.OpportunityID, a.VolunteerID, a.Status, a.CoverMessage, a.MatchScore,
		a.HoursCommitted, a.HoursWorked, a.FlaggedForModeration, a.ModeratorReviewStatus, now, now).Scan(&a.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateApplication
	}
	return err
}

func (r *applicationRepository) GetByID(ctx context.Context, id int32) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	return r.scan(r.db.QueryRowContext(ctx, query, id))
}

func (r *applicationRepository) GetByPair(ctx context.Context, opportunityID, volunteerID int32) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE opportunity_id = $1 AND volunteer_id = $2`
	return r.scan(r.db.QueryRowContext(ctx, query, opportunityID, volunteerID))
}

func (r *applicationRepository) Update(ctx context.Context, a *domain.Application) error {
	infoRequested, err := marshalNullable(a.InfoRequested)
	if err != nil {
		return err
	}
	infoProvided, err := marshalNullable(a.InfoProvided)
	if err != nil {
		return err
	}
	query := `UPDATE applications SET status=$1, match_score=$2, hours_committed=$3, hours_worked=$4,
	          info_requested=$5, info_provided=$6, reviewed_by=$7, reviewed_on=$8, review_notes=$9,
	          confirmed_on=$10, withdrawn_on=$11, withdrawn_reason=$12, flagged_for_moderation=$13,
	          moderator_review_status=$14, updated_on=$15 WHERE id=$16`
	_, err = r.db.ExecContext(ctx, query, a.Status, a.MatchScore, a.HoursCommitted, a.HoursWorked,
		infoRequested, infoProvided, a.ReviewedBy, a.ReviewedOn, a.ReviewNotes,
		a.ConfirmedOn, a.WithdrawnOn, a.WithdrawnReason, a.FlaggedForModeration,
		a.ModeratorReviewStatus, time.Now(), a.ID)
	return err
}

func (r *applicationRepository) ListByOpportunity(ctx context.Context, opportunityID int32, status string, page, pageSize int32) ([]domain.Application, int32, error) {
	return r.listFiltered(ctx, "opportunity_id", opportunityID, status, page, pageSize)
}

func (r *applicationRepository) ListByVolunteer(ctx context.Context, volunteerID int32, status string, page, pageSize int32) ([]domain.Application, int32, error) {
	return r.listFiltered(ctx, "volunteer_id", volunteerID, status, page, pageSize)
}

func (r *applicationRepository) listFiltered(ctx context.Context, column string, id int32, status string, page, pageSize int32) ([]domain.Application, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE ` + column + ` = $1`
	args := []any{id}
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

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, 0, err
		}
		apps = append(apps, *a)
	}
	return apps, count, rows.Err()
}

func (r *applicationRepository) ListVolunteerIDsWithOpenApplication(ctx context.Context, opportunityID int32) ([]int32, error) {
	query := `SELECT volunteer_id FROM applications WHERE opportunity_id = $1 AND status NOT IN ($2, $3)`
	rows, err := r.db.QueryContext(ctx, query, opportunityID, domain.ApplicationStatusWithdrawn, domain.ApplicationStatusRejected)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *applicationRepository) ListConfirmedByOpportunity(ctx context.Context, opportunityID int32) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE opportunity_id = $1 AND status = $2`
	rows, err := r.db.QueryContext(ctx, query, opportunityID, domain.ApplicationStatusConfirmed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *a)
	}
	return apps, rows.Err()
}

func marshalNullable(v any) ([]byte, error) {
	switch t := v.(type) {
	case *domain.InfoRequest:
		if t == nil {
			return nil, nil
		}
	case *domain.InfoResponse:
		if t == nil {
			return nil, nil
		}
	}
	return json.Marshal(v)
}
