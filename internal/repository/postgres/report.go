package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

const reportColumns = `id, reporter_id, reported_entity_type, reported_entity_id, reason, details, status, resolution, action_taken, resolved_by, resolved_on, created_on, updated_on`

func (r *reportRepository) scan(row interface{ Scan(...any) error }) (*domain.Report, error) {
	rep := &domain.Report{}
	var details, resolution, actionTaken sql.NullString
	err := row.Scan(&rep.ID, &rep.ReporterID, &rep.ReportedEntityType, &rep.ReportedEntityID, &rep.Reason,
		&details, &rep.Status, &resolution, &actionTaken, &rep.ResolvedBy, &rep.ResolvedOn, &rep.CreatedOn, &rep.UpdatedOn)
	if err != nil {
		return nil, mapNotFound(err)
	}
	rep.Details = details.String
	rep.Resolution = resolution.String
	rep.ActionTaken = actionTaken.String
	return rep, nil
}

func (r *reportRepository) Create(ctx context.Context, rep *domain.Report) error {
	query := `INSERT INTO reports (reporter_id, reported_entity_type, reported_entity_id, reason, details, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	rep.CreatedOn = now
	rep.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, rep.ReporterID, rep.ReportedEntityType, rep.ReportedEntityID,
		rep.Reason, rep.Details, rep.Status, now, now).Scan(&rep.ID)
}

func (r *reportRepository) GetByID(ctx context.Context, id int32) (*domain.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`
	return r.scan(r.db.QueryRowContext(ctx, query, id))
}

func (r *reportRepository) Update(ctx context.Context, rep *domain.Report) error {
	query := `UPDATE reports SET status=$1, resolution=$2, action_taken=$3, resolved_by=$4, resolved_on=$5, updated_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, rep.Status, rep.Resolution, rep.ActionTaken, rep.ResolvedBy, rep.ResolvedOn, time.Now(), rep.ID)
	return err
}

func (r *reportRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Report, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + reportColumns + ` FROM reports`
	var args []any
	argIdx := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", argIdx)
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

	var reports []domain.Report
	for rows.Next() {
		rep, err := r.scan(rows)
		if err != nil {
			return nil, 0, err
		}
		reports = append(reports, *rep)
	}
	return reports, count, rows.Err()
}
