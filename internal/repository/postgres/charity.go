package postgres

import (
	"context"
	"database/sql"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type charityRepository struct {
	db *sql.DB
}

func NewCharityRepository(db *sql.DB) repository.CharityRepository {
	return &charityRepository{db: db}
}

const charityColumns = `id, user_id, name, description, city, state, verification_status, verification_notes, is_active, created_on, updated_on`

func (r *charityRepository) scan(row interface{ Scan(...any) error }) (*domain.Charity, error) {
	c := &domain.Charity{}
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.City, &c.State, &c.VerificationStatus, &c.VerificationNotes, &c.IsActive, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return c, nil
}

func (r *charityRepository) Create(ctx context.Context, c *domain.Charity) error {
	query := `INSERT INTO charities (user_id, name, description, city, state, verification_status, verification_notes, is_active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now()
	c.CreatedOn = now
	c.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, c.UserID, c.Name, c.Description, c.City, c.State, c.VerificationStatus, c.VerificationNotes, c.IsActive, now, now).Scan(&c.ID)
}

func (r *charityRepository) GetByID(ctx context.Context, id int32) (*domain.Charity, error) {
	query := `SELECT ` + charityColumns + ` FROM charities WHERE id = $1`
	return r.scan(r.db.QueryRowContext(ctx, query, id))
}

func (r *charityRepository) GetByUserID(ctx context.Context, userID int32) (*domain.Charity, error) {
	query := `SELECT ` + charityColumns + ` FROM charities WHERE user_id = $1`
	return r.scan(r.db.QueryRowContext(ctx, query, userID))
}

func (r *charityRepository) Update(ctx context.Context, c *domain.Charity) error {
	query := `UPDATE charities SET name=$1, description=$2, city=$3, state=$4, verification_status=$5, verification_notes=$6, is_active=$7, updated_on=$8 WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query, c.Name, c.Description, c.City, c.State, c.VerificationStatus, c.VerificationNotes, c.IsActive, time.Now(), c.ID)
	return err
}

func (r *charityRepository) ListByVerificationStatus(ctx context.Context, status domain.VerificationStatus, page, pageSize int32) ([]domain.Charity, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM charities WHERE verification_status = $1`, status).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + charityColumns + ` FROM charities WHERE verification_status = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, status, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var charities []domain.Charity
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, 0, err
		}
		charities = append(charities, *c)
	}
	return charities, count, rows.Err()
}
