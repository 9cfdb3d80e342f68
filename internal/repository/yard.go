package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"yard-console/internal/apperr"
	"yard-console/internal/domain"
)

// YardRepo stores yards in PostgreSQL.
type YardRepo struct{ db *pgxpool.Pool }

// NewYardRepo creates a new YardRepo.
func NewYardRepo(db *pgxpool.Pool) *YardRepo { return &YardRepo{db: db} }

// Get returns the yard with the given id, or nil when it does not exist.
func (r *YardRepo) Get(ctx context.Context, id int64) (*domain.Yard, error) {
	var y domain.Yard
	err := r.db.QueryRow(ctx,
		`SELECT id, capacity, number, branch_id FROM yards WHERE id=$1`, id,
	).Scan(&y.ID, &y.Capacity, &y.Number, &y.BranchID)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get yard %d: %w", id, err)
	}
	return &y, nil
}

// List returns every yard ordered by id.
func (r *YardRepo) List(ctx context.Context) ([]domain.Yard, error) {
	rows, err := r.db.Query(ctx, `SELECT id, capacity, number, branch_id FROM yards ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list yards: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Yard, 0)
	for rows.Next() {
		var y domain.Yard
		if err := rows.Scan(&y.ID, &y.Capacity, &y.Number, &y.BranchID); err != nil {
			return nil, fmt.Errorf("scan yard: %w", err)
		}
		out = append(out, y)
	}
	return out, rows.Err()
}

// Create inserts a yard and returns its generated id.
func (r *YardRepo) Create(ctx context.Context, in domain.YardInput) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO yards(capacity, number, branch_id) VALUES($1,$2,$3) RETURNING id`,
		in.Capacity, in.Number, in.BranchID).Scan(&id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return 0, apperr.Invalidf("branch %d does not exist", in.BranchID)
		}
		return 0, fmt.Errorf("create yard: %w", err)
	}
	return id, nil
}

// Update replaces the fields of a yard and reports whether a row was affected.
func (r *YardRepo) Update(ctx context.Context, id int64, in domain.YardInput) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE yards
        SET capacity = $2, number = $3, branch_id = $4, updated_at = now()
        WHERE id = $1
    `, id, in.Capacity, in.Number, in.BranchID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return false, apperr.Invalidf("branch %d does not exist", in.BranchID)
		}
		return false, fmt.Errorf("update yard %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete removes a yard and reports whether a row was affected.
func (r *YardRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM yards WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete yard %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
