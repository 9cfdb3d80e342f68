package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"yard-console/internal/apperr"
	"yard-console/internal/domain"
)

// BranchRepo stores branches in PostgreSQL.
type BranchRepo struct{ db *pgxpool.Pool }

// NewBranchRepo creates a new BranchRepo.
func NewBranchRepo(db *pgxpool.Pool) *BranchRepo { return &BranchRepo{db: db} }

// Get returns the branch with the given id, or nil when it does not exist.
func (r *BranchRepo) Get(ctx context.Context, id int64) (*domain.Branch, error) {
	var b domain.Branch
	err := r.db.QueryRow(ctx,
		`SELECT id, name, country, street FROM branches WHERE id=$1`, id,
	).Scan(&b.ID, &b.Name, &b.Country, &b.Street)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch %d: %w", id, err)
	}
	return &b, nil
}

// List returns every branch ordered by id.
func (r *BranchRepo) List(ctx context.Context) ([]domain.Branch, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, country, street FROM branches ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Branch, 0)
	for rows.Next() {
		var b domain.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Country, &b.Street); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Create inserts a branch and returns its generated id.
func (r *BranchRepo) Create(ctx context.Context, in domain.BranchInput) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO branches(name, country, street) VALUES($1,$2,$3) RETURNING id`,
		in.Name, in.Country, in.Street).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create branch: %w", err)
	}
	return id, nil
}

// Update replaces the text fields of a branch and reports whether a row was affected.
func (r *BranchRepo) Update(ctx context.Context, id int64, in domain.BranchInput) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE branches
        SET name = $2, country = $3, street = $4, updated_at = now()
        WHERE id = $1
    `, id, in.Name, in.Country, in.Street)
	if err != nil {
		return false, fmt.Errorf("update branch %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete removes a branch and reports whether a row was affected.
func (r *BranchRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return false, apperr.Conflictf("branch still has yards")
		}
		return false, fmt.Errorf("delete branch %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
