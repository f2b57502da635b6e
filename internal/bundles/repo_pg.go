package bundles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. A bundle is one row with JSONB
// columns, so the all-or-nothing invariant holds without an explicit
// transaction.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new bundle.
func (r *PGRepo) Create(ctx context.Context, b Bundle) error {
	const query = `
INSERT INTO bundles (id, user_id, profile, careers, colleges, roadmap, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	profileJSON, err := json.Marshal(b.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	careersJSON, err := json.Marshal(b.Careers)
	if err != nil {
		return fmt.Errorf("marshal careers: %w", err)
	}
	collegesJSON, err := json.Marshal(b.Colleges)
	if err != nil {
		return fmt.Errorf("marshal colleges: %w", err)
	}
	roadmapJSON, err := json.Marshal(b.Roadmap)
	if err != nil {
		return fmt.Errorf("marshal roadmap: %w", err)
	}

	var userID sql.NullInt64
	if b.UserID != 0 {
		userID = sql.NullInt64{Int64: b.UserID, Valid: true}
	}

	_, err = r.DB.ExecContext(ctx, query,
		b.ID,
		userID,
		profileJSON,
		careersJSON,
		collegesJSON,
		roadmapJSON,
		b.CreatedAt,
	)
	return err
}

// GetByID fetches a bundle by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Bundle, error) {
	const query = `
SELECT id, user_id, profile, careers, colleges, roadmap, created_at
FROM bundles
WHERE id = $1`
	row := r.DB.QueryRowContext(ctx, query, id)
	b, err := scanBundle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Bundle{}, ErrNotFound
		}
		return Bundle{}, err
	}
	return b, nil
}

// List returns bundles newest-first, optionally filtered by owner.
func (r *PGRepo) List(ctx context.Context, userID int64, limit, offset int) ([]Bundle, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
SELECT id, user_id, profile, careers, colleges, roadmap, created_at
FROM bundles
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`
	args := []any{limit, offset}
	if userID != 0 {
		query = `
SELECT id, user_id, profile, careers, colleges, roadmap, created_at
FROM bundles
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
		args = []any{userID, limit, offset}
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Bundle
	for rows.Next() {
		b, err := scanBundle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBundle(row rowScanner) (Bundle, error) {
	var (
		b            Bundle
		userID       sql.NullInt64
		profileJSON  []byte
		careersJSON  []byte
		collegesJSON []byte
		roadmapJSON  []byte
	)
	if err := row.Scan(&b.ID, &userID, &profileJSON, &careersJSON, &collegesJSON, &roadmapJSON, &b.CreatedAt); err != nil {
		return Bundle{}, err
	}
	if userID.Valid {
		b.UserID = userID.Int64
	}
	if err := json.Unmarshal(profileJSON, &b.Profile); err != nil {
		return Bundle{}, fmt.Errorf("unmarshal profile: %w", err)
	}
	if err := json.Unmarshal(careersJSON, &b.Careers); err != nil {
		return Bundle{}, fmt.Errorf("unmarshal careers: %w", err)
	}
	if err := json.Unmarshal(collegesJSON, &b.Colleges); err != nil {
		return Bundle{}, fmt.Errorf("unmarshal colleges: %w", err)
	}
	if err := json.Unmarshal(roadmapJSON, &b.Roadmap); err != nil {
		return Bundle{}, fmt.Errorf("unmarshal roadmap: %w", err)
	}
	return b, nil
}

var _ Repo = (*PGRepo)(nil)
