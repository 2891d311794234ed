package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"address-autocomplete/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the submissions table. It is safe to run repeatedly.
const Schema = `
	CREATE TABLE IF NOT EXISTS address_submissions (
		id UUID PRIMARY KEY,
		address_line1 TEXT NOT NULL,
		address_line2 TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL,
		state TEXT NOT NULL DEFAULT '',
		postcode TEXT NOT NULL,
		country TEXT NOT NULL,
		submitted_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		full_address_tsvector TSVECTOR GENERATED ALWAYS AS (
			to_tsvector('simple',
				address_line1 || ' ' || address_line2 || ' ' || city || ' ' ||
				state || ' ' || postcode || ' ' || country)
		) STORED
	);
	CREATE INDEX IF NOT EXISTS address_submissions_full_address_tsvector_idx
		ON address_submissions USING GIN (full_address_tsvector);
	CREATE INDEX IF NOT EXISTS address_submissions_submitted_at_idx
		ON address_submissions (submitted_at DESC);
`

var submissionColumns = []string{
	"id", "address_line1", "address_line2", "city", "state", "postcode", "country", "submitted_at",
}

// Repository implements the repository interface for PostgreSQL
type Repository struct {
	db  *pgxpool.Pool
	now func() time.Time
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db, now: time.Now}
}

// CreateSchema ensures the submissions table and its indexes exist
func (r *Repository) CreateSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// Submit stores one validated address. It satisfies service.Submitter.
func (r *Repository) Submit(ctx context.Context, a models.AddressRecord) error {
	sql := `
		INSERT INTO address_submissions
			(id, address_line1, address_line2, city, state, postcode, country, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, sql,
		uuid.New(), a.AddressLine1, a.AddressLine2, a.City, a.State, a.Postcode, a.Country, r.now().UTC())
	if err != nil {
		return fmt.Errorf("repository: failed to insert submission: %w", err)
	}
	return nil
}

// CopySubmissions bulk-loads records with COPY and returns the number of rows written
func (r *Repository) CopySubmissions(ctx context.Context, records []models.AddressRecord) (int64, error) {
	at := r.now().UTC()
	n, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"address_submissions"},
		submissionColumns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			a := records[i]
			return []any{uuid.New(), a.AddressLine1, a.AddressLine2, a.City, a.State, a.Postcode, a.Country, at}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy submissions: %w", err)
	}
	return n, nil
}

// CountSubmissions returns the number of stored submissions
func (r *Repository) CountSubmissions(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM address_submissions").Scan(&n); err != nil {
		return 0, fmt.Errorf("repository: failed to count submissions: %w", err)
	}
	return n, nil
}

// SearchSubmissions performs a full-text search over submitted addresses.
// An empty query returns the newest submissions.
func (r *Repository) SearchSubmissions(ctx context.Context, query string, limit int) ([]models.Submission, error) {
	var (
		rows pgx.Rows
		err  error
	)

	if query == "" {
		rows, err = r.db.Query(ctx, `
			SELECT id, address_line1, address_line2, city, state, postcode, country, submitted_at
			FROM address_submissions
			ORDER BY submitted_at DESC
			LIMIT $1
		`, limit)
	} else {
		rows, err = r.db.Query(ctx, `
			SELECT id, address_line1, address_line2, city, state, postcode, country, submitted_at
			FROM address_submissions
			WHERE full_address_tsvector @@ plainto_tsquery('simple', $1)
			ORDER BY ts_rank(full_address_tsvector, plainto_tsquery('simple', $1)) DESC, submitted_at DESC
			LIMIT $2
		`, query, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute search query: %w", err)
	}
	defer rows.Close()

	submissions := []models.Submission{}
	for rows.Next() {
		var (
			s  models.Submission
			id uuid.UUID
		)
		err := rows.Scan(
			&id,
			&s.Address.AddressLine1,
			&s.Address.AddressLine2,
			&s.Address.City,
			&s.Address.State,
			&s.Address.Postcode,
			&s.Address.Country,
			&s.SubmittedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan submission: %w", err)
		}
		s.ID = id.String()
		submissions = append(submissions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return submissions, nil
}

// GetSubmission loads one submission by id
func (r *Repository) GetSubmission(ctx context.Context, id string) (*models.Submission, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("repository: invalid submission id %q: %w", id, err)
	}

	var s models.Submission
	err = r.db.QueryRow(ctx, `
		SELECT address_line1, address_line2, city, state, postcode, country, submitted_at
		FROM address_submissions
		WHERE id = $1
	`, uid).Scan(
		&s.Address.AddressLine1,
		&s.Address.AddressLine2,
		&s.Address.City,
		&s.Address.State,
		&s.Address.Postcode,
		&s.Address.Country,
		&s.SubmittedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to load submission: %w", err)
	}

	s.ID = uid.String()
	return &s, nil
}
