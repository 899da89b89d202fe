package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"awards-cms-go/pkg/model"
)

// PostgresStore keeps one JSONB document per region in a single table,
// with a unique functional index on lower(region) enforcing the
// case-insensitive key invariant.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a Postgres-backed region store
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the tables and indexes the store relies on
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS awards_regions (
			region     TEXT        NOT NULL,
			document   JSONB       NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS awards_regions_lower_idx
			ON awards_regions (lower(region))`,
		`CREATE TABLE IF NOT EXISTS general_settings (
			id             INT PRIMARY KEY DEFAULT 1,
			default_region JSONB
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

type regionRow struct {
	Region    string    `db:"region"`
	Document  []byte    `db:"document"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r regionRow) toDocument() (*model.RegionDocument, error) {
	var content model.RegionContent
	if err := json.Unmarshal(r.Document, &content); err != nil {
		return nil, fmt.Errorf("decode document for region %q: %w", r.Region, err)
	}
	content.Normalize()
	return &model.RegionDocument{
		Region:        r.Region,
		RegionContent: content,
		UpdatedAt:     r.UpdatedAt,
	}, nil
}

// Get fetches a region document by case-insensitive identifier
func (s *PostgresStore) Get(ctx context.Context, region string) (*model.RegionDocument, error) {
	var row regionRow
	err := s.db.GetContext(ctx, &row, `
		SELECT region, document, updated_at FROM awards_regions
		WHERE lower(region) = lower($1)`, region)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toDocument()
}

// List returns all stored region identifiers
func (s *PostgresStore) List(ctx context.Context) ([]string, error) {
	regions := []string{}
	if err := s.db.SelectContext(ctx, &regions, `SELECT region FROM awards_regions`); err != nil {
		return nil, err
	}
	return regions, nil
}

// Upsert creates or fully replaces a region document in one statement
func (s *PostgresStore) Upsert(ctx context.Context, region string, content model.RegionContent) (*model.RegionDocument, error) {
	content.Normalize()
	doc, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	// On conflict the stored identifier is left untouched so its
	// original casing survives updates through any case variant.
	var row regionRow
	err = s.db.GetContext(ctx, &row, `
		INSERT INTO awards_regions (region, document, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT ((lower(region))) DO UPDATE
			SET document = EXCLUDED.document, updated_at = now()
		RETURNING region, document, updated_at`, region, doc)
	if err != nil {
		return nil, err
	}
	return row.toDocument()
}

// Create inserts a new region seeded from the template
func (s *PostgresStore) Create(ctx context.Context, region string, template model.RegionContent) (*model.RegionDocument, error) {
	template.Normalize()
	doc, err := json.Marshal(template)
	if err != nil {
		return nil, fmt.Errorf("encode template: %w", err)
	}

	var row regionRow
	err = s.db.GetContext(ctx, &row, `
		INSERT INTO awards_regions (region, document, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT ((lower(region))) DO NOTHING
		RETURNING region, document, updated_at`, region, doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return row.toDocument()
}

// Delete removes a region by case-insensitive identifier
func (s *PostgresStore) Delete(ctx context.Context, region string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM awards_regions WHERE lower(region) = lower($1)`, region)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DefaultTemplate reads the default region template from general settings
func (s *PostgresStore) DefaultTemplate(ctx context.Context) (model.RegionContent, error) {
	var raw []byte
	err := s.db.GetContext(ctx, &raw, `
		SELECT default_region FROM general_settings
		WHERE default_region IS NOT NULL LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return model.EmptyContent(), nil
	}
	if err != nil {
		return model.RegionContent{}, err
	}

	var template model.RegionContent
	if err := json.Unmarshal(raw, &template); err != nil {
		return model.RegionContent{}, fmt.Errorf("decode default template: %w", err)
	}
	template.Normalize()
	return template, nil
}
