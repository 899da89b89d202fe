package store

import (
	"context"
	"errors"

	"awards-cms-go/pkg/model"
)

// ErrNotFound is returned when no region matches the given identifier
var ErrNotFound = errors.New("region not found")

// ErrConflict is returned when creating a region whose identifier already
// exists under any letter casing
var ErrConflict = errors.New("region already exists")

// RegionStore is a keyed collection of region documents. Identifiers are
// compared case-insensitively; the stored identifier preserves the casing
// it was created with.
type RegionStore interface {
	// Get returns the document for the region, or ErrNotFound.
	Get(ctx context.Context, region string) (*model.RegionDocument, error)

	// List returns all stored region identifiers, order unspecified.
	List(ctx context.Context) ([]string, error)

	// Upsert creates the region if absent, otherwise fully replaces its
	// content. The stored identifier keeps its original casing on update
	// and takes the given casing on create. updatedAt is refreshed on
	// every call. The write is atomic: concurrent readers never observe
	// a partial document.
	Upsert(ctx context.Context, region string, content model.RegionContent) (*model.RegionDocument, error)

	// Create inserts a new region seeded from the template, or returns
	// ErrConflict if any case variant of the identifier exists.
	Create(ctx context.Context, region string, template model.RegionContent) (*model.RegionDocument, error)

	// Delete removes the region, or returns ErrNotFound.
	Delete(ctx context.Context, region string) error

	// DefaultTemplate returns the configured seed content for new
	// regions, falling back to the empty template when none is set.
	DefaultTemplate(ctx context.Context) (model.RegionContent, error)
}
