package region

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"awards-cms-go/internal/store"
	"awards-cms-go/pkg/model"
)

// ErrInvalidName is returned for region identifiers that cannot be used
// as document keys
var ErrInvalidName = errors.New("invalid region name")

// Region identifiers become file names in the file-backed store, so the
// accepted alphabet stays deliberately narrow.
var regionNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9 _-]{0,62}$`)

// RegionService handles region document operations
type RegionService struct {
	store store.RegionStore
}

// NewRegionService creates a new region service
func NewRegionService(st store.RegionStore) *RegionService {
	return &RegionService{store: st}
}

// ValidateRegionName checks if a region identifier is acceptable
func ValidateRegionName(region string) bool {
	return regionNamePattern.MatchString(region)
}

// List returns all known region identifiers
func (s *RegionService) List(ctx context.Context) ([]string, error) {
	return s.store.List(ctx)
}

// Get returns the full document for a region, matched case-insensitively
func (s *RegionService) Get(ctx context.Context, region string) (*model.RegionDocument, error) {
	return s.store.Get(ctx, region)
}

// Create seeds a new region from the configured default template
func (s *RegionService) Create(ctx context.Context, region string) (*model.RegionDocument, error) {
	region = strings.TrimSpace(region)
	if !ValidateRegionName(region) {
		return nil, ErrInvalidName
	}

	template, err := s.store.DefaultTemplate(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.Create(ctx, region, template)
}

// Update fully replaces a region's content, creating the region when it
// does not exist yet
func (s *RegionService) Update(ctx context.Context, region string, content model.RegionContent) (*model.RegionDocument, error) {
	region = strings.TrimSpace(region)
	if !ValidateRegionName(region) {
		return nil, ErrInvalidName
	}
	if err := content.Validate(); err != nil {
		return nil, err
	}
	return s.store.Upsert(ctx, region, content)
}

// Delete removes a region document
func (s *RegionService) Delete(ctx context.Context, region string) error {
	return s.store.Delete(ctx, region)
}
