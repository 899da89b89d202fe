package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"awards-cms-go/pkg/model"
)

const (
	regionFileExt       = ".json"
	defaultTemplatePath = "default/default.json"
)

// FileStore keeps one <region>.json file per region under a data
// directory, plus an optional default/default.json seed template.
type FileStore struct {
	dir string
	mu  sync.RWMutex
}

// NewFileStore creates a file-backed region store rooted at dir
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// findFile returns the filename of the case-insensitive match for
// region, or "" when absent. Caller holds at least a read lock.
func (s *FileStore) findFile(region string) (string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), regionFileExt) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), regionFileExt)
		if strings.EqualFold(name, region) {
			return entry.Name(), nil
		}
	}
	return "", nil
}

func (s *FileStore) readDocument(filename string) (*model.RegionDocument, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		return nil, err
	}
	var doc model.RegionDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	if doc.Region == "" {
		doc.Region = strings.TrimSuffix(filename, regionFileExt)
	}
	doc.Normalize()
	return &doc, nil
}

// writeDocument writes atomically via a temp file and rename
func (s *FileStore) writeDocument(filename string, doc *model.RegionDocument) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	tmp, err := os.CreateTemp(s.dir, "."+filename+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(s.dir, filename))
}

// Get fetches a region document by case-insensitive identifier
func (s *FileStore) Get(ctx context.Context, region string) (*model.RegionDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filename, err := s.findFile(region)
	if err != nil {
		return nil, err
	}
	if filename == "" {
		return nil, ErrNotFound
	}
	return s.readDocument(filename)
}

// List returns all stored region identifiers
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	regions := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), regionFileExt) {
			continue
		}
		regions = append(regions, strings.TrimSuffix(entry.Name(), regionFileExt))
	}
	return regions, nil
}

// Upsert creates or fully replaces a region document
func (s *FileStore) Upsert(ctx context.Context, region string, content model.RegionContent) (*model.RegionDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content.Normalize()

	// Keep the stored identifier and filename of an existing match so
	// updates through any case variant preserve the original casing.
	filename, err := s.findFile(region)
	if err != nil {
		return nil, err
	}
	identifier := region
	if filename != "" {
		identifier = strings.TrimSuffix(filename, regionFileExt)
	} else {
		filename = region + regionFileExt
	}

	doc := &model.RegionDocument{
		Region:        identifier,
		RegionContent: content,
		UpdatedAt:     time.Now().UTC(),
	}
	if err := s.writeDocument(filename, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Create inserts a new region seeded from the template
func (s *FileStore) Create(ctx context.Context, region string, template model.RegionContent) (*model.RegionDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filename, err := s.findFile(region)
	if err != nil {
		return nil, err
	}
	if filename != "" {
		return nil, ErrConflict
	}

	template.Normalize()
	doc := &model.RegionDocument{
		Region:        region,
		RegionContent: template,
		UpdatedAt:     time.Now().UTC(),
	}
	if err := s.writeDocument(region+regionFileExt, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes a region by case-insensitive identifier
func (s *FileStore) Delete(ctx context.Context, region string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filename, err := s.findFile(region)
	if err != nil {
		return err
	}
	if filename == "" {
		return ErrNotFound
	}
	return os.Remove(filepath.Join(s.dir, filename))
}

// DefaultTemplate reads default/default.json when present
func (s *FileStore) DefaultTemplate(ctx context.Context) (model.RegionContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := os.ReadFile(filepath.Join(s.dir, filepath.FromSlash(defaultTemplatePath)))
	if os.IsNotExist(err) {
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
