package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "studentboard/internal/errors"
	"studentboard/internal/model"
	"studentboard/internal/registry"
	"studentboard/internal/repository"
)

// CreateArchiveRequest references the item being archived.
type CreateArchiveRequest struct {
	ItemType string `json:"item_type" validate:"required"`
	ItemID   uint   `json:"item_id" validate:"required"`
}

// ArchiveService implements the registry store contract for archive
// records. Records are created only through an explicit archive action that
// snapshots the referenced item; they reject updates and allow deletion.
type ArchiveService struct {
	repo repository.ArchiveRepository
	reg  *registry.Registry
}

var (
	_ registry.Store      = (*ArchiveService)(nil)
	_ registry.Searchable = (*ArchiveService)(nil)
)

// NewArchiveService creates the archive store. The registry resolves the
// archived item's own store for the existence check and snapshot.
func NewArchiveService(repo repository.ArchiveRepository, reg *registry.Registry) *ArchiveService {
	return &ArchiveService{repo: repo, reg: reg}
}

// ArchiveItem records an archival of the given item. The original record is
// left in place; its deletion is a separate client action.
func (s *ArchiveService) ArchiveItem(ctx context.Context, itemType string, itemID uint, actor string) (*model.ArchiveRecord, error) {
	kind, store, err := s.reg.Lookup(itemType)
	if err != nil {
		return nil, err
	}
	archivable, ok := store.(registry.Archivable)
	if !ok {
		return nil, fmt.Errorf("%w: %q items cannot be archived", apperrors.ErrValidation, itemType)
	}

	title, category, err := archivable.Snapshot(ctx, itemID)
	if err != nil {
		return nil, err
	}

	record := &model.ArchiveRecord{
		ItemType:   string(kind),
		ItemID:     itemID,
		Title:      title,
		Category:   category,
		ArchivedBy: actor,
		ArchivedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create archive record: %w", err)
	}
	return record, nil
}

// Get returns the full record for an id.
func (s *ArchiveService) Get(ctx context.Context, id uint) (interface{}, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return record, nil
}

// List returns the whole collection.
func (s *ArchiveService) List(ctx context.Context) (interface{}, error) {
	return s.repo.List(ctx, repository.ArchiveFilter{})
}

// ListFiltered narrows the listing by item type and archival date range.
// Dates use the 2006-01-02 layout; the upper bound is inclusive of the day.
func (s *ArchiveService) ListFiltered(ctx context.Context, itemType, from, to string) (interface{}, error) {
	filter := repository.ArchiveFilter{}
	if itemType != "" {
		kind, err := registry.ParseKind(itemType)
		if err != nil {
			return nil, err
		}
		filter.ItemType = string(kind)
	}
	if from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid from date %q", apperrors.ErrValidation, from)
		}
		filter.From = t
	}
	if to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid to date %q", apperrors.ErrValidation, to)
		}
		filter.To = t.Add(24*time.Hour - time.Nanosecond)
	}
	return s.repo.List(ctx, filter)
}

// Create validates the reference and delegates to the archive action, so a
// direct POST /api/archive honors the same existence check and snapshot.
func (s *ArchiveService) Create(ctx context.Context, fields map[string]interface{}, actor string) (interface{}, error) {
	var req CreateArchiveRequest
	if err := decodeFields(fields, &req); err != nil {
		return nil, err
	}
	if req.ItemType == string(registry.KindArchive) {
		return nil, fmt.Errorf("%w: archive records cannot be archived", apperrors.ErrValidation)
	}
	return s.ArchiveItem(ctx, req.ItemType, req.ItemID, actor)
}

// Update always fails: archive records are immutable once created.
func (s *ArchiveService) Update(ctx context.Context, id uint, fields map[string]interface{}) (interface{}, error) {
	return nil, apperrors.ErrImmutableRecord
}

// Delete removes a record by id.
func (s *ArchiveService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Search matches archived titles and categories.
func (s *ArchiveService) Search(ctx context.Context, query string) (interface{}, error) {
	return s.repo.Search(ctx, query)
}
