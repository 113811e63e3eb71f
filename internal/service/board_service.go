package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"studentboard/internal/cache"
	apperrors "studentboard/internal/errors"
	"studentboard/internal/model"
	"studentboard/internal/registry"
	"studentboard/internal/repository"
)

const boardListCacheTTL = time.Minute

// boardUpdatableColumns is the whitelist applied to partial updates. Author
// is server-controlled and ids/timestamps are never client-writable.
var boardUpdatableColumns = map[string]bool{
	"title":       true,
	"description": true,
	"category":    true,
	"date":        true,
	"time":        true,
	"location":    true,
	"priority":    true,
}

// CreateBoardItemRequest is the typed create payload shared by all board
// collections.
type CreateBoardItemRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low normal high"`
}

// BoardService implements the registry store contract for one board
// collection. The same implementation backs announcements, events,
// timetable entries and results; the repository carries the table.
type BoardService struct {
	kind  registry.Kind
	repo  repository.BoardRepository
	cache *cache.Client
}

var (
	_ registry.Store      = (*BoardService)(nil)
	_ registry.Searchable = (*BoardService)(nil)
	_ registry.Archivable = (*BoardService)(nil)
)

// NewBoardService creates the store for one board collection.
func NewBoardService(kind registry.Kind, repo repository.BoardRepository, cache *cache.Client) *BoardService {
	return &BoardService{kind: kind, repo: repo, cache: cache}
}

func (s *BoardService) listCacheKey() string {
	return fmt.Sprintf("board:%s:list", s.kind)
}

// Get returns the full record for an id.
func (s *BoardService) Get(ctx context.Context, id uint) (interface{}, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// List returns the whole collection, cache-aside with a short TTL.
func (s *BoardService) List(ctx context.Context) (interface{}, error) {
	if data, _ := s.cache.Get(ctx, s.listCacheKey()); data != nil {
		var cached []model.BoardItem
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		_ = s.cache.Set(ctx, s.listCacheKey(), payload, boardListCacheTTL)
	}
	return items, nil
}

// Create validates required fields, applies server-controlled defaults and
// persists. The authenticated identity becomes the author.
func (s *BoardService) Create(ctx context.Context, fields map[string]interface{}, actor string) (interface{}, error) {
	var req CreateBoardItemRequest
	if err := decodeFields(fields, &req); err != nil {
		return nil, err
	}

	if req.Priority == "" {
		req.Priority = model.PriorityNormal
	}

	item := &model.BoardItem{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Priority:    req.Priority,
		Author:      actor,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create %s item: %w", s.kind, err)
	}

	_ = s.cache.Delete(ctx, s.listCacheKey())
	return item, nil
}

// Update applies the supplied fields only, leaving the rest unchanged, and
// returns the full updated record.
func (s *BoardService) Update(ctx context.Context, id uint, fields map[string]interface{}) (interface{}, error) {
	cols := filterColumns(fields, boardUpdatableColumns)
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields supplied", apperrors.ErrValidation)
	}
	if p, ok := cols["priority"].(string); ok {
		if p != model.PriorityLow && p != model.PriorityNormal && p != model.PriorityHigh {
			return nil, fmt.Errorf("%w: unknown priority %q", apperrors.ErrValidation, p)
		}
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if err := s.repo.UpdateFields(ctx, id, cols); err != nil {
		return nil, fmt.Errorf("update %s item: %w", s.kind, err)
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, s.listCacheKey())
	return item, nil
}

// Delete removes a record by id.
func (s *BoardService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s item: %w", s.kind, err)
	}
	_ = s.cache.Delete(ctx, s.listCacheKey())
	return nil
}

// Search performs a case-insensitive substring match on title and
// description.
func (s *BoardService) Search(ctx context.Context, query string) (interface{}, error) {
	return s.repo.Search(ctx, query)
}

// Snapshot returns the display fields copied into an archive record.
func (s *BoardService) Snapshot(ctx context.Context, id uint) (string, string, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", apperrors.ErrNotFound
		}
		return "", "", err
	}
	return item.Title, item.Category, nil
}
