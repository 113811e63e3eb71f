package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"studentboard/internal/model"
)

// ArchiveFilter narrows archive listings. Zero values mean no filtering.
type ArchiveFilter struct {
	ItemType string
	From     time.Time
	To       time.Time
}

// ArchiveRepository defines archive record persistence operations.
type ArchiveRepository interface {
	Create(ctx context.Context, record *model.ArchiveRecord) error
	FindByID(ctx context.Context, id uint) (*model.ArchiveRecord, error)
	List(ctx context.Context, filter ArchiveFilter) ([]model.ArchiveRecord, error)
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, query string) ([]model.ArchiveRecord, error)
}

type archiveRepository struct {
	db *gorm.DB
}

// NewArchiveRepository builds a GORM-backed repository.
func NewArchiveRepository(db *gorm.DB) ArchiveRepository {
	return &archiveRepository{db: db}
}

func (r *archiveRepository) Create(ctx context.Context, record *model.ArchiveRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *archiveRepository) FindByID(ctx context.Context, id uint) (*model.ArchiveRecord, error) {
	var record model.ArchiveRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *archiveRepository) List(ctx context.Context, filter ArchiveFilter) ([]model.ArchiveRecord, error) {
	q := r.db.WithContext(ctx).Model(&model.ArchiveRecord{})
	if filter.ItemType != "" {
		q = q.Where("item_type = ?", filter.ItemType)
	}
	if !filter.From.IsZero() {
		q = q.Where("archived_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where("archived_at <= ?", filter.To)
	}

	var records []model.ArchiveRecord
	if err := q.Order("archived_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *archiveRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.ArchiveRecord{}, id).Error
}

func (r *archiveRepository) Search(ctx context.Context, query string) ([]model.ArchiveRecord, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var records []model.ArchiveRecord
	if err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
