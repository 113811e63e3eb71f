package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"studentboard/internal/model"
)

// BoardRepository defines persistence operations for one board collection.
// Announcements, events, timetable entries and results share the BoardItem
// schema; the table name picks the collection.
type BoardRepository interface {
	Create(ctx context.Context, item *model.BoardItem) error
	FindByID(ctx context.Context, id uint) (*model.BoardItem, error)
	List(ctx context.Context) ([]model.BoardItem, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, query string) ([]model.BoardItem, error)
}

type boardRepository struct {
	db    *gorm.DB
	table string
}

// NewBoardRepository builds a GORM-backed repository over the given table.
func NewBoardRepository(db *gorm.DB, table string) BoardRepository {
	return &boardRepository{db: db, table: table}
}

func (r *boardRepository) Create(ctx context.Context, item *model.BoardItem) error {
	return r.db.WithContext(ctx).Table(r.table).Create(item).Error
}

func (r *boardRepository) FindByID(ctx context.Context, id uint) (*model.BoardItem, error) {
	var item model.BoardItem
	if err := r.db.WithContext(ctx).Table(r.table).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *boardRepository) List(ctx context.Context) ([]model.BoardItem, error) {
	var items []model.BoardItem
	if err := r.db.WithContext(ctx).Table(r.table).Order("date DESC, id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *boardRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Table(r.table).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *boardRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Table(r.table).Where("id = ?", id).Delete(&model.BoardItem{}).Error
}

func (r *boardRepository) Search(ctx context.Context, query string) ([]model.BoardItem, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var items []model.BoardItem
	if err := r.db.WithContext(ctx).Table(r.table).
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
