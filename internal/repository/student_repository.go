package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"studentboard/internal/model"
)

// StudentRepository defines student persistence operations.
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	FindByID(ctx context.Context, id uint) (*model.Student, error)
	FindByRegNo(ctx context.Context, regNo string) (*model.Student, error)
	List(ctx context.Context) ([]model.Student, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, query string) ([]model.Student, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository builds a GORM-backed repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) FindByID(ctx context.Context, id uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindByRegNo(ctx context.Context, regNo string) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).Where("reg_no = ?", regNo).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) List(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	if err := r.db.WithContext(ctx).Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Student{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Student{}, id).Error
}

func (r *studentRepository) Search(ctx context.Context, query string) ([]model.Student, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var students []model.Student
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(reg_no) LIKE ? OR LOWER(major) LIKE ?", pattern, pattern, pattern).
		Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}
