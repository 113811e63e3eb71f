package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "studentboard/internal/errors"
	"studentboard/internal/model"
	"studentboard/internal/registry"
	"studentboard/internal/repository"
)

// studentUpdatableColumns excludes reg_no: the registration number is the
// student's identity and is fixed at registration.
var studentUpdatableColumns = map[string]bool{
	"name":    true,
	"major":   true,
	"contact": true,
}

// CreateStudentRequest is the typed create payload for the students
// collection.
type CreateStudentRequest struct {
	Name    string `json:"name" validate:"required"`
	RegNo   string `json:"reg_no" validate:"required"`
	Major   string `json:"major"`
	Contact string `json:"contact"`
}

// StudentService implements the registry store contract for students.
type StudentService struct {
	repo repository.StudentRepository
}

var (
	_ registry.Store      = (*StudentService)(nil)
	_ registry.Searchable = (*StudentService)(nil)
)

// NewStudentService creates the students store.
func NewStudentService(repo repository.StudentRepository) *StudentService {
	return &StudentService{repo: repo}
}

// Get returns the full record for an id.
func (s *StudentService) Get(ctx context.Context, id uint) (interface{}, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return student, nil
}

// List returns the whole collection.
func (s *StudentService) List(ctx context.Context) (interface{}, error) {
	return s.repo.List(ctx)
}

// Create validates required fields and persists. A duplicate registration
// number is a conflict and leaves the original record untouched.
func (s *StudentService) Create(ctx context.Context, fields map[string]interface{}, _ string) (interface{}, error) {
	var req CreateStudentRequest
	if err := decodeFields(fields, &req); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByRegNo(ctx, req.RegNo)
	if err == nil && existing != nil {
		return nil, fmt.Errorf("%w: registration number %q", apperrors.ErrConflict, req.RegNo)
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check student existence: %w", err)
	}

	student := &model.Student{
		Name:    req.Name,
		RegNo:   req.RegNo,
		Major:   req.Major,
		Contact: req.Contact,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	return student, nil
}

// Update applies the supplied fields only and returns the updated record.
func (s *StudentService) Update(ctx context.Context, id uint, fields map[string]interface{}) (interface{}, error) {
	cols := filterColumns(fields, studentUpdatableColumns)
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields supplied", apperrors.ErrValidation)
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if err := s.repo.UpdateFields(ctx, id, cols); err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}
	return s.repo.FindByID(ctx, id)
}

// Delete removes a record by id.
func (s *StudentService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Search matches name, registration number and major.
func (s *StudentService) Search(ctx context.Context, query string) (interface{}, error) {
	return s.repo.Search(ctx, query)
}
