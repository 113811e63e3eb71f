package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "studentboard/internal/errors"
	"studentboard/internal/model"
)

func TestStudentService_Create(t *testing.T) {
	t.Run("successful create", func(t *testing.T) {
		repo := new(MockStudentRepository)
		repo.On("FindByRegNo", mock.Anything, "CS-001").Return(nil, gorm.ErrRecordNotFound)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Student")).Return(nil)

		svc := NewStudentService(repo)
		record, err := svc.Create(context.Background(), map[string]interface{}{
			"name":   "Alice Smith",
			"reg_no": "CS-001",
			"major":  "Computer Science",
		}, "deptadmin")

		require.NoError(t, err)
		student := record.(*model.Student)
		assert.Equal(t, "Alice Smith", student.Name)
		assert.Equal(t, "CS-001", student.RegNo)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate reg_no is a conflict", func(t *testing.T) {
		repo := new(MockStudentRepository)
		repo.On("FindByRegNo", mock.Anything, "CS-001").Return(&model.Student{RegNo: "CS-001"}, nil)

		svc := NewStudentService(repo)
		_, err := svc.Create(context.Background(), map[string]interface{}{
			"name":   "Imposter",
			"reg_no": "CS-001",
		}, "deptadmin")

		assert.ErrorIs(t, err, apperrors.ErrConflict)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing required field", func(t *testing.T) {
		repo := new(MockStudentRepository)

		svc := NewStudentService(repo)
		_, err := svc.Create(context.Background(), map[string]interface{}{
			"name": "No RegNo",
		}, "deptadmin")

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		repo.AssertNotCalled(t, "FindByRegNo", mock.Anything, mock.Anything)
	})
}

func TestStudentService_Update_RegNoIsImmutable(t *testing.T) {
	existing := &model.Student{ID: 5, Name: "Alice", RegNo: "CS-001"}

	repo := new(MockStudentRepository)
	repo.On("FindByID", mock.Anything, uint(5)).Return(existing, nil)
	repo.On("UpdateFields", mock.Anything, uint(5), map[string]interface{}{
		"major": "Mathematics",
	}).Return(nil)

	svc := NewStudentService(repo)
	_, err := svc.Update(context.Background(), 5, map[string]interface{}{
		"major":  "Mathematics",
		"reg_no": "CS-999", // silently dropped: identity is fixed
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestStudentService_Delete_NotFound(t *testing.T) {
	repo := new(MockStudentRepository)
	repo.On("FindByID", mock.Anything, uint(77)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewStudentService(repo)
	assert.ErrorIs(t, svc.Delete(context.Background(), 77), apperrors.ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
