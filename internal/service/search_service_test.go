package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "studentboard/internal/errors"
	"studentboard/internal/model"
	"studentboard/internal/registry"
)

func TestSearchService_Search(t *testing.T) {
	annRepo := new(MockBoardRepository)
	annRepo.On("Search", mock.Anything, "exam").Return([]model.BoardItem{{ID: 1, Title: "Exam schedule"}}, nil)

	eventRepo := new(MockBoardRepository)
	eventRepo.On("Search", mock.Anything, "exam").Return([]model.BoardItem{}, nil)

	reg := registry.New()
	reg.Register(registry.KindAnnouncements, NewBoardService(registry.KindAnnouncements, annRepo, nil))
	reg.Register(registry.KindEvents, NewBoardService(registry.KindEvents, eventRepo, nil))

	svc := NewSearchService(reg)

	t.Run("fans out over every collection", func(t *testing.T) {
		results, err := svc.Search(context.Background(), "exam", "")
		require.NoError(t, err)
		assert.Len(t, results, 2)
		assert.Contains(t, results, "announcements")
		assert.Contains(t, results, "events")
	})

	t.Run("type narrows to one collection", func(t *testing.T) {
		results, err := svc.Search(context.Background(), "exam", "announcements")
		require.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Contains(t, results, "announcements")
	})

	t.Run("empty query is a validation error", func(t *testing.T) {
		_, err := svc.Search(context.Background(), "", "")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("bogus type is rejected", func(t *testing.T) {
		_, err := svc.Search(context.Background(), "exam", "bogus")
		assert.ErrorIs(t, err, apperrors.ErrInvalidResourceType)
	})
}
