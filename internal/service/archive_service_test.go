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
	"studentboard/internal/registry"
	"studentboard/internal/repository"
)

// MockArchiveRepository is a mock implementation of ArchiveRepository.
type MockArchiveRepository struct {
	mock.Mock
}

func (m *MockArchiveRepository) Create(ctx context.Context, record *model.ArchiveRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockArchiveRepository) FindByID(ctx context.Context, id uint) (*model.ArchiveRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArchiveRecord), args.Error(1)
}

func (m *MockArchiveRepository) List(ctx context.Context, filter repository.ArchiveFilter) ([]model.ArchiveRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ArchiveRecord), args.Error(1)
}

func (m *MockArchiveRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArchiveRepository) Search(ctx context.Context, query string) ([]model.ArchiveRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ArchiveRecord), args.Error(1)
}

// newArchiveFixture wires an archive service behind a registry holding one
// announcements store.
func newArchiveFixture(boardRepo *MockBoardRepository, archiveRepo *MockArchiveRepository) *ArchiveService {
	reg := registry.New()
	reg.Register(registry.KindAnnouncements, NewBoardService(registry.KindAnnouncements, boardRepo, nil))
	svc := NewArchiveService(archiveRepo, reg)
	reg.Register(registry.KindArchive, svc)
	return svc
}

func TestArchiveService_ArchiveItem(t *testing.T) {
	boardRepo := new(MockBoardRepository)
	boardRepo.On("FindByID", mock.Anything, uint(4)).Return(&model.BoardItem{
		ID: 4, Title: "Old notice", Category: "general", Description: "d", Date: "2026-01-01",
	}, nil)

	archiveRepo := new(MockArchiveRepository)
	archiveRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ArchiveRecord")).Return(nil)

	svc := newArchiveFixture(boardRepo, archiveRepo)
	record, err := svc.ArchiveItem(context.Background(), "announcements", 4, "deptadmin")

	require.NoError(t, err)
	assert.Equal(t, "announcements", record.ItemType)
	assert.Equal(t, uint(4), record.ItemID)
	assert.Equal(t, "Old notice", record.Title)
	assert.Equal(t, "general", record.Category)
	assert.Equal(t, "deptadmin", record.ArchivedBy)
	assert.False(t, record.ArchivedAt.IsZero())

	archiveRepo.AssertExpectations(t)
}

func TestArchiveService_ArchiveItem_MissingOriginal(t *testing.T) {
	boardRepo := new(MockBoardRepository)
	boardRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	archiveRepo := new(MockArchiveRepository)

	svc := newArchiveFixture(boardRepo, archiveRepo)
	_, err := svc.ArchiveItem(context.Background(), "announcements", 99, "deptadmin")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	archiveRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestArchiveService_ArchiveItem_UnknownType(t *testing.T) {
	svc := newArchiveFixture(new(MockBoardRepository), new(MockArchiveRepository))

	_, err := svc.ArchiveItem(context.Background(), "bogus-type", 1, "deptadmin")
	assert.ErrorIs(t, err, apperrors.ErrInvalidResourceType)
}

func TestArchiveService_Create_RejectsArchivingTheArchive(t *testing.T) {
	svc := newArchiveFixture(new(MockBoardRepository), new(MockArchiveRepository))

	_, err := svc.Create(context.Background(), map[string]interface{}{
		"item_type": "archive",
		"item_id":   1,
	}, "deptadmin")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestArchiveService_Update_Immutable(t *testing.T) {
	svc := newArchiveFixture(new(MockBoardRepository), new(MockArchiveRepository))

	_, err := svc.Update(context.Background(), 1, map[string]interface{}{"title": "new"})
	assert.ErrorIs(t, err, apperrors.ErrImmutableRecord)
}

func TestArchiveService_ListFiltered(t *testing.T) {
	archiveRepo := new(MockArchiveRepository)
	archiveRepo.On("List", mock.Anything, mock.MatchedBy(func(f repository.ArchiveFilter) bool {
		return f.ItemType == "events" && !f.From.IsZero() && !f.To.IsZero()
	})).Return([]model.ArchiveRecord{}, nil)

	svc := newArchiveFixture(new(MockBoardRepository), archiveRepo)

	_, err := svc.ListFiltered(context.Background(), "events", "2026-01-01", "2026-06-30")
	require.NoError(t, err)

	_, err = svc.ListFiltered(context.Background(), "bogus", "", "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidResourceType)

	_, err = svc.ListFiltered(context.Background(), "", "not-a-date", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	archiveRepo.AssertExpectations(t)
}
