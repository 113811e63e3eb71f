package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "studentboard/internal/errors"
)

type stubStore struct{}

func (stubStore) Get(ctx context.Context, id uint) (interface{}, error)     { return nil, nil }
func (stubStore) List(ctx context.Context) (interface{}, error)             { return nil, nil }
func (stubStore) Delete(ctx context.Context, id uint) error                 { return nil }
func (stubStore) Create(ctx context.Context, fields map[string]interface{}, actor string) (interface{}, error) {
	return nil, nil
}
func (stubStore) Update(ctx context.Context, id uint, fields map[string]interface{}) (interface{}, error) {
	return nil, nil
}

func TestParseKind(t *testing.T) {
	for _, name := range []string{"students", "announcements", "events", "timetable", "results", "archive"} {
		kind, err := ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, Kind(name), kind)
	}

	for _, name := range []string{"", "bogus-type", "Announcements", "student"} {
		_, err := ParseKind(name)
		assert.ErrorIs(t, err, apperrors.ErrInvalidResourceType, "name %q", name)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	reg := New()
	reg.Register(KindEvents, stubStore{})

	kind, store, err := reg.Lookup("events")
	require.NoError(t, err)
	assert.Equal(t, KindEvents, kind)
	assert.NotNil(t, store)

	// Unknown name fails before any store is consulted.
	_, _, err = reg.Lookup("bogus-type")
	assert.ErrorIs(t, err, apperrors.ErrInvalidResourceType)

	// Known name without a registered store also fails closed.
	_, _, err = reg.Lookup("results")
	assert.ErrorIs(t, err, apperrors.ErrInvalidResourceType)
}

func TestRegistry_RegisterPanics(t *testing.T) {
	reg := New()
	reg.Register(KindEvents, stubStore{})

	assert.Panics(t, func() { reg.Register(KindEvents, stubStore{}) })
	assert.Panics(t, func() { reg.Register(Kind("bogus"), stubStore{}) })
}
