// Package registry maps route-supplied resource type names onto their
// backing entity stores. The set of kinds is closed; unknown names are
// rejected at the boundary before any store is touched.
package registry

import (
	"context"
	"fmt"

	apperrors "studentboard/internal/errors"
)

// Kind identifies one resource collection.
type Kind string

// The closed set of dispatchable resource kinds.
const (
	KindStudents      Kind = "students"
	KindAnnouncements Kind = "announcements"
	KindEvents        Kind = "events"
	KindTimetable     Kind = "timetable"
	KindResults       Kind = "results"
	KindArchive       Kind = "archive"
)

var kinds = map[Kind]struct{}{
	KindStudents:      {},
	KindAnnouncements: {},
	KindEvents:        {},
	KindTimetable:     {},
	KindResults:       {},
	KindArchive:       {},
}

// ParseKind validates a route type segment against the closed kind set.
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	if _, ok := kinds[k]; !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidResourceType, name)
	}
	return k, nil
}

// Store is the contract every registered entity store honors. Get, Update
// and Delete are id-addressed; Update applies only the supplied fields and
// leaves the rest unchanged.
type Store interface {
	Get(ctx context.Context, id uint) (interface{}, error)
	List(ctx context.Context) (interface{}, error)
	Create(ctx context.Context, fields map[string]interface{}, actor string) (interface{}, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (interface{}, error)
	Delete(ctx context.Context, id uint) error
}

// Searchable is implemented by stores that support case-insensitive
// substring search for the /api/search fan-out.
type Searchable interface {
	Search(ctx context.Context, query string) (interface{}, error)
}

// Archivable is implemented by stores whose records may be archived.
// Snapshot returns the display fields copied into the archive record and
// doubles as the existence check.
type Archivable interface {
	Snapshot(ctx context.Context, id uint) (title, category string, err error)
}

// Registry is the fixed kind-to-store mapping used by the CRUD dispatcher.
type Registry struct {
	stores map[Kind]Store
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{stores: make(map[Kind]Store)}
}

// Register binds a store to a kind. Rebinding a kind is a wiring bug and
// panics at startup rather than surfacing at request time.
func (r *Registry) Register(kind Kind, store Store) {
	if _, ok := kinds[kind]; !ok {
		panic(fmt.Sprintf("registry: unknown kind %q", kind))
	}
	if _, dup := r.stores[kind]; dup {
		panic(fmt.Sprintf("registry: kind %q registered twice", kind))
	}
	r.stores[kind] = store
}

// Lookup resolves a route type segment to its kind and store.
func (r *Registry) Lookup(name string) (Kind, Store, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return "", nil, err
	}
	store, ok := r.stores[kind]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidResourceType, name)
	}
	return kind, store, nil
}

// All returns the registered kind-to-store mapping for fan-out operations.
func (r *Registry) All() map[Kind]Store {
	return r.stores
}
