package service

import (
	"context"
	"fmt"

	apperrors "studentboard/internal/errors"
	"studentboard/internal/registry"
)

// SearchService fans a substring query out across the searchable
// collections and returns a mapping from collection name to matches.
type SearchService struct {
	reg *registry.Registry
}

// NewSearchService creates the search service.
func NewSearchService(reg *registry.Registry) *SearchService {
	return &SearchService{reg: reg}
}

// Search runs a case-insensitive substring query. When typeName is empty
// every searchable collection is queried; otherwise only the named one.
func (s *SearchService) Search(ctx context.Context, query, typeName string) (map[string]interface{}, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", apperrors.ErrValidation)
	}

	results := make(map[string]interface{})

	if typeName != "" {
		kind, store, err := s.reg.Lookup(typeName)
		if err != nil {
			return nil, err
		}
		searchable, ok := store.(registry.Searchable)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not searchable", apperrors.ErrInvalidResourceType, typeName)
		}
		matches, err := searchable.Search(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("search %s: %w", kind, err)
		}
		results[string(kind)] = matches
		return results, nil
	}

	for kind, store := range s.reg.All() {
		searchable, ok := store.(registry.Searchable)
		if !ok {
			continue
		}
		matches, err := searchable.Search(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("search %s: %w", kind, err)
		}
		results[string(kind)] = matches
	}
	return results, nil
}
