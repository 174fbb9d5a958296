package services

import (
	"context"
	"errors"
	"fmt"

	"folio.dev/internal/content"
	"folio.dev/internal/filter"
	"folio.dev/internal/models"
)

// ErrNotFound is returned when no project matches a requested id.
var ErrNotFound = errors.New("project not found")

// ProjectService handles project-related operations on top of the content
// store. All reads go through the store's memoized load.
type ProjectService struct {
	store *content.Store
	roots []string
}

// NewProjectService creates a new ProjectService.
func NewProjectService(store *content.Store, roots []string) *ProjectService {
	return &ProjectService{store: store, roots: roots}
}

// ListOptions are the catalog query parameters.
type ListOptions struct {
	Query    string
	Domains  []string
	Mediums  []string
	Statuses []string
	Tags     []string
	ShowAll  bool
	Sort     filter.SortKey
}

// List returns the filtered, sorted catalog view.
func (s *ProjectService) List(ctx context.Context, opts ListOptions) ([]models.Project, error) {
	projects, err := s.store.Load(ctx, s.roots...)
	if err != nil {
		return nil, err
	}

	q := filter.ParseQuery(opts.Query)
	sel := filter.Selection{
		Domains:  opts.Domains,
		Mediums:  opts.Mediums,
		Statuses: opts.Statuses,
		Tags:     opts.Tags,
		ShowAll:  opts.ShowAll,
	}
	return filter.Sort(filter.Apply(projects, q, sel), opts.Sort), nil
}

// Get returns a specific project by ID.
func (s *ProjectService) Get(ctx context.Context, id string) (*models.Project, error) {
	projects, err := s.store.Load(ctx, s.roots...)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Facets derives the filter vocabularies from the full project set.
func (s *ProjectService) Facets(ctx context.Context) (filter.FacetSet, error) {
	projects, err := s.store.Load(ctx, s.roots...)
	if err != nil {
		return filter.FacetSet{}, err
	}
	return filter.Facets(projects), nil
}

// Suggest offers up to five facet values completing a scoped search query.
func (s *ProjectService) Suggest(ctx context.Context, query string) ([]string, error) {
	facets, err := s.Facets(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Suggest(filter.ParseQuery(query), facets), nil
}
