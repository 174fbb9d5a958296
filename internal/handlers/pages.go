package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"folio.dev/internal/filter"
	"folio.dev/internal/render"
	"folio.dev/internal/services"
	"folio.dev/internal/view"
	"folio.dev/internal/web"
)

// PageHandler renders the HTML pages.
type PageHandler struct {
	log       *zap.Logger
	projects  *services.ProjectService
	renderer  *render.Renderer
	templates *web.Templates
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(log *zap.Logger, ps *services.ProjectService, r *render.Renderer, t *web.Templates) *PageHandler {
	return &PageHandler{log: log, projects: ps, renderer: r, templates: t}
}

// CatalogPage is the data for the catalog (grid/list) page, including the
// optional modal overlay selected by the project query parameter.
type CatalogPage struct {
	Cards       []view.Card
	View        string
	Query       string
	Sort        string
	ShowAll     bool
	Facets      filter.FacetSet
	Selected    services.ListOptions
	Suggestions []string

	// Modal is set when ?project=<id> resolves; ModalNotFound carries the id
	// when it does not. Either way the catalog stays rendered underneath.
	Modal         *view.Detail
	ModalNotFound string
}

// Catalog handles GET /. The same handler serves the plain catalog and the
// modal overlay variant: ?project=<id> reuses the detail lookup by id.
func (h *PageHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	opts := listOptions(r)

	projects, err := h.projects.List(ctx, opts)
	if err != nil {
		h.log.Error("catalog load failed", zap.Error(err))
		http.Error(w, "failed to load projects", http.StatusInternalServerError)
		return
	}
	facets, err := h.projects.Facets(ctx)
	if err != nil {
		h.log.Error("facet load failed", zap.Error(err))
		http.Error(w, "failed to load projects", http.StatusInternalServerError)
		return
	}
	suggestions, _ := h.projects.Suggest(ctx, opts.Query)

	page := CatalogPage{
		Cards:       view.Cards(projects),
		View:        viewMode(r),
		Query:       opts.Query,
		Sort:        string(opts.Sort),
		ShowAll:     opts.ShowAll,
		Facets:      facets,
		Selected:    opts,
		Suggestions: suggestions,
	}

	if pid := r.URL.Query().Get("project"); pid != "" {
		project, err := h.projects.Get(ctx, pid)
		switch {
		case errors.Is(err, services.ErrNotFound):
			page.ModalNotFound = pid
		case err != nil:
			h.log.Error("modal project load failed", zap.String("id", pid), zap.Error(err))
			page.ModalNotFound = pid
		default:
			d := view.ComposeDetail(ctx, h.renderer, *project, true)
			page.Modal = &d
		}
	}

	h.renderPage(w, "catalog", page, http.StatusOK)
}

// ProjectPage is the data for the full detail page.
type ProjectPage struct {
	Detail view.Detail
}

// Project handles GET /projects/{id}.
func (h *PageHandler) Project(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	project, err := h.projects.Get(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			h.renderPage(w, "notfound", map[string]string{"ID": id}, http.StatusNotFound)
			return
		}
		h.log.Error("project load failed", zap.String("id", id), zap.Error(err))
		http.Error(w, "failed to load project", http.StatusInternalServerError)
		return
	}

	h.renderPage(w, "project", ProjectPage{
		Detail: view.ComposeDetail(ctx, h.renderer, *project, false),
	}, http.StatusOK)
}

func (h *PageHandler) renderPage(w http.ResponseWriter, name string, data interface{}, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.templates.Render(w, name, data); err != nil {
		h.log.Error("template render failed", zap.String("template", name), zap.Error(err))
	}
}

func viewMode(r *http.Request) string {
	if r.URL.Query().Get("view") == "list" {
		return "list"
	}
	return "grid"
}
