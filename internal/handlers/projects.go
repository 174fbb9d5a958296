package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"folio.dev/internal/filter"
	"folio.dev/internal/services"
)

// ProjectHandler handles the JSON project endpoints.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// ListProjects handles GET /api/projects.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context(), listOptions(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load projects")
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{id}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(w, http.StatusNotFound, "project not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load project")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// GetFacets handles GET /api/facets.
func (h *ProjectHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	facets, err := h.projectService.Facets(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load facets")
		return
	}
	respondJSON(w, http.StatusOK, facets)
}

// Suggest handles GET /api/suggest?q=.
func (h *ProjectHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.projectService.Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load suggestions")
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	respondJSON(w, http.StatusOK, suggestions)
}

// listOptions maps catalog query parameters onto service options. Multi-value
// facets accept both repeated parameters and comma-separated lists.
func listOptions(r *http.Request) services.ListOptions {
	q := r.URL.Query()
	return services.ListOptions{
		Query:    q.Get("q"),
		Domains:  multiParam(q["domain"]),
		Mediums:  multiParam(q["medium"]),
		Statuses: multiParam(q["status"]),
		Tags:     multiParam(q["tags"]),
		ShowAll:  q.Get("all") == "1" || strings.EqualFold(q.Get("all"), "true"),
		Sort:     filter.SortKey(q.Get("sort")),
	}
}

func multiParam(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
