package handlers

import (
	"encoding/json"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"folio.dev/internal/config"
	"folio.dev/internal/content"
	"folio.dev/internal/middleware"
	"folio.dev/internal/render"
	"folio.dev/internal/services"
	"folio.dev/internal/web"
)

// SetupRoutes configures all routes and returns the router.
func SetupRoutes(cfg *config.Config, log *zap.Logger, store *content.Store) (http.Handler, error) {
	r := chi.NewRouter()

	// Middleware
	metrics := middleware.NewMetrics()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(metrics.Middleware)

	// Initialize services
	projectService := services.NewProjectService(store, cfg.ContentRoots)
	renderer := render.New(log, cfg.ProjectsDir(), cfg.BaseHost())

	templates, err := web.LoadTemplates(cfg.TemplatesDir)
	if err != nil {
		return nil, err
	}

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService)
	pageHandler := NewPageHandler(log, projectService, renderer, templates)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Get("/facets", projectHandler.GetFacets)
		r.Get("/suggest", projectHandler.Suggest)
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", metrics.Handler())

	// Project assets (pre-optimized by the media build step)
	assetServer := http.FileServer(http.Dir(filepath.Clean(cfg.ProjectsDir())))
	r.Handle("/projects/{id}/*", http.StripPrefix("/projects", guardAssets(assetServer)))

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", neuterDirListing(fileServer)))

	// Pages
	r.Get("/", pageHandler.Catalog)
	r.Get("/projects/{id}", pageHandler.Project)

	return r, nil
}

// neuterDirListing hides directory indexes behind 404s.
func neuterDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.URL.Path) > 0 && r.URL.Path[len(r.URL.Path)-1] == '/' {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// guardAssets hides directory indexes and content records behind 404s. The
// content tree keeps its source .json documents next to the optimized media,
// and those may carry non-public records; only the loader reads them.
func guardAssets(next http.Handler) http.Handler {
	return neuterDirListing(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.EqualFold(path.Ext(r.URL.Path), ".json") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError writes an error JSON response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
