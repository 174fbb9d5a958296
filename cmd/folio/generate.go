package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"folio.dev/internal/config"
	"folio.dev/internal/content"
	"folio.dev/internal/filter"
	"folio.dev/internal/handlers"
	"folio.dev/internal/logging"
	"folio.dev/internal/render"
	"folio.dev/internal/view"
	"folio.dev/internal/web"
)

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <output-dir>",
		Short: "Render the catalog and every project page to static HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), args[0])
		},
	}
}

func runGenerate(ctx context.Context, outDir string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	store := content.NewStore(log)
	projects, err := store.Load(ctx, cfg.ContentRoots...)
	if err != nil {
		return err
	}

	templates, err := web.LoadTemplates(cfg.TemplatesDir)
	if err != nil {
		return err
	}
	renderer := render.New(log, cfg.ProjectsDir(), cfg.BaseHost())

	// Catalog page: featured projects, newest first, same defaults as the
	// server's root route.
	visible := filter.Sort(
		filter.Apply(projects, filter.Query{Scope: filter.ScopeAll}, filter.Selection{}),
		filter.SortNewest,
	)
	catalog := handlers.CatalogPage{
		Cards:  view.Cards(visible),
		View:   "grid",
		Sort:   string(filter.SortNewest),
		Facets: filter.Facets(projects),
	}
	if err := writePage(templates, filepath.Join(outDir, "index.html"), "catalog", catalog); err != nil {
		return err
	}

	// Every loaded project gets a detail page, featured or not.
	for _, p := range projects {
		page := handlers.ProjectPage{
			Detail: view.ComposeDetail(ctx, renderer, p, false),
		}
		path := filepath.Join(outDir, "projects", p.ID, "index.html")
		if err := writePage(templates, path, "project", page); err != nil {
			return err
		}
	}

	fmt.Printf("Generated %d project pages in %s\n", len(projects), outDir)
	return nil
}

func writePage(templates *web.Templates, path, name string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return templates.Render(f, name, data)
}
