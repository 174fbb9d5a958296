package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"folio.dev/internal/config"
	"folio.dev/internal/content"
	"folio.dev/internal/logging"
	"folio.dev/internal/media"
	"folio.dev/internal/models"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check content roots for malformed files and broken records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context())
		},
	}
}

func runValidate(ctx context.Context) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	log, err := logging.New("warn")
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	malformed := 0
	for _, root := range cfg.ContentRoots {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
				return nil
			}
			data, err := os.ReadFile(path)
			if err != nil {
				fmt.Printf("ERROR %s: %v\n", path, err)
				malformed++
				return nil
			}
			var v interface{}
			if err := json.Unmarshal(data, &v); err != nil {
				fmt.Printf("ERROR %s: %v\n", path, err)
				malformed++
			}
			return nil
		})
	}

	store := content.NewStore(log)
	projects, err := store.Load(ctx, cfg.ContentRoots...)
	if err != nil {
		return err
	}

	ids := make(map[string]bool, len(projects))
	for _, p := range projects {
		if ids[p.ID] {
			fmt.Printf("WARN %s: duplicate project id\n", p.ID)
		}
		ids[p.ID] = true
	}

	warnings := 0
	for _, p := range projects {
		warnings += validateProject(p, ids)
	}

	fmt.Printf("%d projects, %d warnings, %d malformed files\n", len(projects), warnings, malformed)
	if malformed > 0 {
		return fmt.Errorf("%d malformed content files", malformed)
	}
	return nil
}

func validateProject(p models.Project, ids map[string]bool) int {
	warnings := 0
	warn := func(format string, args ...interface{}) {
		fmt.Printf("WARN %s: %s\n", p.ID, fmt.Sprintf(format, args...))
		warnings++
	}

	if p.Title == "" {
		warn("missing title")
	}
	if p.Timestamp() == "" {
		warn("missing createdAt/updatedAt")
	}
	for _, r := range p.Resources {
		if r.Type == models.ResourceTypeFolio && r.ID != "" && !ids[r.ID] {
			warn("folio resource points at unknown project %q", r.ID)
		}
	}
	for _, name := range p.Collection.Names() {
		group, _ := p.Collection.Get(name)
		for _, item := range group.Items {
			if media.ItemPath(item, p.Folder(), name) == media.PlaceholderPath {
				warn("collection %q item %q has no content locator", name, item.ID)
			}
		}
	}
	return warnings
}
