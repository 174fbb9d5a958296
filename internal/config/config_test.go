package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.ServerAddr)
		assert.Equal(t, []string{"content/projects"}, cfg.ContentRoots)
	})

	t.Run("yaml file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "folio.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"server_addr: \":9000\"\nbase_url: https://folio.dev\ncontent_roots:\n  - data/projects\n  - data/pages\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.ServerAddr)
		assert.Equal(t, "https://folio.dev", cfg.BaseURL)
		assert.Equal(t, []string{"data/projects", "data/pages"}, cfg.ContentRoots)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "folio.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{nope"), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("env beats file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "folio.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server_addr: \":9000\"\n"), 0644))
		t.Setenv("SERVER_ADDR", ":7070")
		t.Setenv("FOLIO_CONTENT_ROOTS", "a, b ,")
		t.Setenv("FOLIO_WATCH", "true")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ":7070", cfg.ServerAddr)
		assert.Equal(t, []string{"a", "b"}, cfg.ContentRoots)
		assert.True(t, cfg.Watch)
	})
}

func TestDerived(t *testing.T) {
	cfg := Default()
	cfg.BaseURL = "https://folio.dev:8443/root"
	assert.Equal(t, "folio.dev", cfg.BaseHost())

	cfg.ContentRoots = nil
	assert.Equal(t, "content/projects", cfg.ProjectsDir())
	cfg.ContentRoots = []string{"data/projects"}
	assert.Equal(t, "data/projects", cfg.ProjectsDir())
}
