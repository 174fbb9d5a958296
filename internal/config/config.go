package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration. Values come from built-in
// defaults, then an optional YAML file, then environment overrides, in that
// order.
type Config struct {
	ServerAddr   string   `yaml:"server_addr"`
	BaseURL      string   `yaml:"base_url"`
	ContentRoots []string `yaml:"content_roots"`
	StaticDir    string   `yaml:"static_dir"`
	TemplatesDir string   `yaml:"templates_dir"`
	LogLevel     string   `yaml:"log_level"`
	// Watch enables the development content watcher.
	Watch bool `yaml:"watch"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ServerAddr:   ":8080",
		BaseURL:      "http://localhost:8080",
		ContentRoots: []string{"content/projects"},
		StaticDir:    "static",
		TemplatesDir: "web/templates",
		LogLevel:     "info",
	}
}

// Load reads configuration from the given YAML file, if it exists, and
// applies environment overrides. A missing file is not an error; a malformed
// one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.ServerAddr = v
	}
	if v := os.Getenv("FOLIO_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("FOLIO_CONTENT_ROOTS"); v != "" {
		c.ContentRoots = splitList(v)
	}
	if v := os.Getenv("FOLIO_STATIC_DIR"); v != "" {
		c.StaticDir = v
	}
	if v := os.Getenv("FOLIO_TEMPLATES_DIR"); v != "" {
		c.TemplatesDir = v
	}
	if v := os.Getenv("FOLIO_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("FOLIO_WATCH"); v != "" {
		c.Watch = v == "1" || strings.EqualFold(v, "true")
	}
}

// ProjectsDir is the filesystem directory backing the /projects/ URL space:
// the first content root.
func (c *Config) ProjectsDir() string {
	if len(c.ContentRoots) == 0 {
		return "content/projects"
	}
	return c.ContentRoots[0]
}

// BaseHost returns the hostname of the configured base URL, used for
// same-origin link detection.
func (c *Config) BaseHost() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
