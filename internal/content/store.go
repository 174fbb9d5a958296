// Package content loads project records from JSON documents on disk.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"folio.dev/internal/models"
)

// Store walks content roots for project documents and memoizes the result per
// root-set for the life of the process. Concurrent first loads share a single
// walk. Records are never mutated after load; callers sort and filter copies.
type Store struct {
	log *zap.Logger

	mu    sync.RWMutex
	cache map[string][]models.Project
	group singleflight.Group
}

// NewStore creates a Store.
func NewStore(log *zap.Logger) *Store {
	return &Store{
		log:   log,
		cache: make(map[string][]models.Project),
	}
}

// Load returns every accepted project record under the given roots, in
// directory-walk order. A malformed file or a missing root is logged and
// skipped; zero usable roots yields an empty, non-error result.
func (s *Store) Load(ctx context.Context, roots ...string) ([]models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := strings.Join(roots, "\x00")

	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		projects := s.loadAll(roots)
		s.mu.Lock()
		s.cache[key] = projects
		s.mu.Unlock()
		return projects, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.Project), nil
}

// Invalidate drops every memoized root-set so the next Load re-walks.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.cache = make(map[string][]models.Project)
	s.mu.Unlock()
}

func (s *Store) loadAll(roots []string) []models.Project {
	var projects []models.Project
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			s.log.Warn("content root missing, skipping", zap.String("root", root))
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				s.log.Warn("walk error, skipping", zap.String("path", path), zap.Error(err))
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
				return nil
			}

			loaded, err := s.loadFile(path)
			if err != nil {
				s.log.Warn("malformed content file, skipping", zap.String("path", path), zap.Error(err))
				return nil
			}
			projects = append(projects, loaded...)
			return nil
		})
		if err != nil {
			s.log.Warn("walk aborted", zap.String("root", root), zap.Error(err))
		}
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects
}

// loadFile parses one document, which may hold a single record or an array,
// and applies the inclusion predicate to each element independently.
func (s *Store) loadFile(path string) ([]models.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raws []json.RawMessage
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil, err
		}
	} else {
		var raw json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, err
		}
		raws = append(raws, raw)
	}

	var out []models.Project
	for _, raw := range raws {
		fields := map[string]json.RawMessage{}
		if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
			s.log.Debug("skipping non-object record", zap.String("path", path))
			continue
		}
		if !includeRecord(fields) {
			continue
		}

		var p models.Project
		if err := json.Unmarshal(raw, &p); err != nil {
			s.log.Warn("skipping undecodable record", zap.String("path", path), zap.Error(err))
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// includeRecord is the inclusion predicate: records under review, non-public
// records, and records without an id stay out of the working set.
func includeRecord(fields map[string]json.RawMessage) bool {
	if raw, ok := fields["reviewed"]; ok && !truthy(raw) {
		return false
	}
	if raw, ok := fields["visibility"]; ok {
		var v string
		if err := json.Unmarshal(raw, &v); err != nil || v != "public" {
			return false
		}
	}
	raw, ok := fields["id"]
	if !ok || !truthy(raw) {
		return false
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil || id == "" {
		return false
	}
	return true
}

// truthy mirrors the loose falsiness the content convention uses: absent,
// null, false, 0, and "" all count as false.
func truthy(raw json.RawMessage) bool {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	default:
		return true
	}
}
