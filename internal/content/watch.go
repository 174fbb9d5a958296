package content

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch invalidates the memoized project set whenever anything under the
// given roots changes, so the next Load re-walks the tree. It blocks until
// ctx is cancelled. Intended for development; production content is static.
func (s *Store) Watch(ctx context.Context, roots ...string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// fsnotify does not recurse, so register every directory up front and
	// pick up new ones as they appear.
	for _, root := range roots {
		if err := addRecursive(watcher, root); err != nil {
			s.log.Warn("cannot watch content root", zap.String("root", root), zap.Error(err))
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			s.log.Debug("content change", zap.String("op", event.Op.String()), zap.String("path", event.Name))
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addRecursive(watcher, event.Name)
				}
			}
			s.Invalidate()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("watch error", zap.Error(err))
		}
	}
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
