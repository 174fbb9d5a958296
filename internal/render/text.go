package render

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"folio.dev/internal/media"
)

// maxTextBytes bounds how much of a text item gets inlined into the page.
const maxTextBytes = 1 << 20

// textFetcher loads the raw contents of text-type items. Local /projects/
// paths are read straight off the content directory; external URLs are
// fetched over HTTP with the caller's context.
type textFetcher struct {
	contentDir string
	client     *http.Client
}

func newTextFetcher(contentDir string) *textFetcher {
	return &textFetcher{
		contentDir: contentDir,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *textFetcher) fetch(ctx context.Context, src string) (string, error) {
	if media.IsExternal(src) {
		return f.fetchRemote(ctx, src)
	}

	rel, ok := strings.CutPrefix(src, "/projects/")
	if !ok {
		return "", fmt.Errorf("text path outside content root: %s", src)
	}
	data, err := os.ReadFile(filepath.Join(f.contentDir, filepath.FromSlash(rel)))
	if err != nil {
		return "", err
	}
	if len(data) > maxTextBytes {
		data = data[:maxTextBytes]
	}
	return string(data), nil
}

func (f *textFetcher) fetchRemote(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxTextBytes))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
