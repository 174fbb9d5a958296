// Package media resolves raw content filenames to the pre-optimized asset
// variants an external build step generates next to the originals.
package media

import (
	"path"
	"strings"

	"folio.dev/internal/models"
)

// Kind classifies a filename by extension.
type Kind int

const (
	KindOther Kind = iota
	KindImage
	KindVideo
)

// PlaceholderPath is served when an item has no usable content locator.
const PlaceholderPath = "/static/img/placeholder.svg"

// Extension allow-lists, mirroring the media pre-build tooling.
var (
	videoExts = map[string]bool{
		"mov": true, "mp4": true, "webm": true, "mkv": true, "avi": true,
		"flv": true, "ogv": true, "wmv": true, "mpg": true, "mpeg": true,
	}
	imageExts = map[string]bool{
		"png": true, "jpg": true, "jpeg": true, "svg": true, "gif": true,
		"webp": true, "bmp": true, "tiff": true, "heic": true, "avif": true,
	}
)

// Classify reports whether a filename names an image, a video, or neither.
func Classify(filename string) Kind {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	switch {
	case videoExts[ext]:
		return KindVideo
	case imageExts[ext]:
		return KindImage
	default:
		return KindOther
	}
}

// IsExternal reports whether the path is an absolute external URL.
func IsExternal(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

// ResolvePath maps a raw filename inside folder to its optimized variant:
// videos become {stem}-optimized.mp4 and images {stem}-optimized.webp.
// External URLs and names that already carry an optimized/thumb marker are
// not rewritten; unrecognized extensions only gain the folder prefix. A
// missing filename resolves to the placeholder, never to an empty string.
func ResolvePath(filename, folder string) string {
	if filename == "" {
		return PlaceholderPath
	}
	if IsExternal(filename) {
		return filename
	}
	if strings.Contains(filename, "-optimized") || strings.Contains(filename, "-thumb") {
		return join(folder, filename)
	}

	stem := strings.TrimSuffix(filename, path.Ext(filename))
	switch Classify(filename) {
	case KindVideo:
		return join(folder, stem+"-optimized.mp4")
	case KindImage:
		return join(folder, stem+"-optimized.webp")
	default:
		return join(folder, filename)
	}
}

// ItemPath resolves a collection item's display path. Locator precedence is
// path, then filePath, then (for link types) a URL pulled from the item's
// url/href/resource fields, then the thumbnail. Local paths are rooted at the
// project's asset folder; items with an id rendered inside a named collection
// nest one level deeper.
func ItemPath(item models.CollectionItem, folderName, collectionName string) string {
	loc := item.Path
	if loc == "" {
		loc = item.FilePath
	}
	if loc == "" && item.Type.IsLink() {
		loc = linkURL(item)
	}
	if loc == "" {
		loc = item.Thumbnail
	}
	if loc == "" {
		return PlaceholderPath
	}
	if IsExternal(loc) || strings.HasPrefix(loc, "/") {
		return loc
	}

	root := "/projects/" + folderName
	if item.ID != "" && collectionName != "" {
		return join(join(join(root, collectionName), item.ID), loc)
	}
	return join(root, loc)
}

// ThumbnailPath resolves an item's thumbnail through the optimized-asset
// convention, or returns "" when the item has none.
func ThumbnailPath(item models.CollectionItem, folderName string) string {
	if item.Thumbnail == "" {
		return ""
	}
	if IsExternal(item.Thumbnail) || strings.HasPrefix(item.Thumbnail, "/") {
		return item.Thumbnail
	}
	return ResolvePath(item.Thumbnail, "/projects/"+folderName)
}

// linkURL extracts a URL from the locator fallbacks link items may carry.
func linkURL(item models.CollectionItem) string {
	if item.URL != "" {
		return item.URL
	}
	if item.Href != "" {
		return item.Href
	}
	if item.Resource != nil && item.Resource.URL != "" {
		return item.Resource.URL
	}
	for _, r := range item.Resources {
		if r.URL != "" {
			return r.URL
		}
	}
	return ""
}

func join(folder, name string) string {
	if folder == "" {
		return name
	}
	return strings.TrimSuffix(folder, "/") + "/" + strings.TrimPrefix(name, "/")
}
