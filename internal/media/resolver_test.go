package media

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"folio.dev/internal/models"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, KindImage, Classify("photo.png"))
	assert.Equal(t, KindImage, Classify("PHOTO.JPG"))
	assert.Equal(t, KindImage, Classify("pic.avif"))
	assert.Equal(t, KindVideo, Classify("clip.mp4"))
	assert.Equal(t, KindVideo, Classify("clip.MOV"))
	assert.Equal(t, KindOther, Classify("notes.txt"))
	assert.Equal(t, KindOther, Classify("archive"))
	assert.Equal(t, KindOther, Classify(""))
}

func TestResolvePath(t *testing.T) {
	t.Run("image rewrites to optimized webp", func(t *testing.T) {
		assert.Equal(t, "/projects/x/photo-optimized.webp", ResolvePath("photo.png", "/projects/x"))
	})

	t.Run("video rewrites to optimized mp4", func(t *testing.T) {
		assert.Equal(t, "/projects/x/clip-optimized.mp4", ResolvePath("clip.mp4", "/projects/x"))
	})

	t.Run("already optimized passes through", func(t *testing.T) {
		assert.Equal(t, "/projects/x/photo-optimized.webp", ResolvePath("photo-optimized.webp", "/projects/x"))
		assert.Equal(t, "/projects/x/photo-thumb.webp", ResolvePath("photo-thumb.webp", "/projects/x"))
	})

	t.Run("external URL untouched", func(t *testing.T) {
		assert.Equal(t, "https://example.com/a.png", ResolvePath("https://example.com/a.png", "/projects/x"))
		assert.Equal(t, "http://example.com/v.mp4", ResolvePath("http://example.com/v.mp4", "/projects/x"))
	})

	t.Run("unrecognized extension keeps name, gains folder", func(t *testing.T) {
		assert.Equal(t, "/projects/x/scene.glb", ResolvePath("scene.glb", "/projects/x"))
	})

	t.Run("missing filename yields placeholder", func(t *testing.T) {
		assert.Equal(t, PlaceholderPath, ResolvePath("", "/projects/x"))
	})
}

func TestItemPath(t *testing.T) {
	t.Run("path wins over filePath", func(t *testing.T) {
		item := models.CollectionItem{Type: models.ItemImage, Path: "a.png", FilePath: "b.png"}
		assert.Equal(t, "/projects/x/a.png", ItemPath(item, "x", ""))
	})

	t.Run("filePath when no path", func(t *testing.T) {
		item := models.CollectionItem{Type: models.ItemImage, FilePath: "b.png"}
		assert.Equal(t, "/projects/x/b.png", ItemPath(item, "x", ""))
	})

	t.Run("link type falls back to resource URL", func(t *testing.T) {
		item := models.CollectionItem{
			Type:      models.ItemURLLink,
			Resources: []models.Resource{{URL: "https://example.com/demo"}},
		}
		assert.Equal(t, "https://example.com/demo", ItemPath(item, "x", ""))
	})

	t.Run("non-link type ignores resource URL", func(t *testing.T) {
		item := models.CollectionItem{
			Type:      models.ItemImage,
			Thumbnail: "t.png",
			Resources: []models.Resource{{URL: "https://example.com/demo"}},
		}
		assert.Equal(t, "/projects/x/t.png", ItemPath(item, "x", ""))
	})

	t.Run("nested under collection and item id", func(t *testing.T) {
		item := models.CollectionItem{ID: "shot1", Type: models.ItemImage, Path: "frame.png"}
		assert.Equal(t, "/projects/x/gallery/shot1/frame.png", ItemPath(item, "x", "gallery"))
	})

	t.Run("no collection context stays at folder root", func(t *testing.T) {
		item := models.CollectionItem{ID: "shot1", Type: models.ItemImage, Path: "frame.png"}
		assert.Equal(t, "/projects/x/frame.png", ItemPath(item, "x", ""))
	})

	t.Run("absolute local path untouched", func(t *testing.T) {
		item := models.CollectionItem{Type: models.ItemImage, Path: "/projects/other/frame.png"}
		assert.Equal(t, "/projects/other/frame.png", ItemPath(item, "x", "gallery"))
	})

	t.Run("no locator at all resolves to placeholder", func(t *testing.T) {
		item := models.CollectionItem{ID: "empty", Type: models.ItemImage}
		assert.Equal(t, PlaceholderPath, ItemPath(item, "x", "gallery"))
	})
}
