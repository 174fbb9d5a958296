package view

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"folio.dev/internal/models"
	"folio.dev/internal/render"
)

func testRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	return render.New(zaptest.NewLogger(t), t.TempDir(), "folio.dev")
}

func galleryOf(items ...models.CollectionItem) models.Collections {
	return models.NewCollections([]string{"gallery"}, map[string]models.CollectionGroup{
		"gallery": {Items: items},
	})
}

func TestCompact(t *testing.T) {
	img := models.CollectionItem{ID: "a", Type: models.ItemImage, Path: "a.png"}

	t.Run("fewer than two sections is compact", func(t *testing.T) {
		assert.True(t, Compact(models.Project{ID: "p"}))
		assert.True(t, Compact(models.Project{ID: "p", Description: "text"}))
		assert.True(t, Compact(models.Project{ID: "p", Collection: galleryOf(img)}))
	})

	t.Run("two or more sections is two-column", func(t *testing.T) {
		assert.False(t, Compact(models.Project{ID: "p", Description: "text", Story: "story"}))
		assert.False(t, Compact(models.Project{
			ID:         "p",
			Collection: galleryOf(img),
			Resources:  []models.Resource{{URL: "https://example.com"}},
		}))
	})

	t.Run("empty collection does not count", func(t *testing.T) {
		p := models.Project{
			ID:          "p",
			Description: "text",
			Collection:  models.NewCollections([]string{"gallery"}, map[string]models.CollectionGroup{"gallery": {}}),
		}
		assert.True(t, Compact(p))
	})
}

func TestComposeDetailCollections(t *testing.T) {
	ctx := context.Background()
	r := testRenderer(t)

	t.Run("no collection renders nothing", func(t *testing.T) {
		d := ComposeDetail(ctx, r, models.Project{ID: "p"}, false)
		assert.Empty(t, d.Tabs)
		assert.False(t, d.ShowTabs)
	})

	t.Run("empty groups are dropped", func(t *testing.T) {
		p := models.Project{
			ID: "p",
			Collection: models.NewCollections([]string{"gallery"}, map[string]models.CollectionGroup{
				"gallery": {},
			}),
		}
		d := ComposeDetail(ctx, r, p, false)
		assert.Empty(t, d.Tabs)
	})

	t.Run("single collection gets no tab chrome", func(t *testing.T) {
		p := models.Project{
			ID:         "p",
			Collection: galleryOf(models.CollectionItem{ID: "a", Type: models.ItemImage, Path: "a.png"}),
		}
		d := ComposeDetail(ctx, r, p, false)
		require.Len(t, d.Tabs, 1)
		assert.False(t, d.ShowTabs)
		assert.Equal(t, "gallery", d.Tabs[0].Label, "name doubles as label")
	})

	t.Run("multiple collections get tabs, first declared first", func(t *testing.T) {
		p := models.Project{
			ID: "p",
			Collection: models.NewCollections([]string{"renders", "sketches"}, map[string]models.CollectionGroup{
				"renders":  {Items: []models.CollectionItem{{ID: "r1", Type: models.ItemImage, Path: "r.png"}}},
				"sketches": {Label: "Sketchbook", Items: []models.CollectionItem{{ID: "s1", Type: models.ItemImage, Path: "s.png"}}},
			}),
		}
		d := ComposeDetail(ctx, r, p, false)
		require.Len(t, d.Tabs, 2)
		assert.True(t, d.ShowTabs)
		assert.Equal(t, "renders", d.Tabs[0].Name)
		assert.Equal(t, "Sketchbook", d.Tabs[1].Label)
	})

	t.Run("items resolve against collection context", func(t *testing.T) {
		p := models.Project{
			ID:         "p",
			FolderName: "folder",
			Collection: galleryOf(models.CollectionItem{ID: "shot", Type: models.ItemImage, Path: "a.png"}),
		}
		d := ComposeDetail(ctx, r, p, false)
		require.Len(t, d.Tabs, 1)
		require.Len(t, d.Tabs[0].Items, 1)
		assert.Equal(t, "/projects/folder/gallery/shot/a.png", d.Tabs[0].Items[0].Src)
	})

	t.Run("modal flag reaches nested items", func(t *testing.T) {
		p := models.Project{
			ID:         "p",
			Collection: galleryOf(models.CollectionItem{ID: "a", Type: models.ItemImage, Path: "a.png"}),
		}
		d := ComposeDetail(ctx, r, p, true)
		assert.True(t, d.InModal)
		assert.True(t, d.Tabs[0].Items[0].InModal)
	})
}

func TestResolveBanner(t *testing.T) {
	off := false

	t.Run("nil without images", func(t *testing.T) {
		assert.Nil(t, resolveBanner(models.Project{ID: "p"}))
	})

	t.Run("banner slot wins over thumbnail", func(t *testing.T) {
		p := models.Project{
			ID:     "p",
			Images: map[string]string{"thumbnail": "t.png", "banner": "b.png"},
		}
		b := resolveBanner(p)
		require.NotNil(t, b)
		assert.Equal(t, "/projects/p/b-optimized.webp", b.Src)
		assert.False(t, b.IsVideo)
	})

	t.Run("video banner defaults to autoplay loop muted", func(t *testing.T) {
		p := models.Project{ID: "p", Images: map[string]string{"banner": "b.mp4"}}
		b := resolveBanner(p)
		require.NotNil(t, b)
		assert.True(t, b.IsVideo)
		assert.Equal(t, "/projects/p/b-optimized.mp4", b.Src)
		assert.True(t, b.AutoPlay)
		assert.True(t, b.Loop)
		assert.True(t, b.Muted)
	})

	t.Run("image settings override playback", func(t *testing.T) {
		p := models.Project{
			ID:            "p",
			Images:        map[string]string{"banner": "b.mp4"},
			ImageSettings: map[string]models.PlaybackHints{"banner": {AutoPlay: &off}},
		}
		b := resolveBanner(p)
		require.NotNil(t, b)
		assert.False(t, b.AutoPlay)
		assert.False(t, b.Muted)
		assert.True(t, b.Loop)
	})
}

func TestCards(t *testing.T) {
	cards := Cards([]models.Project{
		{ID: "a", Title: "A", Images: map[string]string{"thumbnail": "t.png"}},
		{ID: "b", Title: "B"},
	})

	require.Len(t, cards, 2)
	assert.Equal(t, "/projects/a/t-optimized.webp", cards[0].Thumbnail)
	assert.Equal(t, "/projects/a", cards[0].Href)
	assert.Equal(t, "/?project=a", cards[0].ModalHref)

	// No thumbnail degrades to the placeholder, never an empty src.
	assert.NotEmpty(t, cards[1].Thumbnail)
}

func TestCardHrefsEscapeID(t *testing.T) {
	cards := Cards([]models.Project{{ID: "odd id/№1", Title: "Odd"}})

	require.Len(t, cards, 1)
	assert.Equal(t, "/projects/odd%20id%2F%E2%84%961", cards[0].Href)
	assert.Equal(t, "/?project=odd+id%2F%E2%84%961", cards[0].ModalHref)
}
