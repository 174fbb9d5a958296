// Package render turns collection items into the view models the HTML
// templates consume. One dispatch table serves both the inline and the
// fullscreen presentation.
package render

import (
	"context"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"folio.dev/internal/media"
	"folio.dev/internal/models"
)

// ViewKind selects the template fragment used for an item.
type ViewKind string

// View kinds, one per renderable presentation.
const (
	KindImage       ViewKind = "image"
	KindVideo       ViewKind = "video"
	KindModel       ViewKind = "model"
	KindAudio       ViewKind = "audio"
	KindText        ViewKind = "text"
	KindPDF         ViewKind = "pdf"
	KindGame        ViewKind = "game"
	KindEmbed       ViewKind = "embed"
	KindLinkThumb   ViewKind = "link-thumb"
	KindUnsupported ViewKind = "unsupported"
)

// EmbedFallbackTimeout is how long an embedded link frame gets to signal a
// load before the view falls back to an "open externally" button. Sites that
// forbid framing via X-Frame-Options/CSP never fire an error event, so a
// timer is the only usable signal.
const EmbedFallbackTimeout = 2 * time.Second

// GameSandbox restricts embedded game frames to scripts and same-origin.
const GameSandbox = "allow-scripts allow-same-origin"

// ItemContext carries the project-side context an item is rendered in.
type ItemContext struct {
	FolderName     string
	CollectionName string
	InModal        bool
}

// ItemView is the renderable form of one collection item.
type ItemView struct {
	Kind    ViewKind
	ID      string
	Label   string
	Summary string

	// Src is the resolved content path or URL; never empty, missing
	// locators resolve to the placeholder.
	Src string

	Thumbnail        string
	ThumbnailIsVideo bool

	AutoPlay bool
	Loop     bool
	Muted    bool

	Sandbox        string
	EmbedTimeoutMs int

	Text            string
	TextUnavailable bool

	Resources []Link

	// NewTab is set when Src is cross-origin and must open in a new tab.
	NewTab bool

	// InModal confines nested fullscreen viewers to the dialog bounds.
	InModal    bool
	Fullscreen bool
}

// Renderer resolves and renders collection items. A nil-safe zero value is
// not provided; use New.
type Renderer struct {
	log        *zap.Logger
	contentDir string
	baseHost   string
	text       *textFetcher
}

// New creates a Renderer. contentDir is the filesystem directory backing the
// /projects/ URL space; baseHost is the site's own hostname, used for
// same-origin link detection.
func New(log *zap.Logger, contentDir, baseHost string) *Renderer {
	return &Renderer{
		log:        log,
		contentDir: contentDir,
		baseHost:   baseHost,
		text:       newTextFetcher(contentDir),
	}
}

// Item renders one collection item. The switch over the item type is closed:
// unknown types fall through to an inert placeholder view, never an error.
// Per-item failures (a text file that will not fetch, a missing asset) are
// absorbed here so one bad item cannot blank the rest of the collection.
func (r *Renderer) Item(ctx context.Context, item models.CollectionItem, ic ItemContext) ItemView {
	view := ItemView{
		ID:        item.ID,
		Label:     item.Label,
		Summary:   item.Summary,
		Src:       media.ItemPath(item, ic.FolderName, ic.CollectionName),
		Resources: r.ResourceLinks(item.Resources),
		InModal:   ic.InModal,
	}

	switch item.Type {
	case models.ItemImage:
		view.Kind = KindImage

	case models.ItemVideo:
		view.Kind = KindVideo
		view.AutoPlay = flag(item.AutoPlay, true)
		view.Loop = flag(item.Loop, true)
		view.Muted = view.AutoPlay

	case models.ItemModel:
		view.Kind = KindModel
		view.Loop = flag(item.Loop, true)

	case models.ItemAudio:
		view.Kind = KindAudio

	case models.ItemText:
		if strings.EqualFold(path.Ext(view.Src), ".pdf") {
			view.Kind = KindPDF
			break
		}
		view.Kind = KindText
		text, err := r.text.fetch(ctx, view.Src)
		if err != nil {
			r.log.Debug("text item unavailable", zap.String("src", view.Src), zap.Error(err))
			view.TextUnavailable = true
			break
		}
		view.Text = text

	case models.ItemGame:
		view.Kind = KindGame
		view.Sandbox = GameSandbox

	case models.ItemURLLink, models.ItemFolio:
		view.NewTab = !r.SameOrigin(view.Src)
		if thumb := media.ThumbnailPath(item, ic.FolderName); thumb != "" {
			view.Kind = KindLinkThumb
			view.Thumbnail = thumb
			view.ThumbnailIsVideo = media.Classify(item.Thumbnail) == media.KindVideo
			break
		}
		view.Kind = KindEmbed
		view.EmbedTimeoutMs = int(EmbedFallbackTimeout.Milliseconds())

	default:
		view.Kind = KindUnsupported
	}

	return view
}

// FullscreenItem renders the expanded-overlay variant of an item. Same
// dispatch, only the chrome flag differs.
func (r *Renderer) FullscreenItem(ctx context.Context, item models.CollectionItem, ic ItemContext) ItemView {
	view := r.Item(ctx, item, ic)
	view.Fullscreen = true
	return view
}

// flag resolves a tri-state playback hint against its default.
func flag(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
