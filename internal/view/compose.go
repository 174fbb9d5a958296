// Package view assembles page-level view models. The detail page and the
// modal overlay share one composition; only the chrome around it differs.
package view

import (
	"context"

	"folio.dev/internal/media"
	"folio.dev/internal/models"
	"folio.dev/internal/render"
)

// CollectionTab is one named sub-collection with its items rendered.
type CollectionTab struct {
	Name        string
	Label       string
	Summary     string
	Description string
	Items       []render.ItemView
}

// Banner is the resolved header media for a project.
type Banner struct {
	Src      string
	IsVideo  bool
	AutoPlay bool
	Loop     bool
	Muted    bool
}

// Detail is the composed project view, rendered either as a full page or
// inside the modal dialog.
type Detail struct {
	Project models.Project

	InModal bool
	// Compact selects the single-column layout; see Compact.
	Compact bool

	Banner *Banner

	Tabs []CollectionTab
	// ShowTabs is set when two or more named sub-collections exist; a single
	// collection renders its items without tab chrome.
	ShowTabs bool

	Resources []render.Link
}

// Compact reports whether the project gets the single-column layout: fewer
// than two of {collection, description, story, resources} present.
func Compact(p models.Project) bool {
	present := 0
	if !p.Collection.Empty() {
		present++
	}
	if p.Description != "" {
		present++
	}
	if p.Story != "" {
		present++
	}
	if len(p.Resources) > 0 {
		present++
	}
	return present < 2
}

// ComposeDetail builds the shared detail composition. The inModal flag is
// threaded down to nested fullscreen viewers so they stay confined to the
// dialog bounds instead of escaping to the viewport.
func ComposeDetail(ctx context.Context, r *render.Renderer, p models.Project, inModal bool) Detail {
	d := Detail{
		Project:   p,
		InModal:   inModal,
		Compact:   Compact(p),
		Banner:    resolveBanner(p),
		Resources: r.ResourceLinks(p.Resources),
	}

	for _, name := range p.Collection.Names() {
		group, ok := p.Collection.Get(name)
		if !ok || len(group.Items) == 0 {
			continue
		}
		tab := CollectionTab{
			Name:        name,
			Label:       group.Label,
			Summary:     group.Summary,
			Description: group.Description,
		}
		if tab.Label == "" {
			tab.Label = name
		}
		for _, item := range group.Items {
			tab.Items = append(tab.Items, r.Item(ctx, item, render.ItemContext{
				FolderName:     p.Folder(),
				CollectionName: name,
				InModal:        inModal,
			}))
		}
		d.Tabs = append(d.Tabs, tab)
	}
	d.ShowTabs = len(d.Tabs) >= 2

	return d
}

// bannerSlots in precedence order.
var bannerSlots = []string{"banner", "poster", "posterLandscape", "posterPortrait", "thumbnail"}

func resolveBanner(p models.Project) *Banner {
	for _, slot := range bannerSlots {
		name := p.Images[slot]
		if name == "" {
			continue
		}
		b := &Banner{
			Src:     media.ResolvePath(name, "/projects/"+p.Folder()),
			IsVideo: media.Classify(name) == media.KindVideo,
		}
		if b.IsVideo {
			hints := p.ImageSettings[slot]
			b.AutoPlay = playbackFlag(hints.AutoPlay)
			b.Loop = playbackFlag(hints.Loop)
			b.Muted = b.AutoPlay
		}
		return b
	}
	return nil
}

// playbackFlag: hints default to on unless explicitly disabled.
func playbackFlag(v *bool) bool {
	return v == nil || *v
}
