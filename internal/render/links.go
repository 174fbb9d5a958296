package render

import (
	"net/url"

	"folio.dev/internal/models"
)

// Link is a resolved resource link ready for a button template. Cross-origin
// targets open in a new tab; same-origin targets navigate in place.
type Link struct {
	Label  string
	URL    string
	NewTab bool
}

// SameOrigin reports whether target resolves to the site's own hostname.
// Relative paths are always same-origin.
func (r *Renderer) SameOrigin(target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	if u.Host == "" {
		return true
	}
	return u.Hostname() == r.baseHost
}

// ResourceLinks resolves a resource list into renderable links. Folio
// resources cross-link another project on this site by id.
func (r *Renderer) ResourceLinks(resources []models.Resource) []Link {
	var out []Link
	for _, res := range resources {
		target := res.URL
		if res.Type == models.ResourceTypeFolio && res.ID != "" {
			target = "/projects/" + res.ID
		}
		if target == "" {
			continue
		}
		label := res.Label
		if label == "" {
			label = target
		}
		out = append(out, Link{
			Label:  label,
			URL:    target,
			NewTab: !r.SameOrigin(target),
		})
	}
	return out
}
