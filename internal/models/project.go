package models

// Project represents one portfolio entry loaded from a content JSON document.
// Records are read-only after load; filtering and sorting operate on copies.
type Project struct {
	ID         string `json:"id"`
	FolderName string `json:"folderName,omitempty"`

	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
	Story       string `json:"story,omitempty"`

	Domain   string   `json:"domain"`
	Category string   `json:"category,omitempty"`
	Status   string   `json:"status"`
	Phase    string   `json:"phase,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Mediums  []string `json:"mediums,omitempty"`
	// Technologies is the technology-domain counterpart of Mediums; both feed
	// the derived medium facet.
	Technologies []string `json:"technologies,omitempty"`
	Genres       []string `json:"genres,omitempty"`
	Topics       []string `json:"topics,omitempty"`

	// Images maps named slots (thumbnail, banner, poster, icon, ...) to raw
	// filenames relative to the project's asset folder.
	Images map[string]string `json:"images,omitempty"`
	// ImageSettings carries playback hints for slots whose resolved asset
	// turns out to be a video.
	ImageSettings map[string]PlaybackHints `json:"imageSettings,omitempty"`

	// ISO-8601 timestamps; compared lexicographically, which is order-correct.
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`

	Featured         bool `json:"featured,omitempty"`
	Starred          bool `json:"starred,omitempty"`
	RequiresFollowUp bool `json:"requiresFollowUp,omitempty"`

	Resources []Resource `json:"resources,omitempty"`

	Collection Collections `json:"collection,omitempty"`
}

// Resource is an external or internal reference link attached to a project or
// collection item. Type "folio" marks a cross-link to another project on the
// same site.
type Resource struct {
	ID    string `json:"id,omitempty"`
	Type  string `json:"type,omitempty"`
	Label string `json:"label,omitempty"`
	URL   string `json:"url,omitempty"`
}

// ResourceTypeFolio marks a resource pointing at another project by id.
const ResourceTypeFolio = "folio"

// PlaybackHints are optional video playback overrides. Nil means "use the
// default", which is true for both loop and autoplay.
type PlaybackHints struct {
	Loop     *bool `json:"loop,omitempty"`
	AutoPlay *bool `json:"autoPlay,omitempty"`
}

// Folder returns the asset-directory slug for the project, defaulting to the
// project id when folderName is absent.
func (p *Project) Folder() string {
	if p.FolderName != "" {
		return p.FolderName
	}
	return p.ID
}

// Timestamp returns updatedAt, falling back to createdAt.
func (p *Project) Timestamp() string {
	if p.UpdatedAt != "" {
		return p.UpdatedAt
	}
	return p.CreatedAt
}

// MediumValues returns the union of the project's medium-like arrays.
func (p Project) MediumValues() []string {
	out := make([]string, 0, len(p.Mediums)+len(p.Technologies))
	out = append(out, p.Mediums...)
	out = append(out, p.Technologies...)
	return out
}
