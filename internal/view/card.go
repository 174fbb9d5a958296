package view

import (
	"net/url"

	"folio.dev/internal/media"
	"folio.dev/internal/models"
)

// Card is the grid/list presentation of one project. Purely derived; the grid
// and the list rows render the same data.
type Card struct {
	ID       string
	Title    string
	Subtitle string
	Summary  string
	Domain   string
	Status   string
	Phase    string
	Tags     []string

	Thumbnail        string
	ThumbnailIsVideo bool

	Featured bool
	Starred  bool

	// Href is the full detail page; ModalHref overlays the modal on the
	// catalog instead.
	Href      string
	ModalHref string
}

// Cards maps a filtered project slice to its card views.
func Cards(projects []models.Project) []Card {
	out := make([]Card, 0, len(projects))
	for _, p := range projects {
		out = append(out, makeCard(p))
	}
	return out
}

func makeCard(p models.Project) Card {
	thumb := p.Images["thumbnail"]
	return Card{
		ID:               p.ID,
		Title:            p.Title,
		Subtitle:         p.Subtitle,
		Summary:          p.Summary,
		Domain:           p.Domain,
		Status:           p.Status,
		Phase:            p.Phase,
		Tags:             p.Tags,
		Thumbnail:        media.ResolvePath(thumb, "/projects/"+p.Folder()),
		ThumbnailIsVideo: media.Classify(thumb) == media.KindVideo,
		Featured:         p.Featured,
		Starred:          p.Starred,
		Href:             "/projects/" + url.PathEscape(p.ID),
		ModalHref:        "/?project=" + url.QueryEscape(p.ID),
	}
}
