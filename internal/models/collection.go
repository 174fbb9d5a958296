package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ItemType identifies how a collection item is rendered.
type ItemType string

// Known collection item types.
const (
	ItemImage   ItemType = "image"
	ItemVideo   ItemType = "video"
	ItemModel   ItemType = "3d-model"
	ItemGame    ItemType = "game"
	ItemText    ItemType = "text"
	ItemAudio   ItemType = "audio"
	ItemURLLink ItemType = "url-link"
	ItemFolio   ItemType = "folio"
)

// IsLink reports whether the type is one of the embedded-link types, which
// may take their content locator from a resource URL.
func (t ItemType) IsLink() bool {
	return t == ItemURLLink || t == ItemFolio
}

// CollectionItem is one renderable asset inside a project collection.
type CollectionItem struct {
	ID   string   `json:"id"`
	Type ItemType `json:"type"`

	// Content locators, in resolution precedence order.
	Path     string     `json:"path,omitempty"`
	FilePath string     `json:"filePath,omitempty"`
	URL      string     `json:"url,omitempty"`
	Href     string     `json:"href,omitempty"`
	Resource *Resource  `json:"resource,omitempty"`
	Resources []Resource `json:"resources,omitempty"`

	Thumbnail string `json:"thumbnail,omitempty"`
	Label     string `json:"label,omitempty"`
	Summary   string `json:"summary,omitempty"`

	Loop     *bool `json:"loop,omitempty"`
	AutoPlay *bool `json:"autoPlay,omitempty"`
}

// CollectionGroup is one named sub-collection of a project. Content JSON may
// spell it either as a bare item array or as an object wrapping the array.
type CollectionGroup struct {
	Items       []CollectionItem `json:"items"`
	Label       string           `json:"label,omitempty"`
	Summary     string           `json:"summary,omitempty"`
	Description string           `json:"description,omitempty"`
}

// Collections maps collection names to groups while preserving the order the
// names were declared in the source document. Declaration order decides which
// tab is selected by default, so a plain Go map will not do.
type Collections struct {
	names  []string
	groups map[string]CollectionGroup
}

// Names returns the collection names in declaration order.
func (c Collections) Names() []string {
	return c.names
}

// Get returns the named group.
func (c Collections) Get(name string) (CollectionGroup, bool) {
	g, ok := c.groups[name]
	return g, ok
}

// Len returns the number of named sub-collections.
func (c Collections) Len() int {
	return len(c.names)
}

// Empty reports whether there is nothing to render: no groups at all, or only
// groups without items.
func (c Collections) Empty() bool {
	for _, name := range c.names {
		if len(c.groups[name].Items) > 0 {
			return false
		}
	}
	return true
}

// UnmarshalJSON decodes the collection mapping through the token stream so
// that key order survives.
func (c *Collections) UnmarshalJSON(data []byte) error {
	*c = Collections{}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil // JSON null
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return fmt.Errorf("collection: expected object, got %v", tok)
	}

	c.groups = make(map[string]CollectionGroup)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("collection: non-string key %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("collection %q: %w", name, err)
		}
		group, err := decodeGroup(raw)
		if err != nil {
			return fmt.Errorf("collection %q: %w", name, err)
		}

		if _, dup := c.groups[name]; !dup {
			c.names = append(c.names, name)
		}
		c.groups[name] = group
	}
	return nil
}

// MarshalJSON writes the groups back out in declaration order.
func (c Collections) MarshalJSON() ([]byte, error) {
	if len(c.names) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range c.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(c.groups[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeGroup accepts both the flat-array and wrapped-object forms.
func decodeGroup(raw json.RawMessage) (CollectionGroup, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []CollectionItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return CollectionGroup{}, err
		}
		return CollectionGroup{Items: items}, nil
	}

	var group CollectionGroup
	if err := json.Unmarshal(trimmed, &group); err != nil {
		return CollectionGroup{}, err
	}
	return group, nil
}

// NewCollections builds an ordered collection set; mainly for tests and the
// static generator.
func NewCollections(names []string, groups map[string]CollectionGroup) Collections {
	c := Collections{groups: make(map[string]CollectionGroup, len(names))}
	for _, name := range names {
		if g, ok := groups[name]; ok {
			c.names = append(c.names, name)
			c.groups[name] = g
		}
	}
	return c
}
