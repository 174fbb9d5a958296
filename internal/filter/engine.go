// Package filter implements the catalog's query, facet, and sort engine.
// Everything here is a pure function over the loaded project slice; caching,
// if any, belongs to the caller.
package filter

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"folio.dev/internal/models"
)

// Scope names the dimension a search query is restricted to.
type Scope string

// Recognized query scopes.
const (
	ScopeAll    Scope = "all"
	ScopeDomain Scope = "domain"
	ScopeMedium Scope = "medium"
	ScopeStatus Scope = "status"
	ScopeTags   Scope = "tags"
	ScopeTitle  Scope = "title"
)

// Query is a parsed search query: an optional scope plus the residual term.
type Query struct {
	Scope Scope
	Term  string
}

// queryPrefixes in fixed priority order; first match wins.
var queryPrefixes = []struct {
	prefix string
	scope  Scope
}{
	{"domain:", ScopeDomain},
	{"medium:", ScopeMedium},
	{"status:", ScopeStatus},
	{"tags:", ScopeTags},
	{"tag:", ScopeTags},
	{"title:", ScopeTitle},
}

// ParseQuery splits a raw search string into scope and term. Prefixes are
// matched case-insensitively; without one the whole trimmed query becomes an
// unscoped term.
func ParseQuery(raw string) Query {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)
	for _, p := range queryPrefixes {
		if strings.HasPrefix(lower, p.prefix) {
			return Query{
				Scope: p.scope,
				Term:  strings.TrimSpace(trimmed[len(p.prefix):]),
			}
		}
	}
	return Query{Scope: ScopeAll, Term: trimmed}
}

// Selection holds the multi-select facet filters chosen in the UI, plus the
// featured/all toggle. The tag list uses AND semantics: a project must carry
// every selected tag.
type Selection struct {
	Domains  []string
	Mediums  []string
	Statuses []string
	Tags     []string
	ShowAll  bool
}

// FacetSet is the derived facet vocabulary of a project set.
type FacetSet struct {
	Domains  []string `json:"domains"`
	Mediums  []string `json:"mediums"`
	Statuses []string `json:"statuses"`
	Tags     []string `json:"tags"`
}

// Facets scans the full project list and collects the deduplicated domain,
// medium, status, and tag vocabularies.
func Facets(projects []models.Project) FacetSet {
	domains := newVocab()
	mediums := newVocab()
	statuses := newVocab()
	tags := newVocab()

	for _, p := range projects {
		domains.add(p.Domain)
		statuses.add(p.Status)
		for _, m := range p.MediumValues() {
			mediums.add(m)
		}
		for _, t := range p.Tags {
			tags.add(t)
		}
	}

	return FacetSet{
		Domains:  domains.sorted(),
		Mediums:  mediums.sorted(),
		Statuses: statuses.sorted(),
		Tags:     tags.sorted(),
	}
}

// Apply filters the project list conjunctively: every active predicate must
// pass. The result is a fresh slice; the input is never reordered or mutated.
func Apply(projects []models.Project, q Query, sel Selection) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if !sel.ShowAll && !p.Featured {
			continue
		}
		if !matchQuery(p, q) {
			continue
		}
		if !facetPass(p.Domain, sel.Domains) {
			continue
		}
		if !facetIntersects(p.MediumValues(), sel.Mediums) {
			continue
		}
		if !facetPass(p.Status, sel.Statuses) {
			continue
		}
		if !hasAllTags(p.Tags, sel.Tags) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchQuery evaluates the parsed search query against one project.
func matchQuery(p models.Project, q Query) bool {
	if q.Term == "" {
		return true
	}
	term := strings.ToLower(q.Term)

	switch q.Scope {
	case ScopeDomain:
		return containsFold(p.Domain, term)
	case ScopeMedium:
		return anyContainsFold(p.MediumValues(), term)
	case ScopeStatus:
		return containsFold(p.Status, term)
	case ScopeTags:
		return anyContainsFold(p.Tags, term)
	case ScopeTitle:
		return containsFold(p.Title, term)
	default:
		return containsFold(p.Title, term) ||
			containsFold(strings.Join(p.Tags, " "), term) ||
			containsFold(p.Summary, term)
	}
}

// facetPass implements the multi-select facet rule for single-valued fields:
// an empty selection or a sole "all" passes everything; otherwise the value
// must appear in the selection.
func facetPass(value string, selected []string) bool {
	if passAll(selected) {
		return true
	}
	for _, s := range selected {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}

// facetIntersects is the multi-valued variant: any overlap passes.
func facetIntersects(values, selected []string) bool {
	if passAll(selected) {
		return true
	}
	for _, s := range selected {
		for _, v := range values {
			if strings.EqualFold(s, v) {
				return true
			}
		}
	}
	return false
}

// hasAllTags requires every selected tag on the project (AND semantics).
func hasAllTags(tags, selected []string) bool {
	for _, want := range selected {
		found := false
		for _, t := range tags {
			if strings.EqualFold(t, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func passAll(selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	return len(selected) == 1 && strings.EqualFold(selected[0], "all")
}

// SortKey names a catalog sort order.
type SortKey string

// Supported sort orders.
const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortTitleAsc  SortKey = "title-asc"
	SortTitleDesc SortKey = "title-desc"
)

// Sort returns a stably sorted copy of the project list. Timestamp orders
// compare the ISO-8601 strings directly; title orders use locale-aware
// collation.
func Sort(projects []models.Project, key SortKey) []models.Project {
	out := slices.Clone(projects)

	switch key {
	case SortOldest:
		slices.SortStableFunc(out, func(a, b models.Project) int {
			return strings.Compare(a.Timestamp(), b.Timestamp())
		})
	case SortTitleAsc:
		c := newCollator()
		slices.SortStableFunc(out, func(a, b models.Project) int {
			return c.CompareString(a.Title, b.Title)
		})
	case SortTitleDesc:
		c := newCollator()
		slices.SortStableFunc(out, func(a, b models.Project) int {
			return c.CompareString(b.Title, a.Title)
		})
	default: // SortNewest
		slices.SortStableFunc(out, func(a, b models.Project) int {
			return strings.Compare(b.Timestamp(), a.Timestamp())
		})
	}
	return out
}

func newCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

// maxSuggestions caps the autocomplete list.
const maxSuggestions = 5

// Suggest offers facet values matching a scoped query by substring. Unscoped
// and title-scoped queries produce no suggestions: only facet dimensions have
// a vocabulary to draw from.
func Suggest(q Query, facets FacetSet) []string {
	var vocab []string
	switch q.Scope {
	case ScopeDomain:
		vocab = facets.Domains
	case ScopeMedium:
		vocab = facets.Mediums
	case ScopeStatus:
		vocab = facets.Statuses
	case ScopeTags:
		vocab = facets.Tags
	default:
		return nil
	}

	term := strings.ToLower(q.Term)
	var out []string
	for _, v := range vocab {
		if strings.Contains(strings.ToLower(v), term) {
			out = append(out, v)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

func containsFold(haystack, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerTerm)
}

func anyContainsFold(values []string, lowerTerm string) bool {
	for _, v := range values {
		if containsFold(v, lowerTerm) {
			return true
		}
	}
	return false
}

// vocab is an order-insensitive deduplicating collector.
type vocab struct {
	seen map[string]bool
	vals []string
}

func newVocab() *vocab {
	return &vocab{seen: make(map[string]bool)}
}

func (v *vocab) add(s string) {
	if s == "" {
		return
	}
	key := strings.ToLower(s)
	if v.seen[key] {
		return
	}
	v.seen[key] = true
	v.vals = append(v.vals, s)
}

func (v *vocab) sorted() []string {
	slices.SortFunc(v.vals, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return v.vals
}
