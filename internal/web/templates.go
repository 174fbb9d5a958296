// Package web loads and renders the HTML templates.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"strings"
)

// Templates wraps the parsed template set.
type Templates struct {
	t *template.Template
}

var funcMap = template.FuncMap{
	// safeURL marks resolved asset paths as URL-safe so html/template does
	// not escape them into oblivion.
	"safeURL": func(s string) template.URL { return template.URL(s) },
	"join":    func(s []string, sep string) string { return strings.Join(s, sep) },
	// has reports whether list contains v, matching the filter engine's
	// case-insensitive facet comparison.
	"has": func(list []string, v string) bool {
		for _, s := range list {
			if strings.EqualFold(s, v) {
				return true
			}
		}
		return false
	},
}

// LoadTemplates parses every *.html under dir into one template set.
func LoadTemplates(dir string) (*Templates, error) {
	t, err := template.New("").Funcs(funcMap).ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Templates{t: t}, nil
}

// Render executes the named template. Output is buffered so a template error
// never leaves a half-written response body.
func (ts *Templates) Render(w io.Writer, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := ts.t.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
