// Package view renders the console's HTML pages from embedded templates.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"yard-console/internal/http/flash"
)

//go:embed templates
var templateFS embed.FS

// Page names understood by Renderer.
const (
	Home            = "home"
	BranchList      = "branches/list"
	BranchForm      = "branches/form"
	YardList        = "yards/list"
	YardForm        = "yards/form"
	NotFound        = "errors/404"
	TooManyRequests = "errors/429"
)

var pageNames = []string{Home, BranchList, BranchForm, YardList, YardForm, NotFound, TooManyRequests}

// Page holds the fields every template reads through the layout.
type Page struct {
	Title string
	Flash *flash.Message
}

// Renderer executes a page template wrapped in the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses all embedded templates.
func New() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render writes the named page. Output is buffered so a failing template
// never leaves a half-written page behind.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
