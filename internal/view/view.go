// Package view renders the dashboard's server-side HTML pages.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/labstack/echo/v4"

	"github.com/souvikjs01/unkey/internal/model"
)

const (
	PageRatelimits   = "ratelimits"
	PageNewWorkspace = "new"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

// RatelimitsPage feeds the navigation and the namespace list.
type RatelimitsPage struct {
	Title       string
	WorkspaceID string
	Namespaces  []model.NamespaceSummary
	Error       string
}

// NewWorkspacePage is the onboarding form. Action is the path it posts to.
type NewWorkspacePage struct {
	Title  string
	Action string
	Name   string
	Error  string
}

// Renderer implements echo.Renderer. Each page is its own template set
// sharing the layout and navigation.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	base, err := template.ParseFS(templateFS, "templates/layout.html", "templates/navigation.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, name := range []string{PageRatelimits, PageNewWorkspace} {
		set, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout: %w", err)
		}
		if _, err := set.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = set
	}
	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	page, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return page.ExecuteTemplate(w, "layout", data)
}

// Assets returns the static files served under /assets.
func Assets() fs.FS {
	return echo.MustSubFS(assetFS, "assets")
}
