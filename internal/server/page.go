package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/jpalmerr/exampleboard/internal/page"
)

// pageData is the template input for the examples page.
type pageData struct {
	Head      page.HeadMeta
	Brand     string
	AppID     string
	Menu      []page.MenuSection
	Panel     page.PanelState
	ReplProps string

	ContributeURL string
}

// handleRoot redirects to the default example.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, page.ExamplePath(s.defaultAppID()), http.StatusFound)
}

// handlePage renders the examples page for the route ID.
//
// The rendered page is the same for every visitor of a given URL, so it is
// marked publicly cacheable. Per-view state lives in sessions created by the
// page script.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		if def := s.defaultAppID(); def != "" {
			http.Redirect(w, r, page.ExamplePath(def), http.StatusFound)
			return
		}
	}

	// rendering has no document to retitle; the head metadata covers it
	view := page.NewView(s.catalog, id, page.WithBrand(s.opts.Brand))

	props, err := json.Marshal(page.NewReplProps(view.State()))
	if err != nil {
		s.logger.Error("failed to encode repl props", "error", err, "app_id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pageData{
		Head:      page.Head(s.catalog, id),
		Brand:     s.opts.Brand,
		AppID:     id,
		Menu:      page.BuildMenu(s.catalog.Sections(), id),
		Panel:     view.Panel(),
		ReplProps: string(props),

		ContributeURL: s.opts.ContributeURL,
	}

	// render to a buffer so template errors still produce a clean 500
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "examples.html.tmpl", data); err != nil {
		s.logger.Error("failed to render page", "error", err, "app_id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", pageCacheControl)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Error("failed to write page response", "error", err)
	}
}

func (s *Server) defaultAppID() string {
	if s.opts.DefaultApp != "" {
		return s.opts.DefaultApp
	}
	app, err := s.catalog.First()
	if err != nil {
		return ""
	}
	return app.ID
}
