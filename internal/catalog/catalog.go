package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Input is a single named source file that seeds the live editor.
type Input struct {
	Path string `json:"path"`
	Code string `json:"code"`
}

// App is one selectable example application.
type App struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Inputs      []Input `json:"inputs"`
}

// Section groups apps under a heading in the examples menu.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Apps  []App  `json:"apps"`
}

// Catalog is the read-only, ordered collection of example sections.
//
// A Catalog is built once by [New] and never mutated afterwards. All accessors
// return deep copies so callers may modify results freely.
type Catalog struct {
	sections []Section
}

// New validates sections and returns an immutable [Catalog].
//
// The sections are deep-copied; later changes to the argument do not affect
// the catalog. App IDs must be unique across the whole catalog.
func New(sections []Section) (*Catalog, error) {
	seen := make(map[string]string)
	for i, s := range sections {
		if strings.TrimSpace(s.ID) == "" {
			return nil, fmt.Errorf("sections[%d]: id is required", i)
		}
		if strings.TrimSpace(s.Title) == "" {
			return nil, fmt.Errorf("sections[%d] (%s): title is required", i, s.ID)
		}
		for j, app := range s.Apps {
			if strings.TrimSpace(app.ID) == "" {
				return nil, fmt.Errorf("sections[%d] (%s): apps[%d]: id is required", i, s.ID, j)
			}
			if owner, exists := seen[app.ID]; exists {
				return nil, fmt.Errorf("sections[%d] (%s): duplicate app id %q (already in section %q)", i, s.ID, app.ID, owner)
			}
			seen[app.ID] = s.ID
		}
	}

	return &Catalog{sections: copySections(sections)}, nil
}

// ErrEmpty is returned by [Catalog.First] when the catalog holds no apps.
var ErrEmpty = errors.New("catalog has no apps")

// Lookup returns the first app whose ID exactly matches id.
//
// Sections are scanned in order, then apps within each section in order.
// The returned app is an independent copy. The boolean is false when no app
// matches.
func (c *Catalog) Lookup(id string) (App, bool) {
	for _, s := range c.sections {
		for _, app := range s.Apps {
			if app.ID == id {
				return copyApp(app), true
			}
		}
	}
	return App{}, false
}

// Sections returns a deep copy of all sections in catalog order.
func (c *Catalog) Sections() []Section {
	return copySections(c.sections)
}

// First returns the first app in catalog order.
func (c *Catalog) First() (App, error) {
	for _, s := range c.sections {
		if len(s.Apps) > 0 {
			return copyApp(s.Apps[0]), nil
		}
	}
	return App{}, ErrEmpty
}

// Len returns the total number of apps across all sections.
func (c *Catalog) Len() int {
	n := 0
	for _, s := range c.sections {
		n += len(s.Apps)
	}
	return n
}

func copySections(in []Section) []Section {
	out := make([]Section, len(in))
	for i, s := range in {
		apps := make([]App, len(s.Apps))
		for j, app := range s.Apps {
			apps[j] = copyApp(app)
		}
		out[i] = Section{ID: s.ID, Title: s.Title, Apps: apps}
	}
	return out
}

func copyApp(app App) App {
	cp := app
	cp.Inputs = CopyInputs(app.Inputs)
	return cp
}

// CopyInputs returns an independent copy of inputs. A nil slice yields an
// empty, non-nil slice so it serialises as [].
func CopyInputs(inputs []Input) []Input {
	out := make([]Input, len(inputs))
	copy(out, inputs)
	return out
}
