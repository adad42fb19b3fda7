package exampleboard

import (
	"errors"
	"fmt"
	"strings"
)

// Section is a titled group of example apps in the menu.
//
// Section is immutable after creation via [NewSection].
type Section struct {
	id    string
	title string
	apps  []ExampleApp
}

// ID returns the section identifier.
func (s Section) ID() string {
	return s.id
}

// Title returns the section heading.
func (s Section) Title() string {
	return s.title
}

// Apps returns a copy of the section's apps in menu order.
func (s Section) Apps() []ExampleApp {
	cp := make([]ExampleApp, len(s.apps))
	copy(cp, s.apps)
	return cp
}

// NewSection creates a [Section] holding apps in the given order.
//
// Returns an error if id or title is empty, or if two apps share an ID.
//
// Example:
//
//	intro, err := exampleboard.NewSection("introduction", "Introduction", hello, counter)
func NewSection(id, title string, apps ...ExampleApp) (Section, error) {
	if strings.TrimSpace(id) == "" {
		return Section{}, errors.New("section id cannot be empty")
	}
	if strings.TrimSpace(title) == "" {
		return Section{}, errors.New("section title cannot be empty")
	}

	seen := make(map[string]struct{}, len(apps))
	for _, app := range apps {
		if app.id == "" {
			return Section{}, fmt.Errorf("section %q: app created without NewApp", id)
		}
		if _, exists := seen[app.id]; exists {
			return Section{}, fmt.Errorf("section %q: duplicate app id %q", id, app.id)
		}
		seen[app.id] = struct{}{}
	}

	cp := make([]ExampleApp, len(apps))
	copy(cp, apps)
	return Section{id: id, title: title, apps: cp}, nil
}
