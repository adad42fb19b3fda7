package exampleboard

import (
	"errors"
	"strings"
)

// Input is a named source file that seeds the live editor.
type Input struct {
	// Path is the file name shown in the editor, e.g. "app.tsx".
	Path string

	// Code is the file content.
	Code string
}

// ExampleApp is one selectable sample program in the catalog.
//
// ExampleApp is immutable after creation via [NewApp]. All fields are
// private with getter methods that return copies of mutable data (slices),
// so an app cannot be modified after construction.
//
// Apps are configured using the functional options pattern with
// [AppOption] functions such as [WithDescription], [WithIcon] and
// [WithInput].
type ExampleApp struct {
	id          string
	title       string
	description string
	icon        string
	inputs      []Input
}

// ID returns the app identifier used in URLs (/examples/<id>).
func (a ExampleApp) ID() string {
	return a.id
}

// Title returns the display title.
func (a ExampleApp) Title() string {
	return a.title
}

// Description returns the menu description. It may contain markdown.
func (a ExampleApp) Description() string {
	return a.description
}

// Icon returns the menu icon, usually a single emoji.
func (a ExampleApp) Icon() string {
	return a.icon
}

// Inputs returns a copy of the app's source files in order.
func (a ExampleApp) Inputs() []Input {
	return copyInputs(a.inputs)
}

// NewApp creates an [ExampleApp] with the given ID, title and options.
//
// The id must be non-empty and must not contain "/" since it forms the last
// segment of the page URL. Options are applied in order.
//
// Example:
//
//	app, err := exampleboard.NewApp("hello-world", "Hello World",
//	    exampleboard.WithIcon("🌎"),
//	    exampleboard.WithDescription("The simplest Qwik app."),
//	    exampleboard.WithInput("app.tsx", helloSource),
//	)
//
// Returns an error if the id or title is empty or invalid, or if an option
// fails.
func NewApp(id, title string, opts ...AppOption) (ExampleApp, error) {
	if strings.TrimSpace(id) == "" {
		return ExampleApp{}, errors.New("app id cannot be empty")
	}
	if strings.Contains(id, "/") {
		return ExampleApp{}, errors.New("app id cannot contain '/'")
	}
	if strings.TrimSpace(title) == "" {
		return ExampleApp{}, errors.New("app title cannot be empty")
	}

	cfg := &appConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return ExampleApp{}, err
		}
	}

	return ExampleApp{
		id:          id,
		title:       title,
		description: cfg.description,
		icon:        cfg.icon,
		inputs:      cfg.inputs,
	}, nil
}

// copyInputs returns a copy of the slice, or nil if input is nil.
func copyInputs(in []Input) []Input {
	if in == nil {
		return nil
	}
	return append([]Input(nil), in...)
}
