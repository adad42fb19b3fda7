package page

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/jpalmerr/exampleboard/internal/catalog"
)

const (
	// DefaultBrand is appended to document titles.
	DefaultBrand = "Qwik"

	// missingTitle stands in for the title of an app that is not in the
	// catalog.
	missingTitle = "undefined"

	examplesPathPrefix = "/examples/"
)

// ErrReentrantUpdate is returned when an app ID observer tries to change the
// app ID while observers are still running.
var ErrReentrantUpdate = errors.New("app id changed while observers were running")

// Lookuper finds an example app by ID.
type Lookuper interface {
	Lookup(id string) (catalog.App, bool)
}

// Document is a displayable document whose title can be set.
//
// A [View] without a Document skips the title side effect, which lets the
// same view logic run where no document exists.
type Document interface {
	SetTitle(title string)
}

// TitleRecorder is a [Document] that keeps the last title it was given.
type TitleRecorder struct {
	title string
}

// SetTitle implements [Document].
func (r *TitleRecorder) SetTitle(title string) {
	r.title = title
}

// Title returns the last title set, or "" if none.
func (r *TitleRecorder) Title() string {
	return r.title
}

// Navigation describes the address bar change that follows a menu click.
type Navigation struct {
	ReplacePath string `json:"replacePath"`
	PushHistory bool   `json:"pushHistory"`
}

// ViewOption configures a [View].
type ViewOption func(*View)

// WithBrand sets the suffix used in document titles. Empty keeps the default.
func WithBrand(brand string) ViewOption {
	return func(v *View) {
		if brand != "" {
			v.brand = brand
		}
	}
}

// WithDocument attaches a displayable document to the view.
func WithDocument(doc Document) ViewOption {
	return func(v *View) {
		v.doc = doc
	}
}

// WithSwitchToInputOnSelect makes [View.Select] activate the Input panel.
//
// Off by default: selecting an example leaves the active panel unchanged.
func WithSwitchToInputOnSelect(enabled bool) ViewOption {
	return func(v *View) {
		v.switchOnSelect = enabled
	}
}

// View is the server-side model of one examples page view.
//
// It owns the editable state and panel state. The app ID field has an
// explicit observer list; observers run synchronously, in registration
// order, after each change. A View is not safe for concurrent use; callers
// serialise access.
type View struct {
	lookup         Lookuper
	brand          string
	doc            Document
	switchOnSelect bool

	state     EditableState
	panel     PanelState
	observers []func(prev, next string)
	notifying bool
}

// NewView creates a view for appID and runs the initial file sync.
func NewView(lookup Lookuper, appID string, opts ...ViewOption) *View {
	v := &View{
		lookup: lookup,
		brand:  DefaultBrand,
		state: EditableState{
			AppID:         appID,
			BuildMode:     defaultBuildMode,
			EntryStrategy: defaultEntryStrategy,
			Files:         []catalog.Input{},
		},
		panel: newPanelState(),
	}
	for _, opt := range opts {
		opt(v)
	}

	v.OnAppIDChange(func(_, next string) { v.syncFiles(next) })
	// initial load runs the sync once with no previous value
	v.syncFiles(appID)
	return v
}

// OnAppIDChange registers fn to be called after each app ID change.
func (v *View) OnAppIDChange(fn func(prev, next string)) {
	v.observers = append(v.observers, fn)
}

// SetAppID changes the selected app and notifies observers.
//
// Setting the current value again is a no-op.
func (v *View) SetAppID(id string) error {
	if v.notifying {
		return ErrReentrantUpdate
	}
	prev := v.state.AppID
	if prev == id {
		return nil
	}
	v.state.AppID = id

	v.notifying = true
	defer func() { v.notifying = false }()
	for _, fn := range v.observers {
		fn(prev, id)
	}
	return nil
}

// syncFiles keeps the file list consistent with the selected app.
func (v *View) syncFiles(appID string) {
	app, ok := v.lookup.Lookup(appID)
	if ok {
		v.state.Files = catalog.CopyInputs(app.Inputs)
	} else {
		v.state.Files = []catalog.Input{}
	}

	if v.doc == nil {
		return
	}
	title := missingTitle
	if ok {
		title = app.Title
	}
	v.doc.SetTitle(fmt.Sprintf("%s - %s", title, v.brand))
}

// Select handles a menu click on appID.
//
// The app ID is updated (running the file sync) and the returned navigation
// replaces the current address without adding a history entry.
func (v *View) Select(appID string) (Navigation, error) {
	if err := v.SetAppID(appID); err != nil {
		return Navigation{}, err
	}
	if v.switchOnSelect {
		v.panel.Active = PanelInput
	}
	return Navigation{ReplacePath: ExamplePath(appID), PushHistory: false}, nil
}

// SetPanel makes p the active panel.
func (v *View) SetPanel(p Panel) error {
	if _, err := ParsePanel(string(p)); err != nil {
		return err
	}
	v.panel.Active = p
	return nil
}

// State returns a copy of the editable state.
func (v *View) State() EditableState {
	return v.state.clone()
}

// Panel returns a copy of the panel state.
func (v *View) Panel() PanelState {
	return v.panel.clone()
}

// ExamplePath returns the page path for an app ID.
func ExamplePath(appID string) string {
	return examplesPathPrefix + url.PathEscape(appID)
}
