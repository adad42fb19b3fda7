package exampleboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jpalmerr/exampleboard/internal/catalog"
	"github.com/jpalmerr/exampleboard/internal/page"
	"github.com/jpalmerr/exampleboard/internal/server"
	"github.com/jpalmerr/exampleboard/internal/store"
	"github.com/jpalmerr/exampleboard/internal/sweeper"
	"github.com/jpalmerr/exampleboard/web"
)

const (
	defaultPort       = 8080
	defaultSessionTTL = time.Hour
	defaultBrand      = page.DefaultBrand
)

// SelectEvent describes a menu selection made in a page view.
type SelectEvent struct {
	// SessionID identifies the page view.
	SessionID string

	// PreviousAppID is the app shown before the selection.
	PreviousAppID string

	// AppID is the newly selected app.
	AppID string

	// Found is false when AppID is not in the catalog. The editor is then
	// left with an empty file set.
	Found bool

	// At is when the selection happened.
	At time.Time
}

// ExampleBoard serves the interactive examples page.
//
// ExampleBoard holds the example catalog, keeps per page view state, and
// serves the server-rendered page plus its session API. It is created using
// [New] with functional options and started with [ExampleBoard.Start].
//
// The typical lifecycle is:
//
//	eb, err := exampleboard.New(exampleboard.WithSection(intro))
//	if err != nil {
//	    slog.Error("failed to create exampleboard", "error", err)
//	    os.Exit(1)
//	}
//
//	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer cancel()
//
//	eb.Start(ctx) // blocks until context cancelled
type ExampleBoard struct {
	brand                 string
	sections              []Section
	catalog               *catalog.Catalog
	defaultApp            string
	port                  int
	sessionTTL            time.Duration
	sweepInterval         time.Duration
	rateLimit             float64
	rateBurst             int
	switchToInputOnSelect bool
	contributeURL         string
	logger                *slog.Logger
	selectCallbacks       []func(SelectEvent)
}

// New creates a new [ExampleBoard] instance with the given options.
//
// At least one app must be configured via [WithSection] or [WithSections].
// App IDs must be unique across all sections. Other options have sensible
// defaults:
//   - Port: 8080
//   - Brand: "Qwik"
//   - Session TTL: 1 hour
//   - Default app: first app of the first non-empty section
//
// Returns an error if the catalog is empty or invalid, or if any option is
// invalid.
func New(opts ...Option) (*ExampleBoard, error) {
	cfg := &ebConfig{
		brand:         defaultBrand,
		port:          defaultPort,
		sessionTTL:    defaultSessionTTL,
		sweepInterval: sweepIntervalFor(defaultSessionTTL),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cat, err := catalog.New(toCatalogSections(cfg.sections))
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	first, err := cat.First()
	if err != nil {
		return nil, errors.New("at least one example app is required")
	}

	defaultApp := cfg.defaultApp
	if defaultApp == "" {
		defaultApp = first.ID
	} else if _, ok := cat.Lookup(defaultApp); !ok {
		return nil, fmt.Errorf("default app %q is not in the catalog", defaultApp)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	sections := make([]Section, len(cfg.sections))
	copy(sections, cfg.sections)

	return &ExampleBoard{
		brand:                 cfg.brand,
		sections:              sections,
		catalog:               cat,
		defaultApp:            defaultApp,
		port:                  cfg.port,
		sessionTTL:            cfg.sessionTTL,
		sweepInterval:         cfg.sweepInterval,
		rateLimit:             cfg.rateLimit,
		rateBurst:             cfg.rateBurst,
		switchToInputOnSelect: cfg.switchToInputOnSelect,
		contributeURL:         cfg.contributeURL,
		logger:                logger,
		selectCallbacks:       cfg.selectCallbacks,
	}, nil
}

// Start serves the examples page until the provided context is cancelled.
//
// Start is a blocking call. During execution:
//
//   - The HTTP server listens on the configured port
//   - Idle page view sessions are expired in the background
//   - Select callbacks fire for every change of selected app
//
// Returns nil on graceful shutdown. Returns an error if the HTTP server fails
// to start.
func (eb *ExampleBoard) Start(ctx context.Context) error {
	eb.logger.Info("exampleboard starting", "app_count", eb.catalog.Len(), "default_app", eb.defaultApp)
	eb.logger.Info("examples available", "url", fmt.Sprintf("http://localhost:%d%s", eb.port, page.ExamplePath(eb.defaultApp)))

	if ctx.Err() != nil {
		return nil
	}

	viewOpts := []page.ViewOption{
		page.WithBrand(eb.brand),
		page.WithSwitchToInputOnSelect(eb.switchToInputOnSelect),
	}
	sessions := store.NewMemoryStore(eb.catalog, viewOpts, eb.dispatchSelect)

	sw := sweeper.New(sessions, eb.sessionTTL, eb.sweepInterval, eb.logger)
	sw.Start(ctx)

	httpServer := server.NewServer(eb.catalog, sessions, eb.port, web.Files, server.Options{
		Brand:      eb.brand,
		DefaultApp: eb.defaultApp,
		RateLimit:  eb.rateLimit,
		RateBurst:  eb.rateBurst,

		ContributeURL: eb.contributeURL,
	}, eb.logger)
	if err := httpServer.Start(ctx); err != nil {
		sw.Stop()
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	<-ctx.Done()
	sw.Stop()
	<-httpServer.Done()
	eb.logger.Info("exampleboard stopped")
	return nil
}

// Lookup returns the app with the given ID.
//
// The boolean is false when no app matches. The returned app shares nothing
// mutable with the board.
func (eb *ExampleBoard) Lookup(id string) (ExampleApp, bool) {
	app, ok := eb.catalog.Lookup(id)
	if !ok {
		return ExampleApp{}, false
	}
	return fromCatalogApp(app), true
}

// Sections returns a copy of the configured sections in menu order.
func (eb *ExampleBoard) Sections() []Section {
	cp := make([]Section, len(eb.sections))
	copy(cp, eb.sections)
	return cp
}

// DefaultApp returns the ID of the app "/" redirects to.
func (eb *ExampleBoard) DefaultApp() string {
	return eb.defaultApp
}

// Port returns the configured HTTP port.
func (eb *ExampleBoard) Port() int {
	return eb.port
}

// ContributeURL returns the menu's contribution link, or "" if unset.
func (eb *ExampleBoard) ContributeURL() string {
	return eb.contributeURL
}

// SessionTTL returns how long idle page view sessions are kept.
func (eb *ExampleBoard) SessionTTL() time.Duration {
	return eb.sessionTTL
}

// dispatchSelect fans a store selection out to the registered callbacks.
func (eb *ExampleBoard) dispatchSelect(ev store.SelectEvent) {
	eb.logger.Debug("app selected",
		"session", ev.SessionID,
		"from", ev.PreviousAppID,
		"to", ev.AppID,
		"found", ev.Found,
	)
	if len(eb.selectCallbacks) == 0 {
		return
	}
	public := SelectEvent{
		SessionID:     ev.SessionID,
		PreviousAppID: ev.PreviousAppID,
		AppID:         ev.AppID,
		Found:         ev.Found,
		At:            ev.At,
	}
	for _, cb := range eb.selectCallbacks {
		invokeCallbackSafe(cb, public, eb.logger)
	}
}

func toCatalogSections(sections []Section) []catalog.Section {
	out := make([]catalog.Section, len(sections))
	for i, s := range sections {
		apps := make([]catalog.App, len(s.apps))
		for j, a := range s.apps {
			inputs := make([]catalog.Input, len(a.inputs))
			for k, in := range a.inputs {
				inputs[k] = catalog.Input{Path: in.Path, Code: in.Code}
			}
			apps[j] = catalog.App{
				ID:          a.id,
				Title:       a.title,
				Description: a.description,
				Icon:        a.icon,
				Inputs:      inputs,
			}
		}
		out[i] = catalog.Section{ID: s.id, Title: s.title, Apps: apps}
	}
	return out
}

func fromCatalogApp(app catalog.App) ExampleApp {
	var inputs []Input
	if len(app.Inputs) > 0 {
		inputs = make([]Input, len(app.Inputs))
		for i, in := range app.Inputs {
			inputs[i] = Input{Path: in.Path, Code: in.Code}
		}
	}
	return ExampleApp{
		id:          app.ID,
		title:       app.Title,
		description: app.Description,
		icon:        app.Icon,
		inputs:      inputs,
	}
}

// invokeCallbackSafe calls a select callback with panic recovery.
// Panics are logged with a correlation ID but do not propagate.
func invokeCallbackSafe(cb func(SelectEvent), ev SelectEvent, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("select callback panicked",
				"panic", r,
				"correlation_id", uuid.NewString(),
				"session", ev.SessionID,
				"app", ev.AppID,
			)
		}
	}()
	cb(ev)
}
