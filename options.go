package exampleboard

import (
	"errors"
	"log/slog"
	"time"
)

// ebConfig holds mutable state during ExampleBoard construction.
type ebConfig struct {
	brand                 string
	sections              []Section
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

// Option is a function that configures an [ExampleBoard] instance during construction.
//
// Option implements the functional options pattern, allowing optional
// configuration to be passed to [New] in a type-safe, extensible way.
// Options return an error if validation fails.
//
// Built-in options: [WithSection], [WithSections], [WithPort], [WithBrand],
// [WithDefaultApp], [WithSessionTTL], [WithRateLimit], [WithLogger],
// [WithSwitchToInputOnSelect], [WithContributeURL], [WithSelectCallback].
type Option func(*ebConfig) error

// WithSection appends a [Section] to the examples menu.
//
// Can be called multiple times. Sections keep the order in which they are
// added. At least one app across all sections is required for [New] to
// succeed.
//
// Example:
//
//	eb, err := exampleboard.New(
//	    exampleboard.WithSection(intro),
//	    exampleboard.WithSection(reactivity),
//	)
func WithSection(s Section) Option {
	return func(cfg *ebConfig) error {
		cfg.sections = append(cfg.sections, s)
		return nil
	}
}

// WithSections appends several sections at once.
//
// Equivalent to calling [WithSection] for each section.
func WithSections(sections ...Section) Option {
	return func(cfg *ebConfig) error {
		cfg.sections = append(cfg.sections, sections...)
		return nil
	}
}

// WithPort sets the HTTP port for the examples server.
//
// Defaults to 8080 if not specified.
//
// Returns an error if the port is outside the valid range (1-65535).
func WithPort(port int) Option {
	return func(cfg *ebConfig) error {
		if port < 1 || port > 65535 {
			return errors.New("port must be between 1 and 65535")
		}
		cfg.port = port
		return nil
	}
}

// WithBrand sets the suffix used in document titles ("<app> - <brand>").
//
// Defaults to "Qwik". Returns an error if brand is empty.
func WithBrand(brand string) Option {
	return func(cfg *ebConfig) error {
		if brand == "" {
			return errors.New("brand cannot be empty")
		}
		cfg.brand = brand
		return nil
	}
}

// WithDefaultApp sets the app that "/" and "/examples/" redirect to.
//
// Defaults to the first app of the first non-empty section. [New] returns an
// error if the ID is not in the catalog.
func WithDefaultApp(id string) Option {
	return func(cfg *ebConfig) error {
		if id == "" {
			return errors.New("default app cannot be empty")
		}
		cfg.defaultApp = id
		return nil
	}
}

// WithSessionTTL sets how long an idle page view session is kept.
//
// Sessions are swept every TTL/12, bounded to at least one second.
// Defaults to one hour.
//
// Example:
//
//	eb, err := exampleboard.New(
//	    exampleboard.WithSection(intro),
//	    exampleboard.WithSessionTTL(15 * time.Minute),
//	)
//
// Returns an error if the duration is zero or negative.
func WithSessionTTL(d time.Duration) Option {
	return func(cfg *ebConfig) error {
		if d <= 0 {
			return errors.New("session ttl must be positive")
		}
		cfg.sessionTTL = d
		cfg.sweepInterval = sweepIntervalFor(d)
		return nil
	}
}

// WithRateLimit limits each client IP to rps session API requests per second
// with the given burst. Page and asset requests are not limited.
//
// Rate limiting is disabled by default. Returns an error if rps or burst is
// not positive.
func WithRateLimit(rps float64, burst int) Option {
	return func(cfg *ebConfig) error {
		if rps <= 0 {
			return errors.New("rate limit must be positive")
		}
		if burst < 1 {
			return errors.New("rate limit burst must be at least 1")
		}
		cfg.rateLimit = rps
		cfg.rateBurst = burst
		return nil
	}
}

// WithSwitchToInputOnSelect makes a menu selection also switch the active
// panel to [PanelInput]. Off by default, so selection leaves the panel
// unchanged.
func WithSwitchToInputOnSelect(enabled bool) Option {
	return func(cfg *ebConfig) error {
		cfg.switchToInputOnSelect = enabled
		return nil
	}
}

// WithContributeURL adds a "👏 Add new examples" link at the end of the
// menu, pointing at url. The link is omitted by default.
//
// Returns an error if url is empty.
func WithContributeURL(url string) Option {
	return func(cfg *ebConfig) error {
		if url == "" {
			return errors.New("contribute url cannot be empty")
		}
		cfg.contributeURL = url
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the ExampleBoard instance.
//
// If not specified, [slog.Default] is used.
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *ebConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithSelectCallback registers a function to be called whenever a page view
// selects a different app.
//
// Multiple callbacks may be registered; they execute in registration order.
//
// IMPORTANT: Callbacks must be non-blocking. They run on the request
// goroutine that handled the selection. Panics within callbacks are
// recovered and logged.
//
// Example:
//
//	eb, err := exampleboard.New(
//	    exampleboard.WithSection(intro),
//	    exampleboard.WithSelectCallback(func(ev exampleboard.SelectEvent) {
//	        if !ev.Found {
//	            log.Printf("unknown example requested: %s", ev.AppID)
//	        }
//	    }),
//	)
//
// Nil callbacks are silently ignored.
func WithSelectCallback(cb func(SelectEvent)) Option {
	return func(cfg *ebConfig) error {
		if cb == nil {
			return nil
		}
		cfg.selectCallbacks = append(cfg.selectCallbacks, cb)
		return nil
	}
}

func sweepIntervalFor(ttl time.Duration) time.Duration {
	interval := ttl / 12
	if interval < time.Second {
		interval = time.Second
	}
	return interval
}
