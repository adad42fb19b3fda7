package store

import (
	"errors"
	"time"

	"github.com/jpalmerr/exampleboard/internal/page"
)

// ErrSessionNotFound is returned for unknown or expired session IDs.
var ErrSessionNotFound = errors.New("session not found")

// Snapshot is the serialisable state of one page view session.
//
// Snapshot is used by the REST API and the Server-Sent Events stream. It is a
// copy; modifying it does not affect the session.
type Snapshot struct {
	// ID is the session identifier.
	ID string `json:"id"`

	// Store is the editable state passed to the live editor.
	Store page.EditableState `json:"store"`

	// Panel is the small-screen panel state.
	Panel page.PanelState `json:"panel"`

	// DocumentTitle is the title the browser should display.
	DocumentTitle string `json:"documentTitle"`

	// UpdatedAt is the time of the last change or access.
	UpdatedAt time.Time `json:"updatedAt"`
}

// SelectEvent describes a change of the selected app in a session.
type SelectEvent struct {
	SessionID     string
	PreviousAppID string
	AppID         string
	Found         bool
	At            time.Time
}

// Store defines session storage with per-session subscriptions.
//
// Store implementations must be safe for concurrent access. Mutations to a
// single session are serialised, so each session behaves like a
// single-threaded page view.
type Store interface {
	// Create starts a session for the given route app ID.
	Create(appID string) Snapshot

	// Get returns the current snapshot and refreshes the session's idle timer.
	Get(id string) (Snapshot, error)

	// Select handles a menu click, returning the updated snapshot and the
	// address bar change.
	Select(id, appID string) (Snapshot, page.Navigation, error)

	// SetPanel changes the active panel.
	SetPanel(id string, p page.Panel) (Snapshot, error)

	// Delete discards a session and closes its subscriptions.
	Delete(id string) error

	// Sweep removes sessions idle for longer than ttl and reports how many
	// were removed. Sessions with an open subscription are never idle.
	Sweep(now time.Time, ttl time.Duration) int

	// Len reports the number of live sessions.
	Len() int

	// Subscribe returns a channel receiving snapshots after each change.
	// The channel has a buffer; slow consumers may miss updates.
	// Caller must call Unsubscribe when done.
	Subscribe(id string) (<-chan Snapshot, error)

	// Unsubscribe removes a subscription and closes the channel.
	// Safe to call with a channel that was already closed.
	Unsubscribe(id string, ch <-chan Snapshot)
}
