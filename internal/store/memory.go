package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jpalmerr/exampleboard/internal/page"
)

const subscriberBuffer = 16

type session struct {
	id          string
	view        *page.View
	doc         *page.TitleRecorder
	lastSeen    time.Time
	subscribers map[chan Snapshot]struct{}
}

func (s *session) snapshot() Snapshot {
	return Snapshot{
		ID:            s.id,
		Store:         s.view.State(),
		Panel:         s.view.Panel(),
		DocumentTitle: s.doc.Title(),
		UpdatedAt:     s.lastSeen,
	}
}

// MemoryStore is an in-memory implementation of [Store].
//
// Sessions are keyed by a random UUID. Subscribers receive snapshots via
// buffered channels; sends are non-blocking, so a full buffer drops the
// update for that subscriber rather than blocking the request.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	lookup   page.Lookuper
	viewOpts []page.ViewOption
	onSelect func(SelectEvent)
	now      func() time.Time
}

// NewMemoryStore creates a new in-memory [Store].
//
// Every session view is created with viewOpts. onSelect, if non-nil, is
// called after a session's selected app changes; it runs outside the store
// lock.
func NewMemoryStore(lookup page.Lookuper, viewOpts []page.ViewOption, onSelect func(SelectEvent)) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*session),
		lookup:   lookup,
		viewOpts: viewOpts,
		onSelect: onSelect,
		now:      time.Now,
	}
}

// Create implements [Store].
func (m *MemoryStore) Create(appID string) Snapshot {
	doc := &page.TitleRecorder{}
	opts := append([]page.ViewOption{page.WithDocument(doc)}, m.viewOpts...)

	s := &session{
		id:          uuid.NewString(),
		view:        page.NewView(m.lookup, appID, opts...),
		doc:         doc,
		lastSeen:    m.now(),
		subscribers: make(map[chan Snapshot]struct{}),
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	return s.snapshot()
}

// Get implements [Store].
func (m *MemoryStore) Get(id string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	s.lastSeen = m.now()
	return s.snapshot(), nil
}

// Select implements [Store].
func (m *MemoryStore) Select(id, appID string) (Snapshot, page.Navigation, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return Snapshot{}, page.Navigation{}, ErrSessionNotFound
	}

	prev := s.view.State().AppID
	nav, err := s.view.Select(appID)
	if err != nil {
		m.mu.Unlock()
		return Snapshot{}, page.Navigation{}, err
	}
	s.lastSeen = m.now()
	snap := s.snapshot()
	m.notify(s, snap)
	m.mu.Unlock()

	if m.onSelect != nil && prev != appID {
		_, found := m.lookup.Lookup(appID)
		m.onSelect(SelectEvent{
			SessionID:     id,
			PreviousAppID: prev,
			AppID:         appID,
			Found:         found,
			At:            snap.UpdatedAt,
		})
	}

	return snap, nav, nil
}

// SetPanel implements [Store].
func (m *MemoryStore) SetPanel(id string, p page.Panel) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	if err := s.view.SetPanel(p); err != nil {
		return Snapshot{}, err
	}
	s.lastSeen = m.now()
	snap := s.snapshot()
	m.notify(s, snap)
	return snap, nil
}

// Delete implements [Store].
func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	m.remove(s)
	return nil
}

// Sweep implements [Store].
func (m *MemoryStore) Sweep(now time.Time, ttl time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for _, s := range m.sessions {
		// an open event stream means the page is still loaded
		if len(s.subscribers) > 0 {
			continue
		}
		if now.Sub(s.lastSeen) > ttl {
			m.remove(s)
			removed++
		}
	}
	return removed
}

// Len implements [Store].
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Subscribe implements [Store].
func (m *MemoryStore) Subscribe(id string) (<-chan Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	ch := make(chan Snapshot, subscriberBuffer)
	s.subscribers[ch] = struct{}{}
	return ch, nil
}

// Unsubscribe implements [Store].
func (m *MemoryStore) Unsubscribe(id string, ch <-chan Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		// session removal already closed every channel
		return
	}
	for subCh := range s.subscribers {
		if subCh == ch {
			delete(s.subscribers, subCh)
			close(subCh)
			// idle time counts from the end of the stream
			s.lastSeen = m.now()
			break
		}
	}
}

// remove deletes s and closes its subscribers. Caller holds m.mu.
func (m *MemoryStore) remove(s *session) {
	delete(m.sessions, s.id)
	for ch := range s.subscribers {
		close(ch)
	}
	s.subscribers = nil
}

// notify sends snap to the session's subscribers without blocking.
// Caller holds m.mu.
func (m *MemoryStore) notify(s *session, snap Snapshot) {
	for ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
			// subscriber is slow, drop the update
		}
	}
}
