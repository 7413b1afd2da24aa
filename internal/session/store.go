package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"shopwindow.dev/app/internal/modules/cart"
	"shopwindow.dev/app/internal/modules/quantity"
)

// Session is one visitor's in-memory state: the cart shared by the shop
// and cart pages, plus the quantity-editor state for each product widget.
// Nothing here survives a process restart; the cart lives for the visit
// only.
type Session struct {
	ID       string
	Cart     *cart.Cart
	lastSeen time.Time

	mu      sync.Mutex
	editors map[string]*quantity.Editor
}

// Editor returns the session's quantity editor for key, creating it
// seeded with starterCount on first use. Keys combine the page context
// and the product id so the shop widget and the cart widget for the same
// product do not share state.
func (s *Session) Editor(key string, starterCount int) *quantity.Editor {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.editors[key]
	if !ok {
		e = quantity.New(starterCount)
		s.editors[key] = e
	}
	return e
}

// ResetEditor drops the widget state for key, so the next render seeds a
// fresh editor. Used after a submit settles the cart line.
func (s *Session) ResetEditor(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.editors, key)
}

// EditorState reports the widget state for key without creating one.
func (s *Session) EditorState(key string) (display string, committed int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.editors[key]
	if !ok {
		return "", 0, false
	}
	return e.Display(), e.Committed(), true
}

// Store holds sessions by id with a TTL. Idle sessions are swept lazily
// on access, so there is no background goroutine to manage.
type Store struct {
	ttl time.Duration

	mu        sync.Mutex
	sessions  map[string]*Session
	lastSweep time.Time
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Store{ttl: ttl, sessions: make(map[string]*Session), lastSweep: time.Now()}
}

// Get returns the session for id, refreshing its TTL.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sweepLocked()

	s, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	s.lastSeen = time.Now()
	return s, true
}

// Create starts a fresh session with an empty cart.
func (st *Store) Create() *Session {
	s := &Session{
		ID:       uuid.NewString(),
		Cart:     cart.New(),
		lastSeen: time.Now(),
		editors:  make(map[string]*quantity.Editor),
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sweepLocked()
	st.sessions[s.ID] = s
	return s
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *Store) sweepLocked() {
	now := time.Now()
	if now.Sub(st.lastSweep) < st.ttl/2 {
		return
	}
	st.lastSweep = now
	for id, s := range st.sessions {
		if now.Sub(s.lastSeen) > st.ttl {
			delete(st.sessions, id)
		}
	}
}
