package listview

import (
	"fmt"
	"sync"
)

// ViewState is the per-session, per-screen presentation state: the column
// order the user dragged into place and the expanded detail row. It lives
// in memory only and dies with the session.
type ViewState struct {
	Columns   []Column  `json:"columns"`
	Expansion Expansion `json:"expansion"`
}

// StateStore keeps one ViewState per (session, screen), seeded from the
// screen's registered default columns.
type StateStore struct {
	mu       sync.Mutex
	states   map[string]*ViewState
	defaults map[string][]Column
}

func NewStateStore() *StateStore {
	return &StateStore{
		states:   make(map[string]*ViewState),
		defaults: make(map[string][]Column),
	}
}

// RegisterScreen declares a screen and its default column set. Registering
// the same screen twice is a configuration error.
func (s *StateStore) RegisterScreen(screen string, cols []Column) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.defaults[screen]; exists {
		return fmt.Errorf("screen %q already registered", screen)
	}
	s.defaults[screen] = append([]Column(nil), cols...)
	return nil
}

// DefaultColumns returns a copy of the registered column set for a screen.
func (s *StateStore) DefaultColumns(screen string) ([]Column, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cols, ok := s.defaults[screen]
	if !ok {
		return nil, false
	}
	return append([]Column(nil), cols...), true
}

func (s *StateStore) key(sessionID, screen string) string {
	return sessionID + "|" + screen
}

func (s *StateStore) state(sessionID, screen string) (*ViewState, error) {
	cols, ok := s.defaults[screen]
	if !ok {
		return nil, fmt.Errorf("unknown screen %q", screen)
	}
	k := s.key(sessionID, screen)
	st, ok := s.states[k]
	if !ok {
		st = &ViewState{Columns: append([]Column(nil), cols...)}
		s.states[k] = st
	}
	return st, nil
}

// Get returns a copy of the current view state, creating it from the
// defaults on first access.
func (s *StateStore) Get(sessionID, screen string) (ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.state(sessionID, screen)
	if err != nil {
		return ViewState{}, err
	}
	return ViewState{Columns: append([]Column(nil), st.Columns...), Expansion: st.Expansion}, nil
}

// Reorder applies a drag-and-drop column move and returns the new state.
func (s *StateStore) Reorder(sessionID, screen string, from, to int) (ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.state(sessionID, screen)
	if err != nil {
		return ViewState{}, err
	}
	st.Columns = Reorder(st.Columns, from, to)
	return ViewState{Columns: append([]Column(nil), st.Columns...), Expansion: st.Expansion}, nil
}

// Expand toggles the detail panel of rowID, collapsing any other open row.
func (s *StateStore) Expand(sessionID, screen, rowID string) (ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.state(sessionID, screen)
	if err != nil {
		return ViewState{}, err
	}
	st.Expansion.Toggle(rowID)
	return ViewState{Columns: append([]Column(nil), st.Columns...), Expansion: st.Expansion}, nil
}

// Drop discards every screen state of a session, called on logout.
func (s *StateStore) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.states {
		if len(k) > len(sessionID) && k[:len(sessionID)+1] == sessionID+"|" {
			delete(s.states, k)
		}
	}
}
