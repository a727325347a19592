package store

import (
	"slices"
	"sync"
)

// Listener observes an action together with the state it produced.
// Listeners run synchronously inside Dispatch and must not dispatch.
type Listener func(action Action, state State)

type Store struct {
	dispatchMu sync.Mutex
	mu         sync.RWMutex
	state      State
	listeners  map[int]Listener
	nextID     int
}

func New() *Store {
	return &Store{
		state:     initialState(),
		listeners: make(map[int]Listener),
	}
}

// Dispatch applies action and notifies listeners. Concurrent dispatches are
// serialised so listeners see actions in the order they were applied.
func (s *Store) Dispatch(action Action) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	s.state = reduce(s.state, action)
	state := s.state
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(action, state)
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers listener and returns a function that removes it.
func (s *Store) Subscribe(listener Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = listener

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) snapshotListeners() []Listener {
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	listeners := make([]Listener, len(ids))
	for i, id := range ids {
		listeners[i] = s.listeners[id]
	}
	return listeners
}
