// Package session holds the process-wide signed-in identity.
//
// The store starts signed out and keeps no state across restarts; restoring a
// previous session is the job of a collaborator that reads durable storage
// and calls Set. Writes follow a single-writer discipline: the submission
// controller (after sign-in or sign-up) and the explicit sign-out/restore
// path hold a Writer, everybody else gets a Reader.
package session

import (
	"sync"

	"github.com/dmitrijs2005/clubauth/internal/client/models"
)

// Listener observes identity changes. It receives nil on sign-out.
type Listener func(identity *models.Identity)

// Reader is the read side of the store.
type Reader interface {
	Get() (models.Identity, bool)
	Subscribe(l Listener) (unsubscribe func())
}

// Writer replaces the current identity. Set(nil) signs out.
type Writer interface {
	Set(identity *models.Identity)
}

// Store is a concurrency-safe identity holder implementing Reader and Writer.
type Store struct {
	mu        sync.RWMutex
	current   *models.Identity
	listeners map[uint64]Listener
	order     []uint64
	nextID    uint64
}

// NewStore returns a signed-out store.
func NewStore() *Store {
	return &Store{listeners: make(map[uint64]Listener)}
}

// Get returns the current identity; ok is false when signed out.
func (s *Store) Get() (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.Identity{}, false
	}
	return *s.current, true
}

// Set stores a copy of identity and notifies listeners in subscription
// order. Listeners run on the caller's goroutine, after the lock is released.
func (s *Store) Set(identity *models.Identity) {
	var next *models.Identity
	if identity != nil {
		cp := *identity
		next = &cp
	}

	s.mu.Lock()
	s.current = next
	ls := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		ls = append(ls, s.listeners[id])
	}
	s.mu.Unlock()

	for _, l := range ls {
		if next == nil {
			l(nil)
			continue
		}
		cp := *next
		l(&cp)
	}
}

// Subscribe registers l for future changes. The returned function removes
// it and may be called more than once.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.order = append(s.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { s.unsubscribe(id) })
	}
}

func (s *Store) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.listeners, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
