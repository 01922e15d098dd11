// Package state holds the board's authoritative project collection and
// notifies registered observers after every append.
package state

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/projectboard/pkg/types"
)

// Store is an append-only collection of projects with an observer registry.
// Appends are serialized by notifyMu, held through notification, so every
// observer sees each snapshot in append order. mu guards the collection and
// observer list and is released before observers run, so Notify may call
// Len, Projects, and AddListener. Notify must not call AddProject.
type Store struct {
	notifyMu sync.Mutex

	mu        sync.Mutex
	projects  []types.Project
	observers []types.Observer

	logger zerolog.Logger
	newID  func() string
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for append events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithIDGenerator replaces the project ID generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock replaces the clock used for CreatedAt.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		logger: zerolog.Nop(),
		newID:  generateUUID,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the process-wide store, creating it on first use. Every
// call returns the same instance.
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = New()
	})
	return defaultStore
}

// AddListener registers o. Observers are notified in registration order.
// Registering the same observer twice notifies it twice. A nil observer is
// ignored.
func (s *Store) AddListener(o types.Observer) {
	if o == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// AddProject appends a new project and notifies every observer with a copy
// of the full collection. Inputs are expected to be validated already.
func (s *Store) AddProject(title, description string, people int) types.Project {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	p := types.Project{
		ProjectID:   s.newID(),
		Title:       title,
		Description: description,
		People:      people,
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	s.projects = append(s.projects, p)
	snapshot := s.snapshotLocked()
	observers := make([]types.Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	s.logger.Debug().
		Str("project_id", p.ProjectID).
		Int("count", len(snapshot)).
		Int("observers", len(observers)).
		Msg("project added")

	for _, o := range observers {
		// Each observer gets its own copy.
		own := make([]types.Project, len(snapshot))
		copy(own, snapshot)
		o.Notify(own)
	}
	return p
}

// Projects returns a copy of the collection in insertion order.
func (s *Store) Projects() []types.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Len returns the number of projects.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.projects)
}

// snapshotLocked copies the collection.
// The caller must hold s.mu.
func (s *Store) snapshotLocked() []types.Project {
	out := make([]types.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// generateUUID generates a new UUID v7 for project IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
