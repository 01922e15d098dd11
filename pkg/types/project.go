package types

import "time"

// View kinds. Each kind names one observing list on the board.
const (
	ViewActive   = "active"
	ViewFinished = "finished"
)

// ViewKinds lists the view kinds in the order they are attached.
var ViewKinds = []string{
	ViewActive,
	ViewFinished,
}

// validViewKinds is the set of recognized view kinds.
var validViewKinds = map[string]bool{
	ViewActive:   true,
	ViewFinished: true,
}

// ValidViewKind reports whether kind names a known view.
func ValidViewKind(kind string) bool {
	return validViewKinds[kind]
}

// Project is an accepted work item. Projects are created only by the state
// store and are never modified afterwards.
type Project struct {
	ProjectID   string    `json:"project_id"`  // UUID v7, generated on append.
	Title       string    `json:"title"`       // Non-empty after trimming.
	Description string    `json:"description"` // Free text.
	People      int       `json:"people"`      // Headcount assigned to the project.
	CreatedAt   time.Time `json:"created_at"`  // Time of append.
}

// Observer receives the full collection after every successful append.
// The slice is a copy; observers may keep it but changes do not reach the
// store.
type Observer interface {
	Notify(projects []Project)
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc func(projects []Project)

// Notify calls f(projects).
func (f ObserverFunc) Notify(projects []Project) {
	f(projects)
}
