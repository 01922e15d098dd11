// Package view renders the project lists that observe the state store.
package view

import (
	"fmt"
	"io"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mesh-intelligence/projectboard/pkg/types"
)

// Registry is the part of the state store a view registers with.
type Registry interface {
	AddListener(o types.Observer)
}

// ListView renders one kind of project list to a writer. It implements
// types.Observer and re-renders on every notification.
type ListView struct {
	kind string
	w    io.Writer

	mu       sync.Mutex
	assigned []types.Project
}

// NewListView creates a view of the given kind, renders its empty frame, and
// registers it with store. Returns types.ErrInvalidView for an unknown kind.
func NewListView(kind string, w io.Writer, store Registry) (*ListView, error) {
	if !types.ValidViewKind(kind) {
		return nil, fmt.Errorf("view %q: %w", kind, types.ErrInvalidView)
	}
	v := &ListView{kind: kind, w: w}
	v.render()
	if store != nil {
		store.AddListener(v)
	}
	return v, nil
}

// Kind returns the view kind.
func (v *ListView) Kind() string { return v.kind }

// ListID returns the identifier of the rendered list, e.g.
// "active-projects-list".
func (v *ListView) ListID() string {
	return v.kind + "-projects-list"
}

// Header returns the list heading, e.g. "ACTIVE PROJECTS".
func (v *ListView) Header() string {
	return cases.Upper(language.English).String(v.kind) + " PROJECTS"
}

// Notify replaces the assigned projects and re-renders.
func (v *ListView) Notify(projects []types.Project) {
	v.mu.Lock()
	v.assigned = projects
	v.mu.Unlock()
	v.render()
}

// Assigned returns the projects from the last notification.
func (v *ListView) Assigned() []types.Project {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]types.Project, len(v.assigned))
	copy(out, v.assigned)
	return out
}

func (v *ListView) render() {
	v.mu.Lock()
	defer v.mu.Unlock()

	fmt.Fprintf(v.w, "%s [%s]\n", v.Header(), v.ListID())
	if len(v.assigned) == 0 {
		fmt.Fprintln(v.w, "  (none)")
		return
	}
	for _, p := range v.assigned {
		fmt.Fprintf(v.w, "  - %s\n", p.Title)
	}
}
