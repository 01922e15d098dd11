package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/projectboard/internal/form"
	"github.com/mesh-intelligence/projectboard/internal/state"
	"github.com/mesh-intelligence/projectboard/internal/view"
	"github.com/mesh-intelligence/projectboard/pkg/types"
)

// board is one wired instance: a store, the form that feeds it, and the
// views that observe it.
type board struct {
	store *state.Store
	form  *form.Form
	views []*view.ListView
}

// newBoard builds the store and attaches the form and one view per kind.
// Views render to out; in JSON mode they render to io.Discard.
func newBoard(e *env, out io.Writer) (*board, error) {
	store := state.New(state.WithLogger(e.logger.With().Str("component", "state").Logger()))
	b := &board{
		store: store,
		form:  form.New(store, form.RulesFromConfig(e.config.Rules), e.logger.With().Str("component", "form").Logger()),
	}

	if e.flags.jsonMode {
		out = io.Discard
	}
	for _, kind := range types.ViewKinds {
		v, err := view.NewListView(kind, out, store)
		if err != nil {
			return nil, err
		}
		b.views = append(b.views, v)
	}
	return b, nil
}

// submit runs one submission through the form. A rejected submission is
// reported on errOut and returned as false; it is not an error.
func (b *board) submit(sub *form.Submission, errOut io.Writer) (bool, error) {
	_, err := b.form.Submit(sub)
	if err == nil {
		return true, nil
	}
	var fe *form.FieldError
	if errors.As(err, &fe) {
		fmt.Fprintf(errOut, "%s (%s)\n", form.RejectMessage, strings.Join(fe.Fields, ", "))
		return false, nil
	}
	return false, err
}

// writeJSON prints the current collection as indented JSON.
func (b *board) writeJSON(w io.Writer) error {
	projects := b.store.Projects()
	output, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal projects: %w", err)
	}
	fmt.Fprintln(w, string(output))
	return nil
}
