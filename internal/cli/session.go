package cli

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/projectboard/internal/form"
)

// maxLineBytes caps one input line.
const maxLineBytes = 1 << 20

func newSessionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Run an interactive project form",
		Long: `Session prompts for a title, a description, and a number of people, one
line each, and submits the form after the third line. Accepted projects are
shown in the active and finished lists; rejected ones are reported and the
form is shown again. The session ends at end of input. Lines longer than
1 MiB end the session with a user error.

Example:
  board session
  printf 'Build API\nDesign and ship\n3\n' | board session --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, e)
		},
	}
}

func runSession(cmd *cobra.Command, e *env) error {
	out := cmd.OutOrStdout()
	b, err := newBoard(e, out)
	if err != nil {
		return sysError(err)
	}

	var sub form.Submission
	prompts := []struct {
		label string
		field *string
	}{
		{"Title: ", &sub.Title},
		{"Description: ", &sub.Description},
		{"People: ", &sub.People},
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	accepted, rejected := 0, 0
read:
	for {
		for _, p := range prompts {
			if !e.flags.jsonMode {
				fmt.Fprint(out, p.label)
			}
			if !scanner.Scan() {
				break read
			}
			*p.field = scanner.Text()
		}

		ok, err := b.submit(&sub, cmd.ErrOrStderr())
		if err != nil {
			return sysError(err)
		}
		if ok {
			accepted++
		} else {
			rejected++
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return userError(fmt.Errorf("read input: line longer than %d bytes", maxLineBytes))
		}
		return sysError(fmt.Errorf("read input: %w", err))
	}

	e.logger.Info().Int("accepted", accepted).Int("rejected", rejected).Msg("session ended")
	if e.flags.jsonMode {
		return b.writeJSON(out)
	}
	fmt.Fprintf(out, "\n%d project(s) added, %d rejected\n", accepted, rejected)
	return nil
}
