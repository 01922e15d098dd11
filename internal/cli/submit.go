package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/projectboard/internal/form"
)

// submissionFile is the YAML layout accepted by submit --file.
type submissionFile struct {
	Projects []form.Submission `yaml:"projects"`
}

type submitFlags struct {
	title       string
	description string
	people      string
	file        string
}

func newSubmitCmd(e *env) *cobra.Command {
	var f submitFlags

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit one project from flags or many from a YAML file",
		Long: `Submit validates and adds projects, then prints the active and finished
lists. Submissions are processed in order; invalid ones are reported and
skipped, and the command exits with status 1 if any were rejected.

Example:
  board submit --title "Build API" --description "Design and ship" --people 3
  board submit --file projects.yaml --json

File layout:
  projects:
    - title: Build API
      description: Design and ship
      people: 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd, e, f)
		},
	}

	cmd.Flags().StringVar(&f.title, "title", "", "project title")
	cmd.Flags().StringVar(&f.description, "description", "", "project description")
	cmd.Flags().StringVar(&f.people, "people", "", "number of people")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "YAML file with a list of projects")
	cmd.MarkFlagsMutuallyExclusive("file", "title")
	cmd.MarkFlagsMutuallyExclusive("file", "description")
	cmd.MarkFlagsMutuallyExclusive("file", "people")

	return cmd
}

func runSubmit(cmd *cobra.Command, e *env, f submitFlags) error {
	subs := []form.Submission{{Title: f.title, Description: f.description, People: f.people}}
	if f.file != "" {
		var err error
		subs, err = readSubmissionFile(f.file)
		if err != nil {
			return userError(err)
		}
	}

	out := cmd.OutOrStdout()
	b, err := newBoard(e, out)
	if err != nil {
		return sysError(err)
	}

	rejected := 0
	for i := range subs {
		ok, err := b.submit(&subs[i], cmd.ErrOrStderr())
		if err != nil {
			return sysError(err)
		}
		if !ok {
			rejected++
		}
	}

	if e.flags.jsonMode {
		if err := b.writeJSON(out); err != nil {
			return sysError(err)
		}
	}
	if rejected > 0 {
		return userError(fmt.Errorf("%d of %d submission(s) rejected", rejected, len(subs)))
	}
	return nil
}

// readSubmissionFile parses the YAML submission list at path.
func readSubmissionFile(path string) ([]form.Submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read submissions: %w", err)
	}
	var sf submissionFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse submissions %s: %w", path, err)
	}
	if len(sf.Projects) == 0 {
		return nil, fmt.Errorf("parse submissions %s: no projects listed", path)
	}
	return sf.Projects, nil
}
