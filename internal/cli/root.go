// Package cli implements the board command-line interface. It is the
// composition root: it loads configuration, builds the state store, and
// wires the form and the two list views to it.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/projectboard/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	logLevel  string
	jsonMode  bool
}

// env is the state prepared by the root command before a subcommand runs.
type env struct {
	flags     rootFlags
	configDir string
	config    types.Config
	logger    zerolog.Logger
}

// NewRootCmd creates the top-level "board" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	e := &env{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "board",
		Short: "Collect validated projects into active and finished lists",
		Long: "Board reads project submissions (title, description, people), validates\n" +
			"each field, and re-renders the active and finished project lists after\n" +
			"every accepted submission.",
		Version: Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip config loading for version command
			if cmd.Name() == "version" {
				return nil
			}
			return e.load(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&e.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&e.flags.logLevel, "log-level", "", "log level: debug, info, warn, error, disabled")
	root.PersistentFlags().BoolVar(&e.flags.jsonMode, "json", false, "output as JSON")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(e))
	root.AddCommand(newSessionCmd(e))
	root.AddCommand(newSubmitCmd(e))

	return root
}

// load resolves the config directory, reads config.yaml, and builds the logger.
func (e *env) load(logOut io.Writer) error {
	dir, err := resolveConfigDir(e.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	cfg, err := loadConfig(dir)
	if err != nil {
		return userError(fmt.Errorf("load config: %w", err))
	}
	if e.flags.logLevel != "" {
		cfg.LogLevel = e.flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return userError(fmt.Errorf("config: %w", err))
	}

	e.configDir = dir
	e.config = cfg
	e.logger = newLogger(cfg.LogLevel, logOut)
	return nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Stderr))
}

// run executes root and maps its error to an exit code.
func run(root *cobra.Command, stderr io.Writer) int {
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "Error:", err)

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
