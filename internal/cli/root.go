// Package cli implements the quirk command-line interface: a small front end
// that keeps widgets in a SQLite store and applies property presets to them.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	verbose   bool
}

// app carries state shared by the subcommands of one root command.
type app struct {
	flags  rootFlags
	config *viper.Viper
	logger *slog.Logger
}

// exitError pairs an error with the process exit code it maps to.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(format string, args ...any) error {
	return &exitError{code: exitUserError, err: fmt.Errorf(format, args...)}
}

func sysError(format string, args ...any) error {
	return &exitError{code: exitSysError, err: fmt.Errorf(format, args...)}
}

// exitCode returns the exit code for an error returned by a command.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// NewRootCmd creates the top-level "quirk" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "quirk",
		Short: "Apply property presets to stored widgets",
		Long: "Quirk keeps widgets in a local store and mutates them through\n" +
			"ordered property assignments replayed as presets.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir, or $QUIRK_CONFIG_DIR)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: .quirk-db)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.newVersionCmd())
	root.AddCommand(a.newInitCmd())
	root.AddCommand(a.newWidgetCmd())
	root.AddCommand(a.newApplyCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "quirk:", err)
		os.Exit(exitCode(err))
	}
}

// setup builds the logger and loads config.yaml before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.logger = newLogger(cmd.ErrOrStderr(), a.flags.verbose)

	configDir, err := a.resolveConfigDir()
	if err != nil {
		return sysError("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError("load config: %w", err)
	}
	a.config = cfg
	a.logger.Debug("loaded config",
		slog.String("config_dir", configDir),
		slog.String("backend", cfg.GetString(cfgKeyBackend)),
		slog.String("on_error", cfg.GetString(cfgKeyOnError)),
	)
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
