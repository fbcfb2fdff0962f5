package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hpkotak/venvctl/internal/config"
	"github.com/hpkotak/venvctl/internal/doctor"
	"github.com/hpkotak/venvctl/internal/executor"
	"github.com/hpkotak/venvctl/internal/platform"
	"github.com/hpkotak/venvctl/internal/venv"
	"github.com/spf13/cobra"
)

var (
	dirFlag     string
	verboseFlag bool
)

// Package-level function variables for testability.
// Tests override these to avoid touching the real host.
var (
	venvCreate             = venv.Create
	runQuiet               = executor.RunQuiet
	runArgv                = executor.RunArgv
	platformKind           = platform.Detect
	gatherFn               = doctor.Gather
	ioIn         io.Reader = os.Stdin
	ioOut        io.Writer = os.Stdout
)

var rootCmd = &cobra.Command{
	Use:   "venvctl",
	Short: "Provision and activate Python virtual environments",
	Long: `venvctl provisions a Python virtual environment with interpreter
fallback and prints the activation instruction for your OS and shell.

Examples:
  venvctl provision
  venvctl activate
  eval "$(venvctl activate --print)"
  venvctl run -- python script.py`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging()
	},
	DisableAutoGenTag: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "virtual environment directory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "enable debug logging")
}

func Execute() error {
	return rootCmd.Execute()
}

// initLogging routes debug logging to stderr when --verbose is set and
// discards it otherwise. User-facing output goes through ioOut, never slog.
func initLogging() {
	if verboseFlag {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// loadConfig returns the effective config. A missing config file is not an
// error; defaults apply.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// venvDir resolves the effective environment directory. The --dir flag wins
// over the configured value.
func venvDir(cfg *config.Config) string {
	if dirFlag != "" {
		return dirFlag
	}
	return cfg.VenvDir()
}

// exitError carries a child process exit code through cobra's error path so
// main can exit with the child's code instead of a flat 1.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}
