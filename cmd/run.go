package cmd

import (
	"fmt"
	"os"

	"github.com/hpkotak/venvctl/internal/venv"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run -- <command> [args...]",
	Short: "Run a command inside the virtual environment",
	Long: `Run a command with the virtual environment applied: VIRTUAL_ENV set, the
environment's bin directory first on PATH, PYTHONHOME cleared. The command
is executed directly, without shell interpolation, and its exit code
becomes venvctl's exit code.

Examples:
  venvctl run -- python script.py
  venvctl run -- pip list`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir := venvDir(cfg)

	if !venv.Exists(dir) {
		return fmt.Errorf("no virtual environment at %s (run 'venvctl provision' first)", dir)
	}

	code, err := runArgv(args, venv.Environ(dir, os.Environ()))
	if err != nil {
		return err
	}
	if code != 0 {
		return exitError{code: code}
	}
	return nil
}
