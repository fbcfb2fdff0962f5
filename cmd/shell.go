package cmd

import (
	"fmt"
	"os"

	"github.com/hpkotak/venvctl/internal/platform"
	"github.com/hpkotak/venvctl/internal/venv"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start a subshell inside the virtual environment",
	Long: `Start an interactive subshell with the virtual environment applied.
Exiting the shell leaves the environment; nothing persists in the parent
shell.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir := venvDir(cfg)

	if !venv.Exists(dir) {
		_, _ = fmt.Fprintf(ioOut, "[!!] No virtual environment at %s; starting the shell anyway.\n", dir)
	}

	sh := platform.Shell()
	_, _ = fmt.Fprintf(ioOut, "Starting %s with %s active. Exit the shell to leave.\n", sh, dir)

	code, err := runArgv([]string{sh}, venv.Environ(dir, os.Environ()))
	if err != nil {
		return err
	}
	if code != 0 {
		return exitError{code: code}
	}
	return nil
}
