package cmd

import (
	"fmt"

	"github.com/hpkotak/venvctl/internal/executor"
	"github.com/hpkotak/venvctl/internal/venv"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the virtual environment",
	Long: `Remove the virtual environment directory after confirmation. Directories
without a pyvenv.cfg marker are refused, so a mistyped --dir cannot take
out an arbitrary tree.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir := venvDir(cfg)

	if !venv.Exists(dir) {
		_, _ = fmt.Fprintf(ioOut, "Nothing to remove at %s.\n", dir)
		return nil
	}

	prompt := fmt.Sprintf("Remove the virtual environment at %s?", dir)
	if !executor.Confirm(prompt, false, ioIn, ioOut) {
		_, _ = fmt.Fprintln(ioOut, "Cancelled.")
		return nil
	}

	if err := venv.Remove(dir); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(ioOut, "[ok] Removed %s\n", dir)
	return nil
}
