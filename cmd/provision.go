package cmd

import (
	"context"
	"fmt"

	"github.com/hpkotak/venvctl/internal/venv"
	"github.com/spf13/cobra"
)

var promptFlag string

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Create the virtual environment",
	Long: `Create the virtual environment using the first Python interpreter found
on PATH. Candidates are tried in order (python3 then python by default; see
'venvctl config') and only a name missing from PATH falls through to the
next one.

Provisioning an existing environment is safe; the venv module refreshes it
in place.`,
	Args: cobra.NoArgs,
	RunE: runProvision,
}

func init() {
	provisionCmd.Flags().StringVar(&promptFlag, "prompt", "", "shell prompt name for the environment")
	rootCmd.AddCommand(provisionCmd)
}

func runProvision(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := venvDir(cfg)
	prompt := cfg.Venv.Prompt
	if promptFlag != "" {
		prompt = promptFlag
	}

	err = venvCreate(context.Background(), dir, venv.CreateOptions{
		Interpreters: cfg.Interpreters,
		Prompt:       prompt,
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(ioOut, "[ok] Virtual environment ready at %s\n", dir)
	_, _ = fmt.Fprintln(ioOut, "Activate it with: venvctl activate")
	return nil
}
