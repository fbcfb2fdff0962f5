package cmd

import (
	"fmt"

	"github.com/hpkotak/venvctl/internal/config"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show interpreters and environment state",
	Long: `Show the interpreters found on PATH, the virtual environment state, and
the shell details relevant to activation. Reporting is best-effort: probe
failures show up as missing fields, never as command errors.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		_, _ = fmt.Fprintf(ioOut, "[!!] Config unreadable (%v); using defaults.\n\n", err)
		cfg = config.Default()
	}

	source := cfg.Source()
	if source == "" {
		source = "defaults (no config file)"
	}
	_, _ = fmt.Fprintf(ioOut, "Config: %s\n", source)

	snapshot := gatherFn(venvDir(cfg), cfg.Interpreters)
	_, _ = fmt.Fprint(ioOut, snapshot.Format())
	return nil
}
