package cmd

import (
	"errors"
	"fmt"

	"github.com/hpkotak/venvctl/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			_, _ = fmt.Fprintln(ioOut, "No config file found; defaults are in effect.")
			_, _ = fmt.Fprintf(ioOut, "Search order: %s, then %s\n", config.LocalPath(), config.Path())
			_, _ = fmt.Fprintln(ioOut, "Run 'venvctl setup' to create one.")
			return nil
		}
		return fmt.Errorf("loading config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	_, _ = fmt.Fprintf(ioOut, "Config file: %s\n\n", cfg.Source())
	_, _ = fmt.Fprint(ioOut, string(data))
	return nil
}
