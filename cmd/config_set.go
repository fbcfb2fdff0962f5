package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hpkotak/venvctl/internal/config"
	"github.com/spf13/cobra"
)

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update a configuration value",
	Long: `Update a configuration value. Supported keys:
  interpreters  Comma-separated interpreter names tried in order (e.g., python3.12,python3)
  venv.dir      Virtual environment directory
  venv.prompt   Shell prompt name for the environment (empty clears it)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		if !errors.Is(err, config.ErrNotFound) {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = config.Default()
	}

	switch key {
	case "interpreters":
		names := splitList(value)
		if len(names) == 0 {
			return fmt.Errorf("interpreters cannot be empty")
		}
		cfg.Interpreters = names
	case "venv.dir":
		value = strings.TrimSpace(value)
		if value == "" {
			return fmt.Errorf("venv.dir cannot be empty")
		}
		cfg.Venv.Dir = value
	case "venv.prompt":
		cfg.Venv.Prompt = strings.TrimSpace(value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := saveBack(cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(ioOut, "Set %s = %s\n", key, value)
	return nil
}

// saveBack writes the config to the file it was loaded from, defaulting to
// the home file for configs that never touched disk.
func saveBack(cfg *config.Config) error {
	if cfg.Source() == config.LocalPath() {
		return config.SaveLocal(cfg)
	}
	return config.Save(cfg)
}

func splitList(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			names = append(names, p)
		}
	}
	return names
}
