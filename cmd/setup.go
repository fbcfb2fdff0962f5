package cmd

import (
	"github.com/hpkotak/venvctl/internal/setup"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure venvctl (first-time or reconfigure)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setup.Run(ioIn, ioOut)
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
