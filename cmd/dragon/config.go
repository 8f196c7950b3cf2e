package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragon-arcade/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML, or validate a config file.

Examples:
  dragon config > ~/.arcade/configs/dragon.yaml
  dragon config --check ./my-dragon.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate a config file instead of printing defaults")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagCheck != "" {
		if _, _, err := config.LoadDragon(flagCheck); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", flagCheck)
		return nil
	}

	_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
	return err
}
