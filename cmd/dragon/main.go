// dragon is Dragon Eat Dragon, an arcade game for the terminal: eat smaller
// dragons, run from bigger ones, and grow into the OMEGA DRAGON.
//
// Usage:
//
//	dragon play              - Play the game
//	dragon scores            - Show the run history
//	dragon config            - Print the default configuration
//
// Global flags:
//
//	--db <path>     - Set run history path (default: ~/.arcade/dragon.db)
//
// Flag defaults can also come from DRAGON_DB, DRAGON_CONFIG and DRAGON_LOG,
// set in the environment or in a .env file in the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragon-arcade/internal/config"
)

const (
	defaultDBPath  = "~/.arcade/dragon.db"
	defaultLogPath = "~/.arcade/dragon.log"
	envFile        = ".env"
)

var (
	// Global flags
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dragon",
	Short: "Dragon Eat Dragon - grow into the OMEGA DRAGON in your terminal",
	Long: `Dragon Eat Dragon is a top-down arcade game in an endless world.
Eat dragons no bigger than you, dodge the bigger ones, and grow past
size 300 to become the OMEGA DRAGON.

Available commands:
  play     - Start a game
  scores   - View the run history
  config   - Print the default configuration

Examples:
  dragon play
  dragon play --seed 42 --fps 60
  dragon scores --tui
  dragon config > ~/.arcade/configs/dragon.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnvDefaults,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to run history database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadEnvDefaults reads .env and fills flags the user did not set from the
// environment.
func loadEnvDefaults(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(envFile); err != nil {
		return err
	}

	envFlags := []struct {
		name   string
		env    string
		target *string
	}{
		{"db", config.EnvDBPath, &flagDBPath},
		{"config", config.EnvConfigPath, &flagConfig},
		{"log", config.EnvLogPath, &flagLogPath},
	}
	for _, f := range envFlags {
		flag := cmd.Flags().Lookup(f.name)
		if flag == nil || flag.Changed {
			continue
		}
		*f.target = config.GetEnv(f.env, *f.target)
	}
	return nil
}
