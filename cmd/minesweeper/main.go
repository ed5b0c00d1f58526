// minesweeper is a terminal Minesweeper game.
//
// Usage:
//
//	minesweeper              - Play a game (same as "minesweeper play")
//	minesweeper play         - Play a game
//	minesweeper keys         - Show the effective key bindings
//	minesweeper config       - Print the effective configuration as YAML
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for a reproducible board
//	--config <path>      - Use a custom config file
//	--log-file <path>    - Write logs to a rotated file
//	--log-level <level>  - Log level: debug, info, warn, error
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	// Load .env for local OTEL_* settings; a missing file is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: .env not loaded: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper in your terminal",
	Long: `Minesweeper on a 30x20 board with 120 mines.

The first sweep is always safe: no mines are placed within two cells of it.
Uncover every cell without a mine to win.

Available commands:
  play     - Play a game (default)
  keys     - Show key bindings
  config   - Print the effective configuration

Examples:
  minesweeper
  minesweeper --seed 42
  minesweeper play --log-file /tmp/minesweeper.log --log-level debug
  minesweeper config > ~/.minesweeper/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies flag overrides.
// It exits the process on error.
func loadConfig() (config.Config, string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, source
}
