package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration as YAML after applying the search order:
--config, ~/.minesweeper/config.yaml, ./configs/minesweeper.yaml, built-in defaults.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, source := loadConfig()

	data, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", source)
	fmt.Print(string(data))
}
