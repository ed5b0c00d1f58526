package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Long:  `Shows the effective key bindings after loading the configuration.`,
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func runKeys(cmd *cobra.Command, args []string) {
	cfg, source := loadConfig()

	fmt.Printf("Key bindings (from %s):\n", source)
	fmt.Println()
	for _, line := range tui.NewKeyMap(cfg.Keys).Describe() {
		fmt.Printf("  %s\n", line)
	}
}
