package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/logging"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-minesweeper/internal/telemetry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Minesweeper.

Controls (defaults, see "minesweeper keys"):
  h/j/k/l, arrows  - Move the cursor
  Space/Enter      - Sweep the cell under the cursor
  F                - Place or remove a flag
  R                - New game (after a win or loss)
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Examples:
  minesweeper play
  minesweeper play --seed 42
  minesweeper play --config ./my-minesweeper.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, source := loadConfig()

	if err := playGame(context.Background(), cfg, source, minesweeper.DefaultParams()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playGame runs the game until the player quits. The log file and the
// trace exporter are closed before it returns.
func playGame(ctx context.Context, cfg config.Config, source string, params minesweeper.Params) error {
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Info("config loaded", "source", source)

	// Tracing is optional; the game runs without it
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed", "error", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Warn("telemetry shutdown failed", "error", err)
			}
		}()
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(tui.Options{
		Params: params,
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Logger:  logger,
		Tracer:  telemetry.Tracer("tui"),
		Context: ctx,
	})
	if runErr != nil {
		logger.Error("game exited with error", "error", runErr)
		return fmt.Errorf("failed to run game: %w", runErr)
	}
	return nil
}
