package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gravity-worm/internal/config"
	"github.com/vovakirdan/gravity-worm/internal/core"
	"github.com/vovakirdan/gravity-worm/internal/games/worm"
	"github.com/vovakirdan/gravity-worm/internal/platform/tcellui"
	"github.com/vovakirdan/gravity-worm/internal/platform/tui"
)

// Terminal drivers
const (
	backendTea   = "tea"
	backendTcell = "tcell"
)

var (
	flagConfig  string
	flagSpeed   string
	flagTickMS  int
	flagBackend string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Gravity Worm",
	Long: `Start a game in the current terminal. The cave is sized to the
terminal; resizing starts a new run.

Controls:
  Space        - Worm goes up
  Any key      - Worm goes down
  R            - Play again (after game over)
  Enter        - Finish and show results (after game over)
  Esc/Ctrl+C   - Quit

Speed options:
  slow   - 150ms per tick
  normal - 100ms per tick
  fast   - 60ms per tick

Examples:
  worm play
  worm play --speed fast
  worm play --tick 80
  worm play --backend tcell
  worm play --config ./my-worm.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast")
	playCmd.Flags().IntVar(&flagTickMS, "tick", 0, "Tick period in milliseconds (overrides config and speed)")
	playCmd.Flags().StringVar(&flagBackend, "backend", backendTea, "Terminal driver: tea or tcell")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	interval := cfg.TickInterval()
	if flagTickMS > 0 {
		interval = time.Duration(flagTickMS) * time.Millisecond
	}

	logger, closeLog, err := openLogger(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game := worm.NewWithConfig(cfg)

	switch flagBackend {
	case backendTea:
		err = playTea(game, interval, logger)
	case backendTcell:
		err = playTcell(game, interval, logger)
	default:
		err = fmt.Errorf("unknown backend %q (want %s or %s)", flagBackend, backendTea, backendTcell)
	}

	//nolint:errcheck // Best-effort close, nothing left to log to
	closeLog()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the config from --config and --speed.
func loadConfig() (config.WormConfig, error) {
	preset, err := config.ParseSpeedPreset(flagSpeed)
	if err != nil {
		return config.WormConfig{}, err
	}

	worm.SetConfigPath(flagConfig)
	worm.SetSpeedPreset(preset)
	return worm.LoadConfig()
}

func playTea(game *worm.Game, interval time.Duration, logger *log.Logger) error {
	// Get terminal size; the first resize message corrects it if it is off
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: interval,
	}
	return tui.Run(game, cfg, logger)
}

func playTcell(game *worm.Game, interval time.Duration, logger *log.Logger) error {
	screen, err := tcellui.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver := tcellui.NewDriver(screen, game, interval, logger)
	if err := driver.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
