package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gravity-worm/internal/config"
	"github.com/vovakirdan/gravity-worm/internal/core"
	"github.com/vovakirdan/gravity-worm/internal/games/worm"
)

var (
	flagSimHeight int
	flagSimWidth  int
	flagSimTicks  int
	flagSimKeys   string
	flagSimFrame  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal and print the final state as YAML.

Each character of --keys is the key pressed on one tick; '.' means no key.
The pattern repeats. The run stops at game over or after --ticks ticks.
The built-in default config is used, so output is reproducible.

Examples:
  worm sim
  worm sim --keys " " --ticks 10
  worm sim --height 40 --width 100 --keys "  ...." --frame`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Field height in rows")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Field width in columns")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 200, "Maximum number of ticks")
	simCmd.Flags().StringVar(&flagSimKeys, "keys", "", "Key pattern, one character per tick")
	simCmd.Flags().BoolVar(&flagSimFrame, "frame", false, "Also print the final frame")
}

func runSim(cmd *cobra.Command, args []string) {
	logger, closeLog, err := openLogger(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Best-effort close
	defer closeLog()

	game := worm.NewWithConfig(config.DefaultWormConfig())
	snap, err := worm.Simulate(game, flagSimHeight, flagSimWidth, flagSimTicks, worm.KeyPattern(flagSimKeys))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("simulation finished", "ticks", snap.Tick, "score", snap.Score, "state", snap.State)

	out, err := yaml.Marshal(snap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))

	if flagSimFrame {
		screen := core.NewScreen(flagSimWidth, flagSimHeight)
		game.Render(screen)
		fmt.Println()
		fmt.Println(screen.String())
	}
}
