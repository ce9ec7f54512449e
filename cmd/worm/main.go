// worm is Gravity Worm for the terminal: steer a worm through a drifting
// cave for as long as it survives.
//
// Usage:
//
//	worm play      - Play in the terminal
//	worm sim       - Run a headless, deterministic simulation
//	worm config    - Print the effective config as YAML
//	worm list      - List available games
//
// Global flags:
//
//	--log <path>   - Append logs to a file (default: no logging)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "worm",
	Short: "Gravity Worm - keep the worm inside the cave",
	Long: `Gravity Worm scrolls a cave across your terminal. The worm keeps
moving up or down; press space to send it up and any other key to send
it down. Touching the ceiling or the floor ends the run.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless simulation
  config   - Print the effective config
  list     - Show all available games

Examples:
  worm play
  worm play --speed fast --backend tcell
  worm sim --ticks 500 --keys " ..." --frame
  worm config --config ./my-worm.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

// openLogger returns a logger writing to path, or a discarding logger when
// path is empty. The returned closer releases the log file.
func openLogger(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}

	path = expandHome(path)
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "worm",
	})
	return logger, f.Close, nil
}

// expandHome replaces a leading ~/ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
