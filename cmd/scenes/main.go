// scenes is a terminal player for animated 3D scenes.
//
// Usage:
//
//	scenes list              - List available scenes
//	scenes play <scene>      - Play a scene
//	scenes menu              - Start menu to pick scenes interactively
//	scenes history [scene]   - Show recorded runs
//	scenes config <scene>    - Print the effective scene configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible scenes
//	--db <path>         - Set database path (default: ~/.scenes/history.db)
//	--log-file <path>   - Write logs to a file
//	--verbose           - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/tui-scenes/internal/scenes/mems"
	_ "github.com/vovakirdan/tui-scenes/internal/scenes/orbit"
	_ "github.com/vovakirdan/tui-scenes/internal/scenes/ufo"
	_ "github.com/vovakirdan/tui-scenes/internal/scenes/vacuum"
	_ "github.com/vovakirdan/tui-scenes/internal/scenes/xmas"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scenes",
	Short: "TUI Scenes - Animated 3D scenes in your terminal",
	Long: `TUI Scenes renders small animated 3D scenes directly in your terminal:
a MEMS ring array, an orbiting cone, a UFO, two vacuum chamber views and
a Christmas night.

Available commands:
  list     - Show all available scenes
  play     - Play a specific scene directly
  menu     - Interactive scene picker menu
  history  - View recorded runs
  config   - Print a scene's effective configuration

Examples:
  scenes list
  scenes play xmas
  scenes play mems --headless --ticks 300 --frame-every 30
  scenes menu
  scenes history vacuum
  scenes config ufo > ufo.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.scenes/history.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: ~/.scenes/scenes.log, stderr when headless)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
