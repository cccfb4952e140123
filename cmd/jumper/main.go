// jumper is an endless platform jumper for the terminal.
//
// Usage:
//
//	jumper play              - Play a game
//	jumper menu              - Start the menu (play, high scores, quit)
//	jumper list              - List available games
//	jumper scores            - Show the leaderboard
//	jumper serve             - Start SSH server for remote play
//	jumper board             - Run the HTTP leaderboard service
//	jumper config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 100)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set local scores database (default: ~/.jumper/scores.db)
//	--log <path>    - Write logs to a file while the TUI is running
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-jumper/internal/games/jumper"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Sky Jumper - an endless platform jumper in your terminal",
	Long: `Sky Jumper is an endless vertical platform jumper for the terminal.

Bounce from platform to platform, steer left and right, and do not fall
off the bottom. Every platform you land on for the first time scores a point.

Available commands:
  play     - Play directly
  menu     - Menu with play and high scores
  list     - Show available games
  scores   - View the leaderboard
  serve    - Start SSH server for remote play
  board    - Run the HTTP leaderboard service
  config   - Print the default configuration

Examples:
  jumper play --name ann
  jumper menu
  jumper scores --limit 5
  jumper serve --ssh :2222
  jumper board --addr :8080`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 100, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jumper/scores.db", "Path to local scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (TUI commands log nowhere by default)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}
