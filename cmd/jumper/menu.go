package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/leaderboard"
	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the main menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, press B or Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  jumper menu
  jumper menu --fps 60
  jumper menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := tuiLogger("jumper")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	board, local := leaderboard.New(cfg.Leaderboard, flagDBPath, flagOffline, logger)
	defer local.Close()

	if err := tui.RunSession(leaderboard.GameID, board, sessionOptions(cfg)); err != nil {
		fail("%v", err)
	}
}
