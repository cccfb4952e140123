package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/leaderboard"
	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing straight away.

Controls:
  Left/A/H   - Move left (while held)
  Right/D/L  - Move right (while held)
  P          - Pause
  R          - Restart (after game over)
  S/Tab      - Leaderboard (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at normal scroll speed, speeds up with height
  normal - Start at 30% difficulty, speeds up with height
  hard   - Start at 70% difficulty, speeds up with height
  fixed  - No progression, classic constant scroll speed

The score is submitted to the leaderboard service at
$JUMPER_LEADERBOARD_URL (or leaderboard.url in the config) and saved to
the local database when the service cannot be reached.

Examples:
  jumper play
  jumper play --name ann
  jumper play --difficulty hard
  jumper play --offline
  jumper play --config ./my-jumper.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by play and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagName, "name", "", "Player name for the leaderboard")
	cmd.Flags().BoolVar(&flagOffline, "offline", false, "Keep scores in the local database only")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	game, err := registry.Create(leaderboard.GameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	logger, closeLog, err := tuiLogger("jumper")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	board, local := leaderboard.New(cfg.Leaderboard, flagDBPath, flagOffline, logger)
	defer local.Close()

	if err := tui.Run(game, board, sessionOptions(cfg)); err != nil {
		fail("running game: %v", err)
	}
}
