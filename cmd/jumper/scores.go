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

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/leaderboard"
)

var (
	flagScoresLimit int
	flagWatch       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores.

Scores come from the leaderboard service when one is configured and
reachable, and from the local database otherwise. With --watch the
command follows the service's live feed and reprints the table on
every new score.

Examples:
  jumper scores
  jumper scores --limit 5
  jumper scores --offline
  jumper scores --watch`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 0, "Number of entries to show (default: leaderboard.top_n)")
	scoresCmd.Flags().BoolVar(&flagOffline, "offline", false, "Read the local database only")
	scoresCmd.Flags().BoolVar(&flagWatch, "watch", false, "Follow the leaderboard service's live feed")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	limit := flagScoresLimit
	if limit <= 0 {
		limit = cfg.Leaderboard.TopN
	}

	if flagWatch {
		watchScores(cfg.Leaderboard.URL)
		return
	}

	logger := serverLogger("jumper")
	logger.SetLevel(log.WarnLevel)
	board, local := leaderboard.New(cfg.Leaderboard, flagDBPath, flagOffline, logger)
	defer local.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Leaderboard.Timeout+time.Second)
	defer cancel()

	entries, err := board.Top(ctx, limit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	source := "local"
	if board.Remote() {
		source = cfg.Leaderboard.URL
	}
	fmt.Printf("High Scores - Sky Jumper (%s)\n", source)
	fmt.Println()
	printScores(entries)

	if store := local.Store(); store != nil {
		stats, err := store.GetGameStats(leaderboard.GameID)
		if err == nil && stats.GamesCount > 0 {
			fmt.Println()
			fmt.Printf("Local: %d games by %d players, best %d, average %.1f, last played %s\n",
				stats.GamesCount, stats.Players, stats.HighScore, stats.AvgScore,
				stats.LastPlayed.Local().Format("2006-01-02 15:04"))
		}
	}
}

// watchScores follows the live feed until interrupted.
func watchScores(baseURL string) {
	if baseURL == "" {
		fail("--watch needs a leaderboard service (set %s or leaderboard.url)", config.EnvLeaderboardURL)
	}
	liveURL, err := leaderboard.LiveURL(baseURL)
	if err != nil {
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching %s (Ctrl+C to stop)\n", liveURL)
	err = leaderboard.Watch(ctx, liveURL, func(entries []leaderboard.Entry) {
		fmt.Println()
		fmt.Printf("High Scores - %s\n", time.Now().Format("15:04:05"))
		fmt.Println()
		printScores(entries)
	})
	if err != nil {
		fail("%v", err)
	}
}

func printScores(entries []leaderboard.Entry) {
	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'jumper play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-*s  %-8s  %s\n", "Rank", leaderboard.MaxNameLength, "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-*s  %-8s  %s\n", "----", leaderboard.MaxNameLength, "------", "-----", "----")

	for i, e := range entries {
		date := "-"
		if !e.CreatedAt.IsZero() {
			date = e.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-4d  %-*s  %-8d  %s\n", i+1, leaderboard.MaxNameLength, e.PlayerName, e.Score, date)
	}
}
