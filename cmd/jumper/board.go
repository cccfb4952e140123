package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/leaderboard"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var (
	flagBoardAddr string
	flagBoardDB   string
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Run the HTTP leaderboard service",
	Long: `Run the leaderboard service that games submit scores to.

Endpoints:
  POST /api/leaderboard        - Submit {"playerName": "...", "score": N}
  GET  /api/leaderboard?limit= - Top scores, best first
  GET  /api/leaderboard/live   - Websocket feed of the top list

Point players at it with:
  JUMPER_LEADERBOARD_URL=http://host:8080/api/leaderboard jumper play

Examples:
  jumper board
  jumper board --addr :9000 --board-db ./board.db`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func init() {
	defaults := leaderboard.DefaultServerConfig()
	boardCmd.Flags().StringVar(&flagBoardAddr, "addr", defaults.Address, "HTTP listen address (host:port)")
	boardCmd.Flags().StringVar(&flagBoardDB, "board-db", defaults.DBPath, "Path to the service's scores database")
}

func runBoard(_ *cobra.Command, _ []string) {
	logger := serverLogger("jumper-board")

	cfg := leaderboard.DefaultServerConfig()
	cfg.Address = flagBoardAddr
	cfg.DBPath = flagBoardDB

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Leaderboard service listening on %s%s\n", cfg.Address, leaderboard.PathLeaderboard)
	fmt.Println("Press Ctrl+C to stop")

	if err := leaderboard.NewServer(cfg, store, logger).Start(ctx); err != nil {
		logger.Error("server stopped", "error", err)
		store.Close()
		os.Exit(1)
	}
}
