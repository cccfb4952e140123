package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// MaxTopN caps the limit accepted by the top-list endpoint.
const MaxTopN = 100

// Routes served by Server.
const (
	PathLeaderboard = "/api/leaderboard"
	PathLive        = "/api/leaderboard/live"
)

// ServerConfig holds configuration for the leaderboard HTTP server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// DBPath is the path to the scores database.
	DBPath string

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:         ":8080",
		DBPath:          "~/.jumper/board.db",
		ShutdownTimeout: 5 * time.Second,
	}
}

// Server is the HTTP leaderboard service the Remote board talks to.
type Server struct {
	config   ServerConfig
	store    *storage.Store
	hub      *Hub
	logger   *log.Logger
	upgrader websocket.Upgrader
	now      func() time.Time
}

// NewServer creates a server over an open store.
func NewServer(cfg ServerConfig, store *storage.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		config: cfg,
		store:  store,
		hub:    NewHub(logger),
		logger: logger,
		upgrader: websocket.Upgrader{
			// Scoreboards are public; any page may subscribe.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		now: time.Now,
	}
}

// Hub returns the live feed hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+PathLeaderboard, s.handleSubmit)
	mux.HandleFunc("GET "+PathLeaderboard, s.handleTop)
	mux.HandleFunc("GET "+PathLive, s.handleLive)
	return mux
}

// Start listens on the configured address and serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("leaderboard: listen %s: %w", s.config.Address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting leaderboard server", "address", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("leaderboard: serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Stopping leaderboard server")
	s.hub.Close()

	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("leaderboard: shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var e Entry
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<12)).Decode(&e); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := e.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := s.store.SaveScore(GameID, e.PlayerName, e.Score); err != nil {
		s.logger.Error("could not save score", "error", err)
		writeError(w, http.StatusInternalServerError, "could not save score")
		return
	}
	e.CreatedAt = s.now().UTC().Truncate(time.Second)
	s.logger.Info("score submitted", "player", e.PlayerName, "score", e.Score, "remote", r.RemoteAddr)

	writeJSON(w, http.StatusCreated, e)

	if top, err := s.top(DefaultTopN); err == nil {
		s.hub.Broadcast(top)
	} else {
		s.logger.Error("could not read top scores", "error", err)
	}
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	limit := DefaultTopN
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, MaxTopN)
	}

	top, err := s.top(limit)
	if err != nil {
		s.logger.Error("could not read top scores", "error", err)
		writeError(w, http.StatusInternalServerError, "could not read scores")
		return
	}
	writeJSON(w, http.StatusOK, top)
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	sub := s.hub.add(conn)
	s.logger.Debug("live subscriber connected", "remote", r.RemoteAddr, "subscribers", s.hub.Len())

	top, err := s.top(DefaultTopN)
	if err != nil {
		s.logger.Error("could not read top scores", "error", err)
		top = []Entry{}
	}
	if err := sub.writeJSON(LiveMessage{Type: "top", Entries: top}); err != nil {
		s.hub.remove(sub)
		return
	}

	s.hub.serve(sub)
}

// top reads the best n scores. The result is never nil so it encodes as [].
func (s *Server) top(n int) ([]Entry, error) {
	rows, err := s.store.TopScores(GameID, n)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, len(rows))
	for i, r := range rows {
		entries[i] = Entry{PlayerName: r.PlayerName, Score: r.Score, CreatedAt: r.CreatedAt}
	}
	return entries, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
