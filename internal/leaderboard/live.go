package leaderboard

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
)

// LiveURL derives the websocket feed address from a leaderboard base URL,
// e.g. http://host:8080/api/leaderboard -> ws://host:8080/api/leaderboard/live.
func LiveURL(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("leaderboard: parse url: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("leaderboard: unsupported scheme %q", u.Scheme)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/live"
	u.RawQuery = ""
	return u.String(), nil
}

// Watch subscribes to the live feed at liveURL and calls fn with every top
// list received. It returns when ctx is done or the connection fails.
func Watch(ctx context.Context, liveURL string, fn func([]Entry)) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, liveURL, nil)
	if err != nil {
		return fmt.Errorf("leaderboard: dial live feed: %w", err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()

	for {
		var msg LiveMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("leaderboard: read live feed: %w", err)
		}
		if msg.Type == "top" {
			fn(msg.Entries)
		}
	}
}
