package leaderboard

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 25 * time.Second
)

// LiveMessage is what the live feed pushes to subscribers.
type LiveMessage struct {
	Type    string  `json:"type"` // Always "top"
	Entries []Entry `json:"entries"`
}

// Hub fans top-list updates out to websocket subscribers.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
	logger      *log.Logger
}

type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// writeJSON sends one message guarded by the subscriber's mutex and write deadline.
func (s *subscriber) writeJSON(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteJSON(v)
}

func (s *subscriber) ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// NewHub creates an empty hub.
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		subscribers: make(map[*subscriber]struct{}),
		logger:      logger,
	}
}

func (h *Hub) add(conn *websocket.Conn) *subscriber {
	sub := &subscriber{conn: conn}
	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *Hub) remove(sub *subscriber) {
	h.mu.Lock()
	_, ok := h.subscribers[sub]
	delete(h.subscribers, sub)
	h.mu.Unlock()
	if ok {
		sub.conn.Close()
	}
}

// Len returns the number of connected subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Broadcast pushes the top list to every subscriber. Subscribers that
// cannot be written to are dropped.
func (h *Hub) Broadcast(entries []Entry) {
	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subscribers))
	for sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	msg := LiveMessage{Type: "top", Entries: entries}
	for _, sub := range subs {
		if err := sub.writeJSON(msg); err != nil {
			h.logger.Debug("dropping live subscriber", "error", err)
			h.remove(sub)
		}
	}
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	subs := h.subscribers
	h.subscribers = make(map[*subscriber]struct{})
	h.mu.Unlock()

	for sub := range subs {
		sub.mu.Lock()
		_ = sub.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		sub.mu.Unlock()
		sub.conn.Close()
	}
}

// serve keeps a subscriber alive until its connection fails: pings on a
// timer, pongs extend the read deadline, incoming messages are discarded.
func (h *Hub) serve(sub *subscriber) {
	defer h.remove(sub)

	conn := sub.conn
	conn.SetReadLimit(1 << 10)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := sub.ping(); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
