// Package realtime keeps the WebSocket connections of staff clients and pushes JSON frames to them.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"cakes/internal/domain/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/fx"
)

const (
	pingPeriod     = 30 * time.Second
	pongWait       = pingPeriod + 10*time.Second
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
	sendBuffer     = 32
)

// Hub is the registry of live connections keyed by channel and user.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*client]struct{}
	logger  *slog.Logger
}

type client struct {
	hub     *Hub
	conn    *websocket.Conn
	channel string
	userID  uuid.UUID
	send    chan []byte
	done    chan struct{}
	once    sync.Once
}

// NewHub creates an empty hub and closes every connection when the app stops.
func NewHub(lc fx.Lifecycle, logger *slog.Logger) *Hub {
	hub := newHub(logger)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			hub.Close()

			return nil
		},
	})

	return hub
}

func newHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]map[*client]struct{}),
		logger:  logger,
	}
}

// NewBroadcaster exposes the hub as a service.RealtimeBroadcaster.
func NewBroadcaster(hub *Hub) service.RealtimeBroadcaster {
	return hub
}

// Attach registers an upgraded connection and starts its pumps. It returns immediately.
func (h *Hub) Attach(conn *websocket.Conn, channel string, userID uuid.UUID) {
	c := &client{
		hub:     h,
		conn:    conn,
		channel: channel,
		userID:  userID,
		send:    make(chan []byte, sendBuffer),
		done:    make(chan struct{}),
	}

	h.mu.Lock()
	if h.clients[channel] == nil {
		h.clients[channel] = make(map[*client]struct{})
	}
	h.clients[channel][c] = struct{}{}
	h.mu.Unlock()

	h.logger.Info("WebSocket client connected",
		slog.String("channel", channel),
		slog.String("user_id", userID.String()),
	)

	go c.writePump()
	go c.readPump()
}

// Broadcast sends msg to every connection on channel.
func (h *Hub) Broadcast(channel string, msg *service.RealtimeMessage) {
	h.deliver(channel, msg, func(*client) bool { return true })
}

// SendToUser sends msg to the connections userID holds on channel.
func (h *Hub) SendToUser(channel string, userID uuid.UUID, msg *service.RealtimeMessage) {
	h.deliver(channel, msg, func(c *client) bool { return c.userID == userID })
}

// ConnectionCount returns the number of live connections on channel.
func (h *Hub) ConnectionCount(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[channel])
}

// Close drops every connection.
func (h *Hub) Close() {
	h.mu.Lock()
	all := make([]*client, 0)
	for _, set := range h.clients {
		for c := range set {
			all = append(all, c)
		}
	}
	h.clients = make(map[string]map[*client]struct{})
	h.mu.Unlock()

	for _, c := range all {
		c.close()
	}
}

func (h *Hub) deliver(channel string, msg *service.RealtimeMessage, match func(*client) bool) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("Failed to marshal realtime message",
			slog.String("type", msg.Type),
			slog.Any("error", err),
		)

		return
	}

	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients[channel]))
	for c := range h.clients[channel] {
		if match(c) {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range targets {
		select {
		case c.send <- data:
		case <-c.done:
		default:
			// A client that cannot keep up is treated as dead.
			h.unregister(c)
		}
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if set, ok := h.clients[c.channel]; ok {
		if _, ok := set[c]; ok {
			delete(set, c)
			if len(set) == 0 {
				delete(h.clients, c.channel)
			}
		}
	}
	h.mu.Unlock()

	c.close()
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.done)
		_ = c.conn.Close()

		c.hub.logger.Info("WebSocket client disconnected",
			slog.String("channel", c.channel),
			slog.String("user_id", c.userID.String()),
		)
	})
}

// readPump discards inbound frames; it exists to process pongs and notice closed connections.
func (c *client) readPump() {
	defer c.hub.unregister(c)

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.hub.unregister(c)
	}()

	for {
		select {
		case <-c.done:
			return
		case data := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
