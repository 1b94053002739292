package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"nhooyr.io/websocket"

	"zigbee-go-zcl/internal/node"
	"zigbee-go-zcl/internal/zcl"
)

const wsWriteTimeout = 10 * time.Second

// eventView is the JSON form of a node event on /ws/events.
type eventView struct {
	Type     string   `json:"type"`
	Endpoint uint8    `json:"endpoint"`
	Cluster  string   `json:"cluster"`
	Args     zcl.Args `json:"args,omitempty"`
	Value    any      `json:"value,omitempty"`
	Source   uint16   `json:"source"`
	LQI      uint8    `json:"lqi"`
	Group    *uint16  `json:"group,omitempty"`
	Time     string   `json:"time"`
}

func newEventView(ev node.Event) eventView {
	return eventView{
		Type:     ev.Type,
		Endpoint: ev.Endpoint,
		Cluster:  ev.Cluster,
		Args:     ev.Args,
		Value:    ev.Value,
		Source:   ev.Meta.SourceAddr,
		LQI:      ev.Meta.LinkQuality,
		Group:    ev.Meta.GroupID,
		Time:     time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// WSHub fans node events out to WebSocket subscribers.
type WSHub struct {
	clients map[*wsClient]struct{}
	mu      sync.RWMutex
	logger  *slog.Logger

	register   chan *wsClient
	unregister chan *wsClient
	broadcast  chan eventView

	done     chan struct{}
	stopOnce sync.Once
}

// wsClient is one subscriber. A zero endpoint or empty cluster matches
// every event.
type wsClient struct {
	conn     *websocket.Conn
	send     chan []byte
	endpoint uint8
	cluster  string
}

func (c *wsClient) wants(ev eventView) bool {
	if c.endpoint != 0 && c.endpoint != ev.Endpoint {
		return false
	}
	return c.cluster == "" || c.cluster == ev.Cluster
}

// NewWSHub creates a new WebSocket hub.
func NewWSHub(logger *slog.Logger) *WSHub {
	return &WSHub{
		clients:    make(map[*wsClient]struct{}),
		logger:     logger,
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		broadcast:  make(chan eventView, 256),
		done:       make(chan struct{}),
	}
}

// Run starts the hub loop. It returns after Stop.
func (h *WSHub) Run() {
	for {
		select {
		case <-h.done:
			h.dropAll()
			return
		case c := <-h.register:
			h.add(c)
		case c := <-h.unregister:
			h.remove(c, "event subscriber disconnected")
		case ev := <-h.broadcast:
			h.deliver(ev)
		}
	}
}

func (h *WSHub) add(c *wsClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	h.logger.Debug("event subscriber connected", "endpoint", c.endpoint, "cluster", c.cluster, "total", n)
}

func (h *WSHub) remove(c *wsClient, msg string) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		h.drop(c)
	}
	n := len(h.clients)
	h.mu.Unlock()
	if ok {
		h.logger.Debug(msg, "total", n)
	}
}

func (h *WSHub) dropAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.drop(c)
	}
}

// drop must be called with mu held.
func (h *WSHub) drop(c *wsClient) {
	delete(h.clients, c)
	close(c.send)
}

func (h *WSHub) deliver(ev eventView) {
	var data []byte
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if !client.wants(ev) {
			continue
		}
		if data == nil {
			var err error
			if data, err = json.Marshal(ev); err != nil {
				h.logger.Error("marshal event", "type", ev.Type, "err", err)
				return
			}
		}
		select {
		case client.send <- data:
		default:
			h.drop(client)
			h.logger.Warn("event subscriber evicted (too slow)", "type", ev.Type)
		}
	}
}

// Stop shuts the hub down. Safe to call multiple times.
func (h *WSHub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
	})
}

// Broadcast queues an event for every matching subscriber. Events are
// dropped while the queue is full.
func (h *WSHub) Broadcast(ev eventView) {
	select {
	case h.broadcast <- ev:
	default:
		h.logger.Warn("event queue full, dropping", "type", ev.Type)
	}
}

// handleWS subscribes to node events. The optional endpoint and cluster
// query parameters narrow the feed.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	client := &wsClient{send: make(chan []byte, 64), cluster: r.URL.Query().Get("cluster")}
	if v := r.URL.Query().Get("endpoint"); v != "" {
		ep, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			http.Error(w, "invalid endpoint", http.StatusBadRequest)
			return
		}
		client.endpoint = uint8(ep)
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: s.allowedOrigins})
	if err != nil {
		s.logger.Error("ws accept", "err", err)
		return
	}
	conn.SetReadLimit(4096)
	client.conn = conn

	select {
	case s.wsHub.register <- client:
	case <-s.wsHub.done:
		conn.Close(websocket.StatusGoingAway, "server shutdown")
		return
	}

	// Subscribers never send. closed is done once the peer goes away.
	closed := conn.CloseRead(context.Background())
	go s.wsWritePump(client)

	select {
	case <-closed.Done():
		select {
		case s.wsHub.unregister <- client:
		case <-s.wsHub.done:
		}
	case <-s.wsHub.done:
		conn.Close(websocket.StatusGoingAway, "server shutdown")
	}
}

// wsWritePump forwards queued events until the hub closes the send channel.
func (s *Server) wsWritePump(client *wsClient) {
	for msg := range client.send {
		ctx, cancel := context.WithTimeout(context.Background(), wsWriteTimeout)
		err := client.conn.Write(ctx, websocket.MessageText, msg)
		cancel()
		if err != nil {
			return
		}
	}
	client.conn.Close(websocket.StatusNormalClosure, "")
}
