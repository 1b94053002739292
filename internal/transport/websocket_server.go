package transport

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
)

// WebSocketServer is the accepting side of a WebSocket link. It serves
// peers over HTTP; frames go to the most recently connected one.
type WebSocketServer struct {
	origins []string
	logger  *slog.Logger

	mu      sync.Mutex
	handler Handler
	conn    *WebSocket
	closed  bool
}

// NewWebSocketServer creates a server accepting peers whose origin
// matches originPatterns (same-origin only when empty).
func NewWebSocketServer(originPatterns []string, logger *slog.Logger) *WebSocketServer {
	return &WebSocketServer{
		origins: originPatterns,
		logger:  logger.With("component", "websocket-server"),
	}
}

// Start delivers frames from connected peers to h. Peers are refused
// until it is called.
func (s *WebSocketServer) Start(h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = h
}

// ServeHTTP upgrades the request and serves the peer until it leaves. A
// new peer replaces the previous one.
func (s *WebSocketServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	ready := s.handler != nil && !s.closed
	s.mu.Unlock()
	if !ready {
		http.Error(w, "link not ready", http.StatusServiceUnavailable)
		return
	}

	ws, err := AcceptWebSocket(w, r, s.origins, s.logger)
	if err != nil {
		s.logger.Warn("accept peer", "err", err)
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		ws.Close()
		return
	}
	prev := s.conn
	s.conn = ws
	ws.Start(s.handler)
	s.mu.Unlock()

	if prev != nil {
		s.logger.Info("peer replaced", "remote", r.RemoteAddr)
		prev.Close()
	} else {
		s.logger.Info("peer connected", "remote", r.RemoteAddr)
	}

	<-ws.Done()

	s.mu.Lock()
	if s.conn == ws {
		s.conn = nil
	}
	s.mu.Unlock()
	ws.Close()
	s.logger.Info("peer disconnected", "remote", r.RemoteAddr)
}

// Connected reports whether a peer is connected.
func (s *WebSocketServer) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn != nil
}

// SendFrame sends to the connected peer.
func (s *WebSocketServer) SendFrame(ctx context.Context, endpoint uint8, clusterID uint16, frame []byte) error {
	s.mu.Lock()
	conn, closed := s.conn, s.closed
	s.mu.Unlock()
	if closed {
		return ErrClosed
	}
	if conn == nil {
		return ErrNotConnected
	}
	return conn.SendFrame(ctx, endpoint, clusterID, frame)
}

// Close disconnects the peer and refuses new ones.
func (s *WebSocketServer) Close() error {
	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.closed = true
	s.mu.Unlock()
	if conn != nil {
		return conn.Close()
	}
	return nil
}
