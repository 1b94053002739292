// Package web serves the node's HTTP control API: endpoint and binding
// inspection, client commands towards the peer, script management, a
// WebSocket feed of node events and, optionally, the WebSocket frame link.
package web

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"zigbee-go-zcl/internal/node"
	"zigbee-go-zcl/internal/script"
	"zigbee-go-zcl/internal/transport"
)

// requestTimeout bounds client operations started from the API.
const requestTimeout = 30 * time.Second

// ServerOption configures the web server.
type ServerOption func(*Server)

// WithAPIKey enables API key authentication.
func WithAPIKey(key string) ServerOption {
	return func(s *Server) {
		s.apiKey = key
	}
}

// WithAllowedOrigins sets allowed cross-origin and WebSocket origin patterns.
func WithAllowedOrigins(origins []string) ServerOption {
	return func(s *Server) {
		s.allowedOrigins = origins
	}
}

// WithScripts enables the script endpoints.
func WithScripts(engine *script.Engine, mgr *script.Manager) ServerOption {
	return func(s *Server) {
		s.scripts = engine
		s.scriptMgr = mgr
	}
}

// WithFrameLink serves the node's WebSocket frame link at /ws/frames.
func WithFrameLink(link *transport.WebSocketServer) ServerOption {
	return func(s *Server) {
		s.frameLink = link
	}
}

// WithVersion sets the version reported by /api/version.
func WithVersion(v string) ServerOption {
	return func(s *Server) {
		s.version = v
	}
}

// Server is the HTTP control API of a node.
type Server struct {
	node           *node.Node
	wsHub          *WSHub
	logger         *slog.Logger
	mux            *http.ServeMux
	apiKey         string
	allowedOrigins []string
	scriptMgr      *script.Manager
	scripts        *script.Engine
	frameLink      *transport.WebSocketServer
	version        string
	wg             sync.WaitGroup
	unsubEvents    func()
}

// NewServer creates the API server and starts broadcasting node events.
func NewServer(n *node.Node, logger *slog.Logger, opts ...ServerOption) *Server {
	s := &Server{
		node:   n,
		logger: logger.With("component", "web"),
		mux:    http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.wsHub = NewWSHub(s.logger)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.wsHub.Run()
	}()

	s.unsubEvents = n.Events().OnAll(func(ev node.Event) {
		s.wsHub.Broadcast(newEventView(ev))
	})

	s.routes()
	return s
}

// Stop shuts down the event hub and waits for its goroutine.
func (s *Server) Stop() {
	if s.unsubEvents != nil {
		s.unsubEvents()
	}
	s.wsHub.Stop()
	s.wg.Wait()
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /api/version", s.handleAPIVersion)
	s.mux.HandleFunc("GET /api/clusters", s.handleAPIListClusters)
	s.mux.HandleFunc("GET /api/endpoints", s.handleAPIListEndpoints)
	s.mux.HandleFunc("GET /api/endpoints/{ep}/bindings/{cluster}", s.handleAPIGetBinding)
	s.mux.HandleFunc("POST /api/endpoints/{ep}/clusters/{cluster}/read", s.handleAPIReadAttributes)
	s.mux.HandleFunc("POST /api/endpoints/{ep}/clusters/{cluster}/write", s.handleAPIWriteAttributes)
	s.mux.HandleFunc("POST /api/endpoints/{ep}/clusters/{cluster}/command", s.handleAPISendCommand)

	s.mux.HandleFunc("GET /api/scripts", s.handleAPIListScripts)
	s.mux.HandleFunc("GET /api/scripts/{id}", s.handleAPIGetScript)
	s.mux.HandleFunc("PUT /api/scripts/{id}", s.handleAPISaveScript)
	s.mux.HandleFunc("DELETE /api/scripts/{id}", s.handleAPIDeleteScript)
	s.mux.HandleFunc("POST /api/scripts/run", s.handleAPIRunScript)
	s.mux.HandleFunc("PUT /api/endpoints/{ep}/bindings/{cluster}/script", s.handleAPIAttachScript)
	s.mux.HandleFunc("DELETE /api/endpoints/{ep}/bindings/{cluster}/script", s.handleAPIDetachScript)

	s.mux.HandleFunc("GET /ws/events", s.handleWS)
	if s.frameLink != nil {
		s.mux.Handle("GET /ws/frames", s.frameLink)
	}
}

// ServeHTTP implements http.Handler, applying the origin and API key
// checks before routing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.checkOrigin(w, r) {
		return
	}
	// Browsers cannot set headers on WebSocket upgrades, so only /api/ is
	// key protected.
	if strings.HasPrefix(r.URL.Path, "/api/") && !s.authorized(r) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	s.mux.ServeHTTP(w, r)
}

// checkOrigin answers CORS preflights and rejects cross-origin mutations
// from origins that are not allowed. It reports whether routing continues.
func (s *Server) checkOrigin(w http.ResponseWriter, r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if len(s.allowedOrigins) == 0 || origin == "" || r.Method == http.MethodGet {
		return true
	}
	if !s.originAllowed(origin) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return false
	}
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", origin)
	if r.Method != http.MethodOptions {
		return true
	}
	h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key")
	h.Set("Access-Control-Max-Age", "3600")
	w.WriteHeader(http.StatusNoContent)
	return false
}

func (s *Server) originAllowed(origin string) bool {
	return slices.Contains(s.allowedOrigins, "*") || slices.Contains(s.allowedOrigins, origin)
}

func (s *Server) authorized(r *http.Request) bool {
	if s.apiKey == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(r.Header.Get("X-API-Key")), []byte(s.apiKey)) == 1
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write json", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleAPIVersion(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}
