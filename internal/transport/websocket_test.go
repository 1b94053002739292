package transport

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"zigbee-go-zcl/internal/node"
)

// wsPair connects a dialed WebSocket to one accepted by a test server.
func wsPair(t *testing.T) (dialed, accepted *WebSocket) {
	t.Helper()
	ready := make(chan *WebSocket, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := AcceptWebSocket(w, r, nil, testLogger())
		if err != nil {
			t.Error(err)
			return
		}
		ready <- ws
		<-ws.Done()
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	dialed, err := DialWebSocket(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	select {
	case accepted = <-ready:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not accept")
	}
	t.Cleanup(func() {
		dialed.Close()
		accepted.Close()
	})
	return dialed, accepted
}

func TestWebSocketDelivers(t *testing.T) {
	dialed, accepted := wsPair(t)
	rec := newRecorder()
	accepted.Start(rec)
	dialed.Start(nil)

	if err := dialed.SendFrame(context.Background(), 4, 0x0402, []byte{0x18, 0x02, 0x0A, 0x00, 0x00, 0x29, 0x10, 0x09}); err != nil {
		t.Fatal(err)
	}
	env := rec.next(t)
	if env.Endpoint != 4 || env.ClusterID != 0x0402 || !bytes.Equal(env.Frame, []byte{0x18, 0x02, 0x0A, 0x00, 0x00, 0x29, 0x10, 0x09}) {
		t.Fatalf("got %+v", env)
	}
}

func TestWebSocketNodes(t *testing.T) {
	dialed, accepted := wsPair(t)
	client, server := startPair(t, dialed, accepted)
	exerciseToggle(t, client, server)
}

func TestWebSocketSendAfterClose(t *testing.T) {
	dialed, accepted := wsPair(t)
	accepted.Start(nil)
	dialed.Start(nil)
	dialed.Close()
	if err := dialed.SendFrame(context.Background(), 1, 6, []byte{0}); err != ErrClosed {
		t.Fatalf("err = %v", err)
	}
	select {
	case <-accepted.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("peer did not see the close")
	}
}

func dialServer(t *testing.T, srv *httptest.Server) *WebSocket {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	ws, err := DialWebSocket(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func waitConnected(t *testing.T, s *WebSocketServer, want bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for s.Connected() != want {
		if time.Now().After(deadline) {
			t.Fatalf("connected = %v, want %v", !want, want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWebSocketServerRefusesBeforeStart(t *testing.T) {
	s := NewWebSocketServer(nil, testLogger())
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if err := s.SendFrame(context.Background(), 1, 6, []byte{0}); err != ErrNotConnected {
		t.Fatalf("err = %v", err)
	}
}

func TestWebSocketServerNodes(t *testing.T) {
	s := NewWebSocketServer(nil, testLogger())
	srv := httptest.NewServer(s)
	t.Cleanup(func() {
		s.Close()
		srv.Close()
	})

	// The server must be started before a peer can connect.
	cat := testCatalog(t)
	eps := []node.EndpointDescriptor{{ID: 1, InputClusters: []uint16{0x0000, 0x0006}}}
	server := node.New(s, cat, eps, testLogger())
	s.Start(server)
	peer := dialServer(t, srv)
	client := node.New(peer, cat, eps, testLogger())
	peer.Start(client)
	waitConnected(t, s, true)
	exerciseToggle(t, client, server)
}

func TestWebSocketServerReplacesPeer(t *testing.T) {
	s := NewWebSocketServer(nil, testLogger())
	srv := httptest.NewServer(s)
	t.Cleanup(func() {
		s.Close()
		srv.Close()
	})
	s.Start(newRecorder())

	first := dialServer(t, srv)
	first.Start(nil)
	waitConnected(t, s, true)

	second := dialServer(t, srv)
	rec := newRecorder()
	second.Start(rec)
	select {
	case <-first.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("first peer not dropped")
	}

	if err := s.SendFrame(context.Background(), 2, 0x0006, []byte{0x01, 0x07, 0x02}); err != nil {
		t.Fatal(err)
	}
	if env := rec.next(t); env.Endpoint != 2 || env.ClusterID != 0x0006 {
		t.Fatalf("got %+v", env)
	}

	second.Close()
	waitConnected(t, s, false)
}

func TestWebSocketServerClose(t *testing.T) {
	s := NewWebSocketServer(nil, testLogger())
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)
	s.Start(newRecorder())

	peer := dialServer(t, srv)
	peer.Start(nil)
	waitConnected(t, s, true)
	s.Close()
	select {
	case <-peer.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("peer not disconnected")
	}
	if err := s.SendFrame(context.Background(), 1, 6, []byte{0}); err != ErrClosed {
		t.Fatalf("err = %v", err)
	}
}
