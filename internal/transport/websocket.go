package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"nhooyr.io/websocket"
)

const wsWriteTimeout = 10 * time.Second

// WebSocket carries one envelope per binary message.
type WebSocket struct {
	conn   *websocket.Conn
	logger *slog.Logger

	handler Handler
	writeMu sync.Mutex

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// DialWebSocket connects to a peer listening at url.
func DialWebSocket(ctx context.Context, url string, logger *slog.Logger) (*WebSocket, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket dial %s: %w", url, err)
	}
	return NewWebSocket(conn, logger.With("url", url)), nil
}

// AcceptWebSocket upgrades an HTTP request from a peer.
func AcceptWebSocket(w http.ResponseWriter, r *http.Request, originPatterns []string, logger *slog.Logger) (*WebSocket, error) {
	opts := &websocket.AcceptOptions{}
	if len(originPatterns) > 0 {
		opts.OriginPatterns = originPatterns
	}
	conn, err := websocket.Accept(w, r, opts)
	if err != nil {
		return nil, fmt.Errorf("websocket accept: %w", err)
	}
	return NewWebSocket(conn, logger.With("remote", r.RemoteAddr)), nil
}

// NewWebSocket wraps an established connection.
func NewWebSocket(conn *websocket.Conn, logger *slog.Logger) *WebSocket {
	conn.SetReadLimit(linkMaxSize)
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocket{
		conn:   conn,
		logger: logger.With("component", "websocket"),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start runs the read pump, delivering inbound frames to h until the
// connection ends or Close is called.
func (ws *WebSocket) Start(h Handler) {
	ws.handler = h
	ws.wg.Add(1)
	go ws.readPump()
}

// Done is closed when the connection has ended.
func (ws *WebSocket) Done() <-chan struct{} { return ws.ctx.Done() }

func (ws *WebSocket) readPump() {
	defer ws.wg.Done()
	defer ws.cancel()
	for {
		typ, data, err := ws.conn.Read(ws.ctx)
		if err != nil {
			if ws.ctx.Err() == nil && websocket.CloseStatus(err) != websocket.StatusNormalClosure {
				ws.logger.Warn("websocket read", "err", err)
			}
			return
		}
		if typ != websocket.MessageBinary {
			ws.logger.Debug("non-binary message ignored")
			continue
		}
		var env Envelope
		if err := env.UnmarshalBinary(data); err != nil {
			ws.logger.Warn("envelope dropped", "err", err)
			continue
		}
		// Handlers may send, which only needs the write lock.
		deliver(ws.ctx, ws.handler, ws.logger, &env)
	}
}

// SendFrame writes one frame as a binary message.
func (ws *WebSocket) SendFrame(ctx context.Context, endpoint uint8, clusterID uint16, frame []byte) error {
	if ws.ctx.Err() != nil {
		return ErrClosed
	}
	env := Envelope{Endpoint: endpoint, ClusterID: clusterID, Frame: frame}
	data, _ := env.MarshalBinary()

	ctx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()
	ws.writeMu.Lock()
	defer ws.writeMu.Unlock()
	if err := ws.conn.Write(ctx, websocket.MessageBinary, data); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("websocket write: %w", err)
	}
	return nil
}

// Close ends the connection with a normal closure.
func (ws *WebSocket) Close() error {
	var err error
	ws.closeOnce.Do(func() {
		err = ws.conn.Close(websocket.StatusNormalClosure, "")
		ws.cancel()
		ws.wg.Wait()
	})
	return err
}
