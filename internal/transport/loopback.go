package transport

import (
	"context"
	"log/slog"
	"sync"
)

// Loopback is one end of an in-process link. Frames sent on one end are
// delivered to the handler of the other end by a worker goroutine, so a
// handler may send from inside HandleFrame.
type Loopback struct {
	peer    *Loopback
	logger  *slog.Logger
	queue   chan Envelope
	handler Handler

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewLoopbackPair returns two connected ends.
func NewLoopbackPair(logger *slog.Logger) (*Loopback, *Loopback) {
	a := newLoopback(logger.With("component", "loopback", "end", "a"))
	b := newLoopback(logger.With("component", "loopback", "end", "b"))
	a.peer, b.peer = b, a
	return a, b
}

func newLoopback(logger *slog.Logger) *Loopback {
	return &Loopback{
		logger: logger,
		queue:  make(chan Envelope, 64),
		done:   make(chan struct{}),
	}
}

// Start delivers inbound frames to h until Close.
func (l *Loopback) Start(h Handler) {
	l.handler = h
	l.wg.Add(1)
	go l.run()
}

func (l *Loopback) run() {
	defer l.wg.Done()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for {
		select {
		case <-l.done:
			return
		case env := <-l.queue:
			deliver(ctx, l.handler, l.logger, &env)
		}
	}
}

// SendFrame queues a frame for the peer.
func (l *Loopback) SendFrame(ctx context.Context, endpoint uint8, clusterID uint16, frame []byte) error {
	env := Envelope{Endpoint: endpoint, ClusterID: clusterID, Frame: append([]byte(nil), frame...)}
	select {
	case <-l.done:
		return ErrClosed
	case <-l.peer.done:
		return ErrClosed
	default:
	}
	select {
	case l.peer.queue <- env:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.peer.done:
		return ErrClosed
	}
}

// Close stops delivery. Safe to call more than once.
func (l *Loopback) Close() error {
	l.closeOnce.Do(func() { close(l.done) })
	l.wg.Wait()
	return nil
}
