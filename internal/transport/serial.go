package transport

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.bug.st/serial"
)

const (
	ackTimeout = 500 * time.Millisecond
	maxRetries = 3
)

// Serial carries envelopes over a byte stream, normally a USB CDC ACM port
// of a radio co-processor. Every data frame is acknowledged by the peer and
// retransmitted on a missing ACK.
type Serial struct {
	rw     io.ReadWriteCloser
	reader *bufio.Reader
	logger *slog.Logger

	handler Handler
	rx      chan Envelope
	tx      chan []byte

	seqMu   sync.Mutex
	pktSeq  uint8
	sendMu  sync.Mutex
	ackCh   chan uint8
	lastRx  uint8
	hasLast bool

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// OpenSerial opens a serial port.
func OpenSerial(portName string, baudRate int, logger *slog.Logger) (*Serial, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", portName, err)
	}
	// USB CDC ACM: assert DTR/RTS for the co-processor firmware.
	_ = port.SetDTR(true)
	_ = port.SetRTS(true)
	return NewSerial(port, logger.With("port", portName)), nil
}

// NewSerial wraps an open byte stream.
func NewSerial(rw io.ReadWriteCloser, logger *slog.Logger) *Serial {
	return &Serial{
		rw:     rw,
		reader: bufio.NewReader(rw),
		logger: logger.With("component", "serial"),
		rx:     make(chan Envelope, 64),
		tx:     make(chan []byte, 16),
		ackCh:  make(chan uint8, 4),
		done:   make(chan struct{}),
	}
}

// Start runs the read, write and dispatch loops, delivering inbound frames
// to h until Close.
func (s *Serial) Start(h Handler) {
	s.handler = h
	s.wg.Add(3)
	go s.readLoop()
	go s.writeLoop()
	go s.dispatchLoop()
}

// nextPktSeq advances the packet sequence (cycles 1→2→3→1).
func (s *Serial) nextPktSeq() uint8 {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()
	s.pktSeq = s.pktSeq%3 + 1
	return s.pktSeq
}

// SendFrame writes one frame and waits for the peer's ACK.
func (s *Serial) SendFrame(ctx context.Context, endpoint uint8, clusterID uint16, frame []byte) error {
	env := Envelope{Endpoint: endpoint, ClusterID: clusterID, Frame: frame}
	body, _ := env.MarshalBinary()

	// One data frame in flight at a time.
	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	pktSeq := s.nextPktSeq()
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := s.write(ctx, encodeLinkData(pktSeq, attempt > 0, body)); err != nil {
			return err
		}
		s.logger.Debug("frame sent", "pktSeq", pktSeq, "len", len(frame))

		deadline := time.NewTimer(ackTimeout)
	waitACK:
		for {
			select {
			case ackSeq := <-s.ackCh:
				if ackSeq == pktSeq {
					deadline.Stop()
					return nil
				}
				s.logger.Debug("stale ACK drained", "got", ackSeq, "want", pktSeq)
			case <-deadline.C:
				s.logger.Warn("ACK timeout", "attempt", attempt+1, "pktSeq", pktSeq)
				break waitACK
			case <-ctx.Done():
				deadline.Stop()
				return ctx.Err()
			case <-s.done:
				deadline.Stop()
				return ErrClosed
			}
		}
	}
	return fmt.Errorf("serial: no ACK after %d attempts", maxRetries+1)
}

func (s *Serial) write(ctx context.Context, raw []byte) error {
	select {
	case s.tx <- raw:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		return ErrClosed
	}
}

func (s *Serial) writeLoop() {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case raw := <-s.tx:
			if _, err := s.rw.Write(raw); err != nil {
				select {
				case <-s.done:
					return
				default:
				}
				s.logger.Error("serial write", "err", err)
			}
		}
	}
}

func (s *Serial) sendACK(pktSeq uint8) {
	select {
	case s.tx <- encodeLinkACK(pktSeq):
	case <-s.done:
	}
}

func (s *Serial) readLoop() {
	defer s.wg.Done()

	backoff := 10 * time.Millisecond
	const maxBackoff = 5 * time.Second

	for {
		select {
		case <-s.done:
			return
		default:
		}

		f, err := readLinkFrame(s.reader)
		if err != nil {
			select {
			case <-s.done:
				return
			default:
			}
			if errors.Is(err, errLinkFrame) {
				s.logger.Warn("link frame dropped", "err", err)
				continue
			}
			if err != io.EOF && !strings.Contains(err.Error(), "closed") {
				s.logger.Error("serial read", "err", err)
			}
			select {
			case <-time.After(backoff):
			case <-s.done:
				return
			}
			if backoff < maxBackoff {
				backoff = min(backoff*2, maxBackoff)
			}
			continue
		}
		backoff = 10 * time.Millisecond

		if f.isACK() {
			select {
			case s.ackCh <- f.ackSeq():
			default:
			}
			continue
		}

		pktSeq := f.pktSeq()
		s.sendACK(pktSeq)
		if f.retrans() && s.hasLast && pktSeq == s.lastRx {
			s.logger.Debug("duplicate frame dropped", "pktSeq", pktSeq)
			continue
		}
		s.lastRx, s.hasLast = pktSeq, true

		var env Envelope
		if err := env.UnmarshalBinary(f.body); err != nil {
			s.logger.Warn("envelope dropped", "err", err)
			continue
		}
		select {
		case s.rx <- env:
		default:
			s.logger.Warn("receive queue full, frame dropped",
				"endpoint", env.Endpoint, "cluster", fmt.Sprintf("0x%04X", env.ClusterID))
		}
	}
}

// dispatchLoop runs handlers off the read loop: a handler that answers a
// frame waits for an ACK the read loop has to receive.
func (s *Serial) dispatchLoop() {
	defer s.wg.Done()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for {
		select {
		case <-s.done:
			return
		case env := <-s.rx:
			deliver(ctx, s.handler, s.logger, &env)
		}
	}
}

// Close stops the loops and closes the port.
func (s *Serial) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.rw.Close()
		s.wg.Wait()
	})
	return err
}
