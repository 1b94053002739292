// Package transport carries ZCL frames between a node and its peers.
//
// Every transport implements node.Sender for the outbound direction and
// delivers inbound frames to a Handler, which node.Node satisfies.
package transport

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"

	"zigbee-go-zcl/internal/zcl"
)

var (
	// ErrClosed is returned by SendFrame after Close.
	ErrClosed = errors.New("transport: closed")
	// ErrMalformedEnvelope is returned for an envelope too short for its header.
	ErrMalformedEnvelope = errors.New("transport: malformed envelope")
	// ErrNotConnected is returned by a WebSocketServer without a peer.
	ErrNotConnected = errors.New("transport: no peer connected")
)

// Handler consumes inbound frames.
type Handler interface {
	HandleFrame(ctx context.Context, endpoint uint8, clusterID uint16, frame []byte, meta zcl.Meta) error
}

// Envelope addresses a ZCL frame on links that carry several endpoints
// and clusters over one byte stream.
//
// Layout: endpoint(1) clusterId(2) flags(1) sourceAddr(2) linkQuality(1)
// [groupId(2) when flags bit 0 is set] frame.
type Envelope struct {
	Endpoint  uint8
	ClusterID uint16
	Meta      zcl.Meta
	Frame     []byte
}

const (
	envelopeHeaderSize = 7
	envelopeFlagGroup  = 0x01
)

// MarshalBinary returns the wire form of the envelope.
func (e *Envelope) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, envelopeHeaderSize+2+len(e.Frame))
	out = append(out, e.Endpoint)
	out = binary.LittleEndian.AppendUint16(out, e.ClusterID)
	var flags uint8
	if e.Meta.GroupID != nil {
		flags |= envelopeFlagGroup
	}
	out = append(out, flags)
	out = binary.LittleEndian.AppendUint16(out, e.Meta.SourceAddr)
	out = append(out, e.Meta.LinkQuality)
	if e.Meta.GroupID != nil {
		out = binary.LittleEndian.AppendUint16(out, *e.Meta.GroupID)
	}
	return append(out, e.Frame...), nil
}

// UnmarshalBinary decodes an envelope. The frame aliases data.
func (e *Envelope) UnmarshalBinary(data []byte) error {
	if len(data) < envelopeHeaderSize {
		return fmt.Errorf("%w: %d bytes", ErrMalformedEnvelope, len(data))
	}
	e.Endpoint = data[0]
	e.ClusterID = binary.LittleEndian.Uint16(data[1:3])
	flags := data[3]
	e.Meta = zcl.Meta{
		SourceAddr:  binary.LittleEndian.Uint16(data[4:6]),
		LinkQuality: data[6],
	}
	pos := envelopeHeaderSize
	if flags&envelopeFlagGroup != 0 {
		if len(data) < pos+2 {
			return fmt.Errorf("%w: group id missing", ErrMalformedEnvelope)
		}
		g := binary.LittleEndian.Uint16(data[pos:])
		e.Meta.GroupID = &g
		pos += 2
	}
	e.Frame = data[pos:]
	return nil
}

// deliver hands an envelope to h. Handler errors only concern the frame,
// so they are logged and dropped.
func deliver(ctx context.Context, h Handler, logger *slog.Logger, env *Envelope) {
	if h == nil {
		logger.Warn("frame dropped, no handler", "endpoint", env.Endpoint,
			"cluster", fmt.Sprintf("0x%04X", env.ClusterID))
		return
	}
	if err := h.HandleFrame(ctx, env.Endpoint, env.ClusterID, env.Frame, env.Meta); err != nil {
		logger.Debug("frame dropped", "endpoint", env.Endpoint,
			"cluster", fmt.Sprintf("0x%04X", env.ClusterID), "frame", fmt.Sprintf("%X", env.Frame), "err", err)
	}
}
