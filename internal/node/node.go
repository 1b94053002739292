// Package node implements the ZCL command engine of a device: client
// cluster instances that send commands and correlate responses, server
// bindings that answer inbound commands, and the endpoint routing between
// them and a frame transport.
package node

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"zigbee-go-zcl/internal/zcl"
)

// Sender delivers an encoded ZCL frame to the peer.
type Sender interface {
	SendFrame(ctx context.Context, endpoint uint8, clusterID uint16, frame []byte) error
}

// EndpointDescriptor declares an endpoint and the clusters it serves.
type EndpointDescriptor struct {
	ID            uint8
	InputClusters []uint16
}

// Node routes frames between a transport and its endpoints.
type Node struct {
	catalog   *Catalog
	sender    Sender
	endpoints map[uint8]*Endpoint
	events    *EventBus
	timeout   time.Duration
	logger    *slog.Logger
}

// New creates a node. Endpoints are fixed for the life of the node.
func New(sender Sender, catalog *Catalog, endpoints []EndpointDescriptor, logger *slog.Logger) *Node {
	logger = logger.With("component", "node")
	n := &Node{
		catalog:   catalog,
		sender:    sender,
		endpoints: make(map[uint8]*Endpoint, len(endpoints)),
		events:    NewEventBus(logger),
		timeout:   DefaultTimeout,
		logger:    logger,
	}
	for _, desc := range endpoints {
		n.endpoints[desc.ID] = newEndpoint(n, desc)
	}
	return n
}

// SetTimeout changes the default response timeout of every cluster.
// Call it before the node starts handling frames.
func (n *Node) SetTimeout(d time.Duration) {
	if d > 0 {
		n.timeout = d
	}
}

// Catalog returns the command catalog.
func (n *Node) Catalog() *Catalog { return n.catalog }

// Events returns the bus carrying the events of every cluster instance.
func (n *Node) Events() *EventBus { return n.events }

// Endpoint returns an endpoint by id.
func (n *Node) Endpoint(id uint8) (*Endpoint, bool) {
	e, ok := n.endpoints[id]
	return e, ok
}

// Endpoints returns all endpoints sorted by id.
func (n *Node) Endpoints() []*Endpoint {
	out := make([]*Endpoint, 0, len(n.endpoints))
	for _, e := range n.endpoints {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// HandleFrame accepts a frame from the transport. Frames for unknown
// endpoints and frames too short for a header are logged and dropped; the
// returned error only reports the drop.
func (n *Node) HandleFrame(ctx context.Context, endpoint uint8, clusterID uint16, frame []byte, meta zcl.Meta) error {
	e, ok := n.endpoints[endpoint]
	if !ok {
		n.logger.Debug("error while handling frame, endpoint unavailable",
			"endpoint", endpoint, "cluster", fmt.Sprintf("0x%04X", clusterID), "frame", fmt.Sprintf("%X", frame))
		return fmt.Errorf("%w: %d", ErrUnknownEndpoint, endpoint)
	}
	if err := e.handleFrame(ctx, clusterID, frame, meta); err != nil {
		n.logger.Debug("invalid frame received",
			"endpoint", endpoint, "cluster", fmt.Sprintf("0x%04X", clusterID), "frame", fmt.Sprintf("%X", frame), "error", err)
		return err
	}
	return nil
}
