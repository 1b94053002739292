package node

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"zigbee-go-zcl/internal/zcl"
)

// Endpoint hosts the client clusters and server bindings of one endpoint.
type Endpoint struct {
	id     uint8
	node   *Node
	logger *slog.Logger

	mu       sync.RWMutex
	inputs   map[uint16]bool
	clusters map[string]*Cluster
	bindings map[string]*Bound
}

func newEndpoint(n *Node, desc EndpointDescriptor) *Endpoint {
	e := &Endpoint{
		id:       desc.ID,
		node:     n,
		logger:   n.logger.With("endpoint", desc.ID),
		inputs:   make(map[uint16]bool),
		clusters: make(map[string]*Cluster),
		bindings: make(map[string]*Bound),
	}
	reg := n.catalog.Registry()
	for _, id := range desc.InputClusters {
		e.inputs[id] = true
		def := reg.Get(id)
		if def == nil {
			e.logger.Warn("unknown input cluster", "cluster", fmt.Sprintf("0x%04X", id))
			continue
		}
		e.clusters[def.Name] = newCluster(e, def)
	}
	return e
}

// ID returns the endpoint id.
func (e *Endpoint) ID() uint8 { return e.id }

// Cluster returns the client instance of a cluster.
func (e *Endpoint) Cluster(name string) (*Cluster, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	c, ok := e.clusters[name]
	return c, ok
}

// Clusters returns the client instances sorted by cluster id.
func (e *Endpoint) Clusters() []*Cluster {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*Cluster, 0, len(e.clusters))
	for _, c := range e.clusters {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// HasInputCluster reports whether the endpoint descriptor lists the cluster.
func (e *Endpoint) HasInputCluster(name string) bool {
	def := e.node.catalog.Registry().Lookup(name)
	if def == nil {
		return false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.inputs[def.ID]
}

// Bind installs the server side of a cluster, replacing any earlier
// binding of the same cluster.
func (e *Endpoint) Bind(name string, b *Bound) error {
	def := e.node.catalog.Registry().Lookup(name)
	if def == nil {
		return fmt.Errorf("%w: %s", zcl.ErrUnknownCluster, name)
	}
	if b.def.ID != def.ID {
		return fmt.Errorf("node: binding for %s bound as %s", b.def.Name, name)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bindings[def.Name] = b
	return nil
}

// NewBound creates a server-side cluster from the registry and binds it.
func (e *Endpoint) NewBound(name string) (*Bound, error) {
	def := e.node.catalog.Registry().Lookup(name)
	if def == nil {
		return nil, fmt.Errorf("%w: %s", zcl.ErrUnknownCluster, name)
	}
	b := NewBound(def, e.logger)
	if err := e.Bind(name, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Unbind removes the server side of a cluster.
func (e *Endpoint) Unbind(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.bindings, name)
}

// Binding returns the server side of a cluster.
func (e *Endpoint) Binding(name string) (*Bound, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	b, ok := e.bindings[name]
	return b, ok
}

// Bindings returns the bound clusters sorted by cluster id.
func (e *Endpoint) Bindings() []*Bound {
	e.mu.RLock()
	out := make([]*Bound, 0, len(e.bindings))
	for _, b := range e.bindings {
		out = append(out, b)
	}
	e.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].def.ID < out[j].def.ID })
	return out
}

func (e *Endpoint) send(ctx context.Context, clusterID uint16, frame []byte) error {
	return e.node.sender.SendFrame(ctx, e.id, clusterID, frame)
}

// handleFrame routes a frame to the binding or the client instance and
// answers it. Dispatch errors become a FAILURE default response; they are
// logged, never returned.
func (e *Endpoint) handleFrame(ctx context.Context, clusterID uint16, raw []byte, meta zcl.Meta) error {
	f, err := zcl.ParseFrame(raw)
	if err != nil {
		return err
	}

	r, dispatchErr := e.dispatch(ctx, clusterID, f, meta, raw)
	if dispatchErr != nil {
		e.logger.Debug("error while handling frame",
			"cluster", fmt.Sprintf("0x%04X", clusterID), "frame", f.String(), "error", dispatchErr)
	}

	// No answer to a default response or to a group cast.
	if (!f.ClusterSpecific && f.CommandID == zcl.FoundationDefaultResponse) || meta.GroupID != nil {
		return nil
	}

	out := &zcl.Frame{
		FrameControl: zcl.FrameControl{
			ManufacturerSpecific:   f.ManufacturerSpecific,
			DirectionToClient:      !f.DirectionToClient,
			DisableDefaultResponse: true,
		},
		ManufacturerID: f.ManufacturerID,
		Seq:            f.Seq,
		CommandID:      zcl.FoundationDefaultResponse,
	}
	switch {
	case dispatchErr != nil:
		out.Data = []byte{f.CommandID, uint8(zcl.StatusFailure)}
	case r != nil:
		out.CommandID = r.cmd.ID
		out.Data = r.data
		out.ClusterSpecific = !r.cmd.Global
	case f.DisableDefaultResponse:
		return nil
	default:
		out.Data = []byte{f.CommandID, uint8(zcl.StatusSuccess)}
	}

	data, err := out.MarshalBinary()
	if err != nil {
		e.logger.Warn("encode response failed", "error", err)
		return nil
	}
	if err := e.send(ctx, clusterID, data); err != nil {
		e.logger.Debug("error while sending response",
			"cluster", fmt.Sprintf("0x%04X", clusterID), "frame", out.String(), "error", err)
	}
	return nil
}

func (e *Endpoint) dispatch(ctx context.Context, clusterID uint16, f *zcl.Frame, meta zcl.Meta, raw []byte) (*reply, error) {
	def := e.node.catalog.Registry().Get(clusterID)
	if def == nil {
		return nil, fmt.Errorf("%w: 0x%04X", zcl.ErrUnknownCluster, clusterID)
	}
	e.mu.RLock()
	b := e.bindings[def.Name]
	c := e.clusters[def.Name]
	e.mu.RUnlock()

	if !f.DirectionToClient {
		if b == nil {
			return nil, fmt.Errorf("%w: %s", ErrBindingUnavailable, def.Name)
		}
		return b.handleFrame(ctx, f, meta, raw)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrClusterUnavailable, def.Name)
	}
	return c.handleFrame(ctx, f, meta, raw)
}
