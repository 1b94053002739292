package main

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"zigbee-go-zcl/internal/node"
	"zigbee-go-zcl/internal/store"
	"zigbee-go-zcl/internal/zcl"
)

// attacher runs a binding script.
type attacher interface {
	Attach(ref string, endpoint uint8, b *node.Bound) error
}

// bindEndpoints installs the configured server-side clusters: attributes
// persisted in db, reportable marks and scripts.
func bindEndpoints(n *node.Node, db store.Store, scripts attacher, cfg *Config, logger *slog.Logger) error {
	reg := n.Catalog().Registry()
	for _, epc := range cfg.Endpoints {
		ep, ok := n.Endpoint(epc.ID)
		if !ok {
			return fmt.Errorf("%w: %d", node.ErrUnknownEndpoint, epc.ID)
		}
		refs := make([]string, 0, len(epc.Bindings))
		for ref := range epc.Bindings {
			refs = append(refs, ref)
		}
		sort.Strings(refs)

		for _, ref := range refs {
			bc := epc.Bindings[ref]
			def, err := ClusterRef(ref).Resolve(reg)
			if err != nil {
				return fmt.Errorf("endpoint %d: %w", epc.ID, err)
			}
			if !ep.HasInputCluster(def.Name) {
				logger.Warn("binding for a cluster the endpoint does not list", "endpoint", epc.ID, "cluster", def.Name)
			}
			b, err := ep.NewBound(def.Name)
			if err != nil {
				return err
			}
			if _, err := store.Bind(db, epc.ID, b, bc.Attributes, logger); err != nil {
				return fmt.Errorf("endpoint %d %s: %w", epc.ID, def.Name, err)
			}
			for _, name := range bc.Reportable {
				if _, ok := def.Attribute(name); !ok {
					return fmt.Errorf("endpoint %d: %w: %s.%s", epc.ID, zcl.ErrUnknownAttribute, def.Name, name)
				}
			}
			b.SetReportable(bc.Reportable...)
			if bc.Script != "" {
				if err := scripts.Attach(bc.Script, epc.ID, b); err != nil {
					return fmt.Errorf("endpoint %d %s: %w", epc.ID, def.Name, err)
				}
			}
			logger.Info("cluster bound", "endpoint", epc.ID, "cluster", def.Name,
				"attributes", len(bc.Attributes), "script", bc.Script)
		}
	}
	return nil
}

// selfCheck plays the peer of a loopback node: it discovers and reads the
// attributes of every bound cluster and logs what it got back.
func selfCheck(ctx context.Context, peer *node.Node, cfg *Config, logger *slog.Logger) {
	reg := peer.Catalog().Registry()
	for _, epc := range cfg.Endpoints {
		ep, ok := peer.Endpoint(epc.ID)
		if !ok {
			continue
		}
		for ref := range epc.Bindings {
			def, err := ClusterRef(ref).Resolve(reg)
			if err != nil {
				continue
			}
			c, ok := ep.Cluster(def.Name)
			if !ok {
				continue
			}
			names, err := c.DiscoverAttributes(ctx)
			if err != nil {
				logger.Warn("self-check: discover attributes", "endpoint", epc.ID, "cluster", def.Name, "err", err)
				continue
			}
			values, err := c.ReadAttributes(ctx, names)
			if err != nil {
				logger.Warn("self-check: read attributes", "endpoint", epc.ID, "cluster", def.Name, "err", err)
				continue
			}
			logger.Info("self-check", "endpoint", epc.ID, "cluster", def.Name, "values", values)
		}
	}
}

// peerDescriptors mirrors the configured endpoints for the loopback peer,
// with a client cluster for every binding.
func peerDescriptors(reg *zcl.Registry, cfg *Config) []node.EndpointDescriptor {
	out := make([]node.EndpointDescriptor, 0, len(cfg.Endpoints))
	for _, epc := range cfg.Endpoints {
		desc := node.EndpointDescriptor{ID: epc.ID}
		for ref := range epc.Bindings {
			if def, err := ClusterRef(ref).Resolve(reg); err == nil {
				desc.InputClusters = append(desc.InputClusters, def.ID)
			}
		}
		sort.Slice(desc.InputClusters, func(i, j int) bool { return desc.InputClusters[i] < desc.InputClusters[j] })
		out = append(out, desc)
	}
	return out
}
