package zcl

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Meta carries transport details of an inbound frame.
type Meta struct {
	// GroupID is set for group-addressed (multicast) frames.
	GroupID *uint16
	// LinkQuality and SourceAddr are informational.
	LinkQuality uint8
	SourceAddr  uint16
}

// Registry holds all known ZCL cluster definitions by id and by name.
// Registering a cluster whose id or name is already known replaces the
// previous definition, so vendor definitions loaded later win.
type Registry struct {
	mu       sync.RWMutex
	clusters map[uint16]*ClusterDef
	byName   map[string]*ClusterDef
	logger   *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		clusters: make(map[uint16]*ClusterDef),
		byName:   make(map[string]*ClusterDef),
		logger:   logger,
	}
}

// Register builds a copy of c and adds it to the registry. The returned
// definition is immutable and shared.
func (r *Registry) Register(c ClusterDef) (*ClusterDef, error) {
	def := c.DeepCopy()
	if err := def.Build(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.clusters[def.ID]; ok {
		delete(r.byName, old.Name)
		r.logger.Debug("cluster replaced", "id", fmt.Sprintf("0x%04X", def.ID), "name", def.Name)
	} else {
		r.logger.Debug("cluster registered", "id", fmt.Sprintf("0x%04X", def.ID), "name", def.Name)
	}
	if old, ok := r.byName[def.Name]; ok {
		delete(r.clusters, old.ID)
	}
	r.clusters[def.ID] = def
	r.byName[def.Name] = def
	return def, nil
}

// MustRegister is Register for static definitions.
func (r *Registry) MustRegister(c ClusterDef) *ClusterDef {
	def, err := r.Register(c)
	if err != nil {
		panic(err)
	}
	return def
}

// Remove drops a cluster by id.
func (r *Registry) Remove(id uint16) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.clusters[id]; ok {
		delete(r.clusters, id)
		delete(r.byName, c.Name)
	}
}

// Get returns a cluster definition by ID, or nil if not found.
func (r *Registry) Get(id uint16) *ClusterDef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.clusters[id]
}

// Lookup returns a cluster definition by name, or nil if not found.
func (r *Registry) Lookup(name string) *ClusterDef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[name]
}

// ClusterID resolves a cluster name to its id.
func (r *Registry) ClusterID(name string) (uint16, error) {
	c := r.Lookup(name)
	if c == nil {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCluster, name)
	}
	return c.ID, nil
}

// ClusterName resolves a cluster id to its name.
func (r *Registry) ClusterName(id uint16) (string, error) {
	c := r.Get(id)
	if c == nil {
		return "", fmt.Errorf("%w: 0x%04X", ErrUnknownCluster, id)
	}
	return c.Name, nil
}

// All returns all registered cluster definitions sorted by id.
func (r *Registry) All() []*ClusterDef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*ClusterDef, 0, len(r.clusters))
	for _, c := range r.clusters {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
