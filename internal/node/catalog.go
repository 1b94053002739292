package node

import (
	"context"
	"fmt"
	"sync"

	"zigbee-go-zcl/internal/zcl"
)

// InvokeFunc sends one command on a cluster instance and returns the decoded
// cluster-specific response, or nil when the peer answered with a default
// response or no response was awaited.
type InvokeFunc func(ctx context.Context, c *Cluster, args zcl.Args, opts ...Option) (zcl.Args, error)

// OverrideFunc replaces a command for one cluster type. super is the generic
// implementation of the same command.
type OverrideFunc func(ctx context.Context, c *Cluster, args zcl.Args, super InvokeFunc, opts ...Option) (zcl.Args, error)

// Catalog holds the per-cluster-type command tables and the override table.
// Tables are built once per registered definition and shared by every
// Cluster instance of that type.
type Catalog struct {
	registry *zcl.Registry

	mu        sync.RWMutex
	tables    map[*zcl.ClusterDef]map[string]InvokeFunc
	overrides map[string]map[string]OverrideFunc
}

// NewCatalog creates a catalog over a definition registry.
func NewCatalog(registry *zcl.Registry) *Catalog {
	return &Catalog{
		registry:  registry,
		tables:    make(map[*zcl.ClusterDef]map[string]InvokeFunc),
		overrides: make(map[string]map[string]OverrideFunc),
	}
}

// Registry returns the definition registry.
func (c *Catalog) Registry() *zcl.Registry { return c.registry }

// Override installs fn in place of the named command of a cluster type.
// A later Override of the same command replaces the earlier one.
func (c *Catalog) Override(cluster, command string, fn OverrideFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.overrides[cluster] == nil {
		c.overrides[cluster] = make(map[string]OverrideFunc)
	}
	c.overrides[cluster][command] = fn
}

// RemoveOverride restores the generic implementation of a command.
func (c *Catalog) RemoveOverride(cluster, command string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.overrides[cluster], command)
}

// table returns the generic command table of def, building it on first use.
func (c *Catalog) table(def *zcl.ClusterDef) map[string]InvokeFunc {
	c.mu.RLock()
	t, ok := c.tables[def]
	c.mu.RUnlock()
	if ok {
		return t
	}

	t = make(map[string]InvokeFunc)
	for _, cmd := range def.AllCommands() {
		if cmd.IsResponse {
			continue
		}
		cmd := cmd
		t[cmd.Name] = func(ctx context.Context, cl *Cluster, args zcl.Args, opts ...Option) (zcl.Args, error) {
			return cl.send(ctx, cmd, args, opts...)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.tables[def]; ok {
		return existing
	}
	c.tables[def] = t
	return t
}

// resolve checks the override table first and falls back to the generic
// implementation.
func (c *Catalog) resolve(def *zcl.ClusterDef, name string) (InvokeFunc, error) {
	generic, ok := c.table(def)[name]

	c.mu.RLock()
	override := c.overrides[def.Name][name]
	c.mu.RUnlock()

	if override != nil {
		super := generic
		if super == nil {
			super = func(context.Context, *Cluster, zcl.Args, ...Option) (zcl.Args, error) {
				return nil, fmt.Errorf("%w: %s.%s has no generic implementation", zcl.ErrUnknownCommand, def.Name, name)
			}
		}
		return func(ctx context.Context, cl *Cluster, args zcl.Args, opts ...Option) (zcl.Args, error) {
			return override(ctx, cl, args, super, opts...)
		}, nil
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", zcl.ErrUnknownCommand, def.Name, name)
	}
	return generic, nil
}
