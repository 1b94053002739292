package node

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"zigbee-go-zcl/internal/zcl"
)

// Request is an inbound command handed to a handler.
type Request struct {
	Args  zcl.Args
	Meta  zcl.Meta
	Frame *zcl.Frame
	Raw   []byte
}

// HandlerFunc implements an inbound command. A non-nil result is sent back
// as the command's cluster-specific response when it declares one.
type HandlerFunc func(ctx context.Context, req *Request) (zcl.Args, error)

// Accessor backs one attribute of a Bound cluster. Get and Set may be nil.
// Without Get, Value is served; an attribute without Set is read-only.
type Accessor struct {
	Get   func(ctx context.Context) (any, error)
	Set   func(ctx context.Context, v any) error
	Value any
}

func (a *Accessor) read(ctx context.Context) (any, error) {
	if a.Get != nil {
		return a.Get(ctx)
	}
	return a.Value, nil
}

func (a *Accessor) readable() bool { return a.Get != nil || a.Set == nil }

// Bound is the server side of one cluster on an endpoint: it answers
// inbound commands from its handlers and serves attributes from its
// accessor table.
type Bound struct {
	def    *zcl.ClusterDef
	logger *slog.Logger

	mu         sync.RWMutex
	attrs      map[string]*Accessor
	handlers   map[string]HandlerFunc
	reportable map[string]bool
}

// NewBound creates a server-side cluster. clusterRevision reads as 1 until
// replaced.
func NewBound(def *zcl.ClusterDef, logger *slog.Logger) *Bound {
	b := &Bound{
		def:        def,
		logger:     logger.With("component", "bound", "cluster", def.Name),
		attrs:      make(map[string]*Accessor),
		handlers:   make(map[string]HandlerFunc),
		reportable: make(map[string]bool),
	}
	b.attrs["clusterRevision"] = &Accessor{Value: uint16(1)}
	return b
}

// Def returns the cluster definition.
func (b *Bound) Def() *zcl.ClusterDef { return b.def }

// SetAccessor backs an attribute.
func (b *Bound) SetAccessor(name string, acc Accessor) error {
	if _, ok := b.def.Attribute(name); !ok {
		return fmt.Errorf("%w: %s.%s", zcl.ErrUnknownAttribute, b.def.Name, name)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.attrs[name] = &acc
	return nil
}

// SetValue backs an attribute with a read-only value.
func (b *Bound) SetValue(name string, v any) error {
	return b.SetAccessor(name, Accessor{Value: v})
}

// RemoveAccessor drops an attribute from the table.
func (b *Bound) RemoveAccessor(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.attrs, name)
}

// SetReportable marks attributes as reportable in extended discovery.
func (b *Bound) SetReportable(names ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, n := range names {
		b.reportable[n] = true
	}
}

// IsReportable reports whether SetReportable marked the attribute.
func (b *Bound) IsReportable(name string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.reportable[name]
}

// Handle registers the implementation of an inbound command. Handlers for
// global commands replace the built-in behaviour.
func (b *Bound) Handle(name string, fn HandlerFunc) error {
	if _, ok := b.def.Command(name); !ok {
		return fmt.Errorf("%w: %s.%s", zcl.ErrUnknownCommand, b.def.Name, name)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = fn
	return nil
}

// Read returns an attribute value through its accessor.
func (b *Bound) Read(ctx context.Context, name string) (any, error) {
	b.mu.RLock()
	acc := b.attrs[name]
	b.mu.RUnlock()
	if acc == nil || !acc.readable() {
		return nil, fmt.Errorf("%w: %s.%s is not readable", zcl.ErrUnknownAttribute, b.def.Name, name)
	}
	return acc.read(ctx)
}

func (b *Bound) handler(name string) HandlerFunc {
	b.mu.RLock()
	fn := b.handlers[name]
	b.mu.RUnlock()
	if fn != nil {
		return fn
	}
	switch name {
	case zcl.CmdReadAttributes:
		return b.readAttributes
	case zcl.CmdWriteAttributes:
		return b.writeAttributes
	case zcl.CmdWriteAttributesNoResponse:
		return b.writeAttributesNoResponse
	case zcl.CmdDiscoverAttributes:
		return b.discoverAttributes
	case zcl.CmdDiscoverAttributesExtended:
		return b.discoverAttributesExtended
	case zcl.CmdDiscoverCommandsReceived:
		return b.discoverCommandsReceived
	case zcl.CmdDiscoverCommandsGenerated:
		return b.discoverCommandsGenerated
	case zcl.CmdWriteAttributesAtomic, zcl.CmdConfigureReporting, zcl.CmdReadReportingConfiguration,
		zcl.CmdReadAttributesStructured, zcl.CmdWriteAttributesStructured, zcl.CmdReportAttributes:
		return notImplemented(name)
	}
	return nil
}

func notImplemented(name string) HandlerFunc {
	return func(context.Context, *Request) (zcl.Args, error) {
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, name)
	}
}

// handleFrame answers a frame travelling to the server.
func (b *Bound) handleFrame(ctx context.Context, f *zcl.Frame, meta zcl.Meta, raw []byte) (*reply, error) {
	cmd := pick(candidates(b.def, f), f.DirectionToClient, true)
	if cmd == nil {
		return nil, fmt.Errorf("%w: %s cmd 0x%02X", ErrUnknownCommandReceived, b.def.Name, f.CommandID)
	}
	fn := b.handler(cmd.Name)
	if fn == nil {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownCommandReceived, b.def.Name, cmd.Name)
	}
	args, _ := cmd.ArgsType().Decode(f.Data)
	res, err := fn(ctx, &Request{Args: args, Meta: meta, Frame: f, Raw: raw})
	if err != nil {
		return nil, err
	}
	r, err := encodeReply(cmd, res)
	if err != nil {
		return nil, fmt.Errorf("encode %s response: %w", cmd.Name, err)
	}
	return r, nil
}

func (b *Bound) accessor(id uint16) (*zcl.AttributeDef, *Accessor) {
	a := b.def.FindAttribute(id)
	if a == nil {
		return nil, nil
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return a, b.attrs[a.Name]
}

func (b *Bound) readAttributes(ctx context.Context, req *Request) (zcl.Args, error) {
	ids, _ := req.Args["attributes"].([]any)
	records := make([]zcl.AttributeRecord, 0, len(ids))
	for _, v := range ids {
		id, _ := zcl.ToUint64(v)
		rec := zcl.AttributeRecord{ID: uint16(id), Status: zcl.StatusFailure}
		if a, acc := b.accessor(uint16(id)); acc != nil && acc.readable() {
			val, err := acc.read(ctx)
			if err == nil {
				_, err = a.Type.Encode(val)
			}
			if err != nil {
				b.logger.Debug("read attribute failed", "attribute", a.Name, "error", err)
			} else {
				rec.Status, rec.Value = zcl.StatusSuccess, val
			}
		}
		records = append(records, rec)
	}
	data, err := b.def.EncodeReadResults(records)
	if err != nil {
		return nil, err
	}
	return zcl.Args{"attributes": data}, nil
}

func (b *Bound) applyWrites(ctx context.Context, req *Request) []any {
	data, _ := req.Args["attributes"].([]byte)
	var failed []any
	for _, rec := range b.def.DecodeAttributeRecords(data) {
		err := errors.New("not writable")
		if a, acc := b.accessor(rec.ID); acc != nil && acc.Set != nil && rec.Value != nil {
			if err = acc.Set(ctx, rec.Value); err != nil {
				b.logger.Debug("write attribute failed", "attribute", a.Name, "error", err)
			}
		}
		if err != nil {
			failed = append(failed, zcl.Args{"status": zcl.StatusFailure, "attributeId": rec.ID})
		}
	}
	return failed
}

func (b *Bound) writeAttributes(ctx context.Context, req *Request) (zcl.Args, error) {
	failed := b.applyWrites(ctx, req)
	if len(failed) == 0 {
		failed = []any{zcl.Args{"status": zcl.StatusSuccess}}
	}
	return zcl.Args{"attributes": failed}, nil
}

func (b *Bound) writeAttributesNoResponse(ctx context.Context, req *Request) (zcl.Args, error) {
	b.applyWrites(ctx, req)
	return nil, nil
}

// backed returns the attributes with an accessor from startValue on.
func (b *Bound) backed(start uint64) []*zcl.AttributeDef {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []*zcl.AttributeDef
	for _, a := range b.def.AllAttributes() {
		if uint64(a.ID) >= start && b.attrs[a.Name] != nil {
			out = append(out, a)
		}
	}
	return out
}

func window[T any](items []T, args zcl.Args) ([]T, bool) {
	limit, _ := zcl.ToUint64(args["maxResults"])
	if uint64(len(items)) <= limit {
		return items, true
	}
	return items[:limit], false
}

func (b *Bound) discoverAttributes(_ context.Context, req *Request) (zcl.Args, error) {
	start, _ := zcl.ToUint64(req.Args["startValue"])
	attrs, last := window(b.backed(start), req.Args)
	out := make([]any, len(attrs))
	for i, a := range attrs {
		out[i] = zcl.Args{"id": a.ID, "dataTypeId": a.Type.ID}
	}
	return zcl.Args{"lastResponse": last, "attributes": out}, nil
}

func (b *Bound) discoverAttributesExtended(_ context.Context, req *Request) (zcl.Args, error) {
	start, _ := zcl.ToUint64(req.Args["startValue"])
	attrs, last := window(b.backed(start), req.Args)
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]any, len(attrs))
	for i, a := range attrs {
		acc := b.attrs[a.Name]
		var acl []string
		if acc.readable() {
			acl = append(acl, "readable")
		}
		if acc.Set != nil {
			acl = append(acl, "writable")
		}
		if b.reportable[a.Name] {
			acl = append(acl, "reportable")
		}
		out[i] = zcl.Args{"id": a.ID, "dataTypeId": a.Type.ID, "acl": acl}
	}
	return zcl.Args{"lastResponse": last, "attributes": out}, nil
}

// discoverCommandsReceived lists the cluster-specific commands with a
// handler.
func (b *Bound) discoverCommandsReceived(_ context.Context, req *Request) (zcl.Args, error) {
	var ids []uint8
	b.mu.RLock()
	for name := range b.handlers {
		if cmd, ok := b.def.Command(name); ok && !cmd.Global && !cmd.IsResponse {
			ids = append(ids, cmd.ID)
		}
	}
	b.mu.RUnlock()
	return commandWindow(ids, req.Args), nil
}

// discoverCommandsGenerated lists the cluster-specific responses produced
// by handled commands.
func (b *Bound) discoverCommandsGenerated(_ context.Context, req *Request) (zcl.Args, error) {
	var ids []uint8
	b.mu.RLock()
	for name := range b.handlers {
		if cmd, ok := b.def.Command(name); ok && !cmd.Global && cmd.HasResponse() {
			ids = append(ids, cmd.Response.ID)
		}
	}
	b.mu.RUnlock()
	return commandWindow(ids, req.Args), nil
}
