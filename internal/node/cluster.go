package node

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"zigbee-go-zcl/internal/zcl"
)

// response is a decoded frame delivered to a waiting transaction.
type response struct {
	cmd  *zcl.CommandDef
	args zcl.Args
}

// Cluster is the client side of one cluster on an endpoint: it sends
// commands, correlates their responses by transaction sequence number and
// turns unsolicited inbound commands into events.
//
// The sequence number wraps at 256 and is not checked against transactions
// still in flight, so callers keep fewer than 256 commands outstanding per
// instance.
type Cluster struct {
	def      *zcl.ClusterDef
	endpoint *Endpoint
	catalog  *Catalog
	logger   *slog.Logger

	seq atomic.Uint32

	mu       sync.Mutex
	pending  map[uint8]chan response
	handlers map[string]HandlerFunc
}

func newCluster(e *Endpoint, def *zcl.ClusterDef) *Cluster {
	return &Cluster{
		def:      def,
		endpoint: e,
		catalog:  e.node.catalog,
		logger:   e.logger.With("cluster", def.Name),
		pending:  make(map[uint8]chan response),
		handlers: make(map[string]HandlerFunc),
	}
}

// Def returns the cluster definition.
func (c *Cluster) Def() *zcl.ClusterDef { return c.def }

// Name returns the cluster name.
func (c *Cluster) Name() string { return c.def.Name }

// ID returns the cluster id.
func (c *Cluster) ID() uint16 { return c.def.ID }

// Endpoint returns the endpoint id the cluster lives on.
func (c *Cluster) Endpoint() uint8 { return c.endpoint.id }

func (c *Cluster) nextSeq() uint8 {
	return uint8(c.seq.Add(1))
}

// Invoke runs a command by name through the catalog: an override when one
// is installed, the generic implementation otherwise.
func (c *Cluster) Invoke(ctx context.Context, name string, args zcl.Args, opts ...Option) (zcl.Args, error) {
	fn, err := c.catalog.resolve(c.def, name)
	if err != nil {
		return nil, err
	}
	return fn(ctx, c, args, opts...)
}

// Handle registers a handler for an inbound command. Its result becomes the
// cluster-specific response when the command declares one.
func (c *Cluster) Handle(name string, fn HandlerFunc) error {
	if _, ok := c.def.Command(name); !ok {
		return fmt.Errorf("%w: %s.%s", zcl.ErrUnknownCommand, c.def.Name, name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[name] = fn
	return nil
}

// On subscribes to events of this cluster instance: inbound commands by
// name, and "attr.<name>" for each reported attribute.
func (c *Cluster) On(eventType string, fn EventHandler) func() {
	f := Filter{Type: eventType, Endpoint: c.endpoint.id, Cluster: c.def.Name}
	return c.endpoint.node.events.Subscribe(f, fn)
}

// send is the generic implementation of every command.
func (c *Cluster) send(ctx context.Context, cmd *zcl.CommandDef, args zcl.Args, opts ...Option) (zcl.Args, error) {
	o := applyOptions(c.endpoint.node.timeout, opts)

	data, err := cmd.ArgsType().Encode(args)
	if err != nil {
		return nil, fmt.Errorf("encode %s.%s: %w", c.def.Name, cmd.Name, err)
	}
	f := &zcl.Frame{Seq: c.nextSeq(), CommandID: cmd.ID, Data: data}
	f.ClusterSpecific = !cmd.Global
	f.DirectionToClient = cmd.Direction == zcl.DirectionToClient
	if cmd.ManufacturerID != 0 {
		f.ManufacturerSpecific = true
		f.ManufacturerID = cmd.ManufacturerID
	}
	if o.manufacturerID != nil {
		f.ManufacturerSpecific = true
		f.ManufacturerID = *o.manufacturerID
	}
	if cmd.FrameControl != nil {
		f.FrameControl = *cmd.FrameControl
	}
	if o.disableDefaultResponse {
		f.DisableDefaultResponse = true
	}
	raw, err := f.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("encode %s.%s: %w", c.def.Name, cmd.Name, err)
	}

	if o.noWait || (f.DisableDefaultResponse && !cmd.HasResponse()) {
		if err := c.endpoint.send(ctx, c.def.ID, raw); err != nil {
			return nil, fmt.Errorf("send %s.%s: %w", c.def.Name, cmd.Name, err)
		}
		return nil, nil
	}

	// Registered before sending: the answer may arrive before SendFrame
	// returns.
	ch := make(chan response, 1)
	c.mu.Lock()
	if _, busy := c.pending[f.Seq]; busy {
		c.logger.Warn("transaction sequence reused while in flight", "seq", f.Seq)
	}
	c.pending[f.Seq] = ch
	c.mu.Unlock()

	c.logger.Debug("send", "command", cmd.Name, "frame", fmt.Sprintf("%X", raw))
	if err := c.endpoint.send(ctx, c.def.ID, raw); err != nil {
		c.forget(f.Seq, ch)
		return nil, fmt.Errorf("send %s.%s: %w", c.def.Name, cmd.Name, err)
	}

	// The timeout covers the wait for the response, not the send.
	timer := time.NewTimer(o.timeout)
	defer timer.Stop()

	select {
	case r := <-ch:
		return c.result(cmd, r)
	case <-timer.C:
		c.forget(f.Seq, ch)
		return nil, fmt.Errorf("%w: %s.%s seq %d after %s", ErrTimeout, c.def.Name, cmd.Name, f.Seq, o.timeout)
	case <-ctx.Done():
		c.forget(f.Seq, ch)
		return nil, ctx.Err()
	}
}

// forget drops a pending transaction unless a newer one reused its slot.
func (c *Cluster) forget(seq uint8, ch chan response) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending[seq] == ch {
		delete(c.pending, seq)
	}
}

func (c *Cluster) result(cmd *zcl.CommandDef, r response) (zcl.Args, error) {
	if r.cmd.Global && r.cmd.ID == zcl.FoundationDefaultResponse {
		status, ok := zcl.ParseStatus(r.args["status"])
		if !ok {
			return nil, fmt.Errorf("%w: default response status %v", zcl.ErrInvalidValue, r.args["status"])
		}
		if status != zcl.StatusSuccess {
			return nil, &zcl.StatusError{Status: status, Command: cmd.Name}
		}
		return nil, nil
	}
	return r.args, nil
}

// PendingCount returns the number of transactions awaiting a response.
func (c *Cluster) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// handleFrame processes a frame travelling to the client. A frame answering
// a pending transaction resolves it; anything else is an unsolicited
// command that is published as an event and handed to its handler.
func (c *Cluster) handleFrame(ctx context.Context, f *zcl.Frame, meta zcl.Meta, raw []byte) (*reply, error) {
	cands := candidates(c.def, f)
	if len(cands) == 0 {
		return nil, fmt.Errorf("%w: %s cmd 0x%02X", ErrUnknownCommandReceived, c.def.Name, f.CommandID)
	}

	c.mu.Lock()
	ch, waiting := c.pending[f.Seq]
	if waiting {
		delete(c.pending, f.Seq)
	}
	c.mu.Unlock()

	if waiting {
		cmd := pick(cands, f.DirectionToClient, true)
		args, _ := cmd.ArgsType().Decode(f.Data)
		select {
		case ch <- response{cmd: cmd, args: args}:
		default:
			c.logger.Warn("orphaned response (too late)", "seq", f.Seq, "command", cmd.Name)
		}
		return nil, nil
	}

	cmd := pick(cands, f.DirectionToClient, false)
	args, _ := cmd.ArgsType().Decode(f.Data)
	c.endpoint.node.events.Emit(Event{
		Type:     cmd.Name,
		Endpoint: c.endpoint.id,
		Cluster:  c.def.Name,
		Args:     args,
		Meta:     meta,
	})

	c.mu.Lock()
	fn := c.handlers[cmd.Name]
	c.mu.Unlock()
	if fn == nil {
		fn = c.builtin(cmd.Name)
	}
	if fn == nil {
		return nil, nil
	}
	res, err := fn(ctx, &Request{Args: args, Meta: meta, Frame: f, Raw: raw})
	if err != nil {
		return nil, err
	}
	return encodeReply(cmd, res)
}

func (c *Cluster) builtin(name string) HandlerFunc {
	switch name {
	case zcl.CmdReportAttributes:
		return c.onReportAttributes
	case zcl.CmdDiscoverCommandsGenerated:
		return c.onDiscoverCommandsGenerated
	case zcl.CmdDiscoverCommandsReceived:
		return c.onDiscoverCommandsReceived
	}
	return nil
}

func (c *Cluster) onReportAttributes(_ context.Context, req *Request) (zcl.Args, error) {
	data, _ := req.Args["attributes"].([]byte)
	for _, rec := range c.def.DecodeAttributeRecords(data) {
		if rec.Name == "" {
			c.logger.Debug("report for undeclared attribute", "attribute", fmt.Sprintf("0x%04X", rec.ID))
			continue
		}
		c.endpoint.node.events.Emit(Event{
			Type:     "attr." + rec.Name,
			Endpoint: c.endpoint.id,
			Cluster:  c.def.Name,
			Value:    rec.Value,
			Meta:     req.Meta,
		})
	}
	return nil, nil
}

// onDiscoverCommandsGenerated lists the cluster-specific commands this
// client sends.
func (c *Cluster) onDiscoverCommandsGenerated(_ context.Context, req *Request) (zcl.Args, error) {
	var ids []uint8
	for _, cmd := range c.def.AllCommands() {
		if !cmd.Global && !cmd.IsResponse && !toClient(cmd) {
			ids = append(ids, cmd.ID)
		}
	}
	return commandWindow(ids, req.Args), nil
}

// onDiscoverCommandsReceived lists the cluster-specific responses this
// client awaits and the inbound commands it has handlers for.
func (c *Cluster) onDiscoverCommandsReceived(_ context.Context, req *Request) (zcl.Args, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var ids []uint8
	for _, cmd := range c.def.AllCommands() {
		switch {
		case cmd.Global || cmd.IsResponse:
		case cmd.HasResponse():
			ids = append(ids, cmd.Response.ID)
		case toClient(cmd) && c.handlers[cmd.Name] != nil:
			ids = append(ids, cmd.ID)
		}
	}
	return commandWindow(ids, req.Args), nil
}

// commandWindow sorts and deduplicates ids and returns those from
// startValue on, at most maxResults of them.
func commandWindow(ids []uint8, args zcl.Args) zcl.Args {
	start, _ := zcl.ToUint64(args["startValue"])
	limit, _ := zcl.ToUint64(args["maxResults"])
	if limit == 0 {
		limit = 250
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var from []uint8
	for i, id := range ids {
		if uint64(id) < start || (i > 0 && ids[i-1] == id) {
			continue
		}
		from = append(from, id)
	}
	result := from
	if uint64(len(result)) > limit {
		result = result[:limit]
	}
	return zcl.Args{
		"lastResponse": len(result) == len(from),
		"commandIds":   result,
	}
}
