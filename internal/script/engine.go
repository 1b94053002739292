//go:build !no_lua

// Package script binds Lua scripts to server-side clusters. A script
// registers command handlers and attribute accessors on the cluster it is
// attached to and may subscribe to node events. Each attached script runs
// in its own sandboxed VM; all Lua access is serialized on the VM's
// goroutine.
package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"zigbee-go-zcl/internal/node"
	"zigbee-go-zcl/internal/zcl"
)

var (
	ErrStopped   = errors.New("script: stopped")
	ErrNoBinding = errors.New("script: no binding")
	ErrHandler   = errors.New("script: handler failed")
)

const (
	maxHandlersPerScript = 100
	commandQueueSize     = 64
	runTimeout           = 5 * time.Second
)

// RunResult is the result of a one-shot script execution.
type RunResult struct {
	OK       bool     `json:"ok"`
	Error    string   `json:"error,omitempty"`
	Logs     []string `json:"logs"`
	Handlers int      `json:"handlers"`
	Duration string   `json:"duration"`
}

// luaEventHandler is a callback registered with zcl.on.
type luaEventHandler struct {
	eventType string
	endpoint  uint8  // 0 matches any endpoint
	cluster   string // empty matches any cluster
	fn        *lua.LFunction
}

type callResult struct {
	value any
	err   error
}

// scriptVM is the Lua state of one attached script.
type scriptVM struct {
	id       string
	endpoint uint8
	bound    *node.Bound
	state    *lua.LState
	commands chan func(*lua.LState)
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	logf     func(level, msg string)

	// Binding changes made while the script body runs are applied only
	// once it completes.
	loaded  bool
	pending []func() error

	mu       sync.Mutex // protects handlers
	handlers []luaEventHandler
}

// Engine attaches scripts to bindings and routes node events to them.
type Engine struct {
	node    *node.Node
	manager *Manager
	logger  *slog.Logger

	mu    sync.Mutex
	vms   map[string]*scriptVM // "<endpoint>/<cluster>" -> VM
	unsub func()
}

// NewEngine creates a script engine for a node.
func NewEngine(n *node.Node, mgr *Manager, logger *slog.Logger) *Engine {
	return &Engine{
		node:    n,
		manager: mgr,
		logger:  logger.With("component", "script"),
		vms:     make(map[string]*scriptVM),
	}
}

// Start subscribes to the node's events.
func (e *Engine) Start() {
	e.unsub = e.node.Events().OnAll(e.dispatchEvent)
	e.logger.Info("script engine started")
}

// Stop detaches every script and unsubscribes from events.
func (e *Engine) Stop() {
	e.mu.Lock()
	vms := e.vms
	e.vms = make(map[string]*scriptVM)
	e.mu.Unlock()

	for _, vm := range vms {
		vm.stop()
	}
	if e.unsub != nil {
		e.unsub()
	}
	e.logger.Info("script engine stopped")
}

func bindingKey(endpoint uint8, cluster string) string {
	return fmt.Sprintf("%d/%s", endpoint, cluster)
}

// Attach runs script id against the binding b on endpoint. A script
// already attached to the same binding is stopped first. Disabled scripts
// are skipped.
func (e *Engine) Attach(id string, endpoint uint8, b *node.Bound) error {
	s, err := e.manager.Get(id)
	if err != nil {
		return fmt.Errorf("get script: %w", err)
	}
	key := bindingKey(endpoint, b.Def().Name)
	e.Detach(endpoint, b.Def().Name)
	if !s.Meta.Enabled {
		e.logger.Info("script disabled", "id", id, "binding", key)
		return nil
	}

	vm := e.newVM(context.Background(), s.ID, endpoint, b)
	if err := vm.state.DoString(s.Code); err != nil {
		vm.cancel()
		vm.state.Close()
		return fmt.Errorf("execute script %s: %w", s.ID, err)
	}
	if err := vm.applyPending(); err != nil {
		vm.cancel()
		vm.state.Close()
		return fmt.Errorf("bind script %s: %w", s.ID, err)
	}

	e.mu.Lock()
	e.vms[key] = vm
	e.mu.Unlock()

	go vm.loop()
	e.logger.Info("script attached", "id", s.ID, "name", s.Meta.Name, "binding", key)
	return nil
}

// Detach stops the script attached to a binding. Handlers it registered
// stay on the binding and fail with ErrStopped.
func (e *Engine) Detach(endpoint uint8, cluster string) {
	key := bindingKey(endpoint, cluster)
	e.mu.Lock()
	vm, ok := e.vms[key]
	delete(e.vms, key)
	e.mu.Unlock()
	if ok {
		vm.stop()
		e.logger.Info("script detached", "id", vm.id, "binding", key)
	}
}

// Attached returns the id of the script attached to a binding.
func (e *Engine) Attached(endpoint uint8, cluster string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	vm, ok := e.vms[bindingKey(endpoint, cluster)]
	if !ok {
		return "", false
	}
	return vm.id, true
}

func (e *Engine) newVM(parent context.Context, id string, endpoint uint8, b *node.Bound) *scriptVM {
	ctx, cancel := context.WithCancel(parent)
	L := lua.NewState(lua.Options{SkipOpenLibs: false})

	// Sandbox
	for _, name := range []string{"os", "io", "loadfile", "dofile", "require", "load", "debug", "package"} {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetContext(ctx)

	logger := e.logger.With("script", id)
	vm := &scriptVM{
		id:       id,
		endpoint: endpoint,
		bound:    b,
		state:    L,
		commands: make(chan func(*lua.LState), commandQueueSize),
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
		logf: func(level, msg string) {
			switch level {
			case "debug":
				logger.Debug("script log", "msg", msg)
			case "warn":
				logger.Warn("script log", "msg", msg)
			case "error":
				logger.Error("script log", "msg", msg)
			default:
				logger.Info("script log", "msg", msg)
			}
		},
	}
	registerZCLModule(L, vm, e)
	registerSystemModule(L, vm)
	return vm
}

// loop runs queued Lua calls until the VM is stopped.
func (vm *scriptVM) loop() {
	defer close(vm.done)
	defer vm.state.Close()
	for {
		select {
		case <-vm.ctx.Done():
			return
		case fn := <-vm.commands:
			fn(vm.state)
		}
	}
}

func (vm *scriptVM) stop() {
	vm.cancel()
	if vm.loaded {
		<-vm.done
	}
}

// apply runs a binding change now, or after the script body when it is
// still loading.
func (vm *scriptVM) apply(fn func() error) error {
	if !vm.loaded {
		vm.pending = append(vm.pending, fn)
		return nil
	}
	return fn()
}

func (vm *scriptVM) applyPending() error {
	for _, fn := range vm.pending {
		if err := fn(); err != nil {
			return err
		}
	}
	vm.pending = nil
	vm.loaded = true
	return nil
}

// call runs fn on the VM goroutine and waits for its result.
func (vm *scriptVM) call(ctx context.Context, fn func(*lua.LState) (any, error)) (any, error) {
	resc := make(chan callResult, 1)
	select {
	case vm.commands <- func(L *lua.LState) {
		v, err := fn(L)
		resc <- callResult{v, err}
	}:
	case <-vm.ctx.Done():
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case r := <-resc:
		return r.value, r.err
	case <-vm.ctx.Done():
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// dispatchEvent queues an event to every matching Lua handler. Events are
// dropped when a VM's queue is full.
func (e *Engine) dispatchEvent(ev node.Event) {
	e.mu.Lock()
	vms := make([]*scriptVM, 0, len(e.vms))
	for _, vm := range e.vms {
		vms = append(vms, vm)
	}
	e.mu.Unlock()

next:
	for _, vm := range vms {
		vm.mu.Lock()
		handlers := make([]luaEventHandler, len(vm.handlers))
		copy(handlers, vm.handlers)
		vm.mu.Unlock()

		for _, h := range handlers {
			if !matchesHandler(h, ev) {
				continue
			}
			fn := h.fn
			select {
			case <-vm.ctx.Done():
				continue next
			case vm.commands <- func(L *lua.LState) {
				e.callHandler(L, vm, fn, ev)
			}:
			default:
				e.logger.Warn("script command queue full, dropping event", "script", vm.id, "event", ev.Type)
			}
		}
	}
}

func matchesHandler(h luaEventHandler, ev node.Event) bool {
	if h.eventType != ev.Type {
		return false
	}
	if h.endpoint != 0 && h.endpoint != ev.Endpoint {
		return false
	}
	return h.cluster == "" || h.cluster == ev.Cluster
}

func (e *Engine) callHandler(L *lua.LState, vm *scriptVM, fn *lua.LFunction, ev node.Event) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("lua handler panic", "script", vm.id, "err", r)
		}
	}()
	if err := L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, eventTable(L, ev)); err != nil {
		e.logger.Error("lua handler error", "script", vm.id, "event", ev.Type, "err", err)
	}
}

func eventTable(L *lua.LState, ev node.Event) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("type", lua.LString(ev.Type))
	t.RawSetString("endpoint", lua.LNumber(ev.Endpoint))
	t.RawSetString("cluster", lua.LString(ev.Cluster))
	t.RawSetString("args", goToLua(L, ev.Args))
	if ev.Value != nil {
		t.RawSetString("value", goToLua(L, ev.Value))
	}
	t.RawSetString("meta", metaTable(L, ev.Meta))
	return t
}

func metaTable(L *lua.LState, meta zcl.Meta) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("source", lua.LNumber(meta.SourceAddr))
	t.RawSetString("lqi", lua.LNumber(meta.LinkQuality))
	if meta.GroupID != nil {
		t.RawSetString("group", lua.LNumber(*meta.GroupID))
	}
	return t
}

// RunScript executes a stored script in a throwaway VM. See RunLuaCode.
func (e *Engine) RunScript(id string, def *zcl.ClusterDef) *RunResult {
	start := time.Now()
	s, err := e.manager.Get(id)
	if err != nil {
		return &RunResult{Error: "script not found: " + err.Error(), Duration: time.Since(start).String()}
	}
	return e.RunLuaCode(s.Code, def)
}

// RunLuaCode executes code in a throwaway VM and reports what it logged.
// With a cluster definition, the script binds to a scratch server cluster
// so that its handler and attribute names are checked; without one,
// binding calls fail.
func (e *Engine) RunLuaCode(code string, def *zcl.ClusterDef) *RunResult {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	var b *node.Bound
	if def != nil {
		b = node.NewBound(def, e.logger)
	}
	vm := e.newVM(ctx, "run", 0, b)
	defer vm.cancel()
	defer vm.state.Close()

	var (
		logMu sync.Mutex
		logs  []string
	)
	vm.logf = func(level, msg string) {
		logMu.Lock()
		defer logMu.Unlock()
		if level != "" && level != "info" {
			msg = "[" + level + "] " + msg
		}
		logs = append(logs, msg)
	}

	result := func(err error) *RunResult {
		r := &RunResult{OK: err == nil, Logs: logs, Handlers: len(vm.handlers), Duration: time.Since(start).String()}
		if err != nil {
			r.Error = err.Error()
			if strings.Contains(r.Error, "context deadline exceeded") {
				r.Error = "timeout (" + runTimeout.String() + ")"
			}
		}
		return r
	}
	if err := vm.state.DoString(code); err != nil {
		e.logger.Warn("run script: error", "err", err)
		return result(err)
	}
	return result(vm.applyPending())
}
