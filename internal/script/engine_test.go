//go:build !no_lua

package script

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"zigbee-go-zcl/internal/node"
	"zigbee-go-zcl/internal/transport"
	"zigbee-go-zcl/internal/zcl"
	"zigbee-go-zcl/internal/zcl/clusters"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fixture is a client node and a scripted server node over a loopback pair.
type fixture struct {
	client  *node.Node
	server  *node.Node
	manager *Manager
	engine  *Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	reg := zcl.NewRegistry(testLogger())
	if err := clusters.Register(reg); err != nil {
		t.Fatal(err)
	}
	cat := node.NewCatalog(reg)
	eps := []node.EndpointDescriptor{{ID: 1, InputClusters: []uint16{0x0003, 0x0006}}}
	a, b := transport.NewLoopbackPair(testLogger())
	f := &fixture{
		client: node.New(a, cat, eps, testLogger()),
		server: node.New(b, cat, eps, testLogger()),
	}
	f.client.SetTimeout(2 * time.Second)
	f.server.SetTimeout(2 * time.Second)
	a.Start(f.client)
	b.Start(f.server)

	mgr, err := NewManager(t.TempDir(), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	f.manager = mgr
	f.engine = NewEngine(f.server, mgr, testLogger())
	f.engine.Start()
	t.Cleanup(func() {
		f.engine.Stop()
		a.Close()
		b.Close()
	})
	return f
}

// attach saves code as a script and attaches it to a new binding.
func (f *fixture) attach(t *testing.T, cluster, code string) *node.Bound {
	t.Helper()
	ep, _ := f.server.Endpoint(1)
	b, err := ep.NewBound(cluster)
	if err != nil {
		t.Fatal(err)
	}
	s, err := f.manager.Save(&Script{Meta: Meta{Name: cluster, Enabled: true}, Code: code})
	if err != nil {
		t.Fatal(err)
	}
	if err := f.engine.Attach(s.ID, 1, b); err != nil {
		t.Fatalf("attach: %v", err)
	}
	return b
}

func (f *fixture) cluster(t *testing.T, name string) *node.Cluster {
	t.Helper()
	ep, _ := f.client.Endpoint(1)
	c, ok := ep.Cluster(name)
	if !ok {
		t.Fatalf("no client cluster %s", name)
	}
	return c
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// waitValue polls a bound attribute until it reads want.
func waitValue(t *testing.T, b *node.Bound, name string, want any) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	var got any
	for time.Now().Before(deadline) {
		got, _ = b.Read(context.Background(), name)
		if got == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("%s = %v (%T), want %v (%T)", name, got, got, want, want)
}

const toggleScript = `
local on = false
zcl.attribute("onOff", {get = function() return on end})
zcl.handle("toggle", function(args, meta)
  on = not on
end)
zcl.reportable("onOff")
`

func TestScriptedToggle(t *testing.T) {
	f := newFixture(t)
	b := f.attach(t, "onOff", toggleScript)
	ctx := testContext(t)

	onOff := f.cluster(t, "onOff")
	if _, err := onOff.Invoke(ctx, "toggle", nil); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	got, err := onOff.ReadAttributes(ctx, []string{"onOff"})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got["onOff"] != true {
		t.Fatalf("onOff = %v", got["onOff"])
	}
	if !b.IsReportable("onOff") {
		t.Fatal("onOff not marked reportable")
	}
	if id, ok := f.engine.Attached(1, "onOff"); !ok || id != "onoff" {
		t.Fatalf("attached = %q %v", id, ok)
	}
}

func TestScriptedResponse(t *testing.T) {
	f := newFixture(t)
	f.attach(t, "identify", `
zcl.handle("identifyQuery", function()
  return {timeout = 30}
end)
`)
	res, err := f.cluster(t, "identify").Invoke(testContext(t), "identifyQuery", nil)
	if err != nil {
		t.Fatalf("identifyQuery: %v", err)
	}
	if res["timeout"] != uint16(30) {
		t.Fatalf("timeout = %v (%T)", res["timeout"], res["timeout"])
	}
}

func TestScriptedHandlerArgs(t *testing.T) {
	f := newFixture(t)
	b := f.attach(t, "identify", `
zcl.value("identifyTime", 0)
zcl.handle("identify", function(args)
  zcl.value("identifyTime", args.identifyTime)
end)
`)
	if _, err := f.cluster(t, "identify").Invoke(testContext(t), "identify", zcl.Args{"identifyTime": 12}); err != nil {
		t.Fatalf("identify: %v", err)
	}
	waitValue(t, b, "identifyTime", int64(12))
}

func TestScriptedHandlerError(t *testing.T) {
	f := newFixture(t)
	f.attach(t, "onOff", `
zcl.handle("on", function() return nil, "relay stuck" end)
zcl.handle("off", function() error("boom") end)
`)
	ctx := testContext(t)
	onOff := f.cluster(t, "onOff")
	for _, cmd := range []string{"on", "off"} {
		if _, err := onOff.Invoke(ctx, cmd, nil); !zcl.IsStatus(err, zcl.StatusFailure) {
			t.Fatalf("%s: err = %v, want FAILURE", cmd, err)
		}
	}
}

func TestScriptedAttributeSetter(t *testing.T) {
	f := newFixture(t)
	f.attach(t, "identify", `
local t = 0
zcl.attribute("identifyTime", {
  get = function() return t end,
  set = function(v)
    if v > 100 then return "too long" end
    t = v
  end,
})
`)
	ctx := testContext(t)
	identify := f.cluster(t, "identify")
	if err := identify.WriteAttributes(ctx, map[string]any{"identifyTime": 10}); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := identify.ReadAttributes(ctx, []string{"identifyTime"})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got["identifyTime"] != uint16(10) {
		t.Fatalf("identifyTime = %v", got["identifyTime"])
	}
	if err := identify.WriteAttributes(ctx, map[string]any{"identifyTime": 500}); !zcl.IsStatus(err, zcl.StatusFailure) {
		t.Fatalf("rejected write: err = %v", err)
	}
}

func TestAttachUnknownCommand(t *testing.T) {
	f := newFixture(t)
	ep, _ := f.server.Endpoint(1)
	b, _ := ep.NewBound("onOff")
	s, _ := f.manager.Save(&Script{Meta: Meta{Name: "bad", Enabled: true}, Code: `
zcl.handle("toggle", function() end)
zcl.handle("launch", function() end)
`})
	err := f.engine.Attach(s.ID, 1, b)
	if err == nil || !strings.Contains(err.Error(), "launch") {
		t.Fatalf("err = %v", err)
	}
	if _, ok := f.engine.Attached(1, "onOff"); ok {
		t.Fatal("failed script is attached")
	}
	// Nothing from the failed script reached the binding.
	if _, err := f.cluster(t, "onOff").Invoke(testContext(t), "toggle", nil); !zcl.IsStatus(err, zcl.StatusFailure) {
		t.Fatalf("toggle: err = %v", err)
	}
}

func TestAttachDisabled(t *testing.T) {
	f := newFixture(t)
	ep, _ := f.server.Endpoint(1)
	b, _ := ep.NewBound("onOff")
	s, _ := f.manager.Save(&Script{Meta: Meta{Name: "off"}, Code: toggleScript})
	if err := f.engine.Attach(s.ID, 1, b); err != nil {
		t.Fatal(err)
	}
	if _, ok := f.engine.Attached(1, "onOff"); ok {
		t.Fatal("disabled script attached")
	}
}

func TestAttachMissing(t *testing.T) {
	f := newFixture(t)
	ep, _ := f.server.Endpoint(1)
	b, _ := ep.NewBound("onOff")
	if err := f.engine.Attach("nope", 1, b); err == nil {
		t.Fatal("expected error")
	}
	if err := f.engine.Attach("../etc", 1, b); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("err = %v", err)
	}
}

func TestDetachStopsHandlers(t *testing.T) {
	f := newFixture(t)
	f.attach(t, "onOff", toggleScript)
	f.engine.Detach(1, "onOff")

	_, err := f.cluster(t, "onOff").Invoke(testContext(t), "toggle", nil)
	if !zcl.IsStatus(err, zcl.StatusFailure) {
		t.Fatalf("toggle after detach: err = %v", err)
	}
}

func TestEventHandler(t *testing.T) {
	f := newFixture(t)
	b := f.attach(t, "identify", `
zcl.value("identifyTime", 0)
zcl.on("attr.onOff", {endpoint = 1, cluster = "onOff"}, function(ev)
  if ev.value then zcl.value("identifyTime", 1) end
end)
zcl.on("attr.onOff", {endpoint = 2}, function(ev)
  zcl.value("identifyTime", 2)
end)
`)
	// A report from a peer's onOff server: attribute 0x0000, bool, true.
	report := []byte{0x18, 0x01, 0x0A, 0x00, 0x00, 0x10, 0x01}
	if err := f.server.HandleFrame(testContext(t), 1, 0x0006, report, zcl.Meta{}); err != nil {
		t.Fatal(err)
	}
	waitValue(t, b, "identifyTime", int64(1))
}

func TestScriptInvokesPeer(t *testing.T) {
	f := newFixture(t)
	cep, _ := f.client.Endpoint(1)
	peer, _ := cep.NewBound("identify")
	peer.Handle("identifyQuery", func(context.Context, *node.Request) (zcl.Args, error) {
		return zcl.Args{"timeout": 42}, nil
	})

	b := f.attach(t, "identify", `
zcl.value("identifyTime", 0)
zcl.after(0, function()
  local res, err = zcl.invoke(1, "identify", "identifyQuery")
  if err then
    zcl.value("identifyTime", 999)
    return
  end
  zcl.value("identifyTime", res.timeout)
end)
`)
	waitValue(t, b, "identifyTime", int64(42))
}

func TestRunLuaCode(t *testing.T) {
	f := newFixture(t)
	res := f.engine.RunLuaCode(`
zcl.log("hello")
system.log("warn", "careful")
zcl.on("toggle", function() end)
`, nil)
	if !res.OK {
		t.Fatalf("run failed: %s", res.Error)
	}
	if len(res.Logs) != 2 || res.Logs[0] != "hello" || res.Logs[1] != "[warn] careful" {
		t.Fatalf("logs = %q", res.Logs)
	}
	if res.Handlers != 1 {
		t.Fatalf("handlers = %d", res.Handlers)
	}
}

func TestRunLuaCodeChecksBinding(t *testing.T) {
	f := newFixture(t)
	res := f.engine.RunLuaCode(`zcl.handle("toggle", function() end)`, nil)
	if res.OK || !strings.Contains(res.Error, "no binding") {
		t.Fatalf("unbound run = %+v", res)
	}

	def := f.server.Catalog().Registry().Lookup("onOff")
	if res := f.engine.RunLuaCode(toggleScript, def); !res.OK {
		t.Fatalf("toggle script: %s", res.Error)
	}
	if res := f.engine.RunLuaCode(`zcl.attribute("brightness", {value = 1})`, def); res.OK {
		t.Fatal("unknown attribute accepted")
	}
}

func TestRunLuaCodeSandbox(t *testing.T) {
	f := newFixture(t)
	for _, code := range []string{`os.exit(1)`, `io.write("x")`, `require("socket")`} {
		if res := f.engine.RunLuaCode(code, nil); res.OK {
			t.Errorf("%s: expected failure", code)
		}
	}
}

func TestRunLuaCodeTimeout(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the run timeout")
	}
	f := newFixture(t)
	res := f.engine.RunLuaCode(`while true do end`, nil)
	if res.OK || !strings.Contains(res.Error, "timeout") {
		t.Fatalf("res = %+v", res)
	}
}

func TestRunScript(t *testing.T) {
	f := newFixture(t)
	if res := f.engine.RunScript("missing", nil); res.OK {
		t.Fatal("missing script ran")
	}
	s, _ := f.manager.Save(&Script{Meta: Meta{Name: "hello"}, Code: `zcl.log("hi")`})
	if res := f.engine.RunScript(s.ID, nil); !res.OK || len(res.Logs) != 1 {
		t.Fatalf("res = %+v", res)
	}
}

func TestMatchesHandler(t *testing.T) {
	tests := []struct {
		name    string
		handler luaEventHandler
		event   node.Event
		want    bool
	}{
		{"type only", luaEventHandler{eventType: "toggle"}, node.Event{Type: "toggle", Endpoint: 3, Cluster: "onOff"}, true},
		{"wrong type", luaEventHandler{eventType: "toggle"}, node.Event{Type: "on"}, false},
		{"endpoint match", luaEventHandler{eventType: "on", endpoint: 3}, node.Event{Type: "on", Endpoint: 3}, true},
		{"endpoint mismatch", luaEventHandler{eventType: "on", endpoint: 3}, node.Event{Type: "on", Endpoint: 4}, false},
		{"cluster mismatch", luaEventHandler{eventType: "on", cluster: "onOff"}, node.Event{Type: "on", Cluster: "levelControl"}, false},
		{"both filters", luaEventHandler{eventType: "on", endpoint: 1, cluster: "onOff"}, node.Event{Type: "on", Endpoint: 1, Cluster: "onOff"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesHandler(tt.handler, tt.event); got != tt.want {
				t.Errorf("matchesHandler() = %v, want %v", got, tt.want)
			}
		})
	}
}
