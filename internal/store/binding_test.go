package store

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
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

// fixture is a client node talking to a server node over a loopback pair.
type fixture struct {
	client *node.Node
	server *node.Node
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	reg := zcl.NewRegistry(testLogger())
	if err := clusters.Register(reg); err != nil {
		t.Fatal(err)
	}
	cat := node.NewCatalog(reg)
	eps := []node.EndpointDescriptor{{ID: 1, InputClusters: []uint16{0x0006, 0x0402}}}
	a, b := transport.NewLoopbackPair(testLogger())
	f := &fixture{
		client: node.New(a, cat, eps, testLogger()),
		server: node.New(b, cat, eps, testLogger()),
	}
	a.Start(f.client)
	b.Start(f.server)
	t.Cleanup(func() {
		a.Close()
		b.Close()
	})
	return f
}

func (f *fixture) bind(t *testing.T, s Store, cluster string, defaults map[string]any) *Binding {
	t.Helper()
	ep, _ := f.server.Endpoint(1)
	b, err := ep.NewBound(cluster)
	if err != nil {
		t.Fatal(err)
	}
	bd, err := Bind(s, 1, b, defaults, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	return bd
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

func TestBindingServesDefaultsThenStoredValues(t *testing.T) {
	f := newFixture(t)
	s := newTestStore(t)
	bd := f.bind(t, s, "onOff", map[string]any{"onOff": false, "onTime": 0})
	onOff := f.cluster(t, "onOff")
	ctx := testContext(t)

	got, err := onOff.ReadAttributes(ctx, []string{"onOff", "onTime"})
	if err != nil {
		t.Fatal(err)
	}
	if got["onOff"] != false || got["onTime"] != uint16(0) {
		t.Fatalf("defaults = %v", got)
	}

	if err := bd.Set(ctx, "onOff", true); err != nil {
		t.Fatal(err)
	}
	got, err = onOff.ReadAttributes(ctx, []string{"onOff"})
	if err != nil {
		t.Fatal(err)
	}
	if got["onOff"] != true {
		t.Fatalf("onOff = %v", got["onOff"])
	}
	rec, err := s.GetAttribute(Key{Endpoint: 1, Cluster: "onOff", Attribute: "onOff"})
	if err != nil {
		t.Fatal(err)
	}
	if rec.DataType != zcl.Bool.ID || len(rec.Data) != 1 || rec.Data[0] != 1 {
		t.Errorf("stored %+v", rec)
	}
}

func TestBindingAcceptsWritesToWritableAttributes(t *testing.T) {
	f := newFixture(t)
	s := newTestStore(t)
	f.bind(t, s, "onOff", map[string]any{"onOff": false, "onTime": 0})
	onOff := f.cluster(t, "onOff")
	ctx := testContext(t)

	if err := onOff.WriteAttributes(ctx, map[string]any{"onTime": 30}); err != nil {
		t.Fatal(err)
	}
	rec, err := s.GetAttribute(Key{Endpoint: 1, Cluster: "onOff", Attribute: "onTime"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Data) != 2 || rec.Data[0] != 30 || rec.Data[1] != 0 {
		t.Errorf("stored %X", rec.Data)
	}

	err = onOff.WriteAttributes(ctx, map[string]any{"onOff": true})
	if !zcl.IsStatus(err, zcl.StatusFailure) {
		t.Fatalf("writing a read-only attribute: err = %v", err)
	}
}

func TestBindingRejectsBadDefaults(t *testing.T) {
	f := newFixture(t)
	s := newTestStore(t)
	ep, _ := f.server.Endpoint(1)
	b, _ := ep.NewBound("onOff")
	if _, err := Bind(s, 1, b, map[string]any{"brightness": 1}, testLogger()); err == nil {
		t.Error("unknown attribute accepted")
	}
	if _, err := Bind(s, 1, b, map[string]any{"onTime": "soon"}, testLogger()); err == nil {
		t.Error("bad default accepted")
	}
}

func TestBindingSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "node.db")
	s, err := NewBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	ctx := testContext(t)
	bd := newFixture(t).bind(t, s, "onOff", map[string]any{"onTime": 0})
	if err := bd.Set(ctx, "onTime", 120); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = NewBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	f := newFixture(t)
	f.bind(t, s, "onOff", map[string]any{"onTime": 0})
	got, err := f.cluster(t, "onOff").ReadAttributes(ctx, []string{"onTime"})
	if err != nil {
		t.Fatal(err)
	}
	if got["onTime"] != uint16(120) {
		t.Fatalf("onTime = %v", got["onTime"])
	}
}

func TestBindingReportingConfiguration(t *testing.T) {
	f := newFixture(t)
	s := newTestStore(t)
	f.bind(t, s, "temperatureMeasurement", map[string]any{"measuredValue": 2150})
	temp := f.cluster(t, "temperatureMeasurement")
	ctx := testContext(t)

	err := temp.ConfigureReporting(ctx, map[string]node.ReportingConfig{
		"measuredValue": {MinInterval: 10, MaxInterval: 300, MinChange: 50},
	})
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := temp.ReadReportingConfiguration(ctx, []string{"measuredValue", "minMeasuredValue"})
	if err != nil {
		t.Fatal(err)
	}
	mv := cfg["measuredValue"]
	if mv["status"] != "SUCCESS" || mv["minInterval"] != uint16(10) || mv["maxInterval"] != uint16(300) {
		t.Fatalf("measuredValue = %v", mv)
	}
	if mv["minChange"] != int16(50) {
		t.Errorf("minChange = %v (%T)", mv["minChange"], mv["minChange"])
	}
	if cfg["minMeasuredValue"]["status"] != "UNREPORTABLE_ATTRIBUTE" {
		t.Errorf("minMeasuredValue = %v", cfg["minMeasuredValue"])
	}

	err = temp.ConfigureReporting(ctx, map[string]node.ReportingConfig{
		"tolerance": {MinInterval: 1, MaxInterval: 60},
	})
	if !zcl.IsStatus(err, zcl.StatusUnreportableAttribute) {
		t.Fatalf("err = %v", err)
	}
}
