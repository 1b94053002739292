package transport

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"zigbee-go-zcl/internal/node"
	"zigbee-go-zcl/internal/zcl"
	"zigbee-go-zcl/internal/zcl/clusters"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// recorder is a Handler that forwards every inbound frame to a channel.
type recorder struct {
	ch chan Envelope
}

func newRecorder() *recorder { return &recorder{ch: make(chan Envelope, 16)} }

func (r *recorder) HandleFrame(_ context.Context, ep uint8, cluster uint16, frame []byte, meta zcl.Meta) error {
	r.ch <- Envelope{Endpoint: ep, ClusterID: cluster, Frame: append([]byte(nil), frame...), Meta: meta}
	return nil
}

func (r *recorder) next(t *testing.T) Envelope {
	t.Helper()
	select {
	case env := <-r.ch:
		return env
	case <-time.After(2 * time.Second):
		t.Fatal("no frame delivered")
		return Envelope{}
	}
}

func TestEnvelopeRoundTrip(t *testing.T) {
	group := uint16(0x1234)
	env := Envelope{
		Endpoint:  3,
		ClusterID: 0x0006,
		Meta:      zcl.Meta{GroupID: &group, SourceAddr: 0xABCD, LinkQuality: 200},
		Frame:     []byte{0x01, 0x07, 0x02},
	}
	data, _ := env.MarshalBinary()
	want := []byte{0x03, 0x06, 0x00, 0x01, 0xCD, 0xAB, 0xC8, 0x34, 0x12, 0x01, 0x07, 0x02}
	if !bytes.Equal(data, want) {
		t.Fatalf("marshal = %X, want %X", data, want)
	}

	var got Envelope
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	if got.Endpoint != 3 || got.ClusterID != 0x0006 || got.Meta.SourceAddr != 0xABCD || got.Meta.LinkQuality != 200 {
		t.Errorf("got %+v", got)
	}
	if got.Meta.GroupID == nil || *got.Meta.GroupID != 0x1234 {
		t.Errorf("group = %v", got.Meta.GroupID)
	}
	if !bytes.Equal(got.Frame, env.Frame) {
		t.Errorf("frame = %X", got.Frame)
	}
}

func TestEnvelopeTooShort(t *testing.T) {
	var env Envelope
	if err := env.UnmarshalBinary([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error")
	}
	if err := env.UnmarshalBinary([]byte{1, 6, 0, envelopeFlagGroup, 0, 0, 0, 0x34}); err == nil {
		t.Fatal("expected error for truncated group id")
	}
}

func TestLoopbackDelivers(t *testing.T) {
	a, b := NewLoopbackPair(testLogger())
	rec := newRecorder()
	b.Start(rec)
	a.Start(nil)
	defer a.Close()
	defer b.Close()

	if err := a.SendFrame(context.Background(), 1, 0x0006, []byte{0x01, 0x01, 0x02}); err != nil {
		t.Fatal(err)
	}
	env := rec.next(t)
	if env.Endpoint != 1 || env.ClusterID != 0x0006 || !bytes.Equal(env.Frame, []byte{0x01, 0x01, 0x02}) {
		t.Fatalf("got %+v", env)
	}
}

func TestLoopbackClosed(t *testing.T) {
	a, b := NewLoopbackPair(testLogger())
	a.Start(nil)
	b.Start(nil)
	b.Close()
	if err := a.SendFrame(context.Background(), 1, 6, []byte{0}); err != ErrClosed {
		t.Fatalf("err = %v", err)
	}
	a.Close()
	a.Close()
}

func testCatalog(t *testing.T) *node.Catalog {
	t.Helper()
	reg := zcl.NewRegistry(testLogger())
	if err := clusters.Register(reg); err != nil {
		t.Fatal(err)
	}
	return node.NewCatalog(reg)
}

// startPair wires two nodes over senders that also implement Start.
type startable interface {
	node.Sender
	Start(Handler)
}

func startPair(t *testing.T, sa, sb startable) (client *node.Node, server *node.Node) {
	t.Helper()
	cat := testCatalog(t)
	eps := []node.EndpointDescriptor{{ID: 1, InputClusters: []uint16{0x0000, 0x0006}}}
	client = node.New(sa, cat, eps, testLogger())
	server = node.New(sb, cat, eps, testLogger())
	sa.Start(client)
	sb.Start(server)
	return client, server
}

// exerciseToggle sends toggle from client to server and reads an attribute
// back, covering both a default response and a cluster-specific response.
func exerciseToggle(t *testing.T, client, server *node.Node) {
	t.Helper()
	ep, _ := server.Endpoint(1)
	bound, err := ep.NewBound("onOff")
	if err != nil {
		t.Fatal(err)
	}
	on := false
	bound.SetAccessor("onOff", node.Accessor{
		Get: func(context.Context) (any, error) { return on, nil },
	})
	bound.Handle("toggle", func(context.Context, *node.Request) (zcl.Args, error) {
		on = !on
		return nil, nil
	})

	cep, _ := client.Endpoint(1)
	onOff, _ := cep.Cluster("onOff")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
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
}

func TestLoopbackNodes(t *testing.T) {
	a, b := NewLoopbackPair(testLogger())
	defer a.Close()
	defer b.Close()
	client, server := startPair(t, a, b)
	exerciseToggle(t, client, server)
}
