package node

import (
	"context"
	"errors"
	"testing"
	"time"

	"zigbee-go-zcl/internal/zcl"
	"zigbee-go-zcl/internal/zcl/clusters"
)

func TestToggleGetsDefaultResponse(t *testing.T) {
	a, b, la, lb := newPair(t, testCatalog(t), 0x0006)
	var toggled int
	mustBind(t, b, "onOff").Handle("toggle", func(context.Context, *Request) (zcl.Args, error) {
		toggled++
		return nil, nil
	})

	if _, err := mustCluster(t, a, "onOff").Invoke(context.Background(), "toggle", nil); err != nil {
		t.Fatal(err)
	}
	if toggled != 1 || len(la.sent()) != 1 {
		t.Fatalf("toggled %d, sent %d", toggled, len(la.sent()))
	}
	replies := lb.sent()
	if len(replies) != 1 {
		t.Fatalf("receiver sent %d frames", len(replies))
	}
	f, _ := zcl.ParseFrame(replies[0].data)
	if f.CommandID != zcl.FoundationDefaultResponse || f.Data[0] != 0x02 || f.Data[1] != 0x00 {
		t.Fatalf("reply = %s", f)
	}
	if !f.DisableDefaultResponse || !f.DirectionToClient {
		t.Fatalf("reply frame control = 0x%02X", f.FrameControl.Byte())
	}
}

func TestMissingHandlerGetsFailure(t *testing.T) {
	a, b, _, lb := newPair(t, testCatalog(t), 0x0006)
	mustBind(t, b, "onOff")

	_, err := mustCluster(t, a, "onOff").Invoke(context.Background(), "toggle", nil)
	if !zcl.IsStatus(err, zcl.StatusFailure) {
		t.Fatalf("err = %v", err)
	}
	f, _ := zcl.ParseFrame(lb.sent()[0].data)
	if f.CommandID != zcl.FoundationDefaultResponse || f.Data[1] != 0x01 {
		t.Fatalf("reply = %s", f)
	}
}

func TestHandlerErrorWithDisableDefaultResponseStillFails(t *testing.T) {
	_, b, _, lb := newPair(t, testCatalog(t), 0x0006)
	mustBind(t, b, "onOff").Handle("toggle", func(context.Context, *Request) (zcl.Args, error) {
		return nil, errors.New("relay stuck")
	})
	b.HandleFrame(context.Background(), 1, 0x0006, []byte{0x11, 0x05, 0x02}, zcl.Meta{})
	replies := lb.sent()
	if len(replies) != 1 {
		t.Fatalf("receiver sent %d frames", len(replies))
	}
	if want := []byte{0x18, 0x05, 0x0B, 0x02, 0x01}; string(replies[0].data) != string(want) {
		t.Fatalf("reply = %X, want %X", replies[0].data, want)
	}
}

func TestSuccessWithDisableDefaultResponseIsSilent(t *testing.T) {
	_, b, _, lb := newPair(t, testCatalog(t), 0x0006)
	mustBind(t, b, "onOff").Handle("setOn", func(context.Context, *Request) (zcl.Args, error) { return nil, nil })
	b.HandleFrame(context.Background(), 1, 0x0006, []byte{0x11, 0x05, 0x01}, zcl.Meta{})
	if len(lb.sent()) != 0 {
		t.Fatalf("receiver sent %X", lb.sent()[0].data)
	}
}

func TestGroupFrameNotAnswered(t *testing.T) {
	_, b, _, lb := newPair(t, testCatalog(t), 0x0006)
	var toggled int
	mustBind(t, b, "onOff").Handle("toggle", func(context.Context, *Request) (zcl.Args, error) {
		toggled++
		return nil, nil
	})
	group := uint16(1)
	if err := b.HandleFrame(context.Background(), 1, 0x0006, []byte{0x01, 0x01, 0x02}, zcl.Meta{GroupID: &group}); err != nil {
		t.Fatal(err)
	}
	if toggled != 1 {
		t.Fatalf("toggled = %d", toggled)
	}
	if len(lb.sent()) != 0 {
		t.Fatalf("answered a group frame")
	}
}

func TestUnboundClusterFails(t *testing.T) {
	a, _, _, _ := newPair(t, testCatalog(t), 0x0000)
	err := mustCluster(t, a, "basic").ConfigureReporting(context.Background(), map[string]ReportingConfig{
		"zclVersion": {MinInterval: 1234, MaxInterval: 4321},
	})
	if !zcl.IsStatus(err, zcl.StatusFailure) {
		t.Fatalf("err = %v", err)
	}
}

func TestUnknownClusterFrameFails(t *testing.T) {
	_, b, _, lb := newPair(t, testCatalog(t), 0x0006)
	b.HandleFrame(context.Background(), 1, 0xFC99, []byte{0x01, 0x03, 0x00}, zcl.Meta{})
	replies := lb.sent()
	if len(replies) != 1 || replies[0].data[2] != 0x0B || replies[0].data[4] != 0x01 {
		t.Fatalf("replies = %v", replies)
	}
}

func TestTimeoutStartsAfterSend(t *testing.T) {
	a, b, la, _ := newPair(t, testCatalog(t), 0x0006)
	mustBind(t, b, "onOff").Handle("toggle", func(context.Context, *Request) (zcl.Args, error) { return nil, nil })
	la.delay = 60 * time.Millisecond

	_, err := mustCluster(t, a, "onOff").Invoke(context.Background(), "toggle", nil, WithTimeout(30*time.Millisecond))
	if err != nil {
		t.Fatalf("err = %v", err)
	}
}

func TestUnbind(t *testing.T) {
	a, b, _, _ := newPair(t, testCatalog(t), 0x0006)
	mustBind(t, b, "onOff").Handle("toggle", func(context.Context, *Request) (zcl.Args, error) { return nil, nil })
	ep, _ := b.Endpoint(1)
	ep.Unbind("onOff")
	if _, ok := ep.Binding("onOff"); ok {
		t.Fatal("binding still present")
	}
	if _, err := mustCluster(t, a, "onOff").Invoke(context.Background(), "toggle", nil); !zcl.IsStatus(err, zcl.StatusFailure) {
		t.Fatalf("err = %v", err)
	}
}

func TestBindingsSortedByID(t *testing.T) {
	n, _ := newRecorded(t, 0x0006)
	ep, _ := n.Endpoint(1)
	for _, name := range []string{"onOff", "basic", "identify"} {
		if _, err := ep.NewBound(name); err != nil {
			t.Fatal(err)
		}
	}
	var got []uint16
	for _, b := range ep.Bindings() {
		got = append(got, b.Def().ID)
	}
	if len(got) != 3 || got[0] != 0x0000 || got[1] != 0x0003 || got[2] != 0x0006 {
		t.Fatalf("bindings = %04X", got)
	}
}

func TestBindRejectsMismatchedCluster(t *testing.T) {
	n, _ := newRecorded(t, 0x0006)
	ep, _ := n.Endpoint(1)
	onOff := n.Catalog().Registry().Lookup("onOff")
	if err := ep.Bind("basic", NewBound(onOff, testLogger())); err == nil {
		t.Fatal("bound onOff as basic")
	}
	if err := ep.Bind("nope", NewBound(onOff, testLogger())); !errors.Is(err, zcl.ErrUnknownCluster) {
		t.Fatalf("err = %v", err)
	}
}

func TestHasInputCluster(t *testing.T) {
	n, _ := newRecorded(t, 0x0000, 0x0006)
	ep, _ := n.Endpoint(1)
	if !ep.HasInputCluster("onOff") || !ep.HasInputCluster("basic") {
		t.Fatal("declared input cluster missing")
	}
	if ep.HasInputCluster("levelControl") || ep.HasInputCluster("nope") {
		t.Fatal("undeclared input cluster reported")
	}
	if len(ep.Clusters()) != 2 {
		t.Fatalf("clusters = %d", len(ep.Clusters()))
	}
}

// loopback returns a node that receives its own frames.
func loopback(t *testing.T, cat *Catalog, inputs ...uint16) *Node {
	t.Helper()
	l := &link{}
	n := New(l, cat, []EndpointDescriptor{{ID: 1, InputClusters: inputs}}, testLogger())
	l.peer = n
	return n
}

func TestIASZoneNotificationEvent(t *testing.T) {
	n := loopback(t, testCatalog(t), 0x0500)
	zone := mustCluster(t, n, "iasZone")

	var got []Event
	zone.On("zoneStatusChangeNotification", func(ev Event) { got = append(got, ev) })

	_, err := zone.Invoke(context.Background(), "zoneStatusChangeNotification", zcl.Args{
		"zoneStatus": []string{"alarm1", "tamper"},
		"zoneId":     234,
	}, WithoutResponse())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("events = %d", len(got))
	}
	status := got[0].Args["zoneStatus"].(*zcl.Bitmap)
	if !status.Has("alarm1") || !status.Has("tamper") || status.Has("alarm2") {
		t.Errorf("zoneStatus = %v", status)
	}
	if got[0].Args["zoneId"] != uint8(234) {
		t.Errorf("zoneId = %v", got[0].Args["zoneId"])
	}
}

func TestIASZoneEnrollResponseGoesToBinding(t *testing.T) {
	n := loopback(t, testCatalog(t), 0x0500)
	ep, _ := n.Endpoint(1)
	b, _ := ep.NewBound("iasZone")
	var enrolled, notified int
	b.Handle("zoneEnrollResponse", func(_ context.Context, req *Request) (zcl.Args, error) {
		enrolled++
		return nil, nil
	})
	b.Handle("zoneStatusChangeNotification", func(context.Context, *Request) (zcl.Args, error) {
		notified++
		return nil, nil
	})

	_, err := mustCluster(t, n, "iasZone").Invoke(context.Background(), "zoneEnrollResponse",
		zcl.Args{"enrollResponseCode": "success", "zoneId": 1})
	if err != nil {
		t.Fatal(err)
	}
	if enrolled != 1 || notified != 0 {
		t.Fatalf("enrolled %d, notified %d", enrolled, notified)
	}
}

// mfrCatalog registers IKEA scenes plus attributes from two manufacturers.
func mfrCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat := testCatalog(t)
	def := clusters.IKEAScenes.DeepCopy()
	def.Merge(&zcl.ClusterDef{Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "sceneCount", Type: zcl.Uint8, ManufacturerID: 0x1234},
		{ID: 0x0001, Name: "currentScene", Type: zcl.Uint8, ManufacturerID: 0x4321},
		{ID: 0x0002, Name: "currentGroup", Type: zcl.Uint16, ManufacturerID: 0x4321},
	}})
	if _, err := cat.Registry().Register(*def); err != nil {
		t.Fatal(err)
	}
	return cat
}

func TestManufacturerSpecificAttributes(t *testing.T) {
	a, b, _, _ := newPair(t, mfrCatalog(t), 0x0005)
	var frames []*zcl.Frame
	mustBind(t, b, "scenes").Handle(zcl.CmdReadAttributes, func(_ context.Context, req *Request) (zcl.Args, error) {
		frames = append(frames, req.Frame)
		return zcl.Args{"attributes": []byte{}}, nil
	})
	c := mustCluster(t, a, "scenes")
	ctx := context.Background()

	if _, err := c.ReadAttributes(ctx, []string{"sceneCount"}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ReadAttributes(ctx, []string{"currentScene", "currentGroup"}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ReadAttributes(ctx, []string{"sceneValid", "currentGroup"}); err != nil {
		t.Fatal(err)
	}
	if len(frames) != 3 {
		t.Fatalf("frames = %d", len(frames))
	}
	if !frames[0].ManufacturerSpecific || frames[0].ManufacturerID != 0x1234 {
		t.Errorf("first frame %s", frames[0])
	}
	if !frames[1].ManufacturerSpecific || frames[1].ManufacturerID != 0x4321 {
		t.Errorf("second frame %s", frames[1])
	}
	if frames[2].ManufacturerSpecific {
		t.Errorf("third frame %s", frames[2])
	}

	_, err := c.ReadAttributes(ctx, []string{"sceneCount", "currentScene"})
	if !errors.Is(err, zcl.ErrManufacturerMismatch) {
		t.Fatalf("err = %v", err)
	}
	err = c.WriteAttributes(ctx, map[string]any{"sceneCount": 1, "currentScene": 2})
	if !errors.Is(err, zcl.ErrManufacturerMismatch) {
		t.Fatalf("err = %v", err)
	}
	if len(frames) != 3 {
		t.Fatal("mismatched request was sent")
	}
}

func TestManufacturerSpecificCommands(t *testing.T) {
	a, b, _, _ := newPair(t, mfrCatalog(t), 0x0005)
	var got zcl.Args
	var frame *zcl.Frame
	mustBind(t, b, "scenes").Handle("ikeaSceneStep", func(_ context.Context, req *Request) (zcl.Args, error) {
		got, frame = req.Args, req.Frame
		return nil, nil
	})
	_, err := mustCluster(t, a, "scenes").Invoke(context.Background(), "ikeaSceneStep",
		zcl.Args{"mode": "up", "stepSize": 1, "transitionTime": 13})
	if err != nil {
		t.Fatal(err)
	}
	if got["mode"] != "up" || got["stepSize"] != uint8(1) || got["transitionTime"] != uint16(13) {
		t.Fatalf("args = %v", got)
	}
	if !frame.ClusterSpecific || !frame.ManufacturerSpecific || frame.ManufacturerID != 0x117C {
		t.Fatalf("frame = %s", frame)
	}
}

func TestOverrideWrapsGeneric(t *testing.T) {
	cat := mfrCatalog(t)
	a, b, _, _ := newPair(t, cat, 0x0005)
	var got zcl.Args
	mustBind(t, b, "scenes").Handle("ikeaSceneMoveStop", func(_ context.Context, req *Request) (zcl.Args, error) {
		got = req.Args
		return nil, nil
	})
	cat.Override("scenes", "ikeaSceneMoveStop", func(ctx context.Context, c *Cluster, args zcl.Args, super InvokeFunc, opts ...Option) (zcl.Args, error) {
		return super(ctx, c, zcl.Args{"duration": 1000}, opts...)
	})

	c := mustCluster(t, a, "scenes")
	if _, err := c.Invoke(context.Background(), "ikeaSceneMoveStop", nil); err != nil {
		t.Fatal(err)
	}
	if got["duration"] != uint16(1000) {
		t.Fatalf("args = %v", got)
	}

	cat.RemoveOverride("scenes", "ikeaSceneMoveStop")
	if _, err := c.Invoke(context.Background(), "ikeaSceneMoveStop", zcl.Args{"duration": 5}); err != nil {
		t.Fatal(err)
	}
	if got["duration"] != uint16(5) {
		t.Fatalf("args = %v", got)
	}
}

func TestOverrideWithoutGeneric(t *testing.T) {
	n, _ := newRecorded(t, 0x0006)
	cat := n.Catalog()
	cat.Override("onOff", "blink", func(ctx context.Context, c *Cluster, args zcl.Args, super InvokeFunc, opts ...Option) (zcl.Args, error) {
		if _, err := super(ctx, c, args, opts...); !errors.Is(err, zcl.ErrUnknownCommand) {
			t.Errorf("super err = %v", err)
		}
		return zcl.Args{"blinked": true}, nil
	})
	res, err := mustCluster(t, n, "onOff").Invoke(context.Background(), "blink", nil)
	if err != nil || res["blinked"] != true {
		t.Fatalf("got %v, %v", res, err)
	}
}

func TestClientHandlerAnswersCommand(t *testing.T) {
	a, b, _, _ := newPair(t, testCatalog(t), 0x0500)
	var enrolled zcl.Args
	mustCluster(t, b, "iasZone").Handle("zoneEnrollRequest", func(_ context.Context, req *Request) (zcl.Args, error) {
		enrolled = req.Args
		return nil, nil
	})
	_, err := mustCluster(t, a, "iasZone").Invoke(context.Background(), "zoneEnrollRequest",
		zcl.Args{"manufacturerCode": 0x1234}, WithoutResponse())
	if err != nil {
		t.Fatal(err)
	}
	if enrolled["manufacturerCode"] != uint16(0x1234) {
		t.Fatalf("args = %v", enrolled)
	}
}

func TestClientDiscoverCommandsGenerated(t *testing.T) {
	n, l := newRecorded(t, 0x0006)
	frame := []byte{0x18, 0x09, 0x13, 0x00, 0xFF}
	if err := n.HandleFrame(context.Background(), 1, 0x0006, frame, zcl.Meta{}); err != nil {
		t.Fatal(err)
	}
	reply := receive(t, l.out)
	f, _ := zcl.ParseFrame(reply.data)
	if f.CommandID != zcl.FoundationDiscoverCommandsGenResp || f.DirectionToClient {
		t.Fatalf("reply = %s", f)
	}
	// lastResponse, then setOff setOn toggle offWithEffect onWithRecallGlobalScene onWithTimedOff
	if want := []byte{0x01, 0x00, 0x01, 0x02, 0x40, 0x41, 0x42}; string(f.Data) != string(want) {
		t.Fatalf("data = %X, want %X", f.Data, want)
	}
}
