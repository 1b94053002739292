package zcl

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func onOffDef() ClusterDef {
	return ClusterDef{
		ID:   0x0006,
		Name: "onOff",
		Attributes: []AttributeDef{
			{ID: 0x0000, Name: "onOff", Type: Bool, Access: AccessRead | AccessReport},
			{ID: 0x4003, Name: "startUpOnOff", Type: Enum8(map[string]uint64{"off": 0, "on": 1, "toggle": 2, "previous": 0xFF}), Access: AccessRead | AccessWrite},
		},
		Commands: []CommandDef{
			{ID: 0x00, Name: "setOff", Direction: DirectionToServer, Response: &CommandDef{}},
			{ID: 0x01, Name: "setOn", Direction: DirectionToServer, Response: &CommandDef{}},
			{ID: 0x02, Name: "toggle", Direction: DirectionToServer, Response: &CommandDef{}},
		},
	}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry(testLogger())
	def, err := r.Register(onOffDef())
	if err != nil {
		t.Fatal(err)
	}
	if r.Get(0x0006) != def || r.Lookup("onOff") != def {
		t.Fatal("lookups disagree with the registered definition")
	}
	id, err := r.ClusterID("onOff")
	if err != nil || id != 0x0006 {
		t.Errorf("ClusterID = 0x%04X, %v", id, err)
	}
	name, err := r.ClusterName(0x0006)
	if err != nil || name != "onOff" {
		t.Errorf("ClusterName = %q, %v", name, err)
	}
	if _, err := r.ClusterID("nope"); !errors.Is(err, ErrUnknownCluster) {
		t.Errorf("unknown name: err = %v", err)
	}
	if _, err := r.ClusterName(0xFC00); !errors.Is(err, ErrUnknownCluster) {
		t.Errorf("unknown id: err = %v", err)
	}
}

func TestRegistryLastRegistrationWins(t *testing.T) {
	r := NewRegistry(testLogger())
	r.MustRegister(onOffDef())

	vendor := onOffDef()
	vendor.Attributes = append(vendor.Attributes, AttributeDef{ID: 0x8000, Name: "childLock", Type: Bool, ManufacturerID: 0x115F, Access: AccessRead | AccessWrite})
	r.MustRegister(vendor)

	def := r.Lookup("onOff")
	if _, ok := def.Attribute("childLock"); !ok {
		t.Error("second registration should replace the first")
	}

	r.MustRegister(ClusterDef{ID: 0xFC06, Name: "onOff"})
	if r.Get(0x0006) != nil {
		t.Error("a name registered under a new id should drop the old id")
	}
	if len(r.All()) != 1 {
		t.Errorf("All() = %d clusters, want 1", len(r.All()))
	}
}

func TestRegisterCopiesDefinition(t *testing.T) {
	r := NewRegistry(testLogger())
	c := onOffDef()
	def := r.MustRegister(c)
	c.Attributes[0].Name = "changed"
	if _, ok := def.Attribute("onOff"); !ok {
		t.Error("registered definition must not alias the caller's slices")
	}
}

func TestRegisterRejectsUnnamedCluster(t *testing.T) {
	r := NewRegistry(testLogger())
	if _, err := r.Register(ClusterDef{ID: 1}); err == nil {
		t.Error("want error for cluster without a name")
	}
}

func TestBuildMergesGlobals(t *testing.T) {
	def := NewRegistry(testLogger()).MustRegister(onOffDef())

	if a, ok := def.Attribute("clusterRevision"); !ok || a.ID != AttrClusterRevision {
		t.Error("global attribute clusterRevision missing")
	}
	read, ok := def.Command(CmdReadAttributes)
	if !ok || !read.Global {
		t.Fatal("readAttributes missing or not global")
	}
	res, ok := def.Command(CmdReadAttributes + ResponseSuffix)
	if !ok {
		t.Fatal("readAttributes.response missing")
	}
	if !res.IsResponse || res.Request != read || res.ID != FoundationReadAttributesResponse || !res.Global {
		t.Errorf("response descriptor = %+v", res)
	}
	if !read.HasResponse() {
		t.Error("readAttributes has a cluster-specific response")
	}

	setOn, _ := def.Command("setOn")
	if setOn.HasResponse() {
		t.Error("setOn is answered by a default response only")
	}
	if setOn.Response.Direction != DirectionToClient {
		t.Errorf("response direction = %q", setOn.Response.Direction)
	}

	// 0x01 is both setOn and the read attributes response.
	var names []string
	for _, c := range def.CommandsByID(0x01) {
		names = append(names, c.Name)
	}
	if len(names) < 2 {
		t.Errorf("CommandsByID(0x01) = %v", names)
	}
}

func TestBuildClusterCommandReplacesGlobal(t *testing.T) {
	c := onOffDef()
	c.Commands = append(c.Commands, CommandDef{
		ID: FoundationDiscoverAttributes, Name: CmdDiscoverAttributes,
		Args: []Field{{Name: "startValue", Type: Uint16}},
	})
	def := NewRegistry(testLogger()).MustRegister(c)
	cmd, _ := def.Command(CmdDiscoverAttributes)
	if cmd.Global || len(cmd.Args) != 1 {
		t.Errorf("discoverAttributes = %+v", cmd)
	}
	if _, ok := def.Command(CmdDiscoverAttributes + ResponseSuffix); ok {
		t.Error("the replaced global response should be gone")
	}
}

func TestMerge(t *testing.T) {
	base := onOffDef()
	base.Merge(&ClusterDef{
		Attributes: []AttributeDef{{ID: 0x0000, Name: "onOff", Type: Uint8, Access: AccessRead}},
		Commands:   []CommandDef{{ID: 0x40, Name: "offWithEffect", Direction: DirectionToServer}},
	})
	if base.Built() {
		t.Error("merged definition must be rebuilt")
	}
	def := NewRegistry(testLogger()).MustRegister(base)
	if a, _ := def.Attribute("onOff"); a.Type != Uint8 {
		t.Errorf("onOff type = %s, want uint8", a.Type)
	}
	if _, ok := def.Command("offWithEffect"); !ok {
		t.Error("merged command missing")
	}
}
