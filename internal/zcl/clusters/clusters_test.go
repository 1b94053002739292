package clusters

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"zigbee-go-zcl/internal/zcl"
)

func testRegistry(t *testing.T) *zcl.Registry {
	t.Helper()
	r := zcl.NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err := Register(r); err != nil {
		t.Fatal(err)
	}
	return r
}

func TestStandardDefinitionsBuild(t *testing.T) {
	r := testRegistry(t)
	if got, want := len(r.All()), len(Standard()); got != want {
		t.Errorf("registered %d clusters, want %d (duplicate id or name?)", got, want)
	}
	for _, name := range []string{"basic", "onOff", "levelControl", "colorControl", "doorLock", "iasZone", "metering"} {
		if r.Lookup(name) == nil {
			t.Errorf("cluster %s missing", name)
		}
	}
}

func TestMoveToLevelPayload(t *testing.T) {
	def := testRegistry(t).Lookup("levelControl")
	cmd, ok := def.Command("moveToLevel")
	if !ok {
		t.Fatal("moveToLevel missing")
	}
	b, err := cmd.ArgsType().Encode(zcl.Args{"level": 128, "transitionTime": 10})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte{0x80, 0x0A, 0x00}) {
		t.Errorf("payload %X, want 800A00", b)
	}
}

func TestDoorLockResponses(t *testing.T) {
	def := testRegistry(t).Lookup("doorLock")
	lock, _ := def.Command("lockDoor")
	if !lock.HasResponse() {
		t.Fatal("lockDoor should have a cluster-specific response")
	}
	if lock.Response.Name != "lockDoor.response" || lock.Response.Direction != zcl.DirectionToClient {
		t.Errorf("response = %s/%s", lock.Response.Name, lock.Response.Direction)
	}
}

func TestIKEAScenes(t *testing.T) {
	r := testRegistry(t)
	def, err := r.Register(IKEAScenes)
	if err != nil {
		t.Fatal(err)
	}
	if r.Lookup("scenes") != def {
		t.Error("IKEA definition should replace scenes")
	}
	step, ok := def.Command("ikeaSceneStep")
	if !ok || step.ManufacturerID != 0x117C {
		t.Fatalf("ikeaSceneStep = %+v", step)
	}
	if _, ok := def.Command("recallScene"); !ok {
		t.Error("standard commands should survive the merge")
	}
}

const vendorYAML = `
extends: onOff
attributes:
  - id: 0x8000
    name: childLock
    type: bool
    manufacturerId: 0x115F
    access: [read, write]
  - id: 0x8001
    name: backlight
    type: enum8
    values: {off: 0, normal: 1, inverted: 2}
commands:
  - id: 0xFD
    name: tuyaAction
    direction: toClient
    args:
      - {name: button, type: uint8}
      - {name: modes, type: map8, flags: [single, double, hold]}
      - {name: levels, type: array8, elem: {type: uint16}}
`

func TestLoadVendorDefinition(t *testing.T) {
	r := testRegistry(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tuya.yaml"), []byte(vendorYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadDir(r, dir, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		t.Fatal(err)
	}

	def := r.Lookup("onOff")
	if def.ID != 0x0006 {
		t.Errorf("extended cluster id = 0x%04X", def.ID)
	}
	lock, ok := def.Attribute("childLock")
	if !ok || lock.ManufacturerID != 0x115F || !lock.IsWritable() {
		t.Errorf("childLock = %+v", lock)
	}
	if bl, _ := def.Attribute("backlight"); bl.Access != zcl.AccessRead {
		t.Errorf("default access = %d", bl.Access)
	}
	if _, ok := def.Command("setOn"); !ok {
		t.Error("base commands lost")
	}
	cmd, ok := def.Command("tuyaAction")
	if !ok || cmd.Direction != zcl.DirectionToClient {
		t.Fatalf("tuyaAction = %+v", cmd)
	}
	b, err := cmd.ArgsType().Encode(zcl.Args{"button": 1, "modes": []string{"hold"}, "levels": []any{1, 2}})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte{0x01, 0x04, 0x02, 0x01, 0x00, 0x02, 0x00}) {
		t.Errorf("payload %X", b)
	}
}

func TestLoadDirMissing(t *testing.T) {
	r := testRegistry(t)
	if err := LoadDir(r, filepath.Join(t.TempDir(), "none"), slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		t.Errorf("missing dir: %v", err)
	}
}

func TestParseRejectsUnknownType(t *testing.T) {
	d, err := Parse([]byte("id: 0xFC00\nname: vendor\nattributes:\n  - {id: 1, name: x, type: uint9}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.ClusterDef(); err == nil {
		t.Error("want error for unknown type")
	}
}
