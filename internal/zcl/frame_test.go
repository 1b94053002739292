package zcl

import (
	"bytes"
	"errors"
	"testing"
)

func TestFrameStandard(t *testing.T) {
	f := &Frame{FrameControl: FrameControl{ClusterSpecific: true}, Seq: 7, CommandID: 0x01}
	b, err := f.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte{0x01, 0x07, 0x01}) {
		t.Errorf("encoded %X, want 010701", b)
	}

	got, err := ParseFrame([]byte{0x18, 0x2A, 0x0B, 0x02, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	if got.ClusterSpecific || !got.DirectionToClient || !got.DisableDefaultResponse {
		t.Errorf("frame control = %+v", got.FrameControl)
	}
	if got.Seq != 0x2A || got.CommandID != 0x0B || !bytes.Equal(got.Data, []byte{0x02, 0x00}) {
		t.Errorf("frame = %v", got)
	}
}

func TestFrameManufacturerSpecific(t *testing.T) {
	f := &Frame{
		FrameControl:   FrameControl{ClusterSpecific: true, ManufacturerSpecific: true},
		ManufacturerID: 0x117C,
		Seq:            3,
		CommandID:      0x07,
		Data:           []byte{0xAA},
	}
	b, err := f.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x05, 0x7C, 0x11, 0x03, 0x07, 0xAA}
	if !bytes.Equal(b, want) {
		t.Fatalf("encoded %X, want %X", b, want)
	}
	got, err := ParseFrame(b)
	if err != nil {
		t.Fatal(err)
	}
	if got.ManufacturerID != 0x117C || got.Seq != 3 || got.CommandID != 7 {
		t.Errorf("frame = %v", got)
	}
}

func TestParseFrameTooShort(t *testing.T) {
	for _, raw := range [][]byte{nil, {0x01, 0x02}, {0x04, 0x01, 0x02, 0x03}} {
		if _, err := ParseFrame(raw); !errors.Is(err, ErrMalformedFrame) {
			t.Errorf("ParseFrame(%X): err = %v", raw, err)
		}
	}
}
