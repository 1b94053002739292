package zcl

import "fmt"

// Frame control bit positions.
const (
	FrameClusterSpecific        = 0
	FrameManufacturerSpecific   = 2
	FrameDirectionToClient      = 3
	FrameDisableDefaultResponse = 4
)

var frameControlType = Map8("clusterSpecific", "", "manufacturerSpecific", "directionToClient", "disableDefaultResponse")

var (
	standardHeader = NewStruct("zclStandardHeader",
		Field{Name: "frameControl", Type: frameControlType},
		Field{Name: "trxSequenceNumber", Type: Data8},
		Field{Name: "cmdId", Type: Data8},
		Field{Name: "data", Type: Buffer},
	)
	manufacturerHeader = NewStruct("zclMfgSpecificHeader",
		Field{Name: "frameControl", Type: frameControlType},
		Field{Name: "manufacturerId", Type: Uint16},
		Field{Name: "trxSequenceNumber", Type: Data8},
		Field{Name: "cmdId", Type: Data8},
		Field{Name: "data", Type: Buffer},
	)
)

// FrameControl is the first header byte.
type FrameControl struct {
	ClusterSpecific        bool
	ManufacturerSpecific   bool
	DirectionToClient      bool
	DisableDefaultResponse bool
}

func (fc FrameControl) bitmap() *Bitmap {
	b := &Bitmap{buf: make([]byte, 1), flags: frameControlType.Flags}
	b.SetBit(FrameClusterSpecific, fc.ClusterSpecific)
	b.SetBit(FrameManufacturerSpecific, fc.ManufacturerSpecific)
	b.SetBit(FrameDirectionToClient, fc.DirectionToClient)
	b.SetBit(FrameDisableDefaultResponse, fc.DisableDefaultResponse)
	return b
}

func frameControlFrom(b *Bitmap) FrameControl {
	return FrameControl{
		ClusterSpecific:        b.Bit(FrameClusterSpecific),
		ManufacturerSpecific:   b.Bit(FrameManufacturerSpecific),
		DirectionToClient:      b.Bit(FrameDirectionToClient),
		DisableDefaultResponse: b.Bit(FrameDisableDefaultResponse),
	}
}

// Byte returns the wire value of the frame control field.
func (fc FrameControl) Byte() byte { return fc.bitmap().buf[0] }

// Frame is a ZCL frame: header plus opaque payload.
type Frame struct {
	FrameControl
	ManufacturerID uint16 // only on the wire when ManufacturerSpecific is set
	Seq            uint8
	CommandID      uint8
	Data           []byte
}

// ParseFrame decodes the header of raw. The manufacturer-specific bit of the
// first byte selects which header layout applies.
func ParseFrame(raw []byte) (*Frame, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMalformedFrame)
	}
	hdr, need := standardHeader, 3
	if raw[0]&(1<<FrameManufacturerSpecific) != 0 {
		hdr, need = manufacturerHeader, 5
	}
	if len(raw) < need {
		return nil, fmt.Errorf("%w: %d byte header, need %d", ErrMalformedFrame, len(raw), need)
	}
	args, _ := hdr.Decode(raw)
	f := &Frame{
		FrameControl: frameControlFrom(args["frameControl"].(*Bitmap)),
		Seq:          args["trxSequenceNumber"].(uint8),
		CommandID:    args["cmdId"].(uint8),
		Data:         args["data"].([]byte),
	}
	if f.ManufacturerSpecific {
		f.ManufacturerID = args["manufacturerId"].(uint16)
	}
	return f, nil
}

// MarshalBinary returns the wire form of the frame.
func (f *Frame) MarshalBinary() ([]byte, error) {
	args := Args{
		"frameControl":      f.FrameControl.bitmap(),
		"trxSequenceNumber": f.Seq,
		"cmdId":             f.CommandID,
		"data":              f.Data,
	}
	if f.ManufacturerSpecific {
		args["manufacturerId"] = f.ManufacturerID
		return manufacturerHeader.Encode(args)
	}
	return standardHeader.Encode(args)
}

func (f *Frame) String() string {
	if f.ManufacturerSpecific {
		return fmt.Sprintf("fc=0x%02X mfr=0x%04X seq=%d cmd=0x%02X data=%X", f.FrameControl.Byte(), f.ManufacturerID, f.Seq, f.CommandID, f.Data)
	}
	return fmt.Sprintf("fc=0x%02X seq=%d cmd=0x%02X data=%X", f.FrameControl.Byte(), f.Seq, f.CommandID, f.Data)
}
