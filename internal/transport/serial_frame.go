package transport

// Serial link frame codec. The layout follows the ZBOSS NCP low-level
// header: signature, size, type, flags and a CRC8 over the header, then a
// CRC16 over the body. The body is one Envelope.

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	linkSig0       = 0xDE
	linkSig1       = 0xAD
	linkHeaderSize = 7 // sig(2) + size(2) + type(1) + flags(1) + crc8(1)
	linkCRCSize    = 2
	linkType       = 0x06
	linkMaxSize    = 0x1000
)

// Link flags.
const (
	linkFlagACK         = 0x01
	linkFlagRetrans     = 0x02
	linkFlagPktSeqMask  = 0x0C
	linkFlagPktSeqShift = 2
	linkFlagAckSeqMask  = 0x30
	linkFlagAckSeqShift = 4
	linkFlagFirstFrag   = 0x40
	linkFlagLastFrag    = 0x80
)

var errLinkFrame = errors.New("transport: bad link frame")

type linkFrame struct {
	flags uint8
	body  []byte
}

func (f *linkFrame) isACK() bool   { return f.flags&linkFlagACK != 0 }
func (f *linkFrame) pktSeq() uint8 { return (f.flags >> linkFlagPktSeqShift) & 0x03 }
func (f *linkFrame) ackSeq() uint8 { return (f.flags >> linkFlagAckSeqShift) & 0x03 }
func (f *linkFrame) retrans() bool { return f.flags&linkFlagRetrans != 0 }

// CRC-8/KOOP: reflected poly 0xB2, init 0xFF, xorout 0xFF.
var crc8Table [256]uint8

// CRC-16/KERMIT: reflected poly 0x8408, init 0.
var crc16Table [256]uint16

func init() {
	for i := 0; i < 256; i++ {
		c8 := uint8(i)
		c16 := uint16(i)
		for bit := 0; bit < 8; bit++ {
			if c8&1 != 0 {
				c8 = (c8 >> 1) ^ 0xB2
			} else {
				c8 >>= 1
			}
			if c16&1 != 0 {
				c16 = (c16 >> 1) ^ 0x8408
			} else {
				c16 >>= 1
			}
		}
		crc8Table[i] = c8
		crc16Table[i] = c16
	}
}

func linkCRC8(data []byte) uint8 {
	crc := uint8(0xFF)
	for _, b := range data {
		crc = crc8Table[crc^b]
	}
	return crc ^ 0xFF
}

func linkCRC16(data []byte) uint16 {
	crc := uint16(0)
	for _, b := range data {
		crc = (crc >> 8) ^ crc16Table[(crc^uint16(b))&0xFF]
	}
	return crc
}

func encodeLinkData(pktSeq uint8, retrans bool, body []byte) []byte {
	size := uint16(5 + linkCRCSize + len(body))
	flags := uint8(linkFlagFirstFrag|linkFlagLastFrag) | (pktSeq<<linkFlagPktSeqShift)&linkFlagPktSeqMask
	if retrans {
		flags |= linkFlagRetrans
	}
	frame := make([]byte, 2+int(size))
	frame[0], frame[1] = linkSig0, linkSig1
	binary.LittleEndian.PutUint16(frame[2:4], size)
	frame[4] = linkType
	frame[5] = flags
	frame[6] = linkCRC8(frame[2:6])
	binary.LittleEndian.PutUint16(frame[7:9], linkCRC16(body))
	copy(frame[9:], body)
	return frame
}

func encodeLinkACK(ackSeq uint8) []byte {
	frame := make([]byte, linkHeaderSize)
	frame[0], frame[1] = linkSig0, linkSig1
	binary.LittleEndian.PutUint16(frame[2:4], 5)
	frame[4] = linkType
	frame[5] = linkFlagACK | (ackSeq<<linkFlagAckSeqShift)&linkFlagAckSeqMask
	frame[6] = linkCRC8(frame[2:6])
	return frame
}

// readLinkFrame reads the next frame, skipping bytes up to a signature.
// Header corruption is reported after the bad header has been consumed, so
// the next call resynchronises.
func readLinkFrame(r *bufio.Reader) (*linkFrame, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		if b != linkSig0 {
			continue
		}
		next, err := r.Peek(1)
		if err != nil {
			return nil, err
		}
		if next[0] == linkSig1 {
			r.ReadByte()
			break
		}
	}

	var hdr [5]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}
	size := binary.LittleEndian.Uint16(hdr[0:2])
	if got := linkCRC8(hdr[:4]); got != hdr[4] {
		return nil, fmt.Errorf("%w: header crc 0x%02X, want 0x%02X", errLinkFrame, hdr[4], got)
	}
	if hdr[2] != linkType {
		return nil, fmt.Errorf("%w: type 0x%02X", errLinkFrame, hdr[2])
	}
	if size < 5 || size > linkMaxSize {
		return nil, fmt.Errorf("%w: size %d", errLinkFrame, size)
	}
	f := &linkFrame{flags: hdr[3]}
	if f.isACK() {
		return f, nil
	}

	body := make([]byte, int(size)-5)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, err
	}
	if len(body) < linkCRCSize {
		return nil, fmt.Errorf("%w: body too short for crc", errLinkFrame)
	}
	want := binary.LittleEndian.Uint16(body[:2])
	f.body = body[2:]
	if got := linkCRC16(f.body); got != want {
		return nil, fmt.Errorf("%w: body crc 0x%04X, want 0x%04X", errLinkFrame, want, got)
	}
	return f, nil
}
