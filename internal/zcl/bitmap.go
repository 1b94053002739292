package zcl

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Bitmap is a decoded mapN value. Bit i lives in byte i/8, least significant
// bit first, and is named by the i-th flag of its type.
type Bitmap struct {
	buf   []byte
	flags []string
}

// NewBitmap builds a bitmap of size bytes from nil, an integer, a list of
// flag names or another bitmap.
func NewBitmap(size int, flags []string, v any) (*Bitmap, error) {
	b := &Bitmap{buf: make([]byte, size), flags: flags}
	switch x := v.(type) {
	case nil:
	case *Bitmap:
		copy(b.buf, x.buf)
	case Bitmap:
		copy(b.buf, x.buf)
	case []string:
		for _, name := range x {
			if err := b.Set(name, true); err != nil {
				return nil, err
			}
		}
	case []any:
		for _, item := range x {
			name, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %v is not a flag name", ErrInvalidValue, item)
			}
			if err := b.Set(name, true); err != nil {
				return nil, err
			}
		}
	default:
		u, ok := toUint64(v)
		if !ok {
			return nil, fmt.Errorf("%w: cannot build bitmap from %T", ErrInvalidValue, v)
		}
		if size < 8 && u>>(8*uint(size)) != 0 {
			return nil, fmt.Errorf("%w: %d overflows %d byte bitmap", ErrInvalidValue, u, size)
		}
		for i := range b.buf {
			b.buf[i] = byte(u >> (8 * i))
		}
	}
	return b, nil
}

// Len returns the number of bits.
func (b *Bitmap) Len() int { return len(b.buf) * 8 }

// Bit reports whether bit i is set.
func (b *Bitmap) Bit(i int) bool {
	if i < 0 || i >= b.Len() {
		return false
	}
	return b.buf[i/8]&(1<<(i%8)) != 0
}

// SetBit sets or clears bit i. Out of range bits are ignored.
func (b *Bitmap) SetBit(i int, on bool) {
	if i < 0 || i >= b.Len() {
		return
	}
	if on {
		b.buf[i/8] |= 1 << (i % 8)
	} else {
		b.buf[i/8] &^= 1 << (i % 8)
	}
}

func (b *Bitmap) ClearBit(i int) { b.SetBit(i, false) }

func (b *Bitmap) index(name string) int {
	if name == "" {
		return -1
	}
	for i, f := range b.flags {
		if f == name {
			return i
		}
	}
	return -1
}

// Has reports whether the named flag is set.
func (b *Bitmap) Has(name string) bool {
	return b.Bit(b.index(name))
}

// Set sets or clears the named flag.
func (b *Bitmap) Set(name string, on bool) error {
	i := b.index(name)
	if i < 0 || i >= b.Len() {
		return fmt.Errorf("%w: %q is not a flag", ErrInvalidValue, name)
	}
	b.SetBit(i, on)
	return nil
}

// Flags returns the names of all set, named bits in bit order.
func (b *Bitmap) Flags() []string {
	out := []string{}
	for i, f := range b.flags {
		if f != "" && b.Bit(i) {
			out = append(out, f)
		}
	}
	return out
}

// Uint64 returns the bitmap as an integer.
func (b *Bitmap) Uint64() uint64 {
	var u uint64
	for i := 0; i < len(b.buf) && i < 8; i++ {
		u |= uint64(b.buf[i]) << (8 * i)
	}
	return u
}

func (b *Bitmap) Bytes() []byte { return append([]byte{}, b.buf...) }

func (b *Bitmap) Copy() *Bitmap {
	return &Bitmap{buf: b.Bytes(), flags: b.flags}
}

func (b *Bitmap) String() string {
	if len(b.flags) == 0 {
		return fmt.Sprintf("0x%0*X", len(b.buf)*2, b.Uint64())
	}
	return "[" + strings.Join(b.Flags(), " ") + "]"
}

// MarshalJSON renders named bitmaps as their set flags and unnamed ones as
// a number.
func (b *Bitmap) MarshalJSON() ([]byte, error) {
	if len(b.flags) == 0 {
		return json.Marshal(b.Uint64())
	}
	return json.Marshal(b.Flags())
}
