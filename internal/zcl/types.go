package zcl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"sort"
)

// ZCL data type IDs
const (
	TypeNoData     uint8 = 0x00
	TypeData8      uint8 = 0x08
	TypeData16     uint8 = 0x09
	TypeData24     uint8 = 0x0A
	TypeData32     uint8 = 0x0B
	TypeData40     uint8 = 0x0C
	TypeData48     uint8 = 0x0D
	TypeData56     uint8 = 0x0E
	TypeData64     uint8 = 0x0F
	TypeBool       uint8 = 0x10
	TypeBitmap8    uint8 = 0x18
	TypeBitmap16   uint8 = 0x19
	TypeBitmap24   uint8 = 0x1A
	TypeBitmap32   uint8 = 0x1B
	TypeBitmap40   uint8 = 0x1C
	TypeBitmap48   uint8 = 0x1D
	TypeBitmap56   uint8 = 0x1E
	TypeBitmap64   uint8 = 0x1F
	TypeUint8      uint8 = 0x20
	TypeUint16     uint8 = 0x21
	TypeUint24     uint8 = 0x22
	TypeUint32     uint8 = 0x23
	TypeUint40     uint8 = 0x24
	TypeUint48     uint8 = 0x25
	TypeUint56     uint8 = 0x26
	TypeUint64     uint8 = 0x27
	TypeInt8       uint8 = 0x28
	TypeInt16      uint8 = 0x29
	TypeInt24      uint8 = 0x2A
	TypeInt32      uint8 = 0x2B
	TypeInt40      uint8 = 0x2C
	TypeInt48      uint8 = 0x2D
	TypeInt56      uint8 = 0x2E
	TypeInt64      uint8 = 0x2F
	TypeEnum8      uint8 = 0x30
	TypeEnum16     uint8 = 0x31
	TypeFloat16    uint8 = 0x38
	TypeFloat32    uint8 = 0x39
	TypeFloat64    uint8 = 0x3A
	TypeOctetStr   uint8 = 0x41
	TypeCharStr    uint8 = 0x42
	TypeOctetStr16 uint8 = 0x43
	TypeCharStr16  uint8 = 0x44
	TypeToD        uint8 = 0xE0 // Time of Day
	TypeDate       uint8 = 0xE1
	TypeUTC        uint8 = 0xE2
	TypeClusterID  uint8 = 0xE8
	TypeAttrID     uint8 = 0xE9
	TypeBacOID     uint8 = 0xEA
	TypeEUI64      uint8 = 0xF0
	TypeKey128     uint8 = 0xF1
)

// DataType is a wire type: how one value is laid out in a frame.
//
// Length is the fixed width in bytes. For Variable types it is the width of
// the length or count prefix instead (0 for types that consume the rest of
// the buffer). Nibble types occupy half a byte inside a Struct.
type DataType struct {
	ID       uint8
	Internal bool // no wire tag; never appears in attribute records
	Name     string
	Length   int
	Variable bool
	Nibble   bool
	Analog   bool

	Values map[string]uint64 // enum symbols
	Flags  []string          // bitmap flag names by bit position
	Elem   *DataType         // array element type
	Record *Struct           // set for struct-backed types

	// Default is the value decoded from an all-zero buffer.
	Default any

	names  map[uint64]string
	enc    func(t *DataType, dst []byte, v any) ([]byte, error)
	dec    func(t *DataType, buf []byte) (any, int, error)
	nibEnc func(t *DataType, v any) (uint8, error)
	nibDec func(t *DataType, n uint8) any
}

func (t *DataType) String() string { return t.Name }

// Append encodes v and appends it to dst.
func (t *DataType) Append(dst []byte, v any) ([]byte, error) {
	out, err := t.enc(t, dst, v)
	if err != nil {
		return dst, err
	}
	return out, nil
}

// Encode returns the wire form of v.
func (t *DataType) Encode(v any) ([]byte, error) {
	return t.Append(nil, v)
}

// Decode reads one value from the start of buf and reports the number of
// bytes it consumed.
func (t *DataType) Decode(buf []byte) (any, int, error) {
	return t.dec(t, buf)
}

// DefaultValue returns a fresh copy of the type's default value, safe to
// mutate.
func (t *DataType) DefaultValue() any {
	switch v := t.Default.(type) {
	case *Bitmap:
		return v.Copy()
	case []byte:
		return append([]byte{}, v...)
	case []any:
		return []any{}
	case Args:
		out := make(Args, len(v))
		for k, x := range v {
			if b, ok := x.(*Bitmap); ok {
				x = b.Copy()
			}
			out[k] = x
		}
		return out
	}
	return t.Default
}

func (t *DataType) init() *DataType {
	n := t.Length
	if t.Nibble {
		n = 1
	}
	if n < 0 {
		n = 0
	}
	if len(t.Values) > 0 {
		t.names = reverseValues(t.Values)
	}
	t.Default, _, _ = t.dec(t, make([]byte, n))
	return t
}

func reverseValues(values map[string]uint64) map[uint64]string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	names := make(map[uint64]string, len(values))
	for _, k := range keys {
		if _, ok := names[values[k]]; !ok {
			names[values[k]] = k
		}
	}
	return names
}

func short(t *DataType, need, have int) error {
	return fmt.Errorf("%w: %s needs %d bytes, have %d", ErrShortBuffer, t.Name, need, have)
}

func invalid(t *DataType, v any) error {
	return fmt.Errorf("%w: cannot encode %v (%T) as %s", ErrInvalidValue, v, v, t.Name)
}

// --- little-endian integers ---

func putUintLE(dst []byte, u uint64, n int) []byte {
	for i := 0; i < n; i++ {
		dst = append(dst, byte(u>>(8*i)))
	}
	return dst
}

func readUintLE(buf []byte, n int) uint64 {
	var u uint64
	for i := 0; i < n; i++ {
		u |= uint64(buf[i]) << (8 * i)
	}
	return u
}

func sizedUint(u uint64, n int) any {
	switch {
	case n == 1:
		return uint8(u)
	case n == 2:
		return uint16(u)
	case n <= 4:
		return uint32(u)
	}
	return u
}

func sizedInt(i int64, n int) any {
	switch {
	case n == 1:
		return int8(i)
	case n == 2:
		return int16(i)
	case n <= 4:
		return int32(i)
	}
	return i
}

func encUint(t *DataType, dst []byte, v any) ([]byte, error) {
	u, ok := toUint64(v)
	if !ok {
		return dst, invalid(t, v)
	}
	if t.Length < 8 && u>>(8*uint(t.Length)) != 0 {
		return dst, fmt.Errorf("%w: %d overflows %s", ErrInvalidValue, u, t.Name)
	}
	return putUintLE(dst, u, t.Length), nil
}

func decUint(t *DataType, buf []byte) (any, int, error) {
	if len(buf) < t.Length {
		return nil, 0, short(t, t.Length, len(buf))
	}
	return sizedUint(readUintLE(buf, t.Length), t.Length), t.Length, nil
}

func encInt(t *DataType, dst []byte, v any) ([]byte, error) {
	i, ok := toInt64(v)
	if !ok {
		return dst, invalid(t, v)
	}
	if t.Length < 8 {
		bits := uint(8*t.Length - 1)
		if i < -(1<<bits) || i > (1<<bits)-1 {
			return dst, fmt.Errorf("%w: %d overflows %s", ErrInvalidValue, i, t.Name)
		}
	}
	return putUintLE(dst, uint64(i), t.Length), nil
}

func decInt(t *DataType, buf []byte) (any, int, error) {
	if len(buf) < t.Length {
		return nil, 0, short(t, t.Length, len(buf))
	}
	shift := uint(64 - 8*t.Length)
	i := int64(readUintLE(buf, t.Length)<<shift) >> shift
	return sizedInt(i, t.Length), t.Length, nil
}

// data8..data32 are carried big-endian.
func encUintBE(t *DataType, dst []byte, v any) ([]byte, error) {
	u, ok := toUint64(v)
	if !ok {
		return dst, invalid(t, v)
	}
	if u>>(8*uint(t.Length)) != 0 {
		return dst, fmt.Errorf("%w: %d overflows %s", ErrInvalidValue, u, t.Name)
	}
	for i := t.Length - 1; i >= 0; i-- {
		dst = append(dst, byte(u>>(8*i)))
	}
	return dst, nil
}

func decUintBE(t *DataType, buf []byte) (any, int, error) {
	if len(buf) < t.Length {
		return nil, 0, short(t, t.Length, len(buf))
	}
	var u uint64
	for i := 0; i < t.Length; i++ {
		u = u<<8 | uint64(buf[i])
	}
	return sizedUint(u, t.Length), t.Length, nil
}

// --- fixed opaque blobs ---

func encBlob(t *DataType, dst []byte, v any) ([]byte, error) {
	b, ok := toBytes(v)
	if !ok || len(b) != t.Length {
		return dst, invalid(t, v)
	}
	return append(dst, b...), nil
}

func decBlob(t *DataType, buf []byte) (any, int, error) {
	if len(buf) < t.Length {
		return nil, 0, short(t, t.Length, len(buf))
	}
	return append([]byte{}, buf[:t.Length]...), t.Length, nil
}

func encNoData(_ *DataType, dst []byte, _ any) ([]byte, error) { return dst, nil }

func decNoData(_ *DataType, _ []byte) (any, int, error) { return nil, 0, nil }

// --- bool: 0x00 false, 0x01 true, 0xFF invalid (nil) ---

func encBool(t *DataType, dst []byte, v any) ([]byte, error) {
	if v == nil {
		return append(dst, 0xFF), nil
	}
	b, ok := toBool(v)
	if !ok {
		return dst, invalid(t, v)
	}
	if b {
		return append(dst, 0x01), nil
	}
	return append(dst, 0x00), nil
}

func decBool(t *DataType, buf []byte) (any, int, error) {
	if len(buf) < 1 {
		return nil, 0, short(t, 1, 0)
	}
	switch buf[0] {
	case 0xFF:
		return nil, 1, nil
	case 0x00:
		return false, 1, nil
	}
	return true, 1, nil
}

// --- floats ---

func encFloat(t *DataType, dst []byte, v any) ([]byte, error) {
	f, ok := toFloat64(v)
	if !ok {
		return dst, invalid(t, v)
	}
	switch t.Length {
	case 2:
		return binary.LittleEndian.AppendUint16(dst, float16Bits(float32(f))), nil
	case 4:
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(f))), nil
	}
	return binary.LittleEndian.AppendUint64(dst, math.Float64bits(f)), nil
}

func decFloat(t *DataType, buf []byte) (any, int, error) {
	if len(buf) < t.Length {
		return nil, 0, short(t, t.Length, len(buf))
	}
	switch t.Length {
	case 2:
		return float16Float(binary.LittleEndian.Uint16(buf)), 2, nil
	case 4:
		return math.Float32frombits(binary.LittleEndian.Uint32(buf)), 4, nil
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf)), 8, nil
}

// float16Bits converts to IEEE 754 half precision, rounding to nearest.
func float16Bits(f float32) uint16 {
	b := math.Float32bits(f)
	sign := uint16(b>>16) & 0x8000
	exp := int(b>>23) & 0xFF
	mant := b & 0x7FFFFF
	if exp == 0xFF {
		if mant != 0 {
			return sign | 0x7E00
		}
		return sign | 0x7C00
	}
	e := exp - 127 + 15
	switch {
	case e >= 0x1F:
		return sign | 0x7C00
	case e <= 0:
		// subnormal: value / 2^-24
		m := math.Abs(float64(f)) * (1 << 24)
		return sign | uint16(math.Round(m))
	}
	h := uint32(sign) | uint32(e)<<10 | mant>>13
	if mant&0x1000 != 0 {
		h++
	}
	return uint16(h)
}

func float16Float(h uint16) float32 {
	neg := h&0x8000 != 0
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h & 0x3FF)
	var f float32
	switch exp {
	case 0:
		f = float32(mant) / (1 << 24)
	case 0x1F:
		bits := uint32(0x7F800000) | mant<<13
		f = math.Float32frombits(bits)
	default:
		f = math.Float32frombits((exp-15+127)<<23 | mant<<13)
	}
	if neg {
		return -f
	}
	return f
}

// --- enums ---

func encEnum(t *DataType, dst []byte, v any) ([]byte, error) {
	u, err := t.enumValue(v)
	if err != nil {
		return dst, err
	}
	if t.Length < 8 && u>>(8*uint(t.Length)) != 0 {
		return dst, fmt.Errorf("%w: %d overflows %s", ErrInvalidValue, u, t.Name)
	}
	return putUintLE(dst, u, t.Length), nil
}

func (t *DataType) enumValue(v any) (uint64, error) {
	if s, ok := v.(string); ok {
		u, ok := t.Values[s]
		if !ok {
			return 0, fmt.Errorf("%w: %q is not a value of %s", ErrInvalidValue, s, t.Name)
		}
		return u, nil
	}
	u, ok := toUint64(v)
	if !ok {
		return 0, invalid(t, v)
	}
	return u, nil
}

func (t *DataType) enumSymbol(u uint64) any {
	if t.Values == nil {
		return sizedUint(u, t.Length)
	}
	if name, ok := t.names[u]; ok {
		return name
	}
	return nil
}

func decEnum(t *DataType, buf []byte) (any, int, error) {
	if len(buf) < t.Length {
		return nil, 0, short(t, t.Length, len(buf))
	}
	return t.enumSymbol(readUintLE(buf, t.Length)), t.Length, nil
}

// --- bitmaps ---

func encMap(t *DataType, dst []byte, v any) ([]byte, error) {
	b, err := NewBitmap(t.Length, t.Flags, v)
	if err != nil {
		return dst, fmt.Errorf("%s: %w", t.Name, err)
	}
	return append(dst, b.buf...), nil
}

func decMap(t *DataType, buf []byte) (any, int, error) {
	if len(buf) < t.Length {
		return nil, 0, short(t, t.Length, len(buf))
	}
	return &Bitmap{buf: append([]byte{}, buf[:t.Length]...), flags: t.Flags}, t.Length, nil
}

// --- nibbles: standalone values use the high half of one byte ---

func encNibble(t *DataType, dst []byte, v any) ([]byte, error) {
	n, err := t.nibEnc(t, v)
	if err != nil {
		return dst, err
	}
	return append(dst, n<<4), nil
}

func decNibble(t *DataType, buf []byte) (any, int, error) {
	if len(buf) < 1 {
		return nil, 0, short(t, 1, 0)
	}
	return t.nibDec(t, buf[0]>>4), 1, nil
}

func nibUint(t *DataType, v any) (uint8, error) {
	u, ok := toUint64(v)
	if !ok || u > 0x0F {
		return 0, invalid(t, v)
	}
	return uint8(u), nil
}

func nibEnum(t *DataType, v any) (uint8, error) {
	u, err := t.enumValue(v)
	if err != nil {
		return 0, err
	}
	if u > 0x0F {
		return 0, invalid(t, v)
	}
	return uint8(u), nil
}

func nibMap(t *DataType, v any) (uint8, error) {
	b, err := NewBitmap(1, t.Flags, v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", t.Name, err)
	}
	if b.buf[0] > 0x0F {
		return 0, invalid(t, v)
	}
	return b.buf[0], nil
}

// --- length-prefixed strings and buffers ---

func prefixMax(n int) int {
	if n == 0 {
		return math.MaxInt
	}
	return 1<<(8*uint(n)) - 1
}

func appendPrefixed(t *DataType, dst []byte, b []byte, limit int) ([]byte, error) {
	if len(b) > limit {
		return dst, fmt.Errorf("%w: %s too long: %d (max %d)", ErrInvalidValue, t.Name, len(b), limit)
	}
	dst = putUintLE(dst, uint64(len(b)), t.Length)
	return append(dst, b...), nil
}

// readPrefixed returns the payload following the length prefix. A payload
// shorter than announced is returned as far as it goes. The all-ones
// length marks an invalid value and yields no payload.
func readPrefixed(t *DataType, buf []byte) ([]byte, int, error) {
	if t.Length == 0 {
		return buf, len(buf), nil
	}
	if len(buf) < t.Length {
		return nil, 0, short(t, t.Length, len(buf))
	}
	n := int(readUintLE(buf, t.Length))
	if !t.Internal && n == prefixMax(t.Length) {
		return nil, t.Length, nil
	}
	end := t.Length + n
	if end > len(buf) {
		end = len(buf)
	}
	return buf[t.Length:end], end, nil
}

// ZCL strings reserve the all-ones length for "invalid".
func stringLimit(t *DataType) int {
	if t.Internal {
		return prefixMax(t.Length)
	}
	return prefixMax(t.Length) - 1
}

func encOctets(t *DataType, dst []byte, v any) ([]byte, error) {
	b, ok := toBytes(v)
	if !ok {
		return dst, invalid(t, v)
	}
	return appendPrefixed(t, dst, b, stringLimit(t))
}

func decOctets(t *DataType, buf []byte) (any, int, error) {
	b, n, err := readPrefixed(t, buf)
	if err != nil {
		return nil, 0, err
	}
	return append([]byte{}, b...), n, nil
}

func encString(t *DataType, dst []byte, v any) ([]byte, error) {
	var b []byte
	switch s := v.(type) {
	case string:
		b = []byte(s)
	case []byte:
		b = s
	case nil:
	default:
		b = []byte(fmt.Sprint(v))
	}
	return appendPrefixed(t, dst, b, stringLimit(t))
}

func decString(t *DataType, buf []byte) (any, int, error) {
	b, n, err := readPrefixed(t, buf)
	if err != nil {
		return nil, 0, err
	}
	return sanitizeString(b), n, nil
}

// --- EUI64 and keys: colon separated hex ---

func encHexID(t *DataType, dst []byte, v any) ([]byte, error) {
	var b []byte
	switch x := v.(type) {
	case string:
		p, err := parseHexID(x, t.Length)
		if err != nil {
			return dst, fmt.Errorf("%s: %w", t.Name, err)
		}
		b = p
	case [8]byte:
		b = append([]byte{}, x[:]...)
	case [16]byte:
		b = append([]byte{}, x[:]...)
	case []byte:
		b = append([]byte{}, x...)
	case uint64:
		if t.Length != 8 {
			return dst, invalid(t, v)
		}
		b = binary.BigEndian.AppendUint64(nil, x)
	default:
		return dst, invalid(t, v)
	}
	if len(b) != t.Length {
		return dst, invalid(t, v)
	}
	if t.ID == TypeEUI64 {
		reverse(b)
	}
	return append(dst, b...), nil
}

func decHexID(t *DataType, buf []byte) (any, int, error) {
	if len(buf) < t.Length {
		return nil, 0, short(t, t.Length, len(buf))
	}
	b := append([]byte{}, buf[:t.Length]...)
	if t.ID == TypeEUI64 {
		reverse(b)
	}
	return formatHexID(b), t.Length, nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// --- arrays ---

func encArray(t *DataType, dst []byte, v any) ([]byte, error) {
	items, ok := toSlice(v)
	if !ok {
		return dst, invalid(t, v)
	}
	if t.Length > 0 {
		if len(items) > prefixMax(t.Length) {
			return dst, fmt.Errorf("%w: %s holds at most %d items", ErrInvalidValue, t.Name, prefixMax(t.Length))
		}
		dst = putUintLE(dst, uint64(len(items)), t.Length)
	}
	var err error
	for i, item := range items {
		if dst, err = t.Elem.Append(dst, item); err != nil {
			return dst, fmt.Errorf("%s[%d]: %w", t.Name, i, err)
		}
	}
	return dst, nil
}

// decArray stops at the end of buf even when the count prefix announced
// more items; the truncated result is not an error.
func decArray(t *DataType, buf []byte) (any, int, error) {
	count := math.MaxInt
	pos := 0
	if t.Length > 0 {
		if len(buf) < t.Length {
			return nil, 0, short(t, t.Length, len(buf))
		}
		count = int(readUintLE(buf, t.Length))
		pos = t.Length
	}
	out := []any{}
	for len(out) < count && pos < len(buf) {
		v, n, err := t.Elem.Decode(buf[pos:])
		if err != nil || n == 0 {
			break
		}
		out = append(out, v)
		pos += n
	}
	return out, pos, nil
}

// --- constructors ---

func fixed(id uint8, name string, n int, enc func(*DataType, []byte, any) ([]byte, error), dec func(*DataType, []byte) (any, int, error)) *DataType {
	return (&DataType{ID: id, Name: name, Length: n, enc: enc, dec: dec}).init()
}

func variable(id uint8, name string, prefix int, enc func(*DataType, []byte, any) ([]byte, error), dec func(*DataType, []byte) (any, int, error)) *DataType {
	return (&DataType{ID: id, Name: name, Length: prefix, Variable: true, enc: enc, dec: dec}).init()
}

func analog(t *DataType) *DataType {
	t.Analog = true
	return t
}

func internal(t *DataType) *DataType {
	t.Internal = true
	t.ID = 0
	return t
}

func uintType(id uint8, name string, n int) *DataType {
	return analog(fixed(id, name, n, encUint, decUint))
}

func intType(id uint8, name string, n int) *DataType {
	return analog(fixed(id, name, n, encInt, decInt))
}

func enumType(id uint8, name string, n int, values map[string]uint64) *DataType {
	return (&DataType{ID: id, Name: name, Length: n, Values: values, enc: encEnum, dec: decEnum}).init()
}

func mapType(id uint8, name string, n int, flags []string) *DataType {
	return (&DataType{ID: id, Name: name, Length: n, Flags: flags, enc: encMap, dec: decMap}).init()
}

func nibbleType(name string, values map[string]uint64, flags []string, enc func(*DataType, any) (uint8, error), dec func(*DataType, uint8) any) *DataType {
	t := &DataType{Internal: true, Name: name, Length: 1, Nibble: true, Values: values, Flags: flags,
		enc: encNibble, dec: decNibble, nibEnc: enc, nibDec: dec}
	return t.init()
}

func arrayType(name string, prefix int, elem *DataType) *DataType {
	t := &DataType{Internal: true, Name: fmt.Sprintf("%s<%s>", name, elem.Name), Length: prefix, Variable: true,
		Elem: elem, enc: encArray, dec: decArray}
	return t.init()
}

// Primitive types.
var (
	NoData = fixed(TypeNoData, "noData", 0, encNoData, decNoData)

	Data8  = fixed(TypeData8, "data8", 1, encUintBE, decUintBE)
	Data16 = fixed(TypeData16, "data16", 2, encUintBE, decUintBE)
	Data24 = fixed(TypeData24, "data24", 3, encUintBE, decUintBE)
	Data32 = fixed(TypeData32, "data32", 4, encUintBE, decUintBE)
	Data40 = fixed(TypeData40, "data40", 5, encBlob, decBlob)
	Data48 = fixed(TypeData48, "data48", 6, encBlob, decBlob)
	Data56 = fixed(TypeData56, "data56", 7, encBlob, decBlob)
	Data64 = fixed(TypeData64, "data64", 8, encBlob, decBlob)

	Bool = fixed(TypeBool, "bool", 1, encBool, decBool)

	Uint8  = uintType(TypeUint8, "uint8", 1)
	Uint16 = uintType(TypeUint16, "uint16", 2)
	Uint24 = uintType(TypeUint24, "uint24", 3)
	Uint32 = uintType(TypeUint32, "uint32", 4)
	Uint40 = uintType(TypeUint40, "uint40", 5)
	Uint48 = uintType(TypeUint48, "uint48", 6)
	Uint56 = uintType(TypeUint56, "uint56", 7)
	Uint64 = uintType(TypeUint64, "uint64", 8)

	Int8  = intType(TypeInt8, "int8", 1)
	Int16 = intType(TypeInt16, "int16", 2)
	Int24 = intType(TypeInt24, "int24", 3)
	Int32 = intType(TypeInt32, "int32", 4)
	Int40 = intType(TypeInt40, "int40", 5)
	Int48 = intType(TypeInt48, "int48", 6)
	Int56 = intType(TypeInt56, "int56", 7)
	Int64 = intType(TypeInt64, "int64", 8)

	Semi   = analog(fixed(TypeFloat16, "semi", 2, encFloat, decFloat))
	Single = analog(fixed(TypeFloat32, "single", 4, encFloat, decFloat))
	Double = analog(fixed(TypeFloat64, "double", 8, encFloat, decFloat))

	Octstr   = variable(TypeOctetStr, "octstr", 1, encOctets, decOctets)
	String   = variable(TypeCharStr, "string", 1, encString, decString)
	Octstr16 = variable(TypeOctetStr16, "octstr16", 2, encOctets, decOctets)
	String16 = variable(TypeCharStr16, "string16", 2, encString, decString)

	ToD  = analog(fixed(TypeToD, "ToD", 4, encUint, decUint))
	Date = analog(fixed(TypeDate, "date", 4, encUint, decUint))
	UTC  = analog(fixed(TypeUTC, "UTC", 4, encUint, decUint))

	ClusterIDType = fixed(TypeClusterID, "clusterId", 2, encUint, decUint)
	AttribIDType  = fixed(TypeAttrID, "attribId", 2, encUint, decUint)
	BacOID        = fixed(TypeBacOID, "bacOID", 4, encUint, decUint)

	EUI64  = fixed(TypeEUI64, "EUI64", 8, encHexID, decHexID)
	Key128 = fixed(TypeKey128, "key128", 16, encHexID, decHexID)

	// Internal types without a wire tag.
	Buffer   = internal(variable(0, "buffer", 0, encOctets, decOctets))
	Buffer8  = internal(variable(0, "buffer8", 1, encOctets, decOctets))
	Buffer16 = internal(variable(0, "buffer16", 2, encOctets, decOctets))
	Uint4    = nibbleType("uint4", nil, nil, nibUint, func(_ *DataType, n uint8) any { return n })
)

// Enum8 returns an 8-bit enumeration over the given symbols.
func Enum8(values map[string]uint64) *DataType { return enumType(TypeEnum8, "enum8", 1, values) }

// Enum16 returns a 16-bit enumeration over the given symbols.
func Enum16(values map[string]uint64) *DataType { return enumType(TypeEnum16, "enum16", 2, values) }

// Enum4 returns a nibble enumeration, packed two per byte inside a Struct.
func Enum4(values map[string]uint64) *DataType {
	return nibbleType("enum4", values, nil, nibEnum, func(t *DataType, n uint8) any { return t.enumSymbol(uint64(n)) })
}

// Map8 through Map64 return bitmaps where bit i is named by flags[i]. An
// empty name leaves that position unnamed.
func Map8(flags ...string) *DataType  { return mapType(TypeBitmap8, "map8", 1, flags) }
func Map16(flags ...string) *DataType { return mapType(TypeBitmap16, "map16", 2, flags) }
func Map24(flags ...string) *DataType { return mapType(TypeBitmap24, "map24", 3, flags) }
func Map32(flags ...string) *DataType { return mapType(TypeBitmap32, "map32", 4, flags) }
func Map40(flags ...string) *DataType { return mapType(TypeBitmap40, "map40", 5, flags) }
func Map48(flags ...string) *DataType { return mapType(TypeBitmap48, "map48", 6, flags) }
func Map56(flags ...string) *DataType { return mapType(TypeBitmap56, "map56", 7, flags) }
func Map64(flags ...string) *DataType { return mapType(TypeBitmap64, "map64", 8, flags) }

// Map4 returns a nibble bitmap.
func Map4(flags ...string) *DataType {
	return nibbleType("map4", nil, flags, nibMap, func(t *DataType, n uint8) any {
		return &Bitmap{buf: []byte{n}, flags: t.Flags}
	})
}

// Array0 consumes the rest of the buffer; Array8 and Array16 carry a
// one or two byte element count.
func Array0(elem *DataType) *DataType  { return arrayType("Array0", 0, elem) }
func Array8(elem *DataType) *DataType  { return arrayType("Array8", 1, elem) }
func Array16(elem *DataType) *DataType { return arrayType("Array16", 2, elem) }

var (
	typesByID   = map[uint8]*DataType{}
	typesByName = map[string]*DataType{}
)

func init() {
	for _, t := range []*DataType{
		NoData, Data8, Data16, Data24, Data32, Data40, Data48, Data56, Data64, Bool,
		Map8(), Map16(), Map24(), Map32(), Map40(), Map48(), Map56(), Map64(),
		Uint8, Uint16, Uint24, Uint32, Uint40, Uint48, Uint56, Uint64,
		Int8, Int16, Int24, Int32, Int40, Int48, Int56, Int64,
		Enum8(nil), Enum16(nil), Semi, Single, Double,
		Octstr, String, Octstr16, String16,
		ToD, Date, UTC, ClusterIDType, AttribIDType, BacOID, EUI64, Key128,
	} {
		typesByID[t.ID] = t
		typesByName[t.Name] = t
	}
	for _, t := range []*DataType{Buffer, Buffer8, Buffer16, Uint4} {
		typesByName[t.Name] = t
	}
}

// TypeByName returns a non-parametrized type by its name, such as "uint16"
// or "string".
func TypeByName(name string) (*DataType, bool) {
	t, ok := typesByName[name]
	return t, ok
}

// TypeByID returns the type for a wire type id. Enumerations and bitmaps
// come back without symbols or flag names.
func TypeByID(id uint8) (*DataType, bool) {
	t, ok := typesByID[id]
	return t, ok
}

// TypeName returns a human-readable name for a ZCL type.
func TypeName(typeID uint8) string {
	if t, ok := typesByID[typeID]; ok {
		return t.Name
	}
	return fmt.Sprintf("0x%02X", typeID)
}

// DecodeValue decodes a value tagged with typeID, returning the Go value and
// bytes consumed.
func DecodeValue(typeID uint8, data []byte) (any, int, error) {
	t, ok := TypeByID(typeID)
	if !ok {
		return nil, 0, fmt.Errorf("%w: 0x%02X", ErrUnknownType, typeID)
	}
	return t.Decode(data)
}

// EncodeValue encodes a Go value as typeID.
func EncodeValue(typeID uint8, val any) ([]byte, error) {
	t, ok := TypeByID(typeID)
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02X", ErrUnknownType, typeID)
	}
	return t.Encode(val)
}

// Equal reports whether two decoded values are the same.
func Equal(a, b any) bool {
	switch x := a.(type) {
	case *Bitmap:
		y, ok := b.(*Bitmap)
		return ok && bytes.Equal(x.buf, y.buf)
	case []byte:
		y, ok := b.([]byte)
		return ok && bytes.Equal(x, y)
	}
	return reflect.DeepEqual(a, b)
}
