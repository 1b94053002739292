package zcl

import (
	"bytes"
	"errors"
	"testing"
)

func roundTrip(t *testing.T, dt *DataType, v any) {
	t.Helper()
	encoded, err := dt.Encode(v)
	if err != nil {
		t.Fatalf("%s encode %v: %v", dt.Name, v, err)
	}
	got, n, err := dt.Decode(encoded)
	if err != nil {
		t.Fatalf("%s decode %X: %v", dt.Name, encoded, err)
	}
	if n != len(encoded) {
		t.Errorf("%s consumed %d, wrote %d", dt.Name, n, len(encoded))
	}
	if !Equal(got, v) {
		t.Errorf("%s round trip: got %v (%T), want %v (%T)", dt.Name, got, got, v, v)
	}
}

func TestRoundTripIntegers(t *testing.T) {
	roundTrip(t, Uint8, uint8(0))
	roundTrip(t, Uint8, uint8(0xFF))
	roundTrip(t, Uint16, uint16(0xFFFF))
	roundTrip(t, Uint24, uint32(0xFFFFFF))
	roundTrip(t, Uint32, uint32(0xFFFFFFFF))
	roundTrip(t, Uint40, uint64(0xFFFFFFFFFF))
	roundTrip(t, Uint48, uint64(0xFFFFFFFFFFFF))
	roundTrip(t, Uint56, uint64(0xFFFFFFFFFFFFFF))
	roundTrip(t, Uint64, uint64(0xFFFFFFFFFFFFFFFF))
	roundTrip(t, Int8, int8(-128))
	roundTrip(t, Int8, int8(127))
	roundTrip(t, Int16, int16(-32768))
	roundTrip(t, Int24, int32(-8388608))
	roundTrip(t, Int24, int32(8388607))
	roundTrip(t, Int32, int32(-1))
	roundTrip(t, Int48, int64(-140737488355328))
	roundTrip(t, Int64, int64(-9223372036854775808))
	roundTrip(t, Data8, uint8(0xAB))
	roundTrip(t, Data16, uint16(0x1234))
	roundTrip(t, Data40, []byte{1, 2, 3, 4, 5})
	roundTrip(t, UTC, uint32(700000000))
	roundTrip(t, ClusterIDType, uint16(0x0006))
}

func TestUint16LittleEndian(t *testing.T) {
	val, n, err := DecodeValue(TypeUint16, []byte{0x34, 0x12})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || val.(uint16) != 0x1234 {
		t.Errorf("got %v/%d, want 0x1234/2", val, n)
	}
}

func TestData16BigEndian(t *testing.T) {
	b, err := Data16.Encode(uint16(0x1234))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte{0x12, 0x34}) {
		t.Errorf("encoded %X, want 1234", b)
	}
}

func TestInt24SignExtension(t *testing.T) {
	val, _, err := Int24.Decode([]byte{0xFF, 0xFF, 0xFF})
	if err != nil {
		t.Fatal(err)
	}
	if val.(int32) != -1 {
		t.Errorf("got %v, want -1", val)
	}
}

func TestEncodeOverflow(t *testing.T) {
	cases := []struct {
		dt *DataType
		v  any
	}{
		{Uint8, 256},
		{Uint24, 0x1000000},
		{Int8, 128},
		{Int8, -129},
		{Int24, 8388608},
		{Uint16, -1},
	}
	for _, c := range cases {
		if _, err := c.dt.Encode(c.v); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("%s encode %v: err = %v, want ErrInvalidValue", c.dt.Name, c.v, err)
		}
	}
}

func TestDecodeNotEnoughData(t *testing.T) {
	_, _, err := Uint32.Decode([]byte{0x01, 0x02})
	if !errors.Is(err, ErrShortBuffer) {
		t.Errorf("err = %v, want ErrShortBuffer", err)
	}
}

func TestBoolTriState(t *testing.T) {
	roundTrip(t, Bool, true)
	roundTrip(t, Bool, false)

	b, err := Bool.Encode(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte{0xFF}) {
		t.Errorf("nil encoded %X, want FF", b)
	}
	val, n, err := Bool.Decode([]byte{0xFF})
	if err != nil || n != 1 {
		t.Fatalf("decode FF: %v, %d", err, n)
	}
	if val != nil {
		t.Errorf("FF decoded to %v, want nil", val)
	}
}

func TestFloats(t *testing.T) {
	roundTrip(t, Single, float32(3.5))
	roundTrip(t, Double, float64(-1234.5678))
	roundTrip(t, Semi, float32(1.5))
	roundTrip(t, Semi, float32(-0.25))
	roundTrip(t, Semi, float32(65504))

	b, err := Semi.Encode(1.0)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte{0x00, 0x3C}) {
		t.Errorf("semi 1.0 = %X, want 003C", b)
	}
}

func TestDecodeString(t *testing.T) {
	val, n, err := String.Decode([]byte{0x04, 0x54, 0x65, 0x73, 0x74})
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Errorf("consumed %d, want 5", n)
	}
	if val.(string) != "Test" {
		t.Errorf("got %q, want %q", val, "Test")
	}
}

func TestDecodeStringCleansUp(t *testing.T) {
	raw := append([]byte{0x0B}, []byte(" ab\x1b[Bc\x00xyz")...)
	val, n, err := String.Decode(raw)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(raw) {
		t.Errorf("consumed %d, want %d", n, len(raw))
	}
	if val.(string) != "abc" {
		t.Errorf("got %q, want %q", val, "abc")
	}
}

func TestDecodeStringInvalidLength(t *testing.T) {
	val, n, err := String.Decode([]byte{0xFF})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || val.(string) != "" {
		t.Errorf("got %q/%d, want empty/1", val, n)
	}
}

func TestStrings(t *testing.T) {
	roundTrip(t, String, "lumi.sensor_ht")
	roundTrip(t, String16, "a longer string")
	roundTrip(t, Octstr, []byte{0x00, 0x01, 0xFE})
	roundTrip(t, Octstr16, []byte{0xAA})
	roundTrip(t, Buffer8, []byte{1, 2, 3})

	long := make([]byte, 255)
	if _, err := Octstr.Encode(long); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("255 byte octstr: err = %v, want ErrInvalidValue", err)
	}
}

func TestBufferConsumesRest(t *testing.T) {
	val, n, err := Buffer.Decode([]byte{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 || !bytes.Equal(val.([]byte), []byte{1, 2, 3}) {
		t.Errorf("got %X/%d", val, n)
	}
}

func TestEUI64ByteOrder(t *testing.T) {
	b, err := EUI64.Encode("00:15:8d:00:01:02:03:04")
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x04, 0x03, 0x02, 0x01, 0x00, 0x8D, 0x15, 0x00}
	if !bytes.Equal(b, want) {
		t.Errorf("encoded %X, want %X", b, want)
	}
	roundTrip(t, EUI64, "00:15:8d:00:01:02:03:04")

	b, err = EUI64.Encode("0x00158D0001020304")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, want) {
		t.Errorf("plain hex encoded %X, want %X", b, want)
	}
}

func TestKey128NotReversed(t *testing.T) {
	key := "01:02:03:04:05:06:07:08:09:0a:0b:0c:0d:0e:0f:10"
	b, err := Key128.Encode(key)
	if err != nil {
		t.Fatal(err)
	}
	if b[0] != 0x01 || b[15] != 0x10 {
		t.Errorf("encoded %X", b)
	}
	roundTrip(t, Key128, key)
}

func TestEnum(t *testing.T) {
	dt := Enum8(map[string]uint64{"off": 0, "on": 1, "toggle": 2})
	roundTrip(t, dt, "toggle")

	b, err := dt.Encode(uint8(1))
	if err != nil {
		t.Fatal(err)
	}
	if b[0] != 1 {
		t.Errorf("numeric encode = %X", b)
	}

	if _, err := dt.Encode("dim"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("unknown symbol: err = %v, want ErrInvalidValue", err)
	}

	val, n, err := dt.Decode([]byte{0x09})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || val != nil {
		t.Errorf("unknown value decoded to %v/%d, want nil/1", val, n)
	}
}

func TestEnumWithoutSymbolsDecodesNumber(t *testing.T) {
	val, _, err := DecodeValue(TypeEnum16, []byte{0x15, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	if val.(uint16) != 21 {
		t.Errorf("got %v, want 21", val)
	}
}

func TestStatusEnum(t *testing.T) {
	roundTrip(t, StatusType, "UNSUPPORTED_ATTRIBUTE")
	if StatusUnreportableAttribute.String() != "UNREPORTABLE_ATTRIBUTE" {
		t.Errorf("status name = %s", StatusUnreportableAttribute)
	}
	s, ok := ParseStatus("INVALID_DATA_TYPE")
	if !ok || s != StatusInvalidDataType {
		t.Errorf("ParseStatus = %v, %v", s, ok)
	}
}

func TestArrays(t *testing.T) {
	roundTrip(t, Array0(Uint16), []any{uint16(1), uint16(0xFFFD)})
	roundTrip(t, Array8(Uint8), []any{uint8(7), uint8(8), uint8(9)})
	roundTrip(t, Array16(String), []any{"a", "bc"})

	b, err := Array8(Uint16).Encode([]uint16{0x0102})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte{0x01, 0x02, 0x01}) {
		t.Errorf("typed slice encoded %X", b)
	}
}

func TestArrayTruncatesEarly(t *testing.T) {
	// count says 4, only two and a half elements follow
	val, n, err := Array8(Uint16).Decode([]byte{0x04, 0x01, 0x00, 0x02, 0x00, 0x03})
	if err != nil {
		t.Fatal(err)
	}
	items := val.([]any)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if n != 5 {
		t.Errorf("consumed %d, want 5", n)
	}
}

func TestDefaults(t *testing.T) {
	if Uint8.Default.(uint8) != 0 {
		t.Errorf("uint8 default = %v", Uint8.Default)
	}
	if Bool.Default.(bool) != false {
		t.Errorf("bool default = %v", Bool.Default)
	}
	if String.Default.(string) != "" {
		t.Errorf("string default = %q", String.Default)
	}
	if len(Array0(Uint8).Default.([]any)) != 0 {
		t.Error("array default not empty")
	}
}

func TestNibbleStandalone(t *testing.T) {
	b, err := Uint4.Encode(uint8(0x0A))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte{0xA0}) {
		t.Errorf("encoded %X, want A0", b)
	}
	roundTrip(t, Uint4, uint8(0x0A))
	if _, err := Uint4.Encode(16); err == nil {
		t.Error("expected error for value above 15")
	}
}

func TestTypeByID(t *testing.T) {
	dt, ok := TypeByID(TypeUint16)
	if !ok || dt != Uint16 {
		t.Errorf("TypeByID(uint16) = %v, %v", dt, ok)
	}
	if _, ok := TypeByID(0x4C); ok {
		t.Error("struct type id should be unknown")
	}
	if TypeName(TypeCharStr) != "string" {
		t.Errorf("TypeName = %s", TypeName(TypeCharStr))
	}
}

func TestToUint64RejectsNegativeInt(t *testing.T) {
	if _, ok := toUint64(-1); ok {
		t.Error("expected -1 to be rejected")
	}
	if _, ok := toUint64(1.5); ok {
		t.Error("expected 1.5 to be rejected")
	}
	if u, ok := toUint64(float64(42)); !ok || u != 42 {
		t.Errorf("toUint64(42.0) = %d, %v", u, ok)
	}
}
