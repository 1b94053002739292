package zcl

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeReadResults(t *testing.T) {
	def := NewRegistry(testLogger()).MustRegister(onOffDef())
	data := []byte{
		0x00, 0x00, 0x00, 0x10, 0x01, // onOff SUCCESS bool true
		0x05, 0x40, 0x86, // 0x4005 UNSUPPORTED_ATTRIBUTE
		0x34, 0x12, 0x00, 0x21, 0x10, 0x00, // undeclared, wire type uint16
	}
	recs := def.DecodeReadResults(data)
	if len(recs) != 3 {
		t.Fatalf("got %d records: %+v", len(recs), recs)
	}
	if recs[0].Name != "onOff" || recs[0].Status != StatusSuccess || recs[0].Value != true {
		t.Errorf("record 0 = %+v", recs[0])
	}
	if recs[1].ID != 0x4005 || recs[1].Status != StatusUnsupportedAttribute || recs[1].Value != nil {
		t.Errorf("record 1 = %+v", recs[1])
	}
	if recs[2].ID != 0x1234 || recs[2].Value != uint16(16) || recs[2].DataTypeID != TypeUint16 {
		t.Errorf("record 2 = %+v", recs[2])
	}
}

func TestEncodeReadResults(t *testing.T) {
	def := NewRegistry(testLogger()).MustRegister(onOffDef())
	b, err := def.EncodeReadResults([]AttributeRecord{
		{ID: 0x4003, Value: "previous"},
		{ID: 0x4005, Status: StatusUnsupportedAttribute},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x03, 0x40, 0x00, 0x30, 0xFF, 0x05, 0x40, 0x86}
	if !bytes.Equal(b, want) {
		t.Errorf("encoded %X, want %X", b, want)
	}
}

func TestEncodeAttributeRecordsUndeclared(t *testing.T) {
	def := NewRegistry(testLogger()).MustRegister(onOffDef())
	if _, err := def.EncodeAttributeRecords([]AttributeRecord{{ID: 0x9999, Value: 1}}); !errors.Is(err, ErrUnknownAttribute) {
		t.Errorf("err = %v, want ErrUnknownAttribute", err)
	}
	b, err := def.EncodeAttributeRecords([]AttributeRecord{{ID: 0x9999, DataTypeID: TypeUint8, Value: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte{0x99, 0x99, 0x20, 0x01}) {
		t.Errorf("encoded %X", b)
	}
}

func TestReportingConfigRecord(t *testing.T) {
	reports := Array0(ReportingConfigRecord)
	b, err := reports.Encode([]any{
		Args{"attributeId": 0x0000, "attributeDataType": TypeInt16, "minInterval": 1, "maxInterval": 300, "minChange": 10},
		Args{"attributeId": 0x0000, "attributeDataType": TypeBool, "maxInterval": 3600, "minChange": 5},
		Args{"direction": "received", "attributeId": 0x0021, "timeoutPeriod": 10},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0x00, 0x00, 0x00, 0x29, 0x01, 0x00, 0x2C, 0x01, 0x0A, 0x00,
		0x00, 0x00, 0x00, 0x10, 0x00, 0x00, 0x10, 0x0E,
		0x01, 0x21, 0x00, 0x0A, 0x00,
	}
	if !bytes.Equal(b, want) {
		t.Fatalf("encoded\n%X\nwant\n%X", b, want)
	}

	v, n, err := reports.Decode(b)
	if err != nil || n != len(b) {
		t.Fatalf("decode: %v, consumed %d", err, n)
	}
	items := v.([]any)
	if len(items) != 3 {
		t.Fatalf("decoded %d records", len(items))
	}
	first := items[0].(Args)
	if first["minChange"] != int16(10) || first["maxInterval"] != uint16(300) {
		t.Errorf("record 0 = %v", first)
	}
	if _, ok := items[1].(Args)["minChange"]; ok {
		t.Error("discrete types carry no reportable change")
	}
	if items[2].(Args)["direction"] != "received" || items[2].(Args)["timeoutPeriod"] != uint16(10) {
		t.Errorf("record 2 = %v", items[2])
	}
}

func TestReportingConfigStatusRecord(t *testing.T) {
	statuses := Array0(ConfigureReportingStatusRecord.Type())
	v, _, err := statuses.Decode([]byte{0x86, 0x00, 0x05, 0x40})
	if err != nil {
		t.Fatal(err)
	}
	rec := v.([]any)[0].(Args)
	if rec["status"] != "UNSUPPORTED_ATTRIBUTE" || rec["attributeId"] != uint16(0x4005) || rec["direction"] != "reported" {
		t.Errorf("record = %v", rec)
	}

	v, n, err := ReportingConfigStatusRecord.Decode([]byte{0x00})
	if err != nil || n != 1 || v.(Args)["status"] != "SUCCESS" {
		t.Errorf("lone success: %v, %d, %v", v, n, err)
	}

	b, err := ReportingConfigStatusRecord.Encode(Args{"status": "UNREPORTABLE_ATTRIBUTE", "attributeId": 0x0000})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte{0x8C, 0x00, 0x00, 0x00}) {
		t.Errorf("encoded %X", b)
	}
}
