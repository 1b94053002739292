package zcl

import (
	"encoding/binary"
	"fmt"
)

// Reporting configuration records. A "reported" record carries the
// attribute's data type, the reporting intervals and, for analog types only,
// a reportable change encoded with that data type. A "received" record
// carries a timeout period instead. The status form starts with a status
// byte and stops after the attribute id unless the status is SUCCESS.
var (
	ReportingConfigRecord       = reportingRecord(false)
	ReportingConfigStatusRecord = reportingRecord(true)
)

func reportingRecord(withStatus bool) *DataType {
	name := "reportingConfigurationRecord"
	if withStatus {
		name = "reportingConfigurationStatusRecord"
	}
	t := &DataType{Internal: true, Name: name, Variable: true}
	t.enc = func(t *DataType, dst []byte, v any) ([]byte, error) {
		return appendReportingRecord(t, dst, v, withStatus)
	}
	t.dec = func(t *DataType, buf []byte) (any, int, error) {
		return decodeReportingRecord(t, buf, withStatus)
	}
	return t
}

func appendReportingRecord(t *DataType, dst []byte, v any, withStatus bool) ([]byte, error) {
	args, ok := v.(Args)
	if !ok {
		m, isMap := v.(map[string]any)
		if !isMap {
			return dst, invalid(t, v)
		}
		args = m
	}
	out := dst
	var err error
	if withStatus {
		status := args["status"]
		if status == nil {
			status = StatusSuccess
		}
		if out, err = StatusType.Append(out, status); err != nil {
			return dst, err
		}
		if s, _ := ParseStatus(status); s != StatusSuccess {
			return appendDirectionAndID(t, dst, out, args)
		}
	}
	out, err = appendDirectionAndID(t, dst, out, args)
	if err != nil {
		return dst, err
	}
	direction, _ := ReportingDirection.enumValue(orDefault(args["direction"], uint64(0)))
	if direction == 1 {
		return Uint16.Append(out, orDefault(args["timeoutPeriod"], uint64(0)))
	}

	typeID, ok := toUint64(args["attributeDataType"])
	if !ok {
		return dst, fmt.Errorf("%w: %s needs attributeDataType", ErrInvalidValue, t.Name)
	}
	dt, ok := TypeByID(uint8(typeID))
	if !ok {
		return dst, fmt.Errorf("%w: 0x%02X", ErrUnknownType, typeID)
	}
	out = append(out, uint8(typeID))
	if out, err = Uint16.Append(out, orDefault(args["minInterval"], uint64(0))); err != nil {
		return dst, err
	}
	if out, err = Uint16.Append(out, orDefault(args["maxInterval"], uint64(0xFFFF))); err != nil {
		return dst, err
	}
	if dt.Analog {
		change := args["minChange"]
		if b, isRaw := change.([]byte); isRaw {
			return append(out, b...), nil
		}
		if out, err = dt.Append(out, orDefault(change, uint64(1))); err != nil {
			return dst, fmt.Errorf("%s minChange: %w", t.Name, err)
		}
	}
	return out, nil
}

func appendDirectionAndID(t *DataType, dst, out []byte, args Args) ([]byte, error) {
	var err error
	if out, err = ReportingDirection.Append(out, orDefault(args["direction"], uint64(0))); err != nil {
		return dst, err
	}
	if out, err = Uint16.Append(out, args["attributeId"]); err != nil {
		return dst, fmt.Errorf("%s attributeId: %w", t.Name, err)
	}
	return out, nil
}

func orDefault(v any, def any) any {
	if v == nil {
		return def
	}
	return v
}

func decodeReportingRecord(t *DataType, buf []byte, withStatus bool) (any, int, error) {
	out := Args{}
	pos := 0
	if withStatus {
		if len(buf) < 1 {
			return nil, 0, short(t, 1, 0)
		}
		out["status"] = statusValue(buf[0])
		pos++
		if len(buf) == 1 && buf[0] == uint8(StatusSuccess) {
			// a lone SUCCESS byte covers every record
			return out, 1, nil
		}
	}
	if len(buf) < pos+3 {
		return nil, 0, short(t, pos+3, len(buf))
	}
	direction := buf[pos]
	out["direction"] = ReportingDirection.enumSymbol(uint64(direction))
	out["attributeId"] = binary.LittleEndian.Uint16(buf[pos+1:])
	pos += 3
	if withStatus && out["status"] != "SUCCESS" {
		return out, pos, nil
	}

	if direction == 1 {
		if len(buf) < pos+2 {
			return nil, 0, short(t, pos+2, len(buf))
		}
		out["timeoutPeriod"] = binary.LittleEndian.Uint16(buf[pos:])
		return out, pos + 2, nil
	}

	if len(buf) < pos+5 {
		return nil, 0, short(t, pos+5, len(buf))
	}
	typeID := buf[pos]
	out["attributeDataType"] = typeID
	out["minInterval"] = binary.LittleEndian.Uint16(buf[pos+1:])
	out["maxInterval"] = binary.LittleEndian.Uint16(buf[pos+3:])
	pos += 5
	dt, ok := TypeByID(typeID)
	if !ok {
		return nil, 0, fmt.Errorf("%w: 0x%02X", ErrUnknownType, typeID)
	}
	if dt.Analog {
		v, n, err := dt.Decode(buf[pos:])
		if err != nil {
			return nil, 0, err
		}
		out["minChange"] = v
		pos += n
	}
	return out, pos, nil
}
