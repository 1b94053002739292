package zcl

import (
	"encoding/binary"
	"fmt"
)

// attributeRecord is the codec of one attribute record of cluster c:
// attributeId, then (with status) a status byte, then, unless the status is
// a failure, the data type id and the value. Attributes the cluster does
// not declare are decoded by their wire type id.
func attributeRecord(c *ClusterDef, withStatus bool) *DataType {
	name := c.Name + ".attributeRecord"
	if withStatus {
		name = c.Name + ".attributeStatusRecord"
	}
	t := &DataType{Internal: true, Name: name, Variable: true}
	t.enc = func(t *DataType, dst []byte, v any) ([]byte, error) {
		args, ok := v.(Args)
		if !ok {
			m, isMap := v.(map[string]any)
			if !isMap {
				return dst, invalid(t, v)
			}
			args = m
		}
		id, ok := toUint64(args["id"])
		if !ok || id > 0xFFFF {
			return dst, fmt.Errorf("%w: %s needs an attribute id", ErrInvalidValue, t.Name)
		}
		out := binary.LittleEndian.AppendUint16(dst, uint16(id))
		if withStatus {
			status := orDefault(args["status"], StatusSuccess)
			var err error
			if out, err = StatusType.Append(out, status); err != nil {
				return dst, err
			}
			if s, _ := ParseStatus(status); s != StatusSuccess {
				return out, nil
			}
		}
		dt, err := c.recordType(uint16(id), args["dataTypeId"])
		if err != nil {
			return dst, err
		}
		out = append(out, dt.ID)
		if out, err = dt.Append(out, args["value"]); err != nil {
			return dst, fmt.Errorf("attribute 0x%04X: %w", id, err)
		}
		return out, nil
	}
	t.dec = func(t *DataType, buf []byte) (any, int, error) {
		if len(buf) < 3 {
			return nil, 0, short(t, 3, len(buf))
		}
		id := binary.LittleEndian.Uint16(buf)
		out := Args{"id": id}
		if a := c.FindAttribute(id); a != nil {
			out["name"] = a.Name
		}
		pos := 2
		if withStatus {
			out["status"] = statusValue(buf[pos])
			pos++
			if buf[pos-1] != uint8(StatusSuccess) {
				return out, pos, nil
			}
			if len(buf) < pos+1 {
				return nil, 0, short(t, pos+1, len(buf))
			}
		}
		typeID := buf[pos]
		pos++
		out["dataTypeId"] = typeID
		dt, err := c.recordType(id, typeID)
		if err != nil {
			return nil, 0, err
		}
		v, n, err := dt.Decode(buf[pos:])
		if err != nil {
			return nil, 0, err
		}
		out["value"] = v
		return out, pos + n, nil
	}
	return t
}

// recordType picks the declared type of a known attribute, or the type named
// by the wire id for unknown ones.
func (c *ClusterDef) recordType(id uint16, typeID any) (*DataType, error) {
	if a := c.FindAttribute(id); a != nil && !a.Type.Internal {
		return a.Type, nil
	}
	tid, ok := toUint64(typeID)
	if !ok {
		return nil, fmt.Errorf("%w: 0x%04X on %s", ErrUnknownAttribute, id, c.Name)
	}
	dt, ok := TypeByID(uint8(tid))
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02X", ErrUnknownType, tid)
	}
	return dt, nil
}

// AttributeRecord is one entry of a read, write or report payload.
type AttributeRecord struct {
	ID     uint16
	Name   string
	Status Status
	// DataTypeID is the wire type. It is only needed to encode attributes
	// the cluster does not declare.
	DataTypeID uint8
	Value      any
}

// DecodeReadResults decodes a read attributes response payload.
func (c *ClusterDef) DecodeReadResults(data []byte) []AttributeRecord {
	return c.decodeRecords(c.readResults, data)
}

// DecodeAttributeRecords decodes a write or report attributes payload.
func (c *ClusterDef) DecodeAttributeRecords(data []byte) []AttributeRecord {
	return c.decodeRecords(c.writes, data)
}

func (c *ClusterDef) decodeRecords(t *DataType, data []byte) []AttributeRecord {
	v, _, _ := t.Decode(data)
	items, _ := v.([]any)
	out := make([]AttributeRecord, 0, len(items))
	for _, item := range items {
		args := item.(Args)
		rec := AttributeRecord{ID: args["id"].(uint16), Value: args["value"]}
		rec.Name, _ = args["name"].(string)
		rec.DataTypeID, _ = args["dataTypeId"].(uint8)
		if s, ok := ParseStatus(args["status"]); ok {
			rec.Status = s
		}
		out = append(out, rec)
	}
	return out
}

// EncodeReadResults encodes read attributes response records.
func (c *ClusterDef) EncodeReadResults(records []AttributeRecord) ([]byte, error) {
	return c.encodeRecords(c.readResults, records)
}

// EncodeAttributeRecords encodes write or report attributes records.
func (c *ClusterDef) EncodeAttributeRecords(records []AttributeRecord) ([]byte, error) {
	return c.encodeRecords(c.writes, records)
}

func (c *ClusterDef) encodeRecords(t *DataType, records []AttributeRecord) ([]byte, error) {
	items := make([]any, len(records))
	for i, r := range records {
		rec := Args{"id": r.ID, "status": r.Status, "value": r.Value}
		if r.DataTypeID != 0 {
			rec["dataTypeId"] = r.DataTypeID
		}
		items[i] = rec
	}
	return t.Encode(items)
}
