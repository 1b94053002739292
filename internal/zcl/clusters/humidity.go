package clusters

import "zigbee-go-zcl/internal/zcl"

var RelativeHumidity = zcl.ClusterDef{
	ID:   0x0405,
	Name: "relativeHumidity",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "measuredValue", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0001, Name: "minMeasuredValue", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "maxMeasuredValue", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0003, Name: "tolerance", Type: zcl.Uint16, Access: zcl.AccessRead},
	},
}
