package clusters

import "zigbee-go-zcl/internal/zcl"

var PressureMeasurement = zcl.ClusterDef{
	ID:   0x0403,
	Name: "pressureMeasurement",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "measuredValue", Type: zcl.Int16, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0001, Name: "minMeasuredValue", Type: zcl.Int16, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "maxMeasuredValue", Type: zcl.Int16, Access: zcl.AccessRead},
		{ID: 0x0003, Name: "tolerance", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0010, Name: "scaledValue", Type: zcl.Int16, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0014, Name: "scale", Type: zcl.Int8, Access: zcl.AccessRead},
	},
}
