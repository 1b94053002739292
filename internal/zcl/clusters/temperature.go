package clusters

import "zigbee-go-zcl/internal/zcl"

var TemperatureMeasurement = zcl.ClusterDef{
	ID:   0x0402,
	Name: "temperatureMeasurement",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "measuredValue", Type: zcl.Int16, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0001, Name: "minMeasuredValue", Type: zcl.Int16, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "maxMeasuredValue", Type: zcl.Int16, Access: zcl.AccessRead},
		{ID: 0x0003, Name: "tolerance", Type: zcl.Uint16, Access: zcl.AccessRead},
	},
}
