package clusters

import "zigbee-go-zcl/internal/zcl"

var lightSensorType = zcl.Enum8(map[string]uint64{
	"photodiode": 0,
	"cmos":       1,
	"unknown":    0xFF,
})

var IlluminanceMeasurement = zcl.ClusterDef{
	ID:   0x0400,
	Name: "illuminanceMeasurement",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "measuredValue", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0001, Name: "minMeasuredValue", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "maxMeasuredValue", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0003, Name: "tolerance", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0004, Name: "lightSensorType", Type: lightSensorType, Access: zcl.AccessRead},
	},
}

var IlluminanceLevelSensing = zcl.ClusterDef{
	ID:   0x0401,
	Name: "illuminanceLevelSensing",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "levelStatus", Type: zcl.Enum8(map[string]uint64{
			"onTarget":    0,
			"belowTarget": 1,
			"aboveTarget": 2,
		}), Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0001, Name: "lightSensorType", Type: lightSensorType, Access: zcl.AccessRead},
		{ID: 0x0010, Name: "illuminanceTargetLevel", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
	},
}
