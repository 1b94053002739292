package clusters

import "zigbee-go-zcl/internal/zcl"

var OccupancySensing = zcl.ClusterDef{
	ID:   0x0406,
	Name: "occupancySensing",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "occupancy", Type: zcl.Map8("occupied"), Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0001, Name: "occupancySensorType", Type: zcl.Enum8(map[string]uint64{
			"pir":              0,
			"ultrasonic":       1,
			"pirAndUltrasonic": 2,
			"physicalContact":  3,
		}), Access: zcl.AccessRead},
		{ID: 0x0002, Name: "occupancySensorTypeBitmap", Type: zcl.Map8("pir", "ultrasonic", "physicalContact"), Access: zcl.AccessRead},
		{ID: 0x0010, Name: "pirOccupiedToUnoccupiedDelay", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0011, Name: "pirUnoccupiedToOccupiedDelay", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0012, Name: "pirUnoccupiedToOccupiedThreshold", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessWrite},
	},
}
