package clusters

import "zigbee-go-zcl/internal/zcl"

var FanControl = zcl.ClusterDef{
	ID:   0x0202,
	Name: "fanControl",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "fanMode", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0001, Name: "fanModeSequence", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
	},
}
