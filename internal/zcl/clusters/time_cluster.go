package clusters

import "zigbee-go-zcl/internal/zcl"

var Time = zcl.ClusterDef{
	ID:   0x000A,
	Name: "time",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "time", Type: zcl.UTC, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0001, Name: "timeStatus", Type: zcl.Map8(), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0002, Name: "timeZone", Type: zcl.Int32, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0007, Name: "localTime", Type: zcl.Uint32, Access: zcl.AccessRead},
	},
}
