package clusters

import "zigbee-go-zcl/internal/zcl"

var Commissioning = zcl.ClusterDef{
	ID:   0x0015,
	Name: "commissioning",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "shortAddress", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0001, Name: "extendedPANId", Type: zcl.EUI64, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0002, Name: "panId", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0003, Name: "channelMask", Type: zcl.Map32(), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0004, Name: "protocolVersion", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0005, Name: "stackProfile", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0006, Name: "startupControl", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0010, Name: "trustCenterAddress", Type: zcl.EUI64, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0021, Name: "networkKeyType", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "restartDevice", Direction: zcl.DirectionToServer},
		{ID: 0x01, Name: "saveStartupParameters", Direction: zcl.DirectionToServer},
		{ID: 0x02, Name: "restoreStartupParameters", Direction: zcl.DirectionToServer},
		{ID: 0x03, Name: "resetStartupParameters", Direction: zcl.DirectionToServer},
	},
}
