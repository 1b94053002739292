package clusters

import "zigbee-go-zcl/internal/zcl"

var PollControl = zcl.ClusterDef{
	ID:   0x0020,
	Name: "pollControl",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "checkInInterval", Type: zcl.Uint32, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0001, Name: "longPollInterval", Type: zcl.Uint32, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "shortPollInterval", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0003, Name: "fastPollTimeout", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0004, Name: "checkInIntervalMin", Type: zcl.Uint32, Access: zcl.AccessRead},
		{ID: 0x0005, Name: "longPollIntervalMin", Type: zcl.Uint32, Access: zcl.AccessRead},
		{ID: 0x0006, Name: "fastPollTimeoutMax", Type: zcl.Uint16, Access: zcl.AccessRead},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "checkInResponse", Direction: zcl.DirectionToServer},
		{ID: 0x01, Name: "fastPollStop", Direction: zcl.DirectionToServer},
		{ID: 0x02, Name: "setLongPollInterval", Direction: zcl.DirectionToServer},
		{ID: 0x03, Name: "setShortPollInterval", Direction: zcl.DirectionToServer},
		{ID: 0x00, Name: "checkIn", Direction: zcl.DirectionToClient},
	},
}
