package clusters

import "zigbee-go-zcl/internal/zcl"

var ShadeConfiguration = zcl.ClusterDef{
	ID:   0x0100,
	Name: "shadeConfiguration",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "physicalClosedLimit", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0001, Name: "motorStepSize", Type: zcl.Uint8, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "status", Type: zcl.Map8(), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0010, Name: "closedLimit", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0011, Name: "mode", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
	},
}

var BarrierControl = zcl.ClusterDef{
	ID:   0x0103,
	Name: "barrierControl",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0001, Name: "movingState", Type: zcl.Enum8(nil), Access: zcl.AccessRead},
		{ID: 0x0002, Name: "safetyStatus", Type: zcl.Map16(), Access: zcl.AccessRead},
		{ID: 0x0003, Name: "capabilities", Type: zcl.Map8(), Access: zcl.AccessRead},
		{ID: 0x000A, Name: "barrierPosition", Type: zcl.Uint8, Access: zcl.AccessRead},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "goToPercent", Direction: zcl.DirectionToServer},
		{ID: 0x01, Name: "stop", Direction: zcl.DirectionToServer},
	},
}
