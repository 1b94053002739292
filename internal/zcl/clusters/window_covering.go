package clusters

import "zigbee-go-zcl/internal/zcl"

var WindowCovering = zcl.ClusterDef{
	ID:   0x0102,
	Name: "windowCovering",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "windowCoveringType", Type: zcl.Enum8(nil), Access: zcl.AccessRead},
		{ID: 0x0003, Name: "currentPositionLiftPercent", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0004, Name: "currentPositionTiltPercent", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0007, Name: "configStatus", Type: zcl.Map8(), Access: zcl.AccessRead},
		{ID: 0x0008, Name: "currentPositionLiftPercentage", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0009, Name: "currentPositionTiltPercentage", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0017, Name: "mode", Type: zcl.Map8(), Access: zcl.AccessRead | zcl.AccessWrite},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "upOpen", Direction: zcl.DirectionToServer},
		{ID: 0x01, Name: "downClose", Direction: zcl.DirectionToServer},
		{ID: 0x02, Name: "stop", Direction: zcl.DirectionToServer},
		{ID: 0x04, Name: "goToLiftValue", Direction: zcl.DirectionToServer},
		{ID: 0x05, Name: "goToLiftPercentage", Direction: zcl.DirectionToServer},
		{ID: 0x07, Name: "goToTiltValue", Direction: zcl.DirectionToServer},
		{ID: 0x08, Name: "goToTiltPercentage", Direction: zcl.DirectionToServer},
	},
}
