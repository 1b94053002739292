package clusters

import "zigbee-go-zcl/internal/zcl"

var OnOff = zcl.ClusterDef{
	ID:   0x0006,
	Name: "onOff",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "onOff", Type: zcl.Bool, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x4000, Name: "globalSceneControl", Type: zcl.Bool, Access: zcl.AccessRead},
		{ID: 0x4001, Name: "onTime", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x4002, Name: "offWaitTime", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x4003, Name: "startUpOnOff", Type: zcl.Enum8(map[string]uint64{
			"off":      0,
			"on":       1,
			"toggle":   2,
			"previous": 0xFF,
		}), Access: zcl.AccessRead | zcl.AccessWrite},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "setOff", Direction: zcl.DirectionToServer},
		{ID: 0x01, Name: "setOn", Direction: zcl.DirectionToServer},
		{ID: 0x02, Name: "toggle", Direction: zcl.DirectionToServer},
		{ID: 0x40, Name: "offWithEffect", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{
				{Name: "effectIdentifier", Type: zcl.Uint8},
				{Name: "effectVariant", Type: zcl.Uint8},
			}},
		{ID: 0x41, Name: "onWithRecallGlobalScene", Direction: zcl.DirectionToServer},
		{ID: 0x42, Name: "onWithTimedOff", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{
				{Name: "onOffControl", Type: zcl.Map8("acceptOnlyWhenOn")},
				{Name: "onTime", Type: zcl.Uint16},
				{Name: "offWaitTime", Type: zcl.Uint16},
			}},
	},
}
