package clusters

import "zigbee-go-zcl/internal/zcl"

var Identify = zcl.ClusterDef{
	ID:   0x0003,
	Name: "identify",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "identifyTime", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "identify", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{{Name: "identifyTime", Type: zcl.Uint16}}},
		{ID: 0x01, Name: "identifyQuery", Direction: zcl.DirectionToServer,
			Response: &zcl.CommandDef{ID: 0x00, Args: []zcl.Field{{Name: "timeout", Type: zcl.Uint16}}}},
		{ID: 0x40, Name: "triggerEffect", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{
				{Name: "effectIdentifier", Type: zcl.Enum8(map[string]uint64{
					"blink":      0,
					"breathe":    1,
					"okay":       2,
					"chanChange": 11,
					"finish":     254,
					"stop":       255,
				})},
				{Name: "effectVariant", Type: zcl.Uint8},
			}},
	},
}
