package clusters

import "zigbee-go-zcl/internal/zcl"

var moveMode = zcl.Enum8(map[string]uint64{"up": 0, "down": 1})

var (
	moveToLevelArgs = []zcl.Field{
		{Name: "level", Type: zcl.Uint8},
		{Name: "transitionTime", Type: zcl.Uint16},
	}
	moveArgs = []zcl.Field{
		{Name: "moveMode", Type: moveMode},
		{Name: "rate", Type: zcl.Uint8},
	}
	stepArgs = []zcl.Field{
		{Name: "mode", Type: moveMode},
		{Name: "stepSize", Type: zcl.Uint8},
		{Name: "transitionTime", Type: zcl.Uint16},
	}
)

var LevelControl = zcl.ClusterDef{
	ID:   0x0008,
	Name: "levelControl",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "currentLevel", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0001, Name: "remainingTime", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x000F, Name: "options", Type: zcl.Map8("executeIfOff", "coupleColorTempToLevel"), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0010, Name: "onOffTransitionTime", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0011, Name: "onLevel", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x4000, Name: "startUpCurrentLevel", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessWrite},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "moveToLevel", Direction: zcl.DirectionToServer, Args: moveToLevelArgs},
		{ID: 0x01, Name: "move", Direction: zcl.DirectionToServer, Args: moveArgs},
		{ID: 0x02, Name: "step", Direction: zcl.DirectionToServer, Args: stepArgs},
		{ID: 0x03, Name: "stop", Direction: zcl.DirectionToServer},
		{ID: 0x04, Name: "moveToLevelWithOnOff", Direction: zcl.DirectionToServer, Args: moveToLevelArgs},
		{ID: 0x05, Name: "moveWithOnOff", Direction: zcl.DirectionToServer, Args: moveArgs},
		{ID: 0x06, Name: "stepWithOnOff", Direction: zcl.DirectionToServer, Args: stepArgs},
		{ID: 0x07, Name: "stopWithOnOff", Direction: zcl.DirectionToServer},
	},
}
