package clusters

import "zigbee-go-zcl/internal/zcl"

var hueDirection = zcl.Enum8(map[string]uint64{
	"shortestDistance": 0,
	"longestDistance":  1,
	"up":               2,
	"down":             3,
})

var colorMoveMode = zcl.Enum8(map[string]uint64{"stop": 0, "up": 1, "down": 3})

var colorStepMode = zcl.Enum8(map[string]uint64{"up": 1, "down": 3})

func transition(fields ...zcl.Field) []zcl.Field {
	return append(fields, zcl.Field{Name: "transitionTime", Type: zcl.Uint16})
}

var ColorControl = zcl.ClusterDef{
	ID:   0x0300,
	Name: "colorControl",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "currentHue", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0001, Name: "currentSaturation", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0002, Name: "remainingTime", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0003, Name: "currentX", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0004, Name: "currentY", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0007, Name: "colorTemperatureMireds", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0008, Name: "colorMode", Type: zcl.Enum8(map[string]uint64{
			"currentHueAndCurrentSaturation": 0,
			"currentXAndCurrentY":            1,
			"colorTemperatureMireds":         2,
		}), Access: zcl.AccessRead},
		{ID: 0x000F, Name: "options", Type: zcl.Map8("executeIfOff"), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x4001, Name: "enhancedCurrentHue", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x4002, Name: "enhancedColorMode", Type: zcl.Enum8(nil), Access: zcl.AccessRead},
		{ID: 0x400A, Name: "colorCapabilities", Type: zcl.Map16("hueSaturation", "enhancedHue", "colorLoop", "xy", "colorTemperature"), Access: zcl.AccessRead},
		{ID: 0x400B, Name: "colorTempPhysicalMinMireds", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x400C, Name: "colorTempPhysicalMaxMireds", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x400D, Name: "coupleColorTempToLevelMinMireds", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x4010, Name: "startUpColorTemperatureMireds", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "moveToHue", Direction: zcl.DirectionToServer,
			Args: transition(zcl.Field{Name: "hue", Type: zcl.Uint8}, zcl.Field{Name: "direction", Type: hueDirection})},
		{ID: 0x01, Name: "moveHue", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{{Name: "moveMode", Type: colorMoveMode}, {Name: "rate", Type: zcl.Uint8}}},
		{ID: 0x02, Name: "stepHue", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{{Name: "stepMode", Type: colorStepMode}, {Name: "stepSize", Type: zcl.Uint8}, {Name: "transitionTime", Type: zcl.Uint8}}},
		{ID: 0x03, Name: "moveToSaturation", Direction: zcl.DirectionToServer,
			Args: transition(zcl.Field{Name: "saturation", Type: zcl.Uint8})},
		{ID: 0x04, Name: "moveSaturation", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{{Name: "moveMode", Type: colorMoveMode}, {Name: "rate", Type: zcl.Uint8}}},
		{ID: 0x05, Name: "stepSaturation", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{{Name: "stepMode", Type: colorStepMode}, {Name: "stepSize", Type: zcl.Uint8}, {Name: "transitionTime", Type: zcl.Uint8}}},
		{ID: 0x06, Name: "moveToHueAndSaturation", Direction: zcl.DirectionToServer,
			Args: transition(zcl.Field{Name: "hue", Type: zcl.Uint8}, zcl.Field{Name: "saturation", Type: zcl.Uint8})},
		{ID: 0x07, Name: "moveToColor", Direction: zcl.DirectionToServer,
			Args: transition(zcl.Field{Name: "colorX", Type: zcl.Uint16}, zcl.Field{Name: "colorY", Type: zcl.Uint16})},
		{ID: 0x08, Name: "moveColor", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{{Name: "rateX", Type: zcl.Int16}, {Name: "rateY", Type: zcl.Int16}}},
		{ID: 0x09, Name: "stepColor", Direction: zcl.DirectionToServer,
			Args: transition(zcl.Field{Name: "stepX", Type: zcl.Int16}, zcl.Field{Name: "stepY", Type: zcl.Int16})},
		{ID: 0x0A, Name: "moveToColorTemperature", Direction: zcl.DirectionToServer,
			Args: transition(zcl.Field{Name: "colorTemperature", Type: zcl.Uint16})},
		{ID: 0x47, Name: "stopMoveStep", Direction: zcl.DirectionToServer},
		{ID: 0x4B, Name: "moveColorTemperature", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{
				{Name: "moveMode", Type: colorMoveMode},
				{Name: "rate", Type: zcl.Uint16},
				{Name: "colorTemperatureMinimumMireds", Type: zcl.Uint16},
				{Name: "colorTemperatureMaximumMireds", Type: zcl.Uint16},
			}},
		{ID: 0x4C, Name: "stepColorTemperature", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{
				{Name: "stepMode", Type: colorStepMode},
				{Name: "stepSize", Type: zcl.Uint16},
				{Name: "transitionTime", Type: zcl.Uint16},
				{Name: "colorTemperatureMinimumMireds", Type: zcl.Uint16},
				{Name: "colorTemperatureMaximumMireds", Type: zcl.Uint16},
			}},
	},
}
