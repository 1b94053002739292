package clusters

import "zigbee-go-zcl/internal/zcl"

var BallastConfiguration = zcl.ClusterDef{
	ID:   0x0301,
	Name: "ballastConfiguration",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "physicalMinLevel", Type: zcl.Uint8, Access: zcl.AccessRead},
		{ID: 0x0001, Name: "physicalMaxLevel", Type: zcl.Uint8, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "ballastStatus", Type: zcl.Map8(), Access: zcl.AccessRead},
		{ID: 0x0010, Name: "minLevel", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0011, Name: "maxLevel", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0014, Name: "powerOnLevel", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0015, Name: "powerOnFadeTime", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0016, Name: "intrinsicBallastFactor", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0017, Name: "ballastFactorAdjustment", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0020, Name: "lampQuantity", Type: zcl.Uint8, Access: zcl.AccessRead},
		{ID: 0x0030, Name: "lampType", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0031, Name: "lampManufacturer", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0032, Name: "lampRatedHours", Type: zcl.Uint24, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0033, Name: "lampBurnHours", Type: zcl.Uint24, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0034, Name: "lampAlarmMode", Type: zcl.Map8(), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0035, Name: "lampBurnHoursTripPoint", Type: zcl.Uint24, Access: zcl.AccessRead | zcl.AccessWrite},
	},
}
