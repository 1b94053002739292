package clusters

import "zigbee-go-zcl/internal/zcl"

var PowerConfiguration = zcl.ClusterDef{
	ID:   0x0001,
	Name: "powerConfiguration",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "mainsVoltage", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0001, Name: "mainsFrequency", Type: zcl.Uint8, Access: zcl.AccessRead},
		{ID: 0x0020, Name: "batteryVoltage", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0021, Name: "batteryPercentageRemaining", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0030, Name: "batteryManufacturer", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0031, Name: "batterySize", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0033, Name: "batteryQuantity", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0034, Name: "batteryRatedVoltage", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0035, Name: "batteryAlarmMask", Type: zcl.Map8(), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0036, Name: "batteryVoltageMinThreshold", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessWrite},
	},
}
