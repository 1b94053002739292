package clusters

import "zigbee-go-zcl/internal/zcl"

var ThermostatUserInterfaceConfiguration = zcl.ClusterDef{
	ID:   0x0204,
	Name: "thermostatUserInterfaceConfiguration",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "temperatureDisplayMode", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0001, Name: "keypadLockout", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0002, Name: "scheduleProgrammingVisibility", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
	},
}
