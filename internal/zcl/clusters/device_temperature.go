package clusters

import "zigbee-go-zcl/internal/zcl"

var DeviceTemperatureConfiguration = zcl.ClusterDef{
	ID:   0x0002,
	Name: "deviceTemperature",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "currentTemperature", Type: zcl.Int16, Access: zcl.AccessRead},
		{ID: 0x0001, Name: "minTempExperienced", Type: zcl.Int16, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "maxTempExperienced", Type: zcl.Int16, Access: zcl.AccessRead},
		{ID: 0x0003, Name: "overTempTotalDwell", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0010, Name: "deviceTempAlarmMask", Type: zcl.Map8(), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0011, Name: "lowTempThreshold", Type: zcl.Int16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0012, Name: "highTempThreshold", Type: zcl.Int16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0013, Name: "lowTempDwellTripPoint", Type: zcl.Uint24, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0014, Name: "highTempDwellTripPoint", Type: zcl.Uint24, Access: zcl.AccessRead | zcl.AccessWrite},
	},
}
