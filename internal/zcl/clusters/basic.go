package clusters

import "zigbee-go-zcl/internal/zcl"

var Basic = zcl.ClusterDef{
	ID:   0x0000,
	Name: "basic",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "zclVersion", Type: zcl.Uint8, Access: zcl.AccessRead},
		{ID: 0x0001, Name: "appVersion", Type: zcl.Uint8, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "stackVersion", Type: zcl.Uint8, Access: zcl.AccessRead},
		{ID: 0x0003, Name: "hwVersion", Type: zcl.Uint8, Access: zcl.AccessRead},
		{ID: 0x0004, Name: "manufacturerName", Type: zcl.String, Access: zcl.AccessRead},
		{ID: 0x0005, Name: "modelId", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0006, Name: "dateCode", Type: zcl.String, Access: zcl.AccessRead},
		{ID: 0x0007, Name: "powerSource", Type: zcl.Enum8(map[string]uint64{
			"unknown":                             0x00,
			"mains":                               0x01,
			"mains3phase":                         0x02,
			"battery":                             0x03,
			"dc":                                  0x04,
			"emergencyMains":                      0x05,
			"emergencyMainsAndTransferSwitch":     0x06,
			"mainsWithBatteryBackup":              0x81,
			"batteryWithBatteryBackup":            0x83,
			"dcWithBatteryBackup":                 0x84,
			"emergencyMainsWithBatteryBackup":     0x85,
			"emergencyMainsAndTransferWithBackup": 0x86,
		}), Access: zcl.AccessRead},
		{ID: 0x0010, Name: "locationDesc", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0012, Name: "deviceEnabled", Type: zcl.Bool, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x4000, Name: "swBuildId", Type: zcl.String, Access: zcl.AccessRead},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "factoryReset", Direction: zcl.DirectionToServer},
	},
}
