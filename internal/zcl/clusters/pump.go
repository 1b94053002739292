package clusters

import "zigbee-go-zcl/internal/zcl"

var PumpConfigurationAndControl = zcl.ClusterDef{
	ID:   0x0200,
	Name: "pumpConfigurationAndControl",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "maxPressure", Type: zcl.Int16, Access: zcl.AccessRead},
		{ID: 0x0001, Name: "maxSpeed", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "maxFlow", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0003, Name: "minConstPressure", Type: zcl.Int16, Access: zcl.AccessRead},
		{ID: 0x0004, Name: "maxConstPressure", Type: zcl.Int16, Access: zcl.AccessRead},
		{ID: 0x0005, Name: "minCompPressure", Type: zcl.Int16, Access: zcl.AccessRead},
		{ID: 0x0006, Name: "maxCompPressure", Type: zcl.Int16, Access: zcl.AccessRead},
		{ID: 0x0007, Name: "minConstSpeed", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0008, Name: "maxConstSpeed", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0009, Name: "minConstFlow", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x000A, Name: "maxConstFlow", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x000B, Name: "minConstTemp", Type: zcl.Int16, Access: zcl.AccessRead},
		{ID: 0x000C, Name: "maxConstTemp", Type: zcl.Int16, Access: zcl.AccessRead},
		{ID: 0x0010, Name: "pumpStatus", Type: zcl.Map16(), Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0011, Name: "effectiveOperationMode", Type: zcl.Enum8(nil), Access: zcl.AccessRead},
		{ID: 0x0012, Name: "effectiveControlMode", Type: zcl.Enum8(nil), Access: zcl.AccessRead},
		{ID: 0x0013, Name: "capacity", Type: zcl.Int16, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0014, Name: "speed", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0020, Name: "operationMode", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0021, Name: "controlMode", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0022, Name: "alarmMask", Type: zcl.Map16(), Access: zcl.AccessRead},
	},
}
