package clusters

import "zigbee-go-zcl/internal/zcl"

var Thermostat = zcl.ClusterDef{
	ID:   0x0201,
	Name: "thermostat",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "localTemperature", Type: zcl.Int16, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0003, Name: "absMinHeatSetpointLimit", Type: zcl.Int16, Access: zcl.AccessRead},
		{ID: 0x0004, Name: "absMaxHeatSetpointLimit", Type: zcl.Int16, Access: zcl.AccessRead},
		{ID: 0x0005, Name: "absMinCoolSetpointLimit", Type: zcl.Int16, Access: zcl.AccessRead},
		{ID: 0x0006, Name: "absMaxCoolSetpointLimit", Type: zcl.Int16, Access: zcl.AccessRead},
		{ID: 0x0011, Name: "occupiedCoolingSetpoint", Type: zcl.Int16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0012, Name: "occupiedHeatingSetpoint", Type: zcl.Int16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x001B, Name: "controlSequenceOfOperation", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x001C, Name: "systemMode", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x001E, Name: "runningMode", Type: zcl.Enum8(nil), Access: zcl.AccessRead},
		{ID: 0x0029, Name: "runningState", Type: zcl.Map16(), Access: zcl.AccessRead},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "setpointRaiseLower", Direction: zcl.DirectionToServer},
	},
}
