package clusters

import "zigbee-go-zcl/internal/zcl"

var PowerProfile = zcl.ClusterDef{
	ID:   0x001A,
	Name: "powerProfile",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "totalProfileNum", Type: zcl.Uint8, Access: zcl.AccessRead},
		{ID: 0x0001, Name: "multipleScheduling", Type: zcl.Bool, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "energyFormatting", Type: zcl.Map8(), Access: zcl.AccessRead},
		{ID: 0x0003, Name: "energyRemote", Type: zcl.Bool, Access: zcl.AccessRead},
		{ID: 0x0004, Name: "scheduleMode", Type: zcl.Map8(), Access: zcl.AccessRead | zcl.AccessWrite},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "powerProfileRequest", Direction: zcl.DirectionToServer},
		{ID: 0x01, Name: "powerProfileStateRequest", Direction: zcl.DirectionToServer},
		{ID: 0x02, Name: "getPowerProfilePriceResponse", Direction: zcl.DirectionToServer},
		{ID: 0x03, Name: "getOverallSchedulePriceResponse", Direction: zcl.DirectionToServer},
		{ID: 0x04, Name: "energyPhasesScheduleNotification", Direction: zcl.DirectionToServer},
		{ID: 0x05, Name: "energyPhasesScheduleResponse", Direction: zcl.DirectionToServer},
		{ID: 0x06, Name: "powerProfileScheduleConstraintsRequest", Direction: zcl.DirectionToServer},
		{ID: 0x07, Name: "energyPhasesScheduleStateRequest", Direction: zcl.DirectionToServer},
		{ID: 0x00, Name: "powerProfileNotification", Direction: zcl.DirectionToClient},
		{ID: 0x01, Name: "powerProfileResponse", Direction: zcl.DirectionToClient},
		{ID: 0x02, Name: "powerProfileStateResponse", Direction: zcl.DirectionToClient},
		{ID: 0x03, Name: "getPowerProfilePrice", Direction: zcl.DirectionToClient},
		{ID: 0x04, Name: "powerProfileStateNotification", Direction: zcl.DirectionToClient},
		{ID: 0x05, Name: "getOverallSchedulePrice", Direction: zcl.DirectionToClient},
		{ID: 0x06, Name: "energyPhasesScheduleRequest", Direction: zcl.DirectionToClient},
		{ID: 0x07, Name: "energyPhasesScheduleStateResponse", Direction: zcl.DirectionToClient},
		{ID: 0x08, Name: "energyPhasesScheduleStateNotification", Direction: zcl.DirectionToClient},
		{ID: 0x09, Name: "powerProfileScheduleConstraintsNotification", Direction: zcl.DirectionToClient},
		{ID: 0x0A, Name: "powerProfileScheduleConstraintsResponse", Direction: zcl.DirectionToClient},
	},
}

var ApplianceControl = zcl.ClusterDef{
	ID:   0x001B,
	Name: "applianceControl",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "startTime", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0001, Name: "finishTime", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "remainingTime", Type: zcl.Uint16, Access: zcl.AccessRead},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "executionOfACommand", Direction: zcl.DirectionToServer},
		{ID: 0x01, Name: "signalState", Direction: zcl.DirectionToServer},
		{ID: 0x02, Name: "writeFunctions", Direction: zcl.DirectionToServer},
		{ID: 0x03, Name: "overloadPauseResume", Direction: zcl.DirectionToServer},
		{ID: 0x04, Name: "overloadPause", Direction: zcl.DirectionToServer},
		{ID: 0x05, Name: "overloadWarning", Direction: zcl.DirectionToServer},
		{ID: 0x00, Name: "signalStateResponse", Direction: zcl.DirectionToClient},
		{ID: 0x01, Name: "signalStateNotification", Direction: zcl.DirectionToClient},
	},
}
