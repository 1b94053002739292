package clusters

import "zigbee-go-zcl/internal/zcl"

var TouchlinkCommissioning = zcl.ClusterDef{
	ID:   0x1000,
	Name: "touchlinkCommissioning",
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "scanRequest", Direction: zcl.DirectionToServer},
		{ID: 0x02, Name: "deviceInformationRequest", Direction: zcl.DirectionToServer},
		{ID: 0x06, Name: "identifyRequest", Direction: zcl.DirectionToServer},
		{ID: 0x07, Name: "resetToFactoryNewRequest", Direction: zcl.DirectionToServer},
		{ID: 0x10, Name: "networkStartRequest", Direction: zcl.DirectionToServer},
		{ID: 0x12, Name: "networkJoinRouterRequest", Direction: zcl.DirectionToServer},
		{ID: 0x14, Name: "networkJoinEndDeviceRequest", Direction: zcl.DirectionToServer},
		{ID: 0x16, Name: "networkUpdateRequest", Direction: zcl.DirectionToServer},
		{ID: 0x01, Name: "scanResponse", Direction: zcl.DirectionToClient},
		{ID: 0x03, Name: "deviceInformationResponse", Direction: zcl.DirectionToClient},
		{ID: 0x11, Name: "networkStartResponse", Direction: zcl.DirectionToClient},
		{ID: 0x13, Name: "networkJoinRouterResponse", Direction: zcl.DirectionToClient},
		{ID: 0x15, Name: "networkJoinEndDeviceResponse", Direction: zcl.DirectionToClient},
	},
}
