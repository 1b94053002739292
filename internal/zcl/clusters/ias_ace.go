package clusters

import "zigbee-go-zcl/internal/zcl"

var IASACE = zcl.ClusterDef{
	ID:   0x0501,
	Name: "iasACE",
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "arm", Direction: zcl.DirectionToServer},
		{ID: 0x01, Name: "bypass", Direction: zcl.DirectionToServer},
		{ID: 0x02, Name: "emergency", Direction: zcl.DirectionToServer},
		{ID: 0x03, Name: "fire", Direction: zcl.DirectionToServer},
		{ID: 0x04, Name: "panic", Direction: zcl.DirectionToServer},
		{ID: 0x05, Name: "getZoneIDMap", Direction: zcl.DirectionToServer},
		{ID: 0x06, Name: "getZoneInformation", Direction: zcl.DirectionToServer},
		{ID: 0x07, Name: "getPanelStatus", Direction: zcl.DirectionToServer},
		{ID: 0x08, Name: "getBypassedZoneList", Direction: zcl.DirectionToServer},
		{ID: 0x09, Name: "getZoneStatus", Direction: zcl.DirectionToServer},
		{ID: 0x00, Name: "armResponse", Direction: zcl.DirectionToClient},
		{ID: 0x01, Name: "getZoneIDMapResponse", Direction: zcl.DirectionToClient},
		{ID: 0x02, Name: "getZoneInformationResponse", Direction: zcl.DirectionToClient},
		{ID: 0x03, Name: "zoneStatusChanged", Direction: zcl.DirectionToClient},
		{ID: 0x04, Name: "panelStatusChanged", Direction: zcl.DirectionToClient},
		{ID: 0x05, Name: "getPanelStatusResponse", Direction: zcl.DirectionToClient},
		{ID: 0x06, Name: "setBypassedZoneList", Direction: zcl.DirectionToClient},
		{ID: 0x07, Name: "bypassResponse", Direction: zcl.DirectionToClient},
		{ID: 0x08, Name: "getZoneStatusResponse", Direction: zcl.DirectionToClient},
	},
}

var IASWD = zcl.ClusterDef{
	ID:   0x0502,
	Name: "iasWD",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "maxDuration", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "startWarning", Direction: zcl.DirectionToServer},
		{ID: 0x01, Name: "squawk", Direction: zcl.DirectionToServer},
	},
}
