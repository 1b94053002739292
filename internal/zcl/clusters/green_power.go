package clusters

import "zigbee-go-zcl/internal/zcl"

var GreenPower = zcl.ClusterDef{
	ID:   0x0021,
	Name: "greenPower",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "maxSinkTableEntries", Type: zcl.Uint8, Access: zcl.AccessRead},
		{ID: 0x0001, Name: "sinkTable", Type: zcl.Octstr, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "communicationMode", Type: zcl.Map8(), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0003, Name: "commissioningExitMode", Type: zcl.Map8(), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0004, Name: "commissioningWindow", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0005, Name: "securityLevel", Type: zcl.Map8(), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0006, Name: "functionality", Type: zcl.Map24(), Access: zcl.AccessRead},
		{ID: 0x0007, Name: "activeFunctionality", Type: zcl.Map24(), Access: zcl.AccessRead},
		// Proxy side
		{ID: 0x0010, Name: "maxProxyTableEntries", Type: zcl.Uint8, Access: zcl.AccessRead},
		{ID: 0x0011, Name: "proxyTable", Type: zcl.Octstr, Access: zcl.AccessRead},
		{ID: 0x0016, Name: "sharedSecurityKeyType", Type: zcl.Map8(), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0022, Name: "linkKey", Type: zcl.Octstr, Access: zcl.AccessRead | zcl.AccessWrite},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "gpNotification", Direction: zcl.DirectionToServer},
		{ID: 0x01, Name: "gpPairingSearch", Direction: zcl.DirectionToServer},
		{ID: 0x04, Name: "gpCommissioningNotification", Direction: zcl.DirectionToServer},
		{ID: 0x00, Name: "gpNotificationResponse", Direction: zcl.DirectionToClient},
		{ID: 0x01, Name: "gpPairing", Direction: zcl.DirectionToClient},
		{ID: 0x02, Name: "gpProxyCommissioningMode", Direction: zcl.DirectionToClient},
		{ID: 0x06, Name: "gpResponse", Direction: zcl.DirectionToClient},
	},
}
