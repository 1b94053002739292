package clusters

import "zigbee-go-zcl/internal/zcl"

var MultistateInput = zcl.ClusterDef{
	ID:   0x0012,
	Name: "multistateInput",
	Attributes: []zcl.AttributeDef{
		{ID: 0x001C, Name: "description", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x004A, Name: "numberOfStates", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0051, Name: "outOfService", Type: zcl.Bool, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0055, Name: "presentValue", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite | zcl.AccessReport},
		{ID: 0x0067, Name: "reliability", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x006F, Name: "statusFlags", Type: zcl.Map8(), Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0100, Name: "applicationType", Type: zcl.Uint32, Access: zcl.AccessRead},
	},
}

var MultistateOutput = zcl.ClusterDef{
	ID:   0x0013,
	Name: "multistateOutput",
	Attributes: []zcl.AttributeDef{
		{ID: 0x001C, Name: "description", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x004A, Name: "numberOfStates", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0051, Name: "outOfService", Type: zcl.Bool, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0055, Name: "presentValue", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite | zcl.AccessReport},
		{ID: 0x0067, Name: "reliability", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0068, Name: "relinquishDefault", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x006F, Name: "statusFlags", Type: zcl.Map8(), Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0100, Name: "applicationType", Type: zcl.Uint32, Access: zcl.AccessRead},
	},
}

var MultistateValue = zcl.ClusterDef{
	ID:   0x0014,
	Name: "multistateValue",
	Attributes: []zcl.AttributeDef{
		{ID: 0x001C, Name: "description", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x004A, Name: "numberOfStates", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0051, Name: "outOfService", Type: zcl.Bool, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0055, Name: "presentValue", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite | zcl.AccessReport},
		{ID: 0x0067, Name: "reliability", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0068, Name: "relinquishDefault", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x006F, Name: "statusFlags", Type: zcl.Map8(), Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0100, Name: "applicationType", Type: zcl.Uint32, Access: zcl.AccessRead},
	},
}
