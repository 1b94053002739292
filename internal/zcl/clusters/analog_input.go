package clusters

import "zigbee-go-zcl/internal/zcl"

var AnalogInput = zcl.ClusterDef{
	ID:   0x000C,
	Name: "analogInput",
	Attributes: []zcl.AttributeDef{
		{ID: 0x001C, Name: "description", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0041, Name: "maxPresentValue", Type: zcl.Single, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0045, Name: "minPresentValue", Type: zcl.Single, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0051, Name: "outOfService", Type: zcl.Bool, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0055, Name: "presentValue", Type: zcl.Single, Access: zcl.AccessRead | zcl.AccessWrite | zcl.AccessReport},
		{ID: 0x0067, Name: "reliability", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x006A, Name: "resolution", Type: zcl.Single, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x006F, Name: "statusFlags", Type: zcl.Map8(), Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0075, Name: "engineeringUnits", Type: zcl.Enum16(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0100, Name: "applicationType", Type: zcl.Uint32, Access: zcl.AccessRead},
	},
}

var AnalogOutput = zcl.ClusterDef{
	ID:   0x000D,
	Name: "analogOutput",
	Attributes: []zcl.AttributeDef{
		{ID: 0x001C, Name: "description", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0041, Name: "maxPresentValue", Type: zcl.Single, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0045, Name: "minPresentValue", Type: zcl.Single, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0051, Name: "outOfService", Type: zcl.Bool, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0055, Name: "presentValue", Type: zcl.Single, Access: zcl.AccessRead | zcl.AccessWrite | zcl.AccessReport},
		{ID: 0x0067, Name: "reliability", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0068, Name: "relinquishDefault", Type: zcl.Single, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x006A, Name: "resolution", Type: zcl.Single, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x006F, Name: "statusFlags", Type: zcl.Map8(), Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0075, Name: "engineeringUnits", Type: zcl.Enum16(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0100, Name: "applicationType", Type: zcl.Uint32, Access: zcl.AccessRead},
	},
}

var AnalogValue = zcl.ClusterDef{
	ID:   0x000E,
	Name: "analogValue",
	Attributes: []zcl.AttributeDef{
		{ID: 0x001C, Name: "description", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0051, Name: "outOfService", Type: zcl.Bool, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0055, Name: "presentValue", Type: zcl.Single, Access: zcl.AccessRead | zcl.AccessWrite | zcl.AccessReport},
		{ID: 0x0067, Name: "reliability", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0068, Name: "relinquishDefault", Type: zcl.Single, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x006F, Name: "statusFlags", Type: zcl.Map8(), Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0075, Name: "engineeringUnits", Type: zcl.Enum16(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0100, Name: "applicationType", Type: zcl.Uint32, Access: zcl.AccessRead},
	},
}
