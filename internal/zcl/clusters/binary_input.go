package clusters

import "zigbee-go-zcl/internal/zcl"

var BinaryInput = zcl.ClusterDef{
	ID:   0x000F,
	Name: "binaryInput",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0004, Name: "activeText", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x001C, Name: "description", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x002E, Name: "inactiveText", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0051, Name: "outOfService", Type: zcl.Bool, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0054, Name: "polarity", Type: zcl.Enum8(nil), Access: zcl.AccessRead},
		{ID: 0x0055, Name: "presentValue", Type: zcl.Bool, Access: zcl.AccessRead | zcl.AccessWrite | zcl.AccessReport},
		{ID: 0x0067, Name: "reliability", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x006F, Name: "statusFlags", Type: zcl.Map8(), Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0100, Name: "applicationType", Type: zcl.Uint32, Access: zcl.AccessRead},
	},
}

var BinaryOutput = zcl.ClusterDef{
	ID:   0x0010,
	Name: "binaryOutput",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0004, Name: "activeText", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x001C, Name: "description", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x002E, Name: "inactiveText", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0042, Name: "minimumOffTime", Type: zcl.Uint32, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0043, Name: "minimumOnTime", Type: zcl.Uint32, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0051, Name: "outOfService", Type: zcl.Bool, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0054, Name: "polarity", Type: zcl.Enum8(nil), Access: zcl.AccessRead},
		{ID: 0x0055, Name: "presentValue", Type: zcl.Bool, Access: zcl.AccessRead | zcl.AccessWrite | zcl.AccessReport},
		{ID: 0x0067, Name: "reliability", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0068, Name: "relinquishDefault", Type: zcl.Bool, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x006F, Name: "statusFlags", Type: zcl.Map8(), Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0100, Name: "applicationType", Type: zcl.Uint32, Access: zcl.AccessRead},
	},
}

var BinaryValue = zcl.ClusterDef{
	ID:   0x0011,
	Name: "binaryValue",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0004, Name: "activeText", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x001C, Name: "description", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x002E, Name: "inactiveText", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0042, Name: "minimumOffTime", Type: zcl.Uint32, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0043, Name: "minimumOnTime", Type: zcl.Uint32, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0051, Name: "outOfService", Type: zcl.Bool, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0055, Name: "presentValue", Type: zcl.Bool, Access: zcl.AccessRead | zcl.AccessWrite | zcl.AccessReport},
		{ID: 0x0067, Name: "reliability", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0068, Name: "relinquishDefault", Type: zcl.Bool, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x006F, Name: "statusFlags", Type: zcl.Map8(), Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0100, Name: "applicationType", Type: zcl.Uint32, Access: zcl.AccessRead},
	},
}
