package clusters

import "zigbee-go-zcl/internal/zcl"

var RSSILocation = zcl.ClusterDef{
	ID:   0x000B,
	Name: "rssiLocation",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "locationType", Type: zcl.Map8(), Access: zcl.AccessRead},
		{ID: 0x0001, Name: "locationMethod", Type: zcl.Enum8(nil), Access: zcl.AccessRead},
		{ID: 0x0002, Name: "locationAge", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0003, Name: "qualityMeasure", Type: zcl.Uint8, Access: zcl.AccessRead},
		{ID: 0x0004, Name: "numberOfDevices", Type: zcl.Uint8, Access: zcl.AccessRead},
		{ID: 0x0010, Name: "coordinate1", Type: zcl.Int16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0011, Name: "coordinate2", Type: zcl.Int16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0012, Name: "coordinate3", Type: zcl.Int16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0013, Name: "power", Type: zcl.Int16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0014, Name: "pathLossExponent", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0015, Name: "reportingPeriod", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0016, Name: "calculationPeriod", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0017, Name: "numberRSSIMeasurements", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessWrite},
	},
}
