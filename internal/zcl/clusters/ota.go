package clusters

import "zigbee-go-zcl/internal/zcl"

var OTAUpgrade = zcl.ClusterDef{
	ID:   0x0019,
	Name: "otaUpgrade",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "upgradeServerID", Type: zcl.EUI64, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "currentFileVersion", Type: zcl.Uint32, Access: zcl.AccessRead},
		{ID: 0x0004, Name: "downloadedFileVersion", Type: zcl.Uint32, Access: zcl.AccessRead},
		{ID: 0x0006, Name: "imageUpgradeStatus", Type: zcl.Enum8(nil), Access: zcl.AccessRead},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x01, Name: "queryNextImageRequest", Direction: zcl.DirectionToServer},
		{ID: 0x03, Name: "imageBlockRequest", Direction: zcl.DirectionToServer},
		{ID: 0x06, Name: "upgradeEndRequest", Direction: zcl.DirectionToServer},
		{ID: 0x02, Name: "queryNextImageResponse", Direction: zcl.DirectionToClient},
		{ID: 0x05, Name: "imageBlockResponse", Direction: zcl.DirectionToClient},
		{ID: 0x07, Name: "upgradeEndResponse", Direction: zcl.DirectionToClient},
	},
}
