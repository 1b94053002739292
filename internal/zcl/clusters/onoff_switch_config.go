package clusters

import "zigbee-go-zcl/internal/zcl"

var OnOffSwitchConfiguration = zcl.ClusterDef{
	ID:   0x0007,
	Name: "onOffSwitchConfiguration",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "switchType", Type: zcl.Enum8(nil), Access: zcl.AccessRead},
		{ID: 0x0010, Name: "switchActions", Type: zcl.Enum8(nil), Access: zcl.AccessRead | zcl.AccessWrite},
	},
}
