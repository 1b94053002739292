package clusters

import "zigbee-go-zcl/internal/zcl"

var groupStatus = []zcl.Field{
	{Name: "status", Type: zcl.StatusType},
	{Name: "groupId", Type: zcl.Uint16},
}

var Groups = zcl.ClusterDef{
	ID:   0x0004,
	Name: "groups",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "nameSupport", Type: zcl.Map8("", "", "", "", "", "", "", "groupNames"), Access: zcl.AccessRead},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "addGroup", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{
				{Name: "groupId", Type: zcl.Uint16},
				{Name: "groupName", Type: zcl.String},
			},
			Response: &zcl.CommandDef{ID: 0x00, Args: groupStatus}},
		{ID: 0x01, Name: "viewGroup", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{{Name: "groupId", Type: zcl.Uint16}},
			Response: &zcl.CommandDef{ID: 0x01, Args: []zcl.Field{
				{Name: "status", Type: zcl.StatusType},
				{Name: "groupId", Type: zcl.Uint16},
				{Name: "groupNames", Type: zcl.String},
			}}},
		{ID: 0x02, Name: "getGroupMembership", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{{Name: "groupIds", Type: zcl.Array8(zcl.Uint16)}},
			Response: &zcl.CommandDef{ID: 0x02, Args: []zcl.Field{
				{Name: "capacity", Type: zcl.Uint8},
				{Name: "groups", Type: zcl.Array8(zcl.Uint16)},
			}}},
		{ID: 0x03, Name: "removeGroup", Direction: zcl.DirectionToServer,
			Args:     []zcl.Field{{Name: "groupId", Type: zcl.Uint16}},
			Response: &zcl.CommandDef{ID: 0x03, Args: groupStatus}},
		{ID: 0x04, Name: "removeAllGroups", Direction: zcl.DirectionToServer},
		{ID: 0x05, Name: "addGroupIfIdentify", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{
				{Name: "groupId", Type: zcl.Uint16},
				{Name: "groupName", Type: zcl.String},
			}},
	},
}
