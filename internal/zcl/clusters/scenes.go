package clusters

import "zigbee-go-zcl/internal/zcl"

var sceneRef = []zcl.Field{
	{Name: "groupId", Type: zcl.Uint16},
	{Name: "sceneId", Type: zcl.Uint8},
}

var sceneStatus = []zcl.Field{
	{Name: "status", Type: zcl.StatusType},
	{Name: "groupId", Type: zcl.Uint16},
	{Name: "sceneId", Type: zcl.Uint8},
}

var Scenes = zcl.ClusterDef{
	ID:   0x0005,
	Name: "scenes",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "sceneCount", Type: zcl.Uint8, Access: zcl.AccessRead},
		{ID: 0x0001, Name: "currentScene", Type: zcl.Uint8, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "currentGroup", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0003, Name: "sceneValid", Type: zcl.Bool, Access: zcl.AccessRead},
		{ID: 0x0004, Name: "nameSupport", Type: zcl.Map8("", "", "", "", "", "", "", "sceneNames"), Access: zcl.AccessRead},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "addScene", Direction: zcl.DirectionToServer,
			Args: append(append([]zcl.Field{}, sceneRef...),
				zcl.Field{Name: "transitionTime", Type: zcl.Uint16},
				zcl.Field{Name: "sceneName", Type: zcl.String},
				zcl.Field{Name: "extensionFieldSets", Type: zcl.Buffer},
			),
			Response: &zcl.CommandDef{ID: 0x00, Args: sceneStatus}},
		{ID: 0x01, Name: "viewScene", Direction: zcl.DirectionToServer, Args: sceneRef,
			Response: &zcl.CommandDef{ID: 0x01, Args: append(append([]zcl.Field{}, sceneStatus...),
				zcl.Field{Name: "transitionTime", Type: zcl.Uint16},
				zcl.Field{Name: "sceneName", Type: zcl.String},
				zcl.Field{Name: "extensionFieldSets", Type: zcl.Buffer},
			)}},
		{ID: 0x02, Name: "removeScene", Direction: zcl.DirectionToServer, Args: sceneRef,
			Response: &zcl.CommandDef{ID: 0x02, Args: sceneStatus}},
		{ID: 0x03, Name: "removeAllScenes", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{{Name: "groupId", Type: zcl.Uint16}},
			Response: &zcl.CommandDef{ID: 0x03, Args: []zcl.Field{
				{Name: "status", Type: zcl.StatusType},
				{Name: "groupId", Type: zcl.Uint16},
			}}},
		{ID: 0x04, Name: "storeScene", Direction: zcl.DirectionToServer, Args: sceneRef,
			Response: &zcl.CommandDef{ID: 0x04, Args: sceneStatus}},
		{ID: 0x05, Name: "recallScene", Direction: zcl.DirectionToServer,
			Args: append(append([]zcl.Field{}, sceneRef...), zcl.Field{Name: "transitionTime", Type: zcl.Uint16})},
		{ID: 0x06, Name: "getSceneMembership", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{{Name: "groupId", Type: zcl.Uint16}},
			Response: &zcl.CommandDef{ID: 0x06, Args: []zcl.Field{
				{Name: "status", Type: zcl.StatusType},
				{Name: "capacity", Type: zcl.Uint8},
				{Name: "groupId", Type: zcl.Uint16},
				{Name: "scenes", Type: zcl.Array8(zcl.Uint8)},
			}}},
	},
}

// IKEA remotes send scene step/move commands with their own manufacturer id.
const ikeaManufacturerID = 0x117C

var updown = zcl.Enum8(map[string]uint64{"up": 0, "down": 1})

// IKEAScenes extends Scenes with the manufacturer-specific commands sent by
// IKEA TRADFRI remotes. Registering it replaces the standard definition.
var IKEAScenes = func() zcl.ClusterDef {
	c := *Scenes.DeepCopy()
	c.Merge(&zcl.ClusterDef{Commands: []zcl.CommandDef{
		{ID: 0x07, Name: "ikeaSceneStep", ManufacturerID: ikeaManufacturerID,
			Args: []zcl.Field{
				{Name: "mode", Type: updown},
				{Name: "stepSize", Type: zcl.Uint8},
				{Name: "transitionTime", Type: zcl.Uint16},
			}},
		{ID: 0x08, Name: "ikeaSceneMove", ManufacturerID: ikeaManufacturerID,
			Args: []zcl.Field{
				{Name: "mode", Type: updown},
				{Name: "transitionTime", Type: zcl.Uint16},
			}},
		{ID: 0x09, Name: "ikeaSceneMoveStop", ManufacturerID: ikeaManufacturerID,
			Args: []zcl.Field{{Name: "duration", Type: zcl.Uint16}}},
	}})
	return c
}()
