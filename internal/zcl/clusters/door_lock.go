package clusters

import "zigbee-go-zcl/internal/zcl"

var (
	userStatus = zcl.Enum8(map[string]uint64{
		"available":        0,
		"occupiedEnabled":  1,
		"occupiedDisabled": 3,
		"notSupported":     255,
	})
	userType = zcl.Enum8(map[string]uint64{
		"unrestricted":        0,
		"yearDayScheduleUser": 1,
		"weekDayScheduleUser": 2,
		"masterUser":          3,
		"nonAccessUser":       4,
		"notSupported":        255,
	})
	lockStatus = []zcl.Field{{Name: "status", Type: zcl.Uint8}}
	pinCode    = zcl.Field{Name: "pinCode", Type: zcl.Octstr}
)

func lockResponse(id uint8) *zcl.CommandDef {
	return &zcl.CommandDef{ID: id, Args: lockStatus}
}

var DoorLock = zcl.ClusterDef{
	ID:   0x0101,
	Name: "doorLock",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "lockState", Type: zcl.Enum8(map[string]uint64{
			"notFullyLocked": 0,
			"locked":         1,
			"unlocked":       2,
			"undefined":      255,
		}), Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0001, Name: "lockType", Type: zcl.Enum8(map[string]uint64{
			"deadBolt":           0,
			"magnetic":           1,
			"other":              2,
			"mortise":            3,
			"rim":                4,
			"latchBolt":          5,
			"cylindricalLock":    6,
			"tubularLock":        7,
			"interconnectedLock": 8,
			"deadLatch":          9,
			"doorFurniture":      10,
		}), Access: zcl.AccessRead},
		{ID: 0x0002, Name: "actuatorEnabled", Type: zcl.Bool, Access: zcl.AccessRead},
		{ID: 0x0003, Name: "doorState", Type: zcl.Enum8(map[string]uint64{
			"open":             0,
			"closed":           1,
			"errorJammed":      2,
			"errorForcedOpen":  3,
			"errorUnspecified": 4,
			"undefined":        255,
		}), Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0004, Name: "doorOpenEvents", Type: zcl.Uint32, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0005, Name: "doorClosedEvents", Type: zcl.Uint32, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0006, Name: "openPeriod", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0011, Name: "numberOfTotalUsersSupported", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0012, Name: "numberOfPINUsersSupported", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0017, Name: "maxPINCodeLength", Type: zcl.Uint8, Access: zcl.AccessRead},
		{ID: 0x0018, Name: "minPINCodeLength", Type: zcl.Uint8, Access: zcl.AccessRead},
		{ID: 0x0020, Name: "enableLogging", Type: zcl.Bool, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0021, Name: "language", Type: zcl.String, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0023, Name: "autoRelockTime", Type: zcl.Uint32, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0024, Name: "soundVolume", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0025, Name: "operatingMode", Type: zcl.Enum8(map[string]uint64{
			"normal":           0,
			"vacation":         1,
			"privacy":          2,
			"noRFLockOrUnlock": 3,
			"passage":          4,
		}), Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0026, Name: "supportedOperatingModes", Type: zcl.Map16("normal", "vacation", "privacy", "noRFLockOrUnlock", "passage"), Access: zcl.AccessRead},
		{ID: 0x0030, Name: "wrongCodeEntryLimit", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0031, Name: "userCodeTemporaryDisableTime", Type: zcl.Uint8, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0040, Name: "alarmMask", Type: zcl.Map16(
			"deadboltJammed",
			"lockResetToFactoryDefaults",
			"",
			"rfModulePowerCycled",
			"tamperAlarmWrongCodeEntryLimit",
			"tamperAlarmFrontEscutcheonRemoved",
			"forcedDoorOpenUnderDoorLockedCondition",
		), Access: zcl.AccessRead | zcl.AccessWrite},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "lockDoor", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{pinCode}, Response: lockResponse(0x00)},
		{ID: 0x01, Name: "unlockDoor", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{pinCode}, Response: lockResponse(0x01)},
		{ID: 0x02, Name: "toggle", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{pinCode}, Response: lockResponse(0x02)},
		{ID: 0x03, Name: "unlockWithTimeout", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{{Name: "timeout", Type: zcl.Uint16}, pinCode}, Response: lockResponse(0x03)},
		{ID: 0x05, Name: "setPINCode", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{
				{Name: "userId", Type: zcl.Uint16},
				{Name: "userStatus", Type: userStatus},
				{Name: "userType", Type: userType},
				pinCode,
			},
			Response: lockResponse(0x05)},
		{ID: 0x06, Name: "getPINCode", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{{Name: "userId", Type: zcl.Uint16}},
			Response: &zcl.CommandDef{ID: 0x06, Args: []zcl.Field{
				{Name: "userId", Type: zcl.Uint16},
				{Name: "userStatus", Type: userStatus},
				{Name: "userType", Type: userType},
				pinCode,
			}}},
		{ID: 0x07, Name: "clearPINCode", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{{Name: "userId", Type: zcl.Uint16}}, Response: lockResponse(0x07)},
		{ID: 0x08, Name: "clearAllPINCodes", Direction: zcl.DirectionToServer, Response: lockResponse(0x08)},
		{ID: 0x09, Name: "setUserStatus", Direction: zcl.DirectionToServer,
			Args:     []zcl.Field{{Name: "userId", Type: zcl.Uint16}, {Name: "userStatus", Type: userStatus}},
			Response: lockResponse(0x09)},
		{ID: 0x0A, Name: "getUserStatus", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{{Name: "userId", Type: zcl.Uint16}},
			Response: &zcl.CommandDef{ID: 0x0A, Args: []zcl.Field{
				{Name: "userId", Type: zcl.Uint16},
				{Name: "userStatus", Type: userStatus},
			}}},
		{ID: 0x20, Name: "operationEventNotification", Direction: zcl.DirectionToClient,
			Args: []zcl.Field{
				{Name: "operationEventSource", Type: zcl.Uint8},
				{Name: "operationEventCode", Type: zcl.Uint8},
				{Name: "userId", Type: zcl.Uint16},
				{Name: "pin", Type: zcl.Octstr},
				{Name: "zigBeeLocalTime", Type: zcl.Uint32},
				{Name: "data", Type: zcl.Octstr},
			}},
		{ID: 0x21, Name: "programmingEventNotification", Direction: zcl.DirectionToClient,
			Args: []zcl.Field{
				{Name: "programEventSource", Type: zcl.Uint8},
				{Name: "programEventCode", Type: zcl.Uint8},
				{Name: "userId", Type: zcl.Uint16},
				{Name: "pin", Type: zcl.Octstr},
				{Name: "userType", Type: userType},
				{Name: "userStatus", Type: userStatus},
				{Name: "zigBeeLocalTime", Type: zcl.Uint32},
				{Name: "data", Type: zcl.Octstr},
			}},
	},
}
