package clusters

import "zigbee-go-zcl/internal/zcl"

var zoneStatus = zcl.Map16("alarm1", "alarm2", "tamper", "battery", "supervisionReports",
	"restoreReports", "trouble", "acMains", "test", "batteryDefect")

var IASZone = zcl.ClusterDef{
	ID:   0x0500,
	Name: "iasZone",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "zoneState", Type: zcl.Enum8(map[string]uint64{
			"notEnrolled": 0,
			"enrolled":    1,
		}), Access: zcl.AccessRead},
		{ID: 0x0001, Name: "zoneType", Type: zcl.Enum16(map[string]uint64{
			"standardCIE":             0,
			"motionSensor":            13,
			"contactSwitch":           21,
			"fireSensor":              40,
			"waterSensor":             42,
			"carbonMonoxideSensor":    43,
			"personalEmergencyDevice": 44,
			"vibrationMovementSensor": 45,
			"remoteControl":           271,
			"keyfob":                  277,
			"keypad":                  541,
			"standardWarningDevice":   549,
			"glassBreakSensor":        550,
			"securityRepeater":        553,
			"invalidZoneType":         0xFFFF,
		}), Access: zcl.AccessRead},
		{ID: 0x0002, Name: "zoneStatus", Type: zoneStatus, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0010, Name: "iasCIEAddress", Type: zcl.EUI64, Access: zcl.AccessRead | zcl.AccessWrite},
		{ID: 0x0011, Name: "zoneId", Type: zcl.Uint8, Access: zcl.AccessRead},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "zoneEnrollResponse", Direction: zcl.DirectionToServer,
			Args: []zcl.Field{
				{Name: "enrollResponseCode", Type: zcl.Enum8(map[string]uint64{
					"success":        0,
					"notSupported":   1,
					"noEnrollPermit": 2,
					"tooManyZones":   3,
				})},
				{Name: "zoneId", Type: zcl.Uint8},
			}},
		{ID: 0x00, Name: "zoneStatusChangeNotification", Direction: zcl.DirectionToClient,
			FrameControl: &zcl.FrameControl{ClusterSpecific: true, DirectionToClient: true},
			Args: []zcl.Field{
				{Name: "zoneStatus", Type: zoneStatus},
				{Name: "extendedStatus", Type: zcl.Uint8},
				{Name: "zoneId", Type: zcl.Uint8},
				{Name: "delay", Type: zcl.Uint16},
			}},
		{ID: 0x01, Name: "zoneEnrollRequest", Direction: zcl.DirectionToClient,
			Args: []zcl.Field{
				{Name: "zoneType", Type: zcl.Enum16(nil)},
				{Name: "manufacturerCode", Type: zcl.Uint16},
			}},
	},
}
