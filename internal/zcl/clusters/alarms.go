package clusters

import "zigbee-go-zcl/internal/zcl"

var Alarms = zcl.ClusterDef{
	ID:   0x0009,
	Name: "alarms",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "alarmCount", Type: zcl.Uint16, Access: zcl.AccessRead},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "resetAlarm", Direction: zcl.DirectionToServer},
		{ID: 0x01, Name: "resetAllAlarms", Direction: zcl.DirectionToServer},
		{ID: 0x02, Name: "getAlarm", Direction: zcl.DirectionToServer},
		{ID: 0x03, Name: "resetAlarmLog", Direction: zcl.DirectionToServer},
		{ID: 0x00, Name: "alarm", Direction: zcl.DirectionToClient},
		{ID: 0x01, Name: "getAlarmResponse", Direction: zcl.DirectionToClient},
	},
}
