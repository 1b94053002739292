package clusters

import "zigbee-go-zcl/internal/zcl"

var Metering = zcl.ClusterDef{
	ID:   0x0702,
	Name: "metering",
	Attributes: []zcl.AttributeDef{
		// Reading information set
		{ID: 0x0000, Name: "currentSummationDelivered", Type: zcl.Uint48, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0001, Name: "currentSummationReceived", Type: zcl.Uint48, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "currentMaxDemandDelivered", Type: zcl.Uint48, Access: zcl.AccessRead},
		{ID: 0x0003, Name: "currentMaxDemandReceived", Type: zcl.Uint48, Access: zcl.AccessRead},
		{ID: 0x0006, Name: "powerFactor", Type: zcl.Int8, Access: zcl.AccessRead},
		// Meter status
		{ID: 0x0200, Name: "status", Type: zcl.Map8(), Access: zcl.AccessRead},
		// Formatting
		{ID: 0x0300, Name: "unitOfMeasure", Type: zcl.Enum8(nil), Access: zcl.AccessRead},
		{ID: 0x0301, Name: "multiplier", Type: zcl.Uint24, Access: zcl.AccessRead},
		{ID: 0x0302, Name: "divisor", Type: zcl.Uint24, Access: zcl.AccessRead},
		{ID: 0x0303, Name: "summationFormatting", Type: zcl.Map8(), Access: zcl.AccessRead},
		{ID: 0x0306, Name: "meteringDeviceType", Type: zcl.Map8(), Access: zcl.AccessRead},
		// Instantaneous demand
		{ID: 0x0400, Name: "instantaneousDemand", Type: zcl.Int24, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0401, Name: "currentDayConsumptionDelivered", Type: zcl.Uint24, Access: zcl.AccessRead},
		{ID: 0x0402, Name: "currentDayConsumptionReceived", Type: zcl.Uint24, Access: zcl.AccessRead},
		{ID: 0x0403, Name: "previousDayConsumptionDelivered", Type: zcl.Uint24, Access: zcl.AccessRead},
		{ID: 0x0404, Name: "previousDayConsumptionReceived", Type: zcl.Uint24, Access: zcl.AccessRead},
	},
}
