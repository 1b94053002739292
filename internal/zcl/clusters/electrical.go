package clusters

import "zigbee-go-zcl/internal/zcl"

var ElectricalMeasurement = zcl.ClusterDef{
	ID:   0x0B04,
	Name: "electricalMeasurement",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "measurementType", Type: zcl.Map32(), Access: zcl.AccessRead},
		{ID: 0x0505, Name: "rmsVoltage", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0508, Name: "rmsCurrent", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x050B, Name: "activePower", Type: zcl.Int16, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x050E, Name: "powerFactor", Type: zcl.Int8, Access: zcl.AccessRead},
		{ID: 0x0600, Name: "acVoltageMultiplier", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0601, Name: "acVoltageDivisor", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0602, Name: "acCurrentMultiplier", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0603, Name: "acCurrentDivisor", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0604, Name: "acPowerMultiplier", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0605, Name: "acPowerDivisor", Type: zcl.Uint16, Access: zcl.AccessRead},
	},
}
