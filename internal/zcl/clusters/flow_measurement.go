package clusters

import "zigbee-go-zcl/internal/zcl"

var FlowMeasurement = zcl.ClusterDef{
	ID:   0x0404,
	Name: "flowMeasurement",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "measuredValue", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0001, Name: "minMeasuredValue", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "maxMeasuredValue", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0003, Name: "tolerance", Type: zcl.Uint16, Access: zcl.AccessRead},
	},
}

var SoilMoisture = zcl.ClusterDef{
	ID:   0x0408,
	Name: "soilMoisture",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "measuredValue", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0001, Name: "minMeasuredValue", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "maxMeasuredValue", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0003, Name: "tolerance", Type: zcl.Uint16, Access: zcl.AccessRead},
	},
}

var PHMeasurement = zcl.ClusterDef{
	ID:   0x0409,
	Name: "phMeasurement",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "measuredValue", Type: zcl.Uint16, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0001, Name: "minMeasuredValue", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "maxMeasuredValue", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0003, Name: "tolerance", Type: zcl.Uint16, Access: zcl.AccessRead},
	},
}

var CarbonMonoxide = zcl.ClusterDef{
	ID:   0x040C,
	Name: "carbonMonoxide",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "measuredValue", Type: zcl.Single, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0001, Name: "minMeasuredValue", Type: zcl.Single, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "maxMeasuredValue", Type: zcl.Single, Access: zcl.AccessRead},
		{ID: 0x0003, Name: "tolerance", Type: zcl.Single, Access: zcl.AccessRead},
	},
}

var CarbonDioxide = zcl.ClusterDef{
	ID:   0x040D,
	Name: "carbonDioxide",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "measuredValue", Type: zcl.Single, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0001, Name: "minMeasuredValue", Type: zcl.Single, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "maxMeasuredValue", Type: zcl.Single, Access: zcl.AccessRead},
		{ID: 0x0003, Name: "tolerance", Type: zcl.Single, Access: zcl.AccessRead},
	},
}

var PM25Measurement = zcl.ClusterDef{
	ID:   0x042A,
	Name: "pm25Measurement",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "measuredValue", Type: zcl.Single, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0001, Name: "minMeasuredValue", Type: zcl.Single, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "maxMeasuredValue", Type: zcl.Single, Access: zcl.AccessRead},
		{ID: 0x0003, Name: "tolerance", Type: zcl.Single, Access: zcl.AccessRead},
	},
}

var FormaldehydeMeasurement = zcl.ClusterDef{
	ID:   0x042B,
	Name: "formaldehydeMeasurement",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "measuredValue", Type: zcl.Single, Access: zcl.AccessRead | zcl.AccessReport},
		{ID: 0x0001, Name: "minMeasuredValue", Type: zcl.Single, Access: zcl.AccessRead},
		{ID: 0x0002, Name: "maxMeasuredValue", Type: zcl.Single, Access: zcl.AccessRead},
		{ID: 0x0003, Name: "tolerance", Type: zcl.Single, Access: zcl.AccessRead},
	},
}
