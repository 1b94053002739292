package clusters

import "zigbee-go-zcl/internal/zcl"

var ApplianceIdentification = zcl.ClusterDef{
	ID:   0x0B00,
	Name: "applianceIdentification",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "basicIdentification", Type: zcl.Uint48, Access: zcl.AccessRead},
		{ID: 0x0010, Name: "companyName", Type: zcl.String, Access: zcl.AccessRead},
		{ID: 0x0011, Name: "companyId", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0012, Name: "brandName", Type: zcl.String, Access: zcl.AccessRead},
		{ID: 0x0013, Name: "brandId", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0014, Name: "model", Type: zcl.Octstr, Access: zcl.AccessRead},
		{ID: 0x0015, Name: "partNumber", Type: zcl.Octstr, Access: zcl.AccessRead},
		{ID: 0x0016, Name: "productRevision", Type: zcl.Octstr, Access: zcl.AccessRead},
		{ID: 0x0017, Name: "softwareRevision", Type: zcl.Octstr, Access: zcl.AccessRead},
		{ID: 0x0018, Name: "productTypeName", Type: zcl.Octstr, Access: zcl.AccessRead},
		{ID: 0x0019, Name: "productTypeId", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x001A, Name: "cecedSpecificationVersion", Type: zcl.Uint8, Access: zcl.AccessRead},
	},
}

var MeterIdentification = zcl.ClusterDef{
	ID:   0x0B01,
	Name: "meterIdentification",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "companyName", Type: zcl.String, Access: zcl.AccessRead},
		{ID: 0x0001, Name: "meterTypeID", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0004, Name: "dataQualityID", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x000C, Name: "pod", Type: zcl.String, Access: zcl.AccessRead},
		{ID: 0x000D, Name: "availablePower", Type: zcl.Int24, Access: zcl.AccessRead},
		{ID: 0x000E, Name: "powerThreshold", Type: zcl.Int24, Access: zcl.AccessRead},
	},
}

var ApplianceEventsAndAlerts = zcl.ClusterDef{
	ID:   0x0B02,
	Name: "applianceEventsAndAlerts",
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "getAlerts", Direction: zcl.DirectionToServer},
		{ID: 0x00, Name: "getAlertsResponse", Direction: zcl.DirectionToClient},
		{ID: 0x01, Name: "alertsNotification", Direction: zcl.DirectionToClient},
		{ID: 0x02, Name: "eventNotification", Direction: zcl.DirectionToClient},
	},
}

var ApplianceStatistics = zcl.ClusterDef{
	ID:   0x0B03,
	Name: "applianceStatistics",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "logMaxSize", Type: zcl.Uint32, Access: zcl.AccessRead},
		{ID: 0x0001, Name: "logQueueMaxSize", Type: zcl.Uint8, Access: zcl.AccessRead},
	},
	Commands: []zcl.CommandDef{
		{ID: 0x00, Name: "logNotification", Direction: zcl.DirectionToClient},
		{ID: 0x01, Name: "logResponse", Direction: zcl.DirectionToClient},
		{ID: 0x02, Name: "logQueueResponse", Direction: zcl.DirectionToClient},
		{ID: 0x03, Name: "statisticsAvailable", Direction: zcl.DirectionToClient},
		{ID: 0x00, Name: "logRequest", Direction: zcl.DirectionToServer},
		{ID: 0x01, Name: "logQueueRequest", Direction: zcl.DirectionToServer},
	},
}
