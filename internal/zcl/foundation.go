package zcl

// Foundation ZCL command IDs (global, not cluster-specific).
const (
	FoundationReadAttributes            uint8 = 0x00
	FoundationReadAttributesResponse    uint8 = 0x01
	FoundationWriteAttributes           uint8 = 0x02
	FoundationWriteAttributesUndivided  uint8 = 0x03
	FoundationWriteAttributesResp       uint8 = 0x04
	FoundationWriteAttributesNoResp     uint8 = 0x05
	FoundationConfigReporting           uint8 = 0x06
	FoundationConfigReportingResp       uint8 = 0x07
	FoundationReadReportingConfig       uint8 = 0x08
	FoundationReadReportingConfigResp   uint8 = 0x09
	FoundationReportAttributes          uint8 = 0x0A
	FoundationDefaultResponse           uint8 = 0x0B
	FoundationDiscoverAttributes        uint8 = 0x0C
	FoundationDiscoverAttributesResp    uint8 = 0x0D
	FoundationReadAttributesStructured  uint8 = 0x0E
	FoundationWriteAttributesStructured uint8 = 0x0F
	FoundationWriteAttributesStructResp uint8 = 0x10
	FoundationDiscoverCommandsReceived  uint8 = 0x11
	FoundationDiscoverCommandsRecvResp  uint8 = 0x12
	FoundationDiscoverCommandsGenerated uint8 = 0x13
	FoundationDiscoverCommandsGenResp   uint8 = 0x14
	FoundationDiscoverAttributesExt     uint8 = 0x15
	FoundationDiscoverAttributesExtResp uint8 = 0x16
)

// Global attribute IDs, present on every cluster.
const (
	AttrClusterRevision          uint16 = 0xFFFD
	AttrAttributeReportingStatus uint16 = 0xFFFE
)

// Global command names.
const (
	CmdReadAttributes             = "readAttributes"
	CmdWriteAttributes            = "writeAttributes"
	CmdWriteAttributesAtomic      = "writeAttributesAtomic"
	CmdWriteAttributesNoResponse  = "writeAttributesNoResponse"
	CmdConfigureReporting         = "configureReporting"
	CmdReadReportingConfiguration = "readReportingConfiguration"
	CmdReportAttributes           = "reportAttributes"
	CmdDefaultResponse            = "defaultResponse"
	CmdDiscoverAttributes         = "discoverAttributes"
	CmdReadAttributesStructured   = "readAttributesStructured"
	CmdWriteAttributesStructured  = "writeAttributesStructured"
	CmdDiscoverCommandsReceived   = "discoverCommandsReceived"
	CmdDiscoverCommandsGenerated  = "discoverCommandsGenerated"
	CmdDiscoverAttributesExtended = "discoverAttributesExtended"
)

// ResponseSuffix names the response descriptor derived from a command.
const ResponseSuffix = ".response"

var (
	// DiscoveredAttribute is one entry of a discoverAttributes response.
	DiscoveredAttribute = NewStruct("discoveredAttribute",
		Field{Name: "id", Type: Uint16},
		Field{Name: "dataTypeId", Type: Uint8},
	)

	// AttributeACL flags the access rights in discoverAttributesExtended.
	AttributeACL = Map8("readable", "writable", "reportable")

	DiscoveredAttributeExtended = NewStruct("discoveredAttributeExtended",
		Field{Name: "id", Type: Uint16},
		Field{Name: "dataTypeId", Type: Uint8},
		Field{Name: "acl", Type: AttributeACL},
	)

	// ReportingDirection selects which half of a reporting configuration
	// a record describes.
	ReportingDirection = Enum8(map[string]uint64{
		"reported": 0,
		"received": 1,
	})

	ReadReportingRecord = NewStruct("readReportingConfigurationRecord",
		Field{Name: "direction", Type: ReportingDirection},
		Field{Name: "attributeId", Type: Uint16},
	)

	// WriteStatusRecord is one entry of a write attributes response. A
	// response carrying only SUCCESS decodes as a single record.
	WriteStatusRecord = NewStruct("writeAttributeStatusRecord",
		Field{Name: "status", Type: StatusType},
		Field{Name: "attributeId", Type: Uint16},
	)

	// ConfigureReportingStatusRecord is one entry of a configure reporting
	// response.
	ConfigureReportingStatusRecord = NewStruct("configureReportingStatusRecord",
		Field{Name: "status", Type: StatusType},
		Field{Name: "direction", Type: ReportingDirection},
		Field{Name: "attributeId", Type: Uint16},
	)
)

// GlobalAttributes are merged into every cluster.
var GlobalAttributes = []AttributeDef{
	{ID: AttrClusterRevision, Name: "clusterRevision", Type: Uint16, Access: AccessRead},
	{ID: AttrAttributeReportingStatus, Name: "attributeReportingStatus", Type: Enum8(map[string]uint64{
		"PENDING":  0,
		"COMPLETE": 1,
	}), Access: AccessRead},
}

func attributesBuffer(name string) []Field {
	return []Field{{Name: name, Type: Buffer}}
}

// GlobalCommands are the foundation commands merged into every cluster.
// Attribute record payloads stay raw here; they depend on the cluster's
// attribute types and are decoded by the ClusterDef.
var GlobalCommands = []CommandDef{
	{ID: FoundationReadAttributes, Name: CmdReadAttributes,
		Args:     []Field{{Name: "attributes", Type: Array0(Uint16)}},
		Response: &CommandDef{ID: FoundationReadAttributesResponse, Args: attributesBuffer("attributes")}},
	{ID: FoundationWriteAttributes, Name: CmdWriteAttributes,
		Args:     attributesBuffer("attributes"),
		Response: &CommandDef{ID: FoundationWriteAttributesResp, Args: []Field{{Name: "attributes", Type: Array0(WriteStatusRecord.Type())}}}},
	{ID: FoundationWriteAttributesUndivided, Name: CmdWriteAttributesAtomic,
		Args:     attributesBuffer("attributes"),
		Response: &CommandDef{ID: FoundationWriteAttributesResp, Args: []Field{{Name: "attributes", Type: Array0(WriteStatusRecord.Type())}}}},
	{ID: FoundationWriteAttributesNoResp, Name: CmdWriteAttributesNoResponse,
		Args: attributesBuffer("attributes")},
	{ID: FoundationConfigReporting, Name: CmdConfigureReporting,
		Args:     []Field{{Name: "reports", Type: Array0(ReportingConfigRecord)}},
		Response: &CommandDef{ID: FoundationConfigReportingResp, Args: []Field{{Name: "reports", Type: Array0(ConfigureReportingStatusRecord.Type())}}}},
	{ID: FoundationReadReportingConfig, Name: CmdReadReportingConfiguration,
		Args:     []Field{{Name: "attributes", Type: Array0(ReadReportingRecord.Type())}},
		Response: &CommandDef{ID: FoundationReadReportingConfigResp, Args: []Field{{Name: "reports", Type: Array0(ReportingConfigStatusRecord)}}}},
	{ID: FoundationReportAttributes, Name: CmdReportAttributes,
		Args: attributesBuffer("attributes")},
	{ID: FoundationDefaultResponse, Name: CmdDefaultResponse,
		Args: []Field{{Name: "cmdId", Type: Uint8}, {Name: "status", Type: StatusType}}},
	{ID: FoundationDiscoverAttributes, Name: CmdDiscoverAttributes,
		Args: []Field{{Name: "startValue", Type: Uint16}, {Name: "maxResults", Type: Uint8}},
		Response: &CommandDef{ID: FoundationDiscoverAttributesResp, Args: []Field{
			{Name: "lastResponse", Type: Bool},
			{Name: "attributes", Type: Array0(DiscoveredAttribute.Type())},
		}}},
	{ID: FoundationReadAttributesStructured, Name: CmdReadAttributesStructured,
		Args:     attributesBuffer("attributes"),
		Response: &CommandDef{ID: FoundationReadAttributesResponse, Args: attributesBuffer("attributes")}},
	{ID: FoundationWriteAttributesStructured, Name: CmdWriteAttributesStructured,
		Args:     attributesBuffer("attributes"),
		Response: &CommandDef{ID: FoundationWriteAttributesStructResp, Args: attributesBuffer("attributes")}},
	{ID: FoundationDiscoverCommandsReceived, Name: CmdDiscoverCommandsReceived,
		Args: []Field{{Name: "startValue", Type: Uint8}, {Name: "maxResults", Type: Uint8}},
		Response: &CommandDef{ID: FoundationDiscoverCommandsRecvResp, Args: []Field{
			{Name: "lastResponse", Type: Bool},
			{Name: "commandIds", Type: Array0(Uint8)},
		}}},
	{ID: FoundationDiscoverCommandsGenerated, Name: CmdDiscoverCommandsGenerated,
		Args: []Field{{Name: "startValue", Type: Uint8}, {Name: "maxResults", Type: Uint8}},
		Response: &CommandDef{ID: FoundationDiscoverCommandsGenResp, Args: []Field{
			{Name: "lastResponse", Type: Bool},
			{Name: "commandIds", Type: Array0(Uint8)},
		}}},
	{ID: FoundationDiscoverAttributesExt, Name: CmdDiscoverAttributesExtended,
		Args: []Field{{Name: "startValue", Type: Uint16}, {Name: "maxResults", Type: Uint8}},
		Response: &CommandDef{ID: FoundationDiscoverAttributesExtResp, Args: []Field{
			{Name: "lastResponse", Type: Bool},
			{Name: "attributes", Type: Array0(DiscoveredAttributeExtended.Type())},
		}}},
}

func init() {
	for i := range GlobalCommands {
		GlobalCommands[i].Global = true
	}
}
