package clusters

import "zigbee-go-zcl/internal/zcl"

var Diagnostics = zcl.ClusterDef{
	ID:   0x0B05,
	Name: "diagnostics",
	Attributes: []zcl.AttributeDef{
		// Hardware information
		{ID: 0x0000, Name: "numberOfResets", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0001, Name: "persistentMemoryWrites", Type: zcl.Uint16, Access: zcl.AccessRead},
		// Stack/Network information
		{ID: 0x0100, Name: "macRxBcast", Type: zcl.Uint32, Access: zcl.AccessRead},
		{ID: 0x0101, Name: "macTxBcast", Type: zcl.Uint32, Access: zcl.AccessRead},
		{ID: 0x0102, Name: "macRxUcast", Type: zcl.Uint32, Access: zcl.AccessRead},
		{ID: 0x0103, Name: "macTxUcast", Type: zcl.Uint32, Access: zcl.AccessRead},
		{ID: 0x0104, Name: "macTxUcastRetry", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0105, Name: "macTxUcastFail", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0106, Name: "apsRxBcast", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0107, Name: "apsTxBcast", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0108, Name: "apsRxUcast", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0109, Name: "apsTxUcastSuccess", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x010A, Name: "apsTxUcastRetry", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x010B, Name: "apsTxUcastFail", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x010C, Name: "routeDiscInitiated", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x010D, Name: "neighborAdded", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x010E, Name: "neighborRemoved", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x010F, Name: "neighborStale", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0110, Name: "joinIndication", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0111, Name: "childMoved", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0112, Name: "nwkfcFailure", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0113, Name: "apsfcFailure", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0114, Name: "apsUnauthorizedKey", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0115, Name: "nwkDecryptFailures", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0116, Name: "apsDecryptFailures", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0117, Name: "packetBufferAllocateFailures", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0118, Name: "relayedUcast", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x0119, Name: "phyToMACQueueLimitReached", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x011A, Name: "packetValidateDropCount", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x011B, Name: "averageMACRetryPerAPSMessageSent", Type: zcl.Uint16, Access: zcl.AccessRead},
		{ID: 0x011C, Name: "lastMessageLQI", Type: zcl.Uint8, Access: zcl.AccessRead},
		{ID: 0x011D, Name: "lastMessageRSSI", Type: zcl.Int8, Access: zcl.AccessRead},
	},
}
