package zcl

import "fmt"

// Status is a ZCL status code.
type Status uint8

// ZCL status codes
const (
	StatusSuccess                  Status = 0x00
	StatusFailure                  Status = 0x01
	StatusNotAuthorized            Status = 0x7E
	StatusReservedFieldNotZero     Status = 0x7F
	StatusMalformedCommand         Status = 0x80
	StatusUnsupClusterCommand      Status = 0x81
	StatusUnsupGeneralCommand      Status = 0x82
	StatusUnsupManufClusterCommand Status = 0x83
	StatusUnsupManufGeneralCommand Status = 0x84
	StatusInvalidField             Status = 0x85
	StatusUnsupportedAttribute     Status = 0x86
	StatusInvalidValue             Status = 0x87
	StatusReadOnly                 Status = 0x88
	StatusInsufficientSpace        Status = 0x89
	StatusDuplicateExists          Status = 0x8A
	StatusNotFound                 Status = 0x8B
	StatusUnreportableAttribute    Status = 0x8C
	StatusInvalidDataType          Status = 0x8D
	StatusInvalidSelector          Status = 0x8E
	StatusWriteOnly                Status = 0x8F
	StatusInconsistentStartupState Status = 0x90
	StatusDefinedOutOfBand         Status = 0x91
	StatusInconsistent             Status = 0x92
	StatusActionDenied             Status = 0x93
	StatusTimeout                  Status = 0x94
	StatusAbort                    Status = 0x95
	StatusInvalidImage             Status = 0x96
	StatusWaitForData              Status = 0x97
	StatusNoImageAvailable         Status = 0x98
	StatusRequireMoreImage         Status = 0x99
	StatusNotificationPending      Status = 0x9A
	StatusHardwareFailure          Status = 0xC0
	StatusSoftwareFailure          Status = 0xC1
	StatusCalibrationError         Status = 0xC2
	StatusUnsupportedCluster       Status = 0xC3
)

// StatusType is the enum8 carrying a Status on the wire.
var StatusType = Enum8(map[string]uint64{
	"SUCCESS":                     0x00,
	"FAILURE":                     0x01,
	"NOT_AUTHORIZED":              0x7E,
	"RESERVED_FIELD_NOT_ZERO":     0x7F,
	"MALFORMED_COMMAND":           0x80,
	"UNSUP_CLUSTER_COMMAND":       0x81,
	"UNSUP_GENERAL_COMMAND":       0x82,
	"UNSUP_MANUF_CLUSTER_COMMAND": 0x83,
	"UNSUP_MANUF_GENERAL_COMMAND": 0x84,
	"INVALID_FIELD":               0x85,
	"UNSUPPORTED_ATTRIBUTE":       0x86,
	"INVALID_VALUE":               0x87,
	"READ_ONLY":                   0x88,
	"INSUFFICIENT_SPACE":          0x89,
	"DUPLICATE_EXISTS":            0x8A,
	"NOT_FOUND":                   0x8B,
	"UNREPORTABLE_ATTRIBUTE":      0x8C,
	"INVALID_DATA_TYPE":           0x8D,
	"INVALID_SELECTOR":            0x8E,
	"WRITE_ONLY":                  0x8F,
	"INCONSISTENT_STARTUP_STATE":  0x90,
	"DEFINED_OUT_OF_BAND":         0x91,
	"INCONSISTENT":                0x92,
	"ACTION_DENIED":               0x93,
	"TIMEOUT":                     0x94,
	"ABORT":                       0x95,
	"INVALID_IMAGE":               0x96,
	"WAIT_FOR_DATA":               0x97,
	"NO_IMAGE_AVAILABLE":          0x98,
	"REQUIRE_MORE_IMAGE":          0x99,
	"NOTIFICATION_PENDING":        0x9A,
	"HARDWARE_FAILURE":            0xC0,
	"SOFTWARE_FAILURE":            0xC1,
	"CALIBRATION_ERROR":           0xC2,
	"UNSUPPORTED_CLUSTER":         0xC3,
})

func (s Status) String() string {
	if name, ok := StatusType.names[uint64(s)]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", uint8(s))
}

// ParseStatus maps a decoded status value (symbol or number) to a Status.
func ParseStatus(v any) (Status, bool) {
	if name, ok := v.(string); ok {
		u, ok := StatusType.Values[name]
		return Status(u), ok
	}
	u, ok := toUint64(v)
	if !ok || u > 0xFF {
		return 0, false
	}
	return Status(u), true
}

// statusValue is the decoded form of a status byte: its symbol, or the raw
// code when the code is not a known status.
func statusValue(b uint8) any {
	if name, ok := StatusType.names[uint64(b)]; ok {
		return name
	}
	return b
}
