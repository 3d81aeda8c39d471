package wire

import "fmt"

// Status is the one-byte status carried in SRSP bodies and confirms.
//
// Values below 0x30 are produced by the RPC layer itself; the 0xDB..0xFD
// block is the engine's own status set and is passed through verbatim.
type Status uint8

const (
	StatusSuccess Status = 0x00
	StatusFailure Status = 0x01

	// StatusUnsupported reports an operation whose backing function is absent.
	StatusUnsupported Status = 0x18
	StatusBadState    Status = 0x19

	// StatusNoResources reports an allocation or session-capacity failure.
	StatusNoResources Status = 0x1A

	// RPC framing statuses.
	StatusSubSysError     Status = 0x25
	StatusCommandIDError  Status = 0x26
	StatusLengthError     Status = 0x27
	StatusUnsupportedType Status = 0x28

	// Engine statuses.
	StatusCounterError          Status = 0xDB
	StatusImproperKeyType       Status = 0xDC
	StatusImproperSecurityLevel Status = 0xDD
	StatusUnsupportedLegacy     Status = 0xDE
	StatusUnsupportedSecurity   Status = 0xDF
	StatusBeaconLoss            Status = 0xE0
	StatusChannelAccessFailure  Status = 0xE1
	StatusDenied                Status = 0xE2
	StatusDisableTrxFailure     Status = 0xE3
	StatusSecurityError         Status = 0xE4
	StatusFrameTooLong          Status = 0xE5
	StatusInvalidGTS            Status = 0xE6
	StatusInvalidHandle         Status = 0xE7
	StatusInvalidParameter      Status = 0xE8
	StatusNoAck                 Status = 0xE9
	StatusNoBeacon              Status = 0xEA
	StatusNoData                Status = 0xEB
	StatusNoShortAddress        Status = 0xEC
	StatusOutOfCAP              Status = 0xED
	StatusPANIDConflict         Status = 0xEE
	StatusRealignment           Status = 0xEF
	StatusTransactionExpired    Status = 0xF0
	StatusTransactionOverflow   Status = 0xF1
	StatusTxActive              Status = 0xF2
	StatusUnavailableKey        Status = 0xF3
	StatusUnsupportedAttribute  Status = 0xF4
	StatusInvalidAddress        Status = 0xF5
	StatusOnTimeTooLong         Status = 0xF6
	StatusPastTime              Status = 0xF7
	StatusTrackingOff           Status = 0xF8
	StatusInvalidIndex          Status = 0xF9
	StatusLimitReached          Status = 0xFA
	StatusReadOnly              Status = 0xFB
	StatusScanInProgress        Status = 0xFC
	StatusSuperframeOverlap     Status = 0xFD
)

var statusNames = map[Status]string{
	StatusSuccess:               "SUCCESS",
	StatusFailure:               "FAILURE",
	StatusUnsupported:           "UNSUPPORTED",
	StatusBadState:              "BAD_STATE",
	StatusNoResources:           "NO_RESOURCES",
	StatusSubSysError:           "SUBSYSTEM_ERROR",
	StatusCommandIDError:        "COMMAND_ID_ERROR",
	StatusLengthError:           "LENGTH_ERROR",
	StatusUnsupportedType:       "UNSUPPORTED_TYPE",
	StatusCounterError:          "COUNTER_ERROR",
	StatusImproperKeyType:       "IMPROPER_KEY_TYPE",
	StatusImproperSecurityLevel: "IMPROPER_SECURITY_LEVEL",
	StatusUnsupportedLegacy:     "UNSUPPORTED_LEGACY",
	StatusUnsupportedSecurity:   "UNSUPPORTED_SECURITY",
	StatusBeaconLoss:            "BEACON_LOSS",
	StatusChannelAccessFailure:  "CHANNEL_ACCESS_FAILURE",
	StatusDenied:                "DENIED",
	StatusDisableTrxFailure:     "DISABLE_TRX_FAILURE",
	StatusSecurityError:         "SECURITY_ERROR",
	StatusFrameTooLong:          "FRAME_TOO_LONG",
	StatusInvalidGTS:            "INVALID_GTS",
	StatusInvalidHandle:         "INVALID_HANDLE",
	StatusInvalidParameter:      "INVALID_PARAMETER",
	StatusNoAck:                 "NO_ACK",
	StatusNoBeacon:              "NO_BEACON",
	StatusNoData:                "NO_DATA",
	StatusNoShortAddress:        "NO_SHORT_ADDRESS",
	StatusOutOfCAP:              "OUT_OF_CAP",
	StatusPANIDConflict:         "PAN_ID_CONFLICT",
	StatusRealignment:           "REALIGNMENT",
	StatusTransactionExpired:    "TRANSACTION_EXPIRED",
	StatusTransactionOverflow:   "TRANSACTION_OVERFLOW",
	StatusTxActive:              "TX_ACTIVE",
	StatusUnavailableKey:        "UNAVAILABLE_KEY",
	StatusUnsupportedAttribute:  "UNSUPPORTED_ATTRIBUTE",
	StatusInvalidAddress:        "INVALID_ADDRESS",
	StatusOnTimeTooLong:         "ON_TIME_TOO_LONG",
	StatusPastTime:              "PAST_TIME",
	StatusTrackingOff:           "TRACKING_OFF",
	StatusInvalidIndex:          "INVALID_INDEX",
	StatusLimitReached:          "LIMIT_REACHED",
	StatusReadOnly:              "READ_ONLY",
	StatusScanInProgress:        "SCAN_IN_PROGRESS",
	StatusSuperframeOverlap:     "SUPERFRAME_OVERLAP",
}

// String returns the status name.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("STATUS_0x%02X", uint8(s))
}

// IsSuccess returns true if the status indicates success.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}

// IsError returns true if the status indicates an error.
func (s Status) IsError() bool {
	return s != StatusSuccess
}

// IsFramingError returns true for statuses produced by the RPC layer when a
// request could not be routed or parsed.
func (s Status) IsFramingError() bool {
	switch s {
	case StatusSubSysError, StatusCommandIDError, StatusLengthError, StatusUnsupportedType, StatusNoResources:
		return true
	default:
		return false
	}
}
