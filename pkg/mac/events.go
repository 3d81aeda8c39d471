package mac

import "github.com/lowpan-mt/mt-go/pkg/wire"

// EventKind identifies a confirm or indication raised by the engine.
type EventKind uint8

const (
	EventSyncLoss EventKind = iota + 1
	EventAssociateInd
	EventAssociateCnf
	EventBeaconNotify
	EventDataCnf
	EventDataInd
	EventDisassociateInd
	EventDisassociateCnf
	EventOrphanInd
	EventPollCnf
	EventScanCnf
	EventCommStatus
	EventStartCnf
	EventPurgeCnf
	EventPollInd
)

var eventKindNames = map[EventKind]string{
	EventSyncLoss:        "SYNC_LOSS_IND",
	EventAssociateInd:    "ASSOCIATE_IND",
	EventAssociateCnf:    "ASSOCIATE_CNF",
	EventBeaconNotify:    "BEACON_NOTIFY_IND",
	EventDataCnf:         "DATA_CNF",
	EventDataInd:         "DATA_IND",
	EventDisassociateInd: "DISASSOCIATE_IND",
	EventDisassociateCnf: "DISASSOCIATE_CNF",
	EventOrphanInd:       "ORPHAN_IND",
	EventPollCnf:         "POLL_CNF",
	EventScanCnf:         "SCAN_CNF",
	EventCommStatus:      "COMM_STATUS_IND",
	EventStartCnf:        "START_CNF",
	EventPurgeCnf:        "PURGE_CNF",
	EventPollInd:         "POLL_IND",
}

// String returns the MT name of the event.
func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Event is a confirm or indication delivered by the engine.
type Event interface {
	Kind() EventKind
}

// EventHandler receives engine events. It may be called from any goroutine.
type EventHandler func(Event)

// SyncLossInd reports loss of synchronization with the coordinator.
type SyncLossInd struct {
	Status         wire.Status
	PANID          uint16
	LogicalChannel uint8
	ChannelPage    uint8
	PhyID          uint8
	Sec            wire.SecurityDescriptor
}

// AssociateInd reports an association request from a device.
type AssociateInd struct {
	DeviceAddr     wire.ExtAddr
	CapabilityInfo CapabilityInfo
	Sec            wire.SecurityDescriptor
}

// AssociateCnf reports the outcome of an association request.
type AssociateCnf struct {
	Status     wire.Status
	AssocShort uint16
	Sec        wire.SecurityDescriptor
}

// PANDescriptor describes a PAN found while scanning.
type PANDescriptor struct {
	CoordAddr       wire.Address
	CoordPANID      uint16
	SuperframeSpec  uint16
	LogicalChannel  uint8
	ChannelPage     uint8
	GTSPermit       bool
	LinkQuality     uint8
	Timestamp       uint32
	SecurityFailure bool
	Sec             wire.SecurityDescriptor
}

// BeaconType distinguishes standard and enhanced beacons.
type BeaconType uint8

const (
	BeaconNormal   BeaconType = 0
	BeaconEnhanced BeaconType = 1
)

// BeaconNotifyInd carries a received beacon.
type BeaconNotifyInd struct {
	BeaconType BeaconType
	BSN        uint8
	PAN        PANDescriptor

	// Standard beacons.
	PendingShort []uint16
	PendingExt   []wire.ExtAddr
	SDU          []byte

	// Enhanced beacons.
	BeaconOrder         uint8
	SuperframeOrder     uint8
	FinalCAPSlot        uint8
	EnhancedBeaconOrder uint8
	OffsetTimeslot      uint8
	CAPBackoff          uint8
	NonBeaconOrder      uint16
}

// DataCnf reports the outcome of a data request.
type DataCnf struct {
	Status       wire.Status
	MSDUHandle   uint8
	Timestamp    uint32
	Timestamp2   uint16
	Retries      uint8
	LinkQuality  uint8
	Correlation  uint8
	RSSI         int8
	FrameCounter uint32
}

// DataInd carries a received MSDU.
type DataInd struct {
	SrcAddr      wire.Address
	DstAddr      wire.Address
	Timestamp    uint32
	Timestamp2   uint16
	SrcPANID     uint16
	DstPANID     uint16
	LinkQuality  uint8
	Correlation  uint8
	RSSI         int8
	DSN          uint8
	Sec          wire.SecurityDescriptor
	FrameCounter uint32
	MSDU         []byte
	PayloadIEs   []byte
}

// DisassociateInd reports that a device left or was removed.
type DisassociateInd struct {
	DeviceAddr wire.ExtAddr
	Reason     uint8
	Sec        wire.SecurityDescriptor
}

// DisassociateCnf reports the outcome of a disassociate request.
type DisassociateCnf struct {
	Status      wire.Status
	DeviceAddr  wire.Address
	DevicePANID uint16
}

// OrphanInd reports an orphaned device.
type OrphanInd struct {
	OrphanAddr wire.ExtAddr
	Sec        wire.SecurityDescriptor
}

// PollCnf reports the outcome of a poll request.
type PollCnf struct {
	Status       wire.Status
	FramePending bool
}

// PollInd reports a data request received from a device.
type PollInd struct {
	SrcAddr    wire.Address
	SrcPANID   uint16
	NoResponse bool
}

// ScanCnf reports the results of a scan.
type ScanCnf struct {
	Status      wire.Status
	ScanType    ScanType
	ChannelPage uint8
	PhyID       uint8
	Unscanned   ChannelMask

	// Energy detect results, one per scanned channel.
	Energies []uint8

	// Active and passive scan results.
	PANs []PANDescriptor
}

// CommStatusInd reports a communication status, such as an indirect
// transmission outcome.
type CommStatusInd struct {
	Status  wire.Status
	SrcAddr wire.Address
	DstAddr wire.Address
	PANID   uint16
	Reason  uint8
	Sec     wire.SecurityDescriptor
}

// StartCnf reports the outcome of a start request.
type StartCnf struct {
	Status wire.Status
}

// PurgeCnf reports the outcome of a purge request.
type PurgeCnf struct {
	Status     wire.Status
	MSDUHandle uint8
}

func (SyncLossInd) Kind() EventKind     { return EventSyncLoss }
func (AssociateInd) Kind() EventKind    { return EventAssociateInd }
func (AssociateCnf) Kind() EventKind    { return EventAssociateCnf }
func (BeaconNotifyInd) Kind() EventKind { return EventBeaconNotify }
func (DataCnf) Kind() EventKind         { return EventDataCnf }
func (DataInd) Kind() EventKind         { return EventDataInd }
func (DisassociateInd) Kind() EventKind { return EventDisassociateInd }
func (DisassociateCnf) Kind() EventKind { return EventDisassociateCnf }
func (OrphanInd) Kind() EventKind       { return EventOrphanInd }
func (PollCnf) Kind() EventKind         { return EventPollCnf }
func (ScanCnf) Kind() EventKind         { return EventScanCnf }
func (CommStatusInd) Kind() EventKind   { return EventCommStatus }
func (StartCnf) Kind() EventKind        { return EventStartCnf }
func (PurgeCnf) Kind() EventKind        { return EventPurgeCnf }
func (PollInd) Kind() EventKind         { return EventPollInd }
