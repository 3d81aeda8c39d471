package payload

import (
	"fmt"

	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// Callback subscription bits of the SYS subsystem.
const (
	CallbackSysResetInd uint32 = 0x0001
)

// Callback subscription bits of the MAC subsystem.
const (
	CallbackAssociateCnf    uint32 = 0x0001
	CallbackAssociateInd    uint32 = 0x0002
	CallbackBeaconNotify    uint32 = 0x0004
	CallbackCommStatus      uint32 = 0x0008
	CallbackDataCnf         uint32 = 0x0010
	CallbackDataInd         uint32 = 0x0020
	CallbackDisassociateCnf uint32 = 0x0040
	CallbackDisassociateInd uint32 = 0x0080
	CallbackOrphanInd       uint32 = 0x0100
	CallbackPollCnf         uint32 = 0x0200
	CallbackPollInd         uint32 = 0x0400
	CallbackScanCnf         uint32 = 0x0800
	CallbackStartCnf        uint32 = 0x1000
	CallbackSyncLoss        uint32 = 0x2000
	CallbackPurgeCnf        uint32 = 0x4000
)

// Confirm and indication body sizes. Variable events list their fixed part.
const (
	SyncLossIndSize        = 17
	AssociateIndSize       = 20
	AssociateCnfSize       = 14
	DataCnfSize            = 16
	DataIndSize            = 51
	DisassociateIndSize    = 20
	DisassociateCnfSize    = 12
	OrphanIndSize          = 19
	PollCnfSize            = 2
	PollIndSize            = 12
	CommStatusIndSize      = 33
	StartCnfSize           = 1
	PurgeCnfSize           = 2
	PANDescriptorSize      = 33
	ScanCnfSize            = 22
	BeaconNotifySize       = 2 + PANDescriptorSize
	normalBeaconExtraSize  = 2
	enhancedBeaconInfoSize = 8
)

// EventInfo ties an engine event to its AREQ command and subscription bit.
type EventInfo struct {
	Command  uint8
	Callback uint32
}

var eventTable = map[mac.EventKind]EventInfo{
	mac.EventSyncLoss:        {mt.MACSyncLossInd, CallbackSyncLoss},
	mac.EventAssociateInd:    {mt.MACAssociateInd, CallbackAssociateInd},
	mac.EventAssociateCnf:    {mt.MACAssociateCnf, CallbackAssociateCnf},
	mac.EventBeaconNotify:    {mt.MACBeaconNotifyInd, CallbackBeaconNotify},
	mac.EventDataCnf:         {mt.MACDataCnf, CallbackDataCnf},
	mac.EventDataInd:         {mt.MACDataInd, CallbackDataInd},
	mac.EventDisassociateInd: {mt.MACDisassociateInd, CallbackDisassociateInd},
	mac.EventDisassociateCnf: {mt.MACDisassociateCnf, CallbackDisassociateCnf},
	mac.EventOrphanInd:       {mt.MACOrphanInd, CallbackOrphanInd},
	mac.EventPollCnf:         {mt.MACPollCnf, CallbackPollCnf},
	mac.EventScanCnf:         {mt.MACScanCnf, CallbackScanCnf},
	mac.EventCommStatus:      {mt.MACCommStatusInd, CallbackCommStatus},
	mac.EventStartCnf:        {mt.MACStartCnf, CallbackStartCnf},
	mac.EventPurgeCnf:        {mt.MACPurgeCnf, CallbackPurgeCnf},
	mac.EventPollInd:         {mt.MACPollInd, CallbackPollInd},
}

// LookupEvent returns the AREQ command and subscription bit of kind.
func LookupEvent(kind mac.EventKind) (EventInfo, bool) {
	info, ok := eventTable[kind]
	return info, ok
}

// EventName returns the name of the MAC AREQ with the given command id.
func EventName(cmd uint8) string {
	for kind, info := range eventTable {
		if info.Command == cmd {
			return kind.String()
		}
	}
	return fmt.Sprintf("MAC_0x%02X", cmd)
}

// EncodeEvent encodes an engine event into its AREQ body.
func EncodeEvent(ev mac.Event) (EventInfo, []byte, error) {
	info, ok := eventTable[ev.Kind()]
	if !ok {
		return EventInfo{}, nil, fmt.Errorf("%w: %d", ErrUnknownEvent, ev.Kind())
	}

	var body []byte
	switch e := ev.(type) {
	case mac.SyncLossInd:
		body = encodeSyncLoss(e)
	case mac.AssociateInd:
		body = encodeAssociateInd(e)
	case mac.AssociateCnf:
		body = encodeAssociateCnf(e)
	case mac.BeaconNotifyInd:
		body = encodeBeaconNotify(e)
	case mac.DataCnf:
		body = encodeDataCnf(e)
	case mac.DataInd:
		body = encodeDataInd(e)
	case mac.DisassociateInd:
		body = encodeDisassociateInd(e)
	case mac.DisassociateCnf:
		body = encodeDisassociateCnf(e)
	case mac.OrphanInd:
		body = encodeOrphanInd(e)
	case mac.PollCnf:
		body = encodePollCnf(e)
	case mac.ScanCnf:
		body = encodeScanCnf(e)
	case mac.CommStatusInd:
		body = encodeCommStatus(e)
	case mac.StartCnf:
		body = []byte{uint8(e.Status)}
	case mac.PurgeCnf:
		body = []byte{uint8(e.Status), e.MSDUHandle}
	case mac.PollInd:
		body = encodePollInd(e)
	default:
		return EventInfo{}, nil, fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
	}
	return info, body, nil
}

func encodeSyncLoss(e mac.SyncLossInd) []byte {
	w := wire.NewWriter(SyncLossIndSize)
	w.PutStatus(e.Status)
	w.PutUint16(e.PANID)
	w.PutUint8(e.LogicalChannel)
	w.PutUint8(e.ChannelPage)
	w.PutUint8(e.PhyID)
	w.PutSecurityDescriptor(e.Sec)
	return w.Bytes()
}

func encodeAssociateInd(e mac.AssociateInd) []byte {
	w := wire.NewWriter(AssociateIndSize)
	w.PutExtAddr(e.DeviceAddr)
	w.PutUint8(uint8(e.CapabilityInfo))
	w.PutSecurityDescriptor(e.Sec)
	return w.Bytes()
}

func encodeAssociateCnf(e mac.AssociateCnf) []byte {
	w := wire.NewWriter(AssociateCnfSize)
	w.PutStatus(e.Status)
	w.PutUint16(e.AssocShort)
	w.PutSecurityDescriptor(e.Sec)
	return w.Bytes()
}

func putPANDescriptor(w *wire.Writer, p mac.PANDescriptor) {
	w.PutAddress(p.CoordAddr)
	w.PutUint16(p.CoordPANID)
	w.PutUint16(p.SuperframeSpec)
	w.PutUint8(p.LogicalChannel)
	w.PutUint8(p.ChannelPage)
	w.PutBool(p.GTSPermit)
	w.PutUint8(p.LinkQuality)
	w.PutUint32(p.Timestamp)
	w.PutBool(p.SecurityFailure)
	w.PutSecurityDescriptor(p.Sec)
}

func readPANDescriptor(r *wire.Reader) mac.PANDescriptor {
	var p mac.PANDescriptor
	p.CoordAddr = r.Address()
	p.CoordPANID = r.Uint16()
	p.SuperframeSpec = r.Uint16()
	p.LogicalChannel = r.Uint8()
	p.ChannelPage = r.Uint8()
	p.GTSPermit = r.Bool()
	p.LinkQuality = r.Uint8()
	p.Timestamp = r.Uint32()
	p.SecurityFailure = r.Bool()
	p.Sec = r.SecurityDescriptor()
	return p
}

// Pending address spec: short count in bits 0-2, extended count in bits 4-6.
const maxPendingAddrs = 7

func beaconNotifySize(e mac.BeaconNotifyInd) int {
	if e.BeaconType == mac.BeaconEnhanced {
		return BeaconNotifySize + enhancedBeaconInfoSize
	}
	nShort := min(len(e.PendingShort), maxPendingAddrs)
	nExt := min(len(e.PendingExt), maxPendingAddrs)
	return BeaconNotifySize + normalBeaconExtraSize + 2*nShort + wire.ExtAddrSize*nExt + len(e.SDU)
}

func encodeBeaconNotify(e mac.BeaconNotifyInd) []byte {
	w := wire.NewWriter(beaconNotifySize(e))
	w.PutUint8(uint8(e.BeaconType))
	w.PutUint8(e.BSN)
	putPANDescriptor(w, e.PAN)

	if e.BeaconType == mac.BeaconEnhanced {
		w.PutUint8(e.BeaconOrder)
		w.PutUint8(e.SuperframeOrder)
		w.PutUint8(e.FinalCAPSlot)
		w.PutUint8(e.EnhancedBeaconOrder)
		w.PutUint8(e.OffsetTimeslot)
		w.PutUint8(e.CAPBackoff)
		w.PutUint16(e.NonBeaconOrder)
		return w.Bytes()
	}

	nShort := min(len(e.PendingShort), maxPendingAddrs)
	nExt := min(len(e.PendingExt), maxPendingAddrs)
	w.PutUint8(uint8(nShort) | uint8(nExt)<<4)
	w.PutUint8(uint8(len(e.SDU)))
	for _, a := range e.PendingShort[:nShort] {
		w.PutUint16(a)
	}
	for _, a := range e.PendingExt[:nExt] {
		w.PutExtAddr(a)
	}
	w.PutBytes(e.SDU)
	return w.Bytes()
}

func encodeDataCnf(e mac.DataCnf) []byte {
	w := wire.NewWriter(DataCnfSize)
	w.PutStatus(e.Status)
	w.PutUint8(e.MSDUHandle)
	w.PutUint32(e.Timestamp)
	w.PutUint16(e.Timestamp2)
	w.PutUint8(e.Retries)
	w.PutUint8(e.LinkQuality)
	w.PutUint8(e.Correlation)
	w.PutUint8(uint8(e.RSSI))
	w.PutUint32(e.FrameCounter)
	return w.Bytes()
}

func encodeDataInd(e mac.DataInd) []byte {
	w := wire.NewWriter(DataIndSize + len(e.MSDU) + len(e.PayloadIEs))
	w.PutAddress(e.SrcAddr)
	w.PutAddress(e.DstAddr)
	w.PutUint32(e.Timestamp)
	w.PutUint16(e.Timestamp2)
	w.PutUint16(e.SrcPANID)
	w.PutUint16(e.DstPANID)
	w.PutUint8(e.LinkQuality)
	w.PutUint8(e.Correlation)
	w.PutUint8(uint8(e.RSSI))
	w.PutUint8(e.DSN)
	w.PutSecurityDescriptor(e.Sec)
	w.PutUint32(e.FrameCounter)
	w.PutUint16(uint16(len(e.MSDU)))
	w.PutUint16(uint16(len(e.PayloadIEs)))
	w.PutBytes(e.MSDU)
	w.PutBytes(e.PayloadIEs)
	return w.Bytes()
}

// DecodeDataInd decodes a data indication body.
func DecodeDataInd(data []byte) (mac.DataInd, error) {
	var e mac.DataInd
	if len(data) < DataIndSize {
		return e, fmt.Errorf("data indication: %w", wire.ErrShortBuffer)
	}
	r := wire.NewReader(data)
	e.SrcAddr = r.Address()
	e.DstAddr = r.Address()
	e.Timestamp = r.Uint32()
	e.Timestamp2 = r.Uint16()
	e.SrcPANID = r.Uint16()
	e.DstPANID = r.Uint16()
	e.LinkQuality = r.Uint8()
	e.Correlation = r.Uint8()
	e.RSSI = int8(r.Uint8())
	e.DSN = r.Uint8()
	e.Sec = r.SecurityDescriptor()
	e.FrameCounter = r.Uint32()
	msduLen := int(r.Uint16())
	ieLen := int(r.Uint16())
	e.MSDU = r.Bytes(msduLen)
	if ieLen > 0 {
		e.PayloadIEs = r.Bytes(ieLen)
	}
	if err := r.Err(); err != nil {
		return mac.DataInd{}, fmt.Errorf("data indication: %w", err)
	}
	return e, nil
}

func encodeDisassociateInd(e mac.DisassociateInd) []byte {
	w := wire.NewWriter(DisassociateIndSize)
	w.PutExtAddr(e.DeviceAddr)
	w.PutUint8(e.Reason)
	w.PutSecurityDescriptor(e.Sec)
	return w.Bytes()
}

func encodeDisassociateCnf(e mac.DisassociateCnf) []byte {
	w := wire.NewWriter(DisassociateCnfSize)
	w.PutStatus(e.Status)
	w.PutAddress(e.DeviceAddr)
	w.PutUint16(e.DevicePANID)
	return w.Bytes()
}

func encodeOrphanInd(e mac.OrphanInd) []byte {
	w := wire.NewWriter(OrphanIndSize)
	w.PutExtAddr(e.OrphanAddr)
	w.PutSecurityDescriptor(e.Sec)
	return w.Bytes()
}

func encodePollCnf(e mac.PollCnf) []byte {
	w := wire.NewWriter(PollCnfSize)
	w.PutStatus(e.Status)
	w.PutBool(e.FramePending)
	return w.Bytes()
}

func encodePollInd(e mac.PollInd) []byte {
	w := wire.NewWriter(PollIndSize)
	w.PutAddress(e.SrcAddr)
	w.PutUint16(e.SrcPANID)
	w.PutBool(e.NoResponse)
	return w.Bytes()
}

func encodeScanCnf(e mac.ScanCnf) []byte {
	size := ScanCnfSize
	count := 0
	switch e.ScanType {
	case mac.ScanEnergyDetect:
		count = len(e.Energies)
		size += count
	case mac.ScanActive, mac.ScanPassive, mac.ScanActiveEnhanced:
		count = len(e.PANs)
		size += count * PANDescriptorSize
	}

	w := wire.NewWriter(size)
	w.PutStatus(e.Status)
	w.PutUint8(uint8(e.ScanType))
	w.PutUint8(e.ChannelPage)
	w.PutUint8(e.PhyID)
	w.PutBytes(e.Unscanned[:])
	w.PutUint8(uint8(count))
	switch e.ScanType {
	case mac.ScanEnergyDetect:
		w.PutBytes(e.Energies)
	case mac.ScanActive, mac.ScanPassive, mac.ScanActiveEnhanced:
		for _, p := range e.PANs {
			putPANDescriptor(w, p)
		}
	}
	return w.Bytes()
}

// DecodeScanCnf decodes a scan confirm body.
func DecodeScanCnf(data []byte) (mac.ScanCnf, error) {
	var e mac.ScanCnf
	if len(data) < ScanCnfSize {
		return e, fmt.Errorf("scan confirm: %w", wire.ErrShortBuffer)
	}
	r := wire.NewReader(data)
	e.Status = wire.Status(r.Uint8())
	e.ScanType = mac.ScanType(r.Uint8())
	e.ChannelPage = r.Uint8()
	e.PhyID = r.Uint8()
	r.Fixed(e.Unscanned[:])
	count := int(r.Uint8())
	switch e.ScanType {
	case mac.ScanEnergyDetect:
		e.Energies = r.Bytes(count)
	case mac.ScanActive, mac.ScanPassive, mac.ScanActiveEnhanced:
		for i := 0; i < count && r.Err() == nil; i++ {
			e.PANs = append(e.PANs, readPANDescriptor(r))
		}
	}
	if err := r.Err(); err != nil {
		return mac.ScanCnf{}, fmt.Errorf("scan confirm: %w", err)
	}
	return e, nil
}

func encodeCommStatus(e mac.CommStatusInd) []byte {
	w := wire.NewWriter(CommStatusIndSize)
	w.PutStatus(e.Status)
	w.PutAddress(e.SrcAddr)
	w.PutAddress(e.DstAddr)
	w.PutUint16(e.PANID)
	w.PutUint8(e.Reason)
	w.PutSecurityDescriptor(e.Sec)
	return w.Bytes()
}
