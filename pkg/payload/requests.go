package payload

import (
	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// Request body sizes. Sizes of variable requests are the fixed header only.
const (
	ResetReqSize        = 1
	StartReqSize        = 42
	SyncReqSize         = 4
	DataReqSize         = 35
	AssociateReqSize    = 26
	DisassociateReqSize = 24
	ScanReqSize         = 40
	PollReqSize         = 22
	PurgeReqSize        = 1
	SetRxGainReqSize    = 1
	UpdatePANIDReqSize  = 2
	AssociateRspSize    = 22
	OrphanRspSize       = 22
	AddDeviceReqSize    = 29
	DeleteDeviceReqSize = wire.ExtAddrSize
)

// DecodeReset decodes a MAC reset request.
func DecodeReset(data []byte) (bool, wire.Status) {
	if !exact(data, ResetReqSize) {
		return false, wire.StatusLengthError
	}
	return data[0] != 0, wire.StatusSuccess
}

// DecodeStart decodes a start request. The trailing header IE id list is
// sized by the field just before it.
func DecodeStart(data []byte) (mac.StartRequest, wire.Status) {
	var req mac.StartRequest
	if len(data) < StartReqSize {
		return req, wire.StatusLengthError
	}
	numIEs := int(data[StartReqSize-1])
	if !exact(data, StartReqSize+numIEs) {
		return req, wire.StatusLengthError
	}

	r := wire.NewReader(data)
	req.StartTime = r.Uint32()
	req.PANID = r.Uint16()
	req.LogicalChannel = r.Uint8()
	req.ChannelPage = r.Uint8()
	req.PhyID = r.Uint8()
	req.BeaconOrder = r.Uint8()
	req.SuperframeOrder = r.Uint8()
	req.PANCoordinator = r.Bool()
	req.BatteryLifeExt = r.Bool()
	req.CoordRealignment = r.Bool()
	req.RealignSec = r.SecurityDescriptor()
	req.BeaconSec = r.SecurityDescriptor()
	req.StartFH = r.Bool()
	req.EnhancedBeaconOrder = r.Uint8()
	req.OffsetTimeslot = r.Uint8()
	req.NonBeaconEnhancedOrder = r.Uint16()
	r.Uint8()
	if numIEs > 0 {
		req.HeaderIEIDs = r.Bytes(numIEs)
	}
	return req, finish(r)
}

// EncodeStart encodes a start request.
func EncodeStart(req mac.StartRequest) []byte {
	w := wire.NewWriter(StartReqSize + len(req.HeaderIEIDs))
	w.PutUint32(req.StartTime)
	w.PutUint16(req.PANID)
	w.PutUint8(req.LogicalChannel)
	w.PutUint8(req.ChannelPage)
	w.PutUint8(req.PhyID)
	w.PutUint8(req.BeaconOrder)
	w.PutUint8(req.SuperframeOrder)
	w.PutBool(req.PANCoordinator)
	w.PutBool(req.BatteryLifeExt)
	w.PutBool(req.CoordRealignment)
	w.PutSecurityDescriptor(req.RealignSec)
	w.PutSecurityDescriptor(req.BeaconSec)
	w.PutBool(req.StartFH)
	w.PutUint8(req.EnhancedBeaconOrder)
	w.PutUint8(req.OffsetTimeslot)
	w.PutUint16(req.NonBeaconEnhancedOrder)
	w.PutUint8(uint8(len(req.HeaderIEIDs)))
	w.PutBytes(req.HeaderIEIDs)
	return w.Bytes()
}

// DecodeSync decodes a sync request.
func DecodeSync(data []byte) (mac.SyncRequest, wire.Status) {
	var req mac.SyncRequest
	if !exact(data, SyncReqSize) {
		return req, wire.StatusLengthError
	}
	r := wire.NewReader(data)
	req.LogicalChannel = r.Uint8()
	req.ChannelPage = r.Uint8()
	req.TrackBeacon = r.Bool()
	req.PhyID = r.Uint8()
	return req, finish(r)
}

// DecodeData decodes a data request. The MSDU and payload IE block follow
// the fixed header and must account for every remaining byte.
func DecodeData(data []byte) (mac.DataRequest, wire.Status) {
	var req mac.DataRequest
	if len(data) < DataReqSize {
		return req, wire.StatusLengthError
	}

	r := wire.NewReader(data)
	req.DstAddr = r.Address()
	req.DstPANID = r.Uint16()
	req.SrcAddrMode = wire.AddrMode(r.Uint8())
	req.MSDUHandle = r.Uint8()
	req.TxOptions = mac.TxOptions(r.Uint8())
	req.Channel = r.Uint8()
	req.Power = r.Uint8()
	req.Sec = r.SecurityDescriptor()
	req.IncludeFHIEs = r.Uint32()
	ieLen := int(r.Uint16())
	msduLen := int(r.Uint16())
	if r.Err() != nil {
		return mac.DataRequest{}, finish(r)
	}

	if !exact(data, DataReqSize+msduLen+ieLen) {
		return mac.DataRequest{}, wire.StatusLengthError
	}
	req.MSDU = r.Bytes(msduLen)
	if ieLen > 0 {
		req.PayloadIEs = r.Bytes(ieLen)
	}
	return req, finish(r)
}

// EncodeData encodes a data request.
func EncodeData(req mac.DataRequest) []byte {
	w := wire.NewWriter(DataReqSize + len(req.MSDU) + len(req.PayloadIEs))
	w.PutAddress(req.DstAddr)
	w.PutUint16(req.DstPANID)
	w.PutUint8(uint8(req.SrcAddrMode))
	w.PutUint8(req.MSDUHandle)
	w.PutUint8(uint8(req.TxOptions))
	w.PutUint8(req.Channel)
	w.PutUint8(req.Power)
	w.PutSecurityDescriptor(req.Sec)
	w.PutUint32(req.IncludeFHIEs)
	w.PutUint16(uint16(len(req.PayloadIEs)))
	w.PutUint16(uint16(len(req.MSDU)))
	w.PutBytes(req.MSDU)
	w.PutBytes(req.PayloadIEs)
	return w.Bytes()
}

// DecodeAssociate decodes an associate request.
func DecodeAssociate(data []byte) (mac.AssociateRequest, wire.Status) {
	var req mac.AssociateRequest
	if !exact(data, AssociateReqSize) {
		return req, wire.StatusLengthError
	}
	r := wire.NewReader(data)
	req.LogicalChannel = r.Uint8()
	req.ChannelPage = r.Uint8()
	req.PhyID = r.Uint8()
	req.CoordAddr = r.Address()
	req.CoordPANID = r.Uint16()
	req.CapabilityInfo = mac.CapabilityInfo(r.Uint8())
	req.Sec = r.SecurityDescriptor()
	return req, finish(r)
}

// EncodeAssociate encodes an associate request.
func EncodeAssociate(req mac.AssociateRequest) []byte {
	w := wire.NewWriter(AssociateReqSize)
	w.PutUint8(req.LogicalChannel)
	w.PutUint8(req.ChannelPage)
	w.PutUint8(req.PhyID)
	w.PutAddress(req.CoordAddr)
	w.PutUint16(req.CoordPANID)
	w.PutUint8(uint8(req.CapabilityInfo))
	w.PutSecurityDescriptor(req.Sec)
	return w.Bytes()
}

// DecodeAssociateResponse decodes an associate response.
func DecodeAssociateResponse(data []byte) (mac.AssociateResponse, wire.Status) {
	var rsp mac.AssociateResponse
	if !exact(data, AssociateRspSize) {
		return rsp, wire.StatusLengthError
	}
	r := wire.NewReader(data)
	rsp.DeviceAddr = r.ExtAddr()
	rsp.AssocShort = r.Uint16()
	rsp.Status = wire.Status(r.Uint8())
	rsp.Sec = r.SecurityDescriptor()
	return rsp, finish(r)
}

// DecodeDisassociate decodes a disassociate request.
func DecodeDisassociate(data []byte) (mac.DisassociateRequest, wire.Status) {
	var req mac.DisassociateRequest
	if !exact(data, DisassociateReqSize) {
		return req, wire.StatusLengthError
	}
	r := wire.NewReader(data)
	req.DeviceAddr = r.Address()
	req.DevicePANID = r.Uint16()
	req.Reason = r.Uint8()
	req.TxIndirect = r.Bool()
	req.Sec = r.SecurityDescriptor()
	return req, finish(r)
}

// DecodeOrphanResponse decodes an orphan response.
func DecodeOrphanResponse(data []byte) (mac.OrphanResponse, wire.Status) {
	var rsp mac.OrphanResponse
	if !exact(data, OrphanRspSize) {
		return rsp, wire.StatusLengthError
	}
	r := wire.NewReader(data)
	rsp.OrphanAddr = r.ExtAddr()
	rsp.ShortAddr = r.Uint16()
	rsp.AssociatedMember = r.Bool()
	rsp.Sec = r.SecurityDescriptor()
	return rsp, finish(r)
}

// DecodeScan decodes a scan request.
func DecodeScan(data []byte) (mac.ScanRequest, wire.Status) {
	var req mac.ScanRequest
	if !exact(data, ScanReqSize) {
		return req, wire.StatusLengthError
	}
	r := wire.NewReader(data)
	req.ScanType = mac.ScanType(r.Uint8())
	req.ScanDuration = r.Uint8()
	req.ChannelPage = r.Uint8()
	req.PhyID = r.Uint8()
	req.MaxResults = r.Uint8()
	req.PermitJoining = r.Bool()
	req.LinkQuality = r.Uint8()
	req.PercentFilter = r.Uint8()
	req.MPMScan = r.Bool()
	req.MPMScanType = r.Uint8()
	req.MPMScanDuration = r.Uint16()
	req.Sec = r.SecurityDescriptor()
	r.Fixed(req.Channels[:])
	return req, finish(r)
}

// EncodeScan encodes a scan request.
func EncodeScan(req mac.ScanRequest) []byte {
	w := wire.NewWriter(ScanReqSize)
	w.PutUint8(uint8(req.ScanType))
	w.PutUint8(req.ScanDuration)
	w.PutUint8(req.ChannelPage)
	w.PutUint8(req.PhyID)
	w.PutUint8(req.MaxResults)
	w.PutBool(req.PermitJoining)
	w.PutUint8(req.LinkQuality)
	w.PutUint8(req.PercentFilter)
	w.PutBool(req.MPMScan)
	w.PutUint8(req.MPMScanType)
	w.PutUint16(req.MPMScanDuration)
	w.PutSecurityDescriptor(req.Sec)
	w.PutBytes(req.Channels[:])
	return w.Bytes()
}

// DecodePoll decodes a poll request.
func DecodePoll(data []byte) (mac.PollRequest, wire.Status) {
	var req mac.PollRequest
	if !exact(data, PollReqSize) {
		return req, wire.StatusLengthError
	}
	r := wire.NewReader(data)
	req.CoordAddr = r.Address()
	req.CoordPANID = r.Uint16()
	req.Sec = r.SecurityDescriptor()
	return req, finish(r)
}

// DecodeUint8 decodes a body consisting of a single byte.
func DecodeUint8(data []byte) (uint8, wire.Status) {
	if !exact(data, 1) {
		return 0, wire.StatusLengthError
	}
	return data[0], wire.StatusSuccess
}

// DecodeUint16 decodes a body consisting of a single u16.
func DecodeUint16(data []byte) (uint16, wire.Status) {
	if !exact(data, 2) {
		return 0, wire.StatusLengthError
	}
	r := wire.NewReader(data)
	return r.Uint16(), finish(r)
}

// DecodeAddDevice decodes an add-device request.
func DecodeAddDevice(data []byte) (mac.AddDeviceRequest, wire.Status) {
	var req mac.AddDeviceRequest
	if !exact(data, AddDeviceReqSize) {
		return req, wire.StatusLengthError
	}
	r := wire.NewReader(data)
	req.PANID = r.Uint16()
	req.ShortAddr = r.Uint16()
	req.ExtAddr = r.ExtAddr()
	req.FrameCounter = r.Uint32()
	req.Exempt = r.Bool()
	req.UniqueDevice = r.Bool()
	req.DuplicateDevice = r.Bool()
	req.LookupSize = r.Uint8()
	r.Fixed(req.LookupData[:])
	return req, finish(r)
}

// DecodeDeleteDevice decodes a delete-device request.
func DecodeDeleteDevice(data []byte) (wire.ExtAddr, wire.Status) {
	if !exact(data, DeleteDeviceReqSize) {
		return wire.ExtAddr{}, wire.StatusLengthError
	}
	r := wire.NewReader(data)
	return r.ExtAddr(), finish(r)
}

// WriteKeySize returns the size of a write-key request.
func (c *Codec) WriteKeySize() int {
	return 1 + c.width.Size() + mac.KeySize + 4 + 1 + mac.KeyLookupSize
}

// DecodeKeyIndex decodes a body consisting of one table index.
func (c *Codec) DecodeKeyIndex(data []byte) (uint16, wire.Status) {
	if !exact(data, c.width.Size()) {
		return 0, wire.StatusLengthError
	}
	r := wire.NewReader(data)
	return r.Index(c.width), finish(r)
}

// DecodeWriteKey decodes a write-key request.
func (c *Codec) DecodeWriteKey(data []byte) (mac.WriteKeyRequest, wire.Status) {
	var req mac.WriteKeyRequest
	if !exact(data, c.WriteKeySize()) {
		return req, wire.StatusLengthError
	}
	r := wire.NewReader(data)
	req.New = r.Bool()
	req.KeyIndex = r.Index(c.width)
	r.Fixed(req.Key[:])
	req.FrameCounter = r.Uint32()
	req.LookupSize = r.Uint8()
	r.Fixed(req.LookupData[:])
	return req, finish(r)
}

// EncodeWriteKey encodes a write-key request.
func (c *Codec) EncodeWriteKey(req mac.WriteKeyRequest) []byte {
	w := wire.NewWriter(c.WriteKeySize())
	w.PutBool(req.New)
	w.PutIndex(c.width, req.KeyIndex)
	w.PutBytes(req.Key[:])
	w.PutUint32(req.FrameCounter)
	w.PutUint8(req.LookupSize)
	w.PutBytes(req.LookupData[:])
	return w.Bytes()
}
