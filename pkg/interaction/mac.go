package interaction

import (
	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/payload"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// MAC serves the MAC subsystem by decoding requests onto an engine.
type MAC struct {
	engine mac.Engine
	codec  *payload.Codec
}

// NewMAC creates the MAC command group.
func NewMAC(engine mac.Engine, codec *payload.Codec) *MAC {
	return &MAC{engine: engine, codec: codec}
}

// Register implements Group.
func (m *MAC) Register(r *Registry) error {
	sreq := func(id uint8, name string, h Handler) Command {
		return Command{ID: id, Name: name, Type: mt.TypeSREQ, Handle: h}
	}
	return r.Register(mt.SubsystemMAC,
		sreq(mt.MACResetReq, "RESET_REQ", m.handleReset),
		sreq(mt.MACInit, "INIT", m.handleInit),
		sreq(mt.MACStartReq, "START_REQ", m.handleStart),
		sreq(mt.MACSyncReq, "SYNC_REQ", m.handleSync),
		sreq(mt.MACDataReq, "DATA_REQ", m.handleData),
		sreq(mt.MACAssociateReq, "ASSOCIATE_REQ", m.handleAssociate),
		sreq(mt.MACDisassociateReq, "DISASSOCIATE_REQ", m.handleDisassociate),
		sreq(mt.MACGetReq, "GET_REQ", m.handleGet),
		sreq(mt.MACSetReq, "SET_REQ", m.handleSet),
		sreq(mt.MACScanReq, "SCAN_REQ", m.handleScan),
		sreq(mt.MACPollReq, "POLL_REQ", m.handlePoll),
		sreq(mt.MACPurgeReq, "PURGE_REQ", m.handlePurge),
		sreq(mt.MACSetRxGainReq, "SET_RX_GAIN_REQ", m.handleSetRxGain),
		sreq(mt.MACSecurityGetReq, "SECURITY_GET_REQ", m.handleSecurityGet),
		sreq(mt.MACSecuritySetReq, "SECURITY_SET_REQ", m.handleSecuritySet),
		sreq(mt.MACUpdatePANIDReq, "UPDATE_PANID_REQ", m.handleUpdatePANID),
		sreq(mt.MACAddDeviceReq, "ADD_DEVICE_REQ", m.handleAddDevice),
		sreq(mt.MACDeleteDeviceReq, "DELETE_DEVICE_REQ", m.handleDeleteDevice),
		sreq(mt.MACReadKeyReq, "READ_KEY_REQ", m.handleReadKey),
		sreq(mt.MACWriteKeyReq, "WRITE_KEY_REQ", m.handleWriteKey),
		sreq(mt.MACDeleteKeyReq, "DELETE_KEY_REQ", m.handleDeleteKey),
		sreq(mt.MACDeleteAllDevsReq, "DELETE_ALL_DEVICES_REQ", m.handleDeleteAllDevices),
		sreq(mt.MACFHEnableReq, "FH_ENABLE_REQ", m.handleFHEnable),
		sreq(mt.MACFHStartReq, "FH_START_REQ", m.handleFHStart),
		sreq(mt.MACFHGetReq, "FH_GET_REQ", m.handleFHGet),
		sreq(mt.MACFHSetReq, "FH_SET_REQ", m.handleFHSet),
		sreq(mt.MACAssociateRsp, "ASSOCIATE_RSP", m.handleAssociateResponse),
		sreq(mt.MACOrphanRsp, "ORPHAN_RSP", m.handleOrphanResponse),
	)
}

func status(s wire.Status) []byte {
	return payload.StatusBody(s)
}

// empty guards commands without a body.
func empty(data []byte, call func() wire.Status) []byte {
	if len(data) != 0 {
		return status(wire.StatusLengthError)
	}
	return status(call())
}

// decoded runs call only when the request decoded cleanly.
func decoded[T any](req T, st wire.Status, call func(T) wire.Status) []byte {
	if st != wire.StatusSuccess {
		return status(st)
	}
	return status(call(req))
}

func (m *MAC) handleReset(data []byte) []byte {
	v, st := payload.DecodeReset(data)
	return decoded(v, st, m.engine.Reset)
}

func (m *MAC) handleInit(data []byte) []byte {
	return empty(data, m.engine.Init)
}

func (m *MAC) handleStart(data []byte) []byte {
	req, st := payload.DecodeStart(data)
	return decoded(req, st, m.engine.Start)
}

func (m *MAC) handleSync(data []byte) []byte {
	req, st := payload.DecodeSync(data)
	return decoded(req, st, m.engine.Sync)
}

func (m *MAC) handleData(data []byte) []byte {
	req, st := payload.DecodeData(data)
	return decoded(req, st, m.engine.Data)
}

func (m *MAC) handleAssociate(data []byte) []byte {
	req, st := payload.DecodeAssociate(data)
	return decoded(req, st, m.engine.Associate)
}

func (m *MAC) handleAssociateResponse(data []byte) []byte {
	rsp, st := payload.DecodeAssociateResponse(data)
	return decoded(rsp, st, m.engine.AssociateResponse)
}

func (m *MAC) handleDisassociate(data []byte) []byte {
	req, st := payload.DecodeDisassociate(data)
	return decoded(req, st, m.engine.Disassociate)
}

func (m *MAC) handleOrphanResponse(data []byte) []byte {
	rsp, st := payload.DecodeOrphanResponse(data)
	return decoded(rsp, st, m.engine.OrphanResponse)
}

func (m *MAC) handleScan(data []byte) []byte {
	req, st := payload.DecodeScan(data)
	return decoded(req, st, m.engine.Scan)
}

func (m *MAC) handlePoll(data []byte) []byte {
	req, st := payload.DecodePoll(data)
	return decoded(req, st, m.engine.Poll)
}

func (m *MAC) handlePurge(data []byte) []byte {
	handle, st := payload.DecodeUint8(data)
	return decoded(handle, st, m.engine.Purge)
}

func (m *MAC) handleSetRxGain(data []byte) []byte {
	mode, st := payload.DecodeUint8(data)
	return decoded(mode != 0, st, m.engine.SetRxGain)
}

func (m *MAC) handleUpdatePANID(data []byte) []byte {
	pan, st := payload.DecodeUint16(data)
	return decoded(pan, st, m.engine.UpdatePANID)
}

func (m *MAC) handleGet(data []byte) []byte {
	return m.codec.GetPIB(m.engine, data)
}

func (m *MAC) handleSet(data []byte) []byte {
	return status(m.codec.SetPIB(m.engine, data))
}

func (m *MAC) handleSecurityGet(data []byte) []byte {
	return m.codec.GetSecurity(m.engine, data)
}

func (m *MAC) handleSecuritySet(data []byte) []byte {
	return status(m.codec.SetSecurity(m.engine, data))
}

func (m *MAC) handleAddDevice(data []byte) []byte {
	req, st := payload.DecodeAddDevice(data)
	return decoded(req, st, m.engine.AddDevice)
}

func (m *MAC) handleDeleteDevice(data []byte) []byte {
	ext, st := payload.DecodeDeleteDevice(data)
	return decoded(ext, st, m.engine.DeleteDevice)
}

func (m *MAC) handleDeleteAllDevices(data []byte) []byte {
	return empty(data, m.engine.DeleteAllDevices)
}

// handleReadKey answers [status][frameCounter u32]; failures are status-only.
func (m *MAC) handleReadKey(data []byte) []byte {
	idx, st := m.codec.DecodeKeyIndex(data)
	if st != wire.StatusSuccess {
		return status(st)
	}
	fc, st := m.engine.ReadKeyFrameCounter(idx)
	if st != wire.StatusSuccess {
		return status(st)
	}
	w := wire.NewWriter(5)
	w.PutStatus(st)
	w.PutUint32(fc)
	return w.Bytes()
}

func (m *MAC) handleWriteKey(data []byte) []byte {
	req, st := m.codec.DecodeWriteKey(data)
	return decoded(req, st, m.engine.WriteKey)
}

func (m *MAC) handleDeleteKey(data []byte) []byte {
	idx, st := m.codec.DecodeKeyIndex(data)
	return decoded(idx, st, m.engine.DeleteKey)
}

func (m *MAC) handleFHEnable(data []byte) []byte {
	return empty(data, m.engine.EnableFH)
}

func (m *MAC) handleFHStart(data []byte) []byte {
	return empty(data, m.engine.StartFH)
}

func (m *MAC) handleFHGet(data []byte) []byte {
	return m.codec.GetFH(m.engine, data)
}

func (m *MAC) handleFHSet(data []byte) []byte {
	return status(m.codec.SetFH(m.engine, data))
}
