package macsim

import (
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/payload"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// Default table sizes and addresses.
const (
	DefaultKeyTableSize    = 4
	DefaultDeviceTableSize = 16
	DefaultLevelTableSize  = 4
	DefaultAssocShort      = 0x0001
	BroadcastPANID         = 0xFFFF
	UnassignedShort        = 0xFFFF
)

// Config configures the simulated engine.
type Config struct {
	// ExtAddr is the primary extended address of the radio.
	ExtAddr wire.ExtAddr

	// Networks are the PANs reported by active and passive scans.
	Networks []mac.PANDescriptor

	// AssocShort is the short address granted by associate confirms.
	AssocShort uint16

	// Table capacities of the security PIB.
	KeyTableSize    uint16
	DeviceTableSize uint16
	LevelTableSize  uint16

	// ConfirmDelay delays asynchronous confirms. Zero delivers them on the
	// requesting goroutine.
	ConfirmDelay time.Duration

	// Seed seeds the random number source.
	Seed uint64

	// Logger is the optional logger for debug output.
	Logger *slog.Logger
}

// DefaultConfig returns a configuration with a fixed extended address and
// default table sizes.
func DefaultConfig() Config {
	return Config{
		ExtAddr:         wire.ExtAddr{0x01, 0x00, 0x00, 0x00, 0x00, 0x4B, 0x12, 0x00},
		AssocShort:      DefaultAssocShort,
		KeyTableSize:    DefaultKeyTableSize,
		DeviceTableSize: DefaultDeviceTableSize,
		LevelTableSize:  DefaultLevelTableSize,
	}
}

// Engine is an in-memory mac.Engine.
type Engine struct {
	config Config

	mu       sync.Mutex
	handler  mac.EventHandler
	pib      *attrStore[mac.PIBAttribute]
	security *attrStore[mac.SecurityAttribute]
	fh       *attrStore[mac.FHAttribute]
	entries  map[entryKey]mac.SecurityEntry
	pending  map[uint8]bool
	rng      *rand.Rand

	fhEnabled bool
	highGain  bool
	started   bool
}

var _ mac.Engine = (*Engine)(nil)

// New creates a simulated engine. Zero table sizes take their defaults.
func New(config Config) *Engine {
	if config.KeyTableSize == 0 {
		config.KeyTableSize = DefaultKeyTableSize
	}
	if config.DeviceTableSize == 0 {
		config.DeviceTableSize = DefaultDeviceTableSize
	}
	if config.LevelTableSize == 0 {
		config.LevelTableSize = DefaultLevelTableSize
	}
	if config.AssocShort == 0 {
		config.AssocShort = DefaultAssocShort
	}

	e := &Engine{
		config:  config,
		entries: make(map[entryKey]mac.SecurityEntry),
		pending: make(map[uint8]bool),
		rng:     rand.New(rand.NewPCG(config.Seed, config.Seed^0x9E3779B97F4A7C15)),
	}
	e.pib = newAttrStore(payload.PIBDescriptor, pibDefaults())
	e.security = newAttrStore(payload.SecurityDescriptorOf, map[mac.SecurityAttribute]uint32{
		mac.SecAttrKeyTableEntries:           uint32(config.KeyTableSize),
		mac.SecAttrDeviceTableEntries:        uint32(config.DeviceTableSize),
		mac.SecAttrSecurityLevelTableEntries: uint32(config.LevelTableSize),
		mac.SecAttrPANCoordShortAddress:      UnassignedShort,
	})
	e.fh = newAttrStore(payload.FHDescriptor, fhDefaults())
	e.resetPIB()
	return e
}

func pibDefaults() map[mac.PIBAttribute]uint32 {
	return map[mac.PIBAttribute]uint32{
		mac.AttrAckWaitDuration:            54,
		mac.AttrAutoRequest:                1,
		mac.AttrBattLifeExtPeriods:         6,
		mac.AttrBeaconOrder:                15,
		mac.AttrCoordShortAddress:          UnassignedShort,
		mac.AttrGTSPermit:                  1,
		mac.AttrMaxCSMABackoffs:            4,
		mac.AttrMinBE:                      3,
		mac.AttrPANID:                      BroadcastPANID,
		mac.AttrShortAddress:               UnassignedShort,
		mac.AttrSuperframeOrder:            15,
		mac.AttrTransactionPersistenceTime: 0x01F4,
		mac.AttrMaxBE:                      5,
		mac.AttrMaxFrameTotalWaitTime:      1220,
		mac.AttrMaxFrameRetries:            3,
		mac.AttrResponseWaitTime:           32,
		mac.AttrEBeaconOrder:               15,
		mac.AttrEBeaconOrderNBPAN:          0x3FFF,
		mac.AttrLogicalChannel:             11,
		mac.AttrAltBE:                      1,
		mac.AttrDeviceBeaconOrder:          15,
		mac.AttrPhyTransmitPowerSigned:     5,
	}
}

func fhDefaults() map[mac.FHAttribute]uint32 {
	return map[mac.FHAttribute]uint32{
		mac.FHAttrBCInterval:        0xFA0,
		mac.FHAttrUCDwellInterval:   250,
		mac.FHAttrBCDwellInterval:   255,
		mac.FHAttrClockDrift:        255,
		mac.FHAttrTimingAccuracy:    10,
		mac.FHAttrUCChannelFunction: 2,
		mac.FHAttrBCChannelFunction: 2,
		mac.FHAttrPANSize:           1,
		mac.FHAttrRoutingCost:       0xFF,
		mac.FHAttrRoutingMethod:     1,
		mac.FHAttrNeighborValidTime: 120,
	}
}

// resetPIB restores default values. Caller holds mu or owns e exclusively.
func (e *Engine) resetPIB() {
	e.pib.reset()
	e.pib.arrays[mac.AttrExtendedAddress] = append([]byte(nil), e.config.ExtAddr[:]...)
	e.pib.scalars[mac.AttrDSN] = uint32(e.rng.Uint32() & 0xFF)
	e.pib.scalars[mac.AttrBSN] = uint32(e.rng.Uint32() & 0xFF)
	e.pib.scalars[mac.AttrEBSN] = uint32(e.rng.Uint32() & 0xFF)
	e.fh.reset()
	e.fhEnabled = false
	e.started = false
}

// SetEventHandler registers the receiver of confirms and indications.
func (e *Engine) SetEventHandler(h mac.EventHandler) {
	e.mu.Lock()
	e.handler = h
	e.mu.Unlock()
}

// Inject delivers an indication as if the radio had raised it.
func (e *Engine) Inject(events ...mac.Event) {
	e.deliver(events...)
}

// deliver hands events to the handler in order. Must be called without mu.
func (e *Engine) deliver(events ...mac.Event) {
	e.mu.Lock()
	h := e.handler
	e.mu.Unlock()
	if h == nil || len(events) == 0 {
		return
	}
	run := func() {
		for _, ev := range events {
			e.debugLog("event", "kind", ev.Kind().String())
			h(ev)
		}
	}
	if e.config.ConfirmDelay <= 0 {
		run()
		return
	}
	time.AfterFunc(e.config.ConfirmDelay, run)
}

func (e *Engine) debugLog(msg string, args ...any) {
	if e.config.Logger != nil {
		e.config.Logger.Debug("macsim: "+msg, args...)
	}
}

// Reset resets the MAC. Security tables are cleared with the PIB.
func (e *Engine) Reset(setDefaultPIB bool) wire.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	if setDefaultPIB {
		e.resetPIB()
		e.security.reset()
		clear(e.entries)
	}
	clear(e.pending)
	e.debugLog("reset", "default_pib", setDefaultPIB)
	return wire.StatusSuccess
}

// Init is a no-op.
func (e *Engine) Init() wire.Status {
	return wire.StatusSuccess
}

// Start applies the PAN parameters and confirms.
func (e *Engine) Start(req mac.StartRequest) wire.Status {
	e.mu.Lock()
	if req.StartFH && !e.fhEnabled {
		e.mu.Unlock()
		return wire.StatusDenied
	}
	e.pib.scalars[mac.AttrPANID] = uint32(req.PANID)
	e.pib.scalars[mac.AttrLogicalChannel] = uint32(req.LogicalChannel)
	e.pib.scalars[mac.AttrChannelPage] = uint32(req.ChannelPage)
	e.pib.scalars[mac.AttrPhyCurrentDescriptorID] = uint32(req.PhyID)
	e.pib.scalars[mac.AttrBeaconOrder] = uint32(req.BeaconOrder)
	e.pib.scalars[mac.AttrSuperframeOrder] = uint32(req.SuperframeOrder)
	e.pib.scalars[mac.AttrBattLifeExt] = boolValue(req.BatteryLifeExt)
	e.started = true
	e.mu.Unlock()

	e.deliver(mac.StartCnf{Status: wire.StatusSuccess})
	return wire.StatusSuccess
}

// Sync accepts the request. The simulated coordinator never goes away.
func (e *Engine) Sync(req mac.SyncRequest) wire.Status {
	e.mu.Lock()
	e.pib.scalars[mac.AttrLogicalChannel] = uint32(req.LogicalChannel)
	e.pib.scalars[mac.AttrChannelPage] = uint32(req.ChannelPage)
	e.mu.Unlock()
	return wire.StatusSuccess
}

// Data transmits an MSDU. Indirect frames stay pending until purged; frames
// addressed to the engine itself are looped back as data indications.
func (e *Engine) Data(req mac.DataRequest) wire.Status {
	e.mu.Lock()
	if req.TxOptions&mac.TxOptionIndirect != 0 {
		if e.pending[req.MSDUHandle] {
			e.mu.Unlock()
			return wire.StatusTransactionOverflow
		}
		e.pending[req.MSDUHandle] = true
		e.mu.Unlock()
		return wire.StatusSuccess
	}
	panID := uint16(e.pib.scalars[mac.AttrPANID])
	own := e.isOwnAddress(req.DstAddr)
	src := e.sourceAddress(req.SrcAddrMode)
	dsn := uint8(e.pib.scalars[mac.AttrDSN])
	e.pib.scalars[mac.AttrDSN] = uint32(dsn + 1)
	e.mu.Unlock()

	events := []mac.Event{mac.DataCnf{
		Status:      wire.StatusSuccess,
		MSDUHandle:  req.MSDUHandle,
		Timestamp:   uint32(time.Now().UnixMicro()),
		LinkQuality: 0xFF,
	}}
	if own {
		events = append(events, mac.DataInd{
			SrcAddr:     src,
			DstAddr:     req.DstAddr,
			SrcPANID:    panID,
			DstPANID:    req.DstPANID,
			LinkQuality: 0xFF,
			DSN:         dsn,
			Sec:         req.Sec,
			MSDU:        append([]byte(nil), req.MSDU...),
			PayloadIEs:  append([]byte(nil), req.PayloadIEs...),
		})
	}
	e.deliver(events...)
	return wire.StatusSuccess
}

func (e *Engine) isOwnAddress(a wire.Address) bool {
	switch a.Mode {
	case wire.AddrModeShort:
		return a.Short == uint16(e.pib.scalars[mac.AttrShortAddress]) && a.Short != UnassignedShort
	case wire.AddrModeExt:
		return a.Ext == e.config.ExtAddr
	default:
		return false
	}
}

func (e *Engine) sourceAddress(mode wire.AddrMode) wire.Address {
	switch mode {
	case wire.AddrModeShort:
		return wire.ShortAddress(uint16(e.pib.scalars[mac.AttrShortAddress]))
	case wire.AddrModeExt:
		return wire.ExtAddress(e.config.ExtAddr)
	default:
		return wire.Address{}
	}
}

// Associate joins the requested coordinator with the configured short address.
func (e *Engine) Associate(req mac.AssociateRequest) wire.Status {
	e.mu.Lock()
	e.pib.scalars[mac.AttrPANID] = uint32(req.CoordPANID)
	e.pib.scalars[mac.AttrLogicalChannel] = uint32(req.LogicalChannel)
	e.pib.scalars[mac.AttrShortAddress] = uint32(e.config.AssocShort)
	if req.CoordAddr.Mode == wire.AddrModeShort {
		e.pib.scalars[mac.AttrCoordShortAddress] = uint32(req.CoordAddr.Short)
	} else if req.CoordAddr.Mode == wire.AddrModeExt {
		e.pib.arrays[mac.AttrCoordExtendedAddress] = append([]byte(nil), req.CoordAddr.Ext[:]...)
	}
	short := e.config.AssocShort
	e.mu.Unlock()

	e.deliver(mac.AssociateCnf{Status: wire.StatusSuccess, AssocShort: short, Sec: req.Sec})
	return wire.StatusSuccess
}

// AssociateResponse reports the indirect transmission as delivered.
func (e *Engine) AssociateResponse(rsp mac.AssociateResponse) wire.Status {
	e.deliver(e.commStatus(wire.ExtAddress(rsp.DeviceAddr), rsp.Sec))
	return wire.StatusSuccess
}

// OrphanResponse reports the realignment as delivered.
func (e *Engine) OrphanResponse(rsp mac.OrphanResponse) wire.Status {
	e.deliver(e.commStatus(wire.ExtAddress(rsp.OrphanAddr), rsp.Sec))
	return wire.StatusSuccess
}

func (e *Engine) commStatus(dst wire.Address, sec wire.SecurityDescriptor) mac.CommStatusInd {
	e.mu.Lock()
	defer e.mu.Unlock()
	return mac.CommStatusInd{
		Status:  wire.StatusSuccess,
		SrcAddr: wire.ExtAddress(e.config.ExtAddr),
		DstAddr: dst,
		PANID:   uint16(e.pib.scalars[mac.AttrPANID]),
		Sec:     sec,
	}
}

// Disassociate confirms the request. Leaving our own PAN clears the
// association.
func (e *Engine) Disassociate(req mac.DisassociateRequest) wire.Status {
	e.mu.Lock()
	if req.DevicePANID == uint16(e.pib.scalars[mac.AttrPANID]) && !e.started {
		e.pib.scalars[mac.AttrShortAddress] = UnassignedShort
		e.pib.scalars[mac.AttrCoordShortAddress] = UnassignedShort
	}
	e.mu.Unlock()

	e.deliver(mac.DisassociateCnf{
		Status:      wire.StatusSuccess,
		DeviceAddr:  req.DeviceAddr,
		DevicePANID: req.DevicePANID,
	})
	return wire.StatusSuccess
}

// Scan reports the configured networks. Energy scans report zero energy on
// every requested channel; orphan scans find no coordinator.
func (e *Engine) Scan(req mac.ScanRequest) wire.Status {
	channels := req.Channels.Channels()
	if len(channels) == 0 {
		return wire.StatusInvalidParameter
	}

	cnf := mac.ScanCnf{
		Status:      wire.StatusSuccess,
		ScanType:    req.ScanType,
		ChannelPage: req.ChannelPage,
		PhyID:       req.PhyID,
	}
	var events []mac.Event

	switch req.ScanType {
	case mac.ScanEnergyDetect:
		cnf.Energies = make([]uint8, len(channels))
	case mac.ScanActive, mac.ScanPassive, mac.ScanActiveEnhanced:
		e.mu.Lock()
		notify := e.pib.scalars[mac.AttrAutoRequest] == 0
		e.mu.Unlock()
		for i, pan := range e.config.Networks {
			if !req.Channels.Has(pan.LogicalChannel) {
				continue
			}
			if req.MaxResults > 0 && len(cnf.PANs) >= int(req.MaxResults) {
				break
			}
			if notify {
				events = append(events, mac.BeaconNotifyInd{BSN: uint8(i), PAN: pan})
				continue
			}
			cnf.PANs = append(cnf.PANs, pan)
		}
		if !notify && len(cnf.PANs) == 0 {
			cnf.Status = wire.StatusNoBeacon
		}
	case mac.ScanOrphan:
		cnf.Status = wire.StatusNoBeacon
	default:
		return wire.StatusInvalidParameter
	}

	e.deliver(append(events, cnf)...)
	return wire.StatusSuccess
}

// Poll finds no pending data at the coordinator.
func (e *Engine) Poll(req mac.PollRequest) wire.Status {
	e.deliver(mac.PollCnf{Status: wire.StatusNoData})
	return wire.StatusSuccess
}

// Purge removes a pending indirect frame.
func (e *Engine) Purge(msduHandle uint8) wire.Status {
	e.mu.Lock()
	st := wire.StatusInvalidHandle
	if e.pending[msduHandle] {
		delete(e.pending, msduHandle)
		st = wire.StatusSuccess
	}
	e.mu.Unlock()

	e.deliver(mac.PurgeCnf{Status: st, MSDUHandle: msduHandle})
	return wire.StatusSuccess
}

// Pending reports whether an indirect frame with the handle is queued.
func (e *Engine) Pending(msduHandle uint8) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending[msduHandle]
}

// SetRxGain records the gain mode.
func (e *Engine) SetRxGain(highGain bool) wire.Status {
	e.mu.Lock()
	e.highGain = highGain
	e.mu.Unlock()
	return wire.StatusSuccess
}

// HighGain returns the last gain mode set.
func (e *Engine) HighGain() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.highGain
}

// UpdatePANID changes the PAN id in place.
func (e *Engine) UpdatePANID(panID uint16) wire.Status {
	e.mu.Lock()
	e.pib.scalars[mac.AttrPANID] = uint32(panID)
	e.mu.Unlock()
	return wire.StatusSuccess
}

// GetPIB reads a scalar PIB attribute.
func (e *Engine) GetPIB(attr mac.PIBAttribute) (uint32, wire.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pib.get(attr)
}

// GetPIBArray reads an array PIB attribute.
func (e *Engine) GetPIBArray(attr mac.PIBAttribute, dst []byte) wire.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pib.getArray(attr, dst)
}

// SetPIB writes a scalar PIB attribute.
func (e *Engine) SetPIB(attr mac.PIBAttribute, value uint32) wire.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pib.set(attr, value)
}

// SetPIBArray writes an array PIB attribute.
func (e *Engine) SetPIBArray(attr mac.PIBAttribute, value []byte) wire.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pib.setArray(attr, value)
}

// EnableFH turns frequency hopping on.
func (e *Engine) EnableFH() wire.Status {
	e.mu.Lock()
	e.fhEnabled = true
	e.mu.Unlock()
	return wire.StatusSuccess
}

// StartFH requires frequency hopping to be enabled.
func (e *Engine) StartFH() wire.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.fhEnabled {
		return wire.StatusDenied
	}
	return wire.StatusSuccess
}

func (e *Engine) GetFH(attr mac.FHAttribute) (uint32, wire.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fh.get(attr)
}

func (e *Engine) GetFHArray(attr mac.FHAttribute, dst []byte) wire.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fh.getArray(attr, dst)
}

func (e *Engine) SetFH(attr mac.FHAttribute, value uint32) wire.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fh.set(attr, value)
}

func (e *Engine) SetFHArray(attr mac.FHAttribute, value []byte) wire.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fh.setArray(attr, value)
}

// ExtAddress reports the PIB address or the primary address. The simulator
// has no separate user-configured address and reports the primary one.
func (e *Engine) ExtAddress(kind mac.ExtAddrType) (wire.ExtAddr, wire.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch kind {
	case mac.ExtAddrPIB:
		var a wire.ExtAddr
		copy(a[:], e.pib.arrays[mac.AttrExtendedAddress])
		return a, wire.StatusSuccess
	case mac.ExtAddrPrimary, mac.ExtAddrUserConfig:
		return e.config.ExtAddr, wire.StatusSuccess
	default:
		return wire.ExtAddr{}, wire.StatusInvalidParameter
	}
}

// Random returns a pseudo-random value.
func (e *Engine) Random() uint16 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return uint16(e.rng.Uint32())
}

func boolValue(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
