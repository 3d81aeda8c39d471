package payload

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

var testSec = wire.SecurityDescriptor{
	KeySource:     [8]byte{1, 2, 3, 4, 5, 6, 7, 8},
	SecurityLevel: 5,
	KeyIDMode:     1,
	KeyIndex:      2,
}

func TestDataRequestRoundTrip(t *testing.T) {
	req := mac.DataRequest{
		DstAddr:      wire.ShortAddress(0x1234),
		DstPANID:     0xABCD,
		SrcAddrMode:  wire.AddrModeExt,
		MSDUHandle:   7,
		TxOptions:    mac.TxOptionAck | mac.TxOptionIndirect,
		Sec:          testSec,
		IncludeFHIEs: 0x0F,
		MSDU:         []byte("hello"),
		PayloadIEs:   []byte{0xAA, 0xBB},
	}
	data := EncodeData(req)
	require.Len(t, data, DataReqSize+7)

	got, st := DecodeData(data)
	require.Equal(t, wire.StatusSuccess, st)
	assert.Equal(t, req, got)
}

func TestDataRequestLengthChecks(t *testing.T) {
	data := EncodeData(mac.DataRequest{DstAddr: wire.ShortAddress(1), MSDU: []byte{1, 2, 3}})

	tests := []struct {
		name string
		body []byte
		want wire.Status
	}{
		{"header only", data[:DataReqSize-1], wire.StatusLengthError},
		{"missing msdu byte", data[:len(data)-1], wire.StatusLengthError},
		{"trailing byte", append(append([]byte{}, data...), 0), wire.StatusLengthError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, st := DecodeData(tt.body)
			assert.Equal(t, tt.want, st)
		})
	}

	bad := append([]byte{}, data...)
	bad[0] = 7
	_, st := DecodeData(bad)
	assert.Equal(t, wire.StatusInvalidParameter, st)
}

func TestStartRequestRoundTrip(t *testing.T) {
	req := mac.StartRequest{
		StartTime:              1,
		PANID:                  0xFACE,
		LogicalChannel:         11,
		BeaconOrder:            15,
		SuperframeOrder:        15,
		PANCoordinator:         true,
		RealignSec:             testSec,
		EnhancedBeaconOrder:    15,
		NonBeaconEnhancedOrder: 16383,
		HeaderIEIDs:            []uint8{0x2A, 0x2B},
	}
	data := EncodeStart(req)
	require.Len(t, data, StartReqSize+2)

	got, st := DecodeStart(data)
	require.Equal(t, wire.StatusSuccess, st)
	assert.Equal(t, req, got)

	_, st = DecodeStart(data[:len(data)-1])
	assert.Equal(t, wire.StatusLengthError, st)
}

func TestFixedRequestSizes(t *testing.T) {
	assert.Len(t, EncodeAssociate(mac.AssociateRequest{}), AssociateReqSize)
	assert.Len(t, EncodeScan(mac.ScanRequest{}), ScanReqSize)

	scan := mac.ScanRequest{ScanType: mac.ScanActive, ScanDuration: 5, Sec: testSec}
	scan.Channels.Set(11)
	scan.Channels.Set(26)
	got, st := DecodeScan(EncodeScan(scan))
	require.Equal(t, wire.StatusSuccess, st)
	assert.Equal(t, scan, got)
	assert.Equal(t, []uint8{11, 26}, got.Channels.Channels())

	decoders := map[string]func([]byte) wire.Status{
		"sync":      func(b []byte) wire.Status { _, st := DecodeSync(b); return st },
		"associate": func(b []byte) wire.Status { _, st := DecodeAssociate(b); return st },
		"assoc rsp": func(b []byte) wire.Status { _, st := DecodeAssociateResponse(b); return st },
		"disassoc":  func(b []byte) wire.Status { _, st := DecodeDisassociate(b); return st },
		"orphan":    func(b []byte) wire.Status { _, st := DecodeOrphanResponse(b); return st },
		"scan":      func(b []byte) wire.Status { _, st := DecodeScan(b); return st },
		"poll":      func(b []byte) wire.Status { _, st := DecodePoll(b); return st },
		"add dev":   func(b []byte) wire.Status { _, st := DecodeAddDevice(b); return st },
		"del dev":   func(b []byte) wire.Status { _, st := DecodeDeleteDevice(b); return st },
	}
	sizes := map[string]int{
		"sync": SyncReqSize, "associate": AssociateReqSize, "assoc rsp": AssociateRspSize,
		"disassoc": DisassociateReqSize, "orphan": OrphanRspSize, "scan": ScanReqSize,
		"poll": PollReqSize, "add dev": AddDeviceReqSize, "del dev": DeleteDeviceReqSize,
	}
	for name, decode := range decoders {
		size := sizes[name]
		assert.Equal(t, wire.StatusSuccess, decode(make([]byte, size)), name)
		assert.Equal(t, wire.StatusLengthError, decode(make([]byte, size-1)), name)
		assert.Equal(t, wire.StatusLengthError, decode(make([]byte, size+1)), name)
	}
}

func TestWriteKeyWidths(t *testing.T) {
	req := mac.WriteKeyRequest{New: true, KeyIndex: 0x0102, FrameCounter: 10, LookupSize: 1}
	for _, width := range []wire.IndexWidth{wire.IndexWidth8, wire.IndexWidth16} {
		c := MustCodec(width)
		r := req
		if width == wire.IndexWidth8 {
			r.KeyIndex = 0x02
		}
		data := c.EncodeWriteKey(r)
		assert.Len(t, data, c.WriteKeySize())

		got, st := c.DecodeWriteKey(data)
		require.Equal(t, wire.StatusSuccess, st)
		assert.Equal(t, r, got)

		idx, st := c.DecodeKeyIndex(data[1 : 1+width.Size()])
		require.Equal(t, wire.StatusSuccess, st)
		assert.Equal(t, r.KeyIndex, idx)
	}
}

func TestEncodeEventSizes(t *testing.T) {
	tests := []struct {
		event mac.Event
		cmd   uint8
		bit   uint32
		size  int
	}{
		{mac.SyncLossInd{Sec: testSec}, mt.MACSyncLossInd, CallbackSyncLoss, SyncLossIndSize},
		{mac.AssociateInd{}, mt.MACAssociateInd, CallbackAssociateInd, AssociateIndSize},
		{mac.AssociateCnf{}, mt.MACAssociateCnf, CallbackAssociateCnf, AssociateCnfSize},
		{mac.DataCnf{}, mt.MACDataCnf, CallbackDataCnf, DataCnfSize},
		{mac.DataInd{MSDU: []byte{1, 2}, PayloadIEs: []byte{3}}, mt.MACDataInd, CallbackDataInd, DataIndSize + 3},
		{mac.DisassociateInd{}, mt.MACDisassociateInd, CallbackDisassociateInd, DisassociateIndSize},
		{mac.DisassociateCnf{}, mt.MACDisassociateCnf, CallbackDisassociateCnf, DisassociateCnfSize},
		{mac.OrphanInd{}, mt.MACOrphanInd, CallbackOrphanInd, OrphanIndSize},
		{mac.PollCnf{}, mt.MACPollCnf, CallbackPollCnf, PollCnfSize},
		{mac.PollInd{}, mt.MACPollInd, CallbackPollInd, PollIndSize},
		{mac.CommStatusInd{}, mt.MACCommStatusInd, CallbackCommStatus, CommStatusIndSize},
		{mac.StartCnf{}, mt.MACStartCnf, CallbackStartCnf, StartCnfSize},
		{mac.PurgeCnf{}, mt.MACPurgeCnf, CallbackPurgeCnf, PurgeCnfSize},
		{mac.ScanCnf{ScanType: mac.ScanEnergyDetect, Energies: []uint8{1, 2, 3}}, mt.MACScanCnf, CallbackScanCnf, ScanCnfSize + 3},
		{mac.ScanCnf{ScanType: mac.ScanActive, PANs: make([]mac.PANDescriptor, 2)}, mt.MACScanCnf, CallbackScanCnf, ScanCnfSize + 2*PANDescriptorSize},
		{mac.BeaconNotifyInd{SDU: []byte{1}, PendingShort: []uint16{1}, PendingExt: []wire.ExtAddr{{}}}, mt.MACBeaconNotifyInd, CallbackBeaconNotify, BeaconNotifySize + 2 + 2 + 8 + 1},
		{mac.BeaconNotifyInd{BeaconType: mac.BeaconEnhanced}, mt.MACBeaconNotifyInd, CallbackBeaconNotify, BeaconNotifySize + 8},
	}

	for _, tt := range tests {
		info, body, err := EncodeEvent(tt.event)
		require.NoError(t, err, tt.event.Kind().String())
		assert.Equal(t, tt.cmd, info.Command, tt.event.Kind().String())
		assert.Equal(t, tt.bit, info.Callback, tt.event.Kind().String())
		assert.Len(t, body, tt.size, tt.event.Kind().String())
	}
}

func TestDataIndRoundTrip(t *testing.T) {
	ind := mac.DataInd{
		SrcAddr:      wire.ExtAddress(wire.ExtAddr{8, 7, 6, 5, 4, 3, 2, 1}),
		DstAddr:      wire.ShortAddress(0),
		Timestamp:    1000,
		SrcPANID:     0xABCD,
		DstPANID:     0xABCD,
		LinkQuality:  200,
		RSSI:         -40,
		DSN:          9,
		Sec:          testSec,
		FrameCounter: 77,
		MSDU:         bytes.Repeat([]byte{0x5A}, 300),
	}
	_, body, err := EncodeEvent(ind)
	require.NoError(t, err)
	assert.Greater(t, len(body), mt.MaxDataSize)

	got, err := DecodeDataInd(body)
	require.NoError(t, err)
	assert.Equal(t, ind, got)
}

func TestScanCnfRoundTrip(t *testing.T) {
	cnf := mac.ScanCnf{
		ScanType: mac.ScanActive,
		PANs: []mac.PANDescriptor{
			{CoordAddr: wire.ShortAddress(0), CoordPANID: 0x1111, LogicalChannel: 11, LinkQuality: 100, Sec: testSec},
			{CoordAddr: wire.ShortAddress(0), CoordPANID: 0x2222, LogicalChannel: 15, GTSPermit: true},
		},
	}
	cnf.Unscanned.Set(20)

	_, body, err := EncodeEvent(cnf)
	require.NoError(t, err)
	got, err := DecodeScanCnf(body)
	require.NoError(t, err)
	assert.Equal(t, cnf, got)

	_, err = DecodeScanCnf(body[:len(body)-1])
	assert.ErrorIs(t, err, wire.ErrShortBuffer)
}

func TestEventName(t *testing.T) {
	assert.Equal(t, "DATA_IND", EventName(mt.MACDataInd))
	assert.Equal(t, "MAC_0x7F", EventName(0x7F))
}
