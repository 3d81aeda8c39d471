package mac

import "github.com/lowpan-mt/mt-go/pkg/wire"

// Requester issues MLME requests. Asynchronous requests return the status of
// acceptance; their result arrives later as an Event.
type Requester interface {
	Reset(setDefaultPIB bool) wire.Status
	Init() wire.Status
	Start(req StartRequest) wire.Status
	Sync(req SyncRequest) wire.Status
	Data(req DataRequest) wire.Status
	Associate(req AssociateRequest) wire.Status
	AssociateResponse(rsp AssociateResponse) wire.Status
	Disassociate(req DisassociateRequest) wire.Status
	OrphanResponse(rsp OrphanResponse) wire.Status
	Scan(req ScanRequest) wire.Status
	Poll(req PollRequest) wire.Status
	Purge(msduHandle uint8) wire.Status
	SetRxGain(highGain bool) wire.Status
	UpdatePANID(panID uint16) wire.Status
}

// PIB gives access to the PAN information base. Scalars of every width
// travel as uint32; arrays are copied into or out of caller buffers.
type PIB interface {
	GetPIB(attr PIBAttribute) (uint32, wire.Status)
	GetPIBArray(attr PIBAttribute, dst []byte) wire.Status
	SetPIB(attr PIBAttribute, value uint32) wire.Status
	SetPIBArray(attr PIBAttribute, value []byte) wire.Status
}

// Security gives access to the security PIB and its tables.
type Security interface {
	GetSecurity(attr SecurityAttribute) (uint32, wire.Status)
	GetSecurityArray(attr SecurityAttribute, dst []byte) wire.Status
	SetSecurity(attr SecurityAttribute, value uint32) wire.Status
	SetSecurityArray(attr SecurityAttribute, value []byte) wire.Status
	GetSecurityEntry(attr SecurityAttribute, index1, index2 uint16) (SecurityEntry, wire.Status)
	SetSecurityEntry(entry SecurityEntry) wire.Status

	AddDevice(req AddDeviceRequest) wire.Status
	DeleteDevice(ext wire.ExtAddr) wire.Status
	DeleteAllDevices() wire.Status
	ReadKeyFrameCounter(keyIndex uint16) (uint32, wire.Status)
	WriteKey(req WriteKeyRequest) wire.Status
	DeleteKey(keyIndex uint16) wire.Status
}

// FrequencyHopping controls the frequency-hopping engine and its PIB.
type FrequencyHopping interface {
	EnableFH() wire.Status
	StartFH() wire.Status
	GetFH(attr FHAttribute) (uint32, wire.Status)
	GetFHArray(attr FHAttribute, dst []byte) wire.Status
	SetFH(attr FHAttribute, value uint32) wire.Status
	SetFHArray(attr FHAttribute, value []byte) wire.Status
}

// Engine is the complete MAC engine consumed by the bridge.
type Engine interface {
	Requester
	PIB
	Security
	FrequencyHopping

	// ExtAddress reports one of the device's extended addresses.
	ExtAddress(kind ExtAddrType) (wire.ExtAddr, wire.Status)

	// Random returns a random value from the radio.
	Random() uint16

	// SetEventHandler registers the receiver of confirms and indications.
	// Passing nil unregisters it.
	SetEventHandler(h EventHandler)
}
