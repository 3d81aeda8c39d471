package macsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

func TestSecurityScalars(t *testing.T) {
	e := New(DefaultConfig())

	v, st := e.GetSecurity(mac.SecAttrDeviceTableEntries)
	require.Equal(t, wire.StatusSuccess, st)
	assert.Equal(t, uint32(DefaultDeviceTableSize), v)

	require.Equal(t, wire.StatusSuccess, e.SetSecurity(mac.SecAttrFrameCounter, 1000))
	v, _ = e.GetSecurity(mac.SecAttrFrameCounter)
	assert.Equal(t, uint32(1000), v)

	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	require.Equal(t, wire.StatusSuccess, e.SetSecurityArray(mac.SecAttrDefaultKeySource, src))
	got := make([]byte, 8)
	require.Equal(t, wire.StatusSuccess, e.GetSecurityArray(mac.SecAttrDefaultKeySource, got))
	assert.Equal(t, src, got)
}

func TestSecurityEntries(t *testing.T) {
	e := New(DefaultConfig())

	t.Run("unwritten slot", func(t *testing.T) {
		entry, st := e.GetSecurityEntry(mac.SecAttrKeyUsageEntry, 1, 2)
		require.Equal(t, wire.StatusSuccess, st)
		assert.Equal(t, mac.KeyUsageEntry{KeyIndex: 1, KeyUsageIndex: 2}, entry)
	})

	t.Run("round trip", func(t *testing.T) {
		level := mac.SecurityLevelEntry{LevelIndex: 2, FrameType: 1, SecurityMinimum: 5}
		require.Equal(t, wire.StatusSuccess, e.SetSecurityEntry(level))
		entry, st := e.GetSecurityEntry(mac.SecAttrSecurityLevelEntry, 2, 0)
		require.Equal(t, wire.StatusSuccess, st)
		assert.Equal(t, level, entry)
	})

	t.Run("index bounds", func(t *testing.T) {
		_, st := e.GetSecurityEntry(mac.SecAttrKeyEntry, DefaultKeyTableSize, 0)
		assert.Equal(t, wire.StatusInvalidIndex, st)
		assert.Equal(t, wire.StatusInvalidIndex, e.SetSecurityEntry(mac.DeviceEntry{DeviceIndex: DefaultDeviceTableSize}))
	})

	t.Run("not an entry", func(t *testing.T) {
		_, st := e.GetSecurityEntry(mac.SecAttrFrameCounter, 0, 0)
		assert.Equal(t, wire.StatusUnsupportedAttribute, st)
	})
}

func TestDeviceTable(t *testing.T) {
	config := DefaultConfig()
	config.DeviceTableSize = 2
	e := New(config)

	a := wire.ExtAddr{1}
	b := wire.ExtAddr{2}
	c := wire.ExtAddr{3}

	require.Equal(t, wire.StatusSuccess, e.AddDevice(mac.AddDeviceRequest{ExtAddr: a, ShortAddr: 0x10}))
	require.Equal(t, wire.StatusSuccess, e.AddDevice(mac.AddDeviceRequest{ExtAddr: b}))
	assert.Equal(t, wire.StatusNoResources, e.AddDevice(mac.AddDeviceRequest{ExtAddr: c}))

	// Adding a known device updates it in place.
	require.Equal(t, wire.StatusSuccess, e.AddDevice(mac.AddDeviceRequest{ExtAddr: a, ShortAddr: 0x11}))
	assert.Equal(t, 2, e.DeviceCount())
	entry, st := e.GetSecurityEntry(mac.SecAttrDeviceEntry, 0, 0)
	require.Equal(t, wire.StatusSuccess, st)
	assert.Equal(t, uint16(0x11), entry.(mac.DeviceEntry).ShortAddr)

	require.Equal(t, wire.StatusSuccess, e.DeleteDevice(a))
	assert.Equal(t, wire.StatusInvalidParameter, e.DeleteDevice(a))
	require.Equal(t, wire.StatusSuccess, e.AddDevice(mac.AddDeviceRequest{ExtAddr: c}))

	require.Equal(t, wire.StatusSuccess, e.DeleteAllDevices())
	assert.Equal(t, 0, e.DeviceCount())
}

func TestKeyTable(t *testing.T) {
	e := New(DefaultConfig())

	req := mac.WriteKeyRequest{New: true, KeyIndex: 1, FrameCounter: 77, LookupSize: 1}
	req.Key[0] = 0xAB
	req.LookupData[0] = 0x01

	// Updating a missing key fails.
	update := req
	update.New = false
	assert.Equal(t, wire.StatusUnavailableKey, e.WriteKey(update))

	require.Equal(t, wire.StatusSuccess, e.WriteKey(req))
	fc, st := e.ReadKeyFrameCounter(1)
	require.Equal(t, wire.StatusSuccess, st)
	assert.Equal(t, uint32(77), fc)

	lookup, st := e.GetSecurityEntry(mac.SecAttrKeyIDLookupEntry, 1, 0)
	require.Equal(t, wire.StatusSuccess, st)
	assert.Equal(t, uint8(0x01), lookup.(mac.KeyIDLookupEntry).LookupData[0])

	_, st = e.ReadKeyFrameCounter(DefaultKeyTableSize)
	assert.Equal(t, wire.StatusInvalidIndex, st)

	require.Equal(t, wire.StatusSuccess, e.DeleteKey(1))
	assert.Equal(t, wire.StatusUnavailableKey, e.DeleteKey(1))
	lookup, _ = e.GetSecurityEntry(mac.SecAttrKeyIDLookupEntry, 1, 0)
	assert.Equal(t, mac.KeyIDLookupEntry{KeyIndex: 1}, lookup)
}
