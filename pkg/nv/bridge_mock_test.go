package nv_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lowpan-mt/mt-go/pkg/nv"
	"github.com/lowpan-mt/mt-go/pkg/nv/mocks"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

var mockItem = nv.ItemID{SystemID: 4, ItemID: 0x0102, SubID: 3}

func mockBody(id nv.ItemID, extra ...byte) []byte {
	w := wire.NewWriter(nv.ItemIDSize + len(extra))
	nv.PutItemID(w, id)
	w.PutBytes(extra)
	return w.Bytes()
}

func TestUnsupportedCapabilities(t *testing.T) {
	// The mock storage only reads and writes; no call is expected.
	storage := mocks.NewMockStorage(t)
	b := nv.NewBridge(storage, nil)

	assert.Equal(t, []byte{byte(wire.StatusUnsupported)}, b.HandleCreate(mockBody(mockItem, 1, 0, 0, 0)))
	assert.Equal(t, []byte{byte(wire.StatusUnsupported)}, b.HandleDelete(mockBody(mockItem)))
	assert.Equal(t, []byte{byte(wire.StatusUnsupported), 0, 0, 0, 0}, b.HandleLength(mockBody(mockItem)))
	assert.Equal(t, []byte{byte(wire.StatusUnsupported)}, b.HandleUpdate(mockBody(mockItem, 1, 9)))
	assert.Equal(t, []byte{byte(wire.StatusUnsupported)}, b.HandleCompact([]byte{0, 1}))
}

func TestReadWriteThroughDriver(t *testing.T) {
	storage := mocks.NewMockStorage(t)
	b := nv.NewBridge(storage, nil)

	storage.EXPECT().WriteItem(mockItem, uint16(2), []byte{1, 2}).Return(nil).Once()
	assert.Equal(t, wire.StatusSuccess, b.Write(mockItem, 2, []byte{1, 2}))

	storage.EXPECT().ReadItem(mockItem, uint16(0), make([]byte, nv.MaxReadSize)).
		Return(fmt.Errorf("%w: short item", nv.ErrBadLength)).Once()
	_, st := b.Read(mockItem, 0, 255)
	assert.Equal(t, wire.StatusInvalidParameter, st)
}
