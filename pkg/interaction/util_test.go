package interaction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/payload"
	"github.com/lowpan-mt/mt-go/pkg/subscription"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

func callbackSub(sub mt.Subsystem, mask uint32) []byte {
	w := wire.NewWriter(CallbackSubReqSize)
	w.PutUint8(uint8(sub))
	w.PutUint32(mask)
	return w.Bytes()
}

func TestCallbackSub(t *testing.T) {
	f := newFixture(t)
	mask := subscription.ClearFlag | payload.CallbackDataInd | payload.CallbackScanCnf

	body := f.request(t, mt.SubsystemUtil, mt.UtilCallbackSub, callbackSub(mt.SubsystemMAC, mask))
	want := wire.NewWriter(5)
	want.PutStatus(wire.StatusSuccess)
	want.PutUint32(subscription.AllCallbacks &^ (payload.CallbackDataInd | payload.CallbackScanCnf))
	assert.Equal(t, want.Bytes(), body)
	assert.False(t, f.table.Enabled(mt.SubsystemMAC, payload.CallbackDataInd))

	body = f.request(t, mt.SubsystemUtil, mt.UtilCallbackSub, callbackSub(mt.SubsystemMAC, payload.CallbackDataInd))
	assert.Equal(t, uint8(0), body[0])
	assert.True(t, f.table.Enabled(mt.SubsystemMAC, payload.CallbackDataInd))
	assert.False(t, f.table.Enabled(mt.SubsystemMAC, payload.CallbackScanCnf))
}

func TestCallbackSubErrors(t *testing.T) {
	f := newFixture(t)

	body := f.request(t, mt.SubsystemUtil, mt.UtilCallbackSub, callbackSub(mt.SubsystemUtil, 1))
	assert.Equal(t, []byte{uint8(wire.StatusSubSysError), 0, 0, 0, 0}, body)

	body = f.request(t, mt.SubsystemUtil, mt.UtilCallbackSub, []byte{2, 1, 0, 0})
	assert.Equal(t, []byte{uint8(wire.StatusLengthError)}, body)
	assert.Equal(t, subscription.AllCallbacks, f.table.Mask(mt.SubsystemMAC))
}

func TestLoopback(t *testing.T) {
	f := newFixture(t)

	req := []byte{3, 0xF4, 0x01, 0, 0, 'p', 'i', 'n', 'g'}
	body := f.request(t, mt.SubsystemUtil, mt.UtilLoopback, req)
	assert.Equal(t, req, body)

	require.Len(t, f.scheduler.repeats, 1)
	r := f.scheduler.repeats[0]
	assert.Equal(t, 3, r.count)
	assert.Equal(t, 500*time.Millisecond, r.interval)
	assert.Equal(t, mt.TypeAREQ, r.frame.Type)
	assert.Equal(t, mt.SubsystemUtil, r.frame.Subsystem)
	assert.Equal(t, mt.UtilLoopback, r.frame.Command)
	assert.Equal(t, req, r.frame.Data)
}

func TestLoopbackWithoutRepeats(t *testing.T) {
	f := newFixture(t)

	body := f.request(t, mt.SubsystemUtil, mt.UtilLoopback, []byte{0, 0, 0, 0, 0})
	assert.Equal(t, []byte{0, 0, 0, 0, 0}, body)
	assert.Empty(t, f.scheduler.repeats)

	body = f.request(t, mt.SubsystemUtil, mt.UtilLoopback, []byte{1, 0, 0})
	assert.Equal(t, []byte{uint8(wire.StatusLengthError)}, body)
}

func TestRandom(t *testing.T) {
	f := newFixture(t)
	f.engine.EXPECT().Random().Return(0xBEEF).Once()

	assert.Equal(t, []byte{0xEF, 0xBE}, f.request(t, mt.SubsystemUtil, mt.UtilRandom, nil))
	assert.Equal(t, []byte{uint8(wire.StatusLengthError)}, f.request(t, mt.SubsystemUtil, mt.UtilRandom, []byte{1}))
}

func TestExtAddr(t *testing.T) {
	f := newFixture(t)
	addr := wire.ExtAddr{1, 2, 3, 4, 5, 6, 7, 8}

	f.engine.EXPECT().ExtAddress(mac.ExtAddrPrimary).Return(addr, wire.StatusSuccess).Once()
	f.engine.EXPECT().ExtAddress(mac.ExtAddrUserConfig).Return(wire.ExtAddr{}, wire.StatusNoShortAddress).Once()

	body := f.request(t, mt.SubsystemUtil, mt.UtilExtAddr, []byte{1})
	assert.Equal(t, append([]byte{1}, addr[:]...), body)

	body = f.request(t, mt.SubsystemUtil, mt.UtilExtAddr, []byte{2})
	assert.Equal(t, []byte{uint8(wire.StatusNoShortAddress)}, body)

	body = f.request(t, mt.SubsystemUtil, mt.UtilExtAddr, []byte{9})
	assert.Equal(t, []byte{uint8(wire.StatusInvalidParameter)}, body)
}
