package interactive

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowpan-mt/mt-go/internal/macsim"
	"github.com/lowpan-mt/mt-go/pkg/client"
	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/nv"
	"github.com/lowpan-mt/mt-go/pkg/service"
	"github.com/lowpan-mt/mt-go/pkg/transport"
)

// syncBuffer is written by the command loop and the client reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// take returns and clears the buffered output.
func (b *syncBuffer) take() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.buf.String()
	b.buf.Reset()
	return s
}

func (b *syncBuffer) contains(s string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Contains(b.buf.String(), s)
}

func newTestConsole(t *testing.T) (*Console, *syncBuffer) {
	t.Helper()

	config := service.DefaultBridgeConfig()
	config.Storage = nv.NewMemoryStorage()
	bridge, err := service.NewBridge(macsim.New(macsim.DefaultConfig()), config)
	require.NoError(t, err)

	hostConn, bridgeConn := transport.Pipe(nil)
	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- bridge.Serve(ctx, bridgeConn) }()

	out := &syncBuffer{}
	c := client.New(hostConn, client.DefaultConfig())
	con := newConsole(c, out)
	c.OnIndication(con.Indication)
	c.Start(ctx)

	t.Cleanup(func() {
		c.Close()
		cancel()
		<-served
	})

	require.Eventually(t, func() bool { return out.contains("[IND] SYS.RESET_IND") },
		2*time.Second, 5*time.Millisecond)
	out.take()
	return con, out
}

func TestConsoleSystemCommands(t *testing.T) {
	con, out := newTestConsole(t)
	ctx := context.Background()

	con.Execute(ctx, "ping")
	assert.Contains(t, out.take(), "[SYS MAC UTIL]")

	con.Execute(ctx, "version")
	assert.Contains(t, out.take(), "Release:   1.0.0")

	con.Execute(ctx, "subscribe mac 0x80000010")
	assert.Contains(t, out.take(), "MAC callbacks: 0xFFFFFFEF")

	con.Execute(ctx, "subscribe util 1")
	assert.Contains(t, out.take(), "Error:")
}

func TestConsolePIB(t *testing.T) {
	con, out := newTestConsole(t)
	ctx := context.Background()

	con.Execute(ctx, "set 0x50 0x1234")
	assert.Contains(t, out.take(), "set")

	con.Execute(ctx, "get 0x50")
	assert.Contains(t, out.take(), "PIB(0x50) = 4660 (0x1234)")

	con.Execute(ctx, "macreset")
	con.Execute(ctx, "get 0x50")
	assert.Contains(t, out.take(), "65535 (0xFFFF)")

	con.Execute(ctx, "set 0x50 0x123456")
	assert.Contains(t, out.take(), "Error: invalid number")
}

func TestConsoleUtil(t *testing.T) {
	con, out := newTestConsole(t)
	ctx := context.Background()

	con.Execute(ctx, "extaddr")
	assert.Contains(t, out.take(), macsim.DefaultConfig().ExtAddr.String())

	con.Execute(ctx, "random")
	assert.Contains(t, out.take(), "Random: 0x")

	con.Execute(ctx, "loopback hello 1 50")
	assert.Contains(t, out.take(), `Echo: "hello"`)
	assert.Eventually(t, func() bool { return out.contains("[IND] UTIL.LOOPBACK") },
		2*time.Second, 5*time.Millisecond)
}

func TestConsoleNV(t *testing.T) {
	con, out := newTestConsole(t)
	ctx := context.Background()

	con.Execute(ctx, "nv create 2/0x10/1 4")
	assert.Contains(t, out.take(), "Created 2/0x0010/0x0001 (4 bytes)")

	con.Execute(ctx, "nv write 2/0x10/1 1 aabb")
	assert.Contains(t, out.take(), "Wrote 2 bytes")

	con.Execute(ctx, "nv read 2/0x10/1")
	assert.Contains(t, out.take(), "00aabb00")

	con.Execute(ctx, "nv length 2/0x10/1")
	assert.Contains(t, out.take(), "4 bytes")

	con.Execute(ctx, "nv update 2/0x10/1 01:02")
	con.Execute(ctx, "nv read 2/0x10/1 0 2")
	assert.Contains(t, out.take(), "0102")

	con.Execute(ctx, "nv delete 2/0x10/1")
	con.Execute(ctx, "nv length 2/0x10/1")
	assert.Contains(t, out.take(), "Error:")

	con.Execute(ctx, "nv compact")
	assert.Contains(t, out.take(), "NV compacted")

	con.Execute(ctx, "nv bogus 1/1/1")
	assert.Contains(t, out.take(), "unknown nv operation")
}

func TestConsoleGeneral(t *testing.T) {
	con, out := newTestConsole(t)
	ctx := context.Background()

	assert.False(t, con.Execute(ctx, ""))
	assert.False(t, con.Execute(ctx, "frobnicate"))
	assert.Contains(t, out.take(), "Unknown command: frobnicate")

	con.Execute(ctx, "get")
	assert.Contains(t, out.take(), "usage: get <attr>")

	con.Execute(ctx, "watch")
	assert.Contains(t, out.take(), "Indications off")
	con.Indication(mt.NewFrame(mt.TypeAREQ, mt.SubsystemMAC, 0x84, []byte{1}))
	assert.Empty(t, out.take())

	con.Execute(ctx, "watch")
	out.take()
	con.Indication(mt.NewFrame(mt.TypeAREQ, mt.SubsystemMAC, 0x84, []byte{1}))
	assert.Equal(t, "[IND] MAC.DATA_CNF 01\n", out.take())

	assert.True(t, con.Execute(ctx, "quit"))
}

func TestParseItemID(t *testing.T) {
	id, err := parseItemID("1/0x0F00/0")
	require.NoError(t, err)
	assert.Equal(t, nv.ResetReasonItem, id)

	for _, bad := range []string{"", "1/2", "256/1/1", "1/x/1", "1/1/70000"} {
		_, err := parseItemID(bad)
		assert.Error(t, err, bad)
	}
}

func TestEncodePIBValue(t *testing.T) {
	tests := []struct {
		attr  mac.PIBAttribute
		value string
		want  []byte
	}{
		{mac.AttrAutoRequest, "1", []byte{1}},
		{mac.AttrPANID, "0xABCD", []byte{0xCD, 0xAB}},
		{mac.AttrBeaconTxTime, "16909060", []byte{0x04, 0x03, 0x02, 0x01}},
		{mac.AttrBeaconPayload, "01:02:03", []byte{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.attr.String(), func(t *testing.T) {
			got, err := encodePIBValue(tt.attr, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := encodePIBValue(mac.PIBAttribute(0x01), "1")
	assert.Error(t, err)
}
