package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

func TestRecorders(t *testing.T) {
	m := New()

	ping := mt.NewFrame(mt.TypeSREQ, mt.SubsystemSys, mt.SysPing, nil)
	m.RecordFrame("in", ping)
	m.RecordFrame("in", ping)
	m.RecordFrame("out", ping.Response([]byte{0x43, 0x00}))
	m.RecordStatus(wire.StatusInvalidParameter)
	m.RecordFragment(FragmentSent)
	m.RecordFragment(FragmentResent)
	m.RecordFragment(FragmentSent)
	m.RecordCallback(true)
	m.RecordCallback(false)
	m.RecordDrop()
	m.ObserveDispatch(mt.SubsystemMAC, 300*time.Microsecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.frames.WithLabelValues("in", "SREQ", "SYS")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.frames.WithLabelValues("out", "SRSP", "SYS")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statuses.WithLabelValues(wire.StatusInvalidParameter.String())))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.fragments.WithLabelValues(FragmentSent)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.callbacks.WithLabelValues("suppressed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.drops))
	assert.Equal(t, 1, testutil.CollectAndCount(m.dispatch))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.RecordFrame("in", mt.Frame{})
	m.RecordStatus(wire.StatusFailure)
	m.RecordFragment(FragmentAborted)
	m.RecordCallback(true)
	m.RecordDrop()
	m.ObserveDispatch(mt.SubsystemSys, time.Millisecond)
	assert.Nil(t, m.Registry())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 404, rec.Code)
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.RecordDrop()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "mtbridge_callbacks_handoff_drops_total 1"))
}
