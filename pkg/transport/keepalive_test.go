package transport

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestKeepAliveDefaults(t *testing.T) {
	ka := NewKeepAlive(KeepAliveConfig{}, func() error { return nil }, nil)
	if ka.config != DefaultKeepAliveConfig() {
		t.Errorf("config = %+v", ka.config)
	}
	if d := DefaultKeepAliveConfig().DetectionDelay(); d != 32*time.Second {
		t.Errorf("DetectionDelay = %v, want 32s", d)
	}
}

func TestKeepAliveTimeout(t *testing.T) {
	var pings atomic.Int32
	timedOut := make(chan struct{})

	ka := NewKeepAlive(KeepAliveConfig{
		PingInterval: 10 * time.Millisecond,
		ReplyTimeout: 5 * time.Millisecond,
		MaxMissed:    2,
	}, func() error {
		pings.Add(1)
		return nil
	}, func() { close(timedOut) })

	ka.Start(context.Background())

	select {
	case <-timedOut:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout callback not called")
	}
	if pings.Load() < 2 {
		t.Errorf("pings = %d, want >= 2", pings.Load())
	}
	if ka.IsRunning() {
		t.Error("monitor should stop after timeout")
	}
}

func TestKeepAliveRepliesKeepLinkUp(t *testing.T) {
	var ka *KeepAlive
	timedOut := make(chan struct{}, 1)

	ka = NewKeepAlive(KeepAliveConfig{
		PingInterval: 10 * time.Millisecond,
		ReplyTimeout: 5 * time.Millisecond,
		MaxMissed:    1,
	}, func() error {
		go ka.Replied()
		return nil
	}, func() { timedOut <- struct{}{} })

	ka.Start(context.Background())
	defer ka.Stop()

	select {
	case <-timedOut:
		t.Fatal("link declared dead despite replies")
	case <-time.After(100 * time.Millisecond):
	}

	stats := ka.Stats()
	if stats.LastReplyTime.IsZero() || stats.Missed != 0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestKeepAliveStopIdempotent(t *testing.T) {
	ka := NewKeepAlive(DefaultKeepAliveConfig(), func() error { return nil }, nil)
	ka.Start(context.Background())
	ka.Start(context.Background())
	ka.Stop()
	ka.Stop()
	if ka.IsRunning() {
		t.Error("still running after Stop")
	}
}
