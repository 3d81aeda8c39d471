package discovery

import (
	"context"
	"time"
)

// Advertiser publishes a bridge on the network.
type Advertiser interface {
	// Advertise registers the bridge service, replacing any previous one.
	Advertise(ctx context.Context, info *BridgeInfo) error

	// Update replaces the TXT record of the running advertisement.
	Update(info *BridgeInfo) error

	// Stop withdraws the advertisement.
	Stop() error
}

// AdvertiserConfig configures advertiser behavior.
type AdvertiserConfig struct {
	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string

	// TTL is the DNS record TTL.
	// Default: 120 seconds.
	TTL time.Duration
}

// DefaultAdvertiserConfig returns the default advertiser configuration.
func DefaultAdvertiserConfig() AdvertiserConfig {
	return AdvertiserConfig{
		Interface: "",
		TTL:       DefaultTTL,
	}
}
