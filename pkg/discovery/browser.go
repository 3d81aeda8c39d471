package discovery

import (
	"context"
	"time"
)

// Browser finds bridges on the network.
type Browser interface {
	// Browse emits each bridge once, when first resolved. The channel is
	// closed when ctx is done.
	Browse(ctx context.Context) (<-chan *BridgeService, error)

	// FindBridge returns the first bridge accepted by filter, or ErrNotFound
	// when the browse timeout passes first.
	FindBridge(ctx context.Context, filter FilterFunc) (*BridgeService, error)

	// Stop stops all active browsing operations.
	Stop()
}

// BrowserConfig configures browser behavior.
type BrowserConfig struct {
	// BrowseTimeout bounds FindBridge.
	// Default: 5 seconds.
	BrowseTimeout time.Duration

	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string
}

// DefaultBrowserConfig returns the default browser configuration.
func DefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{
		BrowseTimeout: BrowseTimeout,
	}
}

// FilterFunc selects bridges. A nil FilterFunc accepts everything.
type FilterFunc func(*BridgeService) bool

// FilterByCapabilities accepts bridges that support every subsystem in mask.
func FilterByCapabilities(mask uint16) FilterFunc {
	return func(s *BridgeService) bool {
		return s.Capabilities&mask == mask
	}
}

// FilterByStackID accepts bridges configured for stack id.
func FilterByStackID(id uint8) FilterFunc {
	return func(s *BridgeService) bool {
		return s.StackID == id
	}
}

// FilterByTransport accepts bridges speaking transport revision tv.
func FilterByTransport(tv uint8) FilterFunc {
	return func(s *BridgeService) bool {
		return s.TransportVersion == tv
	}
}

// All combines filters; a bridge must pass each of them.
func All(filters ...FilterFunc) FilterFunc {
	return func(s *BridgeService) bool {
		for _, f := range filters {
			if f != nil && !f(s) {
				return false
			}
		}
		return true
	}
}

// FilterBrowseResults forwards the services accepted by filter.
func FilterBrowseResults(in <-chan *BridgeService, filter FilterFunc) <-chan *BridgeService {
	out := make(chan *BridgeService)
	go func() {
		defer close(out)
		for svc := range in {
			if filter == nil || filter(svc) {
				out <- svc
			}
		}
	}()
	return out
}
