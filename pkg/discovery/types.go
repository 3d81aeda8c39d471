package discovery

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

// Service constants for mDNS.
const (
	// ServiceType is the service type of a TCP-attached bridge.
	ServiceType = "_mtbridge._tcp"

	// Domain is the mDNS domain.
	Domain = "local"

	// DefaultPort is the default bridge port.
	DefaultPort = 2560

	// InstancePrefix starts every generated instance name.
	InstancePrefix = "MT-"
)

// TXT record keys.
const (
	TXTKeyTransport    = "tv"   // Transport protocol revision
	TXTKeyProduct      = "pv"   // Product id
	TXTKeyRelease      = "fw"   // major.minor.maint
	TXTKeyStackID      = "st"   // Stack id accepted on extended frames
	TXTKeyCapabilities = "caps" // Ping capability bitmap, 4 hex digits
	TXTKeyID           = "id"   // Extended address, 16 hex digits (optional)
	TXTKeyName         = "name" // User label (optional)
)

// Timing constants.
const (
	// BrowseTimeout is the default timeout for mDNS browsing.
	BrowseTimeout = 5 * time.Second

	// DefaultTTL is the default DNS record TTL.
	DefaultTTL = 120 * time.Second
)

// Limits.
const (
	// MaxInstanceNameLen is the DNS label limit.
	MaxInstanceNameLen = 63

	// MaxTXTRecordSize is the maximum total TXT record size.
	MaxTXTRecordSize = 400

	// MaxStackID is the largest stack id an extended header can carry.
	MaxStackID = 7

	// IDLength is the length of the hex-encoded extended address.
	IDLength = 16
)

// Errors.
var (
	ErrMissingRequired     = errors.New("missing required TXT field")
	ErrInvalidTXTRecord    = errors.New("invalid TXT record value")
	ErrInstanceNameTooLong = errors.New("instance name too long")
	ErrTXTRecordTooLarge   = errors.New("TXT record too large")
	ErrNotAdvertising      = errors.New("not advertising")
	ErrNotFound            = errors.New("bridge not found")
)

// BridgeInfo is what a bridge publishes about itself.
type BridgeInfo struct {
	InstanceName string
	Port         uint16

	TransportVersion uint8
	Product          uint8
	Release          string
	StackID          uint8
	Capabilities     uint16

	// Optional.
	ID   string
	Name string
}

// BridgeService is a bridge found on the network.
type BridgeService struct {
	InstanceName string
	Host         string
	Port         uint16
	Addresses    []string

	BridgeInfo
}

// ServiceEntry is a resolved mDNS entry, decoupled from the resolver.
type ServiceEntry struct {
	Instance string
	Service  string
	Domain   string
	Host     string
	Port     uint16
	Text     []string
	Addrs    []string
}

// ToBridgeService decodes the entry's TXT record.
func (e *ServiceEntry) ToBridgeService() (*BridgeService, error) {
	info, err := DecodeBridgeTXT(StringsToTXTRecords(e.Text))
	if err != nil {
		return nil, err
	}
	info.InstanceName = e.Instance
	info.Port = e.Port
	return &BridgeService{
		InstanceName: e.Instance,
		Host:         e.Host,
		Port:         e.Port,
		Addresses:    append([]string(nil), e.Addrs...),
		BridgeInfo:   *info,
	}, nil
}

// Address returns the host:port to dial: the first resolved address.
func (s *BridgeService) Address() (string, error) {
	if len(s.Addresses) == 0 {
		return "", fmt.Errorf("%w: %s has no addresses", ErrNotFound, s.InstanceName)
	}
	return net.JoinHostPort(s.Addresses[0], strconv.Itoa(int(s.Port))), nil
}
