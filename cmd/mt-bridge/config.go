package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lowpan-mt/mt-go/internal/macsim"
	"github.com/lowpan-mt/mt-go/pkg/fragment"
	"github.com/lowpan-mt/mt-go/pkg/service"
	"github.com/lowpan-mt/mt-go/pkg/transport"
	"github.com/lowpan-mt/mt-go/pkg/version"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// FragmentConfig is the fragmentation policy section of the config file.
type FragmentConfig struct {
	MaxMessageSize    int           `yaml:"max_message_size"`
	AckTimeout        time.Duration `yaml:"ack_timeout"`
	MaxResends        int           `yaml:"max_resends"`
	ReassemblyTimeout time.Duration `yaml:"reassembly_timeout"`
}

// Config holds the bridge configuration. Values come from the defaults, then
// the config file, then flags given on the command line.
type Config struct {
	ConfigFile string `yaml:"-"`

	Listen      string `yaml:"listen"`
	StackID     uint   `yaml:"stack_id"`
	IndexWidth  uint   `yaml:"index_width"`
	NVPath      string `yaml:"nv_path"`
	ProtocolLog string `yaml:"protocol_log"`
	MetricsAddr string `yaml:"metrics_addr"`
	LogLevel    string `yaml:"log_level"`

	// Discovery
	Advertise bool   `yaml:"advertise"`
	Interface string `yaml:"interface"`
	Name      string `yaml:"name"`

	// Version record
	Product uint   `yaml:"product"`
	Release string `yaml:"release"`

	// Simulated radio
	ExtAddr      string        `yaml:"ext_addr"`
	ConfirmDelay time.Duration `yaml:"confirm_delay"`

	Fragment FragmentConfig `yaml:"fragment"`
}

func defaultConfig() Config {
	frag := fragment.DefaultConfig()
	return Config{
		Listen:     fmt.Sprintf(":%d", transport.DefaultPort),
		StackID:    service.DefaultStackID,
		IndexWidth: uint(wire.IndexWidth8),
		LogLevel:   "info",
		Product:    uint(version.Default.Product),
		Release:    version.Default.Release(),
		ExtAddr:    macsim.DefaultConfig().ExtAddr.String(),
		Fragment: FragmentConfig{
			MaxMessageSize:    frag.MaxMessageSize,
			AckTimeout:        frag.AckTimeout,
			MaxResends:        frag.MaxResends,
			ReassemblyTimeout: frag.ReassemblyTimeout,
		},
	}
}

func newFlagSet(config *Config) *flag.FlagSet {
	fs := flag.NewFlagSet("mt-bridge", flag.ContinueOnError)
	fs.StringVar(&config.ConfigFile, "config", "", "Configuration file path (YAML)")
	fs.StringVar(&config.Listen, "listen", config.Listen, "TCP listen address")
	fs.UintVar(&config.StackID, "stack-id", config.StackID, "Stack id accepted in extended frames (0-7)")
	fs.UintVar(&config.IndexWidth, "index-width", config.IndexWidth, "Security table index width in bytes (1 or 2)")
	fs.StringVar(&config.NVPath, "nv", config.NVPath, "NV image file (memory if empty)")
	fs.StringVar(&config.ProtocolLog, "protocol-log", config.ProtocolLog, "File path for protocol event logging (CBOR format)")
	fs.StringVar(&config.MetricsAddr, "metrics", config.MetricsAddr, "Prometheus metrics listen address (disabled if empty)")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "Log level: debug, info, warn, error")

	fs.BoolVar(&config.Advertise, "advertise", config.Advertise, "Advertise the bridge via mDNS")
	fs.StringVar(&config.Interface, "interface", config.Interface, "Network interface for mDNS (all if empty)")
	fs.StringVar(&config.Name, "name", config.Name, "mDNS instance name (derived from the extended address if empty)")

	fs.UintVar(&config.Product, "product", config.Product, "Product id reported in the version record")
	fs.StringVar(&config.Release, "release", config.Release, "Release reported in the version record (major.minor.maint)")

	fs.StringVar(&config.ExtAddr, "ext-addr", config.ExtAddr, "Extended address of the simulated radio")
	fs.DurationVar(&config.ConfirmDelay, "confirm-delay", config.ConfirmDelay, "Delay of simulated MAC confirms")

	fs.IntVar(&config.Fragment.MaxMessageSize, "max-message", config.Fragment.MaxMessageSize, "Largest reassembled message in bytes")
	fs.DurationVar(&config.Fragment.AckTimeout, "ack-timeout", config.Fragment.AckTimeout, "Fragment acknowledgement timeout")
	fs.IntVar(&config.Fragment.MaxResends, "max-resends", config.Fragment.MaxResends, "Resends before a fragmented send is aborted")
	fs.DurationVar(&config.Fragment.ReassemblyTimeout, "reassembly-timeout", config.Fragment.ReassemblyTimeout, "Largest gap between inbound fragments")
	return fs
}

// parseConfig parses args on top of the defaults. When -config names a file,
// its values replace the defaults and explicitly given flags win over both.
func parseConfig(args []string) (Config, error) {
	config := defaultConfig()
	fs := newFlagSet(&config)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if config.ConfigFile == "" {
		return config, nil
	}

	explicit := make(map[string]string)
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = f.Value.String()
	})

	if err := loadConfigFile(config.ConfigFile, &config); err != nil {
		return Config{}, err
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return Config{}, fmt.Errorf("flag -%s: %w", name, err)
		}
	}
	return config, nil
}

func loadConfigFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func validateConfig(config Config) error {
	if config.StackID > service.MaxStackID {
		return fmt.Errorf("stack id must be 0-%d, got %d", service.MaxStackID, config.StackID)
	}
	if !wire.IndexWidth(config.IndexWidth).Valid() {
		return fmt.Errorf("index width must be 1 or 2, got %d", config.IndexWidth)
	}
	if config.Product > 0xFF {
		return fmt.Errorf("product id must be 0-255, got %d", config.Product)
	}
	if _, err := version.Parse(config.Release); err != nil {
		return err
	}
	if _, err := wire.ParseExtAddr(config.ExtAddr); err != nil {
		return err
	}
	switch strings.ToLower(config.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %s", config.LogLevel)
	}
	return nil
}

// bridgeConfig translates a validated Config into the service configuration.
func (c Config) bridgeConfig() service.BridgeConfig {
	rec, _ := version.Parse(c.Release)
	rec.Transport = version.Default.Transport
	rec.Product = uint8(c.Product)

	bc := service.DefaultBridgeConfig()
	bc.StackID = uint8(c.StackID)
	bc.IndexWidth = wire.IndexWidth(c.IndexWidth)
	bc.Version = rec
	bc.Fragment = fragment.Config{
		MaxMessageSize:    c.Fragment.MaxMessageSize,
		AckTimeout:        c.Fragment.AckTimeout,
		MaxResends:        c.Fragment.MaxResends,
		ReassemblyTimeout: c.Fragment.ReassemblyTimeout,
	}
	return bc
}

// engineConfig translates a validated Config into the simulated radio
// configuration.
func (c Config) engineConfig() macsim.Config {
	mc := macsim.DefaultConfig()
	mc.ExtAddr, _ = wire.ParseExtAddr(c.ExtAddr)
	mc.ConfirmDelay = c.ConfirmDelay
	mc.Seed = uint64(time.Now().UnixNano())
	return mc
}
