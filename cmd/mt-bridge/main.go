// Command mt-bridge serves a simulated MAC coprocessor over TCP.
//
// The bridge speaks the MT protocol to one host at a time: SYS, MAC and UTIL
// commands, callback subscriptions, fragmented messages and NV storage. The
// radio is the in-memory engine from internal/macsim, which makes the command
// useful for host development and protocol testing without hardware.
//
// Usage:
//
//	mt-bridge [flags]
//
// Flags:
//
//	-config string        Configuration file path (YAML)
//	-listen string        TCP listen address (default ":2560")
//	-stack-id uint        Stack id accepted in extended frames (default 1)
//	-index-width uint     Security table index width in bytes (default 1)
//	-nv string            NV image file (memory if empty)
//	-protocol-log string  File path for protocol event logging (CBOR format)
//	-metrics string       Prometheus metrics listen address
//	-advertise            Advertise the bridge via mDNS
//	-log-level string     Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Serve on the default port with a persistent NV image
//	mt-bridge -nv /var/lib/mt-bridge/nv.img
//
//	# Advertise on the LAN and expose metrics
//	mt-bridge -advertise -metrics :9100
//
//	# Start from a config file, overriding the stack id
//	mt-bridge -config /etc/mt/bridge.yaml -stack-id 2
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lowpan-mt/mt-go/internal/macsim"
	"github.com/lowpan-mt/mt-go/pkg/discovery"
	mtlog "github.com/lowpan-mt/mt-go/pkg/log"
	"github.com/lowpan-mt/mt-go/pkg/metrics"
	"github.com/lowpan-mt/mt-go/pkg/nv"
	"github.com/lowpan-mt/mt-go/pkg/persistence"
	"github.com/lowpan-mt/mt-go/pkg/service"
	"github.com/lowpan-mt/mt-go/pkg/transport"
	"github.com/lowpan-mt/mt-go/pkg/version"
)

func main() {
	config, err := parseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger := setupLogging(config.LogLevel)

	log.Println("MT Bridge")
	log.Println("=========")
	log.Printf("Listen: %s", config.Listen)
	log.Printf("Stack id: %d", config.StackID)

	if err := validateConfig(config); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	bridgeConfig := config.bridgeConfig()
	bridgeConfig.Logger = logger

	// NV storage
	if config.NVPath != "" {
		storage, err := persistence.OpenFileStorage(config.NVPath)
		if err != nil {
			log.Fatalf("Failed to open NV image: %v", err)
		}
		defer storage.Close()
		bridgeConfig.Storage = storage
		log.Printf("NV image: %s", config.NVPath)
	} else {
		bridgeConfig.Storage = nv.NewMemoryStorage()
	}

	// Protocol logging
	var loggers []mtlog.Logger
	var fileLogger *mtlog.FileLogger
	if config.ProtocolLog != "" {
		fileLogger, err = mtlog.NewFileLogger(config.ProtocolLog)
		if err != nil {
			log.Fatalf("Failed to create protocol logger: %v", err)
		}
		defer fileLogger.Close()
		loggers = append(loggers, fileLogger)
		log.Printf("Protocol logging to: %s", config.ProtocolLog)
	}
	if logger != nil {
		loggers = append(loggers, mtlog.NewSlogAdapter(logger))
	}
	var protocolLogger mtlog.Logger
	if len(loggers) > 0 {
		protocolLogger = mtlog.NewMultiLogger(loggers...)
		bridgeConfig.ProtocolLogger = protocolLogger
	}

	// Metrics
	if config.MetricsAddr != "" {
		bridgeConfig.Metrics = metrics.New()
	}

	engine := macsim.New(config.engineConfig())
	bridge, err := service.NewBridge(engine, bridgeConfig)
	if err != nil {
		log.Fatalf("Failed to create bridge: %v", err)
	}
	bridge.OnEvent(handleEvent)
	checkManifest(bridge)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, err := transport.NewServer(transport.ServerConfig{
		Address:        config.Listen,
		MaxConnections: 1,
		Logger:         protocolLogger,
		Handler: func(ctx context.Context, conn *transport.Conn) {
			if err := bridge.Serve(ctx, conn); err != nil {
				log.Printf("Link %s ended: %v", conn.ConnID(), err)
			}
		},
		OnError: func(conn *transport.Conn, err error) {
			if conn != nil {
				log.Printf("Connection %s: %v", conn.RemoteAddr(), err)
				return
			}
			log.Printf("Server error: %v", err)
		},
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}
	if err := server.Start(ctx); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
	log.Printf("Serving on %s", server.Addr())

	var metricsServer *http.Server
	if bridgeConfig.Metrics != nil {
		metricsServer = serveMetrics(config.MetricsAddr, bridgeConfig.Metrics)
	}

	var advertiser discovery.Advertiser
	if config.Advertise {
		advertiser, err = advertise(ctx, config, bridge, server.Addr())
		if err != nil {
			log.Printf("Warning: mDNS advertising failed: %v", err)
		}
	}

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	log.Printf("Received signal: %v", sig)
	log.Println("Shutting down...")

	if advertiser != nil {
		if err := advertiser.Stop(); err != nil {
			log.Printf("Error stopping advertiser: %v", err)
		}
	}
	cancel()
	if err := server.Stop(); err != nil {
		log.Printf("Error stopping server: %v", err)
	}
	if metricsServer != nil {
		shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
		_ = metricsServer.Shutdown(shutdownCtx)
		done()
	}
	if n := bridge.DroppedEvents(); n > 0 {
		log.Printf("Dropped %d engine events", n)
	}
	if fileLogger != nil && fileLogger.Failed() > 0 {
		log.Printf("Failed to write %d protocol events", fileLogger.Failed())
	}

	log.Println("Goodbye!")
}

// setupLogging configures the console log and returns the debug logger for
// the bridge, or nil below debug level.
func setupLogging(level string) *slog.Logger {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	switch strings.ToLower(level) {
	case "debug":
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case "warn", "error":
		log.SetFlags(log.Ltime)
	}
	return nil
}

// checkManifest compares the registered commands with the embedded manifest
// of the current release.
func checkManifest(bridge *service.Bridge) {
	m, err := version.LoadCurrentManifest()
	if err != nil {
		log.Printf("Warning: no manifest for release %s: %v", version.Current, err)
		return
	}
	result := version.ValidateBridge(m, bridge.Registry().BridgeCapabilities())
	for _, e := range result.Errors {
		log.Printf("Manifest error: %s", e)
	}
	for _, w := range result.Warnings {
		log.Printf("Manifest warning: %s", w)
	}
}

func serveMetrics(addr string, m *metrics.Metrics) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Metrics server: %v", err)
		}
	}()
	log.Printf("Metrics on http://%s/metrics", addr)
	return srv
}

func advertise(ctx context.Context, config Config, bridge *service.Bridge, addr net.Addr) (discovery.Advertiser, error) {
	tcp, ok := addr.(*net.TCPAddr)
	if !ok {
		return nil, fmt.Errorf("unexpected listen address %v", addr)
	}

	adCfg := discovery.DefaultAdvertiserConfig()
	adCfg.Interface = config.Interface
	advertiser, err := discovery.NewMDNSAdvertiser(adCfg)
	if err != nil {
		return nil, err
	}

	bc := config.bridgeConfig()
	info := &discovery.BridgeInfo{
		Port:             uint16(tcp.Port),
		TransportVersion: bc.Version.Transport,
		Product:          bc.Version.Product,
		Release:          bc.Version.Release(),
		StackID:          bc.StackID,
		Capabilities:     bridge.Registry().Capabilities(),
		ID:               strings.ReplaceAll(config.engineConfig().ExtAddr.String(), ":", ""),
		Name:             config.Name,
	}
	info.InstanceName = discovery.InstanceName(info)

	if err := advertiser.Advertise(ctx, info); err != nil {
		return nil, err
	}
	log.Printf("Advertising %s as %q", discovery.ServiceType, info.InstanceName)
	return advertiser, nil
}

func handleEvent(event service.Event) {
	switch event.Type {
	case service.EventLinkUp:
		log.Printf("[EVENT] Host connected: %s", event.ConnectionID)
	case service.EventLinkDown:
		if event.Error != nil {
			log.Printf("[EVENT] Host disconnected: %s (%v)", event.ConnectionID, event.Error)
			return
		}
		log.Printf("[EVENT] Host disconnected: %s", event.ConnectionID)
	case service.EventReset:
		log.Printf("[EVENT] Reset (%s)", event.ResetType)
	}
}
