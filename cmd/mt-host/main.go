// Command mt-host is an interactive host for a TCP-attached MT bridge.
//
// It connects to a bridge, either at a given address or by browsing for
// _mtbridge._tcp services, and offers a console for the SYS, MAC, UTIL and
// NV commands. Indications sent by the bridge are printed as they arrive.
//
// Usage:
//
//	mt-host [flags]
//
// Flags:
//
//	-addr string          Bridge address (host:port); browse via mDNS if empty
//	-stack-id int         Only accept browsed bridges with this stack id (-1: any)
//	-timeout duration     Request timeout (default 5s)
//	-keepalive duration   Ping interval; 0 disables keep-alive (default 10s)
//	-retries int          Redial attempts when the bridge refuses the connection (default 3)
//	-protocol-log string  File path for protocol event logging (CBOR format)
//	-log-level string     Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Connect to a local bridge
//	mt-host -addr localhost:2560
//
//	# Find a bridge on the LAN and record the session
//	mt-host -protocol-log session.mlog
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lowpan-mt/mt-go/cmd/mt-host/interactive"
	"github.com/lowpan-mt/mt-go/pkg/client"
	"github.com/lowpan-mt/mt-go/pkg/discovery"
	mtlog "github.com/lowpan-mt/mt-go/pkg/log"
	"github.com/lowpan-mt/mt-go/pkg/transport"
)

// Config holds the host configuration.
type Config struct {
	Address     string
	StackID     int
	Timeout     time.Duration
	KeepAlive   time.Duration
	Retries     int
	ProtocolLog string
	LogLevel    string
}

var config Config

func init() {
	flag.StringVar(&config.Address, "addr", "", "Bridge address (host:port); browse via mDNS if empty")
	flag.IntVar(&config.StackID, "stack-id", -1, "Only accept browsed bridges with this stack id (-1: any)")
	flag.DurationVar(&config.Timeout, "timeout", client.DefaultTimeout, "Request timeout")
	flag.DurationVar(&config.KeepAlive, "keepalive", transport.DefaultPingInterval, "Ping interval; 0 disables keep-alive")
	flag.IntVar(&config.Retries, "retries", 3, "Redial attempts when the bridge refuses the connection")
	flag.StringVar(&config.ProtocolLog, "protocol-log", "", "File path for protocol event logging (CBOR format)")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func main() {
	flag.Parse()

	logger := setupLogging(config.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var protocolLogger mtlog.Logger
	if config.ProtocolLog != "" {
		fileLogger, err := mtlog.NewFileLogger(config.ProtocolLog)
		if err != nil {
			log.Fatalf("Failed to create protocol logger: %v", err)
		}
		defer fileLogger.Close()
		protocolLogger = fileLogger
	}

	address := config.Address
	if address == "" {
		var err error
		address, err = browse(ctx)
		if err != nil {
			log.Fatalf("No bridge found: %v", err)
		}
	}

	conn, err := transport.Dial(ctx, address, transport.DialConfig{
		Retries: config.Retries,
		OnRetry: func(attempt int, delay time.Duration, err error) {
			log.Printf("Connect failed (%v), retry %d in %s", err, attempt, delay.Round(time.Millisecond))
		},
		Logger: protocolLogger,
	})
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", address, err)
	}
	log.Printf("Connected to %s", address)

	cc := client.DefaultConfig()
	cc.Timeout = config.Timeout
	cc.Logger = logger
	if config.KeepAlive > 0 {
		ka := transport.DefaultKeepAliveConfig()
		ka.PingInterval = config.KeepAlive
		cc.KeepAlive = &ka
	}
	c := client.New(conn, cc)

	console, err := interactive.New(c)
	if err != nil {
		log.Fatalf("Failed to create console: %v", err)
	}
	// Redirect log output through readline to avoid interfering with input
	log.SetOutput(console.Stdout())

	c.OnIndication(console.Indication)
	c.Start(ctx)
	defer c.Close()

	go console.Run(ctx, cancel)

	// Wait for shutdown signal, quit or link loss
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Received signal: %v", sig)
	case <-c.Done():
		log.Printf("Link closed: %v", c.Err())
	case <-ctx.Done():
	}
}

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

// browse looks for a bridge via mDNS and returns its address.
func browse(ctx context.Context) (string, error) {
	log.Printf("Browsing for %s...", discovery.ServiceType)

	browser, err := discovery.NewMDNSBrowser(discovery.DefaultBrowserConfig())
	if err != nil {
		return "", err
	}
	defer browser.Stop()

	var filter discovery.FilterFunc
	if config.StackID >= 0 {
		filter = discovery.FilterByStackID(uint8(config.StackID))
	}

	findCtx, done := context.WithTimeout(ctx, 10*time.Second)
	defer done()
	svc, err := browser.FindBridge(findCtx, filter)
	if err != nil {
		return "", err
	}
	address, err := svc.Address()
	if err != nil {
		return "", err
	}
	fmt.Printf("Found %s (release %s, stack %d) at %s\n", svc.InstanceName, svc.Release, svc.StackID, address)
	return address, nil
}
