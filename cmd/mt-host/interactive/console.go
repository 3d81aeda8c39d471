// Package interactive provides the interactive command-line interface
// for the MT host.
package interactive

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/chzyer/readline"

	"github.com/lowpan-mt/mt-go/pkg/client"
	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/version"
)

// Console handles interactive mode for mt-host.
type Console struct {
	client   *client.Client
	manifest *version.Manifest
	rl       *readline.Instance
	out      io.Writer

	// Indications are printed only while watching.
	watch atomic.Bool
}

// New creates a console reading commands from the terminal.
func New(c *client.Client) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "mt> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	con := newConsole(c, rl.Stdout())
	con.rl = rl
	return con, nil
}

func newConsole(c *client.Client, out io.Writer) *Console {
	m, _ := version.LoadCurrentManifest()
	con := &Console{client: c, manifest: m, out: out}
	con.watch.Store(true)
	return con
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (c *Console) Stdout() io.Writer {
	return c.out
}

// Indication prints an AREQ received from the bridge. It is meant to be
// registered with client.OnIndication.
func (c *Console) Indication(f mt.Frame) {
	if !c.watch.Load() {
		return
	}
	fmt.Fprintf(c.out, "[IND] %s %s\n", c.commandName(f), hex.EncodeToString(f.Data))
}

func (c *Console) commandName(f mt.Frame) string {
	if c.manifest == nil {
		return f.String()
	}
	return c.manifest.CommandName(uint8(f.Subsystem), f.Command)
}

// Run starts the interactive command loop.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.out, "Exiting...")
			cancel()
			return
		}

		if quit := c.Execute(ctx, line); quit {
			fmt.Fprintln(c.out, "Exiting...")
			cancel()
			return
		}
	}
}

// Execute runs one command line. It returns true when the user asked to
// quit.
func (c *Console) Execute(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	var err error
	switch cmd {
	case "help", "?":
		c.printHelp()
	case "ping":
		err = c.cmdPing(ctx)
	case "version", "ver":
		err = c.cmdVersion(ctx)
	case "reset":
		err = c.cmdReset(args)
	case "subscribe", "sub":
		err = c.cmdSubscribe(ctx, args)
	case "get":
		err = c.cmdGet(ctx, args)
	case "set":
		err = c.cmdSet(ctx, args)
	case "macreset":
		err = c.cmdMACReset(ctx, args)
	case "extaddr":
		err = c.cmdExtAddr(ctx, args)
	case "random", "rand":
		err = c.cmdRandom(ctx)
	case "loopback", "lb":
		err = c.cmdLoopback(ctx, args)
	case "nv":
		err = c.cmdNV(ctx, args)
	case "watch":
		watching := !c.watch.Load()
		c.watch.Store(watching)
		fmt.Fprintf(c.out, "Indications %s\n", onOff(watching))
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintf(c.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
	return false
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, `
MT Host Commands:
  System:
    ping                              - Show the bridge capability mask
    version                           - Show the bridge version record
    reset [soft|hard]                 - Reset the bridge
    subscribe <sub> <mask>            - Set the callback mask of a subsystem

  MAC:
    get <attr>                        - Read a PIB attribute
    set <attr> <value>                - Write a PIB attribute
    macreset [keep]                   - Reset the MAC (default PIB unless keep)

  Utility:
    extaddr [primary|pib|user]        - Show an extended address
    random                            - Read a random number
    loopback <text> [repeats] [ms]    - Echo text, optionally repeated

  NV (item ids are sys/item/sub):
    nv create <id> <length>           - Create an item
    nv delete <id>                    - Delete an item
    nv length <id>                    - Show an item's length
    nv read <id> [offset] [length]    - Read an item
    nv write <id> <offset> <hex>      - Write into an item
    nv update <id> <hex>              - Replace an item's content
    nv compact [threshold]            - Compact the store

  General:
    watch                             - Toggle printing of indications
    help                              - Show this help
    quit                              - Exit`)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func usage(format string) error {
	return errors.New("usage: " + format)
}

func (c *Console) cmdPing(ctx context.Context) error {
	caps, err := c.client.Ping(ctx)
	if err != nil {
		return err
	}
	var subs []string
	for sub := mt.Subsystem(1); sub <= 16; sub++ {
		if caps&sub.Capability() != 0 {
			subs = append(subs, sub.String())
		}
	}
	fmt.Fprintf(c.out, "Capabilities: 0x%04X [%s]\n", caps, strings.Join(subs, " "))
	return nil
}

func (c *Console) cmdVersion(ctx context.Context) error {
	rec, err := c.client.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Transport: %d\n", rec.Transport)
	fmt.Fprintf(c.out, "Product:   %d\n", rec.Product)
	fmt.Fprintf(c.out, "Release:   %s\n", rec.Release())
	return nil
}

func (c *Console) cmdReset(args []string) error {
	var kind string
	if len(args) > 0 {
		kind = args[0]
	}
	t, err := parseResetType(kind)
	if err != nil {
		return err
	}
	if err := c.client.Reset(t); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s reset requested\n", t)
	return nil
}

func (c *Console) cmdSubscribe(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("subscribe <sys|mac|util> <mask>")
	}
	sub, err := parseSubsystem(args[0])
	if err != nil {
		return err
	}
	mask, err := parseUint(args[1], 32)
	if err != nil {
		return err
	}
	result, err := c.client.Subscribe(ctx, sub, uint32(mask))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s callbacks: 0x%08X\n", sub, result)
	return nil
}

func (c *Console) cmdGet(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("get <attr>")
	}
	id, err := parseUint(args[0], 8)
	if err != nil {
		return err
	}
	value, err := c.client.GetPIB(ctx, mac.PIBAttribute(id))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s = %s\n", mac.PIBAttribute(id), formatPIBValue(value))
	return nil
}

func (c *Console) cmdSet(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("set <attr> <value>")
	}
	id, err := parseUint(args[0], 8)
	if err != nil {
		return err
	}
	attr := mac.PIBAttribute(id)
	value, err := encodePIBValue(attr, args[1])
	if err != nil {
		return err
	}
	if err := c.client.SetPIB(ctx, attr, value); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s set\n", attr)
	return nil
}

func (c *Console) cmdMACReset(ctx context.Context, args []string) error {
	setDefault := len(args) == 0 || strings.ToLower(args[0]) != "keep"
	if err := c.client.MACReset(ctx, setDefault); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "MAC reset")
	return nil
}

func (c *Console) cmdExtAddr(ctx context.Context, args []string) error {
	var kind string
	if len(args) > 0 {
		kind = args[0]
	}
	t, err := parseExtAddrType(kind)
	if err != nil {
		return err
	}
	addr, err := c.client.ExtAddress(ctx, t)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Extended address: %s\n", addr)
	return nil
}

func (c *Console) cmdRandom(ctx context.Context) error {
	v, err := c.client.Random(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Random: 0x%04X\n", v)
	return nil
}

func (c *Console) cmdLoopback(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 3 {
		return usage("loopback <text> [repeats] [interval-ms]")
	}
	var repeats, interval uint64
	var err error
	if len(args) > 1 {
		if repeats, err = parseUint(args[1], 8); err != nil {
			return err
		}
	}
	if len(args) > 2 {
		if interval, err = parseUint(args[2], 32); err != nil {
			return err
		}
	}

	start := time.Now()
	echo, err := c.client.Loopback(ctx, uint8(repeats), time.Duration(interval)*time.Millisecond, []byte(args[0]))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Echo: %q (%s)\n", echo, time.Since(start).Round(time.Microsecond))
	return nil
}
