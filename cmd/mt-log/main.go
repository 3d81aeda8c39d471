// Command mt-log is a tool for viewing and analyzing MT protocol log files.
//
// Log files are created by mt-bridge and mt-host when run with the
// -protocol-log flag.
//
// Usage:
//
//	mt-log <command> [flags] <file.mlog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSON or CSV format
//	filter   Filter log file and write to new file
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events
//	mt-log view bridge.mlog
//
//	# View only MAC traffic
//	mt-log view -subsystem mac bridge.mlog
//
//	# View MAC GET responses
//	mt-log view -subsystem mac -type srsp -command 0x08 bridge.mlog
//
//	# View only fragmentation frames sent by the bridge
//	mt-log view -category fragment -direction out bridge.mlog
//
//	# Export to CSV
//	mt-log export -format csv -o bridge.csv bridge.mlog
//
//	# Filter by connection and save to new file
//	mt-log filter -conn-id abc12345 -o filtered.mlog bridge.mlog
//
//	# Show statistics
//	mt-log stats bridge.mlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lowpan-mt/mt-go/cmd/mt-log/commands"
)

const usage = `mt-log - MT Protocol Log Analyzer

Usage:
  mt-log <command> [flags] <file.mlog>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSON or CSV format
  filter   Filter log file and write to new file
  stats    Show statistics about the log file

Use "mt-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// requirePath returns the single positional argument of fs.
func requirePath(fs *flag.FlagSet) string {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `mt-log view - View log file in human-readable format

Usage:
  mt-log view [flags] <file.mlog>

Flags:
`)
		fs.PrintDefaults()
	}

	layer := fs.String("layer", "", "Filter by layer (transport, frame, service)")
	direction := fs.String("direction", "", "Filter by direction (in, out)")
	category := fs.String("category", "", "Filter by category (message, fragment, state, error)")
	subsystem := fs.String("subsystem", "", "Filter by subsystem (sys, mac, util, app or 0-31)")
	frameType := fs.String("type", "", "Filter by frame type (poll, sreq, areq, srsp)")
	command := fs.String("command", "", "Filter by command id (e.g. 0x09)")
	stackID := fs.String("stack-id", "", "Filter by extended header stack id")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	var filter commands.ViewFilter

	if *layer != "" {
		l, err := commands.ParseLayerFlag(*layer)
		if err != nil {
			fail(err)
		}
		filter.Layer = &l
	}

	if *direction != "" {
		d, err := commands.ParseDirectionFlag(*direction)
		if err != nil {
			fail(err)
		}
		filter.Direction = &d
	}

	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fail(err)
		}
		filter.Category = &c
	}

	if *subsystem != "" {
		s, err := commands.ParseSubsystemFlag(*subsystem)
		if err != nil {
			fail(err)
		}
		filter.Subsystem = &s
	}

	if *frameType != "" {
		ft, err := commands.ParseTypeFlag(*frameType)
		if err != nil {
			fail(err)
		}
		filter.Type = &ft
	}

	if *command != "" {
		c, err := commands.ParseByteFlag("command", *command)
		if err != nil {
			fail(err)
		}
		filter.Command = &c
	}

	if *stackID != "" {
		id, err := commands.ParseByteFlag("stack id", *stackID)
		if err != nil {
			fail(err)
		}
		filter.StackID = &id
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `mt-log export - Export log file to JSON or CSV format

Usage:
  mt-log export [flags] <file.mlog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `mt-log filter - Filter log file and write to new file

Usage:
  mt-log filter [flags] <file.mlog>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (required)")
	connID := fs.String("conn-id", "", "Filter by connection ID")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")
	layer := fs.String("layer", "", "Filter by layer (transport, frame, service)")
	direction := fs.String("direction", "", "Filter by direction (in, out)")
	category := fs.String("category", "", "Filter by category (message, fragment, state, error)")
	subsystem := fs.String("subsystem", "", "Filter by subsystem (sys, mac, util, app or 0-31)")
	frameType := fs.String("type", "", "Filter by frame type (poll, sreq, areq, srsp)")
	command := fs.String("command", "", "Filter by command id (e.g. 0x09)")
	stackID := fs.String("stack-id", "", "Filter by extended header stack id")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.FilterOptions{
		Output:    *output,
		ConnID:    *connID,
		TimeStart: *timeStart,
		TimeEnd:   *timeEnd,
		Layer:     *layer,
		Direction: *direction,
		Category:  *category,
		Subsystem: *subsystem,
		Type:      *frameType,
		Command:   *command,
		StackID:   *stackID,
	}

	n, err := commands.RunFilter(path, opts)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Filtered %d events to %s\n", n, opts.Output)
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `mt-log stats - Show statistics about the log file

Usage:
  mt-log stats <file.mlog>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}
