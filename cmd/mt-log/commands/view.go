// Package commands implements the mt-log CLI commands.
package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lowpan-mt/mt-go/pkg/log"
	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/version"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Layer     *log.Layer
	Direction *log.Direction
	Category  *log.Category
	Subsystem *mt.Subsystem
	Type      *mt.Type
	Command   *uint8
	StackID   *uint8
}

func (f ViewFilter) logFilter() log.Filter {
	return log.Filter{
		Layer:     f.Layer,
		Direction: f.Direction,
		Category:  f.Category,
		Subsystem: f.Subsystem,
		Type:      f.Type,
		Command:   f.Command,
		StackID:   f.StackID,
	}
}

// names resolves command names from the manifest of the current release.
var names, _ = version.LoadCurrentManifest()

func commandName(sub mt.Subsystem, cmd uint8) string {
	if names == nil {
		return fmt.Sprintf("%s.0x%02X", sub, cmd)
	}
	return names.CommandName(uint8(sub), cmd)
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [conn:id] DIRECTION LAYER Type
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	connID := shortenConnID(event.ConnectionID)
	dir := event.Direction.String()

	fmt.Fprintf(w, "%s [conn:%s] %-3s %s %s\n", ts, connID, dir, event.Layer.String(), typeLabel(event))

	// Type-specific details
	switch {
	case event.Frame != nil:
		formatFrameDetails(w, event.Frame)
	case event.Message != nil:
		formatMessageDetails(w, event.Message)
	case event.Fragment != nil:
		formatFragmentDetails(w, event.Fragment)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// typeLabel names the payload of an event.
func typeLabel(event log.Event) string {
	switch {
	case event.Frame != nil:
		return "Frame"
	case event.Message != nil:
		return event.Message.Type.String() + " " + commandName(event.Message.Subsystem, event.Message.Command)
	case event.Fragment != nil:
		return event.Fragment.Version.String()
	case event.StateChange != nil:
		return "State"
	case event.Error != nil:
		return "Error"
	default:
		return "Unknown"
	}
}

// shortenConnID returns the first 8 characters of the connection ID.
func shortenConnID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatFrameDetails writes frame-specific details.
func formatFrameDetails(w io.Writer, frame *log.FrameEvent) {
	fmt.Fprintf(w, "  Size: %d bytes\n", frame.Size)
	if len(frame.Data) > 0 {
		fmt.Fprintf(w, "  Data: %s", hex.EncodeToString(frame.Data))
		if frame.Truncated {
			fmt.Fprintf(w, " (truncated)")
		}
		fmt.Fprintln(w)
	}
}

// formatMessageDetails writes message-specific details.
func formatMessageDetails(w io.Writer, msg *log.MessageEvent) {
	if msg.Extended {
		fmt.Fprintf(w, "  Extended: %s stack=%d\n", msg.Version, msg.StackID)
	}
	fmt.Fprintf(w, "  Length: %d\n", msg.Length)
	if msg.Status != nil {
		fmt.Fprintf(w, "  Status: %s (%d)\n", msg.Status.String(), uint8(*msg.Status))
	}
	if msg.ProcessingTime != nil {
		fmt.Fprintf(w, "  Duration: %s\n", formatDuration(*msg.ProcessingTime))
	}
	if len(msg.Data) > 0 && msg.Status == nil {
		fmt.Fprintf(w, "  Data: %s", hex.EncodeToString(msg.Data))
		if len(msg.Data) < msg.Length {
			fmt.Fprintf(w, " (truncated)")
		}
		fmt.Fprintln(w)
	}
}

// formatFragmentDetails writes fragment frame details.
func formatFragmentDetails(w io.Writer, frag *log.FragmentEvent) {
	fmt.Fprintf(w, "  Block: %d  Stack: %d\n", frag.Block, frag.StackID)
	if frag.Total > 0 {
		fmt.Fprintf(w, "  Total: %d bytes\n", frag.Total)
	}
	if frag.ChunkSize > 0 {
		fmt.Fprintf(w, "  Chunk: %d bytes\n", frag.ChunkSize)
	}
	if frag.Status != nil {
		fmt.Fprintf(w, "  Status: %s\n", frag.Status.String())
	}
}

// formatStateChangeDetails writes state change details.
func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	fmt.Fprintf(w, "  Entity: %s\n", sc.Entity.String())
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

// formatErrorDetails writes error details.
func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer.String())
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Code != nil {
		fmt.Fprintf(w, "  Code: %d\n", *err.Code)
	}
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseLayerFlag parses a layer string from command-line flag (case-insensitive).
func ParseLayerFlag(s string) (log.Layer, error) {
	return parseLayer(s)
}

// parseLayer parses a layer string (case-insensitive).
func parseLayer(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "transport":
		return log.LayerTransport, nil
	case "frame":
		return log.LayerFrame, nil
	case "service":
		return log.LayerService, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be transport, frame, or service)", s)
	}
}

// ParseDirectionFlag parses a direction string from command-line flag (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	return parseDirection(s)
}

// parseDirection parses a direction string (case-insensitive).
func parseDirection(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	return parseCategory(s)
}

// parseCategory parses a category string (case-insensitive).
func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "message":
		return log.CategoryMessage, nil
	case "fragment":
		return log.CategoryFragment, nil
	case "state":
		return log.CategoryState, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be message, fragment, state, or error)", s)
	}
}

// ParseSubsystemFlag parses a subsystem name or number from command-line flag.
func ParseSubsystemFlag(s string) (mt.Subsystem, error) {
	return parseSubsystem(s)
}

// parseSubsystem parses a subsystem name (case-insensitive) or number.
func parseSubsystem(s string) (mt.Subsystem, error) {
	switch strings.ToLower(s) {
	case "res0":
		return mt.SubsystemRes0, nil
	case "sys":
		return mt.SubsystemSys, nil
	case "mac":
		return mt.SubsystemMAC, nil
	case "util":
		return mt.SubsystemUtil, nil
	case "app":
		return mt.SubsystemApp, nil
	}
	var n uint8
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n > 31 {
		return 0, fmt.Errorf("invalid subsystem: %s (must be sys, mac, util, app, res0, or 0-31)", s)
	}
	return mt.Subsystem(n), nil
}

// ParseTypeFlag parses a frame type name (poll, sreq, areq, srsp).
func ParseTypeFlag(s string) (mt.Type, error) {
	return parseType(s)
}

func parseType(s string) (mt.Type, error) {
	for _, t := range []mt.Type{mt.TypePoll, mt.TypeSREQ, mt.TypeAREQ, mt.TypeSRSP} {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("invalid frame type: %s (must be poll, sreq, areq, or srsp)", s)
}

// ParseByteFlag parses a command or stack id given in decimal or 0x hex.
func ParseByteFlag(name, s string) (uint8, error) {
	return parseByte(name, s)
}

func parseByte(name, s string) (uint8, error) {
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s (must be 0-255 or 0x00-0xFF)", name, s)
	}
	return uint8(n), nil
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter.logFilter())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
