package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/lowpan-mt/mt-go/pkg/log"
	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents       int
	EventsByLayer     map[log.Layer]int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	Commands          map[commandKey]int
	Statuses          map[wire.Status]int
	FragmentReports   map[mt.FragStatus]int
	Connections       map[string]*ConnectionStats
	Errors            int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

type commandKey struct {
	Subsystem mt.Subsystem
	Command   uint8
}

// ConnectionStats holds statistics for a single connection.
type ConnectionStats struct {
	FirstSeen  time.Time
	LastSeen   time.Time
	Events     int
	RemoteAddr string
	Requests   int
	Resets     int
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByLayer:     make(map[log.Layer]int),
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		Commands:          make(map[commandKey]int),
		Statuses:          make(map[wire.Status]int),
		FragmentReports:   make(map[mt.FragStatus]int),
		Connections:       make(map[string]*ConnectionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByLayer[event.Layer]++
	s.EventsByCategory[event.Category]++
	s.EventsByDirection[event.Direction]++

	// Track time range
	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	// Track connection stats
	conn, ok := s.Connections[event.ConnectionID]
	if !ok {
		conn = &ConnectionStats{
			FirstSeen: event.Timestamp,
			LastSeen:  event.Timestamp,
		}
		s.Connections[event.ConnectionID] = conn
	}
	conn.Events++
	if event.Timestamp.After(conn.LastSeen) {
		conn.LastSeen = event.Timestamp
	}
	if event.RemoteAddr != "" && conn.RemoteAddr == "" {
		conn.RemoteAddr = event.RemoteAddr
	}

	if m := event.Message; m != nil {
		if m.Type == mt.TypeSREQ {
			conn.Requests++
		}
		if m.Type == mt.TypeSREQ || m.Type == mt.TypeAREQ {
			s.Commands[commandKey{m.Subsystem, m.Command}]++
		}
		if m.Status != nil {
			s.Statuses[*m.Status]++
		}
	}
	if f := event.Fragment; f != nil && f.Status != nil {
		s.FragmentReports[*f.Status]++
	}
	if sc := event.StateChange; sc != nil && sc.Entity == log.StateEntityBridge && strings.HasPrefix(sc.Reason, "reset ") {
		conn.Resets++
	}

	// Count errors
	if event.Error != nil {
		s.Errors++
	}
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== MT Protocol Log Statistics ===")
	fmt.Fprintln(w)

	// Time range
	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	// Total events
	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	// Events by layer
	fmt.Fprintln(w, "Events by Layer:")
	for _, layer := range []log.Layer{log.LayerTransport, log.LayerFrame, log.LayerService} {
		if count := stats.EventsByLayer[layer]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", layer.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	// Events by category
	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryMessage, log.CategoryFragment, log.CategoryState, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	// Events by direction
	fmt.Fprintln(w, "Events by Direction:")
	for _, dir := range []log.Direction{log.DirectionIn, log.DirectionOut} {
		if count := stats.EventsByDirection[dir]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", dir.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	// Commands, most frequent first
	if len(stats.Commands) > 0 {
		keys := make([]commandKey, 0, len(stats.Commands))
		for k := range stats.Commands {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			ci, cj := stats.Commands[keys[i]], stats.Commands[keys[j]]
			if ci != cj {
				return ci > cj
			}
			if keys[i].Subsystem != keys[j].Subsystem {
				return keys[i].Subsystem < keys[j].Subsystem
			}
			return keys[i].Command < keys[j].Command
		})
		fmt.Fprintln(w, "Commands:")
		for _, k := range keys {
			fmt.Fprintf(w, "  %-28s %d\n", commandName(k.Subsystem, k.Command)+":", stats.Commands[k])
		}
		fmt.Fprintln(w)
	}

	if len(stats.Statuses) > 0 {
		statuses := make([]wire.Status, 0, len(stats.Statuses))
		for st := range stats.Statuses {
			statuses = append(statuses, st)
		}
		sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
		fmt.Fprintln(w, "Status Responses:")
		for _, st := range statuses {
			fmt.Fprintf(w, "  %-28s %d\n", st.String()+":", stats.Statuses[st])
		}
		fmt.Fprintln(w)
	}

	if len(stats.FragmentReports) > 0 {
		reports := make([]mt.FragStatus, 0, len(stats.FragmentReports))
		for st := range stats.FragmentReports {
			reports = append(reports, st)
		}
		sort.Slice(reports, func(i, j int) bool { return reports[i] < reports[j] })
		fmt.Fprintln(w, "Fragment Reports:")
		for _, st := range reports {
			fmt.Fprintf(w, "  %-28s %d\n", st.String()+":", stats.FragmentReports[st])
		}
		fmt.Fprintln(w)
	}

	// Connections
	fmt.Fprintf(w, "Connections: %d\n", len(stats.Connections))
	if len(stats.Connections) > 0 {
		// Sort by first seen time
		type connInfo struct {
			id    string
			stats *ConnectionStats
		}
		conns := make([]connInfo, 0, len(stats.Connections))
		for id, cs := range stats.Connections {
			conns = append(conns, connInfo{id, cs})
		}
		sort.Slice(conns, func(i, j int) bool {
			return conns[i].stats.FirstSeen.Before(conns[j].stats.FirstSeen)
		})

		fmt.Fprintln(w, "")
		for _, c := range conns {
			duration := c.stats.LastSeen.Sub(c.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenConnID(c.id), c.stats.Events, duration)
			if c.stats.RemoteAddr != "" {
				fmt.Fprintf(w, "           Remote: %s\n", c.stats.RemoteAddr)
			}
			if c.stats.Requests > 0 {
				fmt.Fprintf(w, "           Requests: %d\n", c.stats.Requests)
			}
			if c.stats.Resets > 0 {
				fmt.Fprintf(w, "           Resets: %d\n", c.stats.Resets)
			}
		}
	}

	// Errors
	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
