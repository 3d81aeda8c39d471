package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/lowpan-mt/mt-go/pkg/log"
)

// FilterOptions specifies filtering criteria for the filter command.
type FilterOptions struct {
	Output    string
	ConnID    string
	TimeStart string
	TimeEnd   string
	Layer     string
	Direction string
	Category  string
	Subsystem string
	Type      string
	Command   string
	StackID   string
}

// RunFilter filters the log file and writes matching events to a new file.
// It returns the number of events written.
func RunFilter(path string, opts FilterOptions) (int, error) {
	filter := log.Filter{
		ConnectionID: opts.ConnID,
	}

	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return 0, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return 0, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	if opts.Layer != "" {
		l, err := parseLayer(opts.Layer)
		if err != nil {
			return 0, err
		}
		filter.Layer = &l
	}

	if opts.Direction != "" {
		d, err := parseDirection(opts.Direction)
		if err != nil {
			return 0, err
		}
		filter.Direction = &d
	}

	if opts.Category != "" {
		c, err := parseCategory(opts.Category)
		if err != nil {
			return 0, err
		}
		filter.Category = &c
	}

	if opts.Subsystem != "" {
		s, err := parseSubsystem(opts.Subsystem)
		if err != nil {
			return 0, err
		}
		filter.Subsystem = &s
	}

	if opts.Type != "" {
		ft, err := parseType(opts.Type)
		if err != nil {
			return 0, err
		}
		filter.Type = &ft
	}

	if opts.Command != "" {
		c, err := parseByte("command", opts.Command)
		if err != nil {
			return 0, err
		}
		filter.Command = &c
	}

	if opts.StackID != "" {
		id, err := parseByte("stack id", opts.StackID)
		if err != nil {
			return 0, err
		}
		filter.StackID = &id
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(opts.Output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output logger: %w", err)
	}
	defer logger.Close()

	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("failed to read event: %w", err)
		}

		logger.Log(event)
		count++
	}

	return count, nil
}
