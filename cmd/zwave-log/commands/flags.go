// Package commands implements the zwave-log CLI commands.
package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zwave-protocol/zwave-go/pkg/log"
)

// FilterOptions holds the raw filter flags shared by all commands.
type FilterOptions struct {
	Session   string
	Direction string
	Category  string
	Class     string
	Command   string
	TimeStart string
	TimeEnd   string
}

// BuildFilter converts flag values into a capture filter.
func BuildFilter(opts FilterOptions) (log.Filter, error) {
	filter := log.Filter{SessionID: opts.Session}

	if opts.Direction != "" {
		d, err := parseDirection(opts.Direction)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Direction = &d
	}
	if opts.Category != "" {
		c, err := parseCategory(opts.Category)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Category = &c
	}
	if opts.Class != "" {
		id, err := parseID(opts.Class)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid class: %w", err)
		}
		filter.ClassID = &id
	}
	if opts.Command != "" {
		id, err := parseID(opts.Command)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid command: %w", err)
		}
		filter.CommandID = &id
	}
	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	return filter, nil
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

// parseCategory parses a category string (case-insensitive).
func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "command":
		return log.CategoryCommand, nil
	case "noreply", "no_reply", "no-reply":
		return log.CategoryNoReply, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be command, noreply, or error)", s)
	}
}

// parseID accepts "0x85", "85h" style hex or a decimal byte.
func parseID(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	if h, ok := strings.CutSuffix(strings.ToLower(s), "h"); ok {
		s = "0x" + h
	}
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}
