// Command zwave-log views and analyzes capture files written by the
// dispatcher's file logger.
//
// Usage:
//
//	zwave-log <command> [flags] <file.zlog>
//
// Commands:
//
//	view     View capture in human-readable format
//	stats    Show statistics about the capture
//	export   Export capture to JSONL or CSV
//	filter   Filter capture and write to a new file
//
// Examples:
//
//	# View only malformed and unknown frames
//	zwave-log view -category error hub.zlog
//
//	# View Association traffic
//	zwave-log view -class 0x85 hub.zlog
//
//	# Export to JSONL
//	zwave-log export -format jsonl -o hub.jsonl hub.zlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zwave-protocol/zwave-go/cmd/zwave-log/commands"
)

const usage = `zwave-log - Z-Wave Capture Analyzer

Usage:
  zwave-log <command> [flags] <file.zlog>

Commands:
  view     View capture in human-readable format
  stats    Show statistics about the capture
  export   Export capture to JSONL or CSV
  filter   Filter capture and write to a new file

Use "zwave-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "view":
		err = runView(args)
	case "stats":
		err = runStats(args)
	case "export":
		err = runExport(args)
	case "filter":
		err = runFilter(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newFlagSet creates a flag set with the shared filter flags.
func newFlagSet(name, summary string) (*flag.FlagSet, *commands.FilterOptions) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "zwave-log %s - %s\n\nUsage:\n  zwave-log %s [flags] <file.zlog>\n\nFlags:\n", name, summary, name)
		fs.PrintDefaults()
	}

	var opts commands.FilterOptions
	fs.StringVar(&opts.Session, "session", "", "Filter by session ID")
	fs.StringVar(&opts.Direction, "direction", "", "Filter by direction (in, out)")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (command, noreply, error)")
	fs.StringVar(&opts.Class, "class", "", "Filter by command class ID (e.g. 0x85)")
	fs.StringVar(&opts.Command, "command", "", "Filter by command ID (e.g. 0x03)")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	return fs, &opts
}

// parseArgs parses flags and returns the capture path.
func parseArgs(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return "", fmt.Errorf("log file path required")
	}
	return fs.Arg(0), nil
}

func runView(args []string) error {
	fs, opts := newFlagSet("view", "View capture in human-readable format")
	path, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	filter, err := commands.BuildFilter(*opts)
	if err != nil {
		return err
	}
	return commands.RunView(path, filter, os.Stdout)
}

func runStats(args []string) error {
	fs, opts := newFlagSet("stats", "Show statistics about the capture")
	path, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	filter, err := commands.BuildFilter(*opts)
	if err != nil {
		return err
	}
	return commands.RunStats(path, filter, os.Stdout)
}

func runExport(args []string) error {
	fs, opts := newFlagSet("export", "Export capture to JSONL or CSV")
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	path, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	filter, err := commands.BuildFilter(*opts)
	if err != nil {
		return err
	}
	return commands.RunExport(path, *format, *output, filter)
}

func runFilter(args []string) error {
	fs, opts := newFlagSet("filter", "Filter capture and write to a new file")
	output := fs.String("o", "", "Output file (required)")
	path, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if *output == "" {
		fs.Usage()
		return fmt.Errorf("output file (-o) required")
	}
	filter, err := commands.BuildFilter(*opts)
	if err != nil {
		return err
	}
	n, err := commands.RunFilter(path, *output, filter)
	if err != nil {
		return err
	}
	fmt.Printf("Filtered %d events to %s\n", n, *output)
	return nil
}
