// Command zwave-decode decodes Z-Wave application command frames.
//
// Frames are hex strings holding class, command and payload bytes. They are
// read from the command line, from stdin, or typed into an interactive
// session. With -bridge the tool instead runs the MQTT bridge until
// interrupted.
//
// Usage:
//
//	zwave-decode [flags] [frame ...]
//
// Examples:
//
//	# Decode one frame
//	zwave-decode "85 03 01 04 00 05 07"
//
//	# Decode a file of frames, one per line
//	zwave-decode < frames.txt
//
//	# Interactive session with an extension catalog
//	zwave-decode -extensions docs/catalog/extensions/door-lock.yaml
//
//	# Run the MQTT bridge
//	zwave-decode -config zwave.yaml -bridge
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/chzyer/readline"

	"github.com/zwave-protocol/zwave-go/pkg/bridge"
	"github.com/zwave-protocol/zwave-go/pkg/config"
)

// options holds command-line flags. Flags override the config file.
type options struct {
	ConfigFile  string
	Extensions  string
	CaptureFile string
	LogLevel    string
	LogFormat   string
	Trace       bool
	Bridge      bool
}

func main() {
	var opts options
	flag.StringVar(&opts.ConfigFile, "config", "", "Configuration file path")
	flag.StringVar(&opts.Extensions, "extensions", "", "Comma-separated extension catalog YAML files")
	flag.StringVar(&opts.CaptureFile, "capture", "", "Append capture events to this file")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.StringVar(&opts.LogFormat, "log-format", "", "Log format: text, json")
	flag.BoolVar(&opts.Trace, "trace", false, "Mirror capture events to the log at debug level")
	flag.BoolVar(&opts.Bridge, "bridge", false, "Run the MQTT bridge instead of decoding")
	flag.Parse()

	os.Exit(run(opts, flag.Args()))
}

func run(opts options, args []string) int {
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	logger := cfg.NewLogger(os.Stderr)

	capture, closeCapture, err := openCapture(cfg.CaptureFile, opts.Trace, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	defer closeCapture()

	d, err := newDispatcher(cfg, logger, capture)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	a := &app{d: d, out: os.Stdout}

	switch {
	case opts.Bridge:
		if err := runBridge(cfg, a, logger); err != nil {
			logger.Error("bridge failed", "error", err)
			return 1
		}
		return 0

	case len(args) > 0:
		return a.decodeAll(args)

	case !isTerminal(os.Stdin):
		return a.decodeLines(os.Stdin)

	default:
		if err := a.interactive(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}
}

// loadConfig reads the config file if given, then applies flag overrides.
func loadConfig(opts options) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg.ApplyEnv()
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.LogFormat = opts.LogFormat
	}
	if opts.CaptureFile != "" {
		cfg.CaptureFile = opts.CaptureFile
	}
	if opts.Extensions != "" {
		for _, p := range strings.Split(opts.Extensions, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.Extensions = append(cfg.Extensions, p)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runBridge connects to the broker and forwards frames until interrupted.
func runBridge(cfg *config.Config, a *app, logger *slog.Logger) error {
	client, err := bridge.Connect(cfg.MQTT, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	b := bridge.New(client, a.d,
		bridge.WithTopicRoot(cfg.MQTT.TopicRoot),
		bridge.WithQoS(byte(cfg.MQTT.QoS)),
		bridge.WithLogger(logger))
	if err := b.Start(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")
	return nil
}

func isTerminal(f *os.File) bool {
	return readline.IsTerminal(int(f.Fd()))
}
