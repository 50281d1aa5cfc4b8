package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/zwave-protocol/zwave-go/pkg/commandclass"
	"github.com/zwave-protocol/zwave-go/pkg/config"
	"github.com/zwave-protocol/zwave-go/pkg/dispatch"
	"github.com/zwave-protocol/zwave-go/pkg/layout"
	"github.com/zwave-protocol/zwave-go/pkg/log"
	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// newDispatcher builds the registry from the built-in catalog plus any
// configured extensions. capture may be nil.
func newDispatcher(cfg *config.Config, logger *slog.Logger, capture log.Logger) (*dispatch.Dispatcher, error) {
	ext, err := layout.LoadAll(cfg.Extensions)
	if err != nil {
		return nil, fmt.Errorf("loading extensions: %w", err)
	}
	reg, err := commandclass.NewRegistry(ext)
	if err != nil {
		return nil, fmt.Errorf("building registry: %w", err)
	}
	logger.Debug("registry built", "commands", reg.Len(), "extensions", len(cfg.Extensions))

	opts := []dispatch.Option{dispatch.WithSlog(logger)}
	if capture != nil {
		opts = append(opts, dispatch.WithCapture(capture))
	}
	return dispatch.New(reg, opts...), nil
}

// openCapture returns the capture logger for the configured file and trace
// setting, or nil when neither is set. The returned close function is
// always safe to call.
func openCapture(path string, trace bool, logger *slog.Logger) (log.Logger, func(), error) {
	var loggers []log.Logger
	closeFn := func() {}

	if path != "" {
		fl, err := log.NewFileLogger(path)
		if err != nil {
			return nil, closeFn, fmt.Errorf("opening capture file: %w", err)
		}
		closeFn = func() {
			if err := fl.Close(); err != nil {
				logger.Warn("closing capture file", "error", err)
			}
			if n := fl.Dropped(); n > 0 {
				logger.Warn("capture events dropped", "count", n)
			}
		}
		loggers = append(loggers, fl)
	}
	if trace {
		loggers = append(loggers, log.NewSlogAdapter(logger))
	}

	switch len(loggers) {
	case 0:
		return nil, closeFn, nil
	case 1:
		return loggers[0], closeFn, nil
	default:
		return log.NewMultiLogger(loggers...), closeFn, nil
	}
}

// app holds the dispatcher and output shared by all modes.
type app struct {
	d   *dispatch.Dispatcher
	out io.Writer
}

// decodeAll decodes each argument as a frame and returns the exit code.
// Arguments that look like single bytes are joined into one frame, so
// both "85 03 01" and 85 03 01 work.
func (a *app) decodeAll(args []string) int {
	if allBytes(args) {
		args = []string{strings.Join(args, " ")}
	}
	failed := 0
	for _, arg := range args {
		if err := a.decode(arg); err != nil {
			failed++
		}
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// decodeLines decodes one frame per line, skipping blank lines and
// # comments.
func (a *app) decodeLines(r io.Reader) int {
	scanner := bufio.NewScanner(r)
	failed := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := a.decode(line); err != nil {
			failed++
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(a.out, "error: reading input: %v\n", err)
		return 1
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// decode parses and decodes one hex frame, printing the outcome.
func (a *app) decode(input string) error {
	frame, err := wire.ParseHex(input)
	if err != nil {
		fmt.Fprintf(a.out, "%s: %v\n", input, err)
		return err
	}

	result, err := a.d.Decode(frame)
	if err != nil {
		fmt.Fprintf(a.out, "%s: %v\n", frame, err)
		return err
	}

	fmt.Fprintf(a.out, "%s: %s", frame, result.Descriptor.FullName())
	if !result.HasValue() {
		fmt.Fprintln(a.out, " (no reply data)")
		return nil
	}
	data, err := json.Marshal(result.Value)
	if err != nil {
		fmt.Fprintf(a.out, " %+v\n", result.Value)
		return nil
	}
	fmt.Fprintf(a.out, " %s\n", data)
	return nil
}

// list prints the registered commands, optionally for a single class.
func (a *app) list(classArg string) error {
	reg := a.d.Registry()
	classes := reg.Classes()
	if classArg != "" {
		id, err := parseID(classArg)
		if err != nil {
			return fmt.Errorf("invalid class: %w", err)
		}
		if !reg.HasClass(wire.ClassID(id)) {
			return fmt.Errorf("class %s is not registered", wire.ClassID(id))
		}
		classes = []wire.ClassID{wire.ClassID(id)}
	}

	for _, class := range classes {
		descs := reg.Class(class)
		if len(descs) == 0 {
			continue
		}
		fmt.Fprintf(a.out, "%s %s\n", class, descs[0].ClassName)
		for _, desc := range descs {
			fmt.Fprintf(a.out, "  %s %-30s %s\n", desc.CommandID, desc.Name, capabilities(desc.CanDecode(), desc.CanEncode()))
		}
	}
	return nil
}

// info prints the descriptor of one command.
func (a *app) info(classArg, cmdArg string) error {
	class, err := parseID(classArg)
	if err != nil {
		return fmt.Errorf("invalid class: %w", err)
	}
	cmd, err := parseID(cmdArg)
	if err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}
	desc, ok := a.d.Registry().Lookup(wire.ClassID(class), wire.CommandID(cmd))
	if !ok {
		return fmt.Errorf("%s/%s is not registered", wire.ClassID(class), wire.CommandID(cmd))
	}

	fmt.Fprintf(a.out, "Command:  %s\n", desc.FullName())
	fmt.Fprintf(a.out, "Identity: %s\n", desc.Identity())
	fmt.Fprintf(a.out, "Since:    v%d\n", desc.Version)
	fmt.Fprintf(a.out, "Codec:    %s\n", capabilities(desc.CanDecode(), desc.CanEncode()))
	return nil
}

func capabilities(dec, enc bool) string {
	switch {
	case dec && enc:
		return "decode, encode"
	case dec:
		return "decode"
	case enc:
		return "encode (no reply data on receipt)"
	default:
		return "no reply data"
	}
}

// parseID accepts "0x85", "85h" or a decimal byte.
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

// allBytes reports whether every argument is a single two-digit hex byte,
// optionally prefixed with 0x.
func allBytes(args []string) bool {
	if len(args) < 2 {
		return false
	}
	for _, a := range args {
		a = strings.TrimPrefix(strings.TrimPrefix(a, "0x"), "0X")
		if len(a) != 2 {
			return false
		}
		if _, err := strconv.ParseUint(a, 16, 8); err != nil {
			return false
		}
	}
	return true
}
