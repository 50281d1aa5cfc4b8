package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// interactive runs a readline session until quit or EOF.
func (a *app) interactive() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "zwave> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("decode"),
			readline.PcItem("list"),
			readline.PcItem("info"),
			readline.PcItem("help"),
			readline.PcItem("quit"),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	a.out = rl.Stdout()
	a.printHelp()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return nil
		}
		if !a.execute(line) {
			return nil
		}
	}
}

// execute runs one interactive command. It returns false on quit.
func (a *app) execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		a.printHelp()

	case "decode", "d":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: decode <hex frame>")
			break
		}
		_ = a.decode(strings.Join(args, ""))

	case "list", "ls":
		classArg := ""
		if len(args) > 0 {
			classArg = args[0]
		}
		if err := a.list(classArg); err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}

	case "info", "i":
		if len(args) != 2 {
			fmt.Fprintln(a.out, "Usage: info <class> <command>")
			break
		}
		if err := a.info(args[0], args[1]); err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}

	case "quit", "exit", "q":
		return false

	default:
		// Bare hex is decoded directly.
		if _, err := wire.ParseHex(input); err == nil {
			_ = a.decode(input)
			break
		}
		fmt.Fprintf(a.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (a *app) printHelp() {
	fmt.Fprintln(a.out, `
Z-Wave Decoder Commands:
  decode <hex>            - Decode a frame, e.g. decode 85 03 01 04 00 05 07
  <hex>                   - Same as decode
  list [class]            - List registered commands
  info <class> <command>  - Show one command, e.g. info 0x85 0x03
  help                    - Show this help
  quit                    - Exit`)
}
