package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MarcinKonowalczyk/bfvm/bf"

	"github.com/containerd/log"
	"github.com/mattn/go-isatty"
)

var (
	filename string
	options  string
	tapeSize int
	tapeGrow int
	debug    bool
)

func init() {
	flag.StringVar(&filename, "file", "", "brainfuck source file")
	flag.StringVar(&options, "options", "", "interpreter options file (yaml)")
	flag.IntVar(&tapeSize, "tape", 0, "initial tape length in cells (0 = default)")
	flag.IntVar(&tapeGrow, "grow", 0, "tape growth increment in cells (0 = default)")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage:\n\t%s [flags] <code>\n\t%s [flags] -file <file>\nFlags:\n", os.Args[0], os.Args[0])
	flag.PrintDefaults()
}

// The source comes either from -file or from the remaining arguments
// joined by spaces. PreLex throws away everything which is not one of
// the eight symbols, so quoting is forgiving.
func loadSource(args []string) (string, error) {
	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return "", fmt.Errorf("reading source file: %w", err)
		}
		return string(data), nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("no code given")
	}
	return strings.Join(args, " "), nil
}

func loadConfig() (bf.Config, error) {
	config := bf.DefaultConfig()
	if options != "" {
		var err error
		config, err = bf.LoadConfig(options)
		if err != nil {
			return config, err
		}
	}
	// Flags win over the options file
	if tapeSize > 0 {
		config.TapeSize = tapeSize
	}
	if tapeGrow > 0 {
		config.TapeGrow = tapeGrow
	}
	return config, nil
}

func run(ctx context.Context) error {
	source, err := loadSource(flag.Args())
	if err != nil {
		usage()
		return err
	}

	config, err := loadConfig()
	if err != nil {
		return err
	}

	program, err := bf.Compile(bf.Lex(bf.PreLex(source)))
	if err != nil {
		return err
	}
	log.G(ctx).Debugf("compiled %d instructions", len(program))

	interpreter := bf.NewInterpreter(program, os.Stdin, os.Stdout, config)
	if err := interpreter.RunContext(ctx); err != nil {
		return err
	}
	log.G(ctx).Debugf("done, tape grew to %d cells", interpreter.MemoryLength())

	// Don't leave an interactive shell prompt glued to the output
	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println()
	}
	return nil
}

func main() {
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if debug {
		if err := log.SetLevel("debug"); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
