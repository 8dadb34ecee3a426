package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MarcinKonowalczyk/bfvm/bf"
	bf_shim "github.com/MarcinKonowalczyk/bfvm/shim"

	"github.com/containerd/containerd/v2/pkg/shim"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Maybe hijack the shim to run as the brainfuck interpreter. The
	// task service starts the container init process by re-executing
	// this binary with the "brainfuck" argument.
	brainfuck, args := isBrainfuckArg(os.Args[1:])

	if brainfuck {
		if err := runBrainfuck(ctx, args); err != nil {
			fmt.Fprintln(os.Stderr, "Error running brainfuck:", err)
			os.Exit(1)
		}
	} else {
		shim.Run(ctx, bf_shim.NewManager("io.containerd.bf.v1"))
	}
}

///////////////

var filename string

func isBrainfuckArg(args []string) (bool, []string) {
	for i, arg := range args {
		if arg == "brainfuck" {
			return true, append(args[:i], args[i+1:]...)
		}
	}
	return false, args
}

func parseBrainfuckFlags(args []string) error {
	my_flagset := flag.NewFlagSet("brainfuck", flag.ExitOnError)
	my_flagset.StringVar(&filename, "file", "", "brainfuck source file")
	return my_flagset.Parse(args)
}

func runBrainfuck(ctx context.Context, args []string) error {
	if err := parseBrainfuckFlags(args); err != nil {
		return err
	}

	if filename == "" {
		return fmt.Errorf("invalid argument: -file is required")
	}

	source, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	return bf.RunContext(ctx, string(source), os.Stdin, os.Stdout)
}
