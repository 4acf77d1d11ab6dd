// Package main is the entry point for the tracklet CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"tracklet/internal/cli"
	"tracklet/internal/commands"
	"tracklet/internal/config"
	"tracklet/internal/exitcode"
	"tracklet/internal/scheduler"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	fs := flag.NewFlagSet("tracklet", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // errors are reported below
	quiet := fs.Bool("quiet", false, "suppress the prompt and informational output")
	debug := fs.Bool("debug", false, "echo parsed commands to stderr")
	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitcode.UserError)
	}

	cfg := &config.Config{Quiet: *quiet, Debug: *debug}
	sched := scheduler.New(os.Stdout)
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry)

	args := fs.Args()
	var code int
	if len(args) == 0 {
		repl := cli.NewREPL(dispatcher, cfg, sched)
		code = repl.Run(ctx, os.Stdin, os.Stdout, os.Stderr)
	} else {
		code = dispatcher.Dispatch(ctx, cfg, sched, args[0], args[1:], os.Stdout, os.Stderr)
	}
	os.Exit(code)
}
