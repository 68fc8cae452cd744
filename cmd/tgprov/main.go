// Package main is the entry point for the tgprov CLI.
//
// tgprov looks up a remote network in a Twingate-style access-control
// service and creates one resource for each public and private address of
// its connectors.
//
// Commands: apply, plan, networks, init, version, completion.
//
// For detailed usage information, run:
//
//	tgprov --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/imamik/tgprov/cmd/tgprov/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
