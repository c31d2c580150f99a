// Package main is the entry point for the ttask CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ttask/internal/cli"
	"ttask/internal/commands"

	// Import all command packages to register them via init()
	_ "ttask/internal/commands"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, cli.DefaultStoreFactory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
