package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lazypager/internal/cli"
)

// main lets `go run .` start the pager from the repository root
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
