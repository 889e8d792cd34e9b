// Package main is the entry point for the Techno Groop site. It hands
// control to the CLI, which serves the site, migrates the database or seeds
// content.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"technogroop/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
