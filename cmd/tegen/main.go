package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Cancel the database copy on shutdown signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := NewCLI(os.Stderr).Run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
