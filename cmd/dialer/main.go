package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"outbound-dialer/internal/cli"
)

func main() {
	// Root context that cancels on interrupt; the dispatcher stops
	// admitting new calls once it fires.
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(rootCtx); err != nil {
		slog.Error("dialer failed", "err", err)
		os.Exit(1)
	}
}
