package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"secret-santa-service/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		slog.Error("santa failed", "error", err)
		cancel()
		os.Exit(cli.ExitCode(err))
	}
}
