package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"secret-santa-service/internal/app"
	"secret-santa-service/internal/config"
	"secret-santa-service/internal/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.MustLoad()
	cleanup, err := setupLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "setup logger: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := app.New(cfg).Run(ctx); err != nil {
		slog.Error("application stopped with error", "error", err)
		cleanup()
		os.Exit(1)
	}
}

// setupLogger ставит JSON-логгер по умолчанию с контекстными полями logging.
// Возвращаемая функция закрывает файл логов, если он использовался.
func setupLogger(cfg config.Config) (func(), error) {
	writer, closeFn, err := openLogOutput(cfg.Logging.Output)
	if err != nil {
		return nil, err
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.Logging.Level),
	})
	slog.SetDefault(slog.New(logging.NewLoggerImpl(handler)))
	return closeFn, nil
}

// openLogOutput понимает stdout, stderr или путь до файла (директория создаётся).
func openLogOutput(output string) (io.Writer, func(), error) {
	noop := func() {}
	switch strings.ToLower(output) {
	case "stdout", "":
		return os.Stdout, noop, nil
	case "stderr":
		return os.Stderr, noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
