// Package cli реализует офлайн-утилиту santa: розыгрыш и проверка CSV-файлов без HTTP-сервера.
package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"secret-santa-service/internal/domain"
	"secret-santa-service/internal/logging"
)

// Коды завершения процесса.
const (
	ExitOK         = 0
	ExitError      = 1
	ExitInfeasible = 2
)

// RootOptions хранит глобальные флаги.
type RootOptions struct {
	LogLevel string
}

// NewRootCommand создаёт корневую команду santa.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "santa",
		Short: "Secret Santa assignments from CSV rosters",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cmd.ErrOrStderr(), opts.LogLevel)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level (debug|info|warn|error)")

	cmd.AddCommand(NewDrawCommand())
	cmd.AddCommand(NewValidateCommand())

	return cmd
}

// ExitCode возвращает код завершения для ошибки команды.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrAssignmentInfeasible):
		return ExitInfeasible
	default:
		return ExitError
	}
}

// setupLogger направляет логи в w через tint, сохраняя контекстные поля logging.
// Цвета включаются только для терминала.
func setupLogger(w io.Writer, level string) {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      logging.ParseLevel(level),
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(w),
	})
	slog.SetDefault(slog.New(logging.NewLoggerImpl(handler)))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
