package logging

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"runtime"
)

type keyType int

const key = keyType(0)

// logCtx содержит контекстную информацию для логирования.
// Имя атрибута в записи берётся из тега log; нулевые значения не пишутся.
type logCtx struct {
	RequestID          string `log:"request_id"`
	Status             int    `log:"status"`
	RequestDuration    string `log:"duration"`
	Method             string `log:"method"`
	Path               string `log:"path"`
	Command            string `log:"command"`
	ParticipantsCount  int    `log:"participants_count"`
	PriorPairingsCount int    `log:"prior_pairings_count"`
	Attempts           int    `log:"attempts"`
}

// attrs возвращает непустые поля logCtx в виде атрибутов slog.
func (c logCtx) attrs() []slog.Attr {
	v := reflect.ValueOf(c)
	t := v.Type()
	out := make([]slog.Attr, 0, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if field.IsZero() {
			continue
		}
		out = append(out, slog.Any(t.Field(i).Tag.Get("log"), field.Interface()))
	}
	return out
}

// fillFrom заполняет нулевые поля c значениями из other.
func (c *logCtx) fillFrom(other logCtx) {
	dst := reflect.ValueOf(c).Elem()
	src := reflect.ValueOf(other)
	for i := 0; i < dst.NumField(); i++ {
		if dst.Field(i).IsZero() {
			dst.Field(i).Set(src.Field(i))
		}
	}
}

// LoggerImpl оборачивает slog.Handler для добавления контекстной информации.
type LoggerImpl struct {
	next slog.Handler
}

func NewLoggerImpl(next slog.Handler) *LoggerImpl {
	return &LoggerImpl{next: next}
}

// Enabled проверяет, включён ли указанный уровень логирования.
func (h *LoggerImpl) Enabled(ctx context.Context, rec slog.Level) bool {
	return h.next.Enabled(ctx, rec)
}

// Handle обрабатывает запись лога, добавляя контекстную информацию.
func (h *LoggerImpl) Handle(ctx context.Context, rec slog.Record) error {
	if c, ok := ctx.Value(key).(logCtx); ok {
		rec.AddAttrs(c.attrs()...)
	}

	if rec.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{rec.PC})
		f, _ := fs.Next()
		rec.Add("source", fmt.Sprintf("%s:%d", f.File, f.Line))
	}

	return h.next.Handle(ctx, rec)
}

// WithAttrs добавляет атрибуты к следующему обработчику.
func (h *LoggerImpl) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LoggerImpl{next: h.next.WithAttrs(attrs)}
}

// WithGroup добавляет группу к следующему обработчику.
func (h *LoggerImpl) WithGroup(name string) slog.Handler {
	return &LoggerImpl{next: h.next.WithGroup(name)}
}
