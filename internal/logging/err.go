package logging

import (
	"context"
	"errors"
)

// ctxError переносит поля логирования вместе с ошибкой между слоями.
type ctxError struct {
	err    error
	fields logCtx
}

func (e *ctxError) Error() string {
	return e.err.Error()
}

func (e *ctxError) Unwrap() error {
	return e.err
}

// WrapError запоминает поля логирования из ctx. Для nil возвращает nil.
func WrapError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	fields, _ := ctx.Value(key).(logCtx)
	return &ctxError{err: err, fields: fields}
}

// ErrorCtx дополняет ctx полями, сохранёнными в ошибке.
// Поля, уже заданные в ctx, не перезаписываются.
func ErrorCtx(ctx context.Context, err error) context.Context {
	var e *ctxError
	if !errors.As(err, &e) {
		return ctx
	}
	return update(ctx, func(c *logCtx) { c.fillFrom(e.fields) })
}
