package logging

import "context"

// update копирует logCtx из контекста, применяет fn и кладёт результат обратно.
func update(ctx context.Context, fn func(c *logCtx)) context.Context {
	c, _ := ctx.Value(key).(logCtx)
	fn(&c)
	return context.WithValue(ctx, key, c)
}

// WithLogRequestID добавляет request ID в контекст.
func WithLogRequestID(ctx context.Context, requestID string) context.Context {
	return update(ctx, func(c *logCtx) { c.RequestID = requestID })
}

// WithLogRequestPath добавляет путь запроса в контекст.
func WithLogRequestPath(ctx context.Context, path string) context.Context {
	return update(ctx, func(c *logCtx) { c.Path = path })
}

// WithLogRequestMethod добавляет метод запроса в контекст.
func WithLogRequestMethod(ctx context.Context, method string) context.Context {
	return update(ctx, func(c *logCtx) { c.Method = method })
}

// WithLogRequestStatus добавляет статус ответа в контекст.
func WithLogRequestStatus(ctx context.Context, status int) context.Context {
	return update(ctx, func(c *logCtx) { c.Status = status })
}

// WithLogRequestDuration добавляет длительность запроса в контекст.
func WithLogRequestDuration(ctx context.Context, duration string) context.Context {
	return update(ctx, func(c *logCtx) { c.RequestDuration = duration })
}

// WithLogCommand добавляет имя CLI-команды в контекст.
func WithLogCommand(ctx context.Context, command string) context.Context {
	return update(ctx, func(c *logCtx) { c.Command = command })
}

// WithLogParticipantsCount добавляет количество участников розыгрыша.
func WithLogParticipantsCount(ctx context.Context, cnt int) context.Context {
	return update(ctx, func(c *logCtx) { c.ParticipantsCount = cnt })
}

// WithLogPriorPairingsCount добавляет количество пар прошлого раунда.
func WithLogPriorPairingsCount(ctx context.Context, cnt int) context.Context {
	return update(ctx, func(c *logCtx) { c.PriorPairingsCount = cnt })
}

// WithLogAttempts добавляет число попыток, потребовавшихся розыгрышу.
func WithLogAttempts(ctx context.Context, attempts int) context.Context {
	return update(ctx, func(c *logCtx) { c.Attempts = attempts })
}
