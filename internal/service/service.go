package service

import (
	"context"
	"errors"
	"log/slog"

	"secret-santa-service/internal/assigner"
	"secret-santa-service/internal/domain"
	"secret-santa-service/internal/infrastructure/nower"
	"secret-santa-service/internal/logging"
	"secret-santa-service/internal/metrics"
)

// Engine описывает движок распределения, который требуется сервису.
type Engine interface {
	Assign(participants []domain.Participant, prior []domain.Pairing) (assigner.Result, error)
}

// Service агрегирует бизнес-логику розыгрыша.
type Service struct {
	engine Engine
	nower  nower.Nower
}

func New(engine Engine, nower nower.Nower) *Service {
	return &Service{
		engine: engine,
		nower:  nower,
	}
}

// DrawInput описывает вход розыгрыша: участники и пары прошлого раунда (могут отсутствовать).
type DrawInput struct {
	Participants []domain.Participant
	Prior        []domain.Pairing
}

// Draw проверяет вход и проводит розыгрыш.
// Движок повторяет попытки сам; при исчерпании лимита возвращается domain.ErrAssignmentInfeasible
// без частичного результата.
func (s *Service) Draw(ctx context.Context, input DrawInput) (domain.Assignment, error) {
	ctx = logging.WithLogParticipantsCount(ctx, len(input.Participants))
	ctx = logging.WithLogPriorPairingsCount(ctx, len(input.Prior))

	input = normalizeInput(input)
	if err := s.Validate(ctx, input); err != nil {
		metrics.IncDrawsRejected()
		return domain.Assignment{}, logging.WrapError(ctx, err)
	}

	result, err := s.engine.Assign(input.Participants, input.Prior)
	if err != nil {
		if errors.Is(err, domain.ErrAssignmentInfeasible) {
			metrics.IncDrawsInfeasible()
		}
		return domain.Assignment{}, logging.WrapError(ctx, err)
	}

	ctx = logging.WithLogAttempts(ctx, result.Attempts)
	metrics.ObserveDrawSucceeded(len(result.Pairings), result.Attempts)
	slog.InfoContext(ctx, "draw completed")

	return domain.Assignment{
		Pairings:    result.Pairings,
		Attempts:    result.Attempts,
		GeneratedAt: s.nower.Now(),
	}, nil
}

// Validate проверяет вход розыгрыша, не запуская движок.
func (s *Service) Validate(ctx context.Context, input DrawInput) error {
	if err := ValidateParticipants(input.Participants); err != nil {
		return err
	}
	if err := ValidatePriorPairings(input.Prior); err != nil {
		return err
	}
	slog.DebugContext(ctx, "draw input is valid",
		"participants", len(input.Participants),
		"prior_pairings", len(input.Prior),
	)
	return nil
}

// HealthCheck возвращает состояние зависимостей сервиса.
// Внешних зависимостей нет, поэтому сервис всегда здоров.
func (s *Service) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}
