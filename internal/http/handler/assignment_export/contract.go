package assignmentexport

import (
	"context"

	"secret-santa-service/internal/domain"
	"secret-santa-service/internal/service"
)

type UseCase interface {
	Draw(ctx context.Context, input service.DrawInput) (domain.Assignment, error)
}
