package participantsvalidate

import (
	"context"

	"secret-santa-service/internal/service"
)

type UseCase interface {
	Validate(ctx context.Context, input service.DrawInput) error
}
