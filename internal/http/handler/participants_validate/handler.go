package participantsvalidate

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"secret-santa-service/internal/api"
	"secret-santa-service/internal/http/handler/common"
	"secret-santa-service/internal/service"
)

// Handler реализует POST /participants/validate: проверяет файлы без розыгрыша.
type Handler struct {
	useCase  UseCase
	maxBytes int64
}

func New(useCase UseCase, maxBytes int64) *Handler {
	return &Handler{useCase: useCase, maxBytes: maxBytes}
}

func (h *Handler) Register(router chi.Router) {
	router.Post("/validate", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	participants, prior, err := common.ReadRosterUpload(w, r, h.maxBytes)
	if err != nil {
		return err
	}
	if err := h.useCase.Validate(r.Context(), service.DrawInput{
		Participants: participants,
		Prior:        prior,
	}); err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusOK, api.ParticipantList{
		Participants:  common.FromDomainParticipants(participants),
		Count:         len(participants),
		PriorPairings: len(prior),
	})
	return nil
}
