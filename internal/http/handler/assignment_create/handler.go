package assignmentcreate

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"secret-santa-service/internal/api"
	"secret-santa-service/internal/http/handler/common"
	"secret-santa-service/internal/service"
)

// Handler реализует POST /assignments.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Post("/", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	var req api.DrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return common.NewBadRequestError("INVALID_BODY", "не удалось прочитать тело запроса")
	}
	assignment, err := h.useCase.Draw(r.Context(), service.DrawInput{
		Participants: common.ToDomainParticipants(req.Participants),
		Prior:        common.ToDomainPairings(req.PriorPairings),
	})
	if err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusCreated, map[string]api.Assignment{
		"assignment": common.FromDomainAssignment(assignment),
	})
	return nil
}
