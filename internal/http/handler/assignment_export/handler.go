package assignmentexport

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"secret-santa-service/internal/http/handler/common"
	"secret-santa-service/internal/roster"
	"secret-santa-service/internal/service"
)

// Handler реализует POST /assignments/csv: принимает CSV-файлы и отдаёт результат файлом.
type Handler struct {
	useCase  UseCase
	maxBytes int64
}

func New(useCase UseCase, maxBytes int64) *Handler {
	return &Handler{useCase: useCase, maxBytes: maxBytes}
}

func (h *Handler) Register(router chi.Router) {
	router.Post("/csv", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	participants, prior, err := common.ReadRosterUpload(w, r, h.maxBytes)
	if err != nil {
		return err
	}
	assignment, err := h.useCase.Draw(r.Context(), service.DrawInput{
		Participants: participants,
		Prior:        prior,
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := roster.WriteAssignments(&buf, assignment.Pairings); err != nil {
		return fmt.Errorf("write assignments csv: %w", err)
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", roster.ExportFileName(assignment.GeneratedAt)))
	w.Header().Set("X-Draw-Attempts", strconv.Itoa(assignment.Attempts))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
	return nil
}
