package common

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"

	"secret-santa-service/internal/domain"
	"secret-santa-service/internal/logging"
	"secret-santa-service/internal/roster"
)

func TestRespondJSONWritesBodyAndStatus(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, http.StatusAccepted, map[string]string{"ok": "true"})

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body map[string]string
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&body))
	require.Equal(t, "true", body["ok"])
}

func TestWithErrorHandlingReturnsHTTPError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	handler := WithErrorHandling(func(http.ResponseWriter, *http.Request) error {
		return NewHTTPError(http.StatusTeapot, "CUSTOM", "boom")
	})
	handler(rec, req)

	require.Equal(t, http.StatusTeapot, rec.Code)
	var apiErr APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	require.Equal(t, "CUSTOM", apiErr.Error.Code)
	require.Equal(t, "boom", apiErr.Error.Message)
}

func TestWithErrorHandlingFallsBackToDomainErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), chimw.RequestIDKey, "req-1"))

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not enough", fmt.Errorf("%w: got 1", domain.ErrNotEnoughParticipants), http.StatusBadRequest, "NOT_ENOUGH_PARTICIPANTS"},
		{"duplicate", domain.ErrDuplicateParticipant, http.StatusBadRequest, "DUPLICATE_PARTICIPANT"},
		{"file absent", domain.ErrParticipantsFileAbsent, http.StatusBadRequest, "FILE_REQUIRED"},
		{"csv row", &roster.ValidationError{Row: 3, Field: roster.ColumnEmail, Reason: "value is empty"}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"infeasible", logging.WrapError(context.Background(), domain.ErrAssignmentInfeasible), http.StatusUnprocessableEntity, "ASSIGNMENT_INFEASIBLE"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler := WithErrorHandling(func(http.ResponseWriter, *http.Request) error {
				return tc.err
			})
			handler(rec, req)

			require.Equal(t, tc.status, rec.Code)
			var apiErr APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
			require.Equal(t, tc.code, apiErr.Error.Code)
			require.Equal(t, tc.err.Error(), apiErr.Error.Message)
		})
	}
}

func TestWriteDomainErrorUnknownError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	WriteDomainError(rec, req, errors.New("unexpected"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var apiErr APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	require.Equal(t, "INTERNAL_ERROR", apiErr.Error.Code)
	require.Equal(t, "internal server error", apiErr.Error.Message)
}
