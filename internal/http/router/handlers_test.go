package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"secret-santa-service/internal/assigner"
	"secret-santa-service/internal/infrastructure/nower"
	"secret-santa-service/internal/infrastructure/randomizer"
	"secret-santa-service/internal/service"
)

func TestRouterProvidesHealthAndMetrics(t *testing.T) {
	h := New(&service.Service{}, nil, 1<<20)
	handler := h.Router()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "secret_santa_http_requests_total")
}

func TestRouterServesSwaggerSpec(t *testing.T) {
	handler := New(&service.Service{}, []byte("openapi: 3.0.3\n"), 1<<20).Router()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/openapi.yml", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "openapi: 3.0.3\n", rec.Body.String())

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Secret Santa")
}

func TestRouterRoutesAssignments(t *testing.T) {
	svc := service.New(assigner.New(randomizer.NewSeeded(7)), nower.New())
	handler := New(svc, nil, 1<<20).Router()

	body := `{"participants":[{"name":"Alice","email":"a@x"},{"name":"Bob","email":"b@x"}]}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/assignments", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"receiver_email"`)
}
