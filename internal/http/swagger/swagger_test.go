package swagger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func serve(spec []byte, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	RegisterRoutes(r, spec)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestUIPointsToSpec(t *testing.T) {
	rec := serve(nil, "/swagger")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "url: '/swagger/openapi.yml'")
}

func TestSpecServedAsYAML(t *testing.T) {
	rec := serve([]byte("openapi: 3.0.3\n"), "/swagger/openapi.yml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Equal(t, "openapi: 3.0.3\n", rec.Body.String())
}

func TestMissingSpecIsNoContent(t *testing.T) {
	rec := serve(nil, "/swagger/openapi.yml")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}
