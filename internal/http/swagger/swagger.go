// Package swagger отдаёт OpenAPI-спецификацию сервиса и страницу Swagger UI к ней.
package swagger

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	uiPath   = "/swagger"
	specPath = "/swagger/openapi.yml"
)

var uiPage = fmt.Sprintf(`<!DOCTYPE html>
<html lang="ru">
<head>
  <meta charset="UTF-8">
  <title>Secret Santa Service · Swagger</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => {
      window.ui = SwaggerUIBundle({ url: '%s', dom_id: '#swagger-ui' });
    };
  </script>
</body>
</html>`, specPath)

// RegisterRoutes подключает Swagger UI и спецификацию. Без спецификации отвечает 204.
func RegisterRoutes(r chi.Router, spec []byte) {
	r.Get(uiPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(uiPage))
	})
	r.Get(specPath, func(w http.ResponseWriter, _ *http.Request) {
		if len(spec) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec)
	})
}
