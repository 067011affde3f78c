package http

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
)

//go:embed openapi.yaml
var openapiYAML []byte

// rawSpec returns the OpenAPI document served at /openapi.yaml.
func rawSpec() ([]byte, error) {
	return openapiYAML, nil
}

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, fmt.Errorf("load openapi spec: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid openapi spec: %w", err)
	}
	return doc, nil
}

// newSpecRouter maps incoming requests to operations of the document.
func newSpecRouter(doc *openapi3.T) (routers.Router, error) {
	return legacyrouter.NewRouter(doc)
}

// validateRequests rejects requests that do not match the OpenAPI document
// with 400. Requests for paths the document does not describe pass through.
func validateRequests(router routers.Router, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				logger.Warn("Request rejected by schema", "path", r.URL.Path, "error", err)
				writeError(w, http.StatusBadRequest, err.Error(), "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
