package http

import (
	"context"
	_ "embed"
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relabel/pkg/utils/logging"
)

//go:embed openapi.yaml
var openAPISpec []byte

// LoadOpenAPI parses and validates the embedded API document
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load OpenAPI document")
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, goerr.Wrap(err, "invalid OpenAPI document")
	}

	return doc, nil
}

// ValidationMiddleware rejects requests that do not match the OpenAPI
// document. Paths the document does not describe, such as the webhook, pass through.
func ValidationMiddleware(doc *openapi3.T) (func(next http.Handler) http.Handler, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build OpenAPI router")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) {
					next.ServeHTTP(w, r)
					return
				}
				writeError(w, goerr.Wrap(err, "no matching API operation"), http.StatusMethodNotAllowed)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				},
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				logging.From(r.Context()).Debug("Request rejected by OpenAPI validation",
					"path", r.URL.Path,
					"error", err,
				)
				writeError(w, goerr.Wrap(err, "invalid request"), http.StatusBadRequest)
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}
