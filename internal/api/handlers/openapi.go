package handlers

import (
	_ "embed"
	"net/http"
)

//go:embed openapi/swagger.json
var openAPIDocument []byte

// OpenAPI serves the static API description.
func OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openAPIDocument)
}
