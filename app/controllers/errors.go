// Package controllers contains the HTTP handlers. Each controller wraps one
// service; handlers decode and validate the request, call the service, and
// translate failures into HTTP status codes via fail.
package controllers

import (
	"errors"
	"net/http"

	"github.com/cafedelights/api/app/repositories"
	"github.com/cafedelights/api/app/services"
	"github.com/cafedelights/api/pkg/logger"
	"github.com/cafedelights/api/pkg/response"
)

// fail maps service and storage failures onto HTTP responses. Anything
// unrecognized is a 500 with the detail logged, not leaked.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrUnauthenticated):
		response.Unauthorized(w)
	case errors.Is(err, services.ErrForbidden):
		response.Forbidden(w)
	case errors.Is(err, repositories.ErrNotFound):
		response.NotFound(w)
	case errors.Is(err, repositories.ErrDuplicateKey):
		response.Conflict(w, "Email already registered")
	default:
		logger.WithCtx(r.Context()).Error("request failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
