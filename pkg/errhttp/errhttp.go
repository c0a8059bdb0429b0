// Package errhttp maps domain sentinel errors to HTTP responses.
// Add a case to classify for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/plantcatalog/pkg/auth"
	"github.com/ghuser/plantcatalog/pkg/httpx"
	"github.com/ghuser/plantcatalog/pkg/logger"
	catalogdomain "github.com/ghuser/plantcatalog/services/catalog/domain"
)

// Client-facing messages for mapped errors.
const (
	MsgPlantNotFound = "Plant not found"
	MsgInvalidPlant  = "Invalid plant data"
)

// Writer converts errors into JSON error responses. Server errors are logged
// and, outside development, their text is replaced with a generic message.
type Writer struct {
	log           logger.Logger
	isDevelopment bool
}

// NewWriter returns a Writer. isDevelopment exposes 5xx error text to clients.
func NewWriter(log logger.Logger, isDevelopment bool) *Writer {
	return &Writer{log: log, isDevelopment: isDevelopment}
}

// WriteError maps err to a status code and writes {"error": message}.
// Uses errors.Is/As so wrapped sentinel errors are matched correctly.
func (e *Writer) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := classify(err)
	if status >= http.StatusInternalServerError {
		e.log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		msg = httpx.SafeError(err, status, e.isDevelopment)
	}
	httpx.JSONError(w, status, msg)
}

func classify(err error) (int, string) {
	var ve *catalogdomain.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Message
	case errors.Is(err, catalogdomain.ErrInvalidPlant):
		return http.StatusBadRequest, MsgInvalidPlant
	case errors.Is(err, auth.ErrUnauthorized):
		return http.StatusUnauthorized, auth.ErrUnauthorized.Error()
	case errors.Is(err, catalogdomain.ErrPlantNotFound):
		return http.StatusNotFound, MsgPlantNotFound
	default:
		return http.StatusInternalServerError, ""
	}
}
