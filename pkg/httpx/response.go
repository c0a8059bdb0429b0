package httpx

import (
	"encoding/json"
	"net/http"
)

// ServerErrorMessage replaces 5xx error text outside development.
const ServerErrorMessage = "Server Error"

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// silently discarded; use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes a standard {"error": message} JSON response.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// SafeError returns the error message for client responses. Server errors
// (5xx) are replaced with ServerErrorMessage unless isDevelopment is set.
func SafeError(err error, status int, isDevelopment bool) string {
	if !isDevelopment && status >= http.StatusInternalServerError {
		return ServerErrorMessage
	}
	return err.Error()
}

// NotFound writes the JSON 404 for unmatched routes.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	JSONError(w, http.StatusNotFound, "Route not found")
}

// MethodNotAllowed writes the JSON 405 for a known route with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	JSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
