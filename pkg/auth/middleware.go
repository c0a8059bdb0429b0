package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/ghuser/plantcatalog/pkg/httpx"
	"github.com/ghuser/plantcatalog/pkg/logger"
)

// HeaderAdminKey carries the shared admin secret on mutating requests.
const HeaderAdminKey = "X-Admin-Key"

// RequireAdminKey is a chi middleware that gates a route on the X-Admin-Key
// header. The comparison is constant-time. An empty expected key rejects
// every request. It runs before the handler, so the body is never read for
// unauthorized callers.
//
// After this middleware, auth.IsAdmin(r.Context()) is true.
func RequireAdminKey(expected string, log logger.Logger) func(http.Handler) http.Handler {
	want := []byte(expected)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(HeaderAdminKey)
			if len(want) == 0 || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
				log.WarnContext(r.Context(), "admin key rejected",
					"path", r.URL.Path,
					"key_present", got != "",
				)
				httpx.JSONError(w, http.StatusUnauthorized, ErrUnauthorized.Error())
				return
			}
			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context())))
		})
	}
}
