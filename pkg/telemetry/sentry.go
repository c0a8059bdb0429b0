package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ghuser/plantcatalog/pkg/config"
)

// redactedHeaders never leave the process in a Sentry event.
var redactedHeaders = []string{"X-Admin-Key", "Authorization", "Cookie"}

// SetupSentry initializes the Sentry SDK. No-ops if DSN is empty.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		TracesSampleRate: sentrySampleRate(cfg.Environment),
		ServerName:       cfg.ServiceName,
		BeforeSend:       scrubEvent,
		Tags:             map[string]string{"store_driver": cfg.StoreDriver},
	}); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

// scrubEvent drops credentials from the captured request.
func scrubEvent(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	if event == nil || event.Request == nil {
		return event
	}
	for _, h := range redactedHeaders {
		for k := range event.Request.Headers {
			if http.CanonicalHeaderKey(k) == h {
				delete(event.Request.Headers, k)
			}
		}
	}
	event.Request.Cookies = ""
	return event
}

// sentrySampleRate traces every request outside production.
func sentrySampleRate(env string) float64 {
	if env == config.EnvProduction {
		return 0.2
	}
	return 1.0
}

// SentryFlush flushes buffered events before process exit.
func SentryFlush() {
	sentry.Flush(2 * time.Second)
}

// SentryMiddleware returns a net/http middleware that captures panics and errors.
// Repanic: true so the outer Recovery middleware still handles the 500 response.
func SentryMiddleware() func(http.Handler) http.Handler {
	h := sentryhttp.New(sentryhttp.Options{Repanic: true})
	return h.Handle
}
