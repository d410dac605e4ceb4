// Package metrics holds the process-wide prometheus collectors. Collectors
// are registered once on the default registry and shared by every package
// that reports into them.
package metrics

import (
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for apiclient_requests_total.
const (
	OutcomeOK           = "ok"
	OutcomeUnauthorized = "unauthorized"
	OutcomeRejected     = "rejected"
	OutcomeError        = "error"
)

type Collectors struct {
	APIRequests        *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec
	DocumentsAmbiguous prometheus.Counter
	BlogFallback       prometheus.Counter
	SessionLogins      prometheus.Counter
	SessionLogouts     prometheus.Counter
	ContactPublished   *prometheus.CounterVec
	InquiriesStored    *prometheus.CounterVec
}

var collectors = sync.OnceValue(func() *Collectors {
	return &Collectors{
		APIRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "apiclient",
			Name:      "requests_total",
			Help:      "Backend API calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		APIRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "apiclient",
			Name:      "request_duration_seconds",
			Help:      "Latency of backend API calls.",
			Buckets: []float64{
				0.01, 0.02, 0.05,
				0.1, 0.2, 0.5,
				1, 2, 5, 10, 15,
			},
		}, []string{"operation"}),
		DocumentsAmbiguous: promauto.NewCounter(prometheus.CounterOpts{
			Name: "documents_ambiguous_total",
			Help: "Document fetches that returned more than one document for a user.",
		}),
		BlogFallback: promauto.NewCounter(prometheus.CounterOpts{
			Name: "blog_fallback_total",
			Help: "Blog listings served from the built-in article set.",
		}),
		SessionLogins: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "session",
			Name:      "logins_total",
			Help:      "Browser sessions that transitioned to logged in.",
		}),
		SessionLogouts: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "session",
			Name:      "logouts_total",
			Help:      "Browser sessions that transitioned to logged out.",
		}),
		ContactPublished: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contact",
			Name:      "published_total",
			Help:      "Contact inquiry events handed to the broker.",
		}, []string{"result"}),
		InquiriesStored: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contact",
			Name:      "inquiries_stored_total",
			Help:      "Contact inquiries consumed by the worker.",
		}, []string{"result"}),
	}
})

// Get returns the shared collectors, registering them on first use.
func Get() *Collectors { return collectors() }

// Handler serves the default gatherer in the prometheus text format.
func Handler() echo.HandlerFunc {
	Get()
	return echo.WrapHandler(promhttp.Handler())
}
