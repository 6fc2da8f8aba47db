// Package metrics exposes Prometheus counters for HTTP traffic and domain operations.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"zeneasy/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "zeneasy"

// Recorder owns a private registry and every collector registered on it.
// It implements service.MetricsRecorder.
type Recorder struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	otpIssued           *prometheus.CounterVec
	otpValidated        *prometheus.CounterVec
	linksCompleted      *prometheus.CounterVec
	ratingsAppended     prometheus.Counter
	pushesSent          *prometheus.CounterVec
}

var _ service.MetricsRecorder = (*Recorder)(nil)

// New creates the recorder with Go runtime and process collectors included.
func New() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		otpIssued: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_issued_total",
			Help:      "One-time codes issued, by outcome",
		}, []string{"outcome"}),
		otpValidated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_validations_total",
			Help:      "One-time code validations, by outcome",
		}, []string{"outcome"}),
		linksCompleted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "owner_links_total",
			Help:      "Child creations linked to an owner, by kind and outcome",
		}, []string{"kind", "outcome"}),
		ratingsAppended: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratings_appended_total",
			Help:      "Ratings appended to service profiles",
		}),
		pushesSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_notifications_total",
			Help:      "Push notifications delivered by the worker, by outcome",
		}, []string{"outcome"}),
	}
}

// Registerer exposes the registry for collectors owned by other packages.
func (r *Recorder) Registerer() prometheus.Registerer {
	return r.registry
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// OTPIssued counts one code generation attempt.
func (r *Recorder) OTPIssued(outcome string) {
	r.otpIssued.WithLabelValues(outcome).Inc()
}

// OTPValidated counts one code validation attempt.
func (r *Recorder) OTPValidated(outcome string) {
	r.otpValidated.WithLabelValues(outcome).Inc()
}

// LinkCompleted counts one linked creation.
func (r *Recorder) LinkCompleted(kind, outcome string) {
	r.linksCompleted.WithLabelValues(kind, outcome).Inc()
}

// RatingAppended counts one stored rating.
func (r *Recorder) RatingAppended() {
	r.ratingsAppended.Inc()
}

// PushesSent adds delivered and failed push notifications.
func (r *Recorder) PushesSent(success, failure int) {
	r.pushesSent.WithLabelValues(service.OutcomeSuccess).Add(float64(success))
	r.pushesSent.WithLabelValues(service.OutcomeFailure).Add(float64(failure))
}

// Middleware observes every request under its route template, so path
// parameters do not explode label cardinality.
func (r *Recorder) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			labels := []string{c.Request().Method, route, strconv.Itoa(status)}
			r.httpRequestsTotal.WithLabelValues(labels...).Inc()
			r.httpRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
