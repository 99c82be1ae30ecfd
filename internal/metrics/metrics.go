// Package metrics exposes Prometheus counters for the upload pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-photo-gate/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "photo_gate"

// Compensation shapes reported by [Metrics.ObserveCompensation].
const (
	ShapeInvalidPost    = "invalid_post"
	ShapeFailedPost     = "failed_post"
	ShapeBareAttachment = "bare_attachment"
)

// Metrics holds the pipeline collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	admissions       *prometheus.CounterVec
	validations      *prometheus.CounterVec
	compensations    *prometheus.CounterVec
	completedUploads prometheus.Counter
	reasonsPurged    prometheus.Counter
	requestDuration  *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New registers the collectors on registry.
func New(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		admissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admission_decisions_total",
			Help:      "Admission decisions by result and rejection reason",
		}, []string{"result", "reason"}),

		validations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "post_storage_validations_total",
			Help:      "Post-storage validation results",
		}, []string{"result", "reason"}),

		compensations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compensations_total",
			Help:      "Compensating deletions by failure shape",
		}, []string{"shape"}),

		completedUploads: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_completed_total",
			Help:      "Uploads stored, validated and finalized",
		}),

		reasonsPurged: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejection_reasons_purged_total",
			Help:      "Expired rejection reasons removed by the cleanup worker",
		}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),

		gatherer: registry,
	}
}

func (m *Metrics) ObserveAdmission(d models.Decision) {
	if m == nil {
		return
	}
	result := "allowed"
	if !d.Allowed {
		result = "denied"
	}
	m.admissions.WithLabelValues(result, d.Reason.String()).Inc()
}

func (m *Metrics) ObserveValidation(v models.Validation) {
	if m == nil {
		return
	}
	result := "valid"
	if !v.Valid {
		result = "invalid"
	}
	m.validations.WithLabelValues(result, v.Reason.String()).Inc()
}

func (m *Metrics) ObserveCompensation(shape string) {
	if m == nil {
		return
	}
	m.compensations.WithLabelValues(shape).Inc()
}

func (m *Metrics) ObserveCompletedUpload() {
	if m == nil {
		return
	}
	m.completedUploads.Inc()
}

func (m *Metrics) ObservePurgedReasons(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.reasonsPurged.Add(float64(n))
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
