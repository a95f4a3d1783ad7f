// Package metrics exports coordinator counters to Prometheus.
package metrics

import (
	"strconv"

	"carebridge/internal/domain/entity"
	"carebridge/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

const namespace = "carebridge"

// Prometheus implements service.CoordinatorMetrics.
type Prometheus struct {
	notificationsDelivered *prometheus.CounterVec
	notificationsDropped   *prometheus.CounterVec
	submissionsFinished    *prometheus.CounterVec
	mediaUploads           *prometheus.CounterVec
}

// NewPrometheus registers the coordinator counters on reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	m := &Prometheus{
		notificationsDelivered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "notifications_delivered_total",
			Help:      "Notifications handed to the push sink, by action kind.",
		}, []string{"kind"}),
		notificationsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "notifications_dropped_total",
			Help:      "Change-feed events that produced no notification, by reason.",
		}, []string{"reason"}),
		submissionsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "submission",
			Name:      "finished_total",
			Help:      "Submission flows reaching a terminal transition, by outcome.",
		}, []string{"outcome"}),
		mediaUploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "media",
			Name:      "uploads_total",
			Help:      "Media uploads, by action kind and result.",
		}, []string{"kind", "success"}),
	}

	reg.MustRegister(
		m.notificationsDelivered,
		m.notificationsDropped,
		m.submissionsFinished,
		m.mediaUploads,
	)

	return m
}

func (m *Prometheus) NotificationDelivered(kind entity.ActionKind) {
	m.notificationsDelivered.WithLabelValues(string(kind)).Inc()
}

func (m *Prometheus) NotificationDropped(reason string) {
	m.notificationsDropped.WithLabelValues(reason).Inc()
}

func (m *Prometheus) SubmissionFinished(outcome string) {
	m.submissionsFinished.WithLabelValues(outcome).Inc()
}

func (m *Prometheus) MediaUploaded(kind entity.ActionKind, success bool) {
	m.mediaUploads.WithLabelValues(string(kind), strconv.FormatBool(success)).Inc()
}

// Noop discards every measurement.
type Noop struct{}

func (Noop) NotificationDelivered(entity.ActionKind) {}
func (Noop) NotificationDropped(string)              {}
func (Noop) SubmissionFinished(string)               {}
func (Noop) MediaUploaded(entity.ActionKind, bool)   {}

// NewRegistry builds the registry served on /metrics, with Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

func newCoordinatorMetrics(reg *prometheus.Registry) service.CoordinatorMetrics {
	return NewPrometheus(reg)
}

// Module provides the registry and the coordinator metrics.
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		newCoordinatorMetrics,
	),
)
