package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	RegionEvents        *prometheus.CounterVec
	Activations         prometheus.Counter
	IgnoredActivations  *prometheus.CounterVec
	NotificationFailure prometheus.Counter
	RegistrationFailure prometheus.Counter
	RegisteredRegions   prometheus.Gauge
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		RegionEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "georemind_region_events_total",
			Help: "Total number of region events received, by event type",
		}, []string{"type"}),
		Activations: factory.NewCounter(prometheus.CounterOpts{
			Name: "georemind_activations_total",
			Help: "Total number of reminder activations recorded",
		}),
		IgnoredActivations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "georemind_ignored_region_events_total",
			Help: "Total number of region events that did not activate a reminder, by reason",
		}, []string{"reason"}),
		NotificationFailure: factory.NewCounter(prometheus.CounterOpts{
			Name: "georemind_notification_failures_total",
			Help: "Total number of notifications that could not be presented",
		}),
		RegistrationFailure: factory.NewCounter(prometheus.CounterOpts{
			Name: "georemind_registration_failures_total",
			Help: "Total number of region registrations rejected by the monitor",
		}),
		RegisteredRegions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "georemind_registered_regions",
			Help: "Number of regions registered at the monitor",
		}),
	}
}

func (m *Metrics) RegionEventReceived(eventType string) {
	m.RegionEvents.WithLabelValues(eventType).Inc()
}

func (m *Metrics) ActivationRecorded() {
	m.Activations.Inc()
}

func (m *Metrics) ActivationIgnored(reason string) {
	m.IgnoredActivations.WithLabelValues(reason).Inc()
}

func (m *Metrics) NotificationFailed() {
	m.NotificationFailure.Inc()
}

func (m *Metrics) RegistrationFailed() {
	m.RegistrationFailure.Inc()
}

func (m *Metrics) SetRegisteredRegions(count int) {
	m.RegisteredRegions.Set(float64(count))
}

// Handler exposes the metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
