// Package metrics records settings processing metrics in a Prometheus registry.
package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/zerr"
)

const namespace = "weave"

// PrometheusRecorder implements ports.MetricsRecorder.
type PrometheusRecorder struct {
	reg              *prom.Registry
	settingsDuration *prom.HistogramVec
	settingsOutcome  *prom.CounterVec
	cachePublished   prom.Counter
	cacheAdopted     prom.Counter
}

// NewPrometheusRecorder registers the settings metrics in reg.
// A nil registry is replaced by a fresh one.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	pr := &PrometheusRecorder{
		reg: reg,
		settingsDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "settings_processing_duration_seconds",
			Help:      "Duration of settings processing per build",
			Buckets:   prom.DefBuckets,
		}, []string{"kind"}),
		settingsOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "settings_processing_total",
			Help:      "Settings processing results by build kind and outcome",
		}, []string{"kind", "outcome"}),
		cachePublished: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "cache_configuration_published_total",
			Help:      "Root build cache configurations published to the build tree",
		}),
		cacheAdopted: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "cache_configuration_adopted_total",
			Help:      "Included builds that adopted the root build cache configuration",
		}),
	}
	reg.MustRegister(pr.settingsDuration, pr.settingsOutcome, pr.cachePublished, pr.cacheAdopted)
	return pr
}

// ObserveSettingsDuration records how long processing the settings of one build took.
func (p *PrometheusRecorder) ObserveSettingsDuration(kind domain.BuildKind, d time.Duration) {
	p.settingsDuration.WithLabelValues(string(kind)).Observe(d.Seconds())
}

// IncSettingsOutcome counts one processed build.
func (p *PrometheusRecorder) IncSettingsOutcome(kind domain.BuildKind, outcome string) {
	p.settingsOutcome.WithLabelValues(string(kind), outcome).Inc()
}

// IncCachePublished counts a publication of the root cache configuration.
func (p *PrometheusRecorder) IncCachePublished() {
	p.cachePublished.Inc()
}

// IncCacheAdopted counts an included build adopting the root cache configuration.
func (p *PrometheusRecorder) IncCacheAdopted() {
	p.cacheAdopted.Inc()
}

// WriteTextfile writes the registry in the Prometheus text format to path.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.reg); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetricsWriteFailed.Error()), "file", path)
	}
	return nil
}
