package ports

import (
	"time"

	"go.trai.ch/weave/internal/core/domain"
)

// Outcome labels recorded for settings processing.
const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
)

// MetricsRecorder defines observability hooks for settings processing.
//
//go:generate go run go.uber.org/mock/mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type MetricsRecorder interface {
	ObserveSettingsDuration(kind domain.BuildKind, d time.Duration)
	IncSettingsOutcome(kind domain.BuildKind, outcome string)
	IncCachePublished()
	IncCacheAdopted()
	// WriteTextfile writes all collected metrics to path in the Prometheus text format.
	WriteTextfile(path string) error
}
