// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/weave/internal/core/domain"
)

// SettingsProcessor processes the settings of one build invocation.
// Processors are composed as a chain, each stage wrapping the next one.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings_processor.go -destination=mocks/mock_settings_processor.go -package=mocks
type SettingsProcessor interface {
	// Process evaluates the settings found at location for the given build.
	//
	// The loader scope and start parameters are passed through to every stage.
	// It returns the processed settings or the first error raised by any stage.
	Process(
		ctx context.Context,
		build *domain.BuildInvocation,
		location domain.SettingsLocation,
		scope domain.ClassLoaderScope,
		params *domain.StartParameter,
	) (*domain.Settings, error)
}
