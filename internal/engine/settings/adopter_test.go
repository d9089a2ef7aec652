package settings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports/mocks"
	"go.trai.ch/weave/internal/engine/settings"
	"go.uber.org/mock/gomock"
)

func TestIncludedCacheAdopter_AdoptsRootConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockSettingsProcessor(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	metrics := mocks.NewMockMetricsRecorder(ctrl)
	slot := settings.NewSlot()

	rootCfg := domain.CacheConfiguration{Local: domain.LocalCache{Enabled: true}}
	require.NoError(t, slot.Set(rootCfg))

	root := domain.NewRootBuild("/work/app")
	lib := domain.NewIncludedBuild(root, "lib", "/work/lib")
	loc, scope, params := processArgs(lib)
	result := &domain.Settings{Build: lib}

	next.EXPECT().Process(gomock.Any(), lib, loc, scope, params).Return(result, nil)
	metrics.EXPECT().IncCacheAdopted()

	adopter := settings.NewIncludedCacheAdopter(next, slot, logger, metrics)
	got, err := adopter.Process(context.Background(), lib, loc, scope, params)

	require.NoError(t, err)
	assert.Same(t, result, got)
	require.NotNil(t, got.EffectiveCache)
	assert.Equal(t, rootCfg, *got.EffectiveCache)
	assert.False(t, got.CacheDeclarationIgnored)
}

func TestIncludedCacheAdopter_IgnoresDeclaredConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockSettingsProcessor(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	metrics := mocks.NewMockMetricsRecorder(ctrl)
	slot := settings.NewSlot()

	rootCfg := domain.CacheConfiguration{Local: domain.LocalCache{Enabled: true}}
	require.NoError(t, slot.Set(rootCfg))

	root := domain.NewRootBuild("/work/app")
	lib := domain.NewIncludedBuild(root, "lib", "/work/lib")
	loc, scope, params := processArgs(lib)
	declared := domain.CacheConfiguration{Remote: domain.RemoteCache{Enabled: true, URL: "https://other"}}

	next.EXPECT().Process(gomock.Any(), lib, loc, scope, params).
		Return(&domain.Settings{Build: lib, DeclaredCache: &declared}, nil)
	logger.EXPECT().Warn(gomock.Any())
	metrics.EXPECT().IncCacheAdopted()

	adopter := settings.NewIncludedCacheAdopter(next, slot, logger, metrics)
	got, err := adopter.Process(context.Background(), lib, loc, scope, params)

	require.NoError(t, err)
	assert.True(t, got.CacheDeclarationIgnored)
	assert.Equal(t, rootCfg, *got.EffectiveCache)
}

func TestIncludedCacheAdopter_ReadBeforePublishFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockSettingsProcessor(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	metrics := mocks.NewMockMetricsRecorder(ctrl)
	slot := settings.NewSlot()

	root := domain.NewRootBuild("/work/app")
	lib := domain.NewIncludedBuild(root, "lib", "/work/lib")
	loc, scope, params := processArgs(lib)

	next.EXPECT().Process(gomock.Any(), lib, loc, scope, params).Return(&domain.Settings{Build: lib}, nil)

	adopter := settings.NewIncludedCacheAdopter(next, slot, logger, metrics)
	got, err := adopter.Process(context.Background(), lib, loc, scope, params)

	require.ErrorIs(t, err, domain.ErrCacheConfigurationNotYetAvailable)
	assert.ErrorContains(t, err, domain.ErrCacheConfigurationNotYetAvailable.Error())
	assert.Nil(t, got)
}

func TestIncludedCacheAdopter_RootPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockSettingsProcessor(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	metrics := mocks.NewMockMetricsRecorder(ctrl)
	slot := settings.NewSlot()

	root := domain.NewRootBuild("/work/app")
	loc, scope, params := processArgs(root)
	result := &domain.Settings{Build: root}

	next.EXPECT().Process(gomock.Any(), root, loc, scope, params).Return(result, nil)

	adopter := settings.NewIncludedCacheAdopter(next, slot, logger, metrics)
	got, err := adopter.Process(context.Background(), root, loc, scope, params)

	require.NoError(t, err)
	assert.Same(t, result, got)
	assert.Nil(t, got.EffectiveCache)
}
