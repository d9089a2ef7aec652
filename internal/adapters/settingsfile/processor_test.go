package settingsfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weave/internal/adapters/settingsfile"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeSettings(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.SettingsFileName), []byte(content), domain.PrivateFilePerm))
}

func process(t *testing.T, p *settingsfile.Processor, dir string) (*domain.Settings, error) {
	t.Helper()
	build := domain.NewRootBuild(dir)
	return p.Process(
		context.Background(),
		build,
		domain.NewSettingsLocation(dir),
		domain.RootClassLoaderScope(),
		domain.NewStartParameter(dir),
	)
}

func TestProcessor_MissingFileUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := settingsfile.NewProcessor(mocks.NewMockLogger(ctrl))
	dir := filepath.Join(t.TempDir(), "my-app")
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))

	s, err := process(t, p, dir)
	require.NoError(t, err)

	assert.Equal(t, "my-app", s.RootProjectName)
	assert.Empty(t, s.Projects)
	assert.Empty(t, s.IncludedBuilds)
	assert.Nil(t, s.DeclaredCache)
	assert.Nil(t, s.EffectiveCache)
}

func TestProcessor_FullFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := settingsfile.NewProcessor(mocks.NewMockLogger(ctrl))
	dir := t.TempDir()

	writeSettings(t, dir, `
version: "1"
rootProject: shop
include: ["api", "web"]
includeBuild: ["../build-logic", "plugins"]
buildCache:
  local:
    directory: cache
    push: false
  remote:
    url: https://cache.example.com/cache/
    push: true
`)

	s, err := process(t, p, dir)
	require.NoError(t, err)

	assert.Equal(t, "shop", s.RootProjectName)
	assert.Equal(t, []string{"api", "web"}, s.Projects)
	assert.Equal(t, []string{"../build-logic", "plugins"}, s.IncludedBuilds)

	require.NotNil(t, s.DeclaredCache)
	assert.Equal(t, domain.CacheConfiguration{
		Local: domain.LocalCache{
			Enabled:   true,
			Directory: filepath.Join(dir, "cache"),
			Push:      false,
		},
		Remote: domain.RemoteCache{
			Enabled: true,
			URL:     "https://cache.example.com/cache/",
			Push:    true,
		},
	}, *s.DeclaredCache)
}

func TestProcessor_RemoteOnlyKeepsDefaultLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := settingsfile.NewProcessor(mocks.NewMockLogger(ctrl))
	dir := t.TempDir()

	writeSettings(t, dir, `
buildCache:
  remote:
    enabled: false
`)

	s, err := process(t, p, dir)
	require.NoError(t, err)
	require.NotNil(t, s.DeclaredCache)
	assert.Equal(t, domain.DefaultCacheConfiguration(dir).Local, s.DeclaredCache.Local)
	assert.False(t, s.DeclaredCache.Remote.Enabled)
}

func TestProcessor_DuplicateEntriesWarn(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(`project "api" is declared more than once`)
	mockLogger.EXPECT().Warn(`included build "lib" is declared more than once`)

	p := settingsfile.NewProcessor(mockLogger)
	dir := t.TempDir()
	writeSettings(t, dir, `
include: ["api", "api"]
includeBuild: ["lib", "lib"]
`)

	s, err := process(t, p, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"api"}, s.Projects)
	assert.Equal(t, []string{"lib"}, s.IncludedBuilds)
}

func TestProcessor_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr error
	}{
		{
			name:        "invalid yaml",
			content:     "rootProject: [",
			expectedErr: domain.ErrSettingsParseFailed,
		},
		{
			name:        "unsupported version",
			content:     `version: "2"`,
			expectedErr: domain.ErrUnsupportedSettingsVersion,
		},
		{
			name:        "invalid root project",
			content:     `rootProject: "my app"`,
			expectedErr: domain.ErrInvalidBuildName,
		},
		{
			name:        "invalid project",
			content:     `include: ["a/b"]`,
			expectedErr: domain.ErrInvalidBuildName,
		},
		{
			name: "remote without url",
			content: `
buildCache:
  remote:
    push: true
`,
			expectedErr: domain.ErrRemoteCacheURLMissing,
		},
		{
			name: "remote with unsupported scheme",
			content: `
buildCache:
  remote:
    url: ftp://cache.example.com
`,
			expectedErr: domain.ErrInvalidRemoteCacheURL,
		},
		{
			name: "insecure remote",
			content: `
buildCache:
  remote:
    url: http://cache.example.com
`,
			expectedErr: domain.ErrInsecureRemoteCache,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			p := settingsfile.NewProcessor(mocks.NewMockLogger(ctrl))
			dir := t.TempDir()
			writeSettings(t, dir, tt.content)

			_, err := process(t, p, dir)
			require.Error(t, err)
			require.ErrorContains(t, err, tt.expectedErr.Error())
		})
	}
}

func TestProcessor_InsecureRemoteAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := settingsfile.NewProcessor(mocks.NewMockLogger(ctrl))
	dir := t.TempDir()
	writeSettings(t, dir, `
buildCache:
  remote:
    url: http://cache.internal:5071
    allowInsecureProtocol: true
`)

	s, err := process(t, p, dir)
	require.NoError(t, err)
	assert.True(t, s.DeclaredCache.Remote.AllowInsecureProtocol)
	assert.True(t, s.DeclaredCache.Remote.Enabled)
}

func TestProcessor_UnreadableFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := settingsfile.NewProcessor(mocks.NewMockLogger(ctrl))
	dir := t.TempDir()

	// A directory in place of the settings file cannot be read.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, domain.SettingsFileName), domain.DirPerm))

	_, err := process(t, p, dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSettingsReadFailed.Error())
}

func TestProcessor_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := settingsfile.NewProcessor(mocks.NewMockLogger(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	_, err := p.Process(ctx, domain.NewRootBuild(dir), domain.NewSettingsLocation(dir), domain.RootClassLoaderScope(), nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestProcessor_ProjectProperties(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := settingsfile.NewProcessor(mocks.NewMockLogger(ctrl))
	dir := t.TempDir()
	writeSettings(t, dir, `
rootProject: shop-${flavor}
includeBuild: ["../${flavor}-lib"]
buildCache:
  remote:
    url: https://${cacheHost}/cache
`)

	params := domain.NewStartParameter(dir)
	params.ProjectProperties["flavor"] = "eu"
	params.ProjectProperties["cacheHost"] = "cache.example.com"

	build := domain.NewRootBuild(dir)
	s, err := p.Process(context.Background(), build, domain.NewSettingsLocation(dir), domain.RootClassLoaderScope(), params)
	require.NoError(t, err)

	assert.Equal(t, "shop-eu", s.RootProjectName)
	assert.Equal(t, []string{"../eu-lib"}, s.IncludedBuilds)
	assert.Equal(t, "https://cache.example.com/cache", s.DeclaredCache.Remote.URL)
}

func TestProcessor_UndefinedProjectProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := settingsfile.NewProcessor(mocks.NewMockLogger(ctrl))
	dir := t.TempDir()
	writeSettings(t, dir, `rootProject: shop-${flavor}`)

	_, err := process(t, p, dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUndefinedProjectProperty.Error())
}
