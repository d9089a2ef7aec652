package domain_test

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weave/internal/core/domain"
)

func TestBuildInvocation_Identity(t *testing.T) {
	root := domain.NewRootBuild("/work/app")
	lib := domain.NewIncludedBuild(root, "lib", "/work/lib")
	nested := domain.NewIncludedBuild(lib, "plugins", "/work/plugins")

	assert.True(t, root.IsRoot())
	assert.False(t, lib.IsRoot())
	assert.False(t, nested.IsRoot())

	assert.Equal(t, domain.RootBuildPath, root.Path)
	assert.Equal(t, "app", root.Name)
	assert.Equal(t, domain.BuildPath(":lib"), lib.Path)
	assert.Equal(t, domain.BuildPath(":plugins"), nested.Path)

	assert.Equal(t, domain.BuildKindRoot, root.Kind())
	assert.Equal(t, domain.BuildKindIncluded, nested.Kind())

	assert.Same(t, root, root.Root())
	assert.Same(t, root, nested.Root())
}

func TestCacheConfiguration_Default(t *testing.T) {
	cfg := domain.DefaultCacheConfiguration("/work/app")

	assert.True(t, cfg.Local.Enabled)
	assert.True(t, cfg.Local.Push)
	assert.Equal(t, filepath.Join("/work/app", ".weave", "build-cache"), cfg.Local.Directory)
	assert.False(t, cfg.Remote.Enabled)
}

func TestCacheConfiguration_Fingerprint(t *testing.T) {
	base := domain.CacheConfiguration{
		Local:  domain.LocalCache{Enabled: true, Directory: "/cache"},
		Remote: domain.RemoteCache{Enabled: false},
	}

	t.Run("equal content gives equal fingerprints", func(t *testing.T) {
		other := base
		assert.Equal(t, base.Fingerprint(), other.Fingerprint())
		assert.Len(t, base.Fingerprint(), 16)
	})

	t.Run("any field change alters the fingerprint", func(t *testing.T) {
		variants := []domain.CacheConfiguration{
			{Local: domain.LocalCache{Enabled: false, Directory: "/cache"}},
			{Local: domain.LocalCache{Enabled: true, Directory: "/other"}},
			{Local: domain.LocalCache{Enabled: true, Directory: "/cache", Push: true}},
			{
				Local:  domain.LocalCache{Enabled: true, Directory: "/cache"},
				Remote: domain.RemoteCache{Enabled: true, URL: "https://cache.example.com"},
			},
		}
		for _, v := range variants {
			assert.NotEqual(t, base.Fingerprint(), v.Fingerprint(), "%+v", v)
		}
	})

	t.Run("field boundaries are unambiguous", func(t *testing.T) {
		a := domain.CacheConfiguration{Remote: domain.RemoteCache{URL: "ab"}}
		b := domain.CacheConfiguration{Local: domain.LocalCache{Directory: "a"}, Remote: domain.RemoteCache{URL: "b"}}
		assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})
}

func TestStartParameter_Defaults(t *testing.T) {
	params := domain.NewStartParameter("/work")

	assert.Equal(t, "/work", params.CurrentDir)
	assert.True(t, params.BuildCacheEnabled)
	assert.False(t, params.Offline)
	assert.NotNil(t, params.ProjectProperties)
	assert.Positive(t, params.MaxParallelBuilds)
}

func TestSettingsLocation(t *testing.T) {
	loc := domain.NewSettingsLocation("/work/app")
	assert.Equal(t, "/work/app", loc.SettingsDir)
	assert.Equal(t, filepath.Join("/work/app", domain.SettingsFileName), loc.SettingsFile)
}

func TestClassLoaderScope_Child(t *testing.T) {
	scope := domain.RootClassLoaderScope().Child(domain.IncludedBuildPath("lib"))
	assert.Equal(t, "root-build:lib", scope.ID)
}

func TestBuildTreeSettings_All(t *testing.T) {
	root := domain.NewRootBuild("/work/app")
	tree := &domain.BuildTreeSettings{
		Root: &domain.Settings{Build: root},
		Included: []*domain.Settings{
			{Build: domain.NewIncludedBuild(root, "a", "/work/a")},
			{Build: domain.NewIncludedBuild(root, "b", "/work/b")},
		},
	}

	var paths []string
	for s := range tree.All() {
		paths = append(paths, s.Build.Path.String())
	}
	require.Equal(t, []string{":", ":a", ":b"}, paths)

	var first []string
	for s := range tree.All() {
		first = append(first, s.Build.Path.String())
		break
	}
	assert.True(t, slices.Equal([]string{":"}, first))
}

func TestIsValidName(t *testing.T) {
	for _, name := range []string{"lib", "my-lib", "lib_2", "v1.0"} {
		assert.True(t, domain.IsValidName(name), name)
	}
	for _, name := range []string{"", ".", "..", "my lib", "/", "a/b", "lib$"} {
		assert.False(t, domain.IsValidName(name), name)
	}
}
