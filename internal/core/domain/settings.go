package domain

import (
	"iter"
	"path/filepath"
	"runtime"
)

// SettingsLocation points at the settings of a build.
// SettingsFile may name a file that does not exist, in which case defaults apply.
type SettingsLocation struct {
	SettingsDir  string
	SettingsFile string
}

// NewSettingsLocation returns the conventional settings location of a build directory.
func NewSettingsLocation(dir string) SettingsLocation {
	return SettingsLocation{
		SettingsDir:  dir,
		SettingsFile: filepath.Join(dir, SettingsFileName),
	}
}

// ClassLoaderScope is an opaque scope handed through the settings pipeline.
type ClassLoaderScope struct {
	ID string
}

// RootClassLoaderScope returns the scope every build tree starts from.
func RootClassLoaderScope() ClassLoaderScope {
	return ClassLoaderScope{ID: "root-build"}
}

// Child returns a scope nested below s for the given build.
func (s ClassLoaderScope) Child(build BuildPath) ClassLoaderScope {
	return ClassLoaderScope{ID: s.ID + build.String()}
}

// StartParameter holds the invocation options of a build tree.
type StartParameter struct {
	CurrentDir        string
	BuildCacheEnabled bool
	Offline           bool
	ProjectProperties map[string]string
	MaxParallelBuilds int
}

// NewStartParameter returns the default start parameters for an invocation from cwd.
func NewStartParameter(cwd string) *StartParameter {
	return &StartParameter{
		CurrentDir:        cwd,
		BuildCacheEnabled: true,
		ProjectProperties: make(map[string]string),
		MaxParallelBuilds: runtime.NumCPU(),
	}
}

// Settings is the result of processing the settings of one build.
type Settings struct {
	Build    *BuildInvocation
	Location SettingsLocation

	RootProjectName string
	Projects        []string

	// IncludedBuilds lists the included build directories as declared, relative to the build directory.
	IncludedBuilds []string

	// DeclaredCache is the build cache block of the settings file. It is nil when none was declared.
	DeclaredCache *CacheConfiguration

	// EffectiveCache is the configuration the build uses. Included builds use the root's.
	EffectiveCache *CacheConfiguration

	// CacheDeclarationIgnored is set for included builds whose own build cache block was discarded.
	CacheDeclarationIgnored bool
}

// BuildTreeSettings holds the processed settings of every build of a tree.
type BuildTreeSettings struct {
	Root     *Settings
	Included []*Settings
}

// All returns an iterator over the root settings followed by the included ones.
func (t *BuildTreeSettings) All() iter.Seq[*Settings] {
	return func(yield func(*Settings) bool) {
		if t.Root != nil && !yield(t.Root) {
			return
		}
		for _, s := range t.Included {
			if !yield(s) {
				return
			}
		}
	}
}
