package domain

import "path/filepath"

const (
	// WeaveDirName is the name of the per-build metadata directory.
	WeaveDirName = ".weave"

	// BuildCacheDirName is the name of the default local build cache directory.
	BuildCacheDirName = "build-cache"

	// SettingsFileName is the name of the settings file of a build.
	SettingsFileName = "weave.settings.yaml"

	// SettingsVersion is the only settings file version understood.
	SettingsVersion = "1"

	// LogFormatEnv selects the log format ("json" or "pretty").
	LogFormatEnv = "WEAVE_LOG_FORMAT"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultLocalCachePath returns the default local build cache directory of a build.
// It joins the build directory, .weave and build-cache.
func DefaultLocalCachePath(buildDir string) string {
	return filepath.Join(buildDir, WeaveDirName, BuildCacheDirName)
}
