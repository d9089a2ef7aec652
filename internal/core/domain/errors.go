package domain

import "go.trai.ch/zerr"

var (
	// ErrCacheConfigurationUnavailable is returned when the root build's cache configuration cannot be obtained.
	ErrCacheConfigurationUnavailable = zerr.New("build cache configuration of root build is unavailable")

	// ErrCacheConfigurationNotResolved is returned when no cache configuration was recorded for a build.
	ErrCacheConfigurationNotResolved = zerr.New("build cache configuration was not resolved for build")

	// ErrCacheConfigurationAlreadySet is returned when the shared cache configuration is published twice.
	ErrCacheConfigurationAlreadySet = zerr.New("shared build cache configuration is already set")

	// ErrCacheConfigurationNotYetAvailable is returned when the shared cache configuration is read before
	// the root build published it.
	ErrCacheConfigurationNotYetAvailable = zerr.New("shared build cache configuration is not yet available")

	// ErrRootInvariantViolated is returned when more than one build of a tree was processed as the root.
	ErrRootInvariantViolated = zerr.New("build tree invariant violated: root build cache configuration published more than once")

	// ErrSettingsReadFailed is returned when a settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when a settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrUnsupportedSettingsVersion is returned when a settings file declares an unknown version.
	ErrUnsupportedSettingsVersion = zerr.New("unsupported settings file version, expected \"1\"")

	// ErrInvalidBuildName is returned when a project or build name contains invalid characters.
	ErrInvalidBuildName = zerr.New("name can only contain alphanumeric characters, dots, hyphens and underscores")

	// ErrRemoteCacheURLMissing is returned when a remote build cache is enabled without a URL.
	ErrRemoteCacheURLMissing = zerr.New("remote build cache is enabled but no url is configured")

	// ErrInvalidRemoteCacheURL is returned when the remote build cache URL cannot be parsed or uses
	// an unsupported scheme.
	ErrInvalidRemoteCacheURL = zerr.New("invalid remote build cache url, expected http or https")

	// ErrInsecureRemoteCache is returned when a plain http remote cache is used without opting in.
	ErrInsecureRemoteCache = zerr.New("remote build cache uses an insecure protocol, set allowInsecureProtocol to permit it")

	// ErrIncludedBuildNotFound is returned when an included build directory does not exist.
	ErrIncludedBuildNotFound = zerr.New("included build directory not found")

	// ErrIncludedBuildIsRoot is returned when a build includes the root build of its own tree.
	ErrIncludedBuildIsRoot = zerr.New("the root build cannot be included in its own build tree")

	// ErrDuplicateBuildName is returned when two included builds share the same name.
	ErrDuplicateBuildName = zerr.New("included build name is not unique in the build tree")

	// ErrFailedToGetRoot is returned when the root build directory cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of root build")

	// ErrTreeInitializationFailed is returned when initializing the settings of a build tree fails.
	ErrTreeInitializationFailed = zerr.New("build tree initialization failed")

	// ErrInvalidProjectProperty is returned when a project property is not of the form key=value.
	ErrInvalidProjectProperty = zerr.New("project property must have the form key=value")

	// ErrUndefinedProjectProperty is returned when a settings file references a project property
	// that was not given.
	ErrUndefinedProjectProperty = zerr.New("settings file references an undefined project property")

	// ErrUnknownReportFormat is returned when the settings report format is not text or yaml.
	ErrUnknownReportFormat = zerr.New("unknown report format, expected text or yaml")

	// ErrReportRenderFailed is returned when the settings report cannot be written.
	ErrReportRenderFailed = zerr.New("failed to render settings report")

	// ErrMetricsWriteFailed is returned when the metrics file cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics file")
)
