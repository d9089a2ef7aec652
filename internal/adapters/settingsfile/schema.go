package settingsfile

// File represents the structure of the weave.settings.yaml file of a build.
type File struct {
	Version      string         `yaml:"version"`
	RootProject  string         `yaml:"rootProject"`
	Include      []string       `yaml:"include"`
	IncludeBuild []string       `yaml:"includeBuild"`
	BuildCache   *BuildCacheDTO `yaml:"buildCache"`
}

// BuildCacheDTO represents the buildCache block of a settings file.
type BuildCacheDTO struct {
	Local  *LocalCacheDTO  `yaml:"local"`
	Remote *RemoteCacheDTO `yaml:"remote"`
}

// LocalCacheDTO represents the local build cache declaration.
// Omitted flags default to true.
type LocalCacheDTO struct {
	Enabled   *bool  `yaml:"enabled"`
	Directory string `yaml:"directory"`
	Push      *bool  `yaml:"push"`
}

// RemoteCacheDTO represents the remote build cache declaration.
// A declared remote cache is enabled unless stated otherwise and never pushes by default.
type RemoteCacheDTO struct {
	Enabled               *bool  `yaml:"enabled"`
	URL                   string `yaml:"url"`
	Push                  bool   `yaml:"push"`
	AllowInsecureProtocol bool   `yaml:"allowInsecureProtocol"`
}
