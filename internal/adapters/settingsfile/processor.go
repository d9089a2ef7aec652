// Package settingsfile provides the base settings processor reading weave.settings.yaml.
package settingsfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Processor implements ports.SettingsProcessor by reading the settings file of a build.
// It is the innermost stage of the settings pipeline.
type Processor struct {
	Logger ports.Logger
}

// NewProcessor creates a new Processor with the given logger.
func NewProcessor(logger ports.Logger) *Processor {
	return &Processor{Logger: logger}
}

// Process reads and evaluates the settings file at location.
// A missing settings file yields default settings named after the build directory.
// ${key} references in the file's values are replaced by the project properties of params.
func (p *Processor) Process(
	ctx context.Context,
	build *domain.BuildInvocation,
	location domain.SettingsLocation,
	_ domain.ClassLoaderScope,
	params *domain.StartParameter,
) (*domain.Settings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := p.read(location.SettingsFile)
	if err != nil {
		return nil, zerr.With(err, "build", build.Path.String())
	}

	settings := &domain.Settings{
		Build:           build,
		Location:        location,
		RootProjectName: filepath.Base(location.SettingsDir),
	}

	if file == nil {
		return settings, nil
	}

	var props map[string]string
	if params != nil {
		props = params.ProjectProperties
	}
	if err := expandProperties(file, props); err != nil {
		return nil, zerr.With(zerr.With(err, "build", build.Path.String()), "file", location.SettingsFile)
	}

	if err := p.apply(settings, file); err != nil {
		return nil, zerr.With(zerr.With(err, "build", build.Path.String()), "file", location.SettingsFile)
	}

	return settings, nil
}

func (p *Processor) read(path string) (*File, error) {
	if path == "" {
		return nil, nil
	}

	//nolint:gosec // path is derived from the build directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "file", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "file", path)
	}

	return &file, nil
}

func (p *Processor) apply(settings *domain.Settings, file *File) error {
	if file.Version != "" && file.Version != domain.SettingsVersion {
		return zerr.With(domain.ErrUnsupportedSettingsVersion, "version", file.Version)
	}

	if file.RootProject != "" {
		if !domain.IsValidName(file.RootProject) {
			return zerr.With(domain.ErrInvalidBuildName, "root_project", file.RootProject)
		}
		settings.RootProjectName = file.RootProject
	}

	projects, err := p.projects(file.Include)
	if err != nil {
		return err
	}
	settings.Projects = projects
	settings.IncludedBuilds = p.dedupe("included build", file.IncludeBuild)

	if file.BuildCache != nil {
		cfg, err := toCacheConfiguration(settings.Location.SettingsDir, file.BuildCache)
		if err != nil {
			return err
		}
		settings.DeclaredCache = &cfg
	}

	return nil
}

func (p *Processor) projects(include []string) ([]string, error) {
	for _, name := range include {
		if !domain.IsValidName(name) {
			return nil, zerr.With(domain.ErrInvalidBuildName, "project", name)
		}
	}
	return p.dedupe("project", include), nil
}

// dedupe drops repeated entries, keeping the declaration order, and warns about them.
func (p *Processor) dedupe(kind string, entries []string) []string {
	if len(entries) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(entries))
	res := make([]string, 0, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry]; ok {
			p.Logger.Warn(fmt.Sprintf("%s %q is declared more than once", kind, entry))
			continue
		}
		seen[entry] = struct{}{}
		res = append(res, entry)
	}
	return slices.Clip(res)
}

func toCacheConfiguration(buildDir string, dto *BuildCacheDTO) (domain.CacheConfiguration, error) {
	cfg := domain.DefaultCacheConfiguration(buildDir)

	if dto.Local != nil {
		cfg.Local.Enabled = boolOr(dto.Local.Enabled, true)
		cfg.Local.Push = boolOr(dto.Local.Push, true)
		if dto.Local.Directory != "" {
			cfg.Local.Directory = resolvePath(buildDir, dto.Local.Directory)
		}
	}

	if dto.Remote != nil {
		remote := domain.RemoteCache{
			Enabled:               boolOr(dto.Remote.Enabled, true),
			URL:                   dto.Remote.URL,
			Push:                  dto.Remote.Push,
			AllowInsecureProtocol: dto.Remote.AllowInsecureProtocol,
		}
		if err := validateRemote(remote); err != nil {
			return domain.CacheConfiguration{}, err
		}
		cfg.Remote = remote
	}

	return cfg, nil
}

func validateRemote(remote domain.RemoteCache) error {
	if !remote.Enabled {
		return nil
	}
	if remote.URL == "" {
		return domain.ErrRemoteCacheURLMissing
	}

	u, err := url.Parse(remote.URL)
	if err != nil || u.Host == "" {
		return zerr.With(domain.ErrInvalidRemoteCacheURL, "url", remote.URL)
	}

	switch u.Scheme {
	case "https":
		return nil
	case "http":
		if !remote.AllowInsecureProtocol {
			return zerr.With(domain.ErrInsecureRemoteCache, "url", remote.URL)
		}
		return nil
	default:
		return zerr.With(domain.ErrInvalidRemoteCacheURL, "url", remote.URL)
	}
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
