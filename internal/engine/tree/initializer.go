// Package tree initializes the settings of a build tree: the root build first, then its
// included builds level by level.
package tree

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/engine/settings"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Initializer processes the settings of every build in a tree through the settings pipeline.
type Initializer struct {
	base     ports.SettingsProcessor
	caches   ports.CacheConfigurationServiceFactory
	pipeline settings.Pipeline
	logger   ports.Logger
}

// NewInitializer creates a new Initializer around the base settings processor.
func NewInitializer(
	base ports.SettingsProcessor,
	caches ports.CacheConfigurationServiceFactory,
	logger ports.Logger,
	telemetry ports.Telemetry,
	metrics ports.MetricsRecorder,
) *Initializer {
	return &Initializer{
		base:   base,
		caches: caches,
		pipeline: settings.Pipeline{
			Logger:    logger,
			Telemetry: telemetry,
			Metrics:   metrics,
		},
		logger: logger,
	}
}

// Initialize processes the settings of the tree rooted at rootDir.
// A relative rootDir is resolved against params.CurrentDir.
//
// The root build is processed to completion before any included build starts, so included
// builds always observe the published root cache configuration. Included builds of the same
// depth are processed concurrently, bounded by params.MaxParallelBuilds.
func (i *Initializer) Initialize(
	ctx context.Context,
	rootDir string,
	params *domain.StartParameter,
) (*domain.BuildTreeSettings, error) {
	if params != nil && params.CurrentDir != "" && !filepath.IsAbs(rootDir) {
		rootDir = filepath.Join(params.CurrentDir, rootDir)
	}
	dir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}
	if params == nil {
		params = domain.NewStartParameter(dir)
	}

	scope := settings.NewTreeScope(i.caches())
	processor := i.pipeline.Build(i.base, scope)
	loaderScope := domain.RootClassLoaderScope()

	root := domain.NewRootBuild(dir)
	rootSettings, err := processor.Process(ctx, root, domain.NewSettingsLocation(dir), loaderScope, params)
	if err != nil {
		return nil, err
	}

	asm := newAssembly(root)
	level, err := asm.include(rootSettings)
	if err != nil {
		return nil, err
	}

	var included []*domain.Settings
	for len(level) > 0 {
		results, err := i.processLevel(ctx, processor, level, loaderScope, params)
		if err != nil {
			return nil, err
		}
		included = append(included, results...)

		var next []*domain.BuildInvocation
		for _, s := range results {
			builds, err := asm.include(s)
			if err != nil {
				return nil, err
			}
			next = append(next, builds...)
		}
		level = next
	}

	slices.SortFunc(included, func(a, b *domain.Settings) int {
		return strings.Compare(a.Build.Path.String(), b.Build.Path.String())
	})

	i.logger.Info(fmt.Sprintf("initialized build tree %s with %d included builds", root.Name, len(included)))

	return &domain.BuildTreeSettings{
		Root:     rootSettings,
		Included: included,
	}, nil
}

func (i *Initializer) processLevel(
	ctx context.Context,
	processor ports.SettingsProcessor,
	builds []*domain.BuildInvocation,
	loaderScope domain.ClassLoaderScope,
	params *domain.StartParameter,
) ([]*domain.Settings, error) {
	results := make([]*domain.Settings, len(builds))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(params.MaxParallelBuilds, 1))

	for idx, build := range builds {
		g.Go(func() error {
			s, err := processor.Process(
				groupCtx,
				build,
				domain.NewSettingsLocation(build.Dir),
				loaderScope.Child(build.Path),
				params,
			)
			if err != nil {
				return err
			}
			results[idx] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// assembly tracks the builds discovered so far in a tree.
type assembly struct {
	root  *domain.BuildInvocation
	dirs  map[string]struct{}
	names map[string]string
}

func newAssembly(root *domain.BuildInvocation) *assembly {
	return &assembly{
		root:  root,
		dirs:  map[string]struct{}{canonicalDir(root.Dir): {}},
		names: make(map[string]string),
	}
}

// canonicalDir resolves symlinks so that one directory reached through different paths
// is recognized. Directories that cannot be resolved are kept as given.
func canonicalDir(dir string) string {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return dir
	}
	return resolved
}

// include returns the builds declared by s that were not seen before.
// A directory included twice is processed once, by the first build declaring it.
func (a *assembly) include(s *domain.Settings) ([]*domain.BuildInvocation, error) {
	parent := s.Build
	var builds []*domain.BuildInvocation

	for _, decl := range s.IncludedBuilds {
		dir := decl
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(parent.Dir, dir)
		}
		dir = filepath.Clean(dir)
		key := canonicalDir(dir)

		if key == canonicalDir(a.root.Dir) {
			return nil, zerr.With(zerr.With(domain.ErrIncludedBuildIsRoot, "build", parent.Path.String()), "dir", dir)
		}
		if _, ok := a.dirs[key]; ok {
			continue
		}

		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrIncludedBuildNotFound.Error()), "dir", dir)
			}
			return nil, zerr.With(zerr.With(domain.ErrIncludedBuildNotFound, "build", parent.Path.String()), "dir", dir)
		}

		name := filepath.Base(dir)
		if !domain.IsValidName(name) {
			return nil, zerr.With(zerr.With(domain.ErrInvalidBuildName, "build", name), "dir", dir)
		}
		if other, ok := a.names[name]; ok {
			return nil, zerr.With(zerr.With(domain.ErrDuplicateBuildName, "name", name), "dirs", []string{other, dir})
		}

		a.dirs[key] = struct{}{}
		a.names[name] = dir
		builds = append(builds, domain.NewIncludedBuild(parent, name, dir))
	}

	return builds, nil
}
