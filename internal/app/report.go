package app

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/ui/output"
	"go.trai.ch/weave/internal/ui/style"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Report describes the processed settings of every build of a tree, root first.
type Report struct {
	Builds []BuildReport `yaml:"builds"`
}

// BuildReport describes one build of the tree.
type BuildReport struct {
	Path        string      `yaml:"path"`
	Kind        string      `yaml:"kind"`
	Dir         string      `yaml:"dir"`
	RootProject string      `yaml:"rootProject"`
	Projects    []string    `yaml:"projects,omitempty"`
	Cache       CacheReport `yaml:"cache"`
}

// CacheReport describes the effective build cache configuration of a build.
type CacheReport struct {
	Fingerprint        string      `yaml:"fingerprint"`
	DeclarationIgnored bool        `yaml:"declarationIgnored"`
	Local              StoreReport `yaml:"local"`
	Remote             StoreReport `yaml:"remote"`
}

// StoreReport describes one build cache store.
type StoreReport struct {
	Enabled  bool   `yaml:"enabled"`
	Location string `yaml:"location,omitempty"`
	Push     bool   `yaml:"push"`
}

// NewReport builds the report of an initialized tree.
func NewReport(tree *domain.BuildTreeSettings) Report {
	var r Report
	for s := range tree.All() {
		r.Builds = append(r.Builds, newBuildReport(s))
	}
	return r
}

func newBuildReport(s *domain.Settings) BuildReport {
	br := BuildReport{
		Path:        s.Build.Path.String(),
		Kind:        string(s.Build.Kind()),
		Dir:         s.Build.Dir,
		RootProject: s.RootProjectName,
		Projects:    s.Projects,
	}

	if cfg := s.EffectiveCache; cfg != nil {
		br.Cache = CacheReport{
			Fingerprint:        cfg.Fingerprint(),
			DeclarationIgnored: s.CacheDeclarationIgnored,
			Local: StoreReport{
				Enabled:  cfg.Local.Enabled,
				Location: cfg.Local.Directory,
				Push:     cfg.Local.Push,
			},
			Remote: StoreReport{
				Enabled:  cfg.Remote.Enabled,
				Location: cfg.Remote.URL,
				Push:     cfg.Remote.Push,
			},
		}
	}

	return br
}

// WriteYAML writes the report as a YAML document.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return zerr.Wrap(err, domain.ErrReportRenderFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrReportRenderFailed.Error())
	}
	return nil
}

// WriteText writes the report for humans, one block per build.
func (r Report) WriteText(w io.Writer) error {
	out := output.New(w)
	iris := termenv.RGBColor(string(style.Iris))

	for _, b := range r.Builds {
		icon := style.Circle
		if b.Kind == string(domain.BuildKindRoot) {
			icon = style.Dot
		}

		lines := []string{
			out.String(fmt.Sprintf("%s %s %s (%s)", icon, b.Path, b.RootProject, b.Kind)).Foreground(iris).Bold().String(),
			row("dir", b.Dir),
		}
		for _, p := range b.Projects {
			lines = append(lines, row("project", p))
		}

		cache := b.Cache.Fingerprint
		if b.Cache.DeclarationIgnored {
			cache += " (declared build cache ignored)"
		}
		lines = append(lines,
			row("cache", cache),
			row("local", storeLine(out, b.Cache.Local)),
			row("remote", storeLine(out, b.Cache.Remote)),
		)

		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return zerr.Wrap(err, domain.ErrReportRenderFailed.Error())
			}
		}
	}

	return nil
}

func row(label, value string) string {
	return fmt.Sprintf("    %-8s%s", label, value)
}

func storeLine(out *termenv.Output, s StoreReport) string {
	if !s.Enabled {
		return out.String(style.Cross).Foreground(termenv.RGBColor(string(style.Red))).String() + " disabled"
	}

	mode := "pull"
	if s.Push {
		mode = "push"
	}
	return out.String(style.Check).Foreground(termenv.RGBColor(string(style.Green))).String() +
		" " + s.Location + " (" + mode + ")"
}
