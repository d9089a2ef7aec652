// Package domain contains the core domain models of a build tree and its settings.
package domain

import (
	"path/filepath"
	"regexp"
)

var validNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// IsValidName reports whether name can be used as a project or build name.
func IsValidName(name string) bool {
	return name != "." && name != ".." && validNameRegex.MatchString(name)
}

// BuildPath identifies a build within a build tree.
// The root build is ":" and included builds are ":<name>".
type BuildPath string

// RootBuildPath is the path of the root build of every tree.
const RootBuildPath BuildPath = ":"

// IncludedBuildPath returns the path of the included build with the given name.
func IncludedBuildPath(name string) BuildPath {
	return BuildPath(":" + name)
}

// String returns the path as a string.
func (p BuildPath) String() string {
	return string(p)
}

// BuildKind distinguishes the root build from included builds.
type BuildKind string

const (
	// BuildKindRoot is the kind of the build without a parent.
	BuildKindRoot BuildKind = "root"
	// BuildKindIncluded is the kind of every other build in the tree.
	BuildKindIncluded BuildKind = "included"
)

// BuildInvocation represents one build, root or included, within a build tree.
type BuildInvocation struct {
	Path BuildPath
	Name string
	Dir  string

	// Parent is the build that included this one. It is nil for the root build.
	Parent *BuildInvocation
}

// NewRootBuild creates the root invocation of a tree for the given directory.
func NewRootBuild(dir string) *BuildInvocation {
	return &BuildInvocation{
		Path: RootBuildPath,
		Name: filepath.Base(dir),
		Dir:  dir,
	}
}

// NewIncludedBuild creates an invocation for a build included by parent.
func NewIncludedBuild(parent *BuildInvocation, name, dir string) *BuildInvocation {
	return &BuildInvocation{
		Path:   IncludedBuildPath(name),
		Name:   name,
		Dir:    dir,
		Parent: parent,
	}
}

// IsRoot reports whether the invocation has no parent.
func (b *BuildInvocation) IsRoot() bool {
	return b.Parent == nil
}

// Kind returns the kind of the build.
func (b *BuildInvocation) Kind() BuildKind {
	if b.IsRoot() {
		return BuildKindRoot
	}
	return BuildKindIncluded
}

// Root returns the root build of the tree this invocation belongs to.
func (b *BuildInvocation) Root() *BuildInvocation {
	current := b
	for current.Parent != nil {
		current = current.Parent
	}
	return current
}
