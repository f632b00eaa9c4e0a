// Package modinfo exposes the module and VCS metadata that the Go
// toolchain embeds into binaries, read via runtime/debug. It is the
// fallback source when no project manifest is on disk, e.g. for an
// installed binary running far from its source tree.
package modinfo

import (
	"path"
	"runtime/debug"
)

// Info wraps the build information embedded in the running binary.
type Info struct {
	bi *debug.BuildInfo
}

// Read returns the embedded build info, or false when the binary was built
// without module support.
func Read() (*Info, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return nil, false
	}
	return &Info{bi: bi}, true
}

// ModulePath returns the main module's import path.
func (i *Info) ModulePath() (string, bool) {
	if i == nil || i.bi.Main.Path == "" {
		return "", false
	}
	return i.bi.Main.Path, true
}

// ModuleName returns the last element of the main module's import path.
func (i *Info) ModuleName() (string, bool) {
	p, ok := i.ModulePath()
	if !ok {
		return "", false
	}
	return path.Base(p), true
}

// ModuleVersion returns the main module's version. The placeholder
// "(devel)" recorded for source builds counts as absent.
func (i *Info) ModuleVersion() (string, bool) {
	if i == nil {
		return "", false
	}
	v := i.bi.Main.Version
	if v == "" || v == "(devel)" {
		return "", false
	}
	return v, true
}

// GoVersion returns the Go toolchain version recorded in the binary.
func (i *Info) GoVersion() (string, bool) {
	if i == nil || i.bi.GoVersion == "" {
		return "", false
	}
	return i.bi.GoVersion, true
}

// Setting returns a raw build setting such as "vcs.revision" or "GOARCH".
func (i *Info) Setting(key string) (string, bool) {
	if i == nil {
		return "", false
	}
	for _, s := range i.bi.Settings {
		if s.Key == key && s.Value != "" {
			return s.Value, true
		}
	}
	return "", false
}

// VCSRevision returns the commit the binary was built from.
func (i *Info) VCSRevision() (string, bool) {
	return i.Setting("vcs.revision")
}

// VCSTime returns the commit timestamp the binary was built from.
func (i *Info) VCSTime() (string, bool) {
	return i.Setting("vcs.time")
}

// VCSStatus maps the recorded vcs.modified flag to "clean" or "dirty".
func (i *Info) VCSStatus() (string, bool) {
	v, ok := i.Setting("vcs.modified")
	if !ok {
		return "", false
	}
	if v == "true" {
		return "dirty", true
	}
	return "clean", true
}
