// Package project resolves the on-disk context of a project root: its
// .buildstamp.yaml config, project.toml manifest, and buildstamp.lock.yaml
// stamp file. Manifest and stamp are optional inputs to resolution, so a
// missing or unparsable file leaves the corresponding pointer nil instead
// of failing the load; the parse error is retained for diagnostics.
package project
