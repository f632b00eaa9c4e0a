// Package git provides read-only introspection of a Git working tree via
// the git CLI: current branch, HEAD commit, describe output, and dirty-state
// detection. Every invocation is bounded by its context; on deadline expiry
// the subprocess is killed rather than awaited, so a hung git can never
// block the caller. The package mutates no repository state and depends on
// no other internal packages.
package git
