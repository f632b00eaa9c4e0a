package report

import "strings"

// Field names reported by buildstamp.
const (
	FieldName      = "name"
	FieldVersion   = "version"
	FieldBuildTime = "build_time"
	FieldBuildMode = "build_mode"
	FieldPlatform  = "platform"
	FieldGitBranch = "git_branch"
	FieldGitCommit = "git_commit"
	FieldGitStatus = "git_status"
	FieldGoVersion = "go_version"
	FieldCompiler  = "compiler"
	FieldToolchain = "toolchain"
)

// FieldOrder is the canonical reporting order of the built-in fields.
var FieldOrder = []string{
	FieldName,
	FieldVersion,
	FieldBuildTime,
	FieldBuildMode,
	FieldPlatform,
	FieldGitBranch,
	FieldGitCommit,
	FieldGitStatus,
	FieldGoVersion,
	FieldCompiler,
	FieldToolchain,
}

// defaultChains fixes the source priority per field. The config file can
// override any of these; the resolver itself only walks the chain.
var defaultChains = map[string][]string{
	FieldName:      {"stamp", "manifest", "module"},
	FieldVersion:   {"stamp", "manifest", "module", "git", "env"},
	FieldBuildTime: {"stamp", "module", "runtime"},
	FieldBuildMode: {"stamp", "env", "runtime"},
	FieldPlatform:  {"runtime"},
	FieldGitBranch: {"stamp", "git", "env"},
	FieldGitCommit: {"stamp", "git", "module"},
	FieldGitStatus: {"stamp", "git", "module"},
	FieldGoVersion: {"runtime"},
	FieldCompiler:  {"runtime"},
	FieldToolchain: {"stamp", "command", "module"},
}

// manifestKeys maps report fields to project.toml keys.
var manifestKeys = map[string]string{
	FieldName:    "name",
	FieldVersion: "version",
}

// defaultCommands supplies argv for fields whose default chain includes the
// command source.
var defaultCommands = map[string][]string{
	FieldToolchain: {"go", "version"},
}

var defaultValues = map[string]string{
	FieldVersion: "0.0.0",
}

// DefaultValue returns the fallback used when a field's whole chain fails.
func DefaultValue(field string) string {
	if v, ok := defaultValues[field]; ok {
		return v
	}
	return "unknown"
}

// envVar returns the environment variable consulted by the env source,
// e.g. BUILDSTAMP_GIT_BRANCH for git_branch.
func envVar(field, override string) string {
	if override != "" {
		return override
	}
	return "BUILDSTAMP_" + strings.ToUpper(field)
}

// IsKnownField reports whether the field has a built-in chain.
func IsKnownField(name string) bool {
	_, ok := defaultChains[name]
	return ok
}
