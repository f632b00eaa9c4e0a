package report

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/fbkclanna/buildstamp/internal/config"
	"github.com/fbkclanna/buildstamp/internal/git"
	"github.com/fbkclanna/buildstamp/internal/modinfo"
	"github.com/fbkclanna/buildstamp/internal/project"
	"github.com/fbkclanna/buildstamp/internal/resolve"
)

// BuildTimeLayout is the timestamp format used for the build_time field,
// both when stamped at build time and when synthesized at report time.
const BuildTimeLayout = "2006-01-02 15:04:05 UTC"

// builder assembles fallback chains for one collection pass. It holds no
// resolved values; strategies read their sources lazily at Attempt time.
type builder struct {
	pc      *project.Context
	mi      *modinfo.Info
	timeout time.Duration
	now     func() time.Time
}

func newBuilder(pc *project.Context, timeout time.Duration) *builder {
	if timeout <= 0 {
		timeout = pc.Config.CommandTimeout()
	}
	if timeout <= 0 {
		timeout = resolve.DefaultCommandTimeout
	}
	mi, _ := modinfo.Read()
	return &builder{pc: pc, mi: mi, timeout: timeout, now: time.Now}
}

// query builds the resolve.Query and fallback default for a field,
// honoring any config override for chain order, env var, command, and
// default value.
func (b *builder) query(field string) (resolve.Query, string) {
	sources := defaultChains[field]
	fc, overridden := b.pc.Config.FieldConfig(field)
	if overridden {
		sources = fc.Sources
	}

	var strategies []resolve.Strategy
	for _, src := range sources {
		if s, ok := b.strategy(field, src, fc); ok {
			strategies = append(strategies, s)
		}
	}

	def := DefaultValue(field)
	if fc.Default != "" {
		def = fc.Default
	}
	return resolve.Query{Field: field, Strategies: strategies}, def
}

// strategy maps a source name to a concrete strategy for the field.
// Sources that cannot serve the field (e.g. "manifest" for git_branch)
// are skipped rather than failing at resolution time.
func (b *builder) strategy(field, src string, fc config.Field) (resolve.Strategy, bool) {
	switch src {
	case "stamp":
		return resolve.Func{Name: "stamp", Run: func(context.Context) (string, error) {
			if v, ok := b.pc.Stamp.Field(field); ok {
				return v, nil
			}
			return "", fmt.Errorf("not stamped")
		}}, true

	case "manifest":
		key, ok := manifestKeys[field]
		if !ok {
			return nil, false
		}
		return resolve.Func{Name: "manifest", Run: func(context.Context) (string, error) {
			if v, ok := b.pc.Manifest.Field(key); ok {
				return v, nil
			}
			return "", fmt.Errorf("no %s in manifest", key)
		}}, true

	case "module":
		return b.moduleStrategy(field)

	case "git":
		return b.gitStrategy(field)

	case "env":
		return resolve.Env{Name: "env", Var: envVar(field, fc.Env)}, true

	case "runtime":
		return b.runtimeStrategy(field)

	case "command":
		argv := fc.Command
		if len(argv) == 0 {
			argv = defaultCommands[field]
		}
		if len(argv) == 0 {
			return nil, false
		}
		return resolve.Command{Name: "command", Dir: b.pc.Dir, Argv: argv, Timeout: b.timeout}, true
	}
	return nil, false
}

func (b *builder) moduleStrategy(field string) (resolve.Strategy, bool) {
	var read func() (string, bool)
	switch field {
	case FieldName:
		read = b.mi.ModuleName
	case FieldVersion:
		read = b.mi.ModuleVersion
	case FieldBuildTime:
		read = b.mi.VCSTime
	case FieldGitCommit:
		read = b.mi.VCSRevision
	case FieldGitStatus:
		read = b.mi.VCSStatus
	case FieldGoVersion, FieldToolchain:
		read = b.mi.GoVersion
	default:
		return nil, false
	}
	return resolve.Func{Name: "module", Run: func(context.Context) (string, error) {
		if v, ok := read(); ok {
			return v, nil
		}
		return "", fmt.Errorf("not recorded in build info")
	}}, true
}

func (b *builder) gitStrategy(field string) (resolve.Strategy, bool) {
	var run func(context.Context, string) (string, error)
	switch field {
	case FieldVersion:
		run = git.Describe
	case FieldGitBranch:
		run = git.CurrentBranch
	case FieldGitCommit:
		run = git.HeadCommit
	case FieldGitStatus:
		run = git.Status
	default:
		return nil, false
	}
	return resolve.Func{Name: "git", Run: func(ctx context.Context) (string, error) {
		if !git.IsInstalled() {
			return "", fmt.Errorf("git not on PATH")
		}
		ctx, cancel := context.WithTimeout(ctx, b.timeout)
		defer cancel()
		return run(ctx, b.pc.Dir)
	}}, true
}

func (b *builder) runtimeStrategy(field string) (resolve.Strategy, bool) {
	var run func(context.Context) (string, error)
	switch field {
	case FieldPlatform:
		run = func(context.Context) (string, error) {
			return runtime.GOOS + "/" + runtime.GOARCH, nil
		}
	case FieldGoVersion:
		run = func(context.Context) (string, error) {
			return runtime.Version(), nil
		}
	case FieldCompiler:
		run = func(context.Context) (string, error) {
			return runtime.Compiler, nil
		}
	case FieldBuildTime:
		run = func(context.Context) (string, error) {
			return b.now().UTC().Format(BuildTimeLayout), nil
		}
	case FieldBuildMode:
		run = func(context.Context) (string, error) {
			// A manifest on disk means we are running from a source tree.
			if b.pc.Manifest != nil {
				return "development", nil
			}
			if _, ok := b.mi.ModuleVersion(); ok {
				return "release", nil
			}
			return "", fmt.Errorf("build mode undetermined")
		}
	default:
		return nil, false
	}
	return resolve.Func{Name: "runtime", Run: run}, true
}
