package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fbkclanna/buildstamp/internal/config"
	"github.com/fbkclanna/buildstamp/internal/manifest"
	"github.com/fbkclanna/buildstamp/internal/stamp"
)

// Context holds the resolved paths and loaded files for a project root.
type Context struct {
	Dir          string
	ConfigPath   string
	ManifestPath string
	StampPath    string

	Config   *config.Config
	Manifest *manifest.Manifest // nil when absent or unreadable
	Stamp    *stamp.File        // nil when absent or unreadable

	// ManifestErr and StampErr record why an existing file could not be
	// used. They are diagnostics only; resolution treats the file as absent.
	ManifestErr error
	StampErr    error
}

// Options configures Load. Zero values mean "use the default location".
type Options struct {
	ConfigPath   string
	ManifestPath string
	StampPath    string
}

// Load resolves project paths and loads whatever is present. Only an
// explicitly named but unreadable config is an error: the config drives
// resolution and silently ignoring it would change behavior. Manifest and
// stamp files are fallback sources and their absence is expected.
func Load(dir string, opts Options) (*Context, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	ctx := &Context{Dir: dir}

	if err := ctx.loadConfig(opts.ConfigPath); err != nil {
		return nil, err
	}

	ctx.ManifestPath = pick(dir, opts.ManifestPath, ctx.Config.Manifest, manifest.DefaultFile)
	ctx.StampPath = pick(dir, opts.StampPath, ctx.Config.Stamp, stamp.DefaultFile)

	if _, statErr := os.Stat(ctx.ManifestPath); statErr == nil {
		ctx.Manifest, ctx.ManifestErr = manifest.Load(ctx.ManifestPath)
	}
	if _, statErr := os.Stat(ctx.StampPath); statErr == nil {
		ctx.Stamp, ctx.StampErr = stamp.Load(ctx.StampPath)
	}

	return ctx, nil
}

func (c *Context) loadConfig(explicit string) error {
	if explicit != "" {
		c.ConfigPath = absIn(c.Dir, explicit)
		cfg, err := config.Load(c.ConfigPath)
		if err != nil {
			return err
		}
		c.Config = cfg
		return nil
	}

	c.ConfigPath = filepath.Join(c.Dir, config.DefaultFile)
	if _, err := os.Stat(c.ConfigPath); err != nil {
		c.Config = config.Default()
		return nil
	}
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

// pick returns the first non-empty candidate path, anchored at dir when
// relative.
func pick(dir string, candidates ...string) string {
	for _, p := range candidates {
		if p != "" {
			return absIn(dir, p)
		}
	}
	return ""
}

func absIn(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
