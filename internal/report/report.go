// Package report assembles the metadata report: it wires each field's
// fallback chain out of the project context (stamp file, manifest, embedded
// build info, git, environment, runtime) and renders the resolved values as
// human-readable summaries.
package report

import (
	"context"
	"time"

	"github.com/fbkclanna/buildstamp/internal/project"
	"github.com/fbkclanna/buildstamp/internal/resolve"
)

// Options configures a collection pass.
type Options struct {
	// Timeout bounds each external command. Zero means the config value,
	// falling back to resolve.DefaultCommandTimeout.
	Timeout time.Duration
	// Fields restricts collection to the named fields. Empty means all
	// built-in fields plus any extra fields defined in the config.
	Fields []string
}

// Report holds the resolved field values of one collection pass, in
// reporting order.
type Report struct {
	Results []resolve.Result
}

// Collect resolves every requested field against the project context.
// Collection never fails: each field independently falls back through its
// chain to a default.
func Collect(ctx context.Context, pc *project.Context, opts Options) *Report {
	b := newBuilder(pc, opts.Timeout)

	fields := opts.Fields
	if len(fields) == 0 {
		fields = append(fields, FieldOrder...)
		for _, fc := range pc.Config.Fields {
			if !IsKnownField(fc.Name) {
				fields = append(fields, fc.Name)
			}
		}
	}

	r := &Report{Results: make([]resolve.Result, 0, len(fields))}
	for _, field := range fields {
		q, def := b.query(field)
		r.Results = append(r.Results, resolve.Resolve(ctx, q, def))
	}
	return r
}

// ResolveField resolves a single field. A non-empty defaultOverride
// replaces the field's built-in fallback value.
func ResolveField(ctx context.Context, pc *project.Context, field, defaultOverride string, timeout time.Duration) resolve.Result {
	b := newBuilder(pc, timeout)
	q, def := b.query(field)
	if defaultOverride != "" {
		def = defaultOverride
	}
	return resolve.Resolve(ctx, q, def)
}

// Get returns the result for a field name.
func (r *Report) Get(field string) (resolve.Result, bool) {
	for _, res := range r.Results {
		if res.Field == field {
			return res, true
		}
	}
	return resolve.Result{}, false
}

// Value returns a field's resolved value, or its default when the field
// was not collected.
func (r *Report) Value(field string) string {
	if res, ok := r.Get(field); ok {
		return res.Value
	}
	return DefaultValue(field)
}
