package resolve

import "context"

// SourceDefault is the Result source when every strategy in a chain failed
// and the caller-supplied fallback was used.
const SourceDefault = "default"

// Strategy is one way of obtaining a field's value from an external source.
// Attempt returns the value, or an error when the source is unavailable.
// An empty value is treated the same as an error by the resolver.
type Strategy interface {
	// Source identifies the strategy in Result.Source (e.g. "manifest", "git").
	Source() string
	// Attempt tries to produce the field's value. It must respect ctx.
	Attempt(ctx context.Context) (string, error)
}

// Query names a field and the ordered fallback chain used to resolve it.
// A Query is built once per lookup and not mutated afterwards.
type Query struct {
	Field      string
	Strategies []Strategy
}

// Result is the outcome of resolving a single field.
type Result struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Resolve tries the query's strategies in order and returns the first
// non-empty value together with the source that produced it. Strategies
// after the winner are not invoked. Every failure mode — error return,
// empty value, context timeout, even a panicking strategy — is treated
// identically as "this source yielded nothing" and falls through to the
// next strategy. When the whole chain fails, the fallback value is
// returned with Source set to SourceDefault. Resolve never fails.
func Resolve(ctx context.Context, q Query, fallback string) Result {
	for _, s := range q.Strategies {
		if v, ok := attempt(ctx, s); ok {
			return Result{Field: q.Field, Value: v, Source: s.Source()}
		}
	}
	return Result{Field: q.Field, Value: fallback, Source: SourceDefault}
}

// attempt runs a single strategy behind a failure boundary. The boundary
// absorbs panics so that a misbehaving strategy cannot break the totality
// guarantee of Resolve.
func attempt(ctx context.Context, s Strategy) (value string, ok bool) {
	defer func() {
		if recover() != nil {
			value, ok = "", false
		}
	}()
	v, err := s.Attempt(ctx)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}
