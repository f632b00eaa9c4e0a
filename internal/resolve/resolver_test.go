package resolve

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// spy is a scripted strategy that records whether it was invoked.
type spy struct {
	name   string
	value  string
	err    error
	called bool
}

func (s *spy) Source() string { return s.name }

func (s *spy) Attempt(context.Context) (string, error) {
	s.called = true
	return s.value, s.err
}

func TestResolve_firstNonEmptyWins(t *testing.T) {
	first := &spy{name: "manifest", value: "1.4.0"}
	second := &spy{name: "module", value: "2.0.1"}

	got := Resolve(context.Background(), Query{
		Field:      "version",
		Strategies: []Strategy{first, second},
	}, "0.0.0")

	if got.Value != "1.4.0" || got.Source != "manifest" {
		t.Errorf("got %+v, want value 1.4.0 from manifest", got)
	}
	if second.called {
		t.Error("later strategy must not run after a success")
	}
}

func TestResolve_fallsThroughToSecond(t *testing.T) {
	first := &spy{name: "manifest", err: fmt.Errorf("no manifest")}
	second := &spy{name: "module", value: "2.0.1"}

	got := Resolve(context.Background(), Query{
		Field:      "version",
		Strategies: []Strategy{first, second},
	}, "0.0.0")

	if got.Value != "2.0.1" || got.Source != "module" {
		t.Errorf("got %+v, want value 2.0.1 from module", got)
	}
}

func TestResolve_allFailUsesDefault(t *testing.T) {
	got := Resolve(context.Background(), Query{
		Field: "version",
		Strategies: []Strategy{
			&spy{name: "manifest", err: fmt.Errorf("missing")},
			&spy{name: "module", err: fmt.Errorf("missing")},
		},
	}, "0.0.0")

	if got.Value != "0.0.0" {
		t.Errorf("value = %q, want default", got.Value)
	}
	if got.Source != SourceDefault {
		t.Errorf("source = %q, want %q", got.Source, SourceDefault)
	}
}

func TestResolve_emptyStringIsFailure(t *testing.T) {
	empty := &spy{name: "manifest", value: ""}
	next := &spy{name: "module", value: "2.0.1"}

	got := Resolve(context.Background(), Query{
		Field:      "version",
		Strategies: []Strategy{empty, next},
	}, "0.0.0")

	if got.Value != "2.0.1" || got.Source != "module" {
		t.Errorf("empty value should fall through, got %+v", got)
	}
}

func TestResolve_noStrategies(t *testing.T) {
	got := Resolve(context.Background(), Query{Field: "name"}, "unknown")
	if got.Value != "unknown" || got.Source != SourceDefault {
		t.Errorf("got %+v, want the default", got)
	}
}

func TestResolve_panickingStrategyIsContained(t *testing.T) {
	boom := Func{Name: "boom", Run: func(context.Context) (string, error) {
		panic("strategy exploded")
	}}
	next := &spy{name: "module", value: "2.0.1"}

	got := Resolve(context.Background(), Query{
		Field:      "version",
		Strategies: []Strategy{boom, next},
	}, "0.0.0")

	if got.Value != "2.0.1" {
		t.Errorf("panic should count as failure, got %+v", got)
	}
}

func TestResolve_slowCommandFailsWithinTimeout(t *testing.T) {
	slow := Command{
		Name:    "sleeper",
		Argv:    []string{"sleep", "10"},
		Timeout: 200 * time.Millisecond,
	}

	start := time.Now()
	got := Resolve(context.Background(), Query{
		Field:      "branch",
		Strategies: []Strategy{slow},
	}, "unknown")
	elapsed := time.Since(start)

	if got.Source != SourceDefault {
		t.Errorf("timed-out command should fail, got %+v", got)
	}
	if elapsed > 5*time.Second {
		t.Errorf("resolution took %v, timeout did not bound the subprocess", elapsed)
	}
}

func TestCommand_capturesTrimmedStdout(t *testing.T) {
	c := Command{Name: "echo", Argv: []string{"echo", "  hello  "}}
	v, err := c.Attempt(context.Background())
	if err != nil {
		t.Fatalf("attempt: %v", err)
	}
	if v != "hello" {
		t.Errorf("got %q, want trimmed %q", v, "hello")
	}
}

func TestCommand_nonzeroExitIsFailure(t *testing.T) {
	c := Command{Name: "false", Argv: []string{"false"}}
	if _, err := c.Attempt(context.Background()); err == nil {
		t.Error("expected error from nonzero exit")
	}
}

func TestEnv_unsetIsFailure(t *testing.T) {
	e := Env{Name: "env", Var: "BUILDSTAMP_TEST_UNSET_VAR"}
	if _, err := e.Attempt(context.Background()); err == nil {
		t.Error("expected error for unset variable")
	}
}

func TestEnv_readsValue(t *testing.T) {
	t.Setenv("BUILDSTAMP_TEST_VAR", " 3.1.4 ")
	e := Env{Name: "env", Var: "BUILDSTAMP_TEST_VAR"}
	v, err := e.Attempt(context.Background())
	if err != nil {
		t.Fatalf("attempt: %v", err)
	}
	if v != "3.1.4" {
		t.Errorf("got %q, want trimmed value", v)
	}
}
