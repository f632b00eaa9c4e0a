package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Checks prints "Checking <thing>... <verdict>" lines and tracks whether
// any check failed.
type Checks struct {
	out    io.Writer
	failed int
}

// NewChecks creates a check writer.
func NewChecks(out io.Writer) *Checks {
	return &Checks{out: out}
}

// OK reports a passing check. The detail, when non-empty, is printed as
// the verdict instead of "OK".
func (c *Checks) OK(label, detail string) {
	if detail == "" {
		detail = "OK"
	}
	_, _ = fmt.Fprintf(c.out, "Checking %s... %s\n", label, okStyle.Render(detail))
}

// Fail reports a failing check with an explanation.
func (c *Checks) Fail(label, reason string) {
	c.failed++
	_, _ = fmt.Fprintf(c.out, "Checking %s... %s\n", label, failStyle.Render("FAILED"))
	if reason != "" {
		_, _ = fmt.Fprintf(c.out, "  %s\n", reason)
	}
}

// Skip reports a check that did not apply.
func (c *Checks) Skip(label, reason string) {
	_, _ = fmt.Fprintf(c.out, "Checking %s... skipped (%s)\n", label, reason)
}

// Failed returns the number of failed checks.
func (c *Checks) Failed() int {
	return c.failed
}
