package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fbkclanna/buildstamp/internal/resolve"
)

var sectionStyle = lipgloss.NewStyle().Bold(true)

// line pairs a display label with a field name.
type line struct {
	label string
	field string
}

var sections = []struct {
	title string
	lines []line
}{
	{"Build Information:", []line{
		{"Build Time", FieldBuildTime},
		{"Build Mode", FieldBuildMode},
		{"Platform", FieldPlatform},
	}},
	{"Version Control:", []line{
		{"Git Branch", FieldGitBranch},
		{"Git Commit", FieldGitCommit},
		{"Git Status", FieldGitStatus},
	}},
	{"Runtime:", []line{
		{"Go", FieldGoVersion},
		{"Compiler", FieldCompiler},
		{"Toolchain", FieldToolchain},
	}},
}

// Render writes the full multi-line report: a "name version" header
// followed by grouped sections, and any extra configured fields at the end.
func (r *Report) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s %s\n", r.Value(FieldName), r.Value(FieldVersion)); err != nil {
		return err
	}

	for _, sec := range sections {
		if _, err := fmt.Fprintf(w, "\n%s\n", sectionStyle.Render(sec.title)); err != nil {
			return err
		}
		for _, l := range sec.lines {
			if _, err := fmt.Fprintf(w, "  %s: %s\n", l.label, r.Value(l.field)); err != nil {
				return err
			}
		}
	}

	extras := r.extraResults()
	if len(extras) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\n%s\n", sectionStyle.Render("Extra:")); err != nil {
		return err
	}
	for _, res := range extras {
		if _, err := fmt.Fprintf(w, "  %s: %s\n", displayLabel(res.Field), res.Value); err != nil {
			return err
		}
	}
	return nil
}

// Short returns the one-line summary: "<name> version <version>, build <commit>".
func (r *Report) Short() string {
	return fmt.Sprintf("%s version %s, build %s",
		r.Value(FieldName), r.Value(FieldVersion), r.Value(FieldGitCommit))
}

// extraResults returns results for fields outside the built-in set, in
// collection order.
func (r *Report) extraResults() []resolve.Result {
	var extras []resolve.Result
	for _, res := range r.Results {
		if !IsKnownField(res.Field) {
			extras = append(extras, res)
		}
	}
	return extras
}

// displayLabel turns a field name like "git_branch" into "Git Branch".
func displayLabel(field string) string {
	words := strings.Split(field, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
