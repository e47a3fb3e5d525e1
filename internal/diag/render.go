package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	fatalColor   = color.New(color.FgHiRed, color.Bold)
)

func colorFor(sev Severity) *color.Color {
	switch sev {
	case SevError:
		return errorColor
	case SevWarning:
		return warningColor
	case SevFatal:
		return fatalColor
	default:
		return infoColor
	}
}

// Render writes each diagnostic in items (already sorted by the caller
// if a stable order is wanted) to w as one line, followed by one line
// per attached note; the severity label is colorized when useColor is
// set.
func Render(w io.Writer, items []Diagnostic, useColor bool) {
	for _, d := range items {
		renderOne(w, d, useColor)
	}
}

func renderOne(w io.Writer, d Diagnostic, useColor bool) {
	label := d.Severity.String()
	loc := formatLocation(d.At)
	if useColor {
		colorFor(d.Severity).Fprintf(w, "%s", label)
		fmt.Fprintf(w, " %s: %s%s\n", d.Code.ID(), locPrefix(loc), d.Message)
	} else {
		fmt.Fprintf(w, "%s %s: %s%s\n", label, d.Code.ID(), locPrefix(loc), d.Message)
	}
	for _, n := range d.Notes {
		nloc := formatLocation(n.At)
		fmt.Fprintf(w, "  note: %s%s\n", locPrefix(nloc), n.Msg)
	}
}

func formatLocation(at Location) string {
	switch {
	case at.Option != "" && at.Path != "":
		return fmt.Sprintf("-%s (%s)", at.Option, at.Path)
	case at.Option != "":
		return fmt.Sprintf("-%s", at.Option)
	case at.Path != "":
		return at.Path
	default:
		return ""
	}
}

func locPrefix(loc string) string {
	if loc == "" {
		return ""
	}
	return loc + ": "
}
