package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Reporter formats translation failures for terminal output. With colorize
// off it produces plain text, which keeps test output and piped logs stable.
type Reporter struct {
	colorize bool
}

// NewReporter creates a reporter. Pass colorize=true for interactive use;
// the color library still suppresses escapes when stdout is not a terminal.
func NewReporter(colorize bool) *Reporter {
	return &Reporter{colorize: colorize}
}

// FormatFailure renders one failed function translation.
func (r *Reporter) FormatFailure(function string, err error) string {
	var b strings.Builder

	var te *TranslationError
	if stderrors.As(err, &te) {
		b.WriteString(fmt.Sprintf("%s[%s]: %s\n", r.errorTag(), te.Kind, te.Detail))
		if te.Construct != "" {
			b.WriteString(fmt.Sprintf("  %s function %s, %s\n", r.dim("-->"), function, te.Construct))
		} else {
			b.WriteString(fmt.Sprintf("  %s function %s\n", r.dim("-->"), function))
		}
	} else {
		b.WriteString(fmt.Sprintf("%s: %s\n", r.errorTag(), err))
		b.WriteString(fmt.Sprintf("  %s function %s\n", r.dim("-->"), function))
	}

	return b.String()
}

// FormatSummary renders the run summary line.
func (r *Reporter) FormatSummary(translated, failed int) string {
	if failed == 0 {
		msg := fmt.Sprintf("translated %d function(s)", translated)
		if r.colorize {
			return color.New(color.FgGreen).Sprint(msg)
		}
		return msg
	}
	msg := fmt.Sprintf("translated %d function(s), %d failed", translated, failed)
	if r.colorize {
		return color.New(color.FgRed, color.Bold).Sprint(msg)
	}
	return msg
}

func (r *Reporter) errorTag() string {
	if r.colorize {
		return color.New(color.FgRed, color.Bold).Sprint("error")
	}
	return "error"
}

func (r *Reporter) dim(s string) string {
	if r.colorize {
		return color.New(color.Faint).Sprint(s)
	}
	return s
}
