package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// SeparatorLine divides the phases of a workflow run.
const SeparatorLine = "------------------------"

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	bannerColor  = color.New(color.Bold)
)

var out io.Writer = color.Output

// SetOutput redirects all output. A nil writer restores color.Output.
func SetOutput(w io.Writer) {
	if w == nil {
		w = color.Output
	}
	out = w
}

// Writer returns the current output destination
func Writer() io.Writer {
	return out
}

// Success prints a success message
func Success(format string, args ...interface{}) {
	_, _ = successColor.Fprintf(out, "✓ "+format+"\n", args...)
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	_, _ = errorColor.Fprintf(out, "✗ "+format+"\n", args...)
}

// Warn prints a warning message
func Warn(format string, args ...interface{}) {
	_, _ = warnColor.Fprintf(out, "! "+format+"\n", args...)
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	_, _ = infoColor.Fprintf(out, "→ "+format+"\n", args...)
}

// Print prints a plain message
func Print(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(out, format+"\n", args...)
}

// Prompt prints a question without a trailing newline
func Prompt(text string) {
	_, _ = fmt.Fprint(out, text)
}

// Separator prints the divider between workflow phases
func Separator() {
	_, _ = fmt.Fprintln(out, SeparatorLine)
}

// Banner prints a boxed title:
//
//	######################
//	# TITLE OF THE TOOL  #
//	######################
func Banner(title string) {
	border := strings.Repeat("#", len(title)+4)
	_, _ = bannerColor.Fprintf(out, "%s\n# %s #\n%s\n", border, title, border)
}
