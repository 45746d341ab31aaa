// Package iostreams bundles stdin/stdout/stderr with TTY detection, color
// support and quiet-mode filtering, in the style of gh-cli's IOStreams.
package iostreams

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// IOStreams bundles the three standard streams together with display options.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	quiet        bool
	colorEnabled bool
	profile      termenv.Profile
}

// New returns IOStreams wired to the real stdin/stdout/stderr.
// Color is enabled when stdout is a TTY and NO_COLOR is not set.
func New() *IOStreams {
	return &IOStreams{
		In:           os.Stdin,
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
		colorEnabled: isTerminal(os.Stdout) && os.Getenv("NO_COLOR") == "",
		profile:      termenv.ColorProfile(),
	}
}

// Test returns IOStreams over the given buffers with color disabled.
func Test(in io.Reader, out, errOut io.Writer) *IOStreams {
	return &IOStreams{
		In:      in,
		Out:     out,
		ErrOut:  errOut,
		profile: termenv.Ascii,
	}
}

// SetQuiet enables or disables quiet mode. In quiet mode Printf is suppressed.
func (s *IOStreams) SetQuiet(q bool) {
	s.quiet = q
}

// IsQuiet reports whether quiet mode is active.
func (s *IOStreams) IsQuiet() bool {
	return s.quiet
}

// IsTerminal reports whether Out is connected to a terminal.
func (s *IOStreams) IsTerminal() bool {
	return isTerminal(s.Out)
}

// IsStderrTerminal reports whether ErrOut is connected to a terminal.
func (s *IOStreams) IsStderrTerminal() bool {
	return isTerminal(s.ErrOut)
}

// ColorEnabled reports whether colored output should be produced.
func (s *IOStreams) ColorEnabled() bool {
	return s.colorEnabled
}

// Printf writes formatted output to Out, suppressed in quiet mode.
func (s *IOStreams) Printf(format string, a ...any) {
	if s.quiet {
		return
	}
	fmt.Fprintf(s.Out, format, a...)
}

// Errorf writes formatted output to ErrOut. It is never suppressed.
func (s *IOStreams) Errorf(format string, a ...any) {
	fmt.Fprintf(s.ErrOut, format, a...)
}

func (s *IOStreams) style(text, color string) string {
	if !s.colorEnabled {
		return text
	}
	return termenv.String(text).Foreground(s.profile.Color(color)).String()
}

// Success returns text styled green.
func (s *IOStreams) Success(text string) string { return s.style(text, "2") }

// Failure returns text styled red.
func (s *IOStreams) Failure(text string) string { return s.style(text, "1") }

// Warning returns text styled yellow.
func (s *IOStreams) Warning(text string) string { return s.style(text, "3") }

// Muted returns text styled faint.
func (s *IOStreams) Muted(text string) string {
	if !s.colorEnabled {
		return text
	}
	return termenv.String(text).Faint().String()
}

// Bold returns text styled bold.
func (s *IOStreams) Bold(text string) string {
	if !s.colorEnabled {
		return text
	}
	return termenv.String(text).Bold().String()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
