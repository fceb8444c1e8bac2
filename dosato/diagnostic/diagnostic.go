package diagnostic

import (
	"fmt"
	"strings"

	"github.com/dosato-lang/dosato/dosato/errors"
)

type DiagnosticLevel uint8

const (
	DiagnosticLevelHint DiagnosticLevel = iota
	DiagnosticLevelWarning
	DiagnosticLevelError
)

func (self DiagnosticLevel) String() string {
	switch self {
	case DiagnosticLevelHint:
		return "Hint"
	case DiagnosticLevelWarning:
		return "Warning"
	case DiagnosticLevelError:
		return "Error"
	default:
		panic("A new diagnostic level was added without updating this code")
	}
}

func (self DiagnosticLevel) color() uint8 {
	switch self {
	case DiagnosticLevelHint:
		return 5 // magenta
	case DiagnosticLevelWarning:
		return 3 // yellow
	default:
		return 1 // red
	}
}

//
// Diagnostic
//

type Diagnostic struct {
	Level   DiagnosticLevel `json:"level"`
	Code    errors.Code     `json:"code"`
	Message string          `json:"message"`
	Notes   []string        `json:"notes"`
	Span    errors.Span     `json:"span"`
}

// FromError turns a runtime or syntax error into a printable diagnostic.
func FromError(err *errors.Error) Diagnostic {
	return Diagnostic{
		Level:   DiagnosticLevelError,
		Code:    err.Code,
		Message: fmt.Sprintf("%s: %s", err.Code, err.Code.Message()),
		Notes:   err.Notes,
		Span:    err.Span,
	}
}

// Report builds a diagnostic from an error code and the rune offset it occurred at.
func Report(code errors.Code, source string, filename string, offset uint) Diagnostic {
	location := errors.LocationFromOffset(source, offset)
	return Diagnostic{
		Level:   DiagnosticLevelError,
		Code:    code,
		Message: fmt.Sprintf("%s: %s", code, code.Message()),
		Notes:   make([]string, 0),
		Span:    location.Until(location, filename),
	}
}

// Short is the single-line form `E<code>: <message>\nAt line <line>:<column>`.
func (self Diagnostic) Short() string {
	if self.Span.IsEmpty() {
		return self.Message
	}
	return fmt.Sprintf("%s\nAt line %d:%d", self.Message, self.Span.Start.Line, self.Span.Start.Column)
}

// Display renders the diagnostic with a source excerpt around the span.
// Without color no ANSI escape sequences are emitted.
func (self Diagnostic) Display(program string, color bool) string {
	paint := func(code uint8, bold bool) string {
		if !color {
			return ""
		}
		if bold {
			return fmt.Sprintf("\x1b[1;%dm", code)
		}
		return fmt.Sprintf("\x1b[%dm", code)
	}
	reset := paint(0, false)
	levelColor := paint(self.Level.color()+30, true)

	notes := ""
	for _, note := range self.Notes {
		notes += fmt.Sprintf("%s - note:%s %s\n", paint(36, true), reset, note)
	}

	lines := strings.Split(program, "\n")

	// nothing to point at
	if self.Span.IsEmpty() || int(self.Span.Start.Line) > len(lines) {
		return fmt.Sprintf(
			"%s%s%s in %s%s\n%s\n%s",
			levelColor,
			self.Level,
			paint(39, true),
			self.Span.Filename,
			reset,
			self.Message,
			notes,
		)
	}

	gutter := func(line uint) string {
		return fmt.Sprintf(" %s%- 3d | %s%s", paint(90, false), line, reset, lines[line-1])
	}

	before := ""
	if self.Span.Start.Line > 1 {
		before = "\n" + gutter(self.Span.Start.Line-1)
	}
	current := gutter(self.Span.Start.Line)
	after := ""
	if int(self.Span.Start.Line) < len(lines) {
		after = "\n" + gutter(self.Span.Start.Line+1)
	}

	markers := "^"
	if self.Span.Start.Line != self.Span.End.Line {
		lineLen := len(lines[self.Span.Start.Line-1])
		width := lineLen - int(self.Span.Start.Column) + 1
		if width < 1 {
			width = 1
		}
		markers = fmt.Sprintf("%s ...", strings.Repeat("^", width))
	} else if self.Span.End.Column > self.Span.Start.Column {
		// spans are inclusive
		markers = strings.Repeat("^", int(self.Span.End.Column-self.Span.Start.Column)+1)
	}

	marker := fmt.Sprintf(
		"%s%s%s%s",
		levelColor,
		strings.Repeat(" ", int(self.Span.Start.Column+6)),
		markers,
		reset,
	)

	return fmt.Sprintf(
		"%s%v%s at %s:%d:%d%s\n%s\n%s\n%s%s\n\n%s%s%s\n%s",
		levelColor,
		self.Level,
		paint(39, false),
		self.Span.Filename,
		self.Span.Start.Line,
		self.Span.Start.Column,
		reset,
		before,
		current,
		marker,
		after,
		levelColor,
		self.Message,
		reset,
		notes,
	)
}
