package errors

import (
	"fmt"
	"strings"
)

// All ranges inclusive
type Span struct {
	Start    Location `json:"start"`
	End      Location `json:"end"`
	Filename string   `json:"filename"`
}

func (self Span) IsEmpty() bool {
	return self.Start.Line == 0 && self.End.Line == 0
}

type Error struct {
	Code  Code
	Span  Span
	Notes []string
}

func New(code Code) *Error {
	return &Error{Code: code}
}

func NewWithSpan(code Code, span Span) *Error {
	return &Error{Code: code, Span: span}
}

// At attaches a span unless the error was already located deeper down.
func (self *Error) At(span Span) *Error {
	if self.Span.IsEmpty() {
		self.Span = span
	}
	return self
}

func (self *Error) WithNote(format string, args ...any) *Error {
	self.Notes = append(self.Notes, fmt.Sprintf(format, args...))
	return self
}

// Wrap keeps the notes of a lower level error which is reported under another code.
func (self *Error) Wrap(cause *Error) *Error {
	self.Notes = append(self.Notes, cause.Notes...)
	return self
}

func (self *Error) Error() string {
	out := fmt.Sprintf("%s: %s", self.Code, self.Code.Message())
	if !self.Span.IsEmpty() {
		out += fmt.Sprintf(" at %s:%d:%d", self.Span.Filename, self.Span.Start.Line, self.Span.Start.Column)
	}
	if len(self.Notes) > 0 {
		out += " (" + strings.Join(self.Notes, "; ") + ")"
	}
	return out
}
