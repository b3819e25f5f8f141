package ui

import (
	"io"
)

// Severity classifies the visual weight of a piece of inline text. The
// terminal implementation maps each value to a colour; the recording
// implementation and JSON consumers see plain text.
type Severity uint8

const (
	SeverityInfo     Severity = iota // plain
	SeveritySuccess                  // green — confirmed / positive
	SeverityWarn                     // yellow — uncertain, needs attention
	SeverityError                    // red — failed / unknown
	SeverityCritical                 // bold — review before an irreversible step
)

// StyledText pairs a plain string with a Severity annotation.
type StyledText struct {
	Text     string
	Severity Severity
}

// UI provides all terminal interaction for octname commands.
//
// Production code uses TerminalUI (coloured output on stdout, input from
// stdin); tests use RecordingUI (captured output, scripted inputs). Commands
// never print directly so the whole interaction of a flow — including the
// registration confirmation before an irreversible broadcast — can be
// asserted in tests.
type UI interface {
	// Style returns the text of t coloured for its Severity, for embedding
	// in a larger Info/Critical line. Plain text when colours are off.
	Style(t StyledText) string

	// Info writes a neutral status line.
	Info(format string, args ...any)

	// Success writes a positive outcome in green.
	Success(format string, args ...any)

	// Warn writes a non-fatal warning in yellow.
	Warn(format string, args ...any)

	// Error writes a failure in red. It does not exit — callers decide
	// what happens next.
	Error(format string, args ...any)

	// Critical writes data the user must review before an irreversible
	// action: the transaction about to be signed, or the proof of one just
	// broadcast.
	Critical(format string, args ...any)

	// Section writes a visual separator centred around a title.
	Section(title string)

	// KeyValue renders an aligned label/value block for compact metadata
	// like Domain/Owner/Nonce.
	KeyValue(rows [][2]string)

	// Table renders a bordered table with an optional header row.
	Table(headers []string, rows [][]string)

	// Spinner starts an animated spinner with msg and returns a stop
	// function to clear it:
	//
	//	stop := u.Spinner("Broadcasting registration tx...")
	//	defer stop()
	Spinner(msg string) func()

	// Ask displays a "> " prompt and reads a line, looping until validate
	// returns nil. A nil validator accepts anything.
	Ask(validate func(string) error) string

	// AskHidden reads a line with terminal echo off. Used for private key
	// entry so key material never lands in the scrollback.
	AskHidden(prompt string) string

	// Confirm asks a yes/no question and returns the answer. An empty
	// response takes the default.
	Confirm(prompt string, defaultYes bool) bool

	// Indent returns a child UI one indent level deeper, sharing the
	// underlying writer and reader.
	Indent() UI

	// Writer returns an io.Writer that prepends the current indentation to
	// every line.
	Writer() io.Writer
}
