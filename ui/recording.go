package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Entry records a single UI method call for test assertions.
type Entry struct {
	Method string
	Value  string
}

// sharedState is shared by a RecordingUI and all children created via
// Indent, so nested Ask calls advance the same input cursor.
type sharedState struct {
	entries []Entry
	inputs  []string
	nextIdx int
	buf     *bytes.Buffer
}

// RecordingUI implements UI for tests: output is captured as an entry log,
// input is served in order from the scripted inputs. Running out of
// scripted inputs panics with a descriptive message so broken tests fail
// loudly.
type RecordingUI struct {
	shared      *sharedState
	indentLevel int
}

func NewRecordingUI(scriptedInputs ...string) *RecordingUI {
	return &RecordingUI{
		shared: &sharedState{
			inputs: scriptedInputs,
			buf:    &bytes.Buffer{},
		},
	}
}

func (r *RecordingUI) record(method, value string) {
	r.shared.entries = append(r.shared.entries, Entry{Method: method, Value: value})
}

func (r *RecordingUI) nextInput(caller string) string {
	if r.shared.nextIdx >= len(r.shared.inputs) {
		panic(fmt.Sprintf(
			"RecordingUI: no scripted input left for %s (consumed %d so far)",
			caller, r.shared.nextIdx,
		))
	}
	input := r.shared.inputs[r.shared.nextIdx]
	r.shared.nextIdx++
	return input
}

// Style returns the plain text of t; RecordingUI is colour-free.
func (r *RecordingUI) Style(t StyledText) string {
	return t.Text
}

func (r *RecordingUI) Info(format string, args ...any) {
	r.record("Info", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Success(format string, args ...any) {
	r.record("Success", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Warn(format string, args ...any) {
	r.record("Warn", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Error(format string, args ...any) {
	r.record("Error", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Critical(format string, args ...any) {
	r.record("Critical", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Section(title string) {
	r.record("Section", title)
}

func (r *RecordingUI) KeyValue(rows [][2]string) {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, row[0]+": "+row[1])
	}
	r.record("KeyValue", strings.Join(lines, "\n"))
}

func (r *RecordingUI) Table(headers []string, rows [][]string) {
	lines := []string{}
	if len(headers) > 0 {
		lines = append(lines, strings.Join(headers, " | "))
	}
	for _, row := range rows {
		lines = append(lines, strings.Join(row, " | "))
	}
	r.record("Table", strings.Join(lines, "\n"))
}

func (r *RecordingUI) Spinner(msg string) func() {
	r.record("Spinner", msg)
	return func() {}
}

func (r *RecordingUI) Ask(validate func(string) error) string {
	for {
		input := r.nextInput("Ask")
		if validate == nil {
			r.record("Ask", input)
			return input
		}
		if err := validate(input); err == nil {
			r.record("Ask", input)
			return input
		}
		r.record("AskRejected", input)
	}
}

func (r *RecordingUI) AskHidden(prompt string) string {
	input := r.nextInput("AskHidden")
	r.record("AskHidden", input)
	return input
}

func (r *RecordingUI) Confirm(prompt string, defaultYes bool) bool {
	input := strings.ToLower(strings.TrimSpace(r.nextInput("Confirm")))
	r.record("Confirm", prompt+" -> "+input)
	if input == "" {
		return defaultYes
	}
	return input == "y" || input == "yes"
}

func (r *RecordingUI) Indent() UI {
	return &RecordingUI{
		shared:      r.shared,
		indentLevel: r.indentLevel + 1,
	}
}

func (r *RecordingUI) Writer() io.Writer {
	return r.shared.buf
}

// Entries returns every recorded call in order.
func (r *RecordingUI) Entries() []Entry {
	return r.shared.entries
}

// Output returns everything written through Writer.
func (r *RecordingUI) Output() string {
	return r.shared.buf.String()
}

// HasMessage reports whether any recorded call of the given method contains
// substr.
func (r *RecordingUI) HasMessage(method, substr string) bool {
	for _, e := range r.shared.entries {
		if e.Method == method && strings.Contains(e.Value, substr) {
			return true
		}
	}
	return false
}
