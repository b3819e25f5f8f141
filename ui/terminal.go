package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/logrusorgru/aurora"
	runewidth "github.com/mattn/go-runewidth"
	indent "github.com/openconfig/goyang/pkg/indent"
	"golang.org/x/term"
)

const (
	indentUnit   = "  "
	sectionWidth = 50
	promptPrefix = "> "
)

// TerminalUI is the production UI implementation. It writes coloured output
// to os.Stdout and reads input from os.Stdin; colours turn themselves off
// when stdout is not a terminal.
type TerminalUI struct {
	indentLevel int
	out         io.Writer
	in          *bufio.Reader
	au          aurora.Aurora
}

func NewTerminalUI() *TerminalUI {
	colorsEnabled := term.IsTerminal(int(os.Stdout.Fd()))
	return &TerminalUI{
		out: os.Stdout,
		in:  bufio.NewReader(os.Stdin),
		au:  aurora.NewAurora(colorsEnabled),
	}
}

func (u *TerminalUI) prefix() string {
	return strings.Repeat(indentUnit, u.indentLevel)
}

func (u *TerminalUI) writeLine(line string) {
	fmt.Fprintf(u.out, "%s%s\n", u.prefix(), line)
}

func (u *TerminalUI) Style(t StyledText) string {
	switch t.Severity {
	case SeveritySuccess:
		return u.au.Green(t.Text).String()
	case SeverityWarn:
		return u.au.Yellow(t.Text).String()
	case SeverityError:
		return u.au.Red(t.Text).String()
	case SeverityCritical:
		return u.au.Bold(t.Text).String()
	default:
		return t.Text
	}
}

func (u *TerminalUI) Info(format string, args ...any) {
	u.writeLine(fmt.Sprintf(format, args...))
}

func (u *TerminalUI) Success(format string, args ...any) {
	u.writeLine(u.au.Green(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Warn(format string, args ...any) {
	u.writeLine(u.au.Yellow(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Error(format string, args ...any) {
	u.writeLine(u.au.Red(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Critical(format string, args ...any) {
	u.writeLine(u.au.Bold(fmt.Sprintf(format, args...)).String())
}

// Section prints a separator line centred around the title.
//
// Example output:
//
//	===== Confirm registration before broadcasting =====
func (u *TerminalUI) Section(title string) {
	titled := " " + title + " "
	bars := sectionWidth - len(titled)
	if bars < 6 {
		bars = 6
	}
	left := bars / 2
	right := bars - left
	line := strings.Repeat("=", left) + titled + strings.Repeat("=", right)
	fmt.Fprintf(u.out, "\n%s%s\n\n", u.prefix(), line)
}

// Ask prints a "> " prompt and reads a line from stdin, repeating until
// validate accepts the input. Validation errors are shown in the Error
// style.
func (u *TerminalUI) Ask(validate func(string) error) string {
	for {
		fmt.Fprintf(u.out, "%s%s", u.prefix(), promptPrefix)
		text, _ := u.in.ReadString('\n')
		input := strings.TrimRight(text, "\r\n")
		if validate == nil {
			return input
		}
		if err := validate(input); err == nil {
			return input
		} else {
			u.writeLine(u.au.Red(err.Error()).String())
		}
	}
}

// AskHidden prompts and reads a line with echo disabled. Falls back to a
// normal Ask when stdin is not a terminal (e.g. piped input in scripts).
func (u *TerminalUI) AskHidden(prompt string) string {
	fmt.Fprintf(u.out, "%s%s", u.prefix(), prompt)
	if !term.IsTerminal(int(syscall.Stdin)) {
		text, _ := u.in.ReadString('\n')
		return strings.TrimRight(text, "\r\n")
	}
	raw, _ := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintf(u.out, "\n")
	return strings.TrimSpace(string(raw))
}

// Confirm prints a yes/no question followed by a "> " prompt. An empty
// response accepts the default.
func (u *TerminalUI) Confirm(prompt string, defaultYes bool) bool {
	options := "[Y/n]"
	if !defaultYes {
		options = "[y/N]"
	}
	u.Info("%s %s", prompt, options)
	input := strings.ToLower(strings.TrimSpace(u.Ask(func(s string) error {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || s == "y" || s == "n" {
			return nil
		}
		return fmt.Errorf("please enter y or n")
	})))
	if input == "" {
		return defaultYes
	}
	return input == "y"
}

// KeyValue renders an aligned 2-column block. The label column is padded to
// the longest label so values line up.
func (u *TerminalUI) KeyValue(rows [][2]string) {
	if len(rows) == 0 {
		return
	}
	maxLabel := 0
	for _, r := range rows {
		if len(r[0]) > maxLabel {
			maxLabel = len(r[0])
		}
	}
	p := u.prefix()
	for _, r := range rows {
		fmt.Fprintf(u.out, "%s%-*s  %s\n", p, maxLabel, r[0], r[1])
	}
}

// Table renders a bordered table. When headers is empty no header row is
// rendered, producing a clean bordered block. Column widths are computed on
// visible width so ANSI colours from Style don't skew the layout.
func (u *TerminalUI) Table(headers []string, rows [][]string) {
	ncols := len(headers)
	for _, r := range rows {
		if len(r) > ncols {
			ncols = len(r)
		}
	}
	if ncols == 0 {
		return
	}

	cellWidth := func(s string) int {
		return runewidth.StringWidth(ansi.Strip(s))
	}

	widths := make([]int, ncols)
	for i, h := range headers {
		widths[i] = cellWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < ncols && i < len(row); i++ {
			if w := cellWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	pad := func(s string, w int) string {
		visible := cellWidth(s)
		if visible >= w {
			return s
		}
		return s + strings.Repeat(" ", w-visible)
	}

	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	border := func(s string) string { return borderStyle.Render(s) }

	parts := make([]string, ncols)
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w+2)
	}
	topBorder := border("┌" + strings.Join(parts, "┬") + "┐")
	midBorder := border("├" + strings.Join(parts, "┼") + "┤")
	botBorder := border("└" + strings.Join(parts, "┴") + "┘")

	renderRow := func(cells []string) string {
		cols := make([]string, ncols)
		for i := 0; i < ncols; i++ {
			val := ""
			if i < len(cells) {
				val = cells[i]
			}
			cols[i] = " " + pad(val, widths[i]) + " "
		}
		return border("│") + strings.Join(cols, border("│")) + border("│")
	}

	p := u.prefix()
	fmt.Fprintf(u.out, "%s%s\n", p, topBorder)
	if len(headers) > 0 {
		fmt.Fprintf(u.out, "%s%s\n", p, renderRow(headers))
		fmt.Fprintf(u.out, "%s%s\n", p, midBorder)
	}
	for _, row := range rows {
		fmt.Fprintf(u.out, "%s%s\n", p, renderRow(row))
	}
	fmt.Fprintf(u.out, "%s%s\n", p, botBorder)
}

// Spinner starts an animated spinner and returns a stop function. On
// non-terminal outputs the spinner is a no-op and only the message is
// printed once.
func (u *TerminalUI) Spinner(msg string) func() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(u.out, "%s%s\n", u.prefix(), msg)
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriter(u.out))
	s.Suffix = " " + msg
	s.Start()
	return func() {
		s.Stop()
		// the spinner clears its line with \r but no trailing \n
		fmt.Fprintf(u.out, "\n")
	}
}

// Indent returns a child UI at one deeper indent level sharing the
// underlying writer and reader.
func (u *TerminalUI) Indent() UI {
	return &TerminalUI{
		indentLevel: u.indentLevel + 1,
		out:         u.out,
		in:          u.in,
		au:          u.au,
	}
}

// Writer returns an io.Writer that prepends the current indentation prefix
// to every line written to it.
func (u *TerminalUI) Writer() io.Writer {
	if u.indentLevel == 0 {
		return u.out
	}
	return indent.NewWriter(u.out, u.prefix())
}
