package ui

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/logrusorgru/aurora"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferUI(colors bool) (*TerminalUI, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &TerminalUI{
		out: buf,
		au:  aurora.NewAurora(colors),
	}, buf
}

func visibleWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

func TestTableColouredCellsDoNotSkewWidths(t *testing.T) {
	u, buf := newBufferUI(true)
	coloured := aurora.NewAurora(true).Green("alice.oct").String()
	require.NotEqual(t, len(coloured), visibleWidth(coloured), "cell must carry ANSI codes")

	u.Table([]string{"Domain", "Address"}, [][]string{
		{coloured, "octAAA"},
		{"bob.oct", "octBBB"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6) // top, header, separator, 2 rows, bottom
	for _, line := range lines[1:] {
		assert.Equal(t, visibleWidth(lines[0]), visibleWidth(line), line)
	}
}

func TestTableRaggedRowsArePadded(t *testing.T) {
	u, buf := newBufferUI(false)

	u.Table(nil, [][]string{
		{"alice.oct", "octAAA"},
		{"bob.oct"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4) // headerless: top, 2 rows, bottom
	for _, line := range lines[1:] {
		assert.Equal(t, visibleWidth(lines[0]), visibleWidth(line), line)
	}
}

func TestSectionIsCentred(t *testing.T) {
	u, buf := newBufferUI(false)

	u.Section("Confirm")

	line := strings.TrimSpace(buf.String())
	assert.Equal(t, sectionWidth, len(line))
	assert.Contains(t, line, " Confirm ")
	assert.True(t, strings.HasPrefix(line, "====="))
	assert.True(t, strings.HasSuffix(line, "====="))
}

func TestSectionLongTitleKeepsMinimumBars(t *testing.T) {
	u, buf := newBufferUI(false)

	u.Section(strings.Repeat("x", sectionWidth))

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasPrefix(line, "==="))
	assert.True(t, strings.HasSuffix(line, "==="))
}

func TestKeyValueAlignsValues(t *testing.T) {
	u, buf := newBufferUI(false)

	u.KeyValue([][2]string{
		{"Domain", "alice.oct"},
		{"Registered at", "2026-08-28"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		strings.Index(lines[0], "alice.oct"),
		strings.Index(lines[1], "2026-08-28"),
	)
}

func TestStyleIsPlainWhenColoursAreOff(t *testing.T) {
	u, _ := newBufferUI(false)
	for _, sev := range []Severity{
		SeverityInfo, SeveritySuccess, SeverityWarn, SeverityError, SeverityCritical,
	} {
		assert.Equal(t, "hello", u.Style(StyledText{Text: "hello", Severity: sev}))
	}
}

func TestStyleColoursBySeverity(t *testing.T) {
	u, _ := newBufferUI(true)
	styled := u.Style(StyledText{Text: "hello", Severity: SeveritySuccess})
	assert.NotEqual(t, "hello", styled)
	assert.Equal(t, "hello", ansi.Strip(styled))
}

func TestIndentedWriterPrefixesEveryLine(t *testing.T) {
	u, buf := newBufferUI(false)

	fmt.Fprintf(u.Indent().Writer(), "line one\nline two\n")

	assert.Equal(t, "  line one\n  line two\n", buf.String())
}
