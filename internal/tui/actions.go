package tui

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/secretaudit/secretaudit/internal/types"
)

// copyLocation puts the selected finding's file:line on the clipboard.
func (m Model) copyLocation() tea.Cmd {
	f, ok := m.selected()
	if !ok {
		return nil
	}
	loc := fmt.Sprintf("%s:%d", f.File, f.Line)
	if err := clipboard.WriteAll(loc); err != nil {
		return func() tea.Msg { return statusMsg("Clipboard unavailable: " + err.Error()) }
	}
	return func() tea.Msg { return statusMsg("Copied " + loc) }
}

// copyDetails puts the full finding (without the raw secret) on the clipboard.
func (m Model) copyDetails() tea.Cmd {
	f, ok := m.selected()
	if !ok {
		return nil
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Category: %s\n", f.Category)
	fmt.Fprintf(&sb, "Rule: %s (%s)\n", f.Rule, f.Description)
	fmt.Fprintf(&sb, "Location: %s:%d\n", f.File, f.Line)
	fmt.Fprintf(&sb, "Sample: %s\n", f.Sample)
	fmt.Fprintf(&sb, "Entropy: %.2f\n", f.Entropy)
	fmt.Fprintf(&sb, "Context: %s\n", f.Context)
	if err := clipboard.WriteAll(sb.String()); err != nil {
		return func() tea.Msg { return statusMsg("Clipboard unavailable: " + err.Error()) }
	}
	return func() tea.Msg { return statusMsg("Copied finding details") }
}

// highlightContext renders the finding's context line with syntax
// highlighting based on the file extension. Falls back to the plain context
// when highlighting fails.
func highlightContext(f types.Finding) string {
	lex := lexers.Match(f.File)
	if lex == nil {
		lex = lexers.Fallback
	}
	lex = chroma.Coalesce(lex)

	it, err := lex.Tokenise(nil, f.Context)
	if err != nil {
		return f.Context
	}
	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	var sb strings.Builder
	if err := formatter.Format(&sb, style, it); err != nil {
		return f.Context
	}
	return sb.String()
}
