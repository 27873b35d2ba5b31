package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/secretaudit/secretaudit/internal/types"
)

func sampleFindings() []types.Finding {
	return []types.Finding{
		{File: "src/app.go", Line: 3, Rule: "aws_access_key", Description: "AWS Access Key ID",
			Sample: "AKIA...MNOP", Category: types.CatProduction, Entropy: 3.88, Context: `key := "AKIA..."`},
		{File: "vault/data.cs", Line: 9, Rule: "cfdj_prefix", Description: "ASP.NET Core Data Protection keys (CfDJ prefix)",
			Sample: "CfDJ...pR7t", Category: types.CatEncrypted, Entropy: 4.5, Context: "blob = CfDJ..."},
	}
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func TestViewBeforeSize(t *testing.T) {
	m := NewModel(sampleFindings())
	if got := m.View(); got != "loading..." {
		t.Fatalf("View()=%q before first WindowSizeMsg", got)
	}
}

func TestViewShowsFindings(t *testing.T) {
	m := sized(t, NewModel(sampleFindings()))
	out := m.View()
	for _, want := range []string{"2 findings", "aws_access_key", "src/app.go:3", "AKIA...MNOP"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in view:\n%s", want, out)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		m := sized(t, NewModel(sampleFindings()))
		var msg tea.KeyMsg
		switch key {
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("key %q should quit", key)
		}
	}
}

func TestFilter(t *testing.T) {
	m := sized(t, NewModel(sampleFindings()))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	m = next.(Model)
	if !m.filtering {
		t.Fatal("slash should enter filter mode")
	}
	for _, r := range "cfdj" {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	if len(m.filtered) != 1 || m.filtered[0].Rule != "cfdj_prefix" {
		t.Fatalf("filtered=%v", m.filtered)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.filtering {
		t.Fatal("enter should leave filter mode")
	}
	if !strings.Contains(m.View(), "1 findings") {
		t.Fatalf("view should reflect filtered count:\n%s", m.View())
	}
}

func TestFilterByCategory(t *testing.T) {
	m := sized(t, NewModel(sampleFindings()))
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	m = next.(Model)
	for _, r := range "production" {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	if len(m.filtered) != 1 || m.filtered[0].Category != types.CatProduction {
		t.Fatalf("filtered=%v", m.filtered)
	}
}

func TestStatusMessage(t *testing.T) {
	m := sized(t, NewModel(sampleFindings()))
	next, _ := m.Update(statusMsg("Copied src/app.go:3"))
	m = next.(Model)
	if !strings.Contains(m.View(), "Copied src/app.go:3") {
		t.Fatal("status line should be rendered")
	}
}

func TestSelectedEmpty(t *testing.T) {
	m := sized(t, NewModel(nil))
	if _, ok := m.selected(); ok {
		t.Fatal("no findings, nothing selected")
	}
	if !strings.Contains(m.detailContent(), "No finding selected.") {
		t.Fatalf("detail=%q", m.detailContent())
	}
}
