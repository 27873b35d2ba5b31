package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/secretaudit/secretaudit/internal/types"
)

var (
	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	detailBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))

	categoryStyles = map[types.Category]lipgloss.Style{
		types.CatProduction: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		types.CatEncrypted:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		types.CatLowEntropy: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		types.CatTestData:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		types.CatExample:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	}
)

type statusMsg string

// Model is the findings browser: a table of findings, a detail pane for the
// selected one, and a filter input.
type Model struct {
	findings []types.Finding
	filtered []types.Finding

	table     table.Model
	detail    viewport.Model
	filter    textinput.Model
	filtering bool
	status    string

	width  int
	height int
	ready  bool
}

// NewModel builds a browser over the given findings.
func NewModel(findings []types.Finding) Model {
	filter := textinput.New()
	filter.Placeholder = "filter by path, rule, or category"
	filter.CharLimit = 120

	m := Model{
		findings: findings,
		filtered: findings,
		filter:   filter,
		detail:   viewport.New(0, 0),
	}
	m.table = newFindingsTable(findings, 10)
	return m
}

func newFindingsTable(findings []types.Finding, height int) table.Model {
	columns := []table.Column{
		{Title: "Category", Width: 12},
		{Title: "Rule", Width: 20},
		{Title: "Location", Width: 42},
		{Title: "Sample", Width: 16},
		{Title: "Entropy", Width: 7},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(findingRows(findings)),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func findingRows(findings []types.Finding) []table.Row {
	rows := make([]table.Row, len(findings))
	for i, f := range findings {
		rows[i] = table.Row{
			string(f.Category),
			f.Rule,
			fmt.Sprintf("%s:%d", f.File, f.Line),
			f.Sample,
			fmt.Sprintf("%.2f", f.Entropy),
		}
	}
	return rows
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		tableHeight := m.height/2 - 4
		if tableHeight < 3 {
			tableHeight = 3
		}
		m.table.SetHeight(tableHeight)
		m.table.SetWidth(m.width - 2)
		m.detail.Width = m.width - 4
		m.detail.Height = m.height - tableHeight - 7
		if m.detail.Height < 3 {
			m.detail.Height = 3
		}

	case statusMsg:
		m.status = string(msg)

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter", "esc":
				m.filtering = false
				m.filter.Blur()
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				cmds = append(cmds, cmd)
			}
			m.applyFilter()
			return m, tea.Batch(cmds...)
		}

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "/":
			m.filtering = true
			m.filter.Focus()
			return m, nil
		case "c":
			return m, m.copyLocation()
		case "y":
			return m, m.copyDetails()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	cmds = append(cmds, cmd)
	m.detail.SetContent(m.detailContent())
	m.detail, cmd = m.detail.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if q == "" {
		m.filtered = m.findings
	} else {
		var out []types.Finding
		for _, f := range m.findings {
			hay := strings.ToLower(f.File + " " + f.Rule + " " + string(f.Category))
			if strings.Contains(hay, q) {
				out = append(out, f)
			}
		}
		m.filtered = out
	}
	m.table.SetRows(findingRows(m.filtered))
	if m.table.Cursor() >= len(m.filtered) {
		m.table.SetCursor(0)
	}
}

func (m Model) selected() (types.Finding, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.filtered) {
		return types.Finding{}, false
	}
	return m.filtered[i], true
}

func (m Model) detailContent() string {
	f, ok := m.selected()
	if !ok {
		return "No finding selected."
	}
	cat := string(f.Category)
	if st, ok := categoryStyles[f.Category]; ok {
		cat = st.Render(cat)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", keyStyle.Render("Category:"), cat)
	fmt.Fprintf(&sb, "%s %s (%s)\n", keyStyle.Render("Rule:"), f.Rule, f.Description)
	fmt.Fprintf(&sb, "%s %s:%d\n", keyStyle.Render("Location:"), f.File, f.Line)
	fmt.Fprintf(&sb, "%s %s\n", keyStyle.Render("Sample:"), f.Sample)
	fmt.Fprintf(&sb, "%s %.2f bits/char\n\n", keyStyle.Render("Entropy:"), f.Entropy)
	fmt.Fprintf(&sb, "%s\n%s\n", keyStyle.Render("Context:"), highlightContext(f))
	return sb.String()
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	title := titleStyle.Render(fmt.Sprintf("secretaudit: %d findings", len(m.filtered)))
	help := "↑/↓ select  / filter  c copy location  y copy details  q quit"
	if m.filtering {
		help = "enter/esc done filtering"
	}

	parts := []string{
		title,
		tableBorderStyle.Render(m.table.View()),
		detailBorderStyle.Render(m.detail.View()),
	}
	if m.filtering || m.filter.Value() != "" {
		parts = append(parts, m.filter.View())
	}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(" "+m.status+" "))
	}
	parts = append(parts, help)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
