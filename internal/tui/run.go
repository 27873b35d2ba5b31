package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/secretaudit/secretaudit/internal/types"
)

// Run opens the findings browser. It refuses to start when stdout is not a
// terminal, since the alt-screen UI would corrupt piped output.
func Run(findings []types.Finding) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("browse requires an interactive terminal")
	}
	p := tea.NewProgram(NewModel(findings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
