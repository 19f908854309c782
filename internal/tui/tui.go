// Package tui is the read-only interactive browser for scan findings. It
// executes nothing; every suggestion is a command for the user to run in
// their own shell.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fyrsmithlabs/gitscan/internal/rules"
)

type item struct {
	finding rules.Finding
}

func (i item) Title() string {
	return fmt.Sprintf("[%s] %s", i.finding.Severity, i.finding.RuleID)
}

func (i item) Description() string {
	if i.finding.Suggestion != "" {
		return i.finding.Suggestion
	}
	return i.finding.Message
}

func (i item) FilterValue() string { return i.finding.RuleID }

type model struct {
	list list.Model
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "enter", "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.list.View() + "\n" + lipgloss.NewStyle().Faint(true).Render("read-only: run chosen commands in your own shell (q to quit)")
}

// Run shows the findings browser and blocks until the user quits.
func Run(findings []rules.Finding) error {
	items := make([]list.Item, 0, len(findings))
	for _, f := range findings {
		items = append(items, item{finding: f})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "gitscan findings"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	_, err := tea.NewProgram(model{list: l}).Run()
	return err
}
