package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Brilu-22/tunetiles/internal/trivia"
)

// MenuKeyMap defines the key bindings for the category picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the category picker.
type MenuModel struct {
	categories []trivia.Category
	cursor     int
	width      int
	height     int
	keys       MenuKeyMap
	selected   string
	quitting   bool
}

// NewMenuModel creates a category picker over the catalog.
func NewMenuModel(catalog *trivia.Catalog, width, height int) MenuModel {
	return MenuModel{
		categories: catalog.Categories,
		width:      width,
		height:     height,
		keys:       DefaultMenuKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.categories)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Select):
			if len(m.categories) > 0 {
				m.selected = m.categories[m.cursor].ID
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the category list.
func (m MenuModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("T U N E T I L E S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a trivia category", m.width))
	b.WriteString("\n\n")

	for i, cat := range m.categories {
		cursor := "  "
		line := fmt.Sprintf("%s (%d questions)", cat.Title, len(cat.Questions))
		if i == m.cursor {
			cursor = "> "
			line = activeStyle.Render(line)
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: navigate  |  Enter: select  |  Q: quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen category id, or "" if the user quit.
func (m MenuModel) Selected() string {
	return m.selected
}

// RunCategoryMenu shows the category picker and returns the chosen
// category id, or "" if the user quit without choosing.
func RunCategoryMenu(catalog *trivia.Catalog, width, height int) (string, error) {
	model := NewMenuModel(catalog, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
