package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Selection holds the choices made in the menu.
type Selection struct {
	Frontend   string
	Difficulty config.DifficultyPreset
}

type menuStep int

const (
	stepFrontend menuStep = iota
	stepDifficulty
)

// difficultyChoices lists the presets offered by the menu, default first.
var difficultyChoices = []struct {
	preset config.DifficultyPreset
	label  string
}{
	{config.DifficultyNormal, "Normal - default speeds"},
	{config.DifficultyEasy, "Easy - slow start, gentle speed-up"},
	{config.DifficultyHard, "Hard - fast start, steep speed-up"},
	{config.DifficultyFixed, "Fixed - speed never changes"},
}

// MenuKeyMap defines the key bindings for the menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel lets the player pick a frontend and a difficulty before playing.
type MenuModel struct {
	frontends []registry.FrontendInfo
	keys      MenuKeyMap
	step      menuStep
	cursor    int
	selection Selection
	width     int
	height    int
	done      bool
	quitting  bool
}

// NewMenuModel creates a menu over the given frontends.
func NewMenuModel(frontends []registry.FrontendInfo, width, height int) MenuModel {
	return MenuModel{
		frontends: frontends,
		keys:      DefaultMenuKeyMap(),
		width:     width,
		height:    height,
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.step == stepDifficulty {
			m.step = stepFrontend
			m.cursor = m.frontendIndex(m.selection.Frontend)
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.optionCount()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if m.optionCount() == 0 {
			return m, nil
		}
		if m.step == stepFrontend {
			m.selection.Frontend = m.frontends[m.cursor].ID
			m.step = stepDifficulty
			m.cursor = 0
			return m, nil
		}
		m.selection.Difficulty = difficultyChoices[m.cursor].preset
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m MenuModel) optionCount() int {
	if m.step == stepFrontend {
		return len(m.frontends)
	}
	return len(difficultyChoices)
}

func (m MenuModel) frontendIndex(id string) int {
	for i, f := range m.frontends {
		if f.ID == id {
			return i
		}
	}
	return 0
}

// View renders the current menu step.
func (m MenuModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	title, options := "Choose where to play:", make([]string, 0, m.optionCount())
	if m.step == stepFrontend {
		for _, f := range m.frontends {
			options = append(options, fmt.Sprintf("%s (%s)", f.Title, f.ID))
		}
	} else {
		title = "Choose a difficulty:"
		for _, d := range difficultyChoices {
			options = append(options, d.label)
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.center(menuTitleStyle.Render("S N A K E")))
	b.WriteString("\n\n")
	b.WriteString(m.center(title))
	b.WriteString("\n\n")
	for i, opt := range options {
		line := "  " + opt
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + opt)
		}
		b.WriteString(m.center(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.center(menuHintStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit")))

	return b.String()
}

func (m MenuModel) center(s string) string {
	if m.width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
}

// Selected returns the selection, or nil if the menu was left without one.
func (m MenuModel) Selected() *Selection {
	if !m.done {
		return nil
	}
	sel := m.selection
	return &sel
}

// RunMenu shows the menu and returns the selection, or nil on quit.
func RunMenu(frontends []registry.FrontendInfo, width, height int) (*Selection, error) {
	p := tea.NewProgram(
		NewMenuModel(frontends, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
