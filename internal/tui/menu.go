// Package tui implements the interactive menu front-end: create a new
// project, continue an existing one, or quit. The menu only collects the
// user's choice; the command layer acts on the returned selection.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/squadhq/squad/pkg/models"
)

// Action is what the user chose from the main menu.
type Action int

const (
	ActionQuit Action = iota
	ActionNewProject
	ActionContinueProject
)

// Selection is the outcome of one menu session.
type Selection struct {
	Action  Action
	Request string
	// Project is set for ActionContinueProject.
	Project *models.Project
}

// DefaultContinueRequest is used when the user continues a project without
// typing an additional request.
const DefaultContinueRequest = "Please review the current project status and continue with the next appropriate steps in the development workflow."

type mode int

const (
	modeMenu mode = iota
	modeRequest
	modePicker
	modeContinueRequest
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedStyle = lipgloss.NewStyle().
			PaddingLeft(0).
			Foreground(lipgloss.Color("205")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

var menuItems = []string{
	"🆕 Create New Project",
	"📂 Continue Existing Project",
	"❌ Quit",
}

// Menu is the bubbletea model for the main menu.
type Menu struct {
	mode     mode
	cursor   int
	input    textinput.Model
	projects []*models.Project
	picked   *models.Project

	selection Selection
	done      bool
	width     int
}

// NewMenu creates the menu over the given existing projects.
func NewMenu(projects []*models.Project) *Menu {
	ti := textinput.New()
	ti.Placeholder = "Describe your project and press Enter..."
	ti.CharLimit = 500
	ti.Width = 60

	return &Menu{
		input:     ti,
		projects:  projects,
		selection: Selection{Action: ActionQuit},
		width:     80,
	}
}

// Selection returns the user's choice after the program has finished.
func (m *Menu) Selection() Selection {
	return m.selection
}

// Init implements tea.Model.
func (m *Menu) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 8
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.selection = Selection{Action: ActionQuit}
			m.done = true
			return m, tea.Quit
		}

		switch m.mode {
		case modeMenu:
			return m.updateMenu(msg)
		case modeRequest, modeContinueRequest:
			return m.updateRequest(msg)
		case modePicker:
			return m.updatePicker(msg)
		}
	}

	return m, nil
}

func (m *Menu) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "1", "2", "3":
		m.cursor = int(msg.String()[0] - '1')
		return m.chooseMenuItem()
	case "enter":
		return m.chooseMenuItem()
	case "q", "esc":
		m.selection = Selection{Action: ActionQuit}
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Menu) chooseMenuItem() (tea.Model, tea.Cmd) {
	switch m.cursor {
	case 0:
		m.mode = modeRequest
		m.input.Reset()
		m.input.Placeholder = "Describe your project and press Enter..."
		return m, m.input.Focus()
	case 1:
		if len(m.projects) == 0 {
			// Nothing to continue; stay on the menu.
			return m, nil
		}
		m.mode = modePicker
		m.cursor = 0
		return m, nil
	default:
		m.selection = Selection{Action: ActionQuit}
		m.done = true
		return m, tea.Quit
	}
}

func (m *Menu) updateRequest(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeMenu
		m.cursor = 0
		m.input.Blur()
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		if m.mode == modeContinueRequest {
			if text == "" {
				text = DefaultContinueRequest
			}
			m.selection = Selection{Action: ActionContinueProject, Request: text, Project: m.picked}
			m.done = true
			return m, tea.Quit
		}
		if text == "" {
			return m, nil
		}
		m.selection = Selection{Action: ActionNewProject, Request: text}
		m.done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Menu) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.projects)-1 {
			m.cursor++
		}
	case "esc":
		m.mode = modeMenu
		m.cursor = 0
	case "enter":
		m.picked = m.projects[m.cursor]
		m.mode = modeContinueRequest
		m.input.Reset()
		m.input.Placeholder = "Additional request (Enter for default workflow)..."
		return m, m.input.Focus()
	}
	return m, nil
}

// View implements tea.Model.
func (m *Menu) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("🚀 Squad - Multi-Agent Development System"))
	b.WriteString("\n\n")

	switch m.mode {
	case modeMenu:
		for i, item := range menuItems {
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("❯ " + item))
			} else {
				b.WriteString(itemStyle.Render(item))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ move · enter select · q quit"))

	case modeRequest:
		b.WriteString("📝 Enter your project request:\n\n")
		b.WriteString(boxStyle.Width(m.width - 2).Render(m.input.View()))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter submit · esc back"))

	case modePicker:
		fmt.Fprintf(&b, "📂 Found %d existing project(s):\n\n", len(m.projects))
		for i, proj := range m.projects {
			line := fmt.Sprintf("%s - %s", proj.Folder, proj.Title)
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("❯ " + line))
			} else {
				b.WriteString(itemStyle.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ move · enter select · esc back"))

	case modeContinueRequest:
		fmt.Fprintf(&b, "📁 Selected project: %s\n\n", m.picked.Folder)
		b.WriteString("📝 Enter your additional request:\n\n")
		b.WriteString(boxStyle.Width(m.width - 2).Render(m.input.View()))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter submit (empty = continue workflow) · esc back"))
	}

	b.WriteString("\n")
	return b.String()
}

// Run starts the menu program and returns the user's selection.
func Run(projects []*models.Project) (Selection, error) {
	menu := NewMenu(projects)
	p := tea.NewProgram(menu)
	if _, err := p.Run(); err != nil {
		return Selection{Action: ActionQuit}, fmt.Errorf("run menu: %w", err)
	}
	return menu.Selection(), nil
}
