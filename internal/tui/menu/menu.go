// ABOUTME: Studio action menu as a bubbletea child model
// ABOUTME: Lets the user pick a generation type or navigate to other screens

package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mediaforge/mediaforge-cli/internal/tui/icons"
	"github.com/mediaforge/mediaforge-cli/internal/tui/styles"
)

// Action identifies a menu entry
type Action int

const (
	ActionImage Action = iota
	ActionBanner
	ActionLogo
	ActionRemoveBackground
	ActionVideo
	ActionPresenter
	ActionVoiceover
	ActionHistory
	ActionAccount
	ActionQuit
)

// ActionSelectedMsg is sent when the user picks an entry
type ActionSelectedMsg struct {
	Action Action
}

type entry struct {
	icon   icons.Icon
	label  string
	action Action
}

// Menu is the studio action menu
type Menu struct {
	entries []entry
	cursor  int
	width   int
}

// New creates the studio menu
func New() *Menu {
	return &Menu{
		entries: []entry{
			{icons.Image, "Generate image", ActionImage},
			{icons.Banner, "Generate banner", ActionBanner},
			{icons.Logo, "Generate logo", ActionLogo},
			{icons.Scissors, "Remove background", ActionRemoveBackground},
			{icons.Video, "Generate video", ActionVideo},
			{icons.Presenter, "Presenter video", ActionPresenter},
			{icons.Voice, "Voiceover", ActionVoiceover},
			{icons.History, "History", ActionHistory},
			{icons.Account, "Account", ActionAccount},
			{icons.Quit, "Quit", ActionQuit},
		},
	}
}

// Init implements tea.Model
func (m *Menu) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "enter":
			selected := m.entries[m.cursor].action
			return m, func() tea.Msg { return ActionSelectedMsg{Action: selected} }
		case "q":
			return m, func() tea.Msg { return ActionSelectedMsg{Action: ActionQuit} }
		}
	}

	return m, nil
}

// Selected returns the action under the cursor
func (m *Menu) Selected() Action {
	return m.entries[m.cursor].action
}

// View implements tea.Model
func (m *Menu) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("What would you like to create?"))
	sb.WriteString("\n\n")

	selectedStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	normalStyle := lipgloss.NewStyle().Foreground(styles.Text)

	for i, e := range m.entries {
		line := fmt.Sprintf("%s %s", e.icon.String(), e.label)
		if i == m.cursor {
			sb.WriteString(selectedStyle.Render("> " + line))
		} else {
			sb.WriteString(normalStyle.Render("  " + line))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
