// ABOUTME: Generation history screen backed by a bubbles table
// ABOUTME: Lists past generations and lets the user open one for details

package history

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mediaforge/mediaforge-cli/internal/api"
	"github.com/mediaforge/mediaforge-cli/internal/tui/styles"
)

// SelectedMsg is sent when the user opens a record
type SelectedMsg struct {
	Generation api.Generation
}

// BackMsg is sent when the user leaves the history screen
type BackMsg struct{}

const promptColumnMin = 20

// History displays past generations in a scrollable table
type History struct {
	records []api.Generation
	table   table.Model
	width   int
	height  int
}

// New creates a history screen from a list of generation records
func New(records []api.Generation, width, height int) *History {
	h := &History{
		records: records,
		width:   width,
		height:  height,
	}
	h.table = h.buildTable()
	return h
}

func (h *History) buildTable() table.Model {
	promptWidth := h.width - 16 - 10 - 12 - 9 - 10
	if promptWidth < promptColumnMin {
		promptWidth = promptColumnMin
	}

	columns := []table.Column{
		{Title: "Created", Width: 16},
		{Title: "Type", Width: 10},
		{Title: "Status", Width: 12},
		{Title: "Credits", Width: 9},
		{Title: "Prompt", Width: promptWidth},
	}

	rows := make([]table.Row, 0, len(h.records))
	for _, g := range h.records {
		rows = append(rows, table.Row{
			g.CreatedAt.Format("2006-01-02 15:04"),
			g.Type,
			g.Status,
			fmt.Sprintf("%d", g.CreditsUsed),
			truncate(promptText(g), promptWidth),
		})
	}

	height := h.height - 4
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Foreground(styles.Primary).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#000000")).
		Background(styles.Primary).
		Bold(false)
	t.SetStyles(s)

	return t
}

// promptText picks the most descriptive field for the prompt column
func promptText(g api.Generation) string {
	if g.Prompt != "" {
		return g.Prompt
	}
	if g.ErrorMessage != "" {
		return g.ErrorMessage
	}
	return g.OutputURL
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

// SetSize resizes the table to fit the available area
func (h *History) SetSize(width, height int) {
	h.width = width
	h.height = height
	cursor := h.table.Cursor()
	h.table = h.buildTable()
	h.table.SetCursor(cursor)
}

// Init implements tea.Model
func (h *History) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (h *History) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "b":
			return h, func() tea.Msg { return BackMsg{} }
		case "enter":
			idx := h.table.Cursor()
			if idx >= 0 && idx < len(h.records) {
				selected := h.records[idx]
				return h, func() tea.Msg { return SelectedMsg{Generation: selected} }
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.table, cmd = h.table.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *History) View() string {
	if len(h.records) == 0 {
		return styles.Subtitle.Render("No generations yet.")
	}

	title := styles.Title.Render(fmt.Sprintf("History (%d)", len(h.records)))
	return title + "\n" + h.table.View()
}
