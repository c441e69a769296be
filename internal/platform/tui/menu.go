package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items    []registry.VariantInfo
	cursor   int
	width    int
	height   int
	keys     KeyMap
	quitting bool
	selected *registry.VariantInfo
}

// NewMenuModel creates a menu over every registered variant.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:  registry.List(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		keys:   DefaultKeyMap(),
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
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a variant", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-14s", item.Title)
		if i == m.cursor {
			line = cursorStyle.Render(fmt.Sprintf("> %-14s", item.Title))
		}
		b.WriteString(line)
		b.WriteString(dimStyle.Render(" " + item.Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ move  enter play  q quit"))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen variant, or nil if none was chosen.
func (m MenuModel) Selected() *registry.VariantInfo {
	return m.selected
}

// IsQuitting returns true if the user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within the given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	visible := lipgloss.Width(text)
	if visible >= width {
		return text
	}
	return strings.Repeat(" ", (width-visible)/2) + text
}
