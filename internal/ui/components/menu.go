package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberquest/internal/ui/theme"
)

// MenuItem represents a single entry in a vertical menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a vertical menu navigated with arrows or number keys.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first item selected.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles keyboard navigation. Selection wraps around.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		m.Selected = (m.Selected - 1 + len(m.Items)) % len(m.Items)
		return m, nil
	case "down", "j", "tab":
		m.Selected = (m.Selected + 1) % len(m.Items)
		return m, nil
	case "enter":
		return m, m.activate()
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Items) {
		m.Selected = n - 1
		return m, m.activate()
	}
	return m, nil
}

func (m Menu) activate() tea.Cmd {
	item := m.Items[m.Selected]
	if item.Action == nil {
		return nil
	}
	return item.Action()
}

// View renders the menu.
func (m Menu) View() string {
	lines := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		if i == m.Selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("▸ "+item.Label))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("  "+item.Label))
		}
	}
	return strings.Join(lines, "\n")
}
