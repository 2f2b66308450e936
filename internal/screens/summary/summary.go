package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberquest/internal/adventure"
	"github.com/abhisek/numberquest/internal/screen"
	"github.com/abhisek/numberquest/internal/ui/components"
	"github.com/abhisek/numberquest/internal/ui/layout"
	"github.com/abhisek/numberquest/internal/ui/theme"
)

// SummaryScreen is the outro: the happy ending and the run summary.
type SummaryScreen struct {
	summary *adventure.Summary
	menu    components.Menu
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *adventure.Summary) *SummaryScreen {
	return &SummaryScreen{
		summary: summary,
		menu: components.NewMenu([]components.MenuItem{
			{Label: "Play again", Action: func() tea.Cmd { return screen.Advance }},
			{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
		}),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return adventure.Outro.Title()
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	var b strings.Builder

	for _, line := range adventure.Script(adventure.Outro) {
		b.WriteString(components.SpeechBubble(line.Speaker, line.Text, cw))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Title.Render("✨ 📘 ✨"))
	b.WriteString("\n\n")

	// Duration.
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Adventure time: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	// Stats line.
	statsLine := fmt.Sprintf("Answers: %d    Correct: %d    Accuracy: %.0f%%",
		sum.TotalQuestions, sum.TotalCorrect, sum.Accuracy*100)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(cw, 48)))
	b.WriteString(divider)
	b.WriteString("\n")

	// Per-stage results.
	for _, r := range sum.StageResults {
		line := fmt.Sprintf("%-22s %d/%d correct", r.Stage.Title(), r.Correct, r.Attempted)
		if r.Resets > 0 {
			line += fmt.Sprintf("  (%d restarts)", r.Resets)
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}

	if sum.Combination != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Vault combination: ") + theme.Equation.Render(sum.Combination))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.menu.View())

	content := lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
