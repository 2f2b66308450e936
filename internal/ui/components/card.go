package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberquest/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for scene cards so
// stacked boxes visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for the card border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// SceneCard wraps content in a rounded-border card at the given content width.
func SceneCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// SpeechBubble renders a line of dialogue. Narration (empty speaker)
// is shown in italics without a name tag.
func SpeechBubble(speaker, text string, cw int) string {
	body := lipgloss.NewStyle().Width(cw - 6).Render(text)
	if speaker == "" {
		return theme.Narration.Width(cw - 2).Align(lipgloss.Center).Render(text)
	}
	return theme.SpeechBubble.
		Width(cw - 2).
		Render(theme.Speaker.Render(speaker) + "\n" + body)
}
