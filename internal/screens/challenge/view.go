package challenge

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberquest/internal/adventure"
	"github.com/abhisek/numberquest/internal/problemgen"
	"github.com/abhisek/numberquest/internal/ui/components"
	"github.com/abhisek/numberquest/internal/ui/theme"
)

// intros is the line shown above the first problem of each challenge.
var intros = map[adventure.Stage]string{
	adventure.SecretCipher:   "Solve 3 symbols to break the secret cipher.",
	adventure.PerilousPath:   "Take 5 safe steps across the path. A wrong answer costs a heart!",
	adventure.VaultChallenge: "Open 3 locks. Each answer's first digit joins the vault combination.",
}

func (s *ChallengeScreen) View(width, height int) string {
	var body string
	switch {
	case s.errMsg != "":
		body = renderError(s.errMsg)
	case s.showingQuitConfirm:
		body = renderQuitConfirm()
	case s.phase == phaseLoading:
		body = theme.Hint.Render("The genie is conjuring a problem...")
	case s.phase == phaseComplete:
		body = s.renderComplete(width)
	case s.phase == phaseFeedback:
		body = s.renderFeedback(width)
	default:
		body = s.renderProblem(width)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// renderProgress draws the goal bar under the intro line.
func (s *ChallengeScreen) renderProgress(cw int) string {
	c := s.challenge()
	bar := components.NewProgressBar(c.Rules.GoalLabel, c.Solved, c.Rules.Goal, cw)
	line := bar.View()
	if c.Rules.Lives > 0 {
		line += "\n" + components.Hearts(c.LivesLeft, c.Rules.Lives)
	}
	return line
}

func (s *ChallengeScreen) renderProblem(width int) string {
	p := s.answered
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Hint.Render(intros[s.state.Stage]))
	b.WriteString("\n\n")
	b.WriteString(s.renderProgress(cw))
	b.WriteString("\n\n")

	var card strings.Builder
	card.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(p.Title))
	card.WriteString("\n\n")
	if p.QuestionText != "" {
		card.WriteString(lipgloss.NewStyle().Width(cw - 6).Foreground(theme.Text).Render(p.QuestionText))
		card.WriteString("\n\n")
	}
	card.WriteString(s.renderEquation(p))

	if p.IsMultipleChoice() {
		card.WriteString("\n\n")
		card.WriteString(s.choice.View())
	}

	b.WriteString(components.SceneCard(card.String(), cw))
	return b.String()
}

// renderEquation draws the question parts with the input in place of the
// blank.
func (s *ChallengeScreen) renderEquation(p *problemgen.Problem) string {
	var b strings.Builder
	for _, part := range p.QuestionParts {
		if part.Kind == problemgen.PartInput {
			b.WriteString(s.input.View())
			continue
		}
		b.WriteString(theme.Equation.Render(part.Value))
	}
	return b.String()
}

func (s *ChallengeScreen) renderFeedback(width int) string {
	p := s.answered
	cw := components.ContentWidth(width)

	var b strings.Builder
	switch {
	case s.lastCorrect:
		b.WriteString(theme.Correct.Render(correctLine(s.state.Stage)))
	case s.lastOutcome == adventure.OutcomeReset:
		b.WriteString(theme.Incorrect.Render("Out of hearts! The path crumbles and you are back at the start."))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("The answer was %d.", p.Answer)))
	default:
		b.WriteString(theme.Incorrect.Render("Not quite. Try again!"))
	}
	b.WriteString("\n\n")

	if s.lastCorrect && p.Explanation != "" {
		b.WriteString(components.SceneCard(p.Explanation, cw))
		b.WriteString("\n\n")
	}

	b.WriteString(s.renderProgress(cw))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press any key to continue..."))
	return b.String()
}

func correctLine(stage adventure.Stage) string {
	switch stage {
	case adventure.PerilousPath:
		return "Correct! You take a safe step forward."
	case adventure.VaultChallenge:
		return "Correct! A lock clicks open."
	}
	return "Correct! A symbol glows on the cipher."
}

func (s *ChallengeScreen) renderComplete(width int) string {
	c := s.challenge()
	cw := components.ContentWidth(width)

	var msg string
	switch s.state.Stage {
	case adventure.SecretCipher:
		msg = "The cipher is solved! The patterns of tens hold no more secrets."
	case adventure.PerilousPath:
		msg = "You crossed the perilous path safely!"
	case adventure.VaultChallenge:
		msg = "The vault swings open!\n\nCombination: " +
			theme.Equation.Render(c.CombinationString())
	}

	return theme.Title.Render("Well done!") + "\n\n" +
		components.SceneCard(msg, cw) + "\n\n" +
		s.onward.View()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Leave the adventure?"),
		theme.Hint.Render("Progress is not saved."),
		"",
		lipgloss.NewStyle().Foreground(theme.Success).Render("[Y] Yes, leave"),
		lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] No, keep going"),
	)
}

// renderError renders a generation failure.
func renderError(errMsg string) string {
	return lipgloss.NewStyle().
		Foreground(theme.Error).
		Render(fmt.Sprintf("Error: %s\n\nPress any key to quit.", errMsg))
}
