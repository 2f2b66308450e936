package story

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numberquest/internal/adventure"
	"github.com/abhisek/numberquest/internal/screen"
	"github.com/abhisek/numberquest/internal/ui/components"
	"github.com/abhisek/numberquest/internal/ui/layout"
	"github.com/abhisek/numberquest/internal/ui/theme"
)

// finalLabels is the button text on the last line of each scene.
var finalLabels = map[adventure.Stage]string{
	adventure.Intro:        "Open the book",
	adventure.MeetGenie:    "I'm ready!",
	adventure.Relationship: "We found the secret!",
}

// StoryScreen plays the dialogue of a story stage one line at a time.
type StoryScreen struct {
	stage    adventure.Stage
	lines    []adventure.Line
	step     int
	revealed bool
	done     bool
	button   components.Button
}

var _ screen.Screen = (*StoryScreen)(nil)
var _ screen.KeyHintProvider = (*StoryScreen)(nil)

// New creates the scene for a story stage.
func New(stage adventure.Stage) *StoryScreen {
	s := &StoryScreen{
		stage: stage,
		lines: adventure.Script(stage),
	}
	s.button = components.NewButton("", true, s.press)
	s.syncButton()
	return s
}

func (s *StoryScreen) Init() tea.Cmd {
	return nil
}

func (s *StoryScreen) Title() string {
	return s.stage.Title()
}

func (s *StoryScreen) KeyHints() []layout.KeyHint {
	if s.needsReveal() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Reveal"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: s.buttonLabel()},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *StoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.done {
		return s, nil
	}

	switch kmsg.String() {
	case "right", "l":
		return s, s.press()
	}

	var cmd tea.Cmd
	s.button, cmd = s.button.Update(kmsg)
	return s, cmd
}

// press reveals the fact, steps to the next line or ends the scene.
func (s *StoryScreen) press() tea.Cmd {
	defer s.syncButton()
	if s.needsReveal() {
		s.revealed = true
		return nil
	}
	if s.step < len(s.lines)-1 {
		s.step++
		return nil
	}
	s.done = true
	return screen.Advance
}

func (s *StoryScreen) syncButton() {
	if s.needsReveal() {
		s.button.Label = "Reveal the secret"
		return
	}
	s.button.Label = s.buttonLabel()
}

// needsReveal reports whether the relationship fact is still hidden.
func (s *StoryScreen) needsReveal() bool {
	return s.stage == adventure.Relationship && !s.revealed
}

func (s *StoryScreen) onLastLine() bool {
	return s.step >= len(s.lines)-1
}

func (s *StoryScreen) buttonLabel() string {
	if s.onLastLine() {
		if l, ok := finalLabels[s.stage]; ok {
			return l
		}
		return "Continue"
	}
	return "Next"
}

func (s *StoryScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string

	if s.stage == adventure.Intro {
		sections = append(sections, RenderBanner(width, height), "")
	}

	if s.stage == adventure.Relationship {
		sections = append(sections, s.renderFact(cw), "")
		if s.needsReveal() {
			sections = append(sections, s.button.View())
			return layout.Center(strings.Join(sections, "\n"), width, height)
		}
	}

	if len(s.lines) > 0 {
		line := s.lines[s.step]
		sections = append(sections, components.SpeechBubble(line.Speaker, line.Text, cw), "")
	}

	sections = append(sections, s.button.View())

	return layout.Center(strings.Join(sections, "\n"), width, height)
}

// renderFact shows the multiplication fact and, once revealed, its
// division mirror.
func (s *StoryScreen) renderFact(cw int) string {
	f := adventure.RelationshipFact
	mul := theme.Equation.Render(f.Multiplication())
	if !s.revealed {
		return components.SceneCard(mul+"\n\n"+theme.Hint.Render("?"), cw)
	}
	div := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(f.Division())
	return components.SceneCard(mul+"\n⇅\n"+div, cw)
}
