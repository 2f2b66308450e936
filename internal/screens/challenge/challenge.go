package challenge

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numberquest/internal/adventure"
	"github.com/abhisek/numberquest/internal/problemgen"
	"github.com/abhisek/numberquest/internal/screen"
	"github.com/abhisek/numberquest/internal/ui/components"
	"github.com/abhisek/numberquest/internal/ui/layout"
)

// maxGenerateAttempts bounds regeneration when a problem fails validation.
const maxGenerateAttempts = 3

// Generator produces validated problems for a stage context.
type Generator interface {
	GenerateChecked(stage problemgen.StageContext) (*problemgen.Problem, error)
}

type phase int

const (
	phaseLoading phase = iota
	phaseAnswering
	phaseFeedback
	phaseComplete
)

// ChallengeScreen runs the problem loop of a challenge stage.
type ChallengeScreen struct {
	state     *adventure.State
	generator Generator
	phase     phase
	input     components.AnswerInput
	choice    components.MultiChoice
	onward    components.Button

	// answered is the problem the feedback panel describes. The challenge
	// drops its problem on a correct answer, so it is kept here.
	answered    *problemgen.Problem
	lastCorrect bool
	lastOutcome adventure.Outcome

	showingQuitConfirm bool
	errMsg             string
}

var _ screen.Screen = (*ChallengeScreen)(nil)
var _ screen.KeyHintProvider = (*ChallengeScreen)(nil)
var _ screen.StatusProvider = (*ChallengeScreen)(nil)

// New creates a ChallengeScreen for the active challenge in state.
func New(state *adventure.State, generator Generator) *ChallengeScreen {
	return &ChallengeScreen{
		state:     state,
		generator: generator,
		input:     components.NewAnswerInput("?", 8),
		onward:    components.NewButton("Onward", true, func() tea.Cmd { return screen.Advance }),
	}
}

func (s *ChallengeScreen) challenge() *adventure.Challenge {
	return s.state.Challenge
}

func (s *ChallengeScreen) Init() tea.Cmd {
	c := s.challenge()
	if c == nil {
		s.errMsg = "no challenge on this stage"
		return nil
	}
	if c.Done() {
		s.phase = phaseComplete
		return nil
	}
	if c.NeedsProblem() {
		s.phase = phaseLoading
		return s.generateProblem()
	}
	return s.present(c.Problem)
}

func (s *ChallengeScreen) Title() string {
	return s.state.Stage.Title()
}

// Status renders the progress readout for the header.
func (s *ChallengeScreen) Status() string {
	c := s.challenge()
	if c == nil {
		return ""
	}
	switch {
	case c.Rules.BuildsCombination:
		return "Combination " + c.CombinationString()
	case c.Rules.Lives > 0:
		return fmt.Sprintf("%s %d/%d  %s", c.Rules.GoalLabel, c.Solved, c.Rules.Goal,
			components.Hearts(c.LivesLeft, c.Rules.Lives))
	default:
		return fmt.Sprintf("%s %d/%d", c.Rules.GoalLabel, c.Solved, c.Rules.Goal)
	}
}

func (s *ChallengeScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.phase {
	case phaseFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case phaseComplete:
		return []layout.KeyHint{{Key: "Enter", Description: "Onward"}}
	case phaseAnswering:
		if s.answered != nil && s.answered.IsMultipleChoice() {
			return []layout.KeyHint{
				{Key: "1-4", Description: "Choose"},
				{Key: "↑↓", Description: "Move"},
				{Key: "Enter", Description: "Submit"},
				{Key: "Esc", Description: "Quit"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return nil
}

func (s *ChallengeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case problemReadyMsg:
		return s.handleProblemReady(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseAnswering && !s.showingQuitConfirm && !s.answered.IsMultipleChoice() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// generateProblem generates the next problem asynchronously, retrying
// failures the validator marks as retryable.
func (s *ChallengeScreen) generateProblem() tea.Cmd {
	c := s.challenge()
	gen := s.generator
	return func() tea.Msg {
		var p *problemgen.Problem
		var err error
		for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
			p, err = gen.GenerateChecked(c.Context)
			if err == nil {
				break
			}
			var valErr *problemgen.ValidationError
			if errors.As(err, &valErr) && !valErr.Retryable {
				break
			}
		}
		if err != nil {
			return problemReadyMsg{Err: fmt.Errorf("generate %s problem: %w", c.Context, err)}
		}
		return problemReadyMsg{Problem: p}
	}
}

func (s *ChallengeScreen) handleProblemReady(msg problemReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.challenge().SetProblem(msg.Problem)
	return s, s.present(msg.Problem)
}

// present shows p and prepares the matching input.
func (s *ChallengeScreen) present(p *problemgen.Problem) tea.Cmd {
	s.answered = p
	s.phase = phaseAnswering
	if p.IsMultipleChoice() {
		s.choice = components.NewMultiChoice(p.Options, problemgen.CorrectIndex(p))
		return nil
	}
	s.input = components.NewAnswerInput("?", 8)
	return s.input.Init()
}

func (s *ChallengeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, tea.Quit
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			return s, tea.Quit
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	switch s.phase {
	case phaseFeedback:
		return s, func() tea.Msg { return feedbackDoneMsg{} }

	case phaseComplete:
		var cmd tea.Cmd
		s.onward, cmd = s.onward.Update(msg)
		return s, cmd

	case phaseAnswering:
		if key == "esc" {
			s.showingQuitConfirm = true
			return s, nil
		}
		if s.answered.IsMultipleChoice() {
			s.choice, _ = s.choice.Update(msg)
			if s.choice.Submitted {
				return s.submit(s.choice.IsCorrect())
			}
			return s, nil
		}
		if key == "enter" {
			value := s.input.Value()
			if value == "" {
				return s, nil
			}
			return s.submit(problemgen.CheckAnswer(value, s.answered))
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// submit records the answer and shows feedback.
func (s *ChallengeScreen) submit(correct bool) (screen.Screen, tea.Cmd) {
	s.lastCorrect = correct
	s.lastOutcome = s.state.Record(correct)
	s.input.Submit(correct)
	s.phase = phaseFeedback
	return s, nil
}

func (s *ChallengeScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if s.phase != phaseFeedback {
		return s, nil
	}
	c := s.challenge()

	switch {
	case c.Done():
		s.phase = phaseComplete
		return s, nil
	case c.NeedsProblem():
		s.phase = phaseLoading
		return s, s.generateProblem()
	}

	// Same problem, another try.
	s.phase = phaseAnswering
	if s.answered.IsMultipleChoice() {
		s.choice.Reset()
		return s, nil
	}
	s.input.Clear()
	return s, s.input.Init()
}
