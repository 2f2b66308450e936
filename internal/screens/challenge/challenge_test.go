package challenge

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numberquest/internal/adventure"
	"github.com/abhisek/numberquest/internal/problemgen"
	"github.com/abhisek/numberquest/internal/screen"
)

// stubGenerator hands out the same problem on every call.
type stubGenerator struct {
	problem *problemgen.Problem
	err     error
	calls   int
}

func (g *stubGenerator) GenerateChecked(problemgen.StageContext) (*problemgen.Problem, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	p := *g.problem
	return &p, nil
}

func fillIn() *problemgen.Problem {
	return &problemgen.Problem{
		Type:          problemgen.MultiplicationPattern,
		Title:         problemgen.MultiplicationPattern.Title(),
		QuestionParts: []problemgen.QuestionPart{problemgen.Text("70 × 300 = "), problemgen.Input()},
		Answer:        21000,
		Explanation:   "7 × 3 = 21, then add the 3 zeros: 21000.",
	}
}

func multipleChoice() *problemgen.Problem {
	return &problemgen.Problem{
		Type:          problemgen.ProductEstimation,
		Title:         problemgen.ProductEstimation.Title(),
		QuestionText:  "Estimate the product by rounding each number to the nearest ten:",
		QuestionParts: []problemgen.QuestionPart{problemgen.Text("42 × 58 ≈ ")},
		Answer:        2400,
		Options:       []int{2000, 2400, 3000, 2500},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// started returns a screen on stage with its first problem delivered.
func started(t *testing.T, stage adventure.Stage, p *problemgen.Problem) (*ChallengeScreen, *stubGenerator) {
	t.Helper()
	gen := &stubGenerator{problem: p}
	s := New(adventure.NewState(stage), gen)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a generation command from Init")
	}
	s.Update(cmd())
	if s.phase != phaseAnswering {
		t.Fatalf("phase = %v, want answering", s.phase)
	}
	return s, gen
}

func typeAnswer(s *ChallengeScreen, answer string) {
	for _, r := range answer {
		s.Update(keyPress(r))
	}
}

func TestChallenge_FillInCorrect(t *testing.T) {
	s, _ := started(t, adventure.SecretCipher, fillIn())

	typeAnswer(s, "21000")
	s.Update(specialKey(tea.KeyEnter))

	if s.phase != phaseFeedback {
		t.Fatalf("phase = %v, want feedback", s.phase)
	}
	if !s.lastCorrect {
		t.Error("expected correct answer")
	}
	if got := s.state.Results[adventure.SecretCipher].Correct; got != 1 {
		t.Errorf("Correct tally = %d, want 1", got)
	}
	if !strings.Contains(s.View(100, 30), "add the 3 zeros") {
		t.Error("feedback should show the explanation")
	}
}

func TestChallenge_EmptyEnterIgnored(t *testing.T) {
	s, _ := started(t, adventure.SecretCipher, fillIn())
	s.Update(specialKey(tea.KeyEnter))
	if s.phase != phaseAnswering {
		t.Error("empty submission should be ignored")
	}
}

func TestChallenge_WrongKeepsProblem(t *testing.T) {
	s, gen := started(t, adventure.SecretCipher, fillIn())
	before := s.challenge().Problem

	typeAnswer(s, "2100")
	s.Update(specialKey(tea.KeyEnter))
	if s.lastCorrect {
		t.Fatal("expected wrong answer")
	}

	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command dismissing feedback")
	}
	s.Update(cmd())

	if s.phase != phaseAnswering {
		t.Errorf("phase = %v, want answering", s.phase)
	}
	if s.challenge().Problem != before {
		t.Error("wrong answer should keep the same problem")
	}
	if s.input.Value() != "" {
		t.Errorf("input should be cleared, got %q", s.input.Value())
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
}

func TestChallenge_MultipleChoice(t *testing.T) {
	s, _ := started(t, adventure.PerilousPath, multipleChoice())

	s.Update(keyPress('2'))
	if s.phase != phaseFeedback || !s.lastCorrect {
		t.Fatalf("phase = %v, correct = %v", s.phase, s.lastCorrect)
	}
}

func TestChallenge_CipherCompletesAndAdvances(t *testing.T) {
	s, gen := started(t, adventure.SecretCipher, fillIn())

	for i := 0; i < 3; i++ {
		typeAnswer(s, "21000")
		s.Update(specialKey(tea.KeyEnter))
		_, cmd := s.Update(keyPress(' '))
		next := cmd()
		_, cmd = s.Update(next)
		if cmd != nil {
			s.Update(cmd())
		}
	}

	if s.phase != phaseComplete {
		t.Fatalf("phase = %v, want complete", s.phase)
	}
	if gen.calls != 3 {
		t.Errorf("generator calls = %d, want 3", gen.calls)
	}

	if _, cmd := s.Update(keyPress('x')); cmd != nil {
		t.Error("only Enter or Space should leave the completion panel")
	}
	if !strings.Contains(s.View(100, 30), "Onward") {
		t.Error("expected the onward button on the completion panel")
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected advance command")
	}
	if _, ok := cmd().(screen.AdvanceMsg); !ok {
		t.Errorf("expected AdvanceMsg, got %T", cmd())
	}
}

func TestChallenge_PathResetDrawsNewProblem(t *testing.T) {
	s, gen := started(t, adventure.PerilousPath, multipleChoice())

	for i := 0; i < 3; i++ {
		s.Update(keyPress('1'))
		if i < 2 {
			_, cmd := s.Update(keyPress(' '))
			s.Update(cmd())
		}
	}
	if s.lastOutcome != adventure.OutcomeReset {
		t.Fatalf("outcome = %v, want reset", s.lastOutcome)
	}
	if !strings.Contains(s.View(100, 30), "back at the start") {
		t.Error("feedback should announce the reset")
	}

	_, cmd := s.Update(keyPress(' '))
	_, cmd = s.Update(cmd())
	if cmd == nil {
		t.Fatal("expected a new problem to be generated")
	}
	s.Update(cmd())
	if gen.calls != 2 {
		t.Errorf("generator calls = %d, want 2", gen.calls)
	}
	if s.challenge().LivesLeft != 3 {
		t.Errorf("LivesLeft = %d, want 3", s.challenge().LivesLeft)
	}
}

func TestChallenge_VaultStatusShowsCombination(t *testing.T) {
	s, _ := started(t, adventure.VaultChallenge, multipleChoice())
	s.Update(keyPress('2'))
	if got := s.Status(); got != "Combination 2__" {
		t.Errorf("Status = %q", got)
	}
}

func TestChallenge_QuitConfirm(t *testing.T) {
	s, _ := started(t, adventure.SecretCipher, fillIn())

	s.Update(specialKey(tea.KeyEscape))
	if !s.showingQuitConfirm {
		t.Fatal("expected quit confirmation")
	}
	s.Update(keyPress('n'))
	if s.showingQuitConfirm {
		t.Fatal("expected confirmation dismissed")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestChallenge_GenerationFailure(t *testing.T) {
	gen := &stubGenerator{err: &problemgen.ValidationError{Validator: "structural", Message: "bad"}}
	s := New(adventure.NewState(adventure.SecretCipher), gen)
	s.Update(s.Init()())

	if s.errMsg == "" {
		t.Fatal("expected error message")
	}
	if gen.calls != 1 {
		t.Errorf("non-retryable failure should not retry, got %d calls", gen.calls)
	}
}

func TestChallenge_RetryableFailure(t *testing.T) {
	gen := &stubGenerator{err: &problemgen.ValidationError{Validator: "options", Message: "short", Retryable: true}}
	s := New(adventure.NewState(adventure.SecretCipher), gen)
	msg := s.Init()()

	if gen.calls != maxGenerateAttempts {
		t.Errorf("calls = %d, want %d", gen.calls, maxGenerateAttempts)
	}
	ready := msg.(problemReadyMsg)
	var valErr *problemgen.ValidationError
	if !errors.As(ready.Err, &valErr) {
		t.Errorf("expected wrapped ValidationError, got %v", ready.Err)
	}
}

func TestChallenge_RealGenerator(t *testing.T) {
	gen := problemgen.NewSeeded(7)
	s := New(adventure.NewState(adventure.VaultChallenge), gen)
	s.Update(s.Init()())

	if s.errMsg != "" {
		t.Fatalf("unexpected error: %s", s.errMsg)
	}
	p := s.challenge().Problem
	if !problemgen.IsEligible(problemgen.StageVault, p.Type) {
		t.Errorf("type %v not eligible for vault", p.Type)
	}
	if s.View(100, 30) == "" {
		t.Error("expected non-empty view")
	}
}
