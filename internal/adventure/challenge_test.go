package adventure

import (
	"testing"

	"github.com/abhisek/numberquest/internal/problemgen"
)

func withProblem(c *Challenge, answer int) *problemgen.Problem {
	p := &problemgen.Problem{Type: problemgen.MultiplicationPattern, Answer: answer}
	c.SetProblem(p)
	return p
}

func TestNewChallenge_StoryStage(t *testing.T) {
	for _, s := range []Stage{Intro, Portal, MeetGenie, Relationship, Outro} {
		if c := NewChallenge(s); c != nil {
			t.Errorf("NewChallenge(%v) = %+v, want nil", s, c)
		}
	}
}

func TestCipher_ThreeSolvedCompletes(t *testing.T) {
	c := NewChallenge(SecretCipher)
	if !c.NeedsProblem() {
		t.Fatal("fresh challenge should need a problem")
	}

	want := []Outcome{OutcomeCorrect, OutcomeCorrect, OutcomeComplete}
	for i, w := range want {
		withProblem(c, 21000)
		if got := c.Answer(true); got != w {
			t.Fatalf("answer %d: got %v, want %v", i, got, w)
		}
	}
	if !c.Done() {
		t.Error("expected cipher to be done")
	}
	if c.NeedsProblem() {
		t.Error("finished challenge should not need a problem")
	}
}

func TestCipher_WrongKeepsProblem(t *testing.T) {
	c := NewChallenge(SecretCipher)
	p := withProblem(c, 60)

	for i := 0; i < 10; i++ {
		if got := c.Answer(false); got != OutcomeWrong {
			t.Fatalf("got %v, want wrong", got)
		}
	}
	if c.Problem != p {
		t.Error("wrong answer should keep the same problem")
	}
	if c.Solved != 0 {
		t.Errorf("Solved = %d, want 0", c.Solved)
	}
}

func TestPath_LivesAndReset(t *testing.T) {
	c := NewChallenge(PerilousPath)
	if c.LivesLeft != 3 {
		t.Fatalf("LivesLeft = %d, want 3", c.LivesLeft)
	}

	withProblem(c, 7)
	c.Answer(true)
	withProblem(c, 7)
	c.Answer(true)
	if c.Solved != 2 {
		t.Fatalf("Solved = %d, want 2", c.Solved)
	}

	p := withProblem(c, 7)
	if got := c.Answer(false); got != OutcomeWrong {
		t.Fatalf("first miss: got %v", got)
	}
	if c.LivesLeft != 2 || c.Problem != p {
		t.Fatalf("after first miss: lives %d, same problem %v", c.LivesLeft, c.Problem == p)
	}
	c.Answer(false)
	if got := c.Answer(false); got != OutcomeReset {
		t.Fatalf("third miss: got %v, want reset", got)
	}

	if c.Solved != 0 {
		t.Errorf("Solved = %d, want 0 after reset", c.Solved)
	}
	if c.LivesLeft != 3 {
		t.Errorf("LivesLeft = %d, want 3 after reset", c.LivesLeft)
	}
	if !c.NeedsProblem() {
		t.Error("reset should require a new problem")
	}
	if c.Resets != 1 {
		t.Errorf("Resets = %d, want 1", c.Resets)
	}
}

func TestPath_FiveStepsComplete(t *testing.T) {
	c := NewChallenge(PerilousPath)
	var last Outcome
	for i := 0; i < 5; i++ {
		withProblem(c, 40)
		last = c.Answer(true)
	}
	if last != OutcomeComplete {
		t.Errorf("got %v, want complete", last)
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", c.Remaining())
	}
}

func TestVault_Combination(t *testing.T) {
	c := NewChallenge(VaultChallenge)
	if got := c.CombinationString(); got != "___" {
		t.Errorf("empty combination = %q", got)
	}

	withProblem(c, 520)
	c.Answer(true)
	withProblem(c, 7)
	c.Answer(false)
	c.Answer(true)
	if got := c.CombinationString(); got != "57_" {
		t.Errorf("combination = %q, want 57_", got)
	}

	withProblem(c, 2400)
	if got := c.Answer(true); got != OutcomeComplete {
		t.Fatalf("got %v, want complete", got)
	}
	if got := c.CombinationString(); got != "572" {
		t.Errorf("combination = %q, want 572", got)
	}
	if c.LivesLeft != 0 {
		t.Errorf("vault should have unlimited lives, got %d", c.LivesLeft)
	}
}

func TestLeadingDigit(t *testing.T) {
	tests := map[int]int{1: 1, 9: 9, 10: 1, 520: 5, 21000: 2, -34: 3}
	for in, want := range tests {
		if got := leadingDigit(in); got != want {
			t.Errorf("leadingDigit(%d) = %d, want %d", in, got, want)
		}
	}
}
