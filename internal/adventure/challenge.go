package adventure

import (
	"strconv"

	"github.com/abhisek/numberquest/internal/problemgen"
)

// Outcome is the effect of one answer on a challenge.
type Outcome int

const (
	OutcomeCorrect  Outcome = iota // progress made, goal not yet reached
	OutcomeWrong                   // no progress; the problem stays
	OutcomeReset                   // out of lives; progress cleared
	OutcomeComplete                // goal reached
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeWrong:
		return "wrong"
	case OutcomeReset:
		return "reset"
	case OutcomeComplete:
		return "complete"
	}
	return "unknown"
}

// Challenge tracks progress through one challenge stage.
type Challenge struct {
	Stage   Stage
	Context problemgen.StageContext
	Rules   Rules

	// Problem is the problem on screen, nil when a new one is needed.
	Problem *problemgen.Problem

	Solved      int
	LivesLeft   int
	Combination []int
	Resets      int
}

// NewChallenge opens a challenge for stage. Returns nil for story stages.
func NewChallenge(stage Stage) *Challenge {
	rules, ok := RulesFor(stage)
	if !ok {
		return nil
	}
	ctx, _ := stage.ProblemContext()
	return &Challenge{
		Stage:     stage,
		Context:   ctx,
		Rules:     rules,
		LivesLeft: rules.Lives,
	}
}

// NeedsProblem reports whether a fresh problem must be generated.
func (c *Challenge) NeedsProblem() bool {
	return c.Problem == nil && !c.Done()
}

// SetProblem installs the next problem.
func (c *Challenge) SetProblem(p *problemgen.Problem) {
	c.Problem = p
}

// Done reports whether the goal has been reached.
func (c *Challenge) Done() bool {
	return c.Solved >= c.Rules.Goal
}

// Answer applies the result of answering the current problem.
func (c *Challenge) Answer(correct bool) Outcome {
	if c.Done() {
		return OutcomeComplete
	}

	if correct {
		c.Solved++
		if c.Rules.BuildsCombination && c.Problem != nil {
			c.Combination = append(c.Combination, leadingDigit(c.Problem.Answer))
		}
		c.Problem = nil
		if c.Done() {
			return OutcomeComplete
		}
		return OutcomeCorrect
	}

	if c.Rules.Lives > 0 {
		c.LivesLeft--
		if c.LivesLeft <= 0 {
			c.Solved = 0
			c.LivesLeft = c.Rules.Lives
			c.Combination = nil
			c.Resets++
			c.Problem = nil
			return OutcomeReset
		}
	}
	if !c.Rules.KeepProblemOnWrong {
		c.Problem = nil
	}
	return OutcomeWrong
}

// Remaining returns how many problems are left before the goal.
func (c *Challenge) Remaining() int {
	if n := c.Rules.Goal - c.Solved; n > 0 {
		return n
	}
	return 0
}

// CombinationString renders the vault combination collected so far,
// padding unopened locks with "_".
func (c *Challenge) CombinationString() string {
	b := make([]byte, 0, c.Rules.Goal)
	for i := 0; i < c.Rules.Goal; i++ {
		if i < len(c.Combination) {
			b = strconv.AppendInt(b, int64(c.Combination[i]), 10)
		} else {
			b = append(b, '_')
		}
	}
	return string(b)
}

func leadingDigit(n int) int {
	if n < 0 {
		n = -n
	}
	for n >= 10 {
		n /= 10
	}
	return n
}
