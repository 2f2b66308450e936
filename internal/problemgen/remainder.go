package problemgen

import "fmt"

// RemainderRule says how a scenario turns a division into an answer.
type RemainderRule int

const (
	RoundUp   RemainderRule = iota // ceiling: leftovers still need a container
	RoundDown                      // floor: only complete groups count
	Leftover                       // modulo: the remainder is the answer
)

// Scenario is a word-problem template for remainder interpretation.
type Scenario struct {
	Name string
	Rule RemainderRule

	// template receives dividend then divisor.
	template string
}

// Scenarios are the fixed remainder-interpretation templates. Each uses a
// different rule.
var Scenarios = []Scenario{
	{
		Name:     "buses",
		Rule:     RoundUp,
		template: "%d students are going on a field trip. Each bus holds %d students. How many buses are needed?",
	},
	{
		Name:     "cakes",
		Rule:     RoundDown,
		template: "A baker has %d eggs. Each cake needs %d eggs. How many full cakes can the baker make?",
	},
	{
		Name:     "candy",
		Rule:     Leftover,
		template: "%d candies are shared equally among %d children. How many candies remain?",
	},
}

// ScenarioByName returns the scenario with the given name.
func ScenarioByName(name string) (Scenario, bool) {
	for _, s := range Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

// Question renders the scenario's word problem.
func (s Scenario) Question(dividend, divisor int) string {
	return fmt.Sprintf(s.template, dividend, divisor)
}

// Interpret applies the scenario's rule to dividend ÷ divisor.
func (s Scenario) Interpret(dividend, divisor int) int {
	switch s.Rule {
	case RoundUp:
		return (dividend + divisor - 1) / divisor
	case RoundDown:
		return dividend / divisor
	default:
		return dividend % divisor
	}
}

func (s Scenario) explain(dividend, divisor int) string {
	q, rem := dividend/divisor, dividend%divisor
	base := fmt.Sprintf("%d ÷ %d = %d remainder %d. ", dividend, divisor, q, rem)
	switch s.Rule {
	case RoundUp:
		return base + fmt.Sprintf("The %d left over still need a bus, so %d buses.", rem, q+1)
	case RoundDown:
		return base + fmt.Sprintf("The %d extra eggs are not enough for another cake, so %d cakes.", rem, q)
	default:
		return base + fmt.Sprintf("The remainder is what is left: %d candies.", rem)
	}
}

// genRemainderInterpretation builds a word problem whose division always
// leaves a non-zero remainder, then answers it with the scenario's rule.
// The floor, ceiling and bare remainder are always offered.
func genRemainderInterpretation(r Rand, cfg Config) *Problem {
	scenario := pick(r, Scenarios)
	divisor := between(r, 3, 9)
	quotient := between(r, 3, 12)
	remainder := between(r, 1, divisor-1)
	dividend := divisor*quotient + remainder

	answer := scenario.Interpret(dividend, divisor)
	plausible := []int{quotient, quotient + 1, remainder}

	return &Problem{
		Type:         RemainderInterpretation,
		Title:        RemainderInterpretation.Title(),
		QuestionText: scenario.Question(dividend, divisor),
		Answer:       answer,
		Options:      buildOptions(r, answer, plausible, 1, cfg.MaxDistractorAttempts),
		Explanation:  scenario.explain(dividend, divisor),
	}
}
