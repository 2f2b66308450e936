package adventure

// Rules describes how a challenge stage is won.
type Rules struct {
	// Goal is the number of problems to solve.
	Goal int

	// Lives is the number of wrong answers allowed before progress resets.
	// Zero means unlimited.
	Lives int

	// KeepProblemOnWrong keeps the current problem after a wrong answer
	// instead of drawing a new one.
	KeepProblemOnWrong bool

	// BuildsCombination records the leading digit of every solved answer.
	BuildsCombination bool

	// GoalLabel names a unit of progress, e.g. "steps".
	GoalLabel string
}

var stageRules = map[Stage]Rules{
	SecretCipher: {
		Goal:               3,
		KeepProblemOnWrong: true,
		GoalLabel:          "symbols",
	},
	PerilousPath: {
		Goal:               5,
		Lives:              3,
		KeepProblemOnWrong: true,
		GoalLabel:          "steps",
	},
	VaultChallenge: {
		Goal:               3,
		KeepProblemOnWrong: true,
		BuildsCombination:  true,
		GoalLabel:          "locks",
	},
}

// RulesFor returns the rules for a challenge stage. The second result is
// false for story stages.
func RulesFor(s Stage) (Rules, bool) {
	r, ok := stageRules[s]
	return r, ok
}
