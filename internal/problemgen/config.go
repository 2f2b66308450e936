package problemgen

// OptionCount is the size of every multiple-choice option set.
const OptionCount = 4

// Config controls the behavior of a Generator.
type Config struct {
	// Validators is the ordered list of validators GenerateChecked runs on
	// every problem. The first failure stops the pipeline.
	Validators []Validator

	// MaxDistractorAttempts caps the randomized distractor search before
	// falling back to deterministic offsets.
	MaxDistractorAttempts int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&OptionsValidator{},
			&MathCheckValidator{},
		},
		MaxDistractorAttempts: 50,
	}
}
