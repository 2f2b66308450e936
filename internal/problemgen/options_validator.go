package problemgen

import "fmt"

// OptionsValidator checks the multiple-choice constraints: exactly 4
// distinct positive options containing the answer. Fill-in problems must
// have no options and exactly one blank.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(p *Problem) *ValidationError {
	if !p.IsMultipleChoice() {
		if p.InputCount() != 1 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("fill-in problem must have exactly 1 input, got %d", p.InputCount()),
			}
		}
		return nil
	}

	if len(p.Options) != OptionCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("multiple choice must have exactly %d options, got %d", OptionCount, len(p.Options)),
			Retryable: true,
		}
	}

	// All options must be positive and distinct.
	seen := make(map[int]bool, OptionCount)
	for i, o := range p.Options {
		if o <= 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option %d is not positive: %d", i+1, o),
				Retryable: true,
			}
		}
		if seen[o] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate option %d", o),
				Retryable: true,
			}
		}
		seen[o] = true
	}

	if !seen[p.Answer] {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer %d not found in options", p.Answer),
			Retryable: true,
		}
	}
	return nil
}
