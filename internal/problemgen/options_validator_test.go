package problemgen

import "testing"

func choiceProblem(options ...int) *Problem {
	return &Problem{
		Type:          ProductEstimation,
		Title:         ProductEstimation.Title(),
		QuestionText:  "Estimate the product by rounding each number to the nearest ten:",
		QuestionParts: []QuestionPart{Text("42 × 58 ≈ ")},
		Answer:        2400,
		Options:       options,
	}
}

func TestOptions_Valid(t *testing.T) {
	v := &OptionsValidator{}
	if err := v.Validate(choiceProblem(2000, 2400, 3000, 2500)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOptions_Invalid(t *testing.T) {
	v := &OptionsValidator{}

	tests := []struct {
		name    string
		options []int
	}{
		{"empty", []int{}},
		{"too few", []int{2400, 2000, 3000}},
		{"too many", []int{2400, 2000, 3000, 2500, 2600}},
		{"duplicate", []int{2400, 2000, 2000, 2500}},
		{"zero option", []int{2400, 0, 3000, 2500}},
		{"negative option", []int{2400, -100, 3000, 2500}},
		{"answer missing", []int{2000, 2100, 3000, 2500}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(choiceProblem(tc.options...))
			if err == nil {
				t.Fatalf("expected error for options %v", tc.options)
			}
			if err.Validator != "options" {
				t.Errorf("expected validator %q, got %q", "options", err.Validator)
			}
		})
	}
}

func TestOptions_FillIn(t *testing.T) {
	v := &OptionsValidator{}
	if err := v.Validate(validProblem()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noBlank := validProblem()
	noBlank.QuestionParts = []QuestionPart{Text("70 × 300 = 21000")}
	if err := v.Validate(noBlank); err == nil {
		t.Fatal("expected error for fill-in problem without a blank")
	}
}
