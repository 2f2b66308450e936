package problemgen

import "testing"

func validProblem() *Problem {
	return &Problem{
		Type:          MultiplicationPattern,
		Title:         MultiplicationPattern.Title(),
		QuestionParts: []QuestionPart{Text("70 × 300 = "), Input()},
		Answer:        21000,
		Explanation:   "7 × 3 = 21, then add the 3 zeros: 21000.",
	}
}

func TestStructural_ValidProblem(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validProblem()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_NilProblem(t *testing.T) {
	v := &StructuralValidator{}
	err := v.Validate(nil)
	if err == nil {
		t.Fatal("expected error for nil problem")
	}
	if err.Validator != "structural" {
		t.Errorf("expected validator %q, got %q", "structural", err.Validator)
	}
}

func TestStructural_NoQuestion(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.QuestionParts = nil
	p.QuestionText = ""
	err := v.Validate(p)
	if err == nil {
		t.Fatal("expected error for missing question")
	}
	if !err.Retryable {
		t.Error("expected retryable")
	}
}

func TestStructural_TextOnlyIsAccepted(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.QuestionParts = nil
	p.QuestionText = "How many?"
	if err := v.Validate(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructural_UnknownType(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.Type = ProblemType(99)
	if err := v.Validate(p); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestStructural_TitleMismatch(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.Title = DivisionPattern.Title()
	if err := v.Validate(p); err == nil {
		t.Fatal("expected error for mismatched title")
	}
}

func TestStructural_TwoInputs(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.QuestionParts = []QuestionPart{Input(), Text(" × 300 = "), Input()}
	if err := v.Validate(p); err == nil {
		t.Fatal("expected error for two inputs")
	}
}

func TestStructural_NonPositiveAnswer(t *testing.T) {
	v := &StructuralValidator{}
	for _, a := range []int{0, -1, -21000} {
		p := validProblem()
		p.Answer = a
		if err := v.Validate(p); err == nil {
			t.Errorf("expected error for answer %d", a)
		}
	}
}
