package problemgen

// StructuralValidator checks that required fields are present, the type
// is known and the answer is a positive integer.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem) *ValidationError {
	if p == nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "problem is nil",
			Retryable: true,
		}
	}
	if !p.Type.Valid() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "unknown problem type " + p.Type.String(),
		}
	}
	if p.Title != p.Type.Title() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "title does not match problem type",
		}
	}
	if p.QuestionText == "" && len(p.QuestionParts) == 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "problem has neither question text nor question parts",
			Retryable: true,
		}
	}
	if p.InputCount() > 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question parts contain more than one input",
		}
	}
	if p.Answer <= 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer must be a positive integer",
			Retryable: true,
		}
	}
	return nil
}
