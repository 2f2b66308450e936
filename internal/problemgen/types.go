package problemgen

import (
	"fmt"
	"strings"
)

// ProblemType identifies an arithmetic problem category.
type ProblemType int

const (
	MultiplicationPattern ProblemType = iota
	DivisionPattern
	ProductEstimation
	QuotientEstimation
	MultiplicationProperty
	DistributiveProperty
	RemainderInterpretation
)

var typeIDs = map[ProblemType]string{
	MultiplicationPattern:   "multiplication-pattern",
	DivisionPattern:         "division-pattern",
	ProductEstimation:       "product-estimation",
	QuotientEstimation:      "quotient-estimation",
	MultiplicationProperty:  "multiplication-property",
	DistributiveProperty:    "distributive-property",
	RemainderInterpretation: "remainder-interpretation",
}

var typeTitles = map[ProblemType]string{
	MultiplicationPattern:   "Multiplication Patterns",
	DivisionPattern:         "Division Patterns",
	ProductEstimation:       "Estimating Products",
	QuotientEstimation:      "Estimating Quotients",
	MultiplicationProperty:  "Multiplication Properties",
	DistributiveProperty:    "Distributive Property",
	RemainderInterpretation: "Interpreting Remainders",
}

// String returns the kebab-case identifier, e.g. "division-pattern".
func (t ProblemType) String() string {
	if id, ok := typeIDs[t]; ok {
		return id
	}
	return fmt.Sprintf("problem-type(%d)", int(t))
}

// Title returns the learner-facing category label.
func (t ProblemType) Title() string {
	return typeTitles[t]
}

// Valid reports whether t is one of the known problem types.
func (t ProblemType) Valid() bool {
	_, ok := typeIDs[t]
	return ok
}

// ParseProblemType resolves a kebab-case identifier to a ProblemType.
func ParseProblemType(s string) (ProblemType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, id := range typeIDs {
		if id == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown problem type %q", s)
}

// PartKind tags a QuestionPart.
type PartKind int

const (
	// PartText is a literal fragment rendered verbatim.
	PartText PartKind = iota

	// PartInput is the blank the learner fills in.
	PartInput
)

// QuestionPart is one piece of a rendered equation. Parts are ordered
// logically from left to right.
type QuestionPart struct {
	Kind  PartKind
	Value string // empty for PartInput
}

// Text returns a literal question part.
func Text(s string) QuestionPart {
	return QuestionPart{Kind: PartText, Value: s}
}

// Input returns the input placeholder part.
func Input() QuestionPart {
	return QuestionPart{Kind: PartInput}
}

// Problem is a generated arithmetic problem ready for display.
type Problem struct {
	// Type is the category that produced this problem.
	Type ProblemType

	// Title is the fixed category label for Type.
	Title string

	// QuestionText is an optional natural-language prompt. Word problems
	// carry their entire prompt here and leave QuestionParts empty.
	QuestionText string

	// QuestionParts reconstructs the equation. At most one part is an input.
	QuestionParts []QuestionPart

	// Answer is the correct result. Always a positive integer.
	Answer int

	// Options is nil for fill-in problems. For multiple choice it holds
	// exactly 4 distinct positive values, one of which is Answer.
	Options []int

	// Explanation is a short worked solution shown after answering.
	Explanation string
}

// IsMultipleChoice reports whether the learner picks from Options.
func (p *Problem) IsMultipleChoice() bool {
	return p.Options != nil
}

// InputCount returns the number of input placeholders in QuestionParts.
func (p *Problem) InputCount() int {
	n := 0
	for _, part := range p.QuestionParts {
		if part.Kind == PartInput {
			n++
		}
	}
	return n
}

// Equation joins QuestionParts into a single line, rendering the input
// placeholder as blank.
func (p *Problem) Equation(blank string) string {
	var b strings.Builder
	for _, part := range p.QuestionParts {
		if part.Kind == PartInput {
			b.WriteString(blank)
			continue
		}
		b.WriteString(part.Value)
	}
	return b.String()
}

// Prompt returns the full question as plain text: QuestionText followed
// by the equation with "?" in place of the blank.
func (p *Problem) Prompt() string {
	eq := p.Equation("?")
	switch {
	case p.QuestionText == "":
		return eq
	case eq == "":
		return p.QuestionText
	default:
		return p.QuestionText + "\n" + eq
	}
}
