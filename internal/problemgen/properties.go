package problemgen

import "fmt"

// genMultiplicationProperty asks for the factor that keeps a regrouped
// product equal: (a × b) × c = a × (? × c). The blank is b.
func genMultiplicationProperty(r Rand, _ Config) *Problem {
	a := between(r, 2, 9)
	b := between(r, 2, 9)
	c := between(r, 2, 9)

	return &Problem{
		Type:         MultiplicationProperty,
		Title:        MultiplicationProperty.Title(),
		QuestionText: "Fill in the missing factor:",
		QuestionParts: []QuestionPart{
			Text(fmt.Sprintf("(%d × %d) × %d = %d × (", a, b, c, a)),
			Input(),
			Text(fmt.Sprintf(" × %d)", c)),
		},
		Answer: b,
		Explanation: fmt.Sprintf("Regrouping does not change the factors: (%d × %d) × %d = %d × (%d × %d) = %d.",
			a, b, c, a, b, c, a*b*c),
	}
}

// genDistributiveProperty splits the second factor into hundreds and
// units, e.g. 5 × 104 = (5 × 100) + (5 × 4) = 520.
func genDistributiveProperty(r Rand, cfg Config) *Problem {
	n1 := between(r, 3, 9)
	hundreds := between(r, 1, 9) * 100
	units := between(r, 1, 9)
	n2 := hundreds + units
	answer := n1 * n2

	plausible := []int{
		n1*hundreds + units, // distributed to the hundreds only
		n1*100 + n1*units,   // wrong hundreds value
		(n1 + 1) * n2,       // off by one on the multiplicand
	}

	return &Problem{
		Type:         DistributiveProperty,
		Title:        DistributiveProperty.Title(),
		QuestionText: fmt.Sprintf("Use the distributive property to find: %d × (%d + %d)", n1, hundreds, units),
		QuestionParts: []QuestionPart{
			Text(fmt.Sprintf("%d × %d = ", n1, n2)),
		},
		Answer:  answer,
		Options: buildOptions(r, answer, plausible, 10, cfg.MaxDistractorAttempts),
		Explanation: fmt.Sprintf("%d × %d = (%d × %d) + (%d × %d) = %d + %d = %d.",
			n1, n2, n1, hundreds, n1, units, n1*hundreds, n1*units, answer),
	}
}
