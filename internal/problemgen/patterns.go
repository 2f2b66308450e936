package problemgen

import "fmt"

// genMultiplicationPattern builds "A × B = ?" where both factors are a
// single digit followed by zeros, e.g. 70 × 300 = 21000.
func genMultiplicationPattern(r Rand, _ Config) *Problem {
	base1 := between(r, 2, 9)
	base2 := between(r, 2, 9)
	zeros1 := between(r, 1, 2)
	zeros2 := between(r, 1, 3-zeros1)

	a := base1 * pow10(zeros1)
	b := base2 * pow10(zeros2)
	answer := a * b

	return &Problem{
		Type:  MultiplicationPattern,
		Title: MultiplicationPattern.Title(),
		QuestionParts: []QuestionPart{
			Text(fmt.Sprintf("%d × %d = ", a, b)),
			Input(),
		},
		Answer: answer,
		Explanation: fmt.Sprintf("%d × %d = %d, then add the %d zeros: %d × %d = %d.",
			base1, base2, base1*base2, zeros1+zeros2, a, b, answer),
	}
}

// genDivisionPattern builds an exact "D ÷ d = ?" by choosing the quotient
// first and multiplying it back into the dividend.
func genDivisionPattern(r Rand, _ Config) *Problem {
	divisorBase := between(r, 2, 9)
	quotientBase := between(r, 2, 9)
	divisorZeros := between(r, 1, 2)
	quotientZeros := between(r, 1, 2)

	answer := quotientBase * pow10(quotientZeros)
	divisor := divisorBase * pow10(divisorZeros)
	dividend := divisor * answer

	return &Problem{
		Type:  DivisionPattern,
		Title: DivisionPattern.Title(),
		QuestionParts: []QuestionPart{
			Text(fmt.Sprintf("%d ÷ %d = ", dividend, divisor)),
			Input(),
		},
		Answer: answer,
		Explanation: fmt.Sprintf("%d ÷ %d = %d, and %d × %d = %d, so %d ÷ %d = %d.",
			divisorBase*quotientBase, divisorBase, quotientBase,
			divisor, answer, dividend, dividend, divisor, answer),
	}
}
