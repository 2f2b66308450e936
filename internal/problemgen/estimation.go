package problemgen

import "fmt"

// roundToTen rounds n half-up to the nearest multiple of ten.
func roundToTen(n int) int {
	return (n + 5) / 10 * 10
}

func floorToTen(n int) int {
	return n / 10 * 10
}

func ceilToTen(n int) int {
	return (n + 9) / 10 * 10
}

// genProductEstimation rounds two 2-digit factors to the nearest ten and
// asks for the estimated product, e.g. 42 × 58 ≈ 40 × 60 = 2400.
func genProductEstimation(r Rand, cfg Config) *Problem {
	n1 := between(r, 11, 99)
	n2 := between(r, 11, 99)
	r1 := roundToTen(n1)
	r2 := roundToTen(n2)
	answer := r1 * r2

	plausible := []int{
		floorToTen(n1) * floorToTen(n2),
		ceilToTen(n1) * ceilToTen(n2),
		answer + sign(r)*100*between(r, 1, 5),
		answer + sign(r)*100*between(r, 1, 5),
	}

	return &Problem{
		Type:         ProductEstimation,
		Title:        ProductEstimation.Title(),
		QuestionText: "Estimate the product by rounding each number to the nearest ten:",
		QuestionParts: []QuestionPart{
			Text(fmt.Sprintf("%d × %d ≈ ", n1, n2)),
		},
		Answer:  answer,
		Options: buildOptions(r, answer, plausible, 100, cfg.MaxDistractorAttempts),
		Explanation: fmt.Sprintf("%d rounds to %d and %d rounds to %d, so %d × %d = %d.",
			n1, r1, n2, r2, r1, r2, answer),
	}
}

// genQuotientEstimation hides a compatible dividend behind a small jitter,
// e.g. 417 ÷ 7 ≈ 420 ÷ 7 = 60. The answer is the target quotient, not the
// result of the jittered division.
func genQuotientEstimation(r Rand, cfg Config) *Problem {
	divisor := between(r, 3, 9)
	quotient := between(r, 2, 9) * 10
	compatible := divisor * quotient

	jitter := between(r, 1, divisor-1) * sign(r)
	dividend := compatible + jitter

	plausible := []int{quotient + 10, quotient - 10}

	return &Problem{
		Type:         QuotientEstimation,
		Title:        QuotientEstimation.Title(),
		QuestionText: "Estimate the quotient using compatible numbers:",
		QuestionParts: []QuestionPart{
			Text(fmt.Sprintf("%d ÷ %d ≈ ", dividend, divisor)),
		},
		Answer:  quotient,
		Options: buildOptions(r, quotient, plausible, 10, cfg.MaxDistractorAttempts),
		Explanation: fmt.Sprintf("%d is close to %d, which divides evenly: %d ÷ %d = %d.",
			dividend, compatible, compatible, divisor, quotient),
	}
}
