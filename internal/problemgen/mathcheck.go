package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
)

// MathCheckValidator independently recomputes the answer from the rendered
// question. A problem it cannot parse fails, since every type has a fixed
// rendering.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(p *Problem) *ValidationError {
	computed, err := computeAnswer(p)
	if err != nil {
		if ce, ok := err.(*checkError); ok {
			return &ValidationError{
				Validator: v.Name(),
				Message:   ce.msg,
			}
		}
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("cannot recompute %s answer: %v", p.Type, err),
		}
	}
	if computed != p.Answer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %d but problem claims %d", computed, p.Answer),
		}
	}
	return nil
}

// checkError is a parsed problem that breaks a construction rule (as
// opposed to one that could not be parsed at all).
type checkError struct{ msg string }

func (e *checkError) Error() string { return e.msg }

// Patterns for the rendered equations, with the blank shown as "?".
var (
	mulEqRe      = regexp.MustCompile(`^(\d+) × (\d+) = \?$`)
	divEqRe      = regexp.MustCompile(`^(\d+) ÷ (\d+) = \?$`)
	regroupEqRe  = regexp.MustCompile(`^\((\d+) × (\d+)\) × (\d+) = (\d+) × \(\? × (\d+)\)$`)
	mulApproxRe  = regexp.MustCompile(`^(\d+) × (\d+) ≈ $`)
	divApproxRe  = regexp.MustCompile(`^(\d+) ÷ (\d+) ≈ $`)
	mulOpenRe    = regexp.MustCompile(`^(\d+) × (\d+) = $`)
	wordNumberRe = regexp.MustCompile(`\d+`)
)

// computeAnswer recomputes the expected answer for p from its rendered
// text. Returns a *checkError when the operands violate the type's
// construction rules.
func computeAnswer(p *Problem) (int, error) {
	eq := p.Equation("?")

	switch p.Type {
	case MultiplicationPattern:
		a, b, err := operands(mulEqRe, eq)
		if err != nil {
			return 0, err
		}
		if a%10 != 0 || b%10 != 0 {
			return 0, &checkError{fmt.Sprintf("operands %d and %d must be multiples of ten", a, b)}
		}
		return a * b, nil

	case DivisionPattern:
		dividend, divisor, err := operands(divEqRe, eq)
		if err != nil {
			return 0, err
		}
		if divisor == 0 || dividend%divisor != 0 {
			return 0, &checkError{fmt.Sprintf("%d ÷ %d is not exact", dividend, divisor)}
		}
		return dividend / divisor, nil

	case MultiplicationProperty:
		m := regroupEqRe.FindStringSubmatch(eq)
		if m == nil {
			return 0, fmt.Errorf("no regrouping found")
		}
		if m[1] != m[4] || m[3] != m[5] {
			return 0, &checkError{"regrouped factors do not match: " + eq}
		}
		return strconv.Atoi(m[2])

	case ProductEstimation:
		a, b, err := operands(mulApproxRe, eq)
		if err != nil {
			return 0, err
		}
		return roundToTen(a) * roundToTen(b), nil

	case QuotientEstimation:
		dividend, divisor, err := operands(divApproxRe, eq)
		if err != nil {
			return 0, err
		}
		if divisor == 0 {
			return 0, &checkError{"divisor is zero"}
		}
		// The compatible dividend is the multiple of divisor×10 nearest
		// the displayed one.
		unit := divisor * 10
		compatible := (dividend + unit/2) / unit * unit
		return compatible / divisor, nil

	case DistributiveProperty:
		a, b, err := operands(mulOpenRe, eq)
		if err != nil {
			return 0, err
		}
		return a * b, nil

	case RemainderInterpretation:
		nums := wordNumberRe.FindAllString(p.QuestionText, 2)
		if len(nums) != 2 {
			return 0, fmt.Errorf("no dividend and divisor found")
		}
		dividend, _ := strconv.Atoi(nums[0])
		divisor, _ := strconv.Atoi(nums[1])
		if divisor == 0 || dividend%divisor == 0 {
			return 0, &checkError{fmt.Sprintf("%d ÷ %d leaves no remainder", dividend, divisor)}
		}
		for _, s := range Scenarios {
			if s.Question(dividend, divisor) == p.QuestionText {
				return s.Interpret(dividend, divisor), nil
			}
		}
		return 0, fmt.Errorf("no scenario matches")
	}

	return 0, fmt.Errorf("not computable")
}

// operands extracts two integers from eq using re.
func operands(re *regexp.Regexp, eq string) (int, int, error) {
	m := re.FindStringSubmatch(eq)
	if m == nil {
		return 0, 0, fmt.Errorf("no expression found in %q", eq)
	}
	a, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
