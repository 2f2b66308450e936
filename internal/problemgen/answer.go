package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// CheckAnswer compares the learner's typed answer against the problem.
// Returns true if the answer is correct.
//
// Normalization rules:
// - Whitespace is trimmed
// - Leading zeros are ignored (e.g., "007" matches 7)
// - Thousands separators are ignored (e.g., "21,000" matches 21000)
// - Anything that is not an integer is wrong
func CheckAnswer(learnerAnswer string, p *Problem) bool {
	n, err := ParseAnswer(learnerAnswer)
	if err != nil {
		return false
	}
	return n == p.Answer
}

// CheckChoice reports whether the option at index (0-based) is the answer.
func CheckChoice(index int, p *Problem) bool {
	if index < 0 || index >= len(p.Options) {
		return false
	}
	return p.Options[index] == p.Answer
}

// CorrectIndex returns the index of the answer within Options, or -1 for
// fill-in problems.
func CorrectIndex(p *Problem) int {
	for i, o := range p.Options {
		if o == p.Answer {
			return i
		}
	}
	return -1
}

// ParseAnswer normalizes learner input into an integer.
func ParseAnswer(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty answer")
	}
	s = strings.ReplaceAll(s, ",", "")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %w", err)
	}
	return n, nil
}
