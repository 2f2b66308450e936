package problemgen

import (
	"fmt"
	"strings"
)

// StageContext selects which problem types a stage draws from.
type StageContext string

const (
	StageCipher StageContext = "cipher" // pattern recognition
	StagePath   StageContext = "path"   // estimation and interpretation
	StageVault  StageContext = "vault"  // mixed final challenge
)

// Stages lists the recognized stage contexts in play order.
var Stages = []StageContext{StageCipher, StagePath, StageVault}

var eligible = map[StageContext][]ProblemType{
	StageCipher: {
		MultiplicationPattern,
		DivisionPattern,
		MultiplicationProperty,
	},
	StagePath: {
		DivisionPattern,
		ProductEstimation,
		QuotientEstimation,
		RemainderInterpretation,
	},
	StageVault: {
		DistributiveProperty,
		ProductEstimation,
		QuotientEstimation,
		MultiplicationProperty,
		RemainderInterpretation,
	},
}

// Valid reports whether s is a recognized stage context.
func (s StageContext) Valid() bool {
	_, ok := eligible[s]
	return ok
}

// ParseStage resolves a stage token. Unlike EligibleTypes it rejects
// unknown values so callers can report bad input.
func ParseStage(s string) (StageContext, error) {
	stage := StageContext(strings.ToLower(strings.TrimSpace(s)))
	if !stage.Valid() {
		return "", fmt.Errorf("unknown stage %q: must be cipher, path or vault", s)
	}
	return stage, nil
}

// AllTypes returns every problem type in declaration order.
func AllTypes() []ProblemType {
	return []ProblemType{
		MultiplicationPattern,
		DivisionPattern,
		ProductEstimation,
		QuotientEstimation,
		MultiplicationProperty,
		DistributiveProperty,
		RemainderInterpretation,
	}
}

// EligibleTypes returns the problem types a stage may produce. The result
// is never empty: an unrecognized stage falls back to AllTypes.
func EligibleTypes(stage StageContext) []ProblemType {
	types, ok := eligible[stage]
	if !ok {
		return AllTypes()
	}
	out := make([]ProblemType, len(types))
	copy(out, types)
	return out
}

// IsEligible reports whether t may be produced for stage.
func IsEligible(stage StageContext, t ProblemType) bool {
	for _, et := range EligibleTypes(stage) {
		if et == t {
			return true
		}
	}
	return false
}
