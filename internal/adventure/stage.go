package adventure

import (
	"fmt"
	"strings"

	"github.com/abhisek/numberquest/internal/problemgen"
)

// Stage is one scene of the adventure.
type Stage int

const (
	Intro Stage = iota
	Portal
	MeetGenie
	SecretCipher
	PerilousPath
	Relationship
	VaultChallenge
	Outro
)

// stageCount is the number of stages in one loop of the adventure.
const stageCount = int(Outro) + 1

var stageIDs = [stageCount]string{
	"intro",
	"portal",
	"meet-genie",
	"cipher",
	"path",
	"relationship",
	"vault",
	"outro",
}

var stageTitles = [stageCount]string{
	"The Glowing Book",
	"Through the Portal",
	"The Number Genie",
	"The Secret Cipher",
	"The Perilous Path",
	"Two Sides of One Secret",
	"The Vault of Numbers",
	"Home Again",
}

// Stages returns every stage in play order.
func Stages() []Stage {
	out := make([]Stage, stageCount)
	for i := range out {
		out[i] = Stage(i)
	}
	return out
}

// Valid reports whether s is a known stage.
func (s Stage) Valid() bool {
	return s >= Intro && s <= Outro
}

// String returns the lowercase stage id, e.g. "meet-genie".
func (s Stage) String() string {
	if !s.Valid() {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageIDs[s]
}

// Title returns the scene heading shown in the header.
func (s Stage) Title() string {
	if !s.Valid() {
		return ""
	}
	return stageTitles[s]
}

// Next returns the following stage. Outro wraps back to Intro.
func (s Stage) Next() Stage {
	if !s.Valid() || s == Outro {
		return Intro
	}
	return s + 1
}

// ProblemContext returns the problem stage context for challenge stages.
// The second result is false for story stages.
func (s Stage) ProblemContext() (problemgen.StageContext, bool) {
	switch s {
	case SecretCipher:
		return problemgen.StageCipher, true
	case PerilousPath:
		return problemgen.StagePath, true
	case VaultChallenge:
		return problemgen.StageVault, true
	}
	return "", false
}

// IsChallenge reports whether the stage asks the learner problems.
func (s Stage) IsChallenge() bool {
	_, ok := s.ProblemContext()
	return ok
}

// ParseStage resolves a stage id such as "cipher" or "meet-genie".
func ParseStage(id string) (Stage, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for i, sid := range stageIDs {
		if sid == id {
			return Stage(i), nil
		}
	}
	return Intro, fmt.Errorf("unknown stage %q: must be one of %s", id, strings.Join(stageIDs[:], ", "))
}
