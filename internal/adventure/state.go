package adventure

import (
	"time"

	"github.com/google/uuid"
)

// StageResult tallies answers given during one challenge stage.
type StageResult struct {
	Stage     Stage
	Attempted int
	Correct   int
	Resets    int
}

// State tracks the runtime state of one play-through.
type State struct {
	// RunID identifies this play-through.
	RunID string

	// Stage is the scene currently on screen.
	Stage Stage

	// Challenge is the active challenge, nil on story stages.
	Challenge *Challenge

	// Results holds tallies for every challenge stage visited this run.
	Results map[Stage]*StageResult

	// Combination is the vault combination once the vault is opened.
	Combination string

	// StartTime is when the run began.
	StartTime time.Time

	// FinishTime is set when the run reaches the outro.
	FinishTime time.Time
}

// NewState starts a run at the given stage.
func NewState(start Stage) *State {
	s := &State{}
	s.begin(start)
	return s
}

func (s *State) begin(start Stage) {
	if !start.Valid() {
		start = Intro
	}
	s.RunID = uuid.New().String()
	s.Results = make(map[Stage]*StageResult)
	s.Combination = ""
	s.StartTime = time.Now()
	s.FinishTime = time.Time{}
	s.enter(start)
}

func (s *State) enter(stage Stage) {
	s.Stage = stage
	s.Challenge = NewChallenge(stage)
	if s.Challenge != nil {
		if _, ok := s.Results[stage]; !ok {
			s.Results[stage] = &StageResult{Stage: stage}
		}
	}
	if stage == Outro && s.FinishTime.IsZero() {
		s.FinishTime = time.Now()
	}
}

// Advance moves to the next stage and returns it. Leaving the outro
// starts a new run.
func (s *State) Advance() Stage {
	if s.Stage == Outro {
		s.Reset()
		return s.Stage
	}
	if s.Challenge != nil && s.Challenge.Stage == VaultChallenge {
		s.Combination = s.Challenge.CombinationString()
	}
	s.enter(s.Stage.Next())
	return s.Stage
}

// Reset starts a fresh run from the intro.
func (s *State) Reset() {
	s.begin(Intro)
}

// Record applies an answer to the active challenge and updates the tallies.
// It returns OutcomeWrong without effect on story stages.
func (s *State) Record(correct bool) Outcome {
	if s.Challenge == nil {
		return OutcomeWrong
	}
	r := s.Results[s.Stage]
	r.Attempted++
	if correct {
		r.Correct++
	}
	out := s.Challenge.Answer(correct)
	if out == OutcomeReset {
		r.Resets++
	}
	return out
}

// Elapsed returns how long the run has been going, or its final duration
// once finished.
func (s *State) Elapsed() time.Duration {
	if !s.FinishTime.IsZero() {
		return s.FinishTime.Sub(s.StartTime)
	}
	return time.Since(s.StartTime)
}
