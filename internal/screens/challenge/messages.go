package challenge

import "github.com/abhisek/numberquest/internal/problemgen"

// problemReadyMsg is sent when a problem has been generated.
type problemReadyMsg struct {
	Problem *problemgen.Problem
	Err     error
}

// feedbackDoneMsg is sent when the learner dismisses the feedback panel.
type feedbackDoneMsg struct{}
