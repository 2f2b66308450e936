package adventure

import "time"

// Summary holds the data displayed at the end of a run.
type Summary struct {
	RunID          string
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	Combination    string
	StageResults   []StageResult
}

// BuildSummary creates a Summary from the current run state. Stage
// results are listed in play order.
func BuildSummary(state *State) *Summary {
	var results []StageResult
	total, correct := 0, 0
	for _, stage := range Stages() {
		r, ok := state.Results[stage]
		if !ok {
			continue
		}
		results = append(results, *r)
		total += r.Attempted
		correct += r.Correct
	}

	var accuracy float64
	if total > 0 {
		accuracy = float64(correct) / float64(total)
	}

	return &Summary{
		RunID:          state.RunID,
		Duration:       state.Elapsed(),
		TotalQuestions: total,
		TotalCorrect:   correct,
		Accuracy:       accuracy,
		Combination:    state.Combination,
		StageResults:   results,
	}
}
