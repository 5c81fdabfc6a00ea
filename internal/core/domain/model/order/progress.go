package order

// CalculateProgress derives the advisory 0-100 completion figure from the order
// status and stage completion flags. Each of the four stages contributes an
// equal 25%, and the Submission stage is always counted complete.
//
// Terminal orders follow the frozen policy: Completed reports 100, Cancelled
// keeps the last known value. The result is display-only and is never read
// back into transition logic.
func CalculateProgress(status Status, stages map[Stage]*StageState, lastKnown int) int {
	switch status {
	case StatusCompleted:
		return 100
	case StatusCancelled:
		return lastKnown
	}

	progress := 0
	for _, stage := range AllStages() {
		if stage == StageSubmission {
			progress += 25
			continue
		}
		if state, ok := stages[stage]; ok && state.Status == StageCompleted {
			progress += 25
		}
	}
	return progress
}
