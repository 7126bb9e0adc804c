package session

// Accuracy is 100*correct/total rounded half up, or 0 when total is 0.
func Accuracy(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*correct + total) / (2 * total)
}

// Progress is the fraction of questions answered, for progress bars.
func Progress(state *SessionState) float64 {
	if len(state.Questions) == 0 {
		return 0
	}
	return float64(len(state.Answers)) / float64(len(state.Questions))
}

// Counter renders the 1-based position, e.g. "3 / 10".
func Counter(state *SessionState) (current, total int) {
	total = len(state.Questions)
	current = state.CurrentIndex + 1
	if current > total {
		current = total
	}
	return current, total
}
