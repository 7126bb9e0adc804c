package session

// StreakStep is the spacing of streak milestones.
const StreakStep = 5

// NextStreakMilestone returns the next milestone above the current run of
// correct answers: 5, 10, 15 and so on.
func NextStreakMilestone(current int) int {
	return (current/StreakStep + 1) * StreakStep
}

// IsStreakMilestone reports whether a run of n correct answers is worth
// celebrating.
func IsStreakMilestone(n int) bool {
	return n > 0 && n%StreakStep == 0
}

func (s *SessionState) updateStreak(correct bool) {
	if !correct {
		s.Streak = 0
		return
	}
	s.Streak++
	s.BestStreak = max(s.BestStreak, s.Streak)
}
