package session

import "testing"

func TestAccuracy(t *testing.T) {
	tests := []struct {
		correct, total int
		want           int
	}{
		{0, 0, 0},
		{0, 10, 0},
		{7, 10, 70},
		{10, 10, 100},
		{2, 3, 67},
		{1, 3, 33},
		{1, 8, 13},  // 12.5 rounds up
		{5, 40, 13}, // 12.5 rounds up
		{1, 200, 1}, // 0.5 rounds up
		{1, 201, 0},
	}
	for _, tt := range tests {
		if got := Accuracy(tt.correct, tt.total); got != tt.want {
			t.Errorf("Accuracy(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestProgress(t *testing.T) {
	state := NewSessionState("id", "", testConfig(), testQuestions())
	if got := Progress(state); got != 0 {
		t.Errorf("Progress = %v, want 0", got)
	}

	HandleAnswer(state, 12)
	if got := Progress(state); got < 0.33 || got > 0.34 {
		t.Errorf("Progress = %v, want ~0.333", got)
	}

	empty := NewSessionState("id", "", testConfig(), nil)
	if got := Progress(empty); got != 0 {
		t.Errorf("Progress on empty quiz = %v, want 0", got)
	}
}

func TestCounter(t *testing.T) {
	state := NewSessionState("id", "", testConfig(), testQuestions())
	cur, total := Counter(state)
	if cur != 1 || total != 3 {
		t.Errorf("Counter = %d/%d, want 1/3", cur, total)
	}

	state.CurrentIndex = 3
	cur, _ = Counter(state)
	if cur != 3 {
		t.Errorf("Counter past the end = %d, want 3", cur)
	}
}
