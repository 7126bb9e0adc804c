package problemgen

import "testing"

func TestNumberWord(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "zero"},
		{4, "four"},
		{10, "ten"},
		{12, "twelve"},
		{13, "13"},
		{-3, "-3"},
	}
	for _, tc := range tests {
		if got := NumberWord(tc.n); got != tc.want {
			t.Errorf("NumberWord(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
