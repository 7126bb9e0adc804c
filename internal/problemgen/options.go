package problemgen

import "slices"

// OptionCount is the number of choices every question offers.
const OptionCount = 4

// proximityOffsets yield distractors close to the correct value.
var proximityOffsets = [...]int{-10, -5, -2, -1, 1, 2, 5, 10}

// Padding range used when the proximity offsets cannot fill the set.
const (
	padMin  = 4
	padSpan = 100 // [4, 103]
)

// BuildOptions returns OptionCount distinct positive-biased candidates
// for correct, including correct exactly once, in random order.
//
// Candidates come from correct+offset for the shuffled proximity offsets
// (positive, unseen values only). If that leaves the set short, it is
// padded with uniform draws from [4, 103].
func BuildOptions(correct int, src Source) []int {
	opts := make([]int, 0, OptionCount)
	opts = append(opts, correct)

	offsets := proximityOffsets
	Shuffle(src, offsets[:])
	for _, off := range offsets {
		if len(opts) == OptionCount {
			break
		}
		c := correct + off
		if c > 0 && !slices.Contains(opts, c) {
			opts = append(opts, c)
		}
	}

	for len(opts) < OptionCount {
		c := padMin + src.IntN(padSpan)
		if !slices.Contains(opts, c) {
			opts = append(opts, c)
		}
	}

	Shuffle(src, opts)
	return opts
}
