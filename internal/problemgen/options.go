package problemgen

// buildOptions returns exactly OptionCount distinct positive values
// including answer, in random order. plausible holds type-specific wrong
// answers and is consulted first, in order. Remaining slots are filled
// with answer ± step·k for random k in [1,5]; after maxAttempts misses
// the fill switches to answer + step·i, which is always positive and
// always terminates.
func buildOptions(r Rand, answer int, plausible []int, step, maxAttempts int) []int {
	if step <= 0 {
		step = 1
	}

	opts := make([]int, 0, OptionCount)
	seen := make(map[int]bool, OptionCount)
	add := func(v int) {
		if v <= 0 || seen[v] || len(opts) >= OptionCount {
			return
		}
		seen[v] = true
		opts = append(opts, v)
	}

	// The answer goes first so truncation never drops it.
	add(answer)
	for _, v := range plausible {
		add(v)
	}

	for attempt := 0; len(opts) < OptionCount && attempt < maxAttempts; attempt++ {
		add(answer + sign(r)*step*between(r, 1, 5))
	}

	for i := 1; len(opts) < OptionCount; i++ {
		add(answer + step*i)
	}

	r.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	return opts
}
