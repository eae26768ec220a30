package util

import "holdem-engine/internal/rng"

var aiNames = []string{
	"Alex", "Jordan", "Taylor", "Casey", "Morgan", "Riley", "Quinn", "Avery",
	"Parker", "Rowan", "Sage", "Emerson",
}

// RandomAINames returns n distinct display names for AI seats.
// If n exceeds the name pool, names repeat with a numeric suffix-free wrap.
func RandomAINames(r rng.Generator, n int) []string {
	shuffled := make([]string, len(aiNames))
	copy(shuffled, aiNames)

	for j := len(shuffled) - 1; j > 0; j-- {
		i := r.Intn(j + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = shuffled[i%len(shuffled)]
	}

	return names
}
