package diagnostic

import (
	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidate closest to `name`, if any is close enough to be a likely typo.
func Suggest(name string, candidates []string) (string, bool) {
	maxDistance := len(name) / 3
	if maxDistance < 2 {
		maxDistance = 2
	}

	best := ""
	bestDistance := maxDistance + 1

	for _, candidate := range candidates {
		if candidate == name {
			continue
		}
		distance := levenshtein.ComputeDistance(name, candidate)
		if distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}

	return best, best != ""
}
