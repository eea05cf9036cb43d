package impact

import (
	"sort"
	"strings"
)

// closeMatchThreshold is the minimum similarity ratio for typo suggestions.
const closeMatchThreshold = 0.6

// maxSuggestionSample caps the valid-name sample returned when nothing
// matched at all.
const maxSuggestionSample = 5

// ResolveState maps user input to a canonical state name. Exact matches
// (case-insensitive) resolve directly; everything else is rejected with
// suggestions: one candidate yields a StateNotFoundError naming it, several
// yield an AmbiguousInputError, none yields a StateNotFoundError with a
// sample of valid names. The function never silently picks a state.
func ResolveState(input string, known []string) (string, error) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return "", &StateNotFoundError{Input: input, Suggestions: sample(known)}
	}

	for _, state := range known {
		if strings.ToLower(state) == needle {
			return state, nil
		}
	}

	candidates := []string{}
	for _, state := range known {
		lower := strings.ToLower(state)
		if strings.Contains(lower, needle) || strings.Contains(needle, lower) {
			candidates = append(candidates, state)
		}
	}

	// Typos like "Nevda" survive neither substring test; fall back to a
	// similarity ratio over the longest common subsequence.
	if len(candidates) == 0 {
		for _, state := range known {
			if similarity(needle, strings.ToLower(state)) >= closeMatchThreshold {
				candidates = append(candidates, state)
			}
		}
	}

	sort.Strings(candidates)

	switch len(candidates) {
	case 0:
		return "", &StateNotFoundError{Input: input, Suggestions: sample(known)}
	case 1:
		return "", &StateNotFoundError{Input: input, Suggestions: candidates}
	default:
		return "", &AmbiguousInputError{Input: input, Matches: candidates}
	}
}

func sample(known []string) []string {
	out := append([]string{}, known...)
	sort.Strings(out)
	if len(out) > maxSuggestionSample {
		out = out[:maxSuggestionSample]
	}
	return out
}

// similarity is 2*LCS/(len(a)+len(b)), in [0,1].
func similarity(a, b string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	lcs := prev[len(b)]
	return 2 * float64(lcs) / float64(len(a)+len(b))
}
