// Package selection parses user-typed selection strings into list indices.
//
// A selection string is a comma-separated list of tokens, where each token is
// either a single 1-based index ("3") or an inclusive range ("1-5"). Tokens
// may combine freely: "1-3,6-8,10". Overlapping ranges and repeated indices
// collapse silently into a single occurrence.
package selection

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MalformedInputError reports a token that is neither a number nor a range.
type MalformedInputError struct {
	Token string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("invalid input %q: use numbers, ranges (1-5), or comma-separated lists (1,3,5-7)", e.Token)
}

// InvalidRangeError reports a range token whose bounds violate the ordering
// or bounds constraints. Token holds the offending token verbatim.
type InvalidRangeError struct {
	Token string
	Max   int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range %q: must be between 1-%d and start <= end", e.Token, e.Max)
}

// OutOfRangeError reports a single index outside [1, max].
type OutOfRangeError struct {
	Value int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("invalid number %d: must be between 1-%d", e.Value, e.Max)
}

// Parse converts a selection string into a sorted slice of unique 1-based
// indices, all within [1, maxCount].
//
// Parsing is all-or-nothing: the first invalid token fails the whole call and
// no partial result is returned. Duplicate and overlapping selections are not
// an error; "3,2-4" yields [2 3 4].
func Parse(input string, maxCount int) ([]int, error) {
	selected := make(map[int]bool)

	for _, token := range strings.Split(input, ",") {
		token = strings.TrimSpace(token)

		if strings.Contains(token, "-") {
			startStr, endStr, _ := strings.Cut(token, "-")
			start, startErr := strconv.Atoi(strings.TrimSpace(startStr))
			end, endErr := strconv.Atoi(strings.TrimSpace(endStr))
			if startErr != nil || endErr != nil {
				return nil, &MalformedInputError{Token: token}
			}
			if start < 1 || end > maxCount || start > end {
				return nil, &InvalidRangeError{Token: token, Max: maxCount}
			}
			for i := start; i <= end; i++ {
				selected[i] = true
			}
			continue
		}

		value, err := strconv.Atoi(token)
		if err != nil {
			return nil, &MalformedInputError{Token: token}
		}
		if value < 1 || value > maxCount {
			return nil, &OutOfRangeError{Value: value, Max: maxCount}
		}
		selected[value] = true
	}

	indices := make([]int, 0, len(selected))
	for i := range selected {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices, nil
}
