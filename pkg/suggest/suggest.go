// Package suggest proposes a correction for a mistyped name.
package suggest

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

// Closest returns the candidate nearest to name by edit distance.  It
// reports false if no candidate is within half the length of name, rounded
// up.  Ties go to the earlier candidate.
func Closest(name string, candidates []string) (string, bool) {
	best, dist := "", -1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(name, c); dist < 0 || d < dist {
			best, dist = c, d
		}
	}
	if dist < 0 || dist > (len(name)+1)/2 {
		return "", false
	}
	return best, true
}

// Hint returns a parenthetical "did you mean" phrase for name, with a
// leading space, or the empty string if nothing is close.
func Hint(name string, candidates []string) string {
	if c, ok := Closest(name, candidates); ok {
		return fmt.Sprintf(" (did you mean %q?)", c)
	}
	return ""
}
