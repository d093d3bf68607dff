package render

import (
	"iter"
	"math"
	"strings"
)

const ellipsis = "..."

// Wrap splits text into lines no wider than maxWidth pixels.
//
// Text that already fits is yielded unchanged as the only line, even when it
// is empty or padded. Otherwise lines are cut at the last space that makes
// them fit and surrounding spaces are trimmed. A word that does not
// fit on its own is shortened geometrically, by a factor of 1.5 per step,
// until it does. maxLines is the number of additional lines allowed after the
// first; once it is used up the remaining text is abbreviated with "...".
// Every yielded line fits maxWidth as long as "..." itself fits.
//
// The returned sequence may be iterated more than once.
func Wrap(text string, m Metrics, maxWidth, maxLines int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if m.StringWidth(text) <= maxWidth {
			yield(text)
			return
		}

		rest := strings.TrimSpace(text)
		for budget := maxLines; rest != ""; budget-- {
			if m.StringWidth(rest) <= maxWidth {
				yield(rest)
				return
			}

			runes := []rune(rest)
			n := fitPrefix(runes, m, maxWidth)
			if m.StringWidth(string(runes[:n])) > maxWidth {
				// not even one rune fits
				yield(ellipsis)
				return
			}

			if budget <= 0 {
				yield(abbreviate(runes, n, m, maxWidth))
				return
			}
			if !yield(string(runes[:n])) {
				return
			}
			rest = strings.TrimSpace(string(runes[n:]))
		}
	}
}

// fitPrefix returns the length in runes of the longest prefix chosen by the
// word-boundary rule. It is always at least one rune so wrapping makes
// progress.
func fitPrefix(runes []rune, m Metrics, maxWidth int) int {
	n := len(runes)
	if cw := m.CharWidth('.'); cw > 0 {
		n = min(n, maxWidth/cw)
	}
	n = max(n, 1)

	for n > 1 && m.StringWidth(string(runes[:n])) > maxWidth {
		if sp := lastSpace(runes[:n]); sp > 0 {
			n = sp
			continue
		}
		next := int(math.Ceil(float64(n) / 1.5))
		if next >= n {
			next = n - 1
		}
		n = next
	}
	return n
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}

// abbreviate replaces the tail of the n-rune prefix with an ellipsis, dropping
// further runes while the result is too wide.
func abbreviate(runes []rune, n int, m Metrics, maxWidth int) string {
	k := n - len(ellipsis)
	for k > 0 {
		s := strings.TrimRight(string(runes[:k]), " ") + ellipsis
		if m.StringWidth(s) <= maxWidth {
			return s
		}
		k--
	}
	return ellipsis
}
