package fuzzy

// substringAlignment computes, for a pattern against a text, the minimum
// number of edits needed to align the whole pattern with some substring of
// the text (Sellers' algorithm: deletions at the start and end of the text
// are free). It returns the best edit count and the end position (in runes)
// of the best alignment, or (-1, -1) when either input is empty.
//
// maxStart bounds how many runes into the text an alignment may begin;
// alignments starting beyond it are ignored.
func substringAlignment(pattern, text []rune, maxStart int) (edits, end int) {
	m := len(pattern)
	n := len(text)
	if m == 0 || n == 0 {
		return -1, -1
	}

	// prevCol[i] is the cost of aligning pattern[:i] ending at the previous
	// text position. The first row is all zeros: a match may start anywhere.
	prevCol := make([]int, m+1)
	currCol := make([]int, m+1)

	for i := 0; i <= m; i++ {
		prevCol[i] = i
	}

	bestEdits := -1
	bestEnd := -1

	// An alignment ending at position j started at roughly j-m. Positions
	// whose implied start exceeds maxStart cannot qualify.
	for j := 1; j <= n; j++ {
		currCol[0] = 0

		for i := 1; i <= m; i++ {
			cost := 0
			if pattern[i-1] != text[j-1] {
				cost = 1
			}

			deletion := prevCol[i] + 1
			insertion := currCol[i-1] + 1
			substitution := prevCol[i-1] + cost

			currCol[i] = min3(deletion, insertion, substitution)
		}

		if j-m <= maxStart {
			if bestEdits == -1 || currCol[m] < bestEdits {
				bestEdits = currCol[m]
				bestEnd = j
			}
		}

		prevCol, currCol = currCol, prevCol
	}

	return bestEdits, bestEnd
}

// min3 is a helper function to find the minimum of three integers.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
