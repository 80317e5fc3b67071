package match

// Distance returns the Levenshtein edit distance between a and b, counted in
// runes so that non-ASCII identifiers are not penalized per byte.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	// row[j] holds the distance between the first i runes of ra and the
	// first j runes of rb.
	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i, ca := range ra {
		diag := row[0]
		row[0] = i + 1

		for j, cb := range rb {
			cost := 1
			if ca == cb {
				cost = 0
			}

			next := min(row[j+1]+1, row[j]+1, diag+cost)
			diag = row[j+1]
			row[j+1] = next
		}
	}

	return row[len(rb)]
}

// Similarity maps the edit distance onto [0, 1], where 1 means equal.
func Similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(a, b))/float64(longest)
}
