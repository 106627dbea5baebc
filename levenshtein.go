package pagenav

// levenshtein computes the edit distance between two rune slices using a
// single rolling row of the classic DP matrix.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		prev := row[0]
		row[0] = i

		for j := 1; j <= len(b); j++ {
			cur := row[j]

			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			row[j] = min3(row[j]+1, row[j-1]+1, prev+cost)
			prev = cur
		}
	}

	return row[len(b)]
}

func min3(a, b, c int) int {
	return min(a, min(b, c))
}
