package bookcipher

// SortByPage returns a copy of tokens ordered by ascending page number so
// the key book can be walked front to back. It is a selection sort that
// takes the first minimum, which leaves input already in page order
// untouched; other ties may be reordered.
func SortByPage(tokens []Token) []Token {
	return sortByPage(tokens, func(t Token) int { return t.Page })
}

func sortByPage[T any](items []T, page func(T) int) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	for i := 0; i < len(sorted)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(sorted); j++ {
			if page(sorted[j]) < page(sorted[minIdx]) {
				minIdx = j
			}
		}
		sorted[i], sorted[minIdx] = sorted[minIdx], sorted[i]
	}
	return sorted
}
