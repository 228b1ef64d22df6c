package huffman

// Frequencies maps each distinct symbol of a source to its number of
// occurrences.
type Frequencies[S Symbol] map[S]uint64

// Count scans source once and returns the occurrence count of each symbol.
func Count[S Symbol](source []S) Frequencies[S] {
	freq := make(Frequencies[S])
	for _, sym := range source {
		freq[sym]++
	}
	return freq
}

// Symbols returns the distinct symbols in ascending order.
func (freq Frequencies[S]) Symbols() []S {
	return sortedSymbols(freq)
}

// Total returns the sum of all counts, i.e. the length of the source.
func (freq Frequencies[S]) Total() uint64 {
	var total uint64
	for _, count := range freq {
		total = addSaturating(total, count)
	}
	return total
}
