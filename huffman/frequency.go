package huffman

import (
	"maps"
	"slices"
	"unicode/utf8"
)

// FrequencyTable maps every symbol of a text to the number of times it
// occurs. All counts are positive.
type FrequencyTable map[rune]uint64

// CountFrequencies counts the occurrences of each code point in text.
func CountFrequencies(text string) (FrequencyTable, error) {
	if len(text) == 0 {
		return nil, ErrEmptyInput
	}
	if !utf8.ValidString(text) {
		return nil, ErrInvalidText
	}

	freqs := make(FrequencyTable)
	for _, r := range text {
		freqs[r]++
	}
	return freqs, nil
}

// Total returns the number of symbols counted.
func (ft FrequencyTable) Total() uint64 {
	var total uint64
	for _, f := range ft {
		total += f
	}
	return total
}

// Symbols returns the distinct symbols in ascending order.
func (ft FrequencyTable) Symbols() []rune {
	return slices.Sorted(maps.Keys(ft))
}
