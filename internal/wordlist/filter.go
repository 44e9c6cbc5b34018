// Package wordlist provides word list filtering helpers.
package wordlist

import "strings"

// WordLength is the only word length the game accepts.
const WordLength = 5

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterFiveLetters keeps words made of exactly five ASCII letters a-z.
func FilterFiveLetters(word string) bool {
	if len(word) != WordLength {
		return false
	}
	return isLowerASCII(word)
}

// Normalize lowercases words, drops the ones rejected by keep and removes
// duplicates while preserving the first occurrence order.
func Normalize(words []string, keep FilterFunc) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if keep != nil && !keep(word) {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	return out
}

func isLowerASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
