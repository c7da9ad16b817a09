package textutil

import "strings"

// ContainsAny checks if the text contains any of the given keywords
func ContainsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// CountOccurrences sums the occurrence counts of every keyword within text.
func CountOccurrences(text string, keywords []string) int {
	total := 0
	for _, keyword := range keywords {
		total += strings.Count(text, keyword)
	}
	return total
}

// Tokenize splits text on whitespace, lowercases it, and keeps tokens longer
// than minLen runes. Short tokens are dropped to exclude stopwords.
func Tokenize(text string, minLen int) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) > minLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
