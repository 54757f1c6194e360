package chunker

import (
	"strings"
	"unicode"
)

// SplitBySentences splits text into fragments at sentence boundaries,
// greedily packing consecutive sentences while the running length (counting
// one joining space) stays within maxChars. A single sentence longer than
// maxChars is emitted whole: the ceiling is soft, sentence and word
// integrity are hard.
func SplitBySentences(text string, maxChars int) []string {
	var fragments []string
	current := ""
	for _, sentence := range splitSentences(strings.TrimSpace(text)) {
		if charLen(current)+charLen(sentence)+1 <= maxChars {
			current = strings.TrimSpace(current + " " + sentence)
			continue
		}
		if current != "" {
			fragments = append(fragments, current)
		}
		current = sentence
	}
	if current != "" {
		fragments = append(fragments, current)
	}
	return fragments
}

// splitSentences cuts after '.', '?' or '!' followed by whitespace, keeping
// the terminator with its sentence and swallowing the separator.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	afterEnd := false
	for _, r := range text {
		if afterEnd && unicode.IsSpace(r) {
			sentences = append(sentences, current.String())
			current.Reset()
			afterEnd = false
			continue
		}
		if current.Len() == 0 && unicode.IsSpace(r) {
			continue
		}
		current.WriteRune(r)
		afterEnd = r == '.' || r == '?' || r == '!'
	}
	if current.Len() > 0 {
		sentences = append(sentences, current.String())
	}
	return sentences
}
