// internal/classify/normalizer.go
package classify

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kljensen/snowball/english"
	"golang.org/x/text/unicode/norm"
)

// Normalize reduces raw description text to a sequence of comparable
// root-form tokens: NFKC fold, lower-case, strip everything that is not a
// letter or whitespace, split, drop stop-words and tokens of one or two
// characters, then stem each survivor. Empty or all-punctuation input
// yields an empty sequence.
func Normalize(text string) []string {
	if text == "" {
		return nil
	}

	fields := strings.Fields(stripNonLetters(text))
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if utf8.RuneCountInString(field) <= 2 {
			continue
		}
		if _, stop := englishStopwords[field]; stop {
			continue
		}
		tokens = append(tokens, english.Stem(field, false))
	}

	return tokens
}

// NormalizePhrase reduces a keyword phrase to its stemmed form, word by
// word, preserving word order. Phrases pass through the same folding and
// stemming as description tokens so the two stay comparable; the stop-word
// and length rules do not apply here because short words such as "ip" are
// significant inside phrases.
func NormalizePhrase(phrase string) string {
	if phrase == "" {
		return ""
	}

	words := strings.Fields(stripNonLetters(phrase))
	stems := make([]string, 0, len(words))
	for _, word := range words {
		stems = append(stems, english.Stem(word, false))
	}

	return strings.Join(stems, " ")
}

func stripNonLetters(text string) string {
	folded := strings.ToLower(norm.NFKC.String(text))

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return b.String()
}
