package analyzer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
	headingPrefixRe = regexp.MustCompile(`^#{1,6}\s+`)
	vowelGroupRe    = regexp.MustCompile(`[aeiouy]+`)
)

// maxHeadingWords bounds how long a line can be and still count as a
// heading when it has no markup prefix.
const maxHeadingWords = 10

// Tokenize splits raw content into the word, sentence and syllable views the
// analyzers consume. It is purely functional; the returned stream must not
// be mutated. Empty or whitespace-only content fails with ErrInvalidInput.
func Tokenize(text string) (*TokenStream, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrInvalidInput
	}

	lines := strings.Split(text, "\n")

	sentences := splitSentences(trimmed)
	if len(sentences) == 0 {
		// No terminal punctuation at all: treat the whole text as one sentence.
		sentences = []string{trimmed}
	}

	words := splitWords(strings.ToLower(text))

	syllables := make(map[string]int, len(words))
	for _, w := range words {
		if _, seen := syllables[w]; !seen {
			syllables[w] = countSyllables(w)
		}
	}

	return &TokenStream{
		Raw:       text,
		Lines:     lines,
		Sentences: sentences,
		Words:     words,
		Headings:  detectHeadings(lines),
		Syllables: syllables,
	}, nil
}

// splitSentences breaks text on runs of terminal punctuation, dropping
// fragments that contain no letters or digits.
func splitSentences(text string) []string {
	parts := sentenceSplitRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || !containsAlnum(p) {
			continue
		}
		sentences = append(sentences, p)
	}
	return sentences
}

// splitWords breaks text on anything that is not a letter, digit or
// in-word apostrophe.
func splitWords(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if f != "" {
			words = append(words, f)
		}
	}
	return words
}

// detectHeadings returns lines that look like headings: a markdown-style
// `#` prefix, or a short line that does not end in terminal punctuation.
func detectHeadings(lines []string) []string {
	var headings []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if headingPrefixRe.MatchString(line) {
			headings = append(headings, strings.TrimSpace(headingPrefixRe.ReplaceAllString(line, "")))
			continue
		}
		if len(strings.Fields(line)) <= maxHeadingWords && !endsWithTerminal(line) {
			headings = append(headings, line)
		}
	}
	return headings
}

func endsWithTerminal(line string) bool {
	r, _ := utf8.DecodeLastRuneInString(line)
	switch r {
	case '.', '!', '?', ':', ';', ',':
		return true
	}
	return false
}

func containsAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// countSyllables estimates syllables with a vowel-group heuristic: short
// words count one, common silent suffixes are stripped, then each run of
// vowels counts as one syllable. The scoring thresholds assume this
// heuristic's bias, so keep them in sync if it changes.
func countSyllables(word string) int {
	w := strings.ToLower(word)
	if utf8.RuneCountInString(w) <= 3 {
		return 1
	}

	w = strings.TrimSuffix(w, "e")
	w = strings.TrimSuffix(w, "es")
	w = strings.TrimSuffix(w, "ed")

	count := len(vowelGroupRe.FindAllString(w, -1))
	if count == 0 {
		count = 1
	}
	return count
}
