package domain

import (
	"fmt"
	"unicode"
)

const defaultLanguage = "English"

// DetectLanguage maps the raw message to a declared language tag by dominant
// script. Best effort only: no signal means English.
func DetectLanguage(message string) string {
	counts := map[string]int{}
	for _, r := range message {
		switch {
		case unicode.Is(unicode.Devanagari, r):
			counts["Hindi"]++
		case unicode.Is(unicode.Bengali, r):
			counts["Bengali"]++
		case unicode.Is(unicode.Tamil, r):
			counts["Tamil"]++
		case unicode.Is(unicode.Telugu, r):
			counts["Telugu"]++
		case unicode.Is(unicode.Kannada, r):
			counts["Kannada"]++
		case unicode.Is(unicode.Malayalam, r):
			counts["Malayalam"]++
		case unicode.Is(unicode.Gujarati, r):
			counts["Gujarati"]++
		case unicode.Is(unicode.Gurmukhi, r):
			counts["Punjabi"]++
		}
	}

	best := defaultLanguage
	bestCount := 0
	for lang, n := range counts {
		if n > bestCount {
			best, bestCount = lang, n
		}
	}
	return best
}

// BuildLanguagePrompt annotates the current turn with the detected language
// and the instruction to answer in it.
func BuildLanguagePrompt(language, message string) string {
	if language == "" {
		language = defaultLanguage
	}
	return fmt.Sprintf("\nLanguage: %s\n\nUser Message:\n%s\n\nRespond in the same language.\n", language, message)
}
