package advisor

import (
	"strings"
	"unicode/utf8"
)

var (
	commonStarts    = []string{"password", "admin", "user", "login"}
	weakEndings     = []string{"123", "!", "."}
	notoriousShapes = []string{"qwerty123", "abc123", "123abc", "password1"}
	recentYears     = []string{"2020", "2021", "2022", "2023", "2024", "2025"}

	// leet forms that a single-character swap produces from a weak base word
	leetTells = []string{"p@ssword", "p4ssw0rd", "adm1n"}
)

// AnalyzeCommonMistakes runs independent heuristics for the usual
// password-creation mistakes. Each check fires at most one line.
func (a *Advisor) AnalyzeCommonMistakes(password string) []string {
	var mistakes []string
	lowered := strings.ToLower(password)

	for _, word := range commonStarts {
		if strings.HasPrefix(lowered, word) {
			mistakes = append(mistakes, "Starts with a common word - very predictable")
			break
		}
	}

	for _, ending := range weakEndings {
		if strings.HasSuffix(password, ending) {
			mistakes = append(mistakes, "Predictable ending pattern")
			break
		}
	}

	if lowDiversity(password) {
		mistakes = append(mistakes, "Too many repeated characters")
	}

	for _, shape := range notoriousShapes {
		if lowered == shape {
			mistakes = append(mistakes, "Extremely common weak password pattern")
			break
		}
	}

	if matchesLeetTell(password) {
		mistakes = append(mistakes, "Simple character substitution is not secure")
	}

	for _, year := range recentYears {
		if strings.Contains(password, year) {
			mistakes = append(mistakes, "Avoid using current or recent years")
			break
		}
	}

	return mistakes
}

// lowDiversity reports whether fewer than 70% of the characters are distinct.
func lowDiversity(password string) bool {
	length := utf8.RuneCountInString(password)
	if length == 0 {
		return false
	}

	distinct := make(map[rune]struct{}, length)
	for _, r := range password {
		distinct[r] = struct{}{}
	}

	return float64(len(distinct))/float64(length) < 0.7
}

// matchesLeetTell applies each single-character substitution on its own and
// checks whether any result is a known leet form of a weak base word.
func matchesLeetTell(password string) bool {
	transforms := []string{
		strings.ReplaceAll(password, "a", "@"),
		strings.ReplaceAll(password, "e", "3"),
		strings.ReplaceAll(password, "i", "1"),
		strings.ReplaceAll(password, "o", "0"),
	}

	for _, transform := range transforms {
		lowered := strings.ToLower(transform)
		for _, tell := range leetTells {
			if lowered == tell {
				return true
			}
		}
	}
	return false
}
