package advisor

import (
	"fmt"
	"strconv"

	"crackTimeBackend/internal/core/domain"
)

// GetSuggestions produces improvement suggestions in a fixed order. The two
// general suggestions at the end always apply, so the result is never empty.
func (a *Advisor) GetSuggestions(password string, analysis *domain.AnalysisRecord) []string {
	var suggestions []string

	if analysis.Length < 12 {
		suggestions = append(suggestions,
			fmt.Sprintf("Increase length to at least 12 characters (currently %d)", analysis.Length))
	} else if analysis.Length < 16 {
		suggestions = append(suggestions, "Consider extending to 16+ characters for maximum security")
	}

	types := analysis.CharacterTypes
	if !types.HasUppercase {
		suggestions = append(suggestions, "Add uppercase letters (A, B, C, etc.)")
	}
	if !types.HasLowercase {
		suggestions = append(suggestions, "Add lowercase letters (a, b, c, etc.)")
	}
	if !types.HasDigits {
		suggestions = append(suggestions, "Include numbers (0-9)")
	}
	if !types.HasSymbols {
		suggestions = append(suggestions, "Add special characters (!@#$%^&* etc.)")
	}

	if analysis.EntropyBits < 50 {
		suggestions = append(suggestions, "Increase randomness - avoid predictable patterns")
	}

	if len(analysis.PatternIssues) > 0 {
		suggestions = append(suggestions, "Remove predictable patterns and sequences")
	}

	if analysis.StrengthScore < 75 {
		suggestions = append(suggestions,
			"Consider using a passphrase (multiple words combined)",
			"Use a password manager to generate strong passwords")
	}

	suggestions = append(suggestions,
		"Make this password unique - don't reuse it elsewhere",
		"Enable two-factor authentication for added security")

	return suggestions
}

var exampleWordGroups = [][]string{
	{"Solar", "Bridge", "Dance", "2024"},
	{"Quick", "Mountain", "Coffee", "Star"},
	{"Happy", "Dragon", "Music", "Wave"},
	{"Bright", "Forest", "Ocean", "Moon"},
}

var exampleSymbols = []string{"!", "@", "#", "$", "%", "^", "&", "*"}

// GenerateExamplePasswords builds three example strong passwords: fixed word
// groups joined by random symbols, padded with random digits up to
// targetLength. Output depends on the advisor's random source.
func (a *Advisor) GenerateExamplePasswords(targetLength int) []string {
	examples := make([]string, 0, 3)

	for _, words := range exampleWordGroups[:3] {
		var b []byte
		for i, word := range words {
			b = append(b, word...)
			if i < len(words)-1 {
				b = append(b, exampleSymbols[a.rand.Intn(len(exampleSymbols))]...)
			}
		}

		for len(b) < targetLength {
			b = strconv.AppendInt(b, int64(a.rand.Intn(10)), 10)
		}

		examples = append(examples, string(b))
	}

	return examples
}

// GetPassphraseSuggestions returns fixed tips for building memorable
// passphrases.
func (a *Advisor) GetPassphraseSuggestions() []string {
	return []string{
		"Use 4-6 random words: 'Correct Horse Battery Staple'",
		"Add numbers and symbols between words: 'Red#Car42Blue$House'",
		"Use a memorable sentence: 'I Love Coffee Every Morning At 7AM!'",
		"Combine hobbies and dates: 'Guitar@Beach#Summer2024'",
		"Use movie quotes with modifications: 'May4th$Force&BeWithYou!'",
		"Mix languages: 'Hello$World#Bonjour@2024'",
		"Use acronyms from sentences: 'MyDogLikes2RunInTheParks!' -> 'MDL2RITP!'",
	}
}
