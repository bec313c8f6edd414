package advisor

import (
	"strings"

	"crackTimeBackend/internal/core/domain"
)

// issueWarnings maps every pattern issue kind to its warning line. Checked
// in this order so warning output stays deterministic.
var issueWarnings = []struct {
	kind    domain.PatternIssueKind
	warning string
}{
	{domain.IssueRepeatedCharacters, "Repeated characters make passwords predictable"},
	{domain.IssueSequentialChars, "Sequential patterns (123, abc) are easily guessed"},
	{domain.IssueKeyboardPattern, "Keyboard patterns are among the first things hackers try"},
	{domain.IssueCommonWords, "Common dictionary words appear in every attack wordlist"},
	{domain.IssueDatePattern, "Embedded years and dates are trivial to enumerate"},
	{domain.IssueSimpleSubstitution, "Simple substitutions (@ for a) don't significantly improve security"},
}

// GetWarnings produces security warnings in a fixed check order. An empty
// result means none of the weakness checks fired.
func (a *Advisor) GetWarnings(password string, analysis *domain.AnalysisRecord) []string {
	var warnings []string

	if analysis.Length < 8 {
		warnings = append(warnings, "Password is dangerously short - minimum 8 characters required")
	}

	if analysis.IsCommonPassword {
		warnings = append(warnings, "This password appears in common password lists - change immediately!")
	}

	if analysis.StrengthScore < 25 {
		warnings = append(warnings, "CRITICAL: This password provides virtually no security")
	} else if analysis.StrengthScore < 50 {
		warnings = append(warnings, "This password is easily crackable by modern tools")
	}

	switch typeCount := analysis.CharacterTypes.TypeCount(); {
	case typeCount < 2:
		warnings = append(warnings, "Password uses only one type of character - extremely vulnerable")
	case typeCount < 3:
		warnings = append(warnings, "Limited character variety makes this password weaker")
	}

	for _, entry := range issueWarnings {
		if analysis.HasIssue(entry.kind) {
			warnings = append(warnings, entry.warning)
		}
	}

	if warning, ok := crackTimeWarning(analysis.CrackTimes); ok {
		warnings = append(warnings, warning)
	}

	return warnings
}

func crackTimeWarning(crackTimes map[string]string) (string, bool) {
	mediumTime, ok := crackTimes[domain.ProfileMedium]
	if !ok {
		return "", false
	}

	lowered := strings.ToLower(mediumTime)
	if strings.Contains(lowered, "second") || strings.Contains(lowered, "minute") {
		return "A dedicated attacker could crack this in " + lowered, true
	}
	return "", false
}
