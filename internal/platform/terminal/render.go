package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"crackTimeBackend/internal/core/domain"
)

const divider = "--------------------------------------------------"

// Render writes the full analysis report as plain text. The layout mirrors
// the web response so the two surfaces stay interchangeable.
func Render(w io.Writer, response *domain.AnalysisResponse) {
	analysis := response.Analysis

	fmt.Fprintln(w, "Password Characteristics:")
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "  Length ................ %d characters\n", analysis.Length)
	fmt.Fprintf(w, "  Character Set Size .... %d possible characters\n", analysis.CharsetSize)
	fmt.Fprintf(w, "  Entropy ............... %.2f bits\n", analysis.EntropyBits)
	fmt.Fprintf(w, "  Possible Combinations . %s\n", humanize.BigComma(analysis.TotalCombinations))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Estimated Crack Times (Average Case):")
	fmt.Fprintln(w, divider)
	for _, profile := range domain.AttackProfiles {
		fmt.Fprintf(w, "  %s: %s\n", profile.Label, analysis.CrackTimes[profile.Name])
	}
	fmt.Fprintf(w, "  Dictionary Attack: %s\n", response.DictionaryAttack)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Password Strength Rating:")
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "  Strength: %s (%d/100)\n", analysis.StrengthLevel, analysis.StrengthScore)
	fmt.Fprintf(w, "  Progress: [%s]\n", strengthBar(analysis.StrengthScore))
	fmt.Fprintf(w, "  Cross-check (zxcvbn): %d/4\n", response.CrossCheckScore)

	renderList(w, "Security Warnings", response.Warnings)
	renderList(w, "Improvement Suggestions", response.Suggestions)
	renderList(w, "Common Mistakes Detected", response.CommonMistakes)
}

func renderList(w io.Writer, title string, lines []string) {
	if len(lines) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", title)
	fmt.Fprintln(w, divider)
	for _, line := range lines {
		fmt.Fprintf(w, "  - %s\n", line)
	}
}

func strengthBar(score int) string {
	filled := score / 10
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("#", filled) + strings.Repeat(".", 10-filled)
}
