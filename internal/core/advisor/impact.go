package advisor

import (
	"strings"

	"crackTimeBackend/internal/core/domain"
)

// CalculateImprovementImpact projects how much the suggested changes would
// raise the score. The projection scans the suggestion text for the same
// keywords GetSuggestions emits; first matching keyword wins per suggestion.
func (a *Advisor) CalculateImprovementImpact(analysis *domain.AnalysisRecord, suggestedChanges []string) domain.ImprovementImpact {
	impact := domain.ImprovementImpact{
		StrengthIncrease: 0,
		TimeImprovement:  "No change",
		RiskReduction:    "Low",
	}

	projected := analysis.StrengthScore
	for _, suggestion := range suggestedChanges {
		lowered := strings.ToLower(suggestion)
		switch {
		case strings.Contains(lowered, "increase length"):
			projected += 15
		case strings.Contains(lowered, "character"):
			projected += 10
		case strings.Contains(lowered, "pattern"):
			projected += 8
		case strings.Contains(lowered, "unique"):
			projected += 5
		}
	}

	if projected > 100 {
		projected = 100
	}
	impact.StrengthIncrease = projected - analysis.StrengthScore

	switch {
	case impact.StrengthIncrease > 30:
		impact.TimeImprovement = "Years to centuries"
		impact.RiskReduction = "High"
	case impact.StrengthIncrease > 20:
		impact.TimeImprovement = "Months to years"
		impact.RiskReduction = "Medium"
	case impact.StrengthIncrease > 10:
		impact.TimeImprovement = "Days to weeks"
		impact.RiskReduction = "Medium"
	}

	return impact
}
