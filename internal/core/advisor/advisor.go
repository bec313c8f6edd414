package advisor

import (
	"crackTimeBackend/internal/core/domain"
	"crackTimeBackend/internal/utils/random"
)

// Advisor turns an analysis record into human-facing warnings, suggestions
// and related advisory content. It holds no per-call state; the only
// non-pure dependency is the random source used for example passwords.
type Advisor struct {
	rules *domain.RuleSet
	rand  random.Source
}

func New(rules *domain.RuleSet, src random.Source) *Advisor {
	if rules == nil {
		rules = domain.DefaultRuleSet()
	}
	if src == nil {
		src = random.New()
	}
	return &Advisor{rules: rules, rand: src}
}
