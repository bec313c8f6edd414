package analyzer

import (
	"math"
	"math/big"
	"strings"
	"unicode/utf8"

	"crackTimeBackend/internal/core/domain"
)

// Analyzer estimates the theoretical brute-force cost of a password. All
// numbers are closed-form estimates; nothing here attempts a real crack.
// An Analyzer is safe for concurrent use: the rule set is read-only.
type Analyzer struct {
	rules *domain.RuleSet
}

func New(rules *domain.RuleSet) *Analyzer {
	if rules == nil {
		rules = domain.DefaultRuleSet()
	}
	return &Analyzer{rules: rules}
}

// Analyze is total over all string inputs, unicode included. Empty input is
// the caller's problem to reject; it still produces a well-defined record.
func (a *Analyzer) Analyze(password string) domain.AnalysisRecord {
	flags := characterTypes(password)
	length := utf8.RuneCountInString(password)
	charsetSize := charsetSize(password, flags)
	issues := a.checkPatterns(password)
	isCommon := a.rules.WeakPasswords.Contains(password)

	record := domain.AnalysisRecord{
		Length:            length,
		CharsetSize:       charsetSize,
		EntropyBits:       entropyBits(length, charsetSize, len(issues) > 0, isCommon),
		TotalCombinations: TotalCombinations(charsetSize, length),
		CharacterTypes:    flags,
		PatternIssues:     issues,
		IsCommonPassword:  isCommon,
	}

	record.CrackTimes = CrackTimes(record.TotalCombinations)
	record.StrengthScore = strengthScore(&record)
	record.StrengthLevel = StrengthLevelFor(record.StrengthScore)

	return record
}

// EstimateDictionaryAttack gives a qualitative estimate for a wordlist attack,
// which follows different economics than the brute-force table.
func (a *Analyzer) EstimateDictionaryAttack(password string) string {
	lowered := strings.ToLower(password)

	if a.rules.WeakPasswords.Contains(lowered) {
		return "< 1 second (in common wordlist)"
	}

	base := strings.Trim(lowered, digitsAndPunctuation)
	if base != "" && a.rules.WeakPasswords.Contains(base) {
		return "< 1 minute (common word variation)"
	}

	for _, word := range []string{"password", "admin", "user", "login"} {
		if strings.Contains(lowered, word) {
			return "Minutes to hours (contains dictionary words)"
		}
	}

	return "Very long (not in typical dictionaries)"
}

const digitsAndPunctuation = "0123456789!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

func characterTypes(password string) domain.CharacterTypeFlags {
	var flags domain.CharacterTypeFlags
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			flags.HasLowercase = true
		case r >= 'A' && r <= 'Z':
			flags.HasUppercase = true
		case r >= '0' && r <= '9':
			flags.HasDigits = true
		case r == ' ':
			flags.HasSpaces = true
		case strings.ContainsRune(domain.CharsetSpecial, r):
			flags.HasSymbols = true
		}
	}
	return flags
}

// charsetSize sums the alphabet sizes of the classes present. A password
// made entirely of unrecognized characters falls back to its distinct-rune
// count, so any non-empty input yields at least 1.
func charsetSize(password string, flags domain.CharacterTypeFlags) int {
	size := 0
	if flags.HasLowercase {
		size += domain.AlphabetLower
	}
	if flags.HasUppercase {
		size += domain.AlphabetUpper
	}
	if flags.HasDigits {
		size += domain.AlphabetDigits
	}
	if flags.HasSymbols {
		size += domain.AlphabetSpecial
	}

	if size == 0 {
		distinct := make(map[rune]struct{})
		for _, r := range password {
			distinct[r] = struct{}{}
		}
		size = len(distinct)
	}

	return size
}

// checkPatterns runs every rule, recording each issue kind at most once in
// first-detected order.
func (a *Analyzer) checkPatterns(password string) []domain.PatternIssueKind {
	lowered := strings.ToLower(password)

	var issues []domain.PatternIssueKind
	seen := make(map[domain.PatternIssueKind]struct{})

	for _, rule := range a.rules.Rules {
		if _, dup := seen[rule.Kind]; dup {
			continue
		}
		if rule.Detect(password, lowered) {
			seen[rule.Kind] = struct{}{}
			issues = append(issues, rule.Kind)
		}
	}

	return issues
}

// entropyBits is length*log2(charsetSize) scaled by multiplicative penalty
// factors: x0.7 when any pattern issue exists, x0.3 when the password is a
// known weak one. Both can apply (0.21 combined).
func entropyBits(length, charsetSize int, hasIssues, isCommon bool) float64 {
	if charsetSize <= 1 {
		return 0.0
	}

	entropy := float64(length) * math.Log2(float64(charsetSize))

	factor := 1.0
	if hasIssues {
		factor *= 0.7
	}
	if isCommon {
		factor *= 0.3
	}

	return entropy * factor
}

// TotalCombinations is charsetSize^length in exact integer arithmetic.
// The empty-password case 0^0 is defined as 1.
func TotalCombinations(charsetSize, length int) *big.Int {
	if length == 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(big.NewInt(int64(charsetSize)), big.NewInt(int64(length)), nil)
}

// CrackTimes maps each attack profile to a formatted average-case duration.
// Average case means the attacker expects to search half the space before
// hitting the password; the same divisor applies to every tier.
func CrackTimes(totalCombinations *big.Int) map[string]string {
	avgAttempts := new(big.Int).Rsh(totalCombinations, 1)

	times := make(map[string]string, len(domain.AttackProfiles))
	for _, profile := range domain.AttackProfiles {
		times[profile.Name] = FormatDuration(attemptSeconds(avgAttempts, profile.Rate))
	}
	return times
}

func attemptSeconds(attempts *big.Int, rate float64) float64 {
	seconds, _ := new(big.Float).Quo(
		new(big.Float).SetInt(attempts),
		big.NewFloat(rate),
	).Float64()

	// Beyond float64 range; pin to the largest representable duration.
	if math.IsInf(seconds, 1) {
		seconds = math.MaxFloat64
	}
	return seconds
}

// strengthScore composes four independently capped sub-scores and clamps the
// sum to [0,100]: length (30), diversity (25), entropy (25), penalty (20).
func strengthScore(record *domain.AnalysisRecord) int {
	score := 0

	switch {
	case record.Length >= 16:
		score += 30
	case record.Length >= 12:
		score += 25
	case record.Length >= 8:
		score += 15
	case record.Length >= 6:
		score += 10
	default:
		score += 5
	}

	switch typeCount := record.CharacterTypes.TypeCount(); {
	case typeCount >= 4:
		score += 25
	case typeCount == 3:
		score += 20
	case typeCount == 2:
		score += 10
	default:
		score += 5
	}

	switch {
	case record.EntropyBits >= 60:
		score += 25
	case record.EntropyBits >= 50:
		score += 20
	case record.EntropyBits >= 40:
		score += 15
	case record.EntropyBits >= 30:
		score += 10
	default:
		score += 5
	}

	penalty := 20
	if record.IsCommonPassword {
		penalty -= 15
	}
	if len(record.PatternIssues) > 0 {
		deduction := len(record.PatternIssues) * 3
		if deduction > 10 {
			deduction = 10
		}
		penalty -= deduction
	}
	if penalty < 0 {
		penalty = 0
	}
	score += penalty

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// StrengthLevelFor buckets a 0-100 score into the display tiers.
func StrengthLevelFor(score int) domain.StrengthLevel {
	switch {
	case score < 25:
		return domain.StrengthVeryWeak
	case score < 50:
		return domain.StrengthWeak
	case score < 75:
		return domain.StrengthMedium
	case score < 90:
		return domain.StrengthStrong
	default:
		return domain.StrengthVeryStrong
	}
}
