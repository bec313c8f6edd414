package domain

import "strings"

// PatternRule pairs a detectable weakness with the single issue kind it maps
// to. Detect receives the original password and a pre-lowered copy so rules
// can pick whichever the check is defined over.
type PatternRule struct {
	Name   string
	Kind   PatternIssueKind
	Detect func(password, lowered string) bool
}

// WeakPasswordSet is a case-insensitive set of known weak passwords.
type WeakPasswordSet map[string]struct{}

func NewWeakPasswordSet(passwords []string) WeakPasswordSet {
	set := make(WeakPasswordSet, len(passwords))
	for _, p := range passwords {
		set[strings.ToLower(p)] = struct{}{}
	}
	return set
}

func (s WeakPasswordSet) Contains(password string) bool {
	_, ok := s[strings.ToLower(password)]
	return ok
}

// RuleSet is the immutable configuration the analyzer and advisor run
// against. Built once at startup and shared read-only between calls.
type RuleSet struct {
	Rules         []PatternRule
	WeakPasswords WeakPasswordSet
}

// Subset of common weak passwords, enough for demonstration purposes.
var defaultWeakPasswords = []string{
	"password", "password123", "123456", "qwerty", "admin", "letmein",
	"welcome", "monkey", "1234567890", "abc123", "password1", "admin123",
	"root", "toor", "pass", "12345678", "qwerty123", "Password1",
}

var (
	sequentialDigits  = []string{"012", "123", "234", "345", "456", "567", "678", "789"}
	sequentialLetters = []string{
		"abc", "bcd", "cde", "def", "efg", "fgh", "ghi", "hij", "ijk", "jkl",
		"klm", "lmn", "mno", "nop", "opq", "pqr", "qrs", "rst", "stu", "tuv",
		"uvw", "vwx", "wxy", "xyz",
	}
	keyboardRuns = []string{"qwerty", "asdf", "zxcv"}
	commonWords  = []string{"password", "admin", "login", "user", "guest"}
)

// leetSubstitutions collapses the usual digit/symbol stand-ins back to the
// letters they imitate.
var leetSubstitutions = []struct {
	symbol string
	letter string
}{
	{"@", "a"}, {"3", "e"}, {"1", "i"}, {"0", "o"}, {"5", "s"}, {"7", "t"},
}

// CollapseLeet rewrites lowered leetspeak to plain letters.
func CollapseLeet(lowered string) string {
	simplified := lowered
	for _, sub := range leetSubstitutions {
		simplified = strings.ReplaceAll(simplified, sub.symbol, sub.letter)
	}
	return simplified
}

// DefaultRuleSet builds the stock pattern rules and weak-password set.
func DefaultRuleSet() *RuleSet {
	return NewRuleSet(defaultWeakPasswords)
}

// NewRuleSet builds the standard pattern rules against a caller-supplied
// weak-password list, so deployments can swap in their own corpus.
func NewRuleSet(weakPasswords []string) *RuleSet {
	weak := NewWeakPasswordSet(weakPasswords)

	rules := []PatternRule{
		{
			Name: "repeated characters",
			Kind: IssueRepeatedCharacters,
			Detect: func(_, lowered string) bool {
				return hasRepeatedRun(lowered, 3)
			},
		},
		{
			Name: "sequential digits",
			Kind: IssueSequentialChars,
			Detect: func(_, lowered string) bool {
				return containsAny(lowered, sequentialDigits)
			},
		},
		{
			Name: "sequential letters",
			Kind: IssueSequentialChars,
			Detect: func(_, lowered string) bool {
				return containsAny(lowered, sequentialLetters)
			},
		},
		{
			Name: "keyboard pattern",
			Kind: IssueKeyboardPattern,
			Detect: func(_, lowered string) bool {
				return containsAny(lowered, keyboardRuns)
			},
		},
		{
			Name: "common words",
			Kind: IssueCommonWords,
			Detect: func(_, lowered string) bool {
				return containsAny(lowered, commonWords)
			},
		},
		{
			Name: "embedded year",
			Kind: IssueDatePattern,
			Detect: func(password, _ string) bool {
				// Years 1900-2099, scanned over the original password.
				return hasEmbeddedYear(password)
			},
		},
		{
			Name: "leetspeak substitution",
			Kind: IssueSimpleSubstitution,
			Detect: func(_, lowered string) bool {
				return weak.Contains(CollapseLeet(lowered))
			},
		},
	}

	return &RuleSet{Rules: rules, WeakPasswords: weak}
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}

// hasRepeatedRun reports whether any rune appears at least n times in a row.
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= n {
			return true
		}
	}
	return false
}

func hasEmbeddedYear(password string) bool {
	bytes := []byte(password)
	for i := 0; i+4 <= len(bytes); i++ {
		leading := (bytes[i] == '1' && bytes[i+1] == '9') || (bytes[i] == '2' && bytes[i+1] == '0')
		if leading && isDigit(bytes[i+2]) && isDigit(bytes[i+3]) {
			return true
		}
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
