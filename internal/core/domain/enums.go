package domain

type PatternIssueKind string
type StrengthLevel string
type Industry string

const (
	// Pattern issue kinds
	IssueRepeatedCharacters PatternIssueKind = "repeated_characters"
	IssueSequentialChars    PatternIssueKind = "sequential_characters"
	IssueKeyboardPattern    PatternIssueKind = "keyboard_pattern"
	IssueCommonWords        PatternIssueKind = "common_words"
	IssueDatePattern        PatternIssueKind = "date_pattern"
	IssueSimpleSubstitution PatternIssueKind = "simple_substitution"

	// Password strength levels
	StrengthVeryWeak   StrengthLevel = "VERY_WEAK"
	StrengthWeak       StrengthLevel = "WEAK"
	StrengthMedium     StrengthLevel = "MEDIUM"
	StrengthStrong     StrengthLevel = "STRONG"
	StrengthVeryStrong StrengthLevel = "VERY_STRONG"

	// Industries with tailored advice
	IndustryGeneral    Industry = "general"
	IndustryHealthcare Industry = "healthcare"
	IndustryFinance    Industry = "finance"
	IndustryEducation  Industry = "education"
	IndustryTechnology Industry = "technology"
)

var (
	CharsetLower   = "abcdefghijklmnopqrstuvwxyz"
	CharsetUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetDigits  = "0123456789"
	CharsetSpecial = "!@#$%^&*()_+-=[]{};':\"\\|,.<>?/`~"
)

// Alphabet sizes added to the charset estimate when a class is present.
const (
	AlphabetLower   = 26
	AlphabetUpper   = 26
	AlphabetDigits  = 10
	AlphabetSpecial = 32
)

type AnalysisError string

const (
	ErrEmptyPassword  AnalysisError = "EMPTY_PASSWORD"
	ErrReportNotFound AnalysisError = "REPORT_NOT_FOUND"
)

func (e AnalysisError) Error() string {
	return string(e)
}
