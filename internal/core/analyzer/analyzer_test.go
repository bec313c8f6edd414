package analyzer

import (
	"math"
	"math/big"
	"reflect"
	"testing"

	"crackTimeBackend/internal/core/domain"
)

func TestAnalyze_CharsetSize(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     int
	}{
		{"lowercase only", "password", 26},
		{"upper and lower", "Password", 52},
		{"letters and digits", "Pass1234", 62},
		{"all four classes", "Pa55w0rd!", 94},
		{"digits only", "123456", 10},
		{"symbols only", "!@#$%", 32},
		{"unicode fallback", "日本語日本", 3},
		{"space is not a class", "     ", 1},
	}

	a := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := a.Analyze(tt.password)
			if record.CharsetSize != tt.want {
				t.Errorf("CharsetSize = %d, want %d", record.CharsetSize, tt.want)
			}
			if record.CharsetSize < 1 {
				t.Errorf("CharsetSize = %d, want >= 1 for non-empty input", record.CharsetSize)
			}
		})
	}
}

func TestAnalyze_CharacterTypes(t *testing.T) {
	a := New(nil)
	record := a.Analyze("Pa5! x")

	want := domain.CharacterTypeFlags{
		HasLowercase: true,
		HasUppercase: true,
		HasDigits:    true,
		HasSymbols:   true,
		HasSpaces:    true,
	}
	if record.CharacterTypes != want {
		t.Errorf("CharacterTypes = %+v, want %+v", record.CharacterTypes, want)
	}
	if got := record.CharacterTypes.TypeCount(); got != 4 {
		t.Errorf("TypeCount() = %d, want 4 (spaces excluded)", got)
	}
}

func TestAnalyze_EmptyPassword(t *testing.T) {
	a := New(nil)
	record := a.Analyze("")

	if record.Length != 0 {
		t.Errorf("Length = %d, want 0", record.Length)
	}
	if record.CharsetSize != 0 {
		t.Errorf("CharsetSize = %d, want 0", record.CharsetSize)
	}
	if record.EntropyBits != 0 {
		t.Errorf("EntropyBits = %v, want 0", record.EntropyBits)
	}
	if record.TotalCombinations.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("TotalCombinations = %v, want 1 (0^0 convention)", record.TotalCombinations)
	}
}

func TestAnalyze_CommonPassword(t *testing.T) {
	a := New(nil)
	record := a.Analyze("password")

	if record.CharsetSize != 26 {
		t.Errorf("CharsetSize = %d, want 26", record.CharsetSize)
	}
	if !record.IsCommonPassword {
		t.Error("IsCommonPassword = false, want true")
	}
	if !record.HasIssue(domain.IssueCommonWords) {
		t.Errorf("PatternIssues = %v, want common_words included", record.PatternIssues)
	}

	// Pattern and common penalties compose: 0.7 * 0.3 = 0.21.
	unpenalized := 8 * math.Log2(26)
	if diff := math.Abs(record.EntropyBits - unpenalized*0.21); diff > 1e-9 {
		t.Errorf("EntropyBits = %v, want %v", record.EntropyBits, unpenalized*0.21)
	}

	if record.StrengthScore >= 50 {
		t.Errorf("StrengthScore = %d, want < 50", record.StrengthScore)
	}
}

func TestAnalyze_StrongPassword(t *testing.T) {
	a := New(nil)
	record := a.Analyze("Tr0ub4dor&3Zz9!")

	if record.IsCommonPassword {
		t.Error("IsCommonPassword = true, want false")
	}
	if len(record.PatternIssues) != 0 {
		t.Errorf("PatternIssues = %v, want none", record.PatternIssues)
	}
	if got := record.CharacterTypes.TypeCount(); got != 4 {
		t.Errorf("TypeCount() = %d, want 4", got)
	}
	if record.StrengthScore < 75 {
		t.Errorf("StrengthScore = %d, want >= 75", record.StrengthScore)
	}
	if record.StrengthLevel != domain.StrengthVeryStrong {
		t.Errorf("StrengthLevel = %s, want %s", record.StrengthLevel, domain.StrengthVeryStrong)
	}
}

func TestAnalyze_PatternDetection(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     []domain.PatternIssueKind
	}{
		{
			name:     "repeated and sequential",
			password: "aaa123",
			want:     []domain.PatternIssueKind{domain.IssueRepeatedCharacters, domain.IssueSequentialChars},
		},
		{
			name:     "sequential recorded once for digits and letters",
			password: "abc123",
			want:     []domain.PatternIssueKind{domain.IssueSequentialChars},
		},
		{
			name:     "keyboard run",
			password: "xQwErTyx",
			want:     []domain.PatternIssueKind{domain.IssueKeyboardPattern},
		},
		{
			name:     "embedded year",
			password: "born1995",
			want:     []domain.PatternIssueKind{domain.IssueDatePattern},
		},
		{
			name:     "year above range ignored",
			password: "born2199",
			want:     nil,
		},
		{
			name:     "leetspeak collapse",
			password: "p@55w0rd",
			want:     []domain.PatternIssueKind{domain.IssueSimpleSubstitution},
		},
		{
			name:     "clean",
			password: "Th&Gv9Lm",
			want:     nil,
		},
	}

	a := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := a.Analyze(tt.password)
			if !reflect.DeepEqual(record.PatternIssues, tt.want) {
				t.Errorf("PatternIssues = %v, want %v", record.PatternIssues, tt.want)
			}
		})
	}
}

func TestAnalyze_ScoreBounds(t *testing.T) {
	passwords := []string{
		"", "a", "password", "123456", "aaaaaaaaaaaaaaaaaaaa",
		"Tr0ub4dor&3Zz9!", "Correct Horse Battery Staple 42!",
		"日本語のパスワード", "qwertyqwertyqwerty",
	}

	a := New(nil)
	for _, password := range passwords {
		record := a.Analyze(password)
		if record.StrengthScore < 0 || record.StrengthScore > 100 {
			t.Errorf("Analyze(%q).StrengthScore = %d, want within [0,100]", password, record.StrengthScore)
		}
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := New(nil)
	first := a.Analyze("S0me&Password2024")
	second := a.Analyze("S0me&Password2024")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Analyze not deterministic:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestAnalyze_LengthMonotonicity(t *testing.T) {
	a := New(nil)
	shorter := a.Analyze("Vb7&mQ2x")
	longer := a.Analyze("Vb7&mQ2xVb7&mQ2x")

	if longer.StrengthScore < shorter.StrengthScore {
		t.Errorf("longer score %d < shorter score %d", longer.StrengthScore, shorter.StrengthScore)
	}
}

func TestTotalCombinations_ExactBigInt(t *testing.T) {
	// charset 94, length 64 exceeds uint64 by far; must stay exact.
	got := TotalCombinations(94, 64)

	want := big.NewInt(1)
	for i := 0; i < 64; i++ {
		want.Mul(want, big.NewInt(94))
	}

	if got.Cmp(want) != 0 {
		t.Errorf("TotalCombinations(94, 64) = %v, want %v", got, want)
	}
	if got.IsUint64() {
		t.Error("TotalCombinations(94, 64) fits uint64; expected arbitrary precision range")
	}
}

func TestCrackTimes_NationStateExample(t *testing.T) {
	// 10^12 combinations, half searched, at 1e9/sec: 500 seconds.
	total := new(big.Int).Exp(big.NewInt(10), big.NewInt(12), nil)
	times := CrackTimes(total)

	if len(times) != len(domain.AttackProfiles) {
		t.Fatalf("got %d crack times, want %d", len(times), len(domain.AttackProfiles))
	}
	if got := times["nation_state"]; got != "8.3 minutes" {
		t.Errorf(`times["nation_state"] = %q, want "8.3 minutes"`, got)
	}
}

func TestEstimateDictionaryAttack(t *testing.T) {
	tests := []struct {
		password string
		want     string
	}{
		{"password", "< 1 second (in common wordlist)"},
		{"LETMEIN", "< 1 second (in common wordlist)"},
		{"monkey99!", "< 1 minute (common word variation)"},
		{"myadminaccount", "Minutes to hours (contains dictionary words)"},
		{"Tr0ub4dor&3Zz9!", "Very long (not in typical dictionaries)"},
	}

	a := New(nil)
	for _, tt := range tests {
		if got := a.EstimateDictionaryAttack(tt.password); got != tt.want {
			t.Errorf("EstimateDictionaryAttack(%q) = %q, want %q", tt.password, got, tt.want)
		}
	}
}

func TestStrengthLevelFor(t *testing.T) {
	tests := []struct {
		score int
		want  domain.StrengthLevel
	}{
		{0, domain.StrengthVeryWeak},
		{24, domain.StrengthVeryWeak},
		{25, domain.StrengthWeak},
		{49, domain.StrengthWeak},
		{50, domain.StrengthMedium},
		{74, domain.StrengthMedium},
		{75, domain.StrengthStrong},
		{89, domain.StrengthStrong},
		{90, domain.StrengthVeryStrong},
		{100, domain.StrengthVeryStrong},
	}

	for _, tt := range tests {
		if got := StrengthLevelFor(tt.score); got != tt.want {
			t.Errorf("StrengthLevelFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
