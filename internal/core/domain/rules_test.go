package domain

import (
	"strings"
	"testing"
)

func TestWeakPasswordSet_CaseInsensitive(t *testing.T) {
	set := NewWeakPasswordSet([]string{"Password1", "letmein"})

	tests := []struct {
		password string
		want     bool
	}{
		{"password1", true},
		{"PASSWORD1", true},
		{"LetMeIn", true},
		{"letmein2", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := set.Contains(tt.password); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}

func TestCollapseLeet(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"p@55w0rd", "password"},
		{"l37m31n", "letmein"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CollapseLeet(tt.in); got != tt.want {
			t.Errorf("CollapseLeet(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultRuleSet_KindMapping(t *testing.T) {
	rules := DefaultRuleSet()

	// Every rule maps to exactly one known kind; several rules may share one.
	known := map[PatternIssueKind]bool{
		IssueRepeatedCharacters: true,
		IssueSequentialChars:    true,
		IssueKeyboardPattern:    true,
		IssueCommonWords:        true,
		IssueDatePattern:        true,
		IssueSimpleSubstitution: true,
	}

	for _, rule := range rules.Rules {
		if !known[rule.Kind] {
			t.Errorf("rule %q has unknown kind %q", rule.Name, rule.Kind)
		}
		if rule.Detect == nil {
			t.Errorf("rule %q has no detector", rule.Name)
		}
	}
}

func TestRuleDetection(t *testing.T) {
	rules := DefaultRuleSet()

	detect := func(password string, kind PatternIssueKind) bool {
		lowered := strings.ToLower(password)
		for _, rule := range rules.Rules {
			if rule.Kind == kind && rule.Detect(password, lowered) {
				return true
			}
		}
		return false
	}

	tests := []struct {
		name     string
		password string
		kind     PatternIssueKind
		want     bool
	}{
		{"triple repeat", "xaaay", IssueRepeatedCharacters, true},
		{"double repeat is fine", "xaay", IssueRepeatedCharacters, false},
		{"digit run", "pw4567", IssueSequentialChars, true},
		{"letter run", "xyzpw", IssueSequentialChars, true},
		{"case-insensitive letter run", "AbCdE", IssueSequentialChars, true},
		{"keyboard walk", "zxcvbn", IssueKeyboardPattern, true},
		{"dictionary word", "myLoginPw", IssueCommonWords, true},
		{"year in range", "k1999x", IssueDatePattern, true},
		{"year at end", "prefix2085", IssueDatePattern, true},
		{"below year range", "k1899x", IssueDatePattern, false},
		{"four digits no year shape", "k4999x", IssueDatePattern, false},
		{"leet collapse to weak word", "l3tm31n", IssueSimpleSubstitution, true},
		{"leet collapse to nothing weak", "c0ff33", IssueSimpleSubstitution, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detect(tt.password, tt.kind); got != tt.want {
				t.Errorf("detect(%q, %s) = %v, want %v", tt.password, tt.kind, got, tt.want)
			}
		})
	}
}

func TestNewRuleSet_CustomWeakList(t *testing.T) {
	rules := NewRuleSet([]string{"hunter2", "swordfish"})

	if !rules.WeakPasswords.Contains("HUNTER2") {
		t.Error("custom weak list entry not matched case-insensitively")
	}
	if rules.WeakPasswords.Contains("password") {
		t.Error("default entries must not leak into a custom rule set")
	}

	// The leetspeak rule targets the same custom set.
	var leet PatternRule
	for _, rule := range rules.Rules {
		if rule.Kind == IssueSimpleSubstitution {
			leet = rule
			break
		}
	}
	if leet.Detect == nil {
		t.Fatal("no leetspeak rule in custom rule set")
	}
	if !leet.Detect("hun73r2", "hun73r2") {
		t.Error("leetspeak rule did not collapse against the custom weak list")
	}
}
