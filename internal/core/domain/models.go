package domain

import (
	"math/big"
	"time"
)

// AttackProfile is a fixed attacker tier with an assumed guessing rate.
type AttackProfile struct {
	Name  string
	Label string
	Rate  float64 // guesses per second
}

// AttackProfiles is the fixed tier table, ordered slow to fast.
var AttackProfiles = []AttackProfile{
	{Name: "script_kiddie", Label: "Script Kiddie (1K/sec)", Rate: 1e3},
	{Name: "dedicated_hacker", Label: "Dedicated Hacker (1M/sec)", Rate: 1e6},
	{Name: "nation_state", Label: "Nation State (1B/sec)", Rate: 1e9},
	{Name: "quantum", Label: "Quantum Computer (1T/sec)", Rate: 1e12},
}

// ProfileMedium is the tier the crack-time warning keys off.
const ProfileMedium = "dedicated_hacker"

type CharacterTypeFlags struct {
	HasLowercase bool `json:"hasLowercase"`
	HasUppercase bool `json:"hasUppercase"`
	HasDigits    bool `json:"hasDigits"`
	HasSymbols   bool `json:"hasSymbols"`
	HasSpaces    bool `json:"hasSpaces"`
}

// TypeCount returns how many of the four ASCII classes are present.
// Spaces are tracked but never counted toward diversity.
func (f CharacterTypeFlags) TypeCount() int {
	count := 0
	for _, present := range []bool{f.HasLowercase, f.HasUppercase, f.HasDigits, f.HasSymbols} {
		if present {
			count++
		}
	}
	return count
}

// AnalysisRecord is the full output of a single password analysis.
// It is created fresh per call and never stores the password itself.
type AnalysisRecord struct {
	Length            int                `json:"length"`
	CharsetSize       int                `json:"charsetSize"`
	EntropyBits       float64            `json:"entropyBits"`
	TotalCombinations *big.Int           `json:"totalCombinations"`
	CrackTimes        map[string]string  `json:"crackTimes"`
	StrengthScore     int                `json:"strengthScore"`
	StrengthLevel     StrengthLevel      `json:"strengthLevel"`
	CharacterTypes    CharacterTypeFlags `json:"characterTypes"`
	PatternIssues     []PatternIssueKind `json:"patternIssues"`
	IsCommonPassword  bool               `json:"isCommonPassword"`
}

// HasIssue reports whether kind was detected for this record.
func (r *AnalysisRecord) HasIssue(kind PatternIssueKind) bool {
	for _, issue := range r.PatternIssues {
		if issue == kind {
			return true
		}
	}
	return false
}

// ImprovementImpact is the projected effect of applying a set of suggestions.
type ImprovementImpact struct {
	StrengthIncrease int    `json:"strengthIncrease"`
	TimeImprovement  string `json:"timeImprovement"`
	RiskReduction    string `json:"riskReduction"`
}

// AnalysisResponse bundles everything the service derives for one password.
type AnalysisResponse struct {
	RequestID        string         `json:"requestId"`
	Analysis         AnalysisRecord `json:"analysis"`
	Warnings         []string       `json:"warnings"`
	Suggestions      []string       `json:"suggestions"`
	CommonMistakes   []string       `json:"commonMistakes"`
	DictionaryAttack string         `json:"dictionaryAttack"`
	CrossCheckScore  int            `json:"crossCheckScore"` // zxcvbn 0-4
}

// BatchResult carries one outcome of a batch analysis, addressed by the
// input index so callers can correlate without the password round-tripping.
type BatchResult struct {
	Index    int               `json:"index"`
	Response *AnalysisResponse `json:"response,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// SessionMetrics tracks resource usage and throughput for a serve session.
type SessionMetrics struct {
	CPUUsage       float64   `json:"cpuUsage"`
	MemoryUsageMB  int64     `json:"memoryUsageMb"`
	AnalysesPerSec int64     `json:"analysesPerSec"`
	TotalAnalyses  int64     `json:"totalAnalyses"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// AnalysisReport is the anonymized audit row persisted per analysis.
// The password itself is never stored.
type AnalysisReport struct {
	ID            string        `json:"id"`
	AnalyzedAt    time.Time     `json:"analyzedAt"`
	Length        int           `json:"length"`
	CharsetSize   int           `json:"charsetSize"`
	EntropyBits   float64       `json:"entropyBits"`
	StrengthScore int           `json:"strengthScore"`
	StrengthLevel StrengthLevel `json:"strengthLevel"`
	IssueCount    int           `json:"issueCount"`
	CommonMatch   bool          `json:"commonMatch"`
}
