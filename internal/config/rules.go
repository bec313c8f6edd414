package config

import (
	"fmt"
	"os"
	"strings"

	"crackTimeBackend/internal/core/domain"
)

// LoadRuleSet builds the analyzer configuration. With no weak-password file
// configured the compiled-in defaults apply.
func LoadRuleSet(cfg *Config) (*domain.RuleSet, error) {
	if cfg.Analysis.WeakPasswordFile == "" {
		return domain.DefaultRuleSet(), nil
	}

	data, err := os.ReadFile(cfg.Analysis.WeakPasswordFile)
	if err != nil {
		return nil, fmt.Errorf("read weak-password file: %w", err)
	}

	var passwords []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		passwords = append(passwords, line)
	}

	if len(passwords) == 0 {
		return nil, fmt.Errorf("weak-password file %s has no entries", cfg.Analysis.WeakPasswordFile)
	}

	return domain.NewRuleSet(passwords), nil
}
