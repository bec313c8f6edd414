package advisor

import "crackTimeBackend/internal/core/domain"

var generalTips = []string{
	"Use unique passwords for work and personal accounts",
	"Implement password rotation policies for critical systems",
	"Train employees on password security best practices",
	"Use enterprise password managers for team coordination",
	"Regularly audit password strength across systems",
}

var industryTips = map[domain.Industry][]string{
	domain.IndustryHealthcare: {
		"Ensure HIPAA compliance with strong authentication",
		"Use role-based password policies",
		"Implement automatic screen locks for patient data access",
	},
	domain.IndustryFinance: {
		"Follow PCI DSS requirements for payment systems",
		"Use multi-factor authentication for all financial access",
		"Implement session timeouts for sensitive operations",
	},
	domain.IndustryEducation: {
		"Protect student data with strong authentication",
		"Teach password security as part of digital literacy",
		"Use single sign-on (SSO) to reduce password fatigue",
	},
	domain.IndustryTechnology: {
		"Use SSH keys instead of passwords where possible",
		"Implement zero-trust security models",
		"Use hardware security keys for critical systems",
	},
}

// GetIndustrySpecificTips returns the general tips plus the extras for a
// recognized industry. Unrecognized industries get the general tips only.
func (a *Advisor) GetIndustrySpecificTips(industry domain.Industry) []string {
	tips := make([]string, 0, len(generalTips)+3)
	tips = append(tips, generalTips...)

	if extra, ok := industryTips[industry]; ok {
		tips = append(tips, extra...)
	}

	return tips
}

// GetBreachResponseAdvice returns the fixed checklist for responding to a
// compromised password.
func (a *Advisor) GetBreachResponseAdvice() []string {
	return []string{
		"Change the compromised password immediately",
		"Update any accounts that used the same password",
		"Monitor accounts for suspicious activity",
		"Enable breach notifications from security services",
		"Consider identity monitoring services",
		"Review and update all passwords periodically",
		"Use unique passwords for every account going forward",
		"Enable two-factor authentication on all possible accounts",
	}
}
