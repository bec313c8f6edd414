package analyzer

import "fmt"

// Duration bucket boundaries in seconds.
const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerYear   = 31536000
	daysPerMonth     = 30.44
)

// FormatDuration renders a second count as a human-readable estimate, one
// decimal place throughout. The bucket table is part of the tool's observable
// behavior: callers match on substrings like "second" and "minute".
func FormatDuration(seconds float64) string {
	switch {
	case seconds < 1:
		return "< 1 second"
	case seconds < secondsPerMinute:
		return fmt.Sprintf("%.1f seconds", seconds)
	case seconds < secondsPerHour:
		return fmt.Sprintf("%.1f minutes", seconds/secondsPerMinute)
	case seconds < secondsPerDay:
		return fmt.Sprintf("%.1f hours", seconds/secondsPerHour)
	case seconds < secondsPerYear:
		days := seconds / secondsPerDay
		switch {
		case days < 7:
			return fmt.Sprintf("%.1f days", days)
		case days < 365:
			return fmt.Sprintf("%.1f weeks", days/7)
		default:
			return fmt.Sprintf("%.1f months", days/daysPerMonth)
		}
	}

	years := seconds / secondsPerYear
	switch {
	case years < 1e3:
		return fmt.Sprintf("%.1f years", years)
	case years < 1e6:
		return fmt.Sprintf("%.1f thousand years", years/1e3)
	case years < 1e9:
		return fmt.Sprintf("%.1f million years", years/1e6)
	case years < 1e12:
		return fmt.Sprintf("%.1f billion years", years/1e9)
	default:
		return fmt.Sprintf("%.1f trillion years", years/1e12)
	}
}
