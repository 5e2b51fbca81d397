package enums

import "fmt"

// MatchStatus tracks a fixture through its lifecycle.
type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusLive      MatchStatus = "live"
	MatchStatusCompleted MatchStatus = "completed"
	MatchStatusPostponed MatchStatus = "postponed"
	MatchStatusCancelled MatchStatus = "cancelled"
)

var validMatchStatuses = []MatchStatus{
	MatchStatusScheduled,
	MatchStatusLive,
	MatchStatusCompleted,
	MatchStatusPostponed,
	MatchStatusCancelled,
}

// String implements fmt.Stringer.
func (m MatchStatus) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MatchStatus.
func (m MatchStatus) IsValid() bool {
	for _, candidate := range validMatchStatuses {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMatchStatus converts raw input into a MatchStatus.
func ParseMatchStatus(value string) (MatchStatus, error) {
	for _, candidate := range validMatchStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid match status %q", value)
}
