package enums

import "fmt"

// LeagueStatus tracks whether a league season is open, underway, or done.
type LeagueStatus string

const (
	LeagueStatusRegistration LeagueStatus = "registration"
	LeagueStatusActive       LeagueStatus = "active"
	LeagueStatusCompleted    LeagueStatus = "completed"
)

var validLeagueStatuses = []LeagueStatus{
	LeagueStatusRegistration,
	LeagueStatusActive,
	LeagueStatusCompleted,
}

// String implements fmt.Stringer.
func (l LeagueStatus) String() string {
	return string(l)
}

// IsValid reports whether the value is a known LeagueStatus.
func (l LeagueStatus) IsValid() bool {
	for _, candidate := range validLeagueStatuses {
		if candidate == l {
			return true
		}
	}
	return false
}

// ParseLeagueStatus converts raw input into a LeagueStatus.
func ParseLeagueStatus(value string) (LeagueStatus, error) {
	for _, candidate := range validLeagueStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid league status %q", value)
}
