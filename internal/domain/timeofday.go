package domain

import (
	"fmt"
	"strconv"
)

// TimeOfDay is a wall-clock time with minute precision on a 24-hour clock.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a zero-padded "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	invalid := fmt.Errorf("%w: %q is not a valid time string (e.g. 15:02)", ErrInvalidArgument, s)

	if len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, invalid
	}
	hour, ok := parseTwoDigits(s[0:2])
	if !ok || hour > 23 {
		return TimeOfDay{}, invalid
	}
	minute, ok := parseTwoDigits(s[3:5])
	if !ok || minute > 59 {
		return TimeOfDay{}, invalid
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

func parseTwoDigits(s string) (int, bool) {
	if len(s) != 2 || !isDigit(s[0]) || !isDigit(s[1]) {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// SecondsSinceMidnight returns the elapsed seconds from 00:00 to t.
func (t TimeOfDay) SecondsSinceMidnight() int {
	return t.Hour*3600 + t.Minute*60
}

// Tokens returns the seconds since midnight as the single engine argument.
func (t TimeOfDay) Tokens() []string {
	return []string{strconv.Itoa(t.SecondsSinceMidnight())}
}

// String returns t as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
