package hours

import (
	"fmt"
	"regexp"
	"strconv"
)

// MinutesPerDay is the wrap offset applied to overnight ranges.
const MinutesPerDay = 24 * 60

var clockTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// IsClockTime reports whether s is a 24-hour HH:MM time string.
func IsClockTime(s string) bool {
	return clockTimePattern.MatchString(s)
}

// ToMinutes converts an HH:MM time string to minutes since midnight.
func ToMinutes(s string) (int, error) {
	if !IsClockTime(s) {
		return 0, fmt.Errorf("invalid time string %q, expected HH:MM", s)
	}
	hh, _ := strconv.Atoi(s[:2])
	mm, _ := strconv.Atoi(s[3:])
	return hh*60 + mm, nil
}

// InRange reports whether current (minutes since midnight) falls inside the
// [start, end] window. Both endpoints are inclusive: a 09:00-17:00 store is
// open at exactly 09:00 and exactly 17:00.
//
// A window whose end is numerically before its start crosses midnight
// (22:00-02:00). The end is shifted a day forward, and so is current when it
// sits before the start, so that 01:00 still matches 22:00-02:00.
func InRange(current, start, end int) bool {
	if end < start {
		end += MinutesPerDay
		if current < start {
			current += MinutesPerDay
		}
	}
	return start <= current && current <= end
}
