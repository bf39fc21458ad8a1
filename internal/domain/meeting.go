package domain

import (
	"fmt"
	"strings"
)

// weekdayLetters is the canonical ordering of meeting-day letters
// (R is Thursday).
const weekdayLetters = "MTWRF"

// DaySet is a set of weekday letters drawn from MTWRF, one bit per day.
type DaySet uint8

func ParseDays(raw string) (DaySet, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: empty day string", ErrMalformedDays)
	}

	var days DaySet
	for _, letter := range raw {
		index := strings.IndexRune(weekdayLetters, letter)
		if index < 0 {
			return 0, fmt.Errorf("%w: unknown day letter %q in %q", ErrMalformedDays, letter, raw)
		}

		bit := DaySet(1) << uint(index)
		if days&bit != 0 {
			return 0, fmt.Errorf("%w: duplicate day letter %q in %q", ErrMalformedDays, letter, raw)
		}
		days |= bit
	}

	return days, nil
}

func (d DaySet) Overlaps(other DaySet) bool {
	return d&other != 0
}

func (d DaySet) Contains(letter rune) bool {
	index := strings.IndexRune(weekdayLetters, letter)
	if index < 0 {
		return false
	}

	return d&(DaySet(1)<<uint(index)) != 0
}

// String renders the set in canonical MTWRF order, so it round-trips
// through ParseDays.
func (d DaySet) String() string {
	var sb strings.Builder
	for i, letter := range weekdayLetters {
		if d&(DaySet(1)<<uint(i)) != 0 {
			sb.WriteRune(letter)
		}
	}

	return sb.String()
}

// ParseInterval parses "HH:MM-HH:MM" into minutes since midnight.
func ParseInterval(raw string) (startMin, endMin int, err error) {
	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q must contain exactly one hyphen", ErrMalformedInterval, raw)
	}

	startMin, err = parseClock(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad start in %q: %v", ErrMalformedInterval, raw, err)
	}

	endMin, err = parseClock(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad end in %q: %v", ErrMalformedInterval, raw, err)
	}

	return startMin, endMin, nil
}

func parseClock(raw string) (int, error) {
	var hours, minutes int
	if _, err := fmt.Sscanf(raw, "%d:%d", &hours, &minutes); err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", raw, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock %q out of range", raw)
	}

	return hours*60 + minutes, nil
}

// Meeting is the parsed (days, time-interval) form of a section's
// schedule. Conflict computation never compares raw strings.
type Meeting struct {
	Days     DaySet
	StartMin int
	EndMin   int
}

func NewMeeting(days, interval string) (Meeting, error) {
	daySet, err := ParseDays(days)
	if err != nil {
		return Meeting{}, err
	}

	startMin, endMin, err := ParseInterval(interval)
	if err != nil {
		return Meeting{}, err
	}
	if startMin >= endMin {
		return Meeting{}, fmt.Errorf("%w: %q does not start before it ends", ErrMalformedInterval, interval)
	}

	return Meeting{Days: daySet, StartMin: startMin, EndMin: endMin}, nil
}

// IntervalsOverlap reports half-open interval overlap: touching
// endpoints (one ends at 10:00, the other starts at 10:00) do not count.
func IntervalsOverlap(start1, end1, start2, end2 int) bool {
	return start1 < end2 && start2 < end1
}

// Conflicts reports whether two meetings share at least one day and
// their time intervals overlap.
func (m Meeting) Conflicts(other Meeting) bool {
	if !m.Days.Overlaps(other.Days) {
		return false
	}

	return IntervalsOverlap(m.StartMin, m.EndMin, other.StartMin, other.EndMin)
}

func (m Meeting) Interval() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", m.StartMin/60, m.StartMin%60, m.EndMin/60, m.EndMin%60)
}

func (m Meeting) String() string {
	return m.Days.String() + " " + m.Interval()
}
