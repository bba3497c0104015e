package trainingtime

import (
	"errors"
	"fmt"
)

// ErrBlankTimeExceedsWork reports an unpaid break longer than the time worked.
var ErrBlankTimeExceedsWork = errors.New("blank time exceeds worked time")

// FormatBlankTime renders a minute count as a human-readable duration,
// e.g. 90 -> "1h 30m", 45 -> "45m".
func FormatBlankTime(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// ValidateBlankTime checks an unpaid break against the worked duration.
// Callers skip the check entirely when either punch time is missing.
func ValidateBlankTime(blankMinutes, workedMinutes int) error {
	if blankMinutes > workedMinutes {
		return ErrBlankTimeExceedsWork
	}
	return nil
}

// WorkedMinutes is the span between two punch times.
func WorkedMinutes(start, end TrainingTime) int {
	return end.TotalMinutes() - start.TotalMinutes()
}
