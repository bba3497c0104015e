// Package trainingtime holds the time-of-day value used throughout the
// attendance domain. Times are wall-clock values in the institution's local
// time; there is no timezone handling here.
package trainingtime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TrainingTime is an immutable time-of-day (hour, minute) pair.
type TrainingTime struct {
	hour   int
	minute int
}

// ErrInvalidTimeFormat is returned by Parse for anything that is not "H:mm".
var ErrInvalidTimeFormat = fmt.Errorf("time must be in H:mm format")

// New builds a TrainingTime from an hour and minute.
func New(hour, minute int) (TrainingTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TrainingTime{}, fmt.Errorf("%w: %d:%d out of range", ErrInvalidTimeFormat, hour, minute)
	}
	return TrainingTime{hour: hour, minute: minute}, nil
}

// Parse parses "H:mm" or "HH:mm" into a TrainingTime.
func Parse(s string) (TrainingTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return TrainingTime{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TrainingTime{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TrainingTime{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return New(hour, minute)
}

// FromTime samples the time-of-day out of a timestamp.
func FromTime(t time.Time) TrainingTime {
	return TrainingTime{hour: t.Hour(), minute: t.Minute()}
}

func (t TrainingTime) Hour() int   { return t.hour }
func (t TrainingTime) Minute() int { return t.minute }

// TotalMinutes is the minute offset from midnight; the comparison key.
func (t TrainingTime) TotalMinutes() int {
	return t.hour*60 + t.minute
}

// Compare returns -1, 0 or +1 ordering two times by (hour, minute).
func (t TrainingTime) Compare(u TrainingTime) int {
	switch {
	case t.TotalMinutes() < u.TotalMinutes():
		return -1
	case t.TotalMinutes() > u.TotalMinutes():
		return 1
	default:
		return 0
	}
}

func (t TrainingTime) Before(u TrainingTime) bool { return t.Compare(u) < 0 }
func (t TrainingTime) After(u TrainingTime) bool  { return t.Compare(u) > 0 }

// String renders the canonical stored format, e.g. "9:00" or "17:30".
func (t TrainingTime) String() string {
	return fmt.Sprintf("%d:%02d", t.hour, t.minute)
}
