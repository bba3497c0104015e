package trainingtime

import "time"

// Clock supplies the current wall-clock time and the institution's current
// training date. The training date may roll over at an hour other than
// midnight, so it is not always the calendar date.
type Clock interface {
	Now() time.Time
	CurrentTrainingDate() time.Time
}

type systemClock struct {
	rolloverHour int
}

// NewSystemClock returns a Clock backed by the local wall clock.
// rolloverHour is the hour of day at which the training date advances;
// before it, punches still count toward the previous training date.
func NewSystemClock(rolloverHour int) Clock {
	return &systemClock{rolloverHour: rolloverHour}
}

func (c *systemClock) Now() time.Time {
	return time.Now()
}

func (c *systemClock) CurrentTrainingDate() time.Time {
	now := time.Now()
	if now.Hour() < c.rolloverHour {
		now = now.AddDate(0, 0, -1)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
