package schedule

import (
	"context"
	"time"
)

// CourseScheduleRepository answers which dates are scheduled training days.
type CourseScheduleRepository interface {
	IsWorkDay(ctx context.Context, courseID string, date time.Time) (bool, error)
}
