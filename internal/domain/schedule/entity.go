package schedule

import "github.com/itschool-lms/lms-backend-go/internal/pkg/trainingtime"

// Hours is the institution's standard scheduled period, used as the
// classification baseline when a course defines no per-day override.
type Hours struct {
	Start trainingtime.TrainingTime
	End   trainingtime.TrainingTime
}
