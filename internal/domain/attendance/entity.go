package attendance

import (
	"time"
)

// StudentAttendance is one trainee's attendance row for one training date.
// StartTime and EndTime hold the canonical "H:mm" text, empty until punched.
// Rows are never physically deleted; DeleteFlag soft-deletes.
type StudentAttendance struct {
	ID           string
	TraineeID    string
	CourseID     string
	TrainingDate time.Time
	StartTime    string
	EndTime      string
	BlankTime    *int // Unpaid break minutes; nil when not entered
	Status       Status
	Note         string
	DeleteFlag   int16
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedBy    string
	UpdatedAt    time.Time
}

// HasStart reports whether a clock-in has been recorded.
func (a *StudentAttendance) HasStart() bool {
	return a.StartTime != ""
}

// HasEnd reports whether a clock-out has been recorded.
func (a *StudentAttendance) HasEnd() bool {
	return a.EndTime != ""
}
