package attendance

import (
	"github.com/itschool-lms/lms-backend-go/internal/pkg/trainingtime"
)

// Status classifies a day's attendance. The int16 code is what gets
// persisted; it is always recomputed from the punch times, never trusted
// from input (except the explicit Absent label, which callers preserve).
type Status int16

const (
	StatusOnTime            Status = 0
	StatusLate              Status = 1
	StatusEarlyLeave        Status = 2
	StatusLateAndEarlyLeave Status = 3
	StatusAbsent            Status = 4
)

var statusDisplayNames = map[Status]string{
	StatusOnTime:            "On time",
	StatusLate:              "Late",
	StatusEarlyLeave:        "Left early",
	StatusLateAndEarlyLeave: "Late / left early",
	StatusAbsent:            "Absent",
}

// DisplayName returns the screen label for the status.
func (s Status) DisplayName() string {
	return statusDisplayNames[s]
}

// StatusFromCode maps a persisted code back to a Status.
func StatusFromCode(code int16) (Status, bool) {
	s := Status(code)
	_, ok := statusDisplayNames[s]
	return s, ok
}

// ClassifyStatus derives the lateness classification from the punch times
// against the scheduled period. Missing actual times simply skip their rule,
// so a punched-in-only day classifies on the start time alone. Absent is
// never inferred here; it is an explicit caller label.
func ClassifyStatus(scheduledStart, scheduledEnd trainingtime.TrainingTime, actualStart, actualEnd *trainingtime.TrainingTime) Status {
	late := actualStart != nil && actualStart.After(scheduledStart)
	earlyLeave := actualEnd != nil && actualEnd.Before(scheduledEnd)

	switch {
	case late && earlyLeave:
		return StatusLateAndEarlyLeave
	case late:
		return StatusLate
	case earlyLeave:
		return StatusEarlyLeave
	default:
		return StatusOnTime
	}
}
