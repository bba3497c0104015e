package attendance

import (
	"fmt"
	"time"

	"github.com/itschool-lms/lms-backend-go/internal/domain/attendance"
	"github.com/itschool-lms/lms-backend-go/internal/domain/schedule"
	"github.com/itschool-lms/lms-backend-go/internal/domain/user"
	"github.com/itschool-lms/lms-backend-go/internal/pkg/trainingtime"
)

// RecordPlan is one row of the persistence plan produced by a batch merge.
type RecordPlan struct {
	Record attendance.StudentAttendance
	IsNew  bool
}

const dateKeyLayout = "2006-01-02"

// BuildUpdatePlan merges a validated batch against the trainee's existing
// rows. The snapshot is read-only; the plan is a separate output. Rows are
// matched by training date through a map built once per call. Nothing is
// ever deleted: a day with no time data gets its time fields cleared.
func BuildUpdatePlan(
	existing []attendance.StudentAttendance,
	batch []attendance.DailyAttendanceForm,
	traineeID string,
	actor user.Actor,
	now time.Time,
	hours schedule.Hours,
) ([]RecordPlan, error) {

	byDate := make(map[string]attendance.StudentAttendance, len(existing))
	for _, record := range existing {
		byDate[record.TrainingDate.Format(dateKeyLayout)] = record
	}

	plans := make([]RecordPlan, 0, len(batch))
	for _, form := range batch {
		date, err := time.Parse(dateKeyLayout, form.TrainingDate)
		if err != nil {
			return nil, fmt.Errorf("invalid training date %q: %w", form.TrainingDate, err)
		}

		record, found := byDate[form.TrainingDate]
		if !found {
			record = attendance.StudentAttendance{
				TraineeID:    traineeID,
				CourseID:     actor.CourseID,
				TrainingDate: date,
				CreatedBy:    actor.UserID,
				CreatedAt:    now,
			}
		}

		startTime, err := assembleTime(form.StartHour, form.StartMinute)
		if err != nil {
			return nil, fmt.Errorf("invalid start time on %s: %w", form.TrainingDate, err)
		}
		endTime, err := assembleTime(form.EndHour, form.EndMinute)
		if err != nil {
			return nil, fmt.Errorf("invalid end time on %s: %w", form.TrainingDate, err)
		}

		if startTime != nil {
			record.StartTime = startTime.String()
		} else {
			record.StartTime = ""
		}
		if endTime != nil {
			record.EndTime = endTime.String()
		} else {
			record.EndTime = ""
		}

		record.BlankTime = form.BlankTime
		record.Note = form.Note

		switch {
		case (startTime != nil || endTime != nil) && !form.IsAbsentLabel():
			record.Status = attendance.ClassifyStatus(hours.Start, hours.End, startTime, endTime)
		case form.Status != nil:
			// An explicit label, Absent in particular, is never overwritten.
			record.Status = attendance.Status(*form.Status)
		default:
			// No times and no label: the status resets to the neutral
			// classification rather than keeping its prior value.
			record.Status = attendance.ClassifyStatus(hours.Start, hours.End, nil, nil)
		}

		record.DeleteFlag = 0
		record.UpdatedBy = actor.UserID
		record.UpdatedAt = now

		plans = append(plans, RecordPlan{Record: record, IsNew: !found})
	}

	return plans, nil
}

// assembleTime concatenates the hour and minute sub-fields into a time value.
// A half-specified pair yields nil; the batch validator has already rejected
// that for past days.
func assembleTime(hour, minute *int) (*trainingtime.TrainingTime, error) {
	if hour == nil || minute == nil {
		return nil, nil
	}
	t, err := trainingtime.New(*hour, *minute)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
