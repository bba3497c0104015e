package attendance

import (
	"strconv"
	"time"

	"github.com/itschool-lms/lms-backend-go/internal/pkg/messages"
	"github.com/itschool-lms/lms-backend-go/internal/pkg/trainingtime"
	"github.com/itschool-lms/lms-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// DailyAttendanceForm is one day's entry in a batch edit. Hour and minute
// arrive as separate sub-fields, mirroring the edit screen's selects.
type DailyAttendanceForm struct {
	TrainingDate string `json:"training_date"` // YYYY-MM-DD
	StartHour    *int   `json:"training_start_hour"`
	StartMinute  *int   `json:"training_start_minute"`
	EndHour      *int   `json:"training_end_hour"`
	EndMinute    *int   `json:"training_end_minute"`
	BlankTime    *int   `json:"blank_time"`
	Status       *int16 `json:"status"` // Status label as displayed; Absent is preserved
	Note         string `json:"note"`
}

func (f *DailyAttendanceForm) hasFullStart() bool {
	return f.StartHour != nil && f.StartMinute != nil
}

func (f *DailyAttendanceForm) hasFullEnd() bool {
	return f.EndHour != nil && f.EndMinute != nil
}

// workedMinutes computes the day's worked span, zero unless both times are
// fully specified and in range. Used only by the blank-time batch rule.
func (f *DailyAttendanceForm) workedMinutes() int {
	if !f.hasFullStart() || !f.hasFullEnd() {
		return 0
	}
	start, err := trainingtime.New(*f.StartHour, *f.StartMinute)
	if err != nil {
		return 0
	}
	end, err := trainingtime.New(*f.EndHour, *f.EndMinute)
	if err != nil {
		return 0
	}
	return trainingtime.WorkedMinutes(start, end)
}

// IsAbsentLabel reports whether the entry is explicitly marked absent.
func (f *DailyAttendanceForm) IsAbsentLabel() bool {
	return f.Status != nil && Status(*f.Status) == StatusAbsent
}

// BatchUpdateRequest is a multi-day attendance correction. TraineeID is
// ignored for students (they can only edit their own records) and selects
// the target trainee for staff.
type BatchUpdateRequest struct {
	TraineeID      string                `json:"trainee_id,omitempty"`
	AttendanceList []DailyAttendanceForm `json:"attendance_list"`
}

const maxNoteLength = 100

// Validate applies the cross-field batch rules to every entry dated strictly
// before today. All entries and all rules run; nothing stops at the first
// error. The result carries both the field-keyed view (ToMap) and the flat
// message set (Messages) with identical content.
func (r *BatchUpdateRequest) Validate(today time.Time, catalog messages.Catalog) validator.ValidationErrors {
	var errs validator.ValidationErrors

	batchSize := strconv.Itoa(len(r.AttendanceList))
	today = truncateToDate(today)

	for i, form := range r.AttendanceList {
		date, ok := validator.IsValidDate(form.TrainingDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   formField(i, "trainingDate"),
				Message: "training_date must be in YYYY-MM-DD format",
			})
			continue
		}
		// Same-day and future entries are exempt; only past days must be
		// completely corrected.
		if !date.Before(today) {
			continue
		}

		if len([]rune(form.Note)) > maxNoteLength {
			errs = append(errs, validator.ValidationError{
				Field: formField(i, "note"),
				Message: catalog.Get(messages.KeyMaxLength,
					catalog.Get(messages.KeyNoteField), strconv.Itoa(maxNoteLength)),
			})
		}

		if form.StartHour == nil && form.StartMinute != nil {
			errs = append(errs, validator.ValidationError{
				Field:   formField(i, "trainingStartHour"),
				Message: catalog.Get(messages.KeyInputInvalid, catalog.Get(messages.KeyStartTimeField)),
			})
		}
		if form.StartHour != nil && form.StartMinute == nil {
			errs = append(errs, validator.ValidationError{
				Field:   formField(i, "trainingStartMinute"),
				Message: catalog.Get(messages.KeyInputInvalid, catalog.Get(messages.KeyStartTimeField)),
			})
		}
		if form.EndHour == nil && form.EndMinute != nil {
			errs = append(errs, validator.ValidationError{
				Field:   formField(i, "trainingEndHour"),
				Message: catalog.Get(messages.KeyInputInvalid, catalog.Get(messages.KeyEndTimeField)),
			})
		}
		if form.EndHour != nil && form.EndMinute == nil {
			errs = append(errs, validator.ValidationError{
				Field:   formField(i, "trainingEndMinute"),
				Message: catalog.Get(messages.KeyInputInvalid, catalog.Get(messages.KeyEndTimeField)),
			})
		}

		if form.hasFullStart() {
			if _, err := trainingtime.New(*form.StartHour, *form.StartMinute); err != nil {
				errs = append(errs, validator.ValidationError{
					Field:   formField(i, "trainingStartHour"),
					Message: catalog.Get(messages.KeyTimeValueInvalid, catalog.Get(messages.KeyStartTimeField)),
				})
			}
		}
		if form.hasFullEnd() {
			if _, err := trainingtime.New(*form.EndHour, *form.EndMinute); err != nil {
				errs = append(errs, validator.ValidationError{
					Field:   formField(i, "trainingEndHour"),
					Message: catalog.Get(messages.KeyTimeValueInvalid, catalog.Get(messages.KeyEndTimeField)),
				})
			}
		}

		if form.StartHour == nil && form.StartMinute == nil && form.hasFullEnd() {
			errs = append(errs, validator.ValidationError{
				Field:   "EndOnly",
				Message: catalog.Get(messages.KeyPunchInEmpty),
			})
		}

		if form.hasFullStart() && form.hasFullEnd() {
			startKey := *form.StartHour*100 + *form.StartMinute
			endKey := *form.EndHour*100 + *form.EndMinute
			if startKey >= endKey {
				errs = append(errs, validator.ValidationError{
					Field:   "trainingTimeOver",
					Message: catalog.Get(messages.KeyTrainingTimeRange, batchSize),
				})
			}
		}

		if form.BlankTime != nil {
			if err := trainingtime.ValidateBlankTime(*form.BlankTime, form.workedMinutes()); err != nil {
				errs = append(errs, validator.ValidationError{
					Field:   formField(i, "blankTime"),
					Message: catalog.Get(messages.KeyBlankTimeError),
				})
			}
		}
	}

	return errs
}

func formField(index int, name string) string {
	return "attendanceList[" + strconv.Itoa(index) + "]." + name
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AttendanceDayResponse is one row of the attendance edit screen.
type AttendanceDayResponse struct {
	ID                string `json:"id,omitempty"`
	TrainingDate      string `json:"training_date"`
	StartTime         string `json:"training_start_time,omitempty"`
	EndTime           string `json:"training_end_time,omitempty"`
	BlankTime         *int   `json:"blank_time,omitempty"`
	BlankTimeDisplay  string `json:"blank_time_display,omitempty"`
	Status            int16  `json:"status"`
	StatusDisplayName string `json:"status_display_name"`
	Note              string `json:"note,omitempty"`
	IsToday           bool   `json:"is_today"`
}

type AttendanceListResponse struct {
	TraineeID     string                  `json:"trainee_id"`
	UnfilledCount int                     `json:"unfilled_count"`
	Attendances   []AttendanceDayResponse `json:"attendances"`
}

// PunchResponse is the result of a punch-in or punch-out button press.
type PunchResponse struct {
	Attendance AttendanceDayResponse `json:"attendance"`
	Message    string                `json:"message"`
}

// BatchUpdateResponse reports a committed batch.
type BatchUpdateResponse struct {
	Message      string `json:"message"`
	CreatedCount int    `json:"created_count"`
	UpdatedCount int    `json:"updated_count"`
}
