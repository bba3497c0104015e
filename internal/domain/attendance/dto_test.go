package attendance

import (
	"strings"
	"testing"
	"time"

	"github.com/itschool-lms/lms-backend-go/internal/pkg/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func int16Ptr(v int16) *int16 {
	return &v
}

var batchToday = time.Date(2026, 4, 15, 10, 30, 0, 0, time.UTC)

func TestBatchValidateStartMinuteMissing(t *testing.T) {
	req := BatchUpdateRequest{
		AttendanceList: []DailyAttendanceForm{
			{
				TrainingDate: "2026-04-10",
				StartHour:    intPtr(9),
			},
		},
	}

	errs := req.Validate(batchToday, messages.NewCatalog())

	require.Len(t, errs, 1)
	assert.Equal(t, "attendanceList[0].trainingStartMinute", errs[0].Field)
	assert.Contains(t, errs[0].Message, "Clock-in time")
}

func TestBatchValidateStartHourMissing(t *testing.T) {
	req := BatchUpdateRequest{
		AttendanceList: []DailyAttendanceForm{
			{
				TrainingDate: "2026-04-10",
				StartMinute:  intPtr(30),
			},
		},
	}

	errs := req.Validate(batchToday, messages.NewCatalog())

	require.Len(t, errs, 1)
	assert.Equal(t, "attendanceList[0].trainingStartHour", errs[0].Field)
}

func TestBatchValidateEndWithoutStart(t *testing.T) {
	req := BatchUpdateRequest{
		AttendanceList: []DailyAttendanceForm{
			{
				TrainingDate: "2026-04-10",
				EndHour:      intPtr(18),
				EndMinute:    intPtr(0),
			},
		},
	}

	errs := req.Validate(batchToday, messages.NewCatalog())

	require.Len(t, errs, 1)
	assert.Equal(t, "EndOnly", errs[0].Field)
	assert.Contains(t, errs[0].Message, "no clock-in")
}

func TestBatchValidateTimeRangeReversed(t *testing.T) {
	req := BatchUpdateRequest{
		AttendanceList: []DailyAttendanceForm{
			{
				TrainingDate: "2026-04-10",
				StartHour:    intPtr(9),
				StartMinute:  intPtr(0),
				EndHour:      intPtr(8),
				EndMinute:    intPtr(30),
			},
		},
	}

	errs := req.Validate(batchToday, messages.NewCatalog())

	require.Len(t, errs, 1)
	assert.Equal(t, "trainingTimeOver", errs[0].Field)
	assert.Contains(t, errs[0].Message, "(1)")
}

func TestBatchValidateTimeRangeEqualTimes(t *testing.T) {
	req := BatchUpdateRequest{
		AttendanceList: []DailyAttendanceForm{
			{
				TrainingDate: "2026-04-10",
				StartHour:    intPtr(9),
				StartMinute:  intPtr(0),
				EndHour:      intPtr(9),
				EndMinute:    intPtr(0),
			},
		},
	}

	errs := req.Validate(batchToday, messages.NewCatalog())

	require.Len(t, errs, 1)
	assert.Equal(t, "trainingTimeOver", errs[0].Field)
}

func TestBatchValidateNoteLength(t *testing.T) {
	longNote := strings.Repeat("あ", 101)
	boundaryNote := strings.Repeat("あ", 100)

	req := BatchUpdateRequest{
		AttendanceList: []DailyAttendanceForm{
			{TrainingDate: "2026-04-09", Note: boundaryNote},
			{TrainingDate: "2026-04-10", Note: longNote},
		},
	}

	errs := req.Validate(batchToday, messages.NewCatalog())

	require.Len(t, errs, 1)
	assert.Equal(t, "attendanceList[1].note", errs[0].Field)
	assert.Contains(t, errs[0].Message, "100")
}

func TestBatchValidateBlankTimeExceedsWork(t *testing.T) {
	req := BatchUpdateRequest{
		AttendanceList: []DailyAttendanceForm{
			{
				TrainingDate: "2026-04-10",
				StartHour:    intPtr(9),
				StartMinute:  intPtr(0),
				EndHour:      intPtr(10),
				EndMinute:    intPtr(0),
				BlankTime:    intPtr(61),
			},
		},
	}

	errs := req.Validate(batchToday, messages.NewCatalog())

	require.Len(t, errs, 1)
	assert.Equal(t, "attendanceList[0].blankTime", errs[0].Field)
}

// A half-specified period contributes zero worked minutes, so any positive
// blank time on such a day is rejected alongside the incomplete-time error.
func TestBatchValidateBlankTimeWithoutTimes(t *testing.T) {
	req := BatchUpdateRequest{
		AttendanceList: []DailyAttendanceForm{
			{
				TrainingDate: "2026-04-10",
				BlankTime:    intPtr(30),
			},
		},
	}

	errs := req.Validate(batchToday, messages.NewCatalog())

	require.Len(t, errs, 1)
	assert.Equal(t, "attendanceList[0].blankTime", errs[0].Field)
}

// Blank time equal to the full worked span is the allowed maximum.
func TestBatchValidateBlankTimeAtBoundary(t *testing.T) {
	req := BatchUpdateRequest{
		AttendanceList: []DailyAttendanceForm{
			{
				TrainingDate: "2026-04-10",
				StartHour:    intPtr(9),
				StartMinute:  intPtr(0),
				EndHour:      intPtr(10),
				EndMinute:    intPtr(0),
				BlankTime:    intPtr(60),
			},
		},
	}

	errs := req.Validate(batchToday, messages.NewCatalog())

	assert.Empty(t, errs)
}

func TestBatchValidateOutOfRangeTimes(t *testing.T) {
	req := BatchUpdateRequest{
		AttendanceList: []DailyAttendanceForm{
			{
				TrainingDate: "2026-04-10",
				StartHour:    intPtr(24),
				StartMinute:  intPtr(0),
			},
			{
				TrainingDate: "2026-04-10",
				StartHour:    intPtr(9),
				StartMinute:  intPtr(0),
				EndHour:      intPtr(18),
				EndMinute:    intPtr(60),
			},
		},
	}

	errs := req.Validate(batchToday, messages.NewCatalog())

	fields := errs.ToMap()
	assert.Contains(t, fields, "attendanceList[0].trainingStartHour")
	assert.Contains(t, fields, "attendanceList[1].trainingEndHour")
	assert.Contains(t, fields["attendanceList[0].trainingStartHour"], "not a valid time")
}

func TestBatchValidateSameDayAndFutureExempt(t *testing.T) {
	req := BatchUpdateRequest{
		AttendanceList: []DailyAttendanceForm{
			{TrainingDate: "2026-04-15", StartHour: intPtr(9)}, // today
			{TrainingDate: "2026-04-20", StartMinute: intPtr(30)},
		},
	}

	errs := req.Validate(batchToday, messages.NewCatalog())

	assert.Empty(t, errs)
}

func TestBatchValidateBadDateFormat(t *testing.T) {
	req := BatchUpdateRequest{
		AttendanceList: []DailyAttendanceForm{
			{TrainingDate: "15/04/2026"},
		},
	}

	errs := req.Validate(batchToday, messages.NewCatalog())

	require.Len(t, errs, 1)
	assert.Equal(t, "attendanceList[0].trainingDate", errs[0].Field)
}

// Every failed rule must surface through both views with matching content.
func TestBatchValidateCollectsAllErrors(t *testing.T) {
	req := BatchUpdateRequest{
		AttendanceList: []DailyAttendanceForm{
			{
				TrainingDate: "2026-04-09",
				StartHour:    intPtr(9),
				Note:         strings.Repeat("x", 101),
			},
			{
				TrainingDate: "2026-04-10",
				StartHour:    intPtr(18),
				StartMinute:  intPtr(0),
				EndHour:      intPtr(9),
				EndMinute:    intPtr(0),
			},
		},
	}

	errs := req.Validate(batchToday, messages.NewCatalog())

	require.Len(t, errs, 3)

	fields := errs.ToMap()
	assert.Contains(t, fields, "attendanceList[0].note")
	assert.Contains(t, fields, "attendanceList[0].trainingStartMinute")
	assert.Contains(t, fields, "trainingTimeOver")

	msgs := errs.Messages()
	assert.Len(t, msgs, 3)
	for _, m := range fields {
		assert.Contains(t, msgs, m)
	}
}

func TestBatchValidateTimeOverMessageCarriesBatchSize(t *testing.T) {
	forms := make([]DailyAttendanceForm, 3)
	for i := range forms {
		forms[i] = DailyAttendanceForm{TrainingDate: "2026-04-10"}
	}
	forms[2].StartHour = intPtr(10)
	forms[2].StartMinute = intPtr(0)
	forms[2].EndHour = intPtr(9)
	forms[2].EndMinute = intPtr(0)

	req := BatchUpdateRequest{AttendanceList: forms}
	errs := req.Validate(batchToday, messages.NewCatalog())

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "(3)")
}

func TestIsAbsentLabel(t *testing.T) {
	form := DailyAttendanceForm{Status: int16Ptr(4)}
	assert.True(t, form.IsAbsentLabel())

	form = DailyAttendanceForm{Status: int16Ptr(1)}
	assert.False(t, form.IsAbsentLabel())

	form = DailyAttendanceForm{}
	assert.False(t, form.IsAbsentLabel())
}
