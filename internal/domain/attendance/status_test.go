package attendance

import (
	"testing"

	"github.com/itschool-lms/lms-backend-go/internal/pkg/trainingtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, hour, minute int) trainingtime.TrainingTime {
	t.Helper()
	tt, err := trainingtime.New(hour, minute)
	require.NoError(t, err)
	return tt
}

func TestClassifyStatus(t *testing.T) {
	scheduledStart := mustTime(t, 9, 0)
	scheduledEnd := mustTime(t, 18, 0)

	tests := []struct {
		name     string
		start    *trainingtime.TrainingTime
		end      *trainingtime.TrainingTime
		expected Status
	}{
		{name: "no times at all", start: nil, end: nil, expected: StatusOnTime},
		{name: "exactly on schedule", start: timePtr(9, 0), end: timePtr(18, 0), expected: StatusOnTime},
		{name: "arrived early stayed late", start: timePtr(8, 30), end: timePtr(19, 0), expected: StatusOnTime},
		{name: "one minute late", start: timePtr(9, 1), end: timePtr(18, 0), expected: StatusLate},
		{name: "left one minute early", start: timePtr(9, 0), end: timePtr(17, 59), expected: StatusEarlyLeave},
		{name: "late and left early", start: timePtr(9, 1), end: timePtr(17, 59), expected: StatusLateAndEarlyLeave},
		{name: "punched in only on time", start: timePtr(8, 55), end: nil, expected: StatusOnTime},
		{name: "punched in only late", start: timePtr(10, 15), end: nil, expected: StatusLate},
		{name: "end only early leave", start: nil, end: timePtr(16, 0), expected: StatusEarlyLeave},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyStatus(scheduledStart, scheduledEnd, tt.start, tt.end)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// ClassifyStatus derives lateness only; an absent day is an explicit label
// that no combination of punch times can produce.
func TestClassifyStatusNeverReturnsAbsent(t *testing.T) {
	scheduledStart := mustTime(t, 9, 0)
	scheduledEnd := mustTime(t, 18, 0)

	for hour := 0; hour < 24; hour++ {
		start := timePtr(hour, 0)
		end := timePtr(hour, 30)
		assert.NotEqual(t, StatusAbsent, ClassifyStatus(scheduledStart, scheduledEnd, start, end))
		assert.NotEqual(t, StatusAbsent, ClassifyStatus(scheduledStart, scheduledEnd, start, nil))
		assert.NotEqual(t, StatusAbsent, ClassifyStatus(scheduledStart, scheduledEnd, nil, end))
	}
}

func TestStatusDisplayName(t *testing.T) {
	assert.Equal(t, "On time", StatusOnTime.DisplayName())
	assert.Equal(t, "Late", StatusLate.DisplayName())
	assert.Equal(t, "Left early", StatusEarlyLeave.DisplayName())
	assert.Equal(t, "Late / left early", StatusLateAndEarlyLeave.DisplayName())
	assert.Equal(t, "Absent", StatusAbsent.DisplayName())
}

func TestStatusFromCode(t *testing.T) {
	s, ok := StatusFromCode(1)
	assert.True(t, ok)
	assert.Equal(t, StatusLate, s)

	_, ok = StatusFromCode(99)
	assert.False(t, ok)

	_, ok = StatusFromCode(-1)
	assert.False(t, ok)
}

func timePtr(hour, minute int) *trainingtime.TrainingTime {
	t, err := trainingtime.New(hour, minute)
	if err != nil {
		panic(err)
	}
	return &t
}
