package trainingtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     string
		hour   int
		minute int
	}{
		{"9:00", 9, 0},
		{"09:00", 9, 0},
		{"0:00", 0, 0},
		{"23:59", 23, 59},
		{"12:05", 12, 5},
	}

	for _, tc := range cases {
		got, err := Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.hour, got.Hour(), tc.in)
		assert.Equal(t, tc.minute, got.Minute(), tc.in)
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "9", "9:0:0", "24:00", "9:60", "-1:00", "aa:bb", "9:-5"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, in)
	}
}

func TestParse_FormatRoundTrip(t *testing.T) {
	t.Parallel()

	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 1, 9, 10, 30, 59} {
			tt, err := New(hour, minute)
			require.NoError(t, err)
			parsed, err := Parse(tt.String())
			require.NoError(t, err)
			assert.Equal(t, tt, parsed)
		}
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	nine, _ := New(9, 0)
	nineThirty, _ := New(9, 30)
	seventeen, _ := New(17, 0)

	assert.Equal(t, -1, nine.Compare(nineThirty))
	assert.Equal(t, 1, seventeen.Compare(nineThirty))
	assert.Equal(t, 0, nine.Compare(nine))
	assert.True(t, nine.Before(seventeen))
	assert.True(t, seventeen.After(nine))
	assert.False(t, nine.After(nine))
}

func TestFromTime(t *testing.T) {
	t.Parallel()

	got := FromTime(time.Date(2026, 3, 2, 14, 45, 12, 0, time.Local))
	assert.Equal(t, "14:45", got.String())
}

func TestFormatBlankTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0m", FormatBlankTime(0))
	assert.Equal(t, "45m", FormatBlankTime(45))
	assert.Equal(t, "1h", FormatBlankTime(60))
	assert.Equal(t, "1h 30m", FormatBlankTime(90))
	assert.Equal(t, "2h 5m", FormatBlankTime(125))
}

func TestValidateBlankTime(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateBlankTime(30, 480))
	assert.NoError(t, ValidateBlankTime(480, 480))
	assert.ErrorIs(t, ValidateBlankTime(481, 480), ErrBlankTimeExceedsWork)
}

func TestWorkedMinutes(t *testing.T) {
	t.Parallel()

	start, _ := New(9, 0)
	end, _ := New(17, 30)
	assert.Equal(t, 510, WorkedMinutes(start, end))
	assert.Equal(t, -510, WorkedMinutes(end, start))
}
