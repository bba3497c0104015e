package attendance

import (
	"context"
	"time"
)

// StudentAttendanceRepository defines data access for attendance rows.
// Soft-deleted rows are excluded by every method. The storage layer carries
// a uniqueness constraint on (trainee_id, training_date); concurrent punches
// for the same day are serialized there, not here.
type StudentAttendanceRepository interface {
	// FindByTraineeAndDate returns the row for one training date, or nil
	// when the trainee has no row for that date yet.
	FindByTraineeAndDate(ctx context.Context, traineeID string, date time.Time) (*StudentAttendance, error)

	// FindAllByTrainee returns every row for the trainee, ordered by date.
	FindAllByTrainee(ctx context.Context, traineeID string) ([]StudentAttendance, error)

	// Insert persists a new row and returns it with ID and audit timestamps.
	Insert(ctx context.Context, record StudentAttendance) (StudentAttendance, error)

	// Update overwrites an existing row by ID.
	Update(ctx context.Context, record StudentAttendance) error

	// CountUnfilledBefore counts training days before date that still have
	// no clock-in entered.
	CountUnfilledBefore(ctx context.Context, traineeID string, date time.Time) (int, error)
}
