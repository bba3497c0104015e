package attendance

import (
	"context"

	"github.com/itschool-lms/lms-backend-go/internal/domain/user"
)

// AttendanceService defines business logic for trainee attendance.
type AttendanceService interface {
	// PunchIn records the clock-in for the current training date.
	PunchIn(ctx context.Context, actor user.Actor) (PunchResponse, error)

	// PunchOut records the clock-out for the current training date.
	PunchOut(ctx context.Context, actor user.Actor) (PunchResponse, error)

	// GetMyAttendance returns the trainee's rows for the edit screen.
	GetMyAttendance(ctx context.Context, actor user.Actor, traineeID string) (AttendanceListResponse, error)

	// UpdateBatch validates a multi-day edit and persists the resulting plan.
	UpdateBatch(ctx context.Context, actor user.Actor, req BatchUpdateRequest) (BatchUpdateResponse, error)
}
