package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/itschool-lms/lms-backend-go/internal/domain/schedule"
	"github.com/itschool-lms/lms-backend-go/internal/pkg/database"
)

type courseScheduleRepository struct {
	db *database.DB
}

func NewCourseScheduleRepository(db *database.DB) schedule.CourseScheduleRepository {
	return &courseScheduleRepository{db: db}
}

// IsWorkDay implements schedule.CourseScheduleRepository.
func (r *courseScheduleRepository) IsWorkDay(ctx context.Context, courseID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM course_schedules
			WHERE course_id = $1
			  AND work_date = $2
			  AND delete_flg = 0
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, courseID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check work day: %w", err)
	}

	return exists, nil
}
