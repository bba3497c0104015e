package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/itschool-lms/lms-backend-go/internal/domain/attendance"
	"github.com/itschool-lms/lms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type studentAttendanceRepository struct {
	db *database.DB
}

func NewStudentAttendanceRepository(db *database.DB) attendance.StudentAttendanceRepository {
	return &studentAttendanceRepository{db: db}
}

const attendanceColumns = `
	id, trainee_id, course_id, training_date,
	training_start_time, training_end_time, blank_time,
	status, note, delete_flg,
	created_by, created_at, updated_by, updated_at`

func scanAttendance(row pgx.Row) (attendance.StudentAttendance, error) {
	var rec attendance.StudentAttendance
	var courseID *string
	var status int16
	err := row.Scan(
		&rec.ID, &rec.TraineeID, &courseID, &rec.TrainingDate,
		&rec.StartTime, &rec.EndTime, &rec.BlankTime,
		&status, &rec.Note, &rec.DeleteFlag,
		&rec.CreatedBy, &rec.CreatedAt, &rec.UpdatedBy, &rec.UpdatedAt,
	)
	rec.Status = attendance.Status(status)
	if courseID != nil {
		rec.CourseID = *courseID
	}
	return rec, err
}

// FindByTraineeAndDate implements attendance.StudentAttendanceRepository.
func (r *studentAttendanceRepository) FindByTraineeAndDate(ctx context.Context, traineeID string, date time.Time) (*attendance.StudentAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + attendanceColumns + `
		FROM student_attendances
		WHERE trainee_id = $1
		  AND training_date = $2
		  AND delete_flg = 0
		LIMIT 1
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, traineeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No row for this date yet; a valid state
		}
		return nil, fmt.Errorf("failed to get attendance by trainee and date: %w", err)
	}

	return &rec, nil
}

// FindAllByTrainee implements attendance.StudentAttendanceRepository.
func (r *studentAttendanceRepository) FindAllByTrainee(ctx context.Context, traineeID string) ([]attendance.StudentAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + attendanceColumns + `
		FROM student_attendances
		WHERE trainee_id = $1
		  AND delete_flg = 0
		ORDER BY training_date ASC
	`

	rows, err := q.Query(ctx, query, traineeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.StudentAttendance
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}

	return records, nil
}

// Insert implements attendance.StudentAttendanceRepository.
func (r *studentAttendanceRepository) Insert(ctx context.Context, rec attendance.StudentAttendance) (attendance.StudentAttendance, error) {
	q := GetQuerier(ctx, r.db)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	query := `
		INSERT INTO student_attendances (
			id, trainee_id, course_id, training_date,
			training_start_time, training_end_time, blank_time,
			status, note, delete_flg,
			created_by, created_at, updated_by, updated_at
		) VALUES (
			$1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
	`

	_, err := q.Exec(ctx, query,
		rec.ID, rec.TraineeID, rec.CourseID, rec.TrainingDate,
		rec.StartTime, rec.EndTime, rec.BlankTime,
		int16(rec.Status), rec.Note, rec.DeleteFlag,
		rec.CreatedBy, rec.CreatedAt, rec.UpdatedBy, rec.UpdatedAt,
	)
	if err != nil {
		return attendance.StudentAttendance{}, fmt.Errorf("failed to insert attendance: %w", err)
	}

	return rec, nil
}

// Update implements attendance.StudentAttendanceRepository.
func (r *studentAttendanceRepository) Update(ctx context.Context, rec attendance.StudentAttendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE student_attendances
		SET training_start_time = $2,
		    training_end_time = $3,
		    blank_time = $4,
		    status = $5,
		    note = $6,
		    delete_flg = $7,
		    updated_by = $8,
		    updated_at = $9
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID,
		rec.StartTime, rec.EndTime, rec.BlankTime,
		int16(rec.Status), rec.Note, rec.DeleteFlag,
		rec.UpdatedBy, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// CountUnfilledBefore implements attendance.StudentAttendanceRepository.
// A scheduled day counts as unfilled while its row has no clock-in entered
// or does not exist at all.
func (r *studentAttendanceRepository) CountUnfilledBefore(ctx context.Context, traineeID string, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM course_schedules cs
		JOIN users u ON u.course_id = cs.course_id AND u.trainee_id = $1
		LEFT JOIN student_attendances sa
		       ON sa.trainee_id = u.trainee_id
		      AND sa.training_date = cs.work_date
		      AND sa.delete_flg = 0
		WHERE cs.work_date < $2
		  AND cs.delete_flg = 0
		  AND (sa.id IS NULL OR (sa.training_start_time = '' AND sa.status <> 4))
	`

	var count int
	if err := q.QueryRow(ctx, query, traineeID, date).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unfilled attendance: %w", err)
	}

	return count, nil
}
