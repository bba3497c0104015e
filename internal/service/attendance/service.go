package attendance

import (
	"context"
	"fmt"

	"github.com/itschool-lms/lms-backend-go/internal/domain/attendance"
	"github.com/itschool-lms/lms-backend-go/internal/domain/schedule"
	"github.com/itschool-lms/lms-backend-go/internal/domain/user"
	"github.com/itschool-lms/lms-backend-go/internal/pkg/database"
	"github.com/itschool-lms/lms-backend-go/internal/pkg/messages"
	"github.com/itschool-lms/lms-backend-go/internal/pkg/trainingtime"
	"github.com/itschool-lms/lms-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.StudentAttendanceRepository
	schedule.CourseScheduleRepository
	clock    trainingtime.Clock
	hours    schedule.Hours
	messages messages.Catalog
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.StudentAttendanceRepository,
	scheduleRepo schedule.CourseScheduleRepository,
	clock trainingtime.Clock,
	hours schedule.Hours,
	catalog messages.Catalog,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                          db,
		StudentAttendanceRepository: attendanceRepo,
		CourseScheduleRepository:    scheduleRepo,
		clock:                       clock,
		hours:                       hours,
		messages:                    catalog,
	}
}

// PunchIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) PunchIn(ctx context.Context, actor user.Actor) (attendance.PunchResponse, error) {
	if !actor.IsStudent() {
		return attendance.PunchResponse{}, user.ErrStudentRoleRequired
	}

	trainingDate := a.clock.CurrentTrainingDate()

	isWorkDay, err := a.CourseScheduleRepository.IsWorkDay(ctx, actor.CourseID, trainingDate)
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to check work day: %w", err)
	}
	if !isWorkDay {
		return attendance.PunchResponse{}, attendance.ErrNotWorkDay
	}

	existing, err := a.StudentAttendanceRepository.FindByTraineeAndDate(ctx, actor.TraineeID, trainingDate)
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to find attendance: %w", err)
	}
	if existing != nil && existing.HasStart() {
		return attendance.PunchResponse{}, attendance.ErrAlreadyPunched
	}

	now := a.clock.Now()
	startTime := trainingtime.FromTime(now)
	status := attendance.ClassifyStatus(a.hours.Start, a.hours.End, &startTime, nil)

	var record attendance.StudentAttendance
	if existing == nil {
		record = attendance.StudentAttendance{
			TraineeID:    actor.TraineeID,
			CourseID:     actor.CourseID,
			TrainingDate: trainingDate,
			StartTime:    startTime.String(),
			EndTime:      "",
			Status:       status,
			Note:         "",
			CreatedBy:    actor.UserID,
			CreatedAt:    now,
			UpdatedBy:    actor.UserID,
			UpdatedAt:    now,
		}
		record, err = a.StudentAttendanceRepository.Insert(ctx, record)
		if err != nil {
			return attendance.PunchResponse{}, fmt.Errorf("failed to insert attendance: %w", err)
		}
	} else {
		record = *existing
		record.StartTime = startTime.String()
		record.Status = status
		record.UpdatedBy = actor.UserID
		record.UpdatedAt = now
		if err := a.StudentAttendanceRepository.Update(ctx, record); err != nil {
			return attendance.PunchResponse{}, fmt.Errorf("failed to update attendance: %w", err)
		}
	}

	return attendance.PunchResponse{
		Attendance: a.mapDayToResponse(record),
		Message:    a.messages.Get(messages.KeyUpdateNotice),
	}, nil
}

// PunchOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) PunchOut(ctx context.Context, actor user.Actor) (attendance.PunchResponse, error) {
	if !actor.IsStudent() {
		return attendance.PunchResponse{}, user.ErrStudentRoleRequired
	}

	trainingDate := a.clock.CurrentTrainingDate()

	existing, err := a.StudentAttendanceRepository.FindByTraineeAndDate(ctx, actor.TraineeID, trainingDate)
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to find attendance: %w", err)
	}
	if existing == nil || !existing.HasStart() {
		return attendance.PunchResponse{}, attendance.ErrNoPunchIn
	}
	if existing.HasEnd() {
		return attendance.PunchResponse{}, attendance.ErrAlreadyPunched
	}

	startTime, err := trainingtime.Parse(existing.StartTime)
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("stored start time %q is corrupt: %w", existing.StartTime, err)
	}

	now := a.clock.Now()
	endTime := trainingtime.FromTime(now)
	if endTime.Before(startTime) {
		return attendance.PunchResponse{}, attendance.ErrInvalidTimeRange
	}

	record := *existing
	record.EndTime = endTime.String()
	record.Status = attendance.ClassifyStatus(a.hours.Start, a.hours.End, &startTime, &endTime)
	record.UpdatedBy = actor.UserID
	record.UpdatedAt = now
	if err := a.StudentAttendanceRepository.Update(ctx, record); err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return attendance.PunchResponse{
		Attendance: a.mapDayToResponse(record),
		Message:    a.messages.Get(messages.KeyUpdateNotice),
	}, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, actor user.Actor, traineeID string) (attendance.AttendanceListResponse, error) {
	target, err := a.resolveTargetTrainee(actor, traineeID)
	if err != nil {
		return attendance.AttendanceListResponse{}, err
	}

	records, err := a.StudentAttendanceRepository.FindAllByTrainee(ctx, target)
	if err != nil {
		return attendance.AttendanceListResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	trainingDate := a.clock.CurrentTrainingDate()
	unfilled, err := a.StudentAttendanceRepository.CountUnfilledBefore(ctx, target, trainingDate)
	if err != nil {
		return attendance.AttendanceListResponse{}, fmt.Errorf("failed to count unfilled days: %w", err)
	}

	responses := make([]attendance.AttendanceDayResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, a.mapDayToResponse(record))
	}

	return attendance.AttendanceListResponse{
		TraineeID:     target,
		UnfilledCount: unfilled,
		Attendances:   responses,
	}, nil
}

// UpdateBatch implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpdateBatch(ctx context.Context, actor user.Actor, req attendance.BatchUpdateRequest) (attendance.BatchUpdateResponse, error) {
	target, err := a.resolveTargetTrainee(actor, req.TraineeID)
	if err != nil {
		return attendance.BatchUpdateResponse{}, err
	}

	today := a.clock.CurrentTrainingDate()
	if errs := req.Validate(today, a.messages); len(errs) > 0 {
		return attendance.BatchUpdateResponse{}, errs
	}

	existing, err := a.StudentAttendanceRepository.FindAllByTrainee(ctx, target)
	if err != nil {
		return attendance.BatchUpdateResponse{}, fmt.Errorf("failed to load existing attendance: %w", err)
	}

	plans, err := BuildUpdatePlan(existing, req.AttendanceList, target, actor, a.clock.Now(), a.hours)
	if err != nil {
		return attendance.BatchUpdateResponse{}, err
	}

	// All rows of the batch commit together or not at all.
	var created, updated int
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		for _, plan := range plans {
			if plan.IsNew {
				if _, err := a.StudentAttendanceRepository.Insert(txCtx, plan.Record); err != nil {
					return fmt.Errorf("failed to insert attendance for %s: %w",
						plan.Record.TrainingDate.Format("2006-01-02"), err)
				}
				created++
			} else {
				if err := a.StudentAttendanceRepository.Update(txCtx, plan.Record); err != nil {
					return fmt.Errorf("failed to update attendance for %s: %w",
						plan.Record.TrainingDate.Format("2006-01-02"), err)
				}
				updated++
			}
		}
		return nil
	})
	if err != nil {
		return attendance.BatchUpdateResponse{}, err
	}

	return attendance.BatchUpdateResponse{
		Message:      a.messages.Get(messages.KeyUpdateNotice),
		CreatedCount: created,
		UpdatedCount: updated,
	}, nil
}

// resolveTargetTrainee picks whose records an operation touches: students
// always act on their own, staff must name a trainee.
func (a *AttendanceServiceImpl) resolveTargetTrainee(actor user.Actor, traineeID string) (string, error) {
	if actor.IsStudent() {
		return actor.TraineeID, nil
	}
	if actor.IsStaff() && traineeID != "" {
		return traineeID, nil
	}
	return "", user.ErrForbiddenTraineeEdits
}

func (a *AttendanceServiceImpl) mapDayToResponse(record attendance.StudentAttendance) attendance.AttendanceDayResponse {
	resp := attendance.AttendanceDayResponse{
		ID:                record.ID,
		TrainingDate:      record.TrainingDate.Format("2006-01-02"),
		StartTime:         record.StartTime,
		EndTime:           record.EndTime,
		BlankTime:         record.BlankTime,
		Status:            int16(record.Status),
		StatusDisplayName: record.Status.DisplayName(),
		Note:              record.Note,
		// Calendar-day comparison: the stored date and the clock's training
		// date may carry different zones for the same day.
		IsToday: record.TrainingDate.Format("2006-01-02") == a.clock.CurrentTrainingDate().Format("2006-01-02"),
	}
	if record.BlankTime != nil {
		resp.BlankTimeDisplay = trainingtime.FormatBlankTime(*record.BlankTime)
	}
	return resp
}
