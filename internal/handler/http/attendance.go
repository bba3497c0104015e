package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/itschool-lms/lms-backend-go/internal/domain/attendance"
	"github.com/itschool-lms/lms-backend-go/internal/handler/http/middleware"
	"github.com/itschool-lms/lms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	UpdateBatch(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// PunchIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	punchResp, err := h.attendanceService.PunchIn(r.Context(), actor)
	if err != nil {
		slog.Error("PunchIn service error", "error", err, "user_id", actor.UserID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Clock-in recorded", "trainee_id", actor.TraineeID)
	response.SuccessWithMessage(w, punchResp.Message, punchResp)
}

// PunchOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	punchResp, err := h.attendanceService.PunchOut(r.Context(), actor)
	if err != nil {
		slog.Error("PunchOut service error", "error", err, "user_id", actor.UserID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Clock-out recorded", "trainee_id", actor.TraineeID)
	response.SuccessWithMessage(w, punchResp.Message, punchResp)
}

// GetMyAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Staff may pass a trainee_id to view another trainee's sheet.
	traineeID := r.URL.Query().Get("trainee_id")

	listResp, err := h.attendanceService.GetMyAttendance(r.Context(), actor, traineeID)
	if err != nil {
		slog.Error("GetMyAttendance service error", "error", err, "user_id", actor.UserID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResp)
}

// UpdateBatch implements AttendanceHandler.
func (h *AttendanceHandlerImpl) UpdateBatch(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var batchReq attendance.BatchUpdateRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&batchReq); err != nil {
		slog.Error("UpdateBatch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service; per-row validation runs inside with the current training date
	batchResp, err := h.attendanceService.UpdateBatch(r.Context(), actor, batchReq)
	if err != nil {
		slog.Error("UpdateBatch service error", "error", err, "user_id", actor.UserID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance batch saved",
		"trainee_id", batchReq.TraineeID,
		"created", batchResp.CreatedCount,
		"updated", batchResp.UpdatedCount,
	)
	response.SuccessWithMessage(w, batchResp.Message, batchResp)
}
