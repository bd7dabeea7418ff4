package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"homecare-scheduler/internal/delivery/dto"
	"homecare-scheduler/internal/service"
	"homecare-scheduler/internal/usecase"
	"homecare-scheduler/pkg/response"
	"homecare-scheduler/pkg/validator"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

// GenerateSchedule accepts an empty body and then uses every default.
func (h *ScheduleHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.scheduleUsecase.GenerateSchedule(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidStartDate):
			response.BadRequest(w, "Invalid start date format, use YYYY-MM-DD")
		case errors.Is(err, service.ErrUnknownStrategy), errors.Is(err, service.ErrUnknownMode), errors.Is(err, service.ErrInvalidDuration):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to generate schedule")
		}
		return
	}

	switch {
	case result.Warning != "":
		response.Success(w, http.StatusOK, result.Warning, result)
	case !result.Generated:
		response.Success(w, http.StatusOK, "Manual mode, schedule unchanged", result)
	default:
		response.Success(w, http.StatusOK, "Schedule generated!", result)
	}
}

func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.scheduleUsecase.GetSchedule(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

func (h *ScheduleHandler) ReplaceSchedule(w http.ResponseWriter, r *http.Request) {
	var req dto.ReplaceScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.ReplaceSchedule(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidVisitDate) {
			response.BadRequest(w, "Invalid visit date format, use YYYY-MM-DD")
			return
		}
		response.InternalServerError(w, "Failed to replace schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule replaced successfully", schedule)
}

func (h *ScheduleHandler) InsertEmergency(w http.ResponseWriter, r *http.Request) {
	var req dto.InsertEmergencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.scheduleUsecase.InsertEmergency(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrInvalidTimeFormat):
			response.BadRequest(w, "Invalid time format, use HH:MM")
		case errors.Is(err, service.ErrInvalidDuration):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to add emergency")
		}
		return
	}

	if !result.Added {
		response.Success(w, http.StatusOK, "Blank patient name, nothing added", result)
		return
	}

	response.Success(w, http.StatusCreated, "Emergency added!", result)
}
