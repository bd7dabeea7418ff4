package handler

import (
	"encoding/json"
	"net/http"

	"homecare-scheduler/internal/delivery/dto"
	"homecare-scheduler/internal/usecase"
	"homecare-scheduler/pkg/response"
	"homecare-scheduler/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) AddDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.doctorUsecase.AddDoctor(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to add doctor")
		return
	}

	if !result.Added {
		response.Success(w, http.StatusOK, "Blank name, nothing added", result)
		return
	}

	response.Success(w, http.StatusCreated, "Doctor '"+result.Doctor.Name+"' added!", result)
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) ReplaceDoctors(w http.ResponseWriter, r *http.Request) {
	var req dto.ReplaceDoctorsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctors, err := h.doctorUsecase.ReplaceDoctors(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to replace doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors replaced successfully", doctors)
}
