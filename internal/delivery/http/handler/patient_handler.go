package handler

import (
	"encoding/json"
	"net/http"

	"homecare-scheduler/internal/delivery/dto"
	"homecare-scheduler/internal/usecase"
	"homecare-scheduler/pkg/response"
	"homecare-scheduler/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) AddPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.patientUsecase.AddPatient(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to add patient")
		return
	}

	if !result.Added {
		response.Success(w, http.StatusOK, "Blank name, nothing added", result)
		return
	}

	response.Success(w, http.StatusCreated, "Patient '"+result.Patient.Name+"' added!", result)
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAllPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) ReplacePatients(w http.ResponseWriter, r *http.Request) {
	var req dto.ReplacePatientsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patients, err := h.patientUsecase.ReplacePatients(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to replace patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients replaced successfully", patients)
}
