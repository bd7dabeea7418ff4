package converter

import (
	"strings"

	"homecare-scheduler/internal/delivery/dto"
	"homecare-scheduler/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.ExternalID,
		Name:      patient.Name,
		Diagnosis: patient.Diagnosis,
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// PatientRequestToEntity copies the form as typed; the caller decides what a blank name means
func PatientRequestToEntity(req *dto.CreatePatientRequest) entity.Patient {
	return entity.Patient{
		ExternalID: req.ID,
		Name:       req.Name,
		Diagnosis:  req.Diagnosis,
	}
}

// PatientRequestsToEntities drops rows whose name is blank after trimming
func PatientRequestsToEntities(reqs []dto.CreatePatientRequest) []entity.Patient {
	patients := make([]entity.Patient, 0, len(reqs))
	for i := range reqs {
		if strings.TrimSpace(reqs[i].Name) == "" {
			continue
		}
		patients = append(patients, PatientRequestToEntity(&reqs[i]))
	}
	return patients
}
