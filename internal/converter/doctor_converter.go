package converter

import (
	"strings"

	"homecare-scheduler/internal/delivery/dto"
	"homecare-scheduler/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:   doctor.ExternalID,
		Name: doctor.Name,
		Role: doctor.Role,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

func DoctorRequestToEntity(req *dto.CreateDoctorRequest) entity.Doctor {
	return entity.Doctor{
		ExternalID: req.ID,
		Name:       req.Name,
		Role:       req.Role,
	}
}

// DoctorRequestsToEntities drops rows whose name is blank after trimming
func DoctorRequestsToEntities(reqs []dto.CreateDoctorRequest) []entity.Doctor {
	doctors := make([]entity.Doctor, 0, len(reqs))
	for i := range reqs {
		if strings.TrimSpace(reqs[i].Name) == "" {
			continue
		}
		doctors = append(doctors, DoctorRequestToEntity(&reqs[i]))
	}
	return doctors
}
