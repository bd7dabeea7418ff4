package converter

import (
	"time"

	"homecare-scheduler/internal/delivery/dto"
	"homecare-scheduler/internal/domain/entity"
)

// VisitToResponse converts a Visit entity to VisitResponse DTO
func VisitToResponse(visit *entity.Visit) *dto.VisitResponse {
	if visit == nil {
		return nil
	}

	return &dto.VisitResponse{
		VisitID:     visit.VisitID,
		Date:        visit.Date.Format("2006-01-02"),
		PatientName: visit.PatientName,
		Diagnosis:   visit.Diagnosis,
		DoctorName:  visit.DoctorName,
		Role:        visit.Role,
		StartTime:   visit.StartTime,
		EndTime:     visit.EndTime,
		Emergency:   visit.Emergency,
	}
}

// VisitsToResponses converts a slice of Visit entities to slice of VisitResponse DTOs
func VisitsToResponses(visits []entity.Visit) []dto.VisitResponse {
	responses := make([]dto.VisitResponse, len(visits))
	for i := range visits {
		responses[i] = *VisitToResponse(&visits[i])
	}
	return responses
}

// VisitRequestToEntity expects a request that already passed validation
func VisitRequestToEntity(req *dto.VisitRequest) (entity.Visit, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return entity.Visit{}, err
	}

	return entity.Visit{
		VisitID:     req.VisitID,
		Date:        date,
		PatientName: req.PatientName,
		Diagnosis:   req.Diagnosis,
		DoctorName:  req.DoctorName,
		Role:        req.Role,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Emergency:   req.Emergency,
	}, nil
}
