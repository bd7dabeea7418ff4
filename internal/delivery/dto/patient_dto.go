package dto

// Request DTOs

// CreatePatientRequest is the patient form. Name is checked by the usecase:
// a blank name is ignored rather than rejected.
type CreatePatientRequest struct {
	ID        string `json:"id" validate:"omitempty,max=64"`
	Name      string `json:"name" validate:"max=255"`
	Diagnosis string `json:"diagnosis"`
}

// ReplacePatientsRequest carries the whole edited patients table.
type ReplacePatientsRequest struct {
	Patients []CreatePatientRequest `json:"patients" validate:"dive"`
}

// Response DTOs

type PatientResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Diagnosis string `json:"diagnosis"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

type AddPatientResponse struct {
	Added   bool             `json:"added"`
	Patient *PatientResponse `json:"patient,omitempty"`
}
