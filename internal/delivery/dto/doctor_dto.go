package dto

// Request DTOs

type CreateDoctorRequest struct {
	ID   string `json:"id" validate:"omitempty,max=64"`
	Name string `json:"name" validate:"max=255"`
	Role string `json:"role" validate:"max=100"`
}

type ReplaceDoctorsRequest struct {
	Doctors []CreateDoctorRequest `json:"doctors" validate:"dive"`
}

// Response DTOs

type DoctorResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type AddDoctorResponse struct {
	Added  bool            `json:"added"`
	Doctor *DoctorResponse `json:"doctor,omitempty"`
}
