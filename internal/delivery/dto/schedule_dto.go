package dto

// Request DTOs

type GenerateScheduleRequest struct {
	Mode            string `json:"mode" validate:"omitempty,oneof=automatic manual"`
	Strategy        string `json:"strategy" validate:"omitempty,oneof=random round_robin"`
	StartDate       string `json:"start_date" validate:"omitempty,datetime=2006-01-02"` // defaults to today
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,min=15,max=240,step=15"`
}

type VisitRequest struct {
	VisitID     string `json:"visit_id" validate:"max=16"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	PatientName string `json:"patient_name"`
	Diagnosis   string `json:"diagnosis"`
	DoctorName  string `json:"doctor_name"`
	Role        string `json:"role"`
	StartTime   string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"omitempty,datetime=15:04"`
	Emergency   bool   `json:"emergency"`
}

// ReplaceScheduleRequest carries the whole edited schedule table.
type ReplaceScheduleRequest struct {
	Visits []VisitRequest `json:"visits" validate:"dive"`
}

type InsertEmergencyRequest struct {
	PatientName     string `json:"patient_name" validate:"max=255"`
	Diagnosis       string `json:"diagnosis"`
	DoctorName      string `json:"doctor_name"`                                    // "None" or empty: no doctor
	StartTime       string `json:"start_time" validate:"omitempty,datetime=15:04"` // defaults to now
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,min=15,max=240,step=15"`
}

// Response DTOs

type VisitResponse struct {
	VisitID     string `json:"visit_id"`
	Date        string `json:"date"`
	PatientName string `json:"patient_name"`
	Diagnosis   string `json:"diagnosis"`
	DoctorName  string `json:"doctor_name"`
	Role        string `json:"role"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Emergency   bool   `json:"emergency"`
}

type ScheduleListResponse struct {
	Visits []VisitResponse `json:"visits"`
	Total  int             `json:"total"`
}

// GenerateScheduleResponse reports one generation pass. Generated is false
// when the stored schedule was left untouched.
type GenerateScheduleResponse struct {
	Generated          bool            `json:"generated"`
	Warning            string          `json:"warning,omitempty"`
	Notices            []string        `json:"notices,omitempty"`
	RolledPastMidnight bool            `json:"rolled_past_midnight"`
	Visits             []VisitResponse `json:"visits"`
	Total              int             `json:"total"`
}

type InsertEmergencyResponse struct {
	Added   bool           `json:"added"`
	Visit   *VisitResponse `json:"visit,omitempty"`
	Warning string         `json:"warning,omitempty"`
}
