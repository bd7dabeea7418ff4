package service

import (
	"fmt"

	"homecare-scheduler/internal/domain/entity"

	"github.com/brianvoe/gofakeit/v7"
)

var (
	demoRoles = []string{"GP", "Nurse", "Physiotherapist", "Occupational Therapist", "Wound Care Specialist", "Palliative Care"}

	demoDiagnoses = []string{
		"Post-operative care", "COPD", "Type 2 diabetes", "Congestive heart failure",
		"Stroke rehabilitation", "Pressure ulcer", "Hip fracture recovery", "Dementia",
	}
)

// DemoRoster is a batch of fake records for pre-filling a session.
type DemoRoster struct {
	Patients []entity.Patient
	Doctors  []entity.Doctor
}

// FakeRoster builds deterministic fake records for a non-zero seed.
func FakeRoster(seed uint64, patientCount, doctorCount int) DemoRoster {
	faker := gofakeit.New(seed)

	roster := DemoRoster{
		Patients: make([]entity.Patient, 0, patientCount),
		Doctors:  make([]entity.Doctor, 0, doctorCount),
	}
	for i := 0; i < patientCount; i++ {
		roster.Patients = append(roster.Patients, entity.Patient{
			ExternalID: fmt.Sprintf("P%03d", i+1),
			Name:       faker.Name(),
			Diagnosis:  faker.RandomString(demoDiagnoses),
		})
	}
	for i := 0; i < doctorCount; i++ {
		roster.Doctors = append(roster.Doctors, entity.Doctor{
			ExternalID: fmt.Sprintf("D%03d", i+1),
			Name:       "Dr. " + faker.LastName(),
			Role:       faker.RandomString(demoRoles),
		})
	}
	return roster
}
