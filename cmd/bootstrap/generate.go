package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"

	"homecare-scheduler/internal/delivery/dto"
	"homecare-scheduler/internal/domain/entity"
	"homecare-scheduler/internal/service"
)

// GenerateOptions drives one offline generation pass.
type GenerateOptions struct {
	PatientsFile string
	DoctorsFile  string
	StartDate    string
	Duration     int
	Strategy     string
	OutFile      string
}

// GenerateFromFiles loads both rosters from CSV, runs one Automatic pass
// and writes the schedule export to OutFile.
func (s *Session) GenerateFromFiles(ctx context.Context, opts GenerateOptions) (*dto.GenerateScheduleResponse, error) {
	patients, err := readRoster(opts.PatientsFile, service.ReadPatientsCSV)
	if err != nil {
		return nil, fmt.Errorf("read patients: %w", err)
	}
	doctors, err := readRoster(opts.DoctorsFile, service.ReadDoctorsCSV)
	if err != nil {
		return nil, fmt.Errorf("read doctors: %w", err)
	}

	patientReq := &dto.ReplacePatientsRequest{Patients: make([]dto.CreatePatientRequest, 0, len(patients))}
	for _, p := range patients {
		patientReq.Patients = append(patientReq.Patients, dto.CreatePatientRequest{ID: p.ExternalID, Name: p.Name, Diagnosis: p.Diagnosis})
	}
	if _, err := s.Patients.ReplacePatients(ctx, patientReq); err != nil {
		return nil, err
	}

	doctorReq := &dto.ReplaceDoctorsRequest{Doctors: make([]dto.CreateDoctorRequest, 0, len(doctors))}
	for _, d := range doctors {
		doctorReq.Doctors = append(doctorReq.Doctors, dto.CreateDoctorRequest{ID: d.ExternalID, Name: d.Name, Role: d.Role})
	}
	if _, err := s.Doctors.ReplaceDoctors(ctx, doctorReq); err != nil {
		return nil, err
	}

	result, err := s.Schedule.GenerateSchedule(ctx, &dto.GenerateScheduleRequest{
		Mode:            string(entity.GenerationModeAutomatic),
		Strategy:        opts.Strategy,
		StartDate:       opts.StartDate,
		DurationMinutes: opts.Duration,
	})
	if err != nil {
		return nil, err
	}
	if !result.Generated {
		return result, nil
	}

	out, err := os.Create(opts.OutFile)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	if _, err := s.Exports.WriteCSV(ctx, entity.CollectionSchedule, out); err != nil {
		return nil, fmt.Errorf("write schedule: %w", err)
	}
	return result, out.Close()
}

func readRoster[T any](path string, read func(r io.Reader) ([]T, error)) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return read(file)
}
