package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"homecare-scheduler/internal/domain/entity"
)

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrMissingNameColumn = errors.New("csv header has no Name column")
)

// Column order of each exported file.
var (
	PatientColumns  = []string{"ID", "Name", "Diagnosis"}
	DoctorColumns   = []string{"ID", "Name", "Role"}
	ScheduleColumns = []string{"Visit ID", "Date", "Patient Name", "Diagnosis", "Doctor Name", "Role", "Start Time", "End Time"}
)

// ExportFileName returns the fixed relative file name of a collection.
func ExportFileName(collection entity.Collection) (string, error) {
	switch collection {
	case entity.CollectionPatients:
		return "patients.csv", nil
	case entity.CollectionDoctors:
		return "doctors.csv", nil
	case entity.CollectionSchedule:
		return "schedule.csv", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
}

func WritePatientsCSV(w io.Writer, patients []entity.Patient) error {
	rows := make([][]string, len(patients))
	for i, p := range patients {
		rows[i] = []string{p.ExternalID, p.Name, p.Diagnosis}
	}
	return writeCSV(w, PatientColumns, rows)
}

func WriteDoctorsCSV(w io.Writer, doctors []entity.Doctor) error {
	rows := make([][]string, len(doctors))
	for i, d := range doctors {
		rows[i] = []string{d.ExternalID, d.Name, d.Role}
	}
	return writeCSV(w, DoctorColumns, rows)
}

func WriteScheduleCSV(w io.Writer, visits []entity.Visit) error {
	rows := make([][]string, len(visits))
	for i, v := range visits {
		rows[i] = []string{
			v.VisitID,
			v.Date.Format("2006-01-02"),
			v.PatientName,
			v.Diagnosis,
			v.DoctorName,
			v.Role,
			v.StartTime,
			v.EndTime,
		}
	}
	return writeCSV(w, ScheduleColumns, rows)
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

// ReadPatientsCSV loads patients by header name. Rows whose name is blank
// are skipped, like blank form submissions. Other names are kept as written.
func ReadPatientsCSV(r io.Reader) ([]entity.Patient, error) {
	records, err := readCSV(r)
	if err != nil {
		return nil, err
	}

	var patients []entity.Patient
	for _, rec := range records {
		name := rec["name"]
		if strings.TrimSpace(name) == "" {
			continue
		}
		patients = append(patients, entity.Patient{
			ExternalID: rec["id"],
			Name:       name,
			Diagnosis:  rec["diagnosis"],
		})
	}
	return patients, nil
}

func ReadDoctorsCSV(r io.Reader) ([]entity.Doctor, error) {
	records, err := readCSV(r)
	if err != nil {
		return nil, err
	}

	var doctors []entity.Doctor
	for _, rec := range records {
		name := rec["name"]
		if strings.TrimSpace(name) == "" {
			continue
		}
		doctors = append(doctors, entity.Doctor{
			ExternalID: rec["id"],
			Name:       name,
			Role:       rec["role"],
		})
	}
	return doctors, nil
}

// readCSV returns one map per data row keyed by lower-cased header.
func readCSV(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := make([]string, len(header))
	hasName := false
	for i, h := range header {
		columns[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if columns[i] == "name" {
			hasName = true
		}
	}
	if !hasName {
		return nil, ErrMissingNameColumn
	}

	var records []map[string]string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		rec := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
