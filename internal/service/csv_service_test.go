package service

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"homecare-scheduler/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFileName(t *testing.T) {
	cases := map[entity.Collection]string{
		entity.CollectionPatients: "patients.csv",
		entity.CollectionDoctors:  "doctors.csv",
		entity.CollectionSchedule: "schedule.csv",
	}
	for collection, want := range cases {
		got, err := ExportFileName(collection)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ExportFileName("visits")
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestWriteScheduleCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteScheduleCSV(&buf, []entity.Visit{{
		VisitID:     "V0001",
		Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PatientName: "A, Jr.",
		Diagnosis:   "Flu",
		DoctorName:  "Dr.X",
		Role:        "GP",
		StartTime:   "09:00",
		EndTime:     "10:00",
	}})
	require.NoError(t, err)

	want := "Visit ID,Date,Patient Name,Diagnosis,Doctor Name,Role,Start Time,End Time\n" +
		"V0001,2024-01-01,\"A, Jr.\",Flu,Dr.X,GP,09:00,10:00\n"
	assert.Equal(t, want, buf.String())
}

func TestWritePatientsAndDoctorsCSV(t *testing.T) {
	var patients bytes.Buffer
	require.NoError(t, WritePatientsCSV(&patients, []entity.Patient{{ExternalID: "P1", Name: "Alice", Diagnosis: "COPD"}}))
	assert.Equal(t, "ID,Name,Diagnosis\nP1,Alice,COPD\n", patients.String())

	var doctors bytes.Buffer
	require.NoError(t, WriteDoctorsCSV(&doctors, nil))
	assert.Equal(t, "ID,Name,Role\n", doctors.String())
}

func TestReadPatientsCSV(t *testing.T) {
	input := "\ufeffName, Diagnosis\nAlice,COPD\n   ,Nothing\nBob,\n"

	patients, err := ReadPatientsCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, "Alice", patients[0].Name)
	assert.Equal(t, "COPD", patients[0].Diagnosis)
	assert.Equal(t, "Bob", patients[1].Name)
	assert.Empty(t, patients[1].ExternalID)
}

func TestReadPatientsCSV_KeepsNamesAsWritten(t *testing.T) {
	patients, err := ReadPatientsCSV(strings.NewReader("Name,Diagnosis\n  Alice ,COPD\n\t,skip\n"))
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "  Alice ", patients[0].Name)

	doctors, err := ReadDoctorsCSV(strings.NewReader("Name,Role\n Dr.X,GP\n"))
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, " Dr.X", doctors[0].Name)
}

func TestReadDoctorsCSV(t *testing.T) {
	doctors, err := ReadDoctorsCSV(strings.NewReader("ID,Name,Role\nD1,Dr.X,GP\n"))
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, entity.Doctor{ExternalID: "D1", Name: "Dr.X", Role: "GP"}, doctors[0])

	_, err = ReadDoctorsCSV(strings.NewReader("Role\nGP\n"))
	assert.ErrorIs(t, err, ErrMissingNameColumn)

	empty, err := ReadDoctorsCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty)
}
