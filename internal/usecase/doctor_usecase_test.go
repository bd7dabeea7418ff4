package usecase

import (
	"context"
	"testing"

	"homecare-scheduler/internal/delivery/dto"
	"homecare-scheduler/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorUsecase_AddDoctor(t *testing.T) {
	uc := setupUsecases(t)
	ctx := context.Background()

	res, err := uc.doctors.AddDoctor(ctx, &dto.CreateDoctorRequest{ID: "D1", Name: "Dr.X", Role: "GP"})
	require.NoError(t, err)
	assert.True(t, res.Added)
	require.NotNil(t, res.Doctor)
	assert.Equal(t, "GP", res.Doctor.Role)

	res, err = uc.doctors.AddDoctor(ctx, &dto.CreateDoctorRequest{Name: "  ", Role: "GP"})
	require.NoError(t, err)
	assert.False(t, res.Added)

	list, err := uc.doctors.GetAllDoctors(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, dto.DoctorResponse{ID: "D1", Name: "Dr.X", Role: "GP"}, list.Doctors[0])
}

func TestDoctorUsecase_ReplaceDoctorsWithEmptyTable(t *testing.T) {
	uc := setupUsecases(t)
	ctx := context.Background()

	_, err := uc.doctors.AddDoctor(ctx, &dto.CreateDoctorRequest{Name: "Dr.X"})
	require.NoError(t, err)

	res, err := uc.doctors.ReplaceDoctors(ctx, &dto.ReplaceDoctorsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)

	list, err := uc.doctors.GetAllDoctors(ctx)
	require.NoError(t, err)
	assert.Empty(t, list.Doctors)
}

func TestDoctorUsecase_ReplaceDoctors(t *testing.T) {
	uc := setupUsecases(t)
	ctx := context.Background()

	for _, name := range []string{"Dr.X", "Dr.Y"} {
		_, err := uc.doctors.AddDoctor(ctx, &dto.CreateDoctorRequest{Name: name, Role: "GP"})
		require.NoError(t, err)
	}

	res, err := uc.doctors.ReplaceDoctors(ctx, &dto.ReplaceDoctorsRequest{Doctors: []dto.CreateDoctorRequest{
		{ID: "D9", Name: "Dr.Z", Role: "Nurse"},
		{Name: ""},
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)

	list, err := uc.doctors.GetAllDoctors(ctx)
	require.NoError(t, err)
	require.Len(t, list.Doctors, 1)
	assert.Equal(t, dto.DoctorResponse{ID: "D9", Name: "Dr.Z", Role: "Nurse"}, list.Doctors[0])

	logs, err := uc.audit.GetAuditLogs(ctx, 1)
	require.NoError(t, err)
	require.Len(t, logs.Logs, 1)
	assert.Equal(t, entity.AuditActionDoctorReplace, logs.Logs[0].Action)
	assert.EqualValues(t, 2, logs.Logs[0].Metadata["old_count"])
	assert.EqualValues(t, 1, logs.Logs[0].Metadata["new_count"])
}
