package usecase

import (
	"context"
	"strings"

	"homecare-scheduler/internal/converter"
	"homecare-scheduler/internal/delivery/dto"
	"homecare-scheduler/internal/domain/entity"
	"homecare-scheduler/internal/domain/repository"
	"homecare-scheduler/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	AddPatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.AddPatientResponse, error)
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
	ReplacePatients(ctx context.Context, req *dto.ReplacePatientsRequest) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

// AddPatient appends one patient. A blank name is not an error: nothing is
// stored and Added is false.
func (u *patientUsecase) AddPatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.AddPatientResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		u.log.Debug("Ignoring patient submission with blank name")
		return &dto.AddPatientResponse{Added: false}, nil
	}

	patient := converter.PatientRequestToEntity(req)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Create(tx, &patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionPatientCreate, "patient", converter.PatientToResponse(&patient)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit patient: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient '%s' added", patient.Name)

	return &dto.AddPatientResponse{
		Added:   true,
		Patient: converter.PatientToResponse(&patient),
	}, nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

// ReplacePatients overwrites the table with an edited copy. Rows with a
// blank name are dropped, as on the add path.
func (u *patientUsecase) ReplacePatients(ctx context.Context, req *dto.ReplacePatientsRequest) (*dto.PatientListResponse, error) {
	patients := converter.PatientRequestsToEntities(req.Patients)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	oldCount, err := u.patientRepo.Count(tx)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	if err := u.patientRepo.ReplaceAll(tx, patients); err != nil {
		u.log.Warnf("Failed to replace patients: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogReplace(ctx, tx, entity.AuditActionPatientReplace, "patient", int(oldCount), len(patients)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}
