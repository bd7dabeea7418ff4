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

type DoctorUsecase interface {
	AddDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.AddDoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	ReplaceDoctors(ctx context.Context, req *dto.ReplaceDoctorsRequest) (*dto.DoctorListResponse, error)
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *doctorUsecase) AddDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.AddDoctorResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		u.log.Debug("Ignoring doctor submission with blank name")
		return &dto.AddDoctorResponse{Added: false}, nil
	}

	doctor := converter.DoctorRequestToEntity(req)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.doctorRepo.Create(tx, &doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionDoctorCreate, "doctor", converter.DoctorToResponse(&doctor)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit doctor: %+v", err)
		return nil, err
	}

	u.log.Infof("Doctor '%s' added", doctor.Name)

	return &dto.AddDoctorResponse{
		Added:  true,
		Doctor: converter.DoctorToResponse(&doctor),
	}, nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

// ReplaceDoctors overwrites the doctors table. Visits already generated
// keep the old names and roles.
func (u *doctorUsecase) ReplaceDoctors(ctx context.Context, req *dto.ReplaceDoctorsRequest) (*dto.DoctorListResponse, error) {
	doctors := converter.DoctorRequestsToEntities(req.Doctors)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	oldCount, err := u.doctorRepo.Count(tx)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}

	if err := u.doctorRepo.ReplaceAll(tx, doctors); err != nil {
		u.log.Warnf("Failed to replace doctors: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogReplace(ctx, tx, entity.AuditActionDoctorReplace, "doctor", int(oldCount), len(doctors)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}
