package usecase

import (
	"context"

	"homecare-scheduler/internal/converter"
	"homecare-scheduler/internal/delivery/dto"
	"homecare-scheduler/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditLogUsecase interface {
	GetAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditService service.AuditService
}

func NewAuditLogUsecase(db *gorm.DB, log *logrus.Logger, auditService service.AuditService) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditService: auditService,
	}
}

func (u *auditLogUsecase) GetAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
	logs, err := u.auditService.List(ctx, u.db, limit)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}
