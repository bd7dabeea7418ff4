package service

import (
	"context"

	"homecare-scheduler/internal/domain/entity"
	"homecare-scheduler/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, action string, entityName string, newValue interface{}) error
	LogReplace(ctx context.Context, tx *gorm.DB, action string, entityName string, oldCount, newCount int) error
	LogEvent(ctx context.Context, tx *gorm.DB, action string, details entity.JSON) error
	List(ctx context.Context, db *gorm.DB, limit int) ([]entity.AuditLog, error)
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a single appended record
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, action string, entityName string, newValue interface{}) error {
	return s.write(ctx, tx, action, entity.JSON{
		"entity":    entityName,
		"new_value": newValue,
	})
}

// LogReplace logs a whole-collection overwrite with before and after sizes
func (s *auditService) LogReplace(ctx context.Context, tx *gorm.DB, action string, entityName string, oldCount, newCount int) error {
	return s.write(ctx, tx, action, entity.JSON{
		"entity":    entityName,
		"old_count": oldCount,
		"new_count": newCount,
	})
}

func (s *auditService) LogEvent(ctx context.Context, tx *gorm.DB, action string, details entity.JSON) error {
	return s.write(ctx, tx, action, details)
}

func (s *auditService) List(ctx context.Context, db *gorm.DB, limit int) ([]entity.AuditLog, error) {
	return s.auditRepo.FindAll(db.WithContext(ctx), limit)
}

func (s *auditService) write(ctx context.Context, tx *gorm.DB, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(tx.WithContext(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
