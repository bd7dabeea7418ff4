package repository

import (
	"homecare-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

// VisitRepository keeps replace (regeneration, table edit) and append
// (emergency insertion) as separate operations.
type VisitRepository interface {
	Append(db *gorm.DB, visit *entity.Visit) error
	FindAll(db *gorm.DB) ([]entity.Visit, error)
	Count(db *gorm.DB) (int64, error)
	ExistsVisitID(db *gorm.DB, visitID string) (bool, error)
	ReplaceAll(db *gorm.DB, visits []entity.Visit) error
}
