package repository

import (
	"homecare-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	Count(db *gorm.DB) (int64, error)
	ReplaceAll(db *gorm.DB, patients []entity.Patient) error
}
