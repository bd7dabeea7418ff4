package repository

import (
	"homecare-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	Count(db *gorm.DB) (int64, error)
	FindByName(db *gorm.DB, name string) (*entity.Doctor, error)
	ReplaceAll(db *gorm.DB, doctors []entity.Doctor) error
}
