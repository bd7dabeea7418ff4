package repository

import (
	"errors"

	"homecare-scheduler/internal/domain/entity"
	domainRepo "homecare-scheduler/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	if err := db.Order("seq ASC").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Doctor{}).Count(&total).Error
	return total, err
}

// FindByName returns the first doctor, in table order, with exactly this name.
func (r *doctorRepository) FindByName(db *gorm.DB, name string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("name = ?", name).Order("seq ASC").First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) ReplaceAll(db *gorm.DB, doctors []entity.Doctor) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Doctor{}).Error; err != nil {
			return err
		}
		if len(doctors) == 0 {
			return nil
		}
		rows := make([]entity.Doctor, len(doctors))
		for i, d := range doctors {
			d.Seq = 0
			rows[i] = d
		}
		return tx.Create(&rows).Error
	})
}
