package repository

import (
	"homecare-scheduler/internal/domain/entity"
	domainRepo "homecare-scheduler/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	if err := db.Order("seq ASC").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Patient{}).Count(&total).Error
	return total, err
}

func (r *patientRepository) ReplaceAll(db *gorm.DB, patients []entity.Patient) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Patient{}).Error; err != nil {
			return err
		}
		if len(patients) == 0 {
			return nil
		}
		rows := make([]entity.Patient, len(patients))
		for i, p := range patients {
			p.Seq = 0
			rows[i] = p
		}
		return tx.Create(&rows).Error
	})
}
