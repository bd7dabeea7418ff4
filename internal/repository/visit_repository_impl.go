package repository

import (
	"homecare-scheduler/internal/domain/entity"
	domainRepo "homecare-scheduler/internal/domain/repository"

	"gorm.io/gorm"
)

type visitRepository struct{}

func NewVisitRepository() domainRepo.VisitRepository {
	return &visitRepository{}
}

func (r *visitRepository) Append(db *gorm.DB, visit *entity.Visit) error {
	visit.Seq = 0
	return db.Create(visit).Error
}

func (r *visitRepository) FindAll(db *gorm.DB) ([]entity.Visit, error) {
	var visits []entity.Visit
	if err := db.Order("seq ASC").Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Visit{}).Count(&total).Error
	return total, err
}

func (r *visitRepository) ExistsVisitID(db *gorm.DB, visitID string) (bool, error) {
	var total int64
	err := db.Model(&entity.Visit{}).Where("visit_id = ?", visitID).Count(&total).Error
	return total > 0, err
}

// ReplaceAll drops every stored visit and inserts the given ones in order.
func (r *visitRepository) ReplaceAll(db *gorm.DB, visits []entity.Visit) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Visit{}).Error; err != nil {
			return err
		}
		if len(visits) == 0 {
			return nil
		}
		rows := make([]entity.Visit, len(visits))
		for i, v := range visits {
			v.Seq = 0
			rows[i] = v
		}
		return tx.Create(&rows).Error
	})
}
