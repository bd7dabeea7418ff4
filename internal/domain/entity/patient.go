package entity

import "time"

// Patient is one row of the patients table. Seq only preserves insertion
// order; ExternalID is the optional identifier typed in by the user.
type Patient struct {
	Seq        int64     `gorm:"column:seq;primaryKey;autoIncrement" json:"-"`
	ExternalID string    `gorm:"column:external_id;type:varchar(64)" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Diagnosis  string    `gorm:"type:text" json:"diagnosis"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}
