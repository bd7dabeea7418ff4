package entity

import "time"

// Doctor is one row of the doctors table. Role is free text.
type Doctor struct {
	Seq        int64     `gorm:"column:seq;primaryKey;autoIncrement" json:"-"`
	ExternalID string    `gorm:"column:external_id;type:varchar(64)" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Role       string    `gorm:"type:varchar(100)" json:"role"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// NoDoctor is the doctor selection meaning "none assigned".
const NoDoctor = "None"
