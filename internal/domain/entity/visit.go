package entity

import (
	"fmt"
	"time"
)

// Visit is one scheduled patient-doctor encounter. Names are copied from
// the source records at creation time and are not kept in sync.
type Visit struct {
	Seq         int64     `gorm:"column:seq;primaryKey;autoIncrement" json:"-"`
	VisitID     string    `gorm:"column:visit_id;type:varchar(16);index" json:"visit_id"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	PatientName string    `gorm:"type:varchar(255)" json:"patient_name"`
	Diagnosis   string    `gorm:"type:text" json:"diagnosis"`
	DoctorName  string    `gorm:"type:varchar(255)" json:"doctor_name"`
	Role        string    `gorm:"type:varchar(100)" json:"role"`
	StartTime   string    `gorm:"type:varchar(5)" json:"start_time"` // Format: HH:MM
	EndTime     string    `gorm:"type:varchar(5)" json:"end_time"`   // Format: HH:MM
	Emergency   bool      `gorm:"not null;default:false" json:"emergency"`
}

func (Visit) TableName() string {
	return "visits"
}

// FormatVisitID renders the n-th visit identifier, e.g. V0001.
func FormatVisitID(n int) string {
	return fmt.Sprintf("V%04d", n)
}
