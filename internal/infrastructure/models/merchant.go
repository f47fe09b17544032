package models

import "time"

type Merchant struct {
	ID                string    `gorm:"type:varchar(64);primaryKey"`
	Seq               int64     `gorm:"not null;index"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Vertical          string    `gorm:"type:varchar(100);not null;index"`
	KYCStatus         string    `gorm:"column:kyc_status;type:varchar(20);not null;default:'pending';index"`
	ActiveSubscribers int       `gorm:"not null;default:0"`
	TPV               float64   `gorm:"column:tpv;not null;default:0"`
	ChurnRate         float64   `gorm:"not null;default:0"`
	MonthlyGrowth     float64   `gorm:"not null;default:0"`
	AvgARPU           float64   `gorm:"column:avg_arpu;not null;default:0"`
	ContactEmail      string    `gorm:"type:varchar(255)"`
	ContactPhone      string    `gorm:"type:varchar(50)"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time
}
