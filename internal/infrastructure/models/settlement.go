package models

import "time"

type Settlement struct {
	ID               string    `gorm:"type:varchar(64);primaryKey"`
	Seq              int64     `gorm:"not null;index"`
	MerchantID       string    `gorm:"type:varchar(64);not null;index"`
	MerchantName     string    `gorm:"type:varchar(255);not null"`
	Amount           float64   `gorm:"not null"`
	Status           string    `gorm:"type:varchar(20);not null;index"`
	PayoutDate       string    `gorm:"type:varchar(10);not null"`
	TransactionCount int       `gorm:"not null;default:0"`
	CreatedAt        time.Time `gorm:"not null"`
}
