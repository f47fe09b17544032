package models

import "time"

type Alert struct {
	ID           string    `gorm:"type:varchar(64);primaryKey"`
	Seq          int64     `gorm:"not null;index"`
	Type         string    `gorm:"type:varchar(20);not null"`
	Severity     string    `gorm:"type:varchar(20);not null;index"`
	MerchantID   string    `gorm:"type:varchar(64);not null;index"`
	MerchantName string    `gorm:"type:varchar(255);not null"`
	Message      string    `gorm:"type:text;not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time
}
