package models

import "gorm.io/gorm"

type Unit struct {
	gorm.Model
	CompanyID uint `gorm:"not null"`
	Company   Company

	Name string `gorm:"size:255;not null"`

	Employees []Employee `gorm:"constraint:OnDelete:CASCADE"`
}
