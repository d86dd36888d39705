package models

import "gorm.io/gorm"

type Company struct {
	gorm.Model
	Name    string `gorm:"size:255;not null;uniqueIndex"`
	Address string `gorm:"size:1000;not null"`

	Units []Unit `gorm:"constraint:OnDelete:CASCADE"`
}
