package models

import "gorm.io/gorm"

type Employee struct {
	gorm.Model
	UnitID uint `gorm:"not null"`
	Unit   Unit

	FirstName string `gorm:"size:255;not null"`
	LastName  string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
