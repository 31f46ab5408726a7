package models

import (
	"time"

	"gorm.io/gorm"
)

// EmployeeProfile marks a user account as an agency employee.
type EmployeeProfile struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	UserID          uint       `json:"userID" gorm:"not null;uniqueIndex"`
	User            User       `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Patronymic      string     `json:"patronymic" gorm:"size:100"`
	Position        string     `json:"position" gorm:"size:100"`
	PhotoURL        string     `json:"photoURL" gorm:"size:512"`
	WorkDescription string     `json:"workDescription" gorm:"type:text"`
	PhoneNumber     string     `json:"phoneNumber" gorm:"size:20"`
	BirthDate       *time.Time `json:"birthDate" gorm:"type:date"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (ep *EmployeeProfile) BeforeSave(tx *gorm.DB) error {
	return validateProfileFields(ep.PhoneNumber, ep.BirthDate)
}
