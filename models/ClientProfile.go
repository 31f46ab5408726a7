package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ClientProfile holds the client-side details of a user account.
// Deleting a profile permanently removes it together with its tour packages.
type ClientProfile struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	UserID       uint          `json:"userID" gorm:"not null;uniqueIndex"`
	User         User          `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Patronymic   string        `json:"patronymic" gorm:"size:100"`
	Address      string        `json:"address" gorm:"type:text"`
	PhoneNumber  string        `json:"phoneNumber" gorm:"size:20"` // +375 (XX) XXX-XX-XX
	BirthDate    *time.Time    `json:"birthDate" gorm:"type:date"`
	TourPackages []TourPackage `json:"tourPackages,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

var (
	ErrInvalidPhone = errors.New("phone number must match +375 (XX) XXX-XX-XX")
	ErrUnderage     = errors.New("client must be at least 18 years old")
)

// BeforeSave enforces the entry-level invariants. Reads never re-check them:
// a row that slipped in underage still shows up in the age statistics.
func (cp *ClientProfile) BeforeSave(tx *gorm.DB) error {
	return validateProfileFields(cp.PhoneNumber, cp.BirthDate)
}

// Age uses the birthday-aware formula; the dashboard deliberately uses the
// simpler year difference instead (see services.ClientAgeStatistics).
func (cp *ClientProfile) Age(today time.Time) int {
	if cp.BirthDate == nil {
		return 0
	}
	b := *cp.BirthDate
	age := today.Year() - b.Year()
	if today.Month() < b.Month() || (today.Month() == b.Month() && today.Day() < b.Day()) {
		age--
	}
	return age
}
