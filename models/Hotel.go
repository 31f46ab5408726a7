package models

import (
	"time"

	"gorm.io/datatypes"
)

type Hotel struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"size:200;not null"`
	CountryID     uint           `json:"countryID" gorm:"not null;index"`
	Country       Country        `json:"country" gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE"`
	Stars         int            `json:"stars" gorm:"not null;check:stars >= 1 AND stars <= 5"`
	Description   string         `json:"description" gorm:"type:text"`
	PricePerNight float64        `json:"pricePerNight" gorm:"not null"`
	PhotoURL      string         `json:"photoURL" gorm:"size:512"`
	Amenities     datatypes.JSON `json:"amenities"` // array of strings
	TourPackages  []TourPackage  `json:"tourPackages,omitempty" gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}
