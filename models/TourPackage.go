package models

import (
	"time"

	"gorm.io/gorm"
)

// TourPackage is a purchasable bundle: hotel stay + duration + price,
// owned by exactly one client profile.
type TourPackage struct {
	ID                 uint           `json:"id" gorm:"primaryKey"`
	Name               string         `json:"name" gorm:"size:255;not null;index"`
	HotelID            uint           `json:"hotelID" gorm:"not null;index"`
	Hotel              *Hotel         `json:"hotel,omitempty" gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE"`
	DurationWeeks      int            `json:"durationWeeks" gorm:"not null"` // 1, 2 or 4
	Price              float64        `json:"price" gorm:"not null;index"`
	Description        string         `json:"description" gorm:"type:text"`
	IsHotDeal          bool           `json:"isHotDeal" gorm:"default:false;index"`
	AdditionalServices string         `json:"additionalServices" gorm:"type:text"`
	StartDate          *time.Time     `json:"startDate" gorm:"type:date"`
	EndDate            *time.Time     `json:"endDate" gorm:"type:date"`
	ClientID           uint           `json:"clientID" gorm:"not null;index"`
	Client             *ClientProfile `json:"client,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time      `json:"createdAt" gorm:"index"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

// BeforeSave derives the end date from start + duration when it was left
// empty. An end date that is already set is never recomputed.
func (tp *TourPackage) BeforeSave(tx *gorm.DB) error {
	if tp.StartDate != nil && tp.EndDate == nil && tp.DurationWeeks > 0 {
		end := tp.StartDate.AddDate(0, 0, 7*tp.DurationWeeks)
		tp.EndDate = &end
	}
	return nil
}
