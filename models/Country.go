package models

import "time"

// Country is a destination. Deleting one takes its hotels and
// season climates with it.
type Country struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Climates    []SeasonClimate `json:"climates,omitempty" gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE"`
	Hotels      []Hotel         `json:"hotels,omitempty" gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
