package models

import "time"

type SeasonClimate struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	CountryID          uint      `json:"countryID" gorm:"not null;index;uniqueIndex:idx_country_season"`
	Season             string    `json:"season" gorm:"type:varchar(10);not null;uniqueIndex:idx_country_season"` // winter, spring, summer, autumn
	ClimateDescription string    `json:"climateDescription" gorm:"type:text"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
