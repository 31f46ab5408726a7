package models

import "time"

type Vacancy struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"` // publication date
	UpdatedAt   time.Time `json:"updatedAt"`
}
