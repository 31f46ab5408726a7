package models

import "time"

// Content blocks for the "About the company" page.

type AboutPageContent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	MainText  string    `json:"mainText" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CompanyVideo struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:200"`
	VideoURL    string    `json:"videoURL" gorm:"size:512"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CompanyLogo struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:100"`
	LogoURL     string    `json:"logoURL" gorm:"size:512"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CompanyHistoryItem struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Year             int       `json:"year" gorm:"not null;index"`
	EventDescription string    `json:"eventDescription" gorm:"type:text"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type CompanyRequisite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Value     string    `json:"value" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
