package models

import "time"

// Review is a site-wide testimonial left by a client.
type Review struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ClientUserID uint      `json:"clientUserID" gorm:"not null;index"`
	Client       User      `json:"client" gorm:"foreignKey:ClientUserID;constraint:OnDelete:CASCADE"`
	Rating       int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Text         string    `json:"text" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
