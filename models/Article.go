package models

import "time"

// Article is a news entry on the public site.
type Article struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"size:255;not null"`
	ShortContent string    `json:"shortContent" gorm:"type:text"` // one-sentence teaser
	FullContent  string    `json:"fullContent" gorm:"type:text"`
	ImageURL     string    `json:"imageURL" gorm:"size:512"`
	AuthorID     *uint     `json:"authorID"`
	Author       *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
	CreatedAt    time.Time `json:"createdAt" gorm:"index"` // publication date
	UpdatedAt    time.Time `json:"updatedAt"`
}
