package models

import "time"

// User is the account record managed by the external identity provider.
// This server only reads it: access tokens carry the user id and role,
// and the dashboard reads the per-user time zone preference.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"size:255;uniqueIndex"`
	FirstName string    `json:"firstName" gorm:"size:100"`
	LastName  string    `json:"lastName" gorm:"size:100"`
	Role      string    `json:"role" gorm:"type:varchar(20);default:client;index"` // client, employee, admin
	TimeZone  string    `json:"timeZone" gorm:"size:64"`                           // IANA name, may be empty
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
