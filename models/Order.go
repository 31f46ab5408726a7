package models

import "time"

// Order references the client user directly (not the profile), mirroring how
// orders survive profile edits. The client reference blocks user deletion;
// the employee reference is nulled out instead.
type Order struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	ClientUserID   uint          `json:"clientUserID" gorm:"not null;index"`
	Client         User          `json:"client" gorm:"foreignKey:ClientUserID;constraint:OnDelete:RESTRICT"`
	EmployeeUserID *uint         `json:"employeeUserID" gorm:"index"`
	Employee       *User         `json:"employee,omitempty" gorm:"foreignKey:EmployeeUserID;constraint:OnDelete:SET NULL"`
	TourPackages   []TourPackage `json:"tourPackages" gorm:"many2many:order_tour_packages"`
	DepartureDate  *time.Time    `json:"departureDate" gorm:"type:date"`
	TotalPrice     float64       `json:"totalPrice"`
	Status         string        `json:"status" gorm:"type:varchar(20);default:pending;index"` // pending, confirmed, paid, cancelled
	CreatedAt      time.Time     `json:"createdAt" gorm:"index"`                               // order date
	UpdatedAt      time.Time     `json:"updatedAt"`
}
