package models

import "time"

type PromoCode struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Code        string    `json:"code" gorm:"size:50;uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Discount    int       `json:"discount"` // percent
	ValidFrom   time.Time `json:"validFrom" gorm:"type:date"`
	ValidUntil  time.Time `json:"validUntil" gorm:"type:date"`
	IsActive    bool      `json:"isActive" gorm:"default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsCurrentlyActiveAt is the derived activity predicate: the flag is set and
// the day falls inside [ValidFrom, ValidUntil], both ends inclusive. It is
// never stored; "today" moves, so it is recomputed on every query.
func (pc *PromoCode) IsCurrentlyActiveAt(today time.Time) bool {
	if !pc.IsActive {
		return false
	}
	day := dateOnly(today)
	return !day.Before(dateOnly(pc.ValidFrom)) && !day.After(dateOnly(pc.ValidUntil))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (pc *PromoCode) IsCurrentlyActive() bool {
	return pc.IsCurrentlyActiveAt(time.Now())
}
