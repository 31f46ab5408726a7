package models

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPromoCodeActivityWindow(t *testing.T) {
	pc := PromoCode{
		Code:       "SPRING15",
		IsActive:   true,
		ValidFrom:  day(2025, time.March, 1),
		ValidUntil: day(2025, time.March, 31),
	}

	cases := []struct {
		name  string
		today time.Time
		want  bool
	}{
		{"day before window", day(2025, time.February, 28), false},
		{"first valid day", day(2025, time.March, 1), true},
		{"inside window", day(2025, time.March, 15), true},
		{"last valid day", day(2025, time.March, 31), true},
		{"day after window", day(2025, time.April, 1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := pc.IsCurrentlyActiveAt(tc.today); got != tc.want {
				t.Errorf("IsCurrentlyActiveAt(%s) = %v, want %v", tc.today.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}

func TestPromoCodeInactiveFlagWins(t *testing.T) {
	pc := PromoCode{
		Code:       "DISABLED",
		IsActive:   false,
		ValidFrom:  day(2025, time.January, 1),
		ValidUntil: day(2025, time.December, 31),
	}
	if pc.IsCurrentlyActiveAt(day(2025, time.June, 15)) {
		t.Error("deactivated code must never be active, even inside its window")
	}
}

func TestPromoCodeActivityIgnoresTimeOfDay(t *testing.T) {
	pc := PromoCode{
		IsActive:   true,
		ValidFrom:  day(2025, time.March, 1),
		ValidUntil: day(2025, time.March, 1),
	}
	lateEvening := time.Date(2025, time.March, 1, 23, 59, 59, 0, time.UTC)
	if !pc.IsCurrentlyActiveAt(lateEvening) {
		t.Error("activity must compare calendar days, not instants")
	}
}
